//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package kat implements the known-answer self-test harness for the
// SHA-1 and SHA-256 digest engines.
package kat

import (
	"bytes"
	"fmt"

	"github.com/markkurossi/shs"
	"github.com/markkurossi/text/superscript"
)

// Vector defines a known-answer test vector.
type Vector struct {
	Name    string
	Length  int
	Message func() []byte
	Digests map[shs.Algorithm]string
}

// Expected returns the expected digest string for the algorithm and
// a boolean indicating if the vector defines one.
func (v Vector) Expected(alg shs.Algorithm) (string, bool) {
	digest, ok := v.Digests[alg]
	return digest, ok
}

func literal(msg, sha1, sha256 string) Vector {
	return Vector{
		Name:   fmt.Sprintf("%d bits", len(msg)*8),
		Length: len(msg),
		Message: func() []byte {
			return []byte(msg)
		},
		Digests: map[shs.Algorithm]string{
			shs.SHA1:   sha1,
			shs.SHA256: sha256,
		},
	}
}

// repeated creates a vector of 10^exp 'a' characters.
func repeated(exp int, sha1, sha256 string) Vector {
	count := 1
	for i := 0; i < exp; i++ {
		count *= 10
	}
	return Vector{
		Name:   "a×10" + superscript.Itoa(exp),
		Length: count,
		Message: func() []byte {
			return bytes.Repeat([]byte{'a'}, count)
		},
		Digests: map[shs.Algorithm]string{
			shs.SHA1:   sha1,
			shs.SHA256: sha256,
		},
	}
}

// Vectors returns the built-in known-answer vectors. The table covers
// the padding boundaries at 440, 448, and 456 bits, an exact block, a
// two-block message, and long repeated messages.
func Vectors() []Vector {
	return []Vector{
		literal("",
			"da39a3ee 5e6b4b0d 3255bfef 95601890 afd80709",
			"e3b0c442 98fc1c14 9afbf4c8 996fb924 27ae41e4 649b934c a495991b 7852b855"),
		literal("abc",
			"a9993e36 4706816a ba3e2571 7850c26c 9cd0d89d",
			"ba7816bf 8f01cfea 414140de 5dae2223 b00361a3 96177a9c b410ff61 f20015ad"),
		literal("abcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabc",
			"96b713c0 a5f41776 f8bf8572 923f18b0 574f25a2",
			"2c886b3d 53367f58 d29fe6f4 1442c60c 63005ce9 f6c59783 c01b7832 fb260d5b"),
		literal("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"84983e44 1c3bd26e baae4aa1 f95129e5 e54670f1",
			"248d6a61 d20638b8 e5c02693 0c3e6039 a33ce459 64ff2167 f6ecedd4 19db06c1"),
		literal("abcdbcdecdefdefgefghjfghighijhijkijkljklmklmnlmnomnopnopq",
			"f1418faa 27a61763 e8142fa6 4a79b1c6 53394d17",
			"aade6485 e8f82a30 5b76573c bf75eead 6ebf86a2 d468e501 384bd8f7 eecdd13c"),
		literal("apqghipqudfosjbdqfisqubfoudpuidfhpusqdbfpisqubfpisdqbfiqsbudfibu",
			"d9766f95 6f0af9be c03b7f65 1e747edd b53c8152",
			"6ab3d64a d335f115 6ec759a1 4345734f a5b1dc52 66923b96 02886cb0 ba4fa22d"),
		literal("abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			"a49b2446 a02c645b f419f995 b6709125 3a04a259",
			"cf5b16a7 78af8380 036ce59e 7b049237 0b249b11 e8f07a51 afac4503 7afee9d1"),
		repeated(4,
			"a080cbda 64850abb 7b7f67ee 875ba068 074ff6fe",
			"27dd1f61 b867b6a0 f6e9d8a4 1c43231d e52107e5 3ae424de 8f847b82 1db4b711"),
		repeated(5,
			"c4d4b308 51182fc4 eb867549 4d42fd7f 17e29c93",
			"6d1cf22d 7cc09b08 5dfc25ee 1a1f3ae0 265804c6 07bc2074 ad253bcc 82fd81ee"),
		repeated(6,
			"34aa973c d4c4daa4 f61eeb2b dbad2731 6534016f",
			"cdc76e5c 9914fb92 81a1c7e2 84d73e67 f1809a48 a497200e 046d39cc c7112cd0"),
	}
}
