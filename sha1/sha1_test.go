//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"bytes"
	stdsha1 "crypto/sha1"
	"testing"

	"github.com/markkurossi/shs/block"
)

var tests = []struct {
	message string
	digest  string
}{
	{
		"",
		"da39a3ee 5e6b4b0d 3255bfef 95601890 afd80709",
	},
	{
		"abc",
		"a9993e36 4706816a ba3e2571 7850c26c 9cd0d89d",
	},
	{
		"abcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabcdabc",
		"96b713c0 a5f41776 f8bf8572 923f18b0 574f25a2",
	},
	{
		"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		"84983e44 1c3bd26e baae4aa1 f95129e5 e54670f1",
	},
	{
		"abcdbcdecdefdefgefghjfghighijhijkijkljklmklmnlmnomnopnopq",
		"f1418faa 27a61763 e8142fa6 4a79b1c6 53394d17",
	},
	{
		"apqghipqudfosjbdqfisqubfoudpuidfhpusqdbfpisqubfpisdqbfiqsbudfibu",
		"d9766f95 6f0af9be c03b7f65 1e747edd b53c8152",
	},
	{
		"abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		"a49b2446 a02c645b f419f995 b6709125 3a04a259",
	},
}

func TestVectors(t *testing.T) {
	for _, test := range tests {
		digest := Sum([]byte(test.message))
		if got := DigestToString(digest); got != test.digest {
			t.Errorf("%d bits: got %s, want %s",
				len(test.message)*8, got, test.digest)
		}
	}
}

func TestMillionA(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1M message in short mode")
	}
	data := bytes.Repeat([]byte{'a'}, 1000000)
	want := "34aa973c d4c4daa4 f61eeb2b dbad2731 6534016f"
	if got := Sum(data).String(); got != want {
		t.Errorf("1M 'a': got %s, want %s", got, want)
	}
}

// TestReference compares against the standard library over every
// padding boundary of the first few blocks.
func TestReference(t *testing.T) {
	data := make([]byte, 4*block.Size+1)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}
	for length := 0; length <= len(data); length++ {
		got := Hash(data, length).Bytes()
		want := stdsha1.Sum(data[:length])
		if got != want {
			t.Fatalf("length %d: got %x, want %x", length, got, want)
		}
	}
}

func TestHashPrefix(t *testing.T) {
	data := []byte("abcdef")
	if Hash(data, 3) != Sum([]byte("abc")) {
		t.Errorf("Hash(data, 3) != Sum(\"abc\")")
	}
	if Hash(data, 0) != Sum(nil) {
		t.Errorf("Hash(data, 0) != Sum(nil)")
	}
}

func TestDeterminism(t *testing.T) {
	data := bytes.Repeat([]byte("determinism"), 17)
	if Sum(data) != Sum(data) {
		t.Errorf("digests differ")
	}
}

func TestBitFlip(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	orig := Sum(data)
	for i := 0; i < len(data)*8; i++ {
		data[i/8] ^= 1 << uint(i%8)
		if Sum(data) == orig {
			t.Fatalf("flipping bit %d did not change the digest", i)
		}
		data[i/8] ^= 1 << uint(i%8)
	}
}

func TestSchedule(t *testing.T) {
	var b block.Block
	block.Build(&b, []byte("abc"), 3, 0)
	w := NewSchedule(&b)
	if w[0] != 0x61626380 {
		t.Errorf("w[0]: got %08x, want 61626380", w[0])
	}
	if w[15] != 0x00000018 {
		t.Errorf("w[15]: got %08x, want 00000018", w[15])
	}
	if w[16] != 0xc2c4c700 {
		t.Errorf("w[16]: got %08x, want c2c4c700", w[16])
	}
	if w[79] != 0x822e0879 {
		t.Errorf("w[79]: got %08x, want 822e0879", w[79])
	}
}

func TestCompress(t *testing.T) {
	var b block.Block
	block.Build(&b, []byte("abc"), 3, 0)
	w := NewSchedule(&b)
	got := Compress(initial, &w)
	want := State{0x42541b35, 0x5738d5e1, 0x21834873, 0x681e6df6, 0xd8fdf6ad}
	if got != want {
		t.Errorf("Compress: got %08x, want %08x", got, want)
	}
}

func TestRoundFunction(t *testing.T) {
	x, y, z := uint32(0xff00ff00), uint32(0xf0f0f0f0), uint32(0xcccccccc)
	for r := 0; r < Rounds; r++ {
		var want uint32
		switch {
		case r < 20:
			want = 0xf0ccf0cc
		case r >= 40 && r < 60:
			want = 0xfcc0fcc0
		default:
			want = 0xc33cc33c
		}
		if got := f(r, x, y, z); got != want {
			t.Errorf("round %d: got %08x, want %08x", r, got, want)
		}
	}
}

func TestString(t *testing.T) {
	s := Sum(nil).String()
	if len(s) != StringLength {
		t.Errorf("string length: got %d, want %d", len(s), StringLength)
	}
}

func BenchmarkSum1K(b *testing.B) {
	data := make([]byte, 1024)
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		Sum(data)
	}
}
