//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package shs computes SHA-1 and SHA-256 message digests as specified
// in FIPS 180-4, the Secure Hash Standard. The algorithm packages
// sha1 and sha256 can be used directly; this package selects between
// them at runtime.
package shs

import (
	"fmt"
	"strings"

	"github.com/markkurossi/shs/sha1"
	"github.com/markkurossi/shs/sha256"
	"github.com/markkurossi/shs/word"
)

// Algorithm identifies a hash algorithm.
type Algorithm int

// Supported algorithms.
const (
	SHA1 Algorithm = iota
	SHA256
)

// Algorithms lists all supported algorithms.
var Algorithms = []Algorithm{SHA1, SHA256}

var algorithmNames = map[Algorithm]string{
	SHA1:   "SHA-1",
	SHA256: "SHA-256",
}

func (alg Algorithm) String() string {
	name, ok := algorithmNames[alg]
	if ok {
		return name
	}
	return fmt.Sprintf("{Algorithm %d}", alg)
}

// Words returns the digest size of the algorithm in 32-bit words.
func (alg Algorithm) Words() int {
	switch alg {
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	default:
		return 0
	}
}

// ParseAlgorithm parses the algorithm name. The name is case
// insensitive and the dash is optional: "sha1", "SHA-256".
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ReplaceAll(strings.ToUpper(name), "-", "")
	for alg, algName := range algorithmNames {
		if n == strings.ReplaceAll(algName, "-", "") {
			return alg, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm '%s'", name)
}

// Digest is a message digest of any supported algorithm.
type Digest []uint32

func (d Digest) String() string {
	return word.Format(d)
}

// Hash returns the digest of the first length bytes of message.
func Hash(alg Algorithm, message []byte, length int) (Digest, error) {
	switch alg {
	case SHA1:
		d := sha1.Hash(message, length)
		return Digest(d[:]), nil
	case SHA256:
		d := sha256.Hash(message, length)
		return Digest(d[:]), nil
	default:
		return nil, fmt.Errorf("unsupported algorithm %v", alg)
	}
}

// Sum returns the digest of data.
func Sum(alg Algorithm, data []byte) (Digest, error) {
	return Hash(alg, data, len(data))
}
