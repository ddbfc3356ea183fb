//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package word implements the operations on 32-bit words defined in
// sections 3.2 and 4.1 of FIPS 180-4. All arithmetic wraps around
// modulo 2^32.
package word

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bits is the word size in bits.
const Bits = 32

// RotL rotates x left by n bits, 0 <= n < 32.
func RotL(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, int(n))
}

// RotR rotates x right by n bits, 0 <= n < 32.
func RotR(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, -int(n))
}

// Shr shifts x right by n bits, 0 <= n < 32.
func Shr(x uint32, n uint) uint32 {
	return x >> n
}

// Add returns the sum of its arguments modulo 2^32.
func Add(v ...uint32) uint32 {
	var sum uint32
	for _, x := range v {
		sum += x
	}
	return sum
}

// Ch returns y for the bits set in x and z for the bits clear in x.
func Ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// Parity returns x XOR y XOR z.
func Parity(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

// Maj returns the bitwise majority of x, y, and z.
func Maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// Format renders the words as lowercase 8-digit hexadecimal numbers
// separated by a single space.
func Format(words []uint32) string {
	var sb strings.Builder
	for idx, w := range words {
		if idx > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08x", w)
	}
	return sb.String()
}
