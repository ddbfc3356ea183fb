//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS
// 180-4 section 6.1. The package hashes one complete in-memory message
// per call.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"

	"github.com/markkurossi/shs/block"
	"github.com/markkurossi/shs/word"
)

const (
	// Size is the size of a SHA-1 digest in 32-bit words.
	Size = 5

	// StringLength is the length of the digest string representation.
	StringLength = Size*8 + Size - 1

	// Rounds is the number of compression rounds per block.
	Rounds = 80
)

// Digest is a SHA-1 message digest.
type Digest [Size]uint32

func (d Digest) String() string {
	return word.Format(d[:])
}

// Bytes returns the digest in its big-endian byte form.
func (d Digest) Bytes() [Size * 4]byte {
	var result [Size * 4]byte
	for idx, w := range d {
		binary.BigEndian.PutUint32(result[idx*4:], w)
	}
	return result
}

// DigestToString returns the canonical string representation of the
// digest.
func DigestToString(d Digest) string {
	return d.String()
}

// Sum returns the SHA-1 digest of the data.
func Sum(data []byte) Digest {
	return Hash(data, len(data))
}

// Hash returns the SHA-1 digest of the first length bytes of message.
func Hash(message []byte, length int) Digest {
	state := initial

	var b block.Block
	var w Schedule
	cursor := 0
	for {
		consumed := block.Build(&b, message, length, cursor)
		w = NewSchedule(&b)
		out := Compress(state, &w)
		for i := range state {
			state[i] = word.Add(state[i], out[i])
		}
		if consumed == 0 {
			break
		}
		cursor += consumed
	}

	return Digest(state)
}
