//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package block implements the message padding and parsing of FIPS
// 180-4 sections 5.1.1 and 5.2.1, shared by SHA-1 and SHA-256. A
// message is consumed as a sequence of 64-byte blocks where the last
// one or two blocks carry the 0x80 terminator and the 64-bit message
// length in bits.
package block

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// Size is the block size in bytes.
	Size = 64

	// lengthOffset is the offset of the big-endian message bit length
	// in the final block.
	lengthOffset = Size - 8

	// MaxLength is the maximum message length in bytes whose bit
	// length fits in the 64-bit length field.
	MaxLength = math.MaxUint64 / 8

	terminator = 0x80
)

// Block is one padded 512-bit message block.
type Block [Size]byte

// Words parses the block into 16 big-endian 32-bit words.
func (b *Block) Words() (w [16]uint32) {
	for i := 0; i < len(w); i++ {
		w[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return
}

// Build writes the next block of the first length bytes of message,
// starting at cursor, into dst. It returns the number of message bytes
// consumed. A return value of 0 means dst is the final block and the
// message has been fully padded.
//
// The cursor must be advanced by the consumed count between calls.
// Calling Build with cursor beyond length, or length beyond the
// message, is a programming error and panics.
func Build(dst *Block, message []byte, length, cursor int) int {
	if length < 0 || length > len(message) {
		panic(fmt.Sprintf("block: length %d out of range [0:%d]",
			length, len(message)))
	}
	if cursor < 0 || cursor > length {
		panic(fmt.Sprintf("block: cursor %d out of range [0:%d]",
			cursor, length))
	}
	if uint64(length) > MaxLength {
		panic(fmt.Sprintf("block: message length %d too long", length))
	}
	*dst = Block{}

	remaining := length - cursor
	if remaining >= lengthOffset {
		// The terminator and length do not fit after the payload. A
		// short tail gets its terminator here and the length goes to
		// a padding-only block.
		n := copy(dst[:], message[cursor:length])
		if n < Size {
			dst[n] = terminator
		}
		return n
	}

	n := copy(dst[:], message[cursor:length])
	if remaining > 0 || length%Size == 0 {
		// Either the tail is here, or the previous block ended exactly
		// at a block boundary without room for the terminator.
		dst[n] = terminator
	}
	binary.BigEndian.PutUint64(dst[lengthOffset:], uint64(length)*8)

	return 0
}

// Count returns the number of blocks Build produces for a message of
// length bytes.
func Count(length int) int {
	return (length+8)/Size + 1
}
