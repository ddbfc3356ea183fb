//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"github.com/markkurossi/shs/block"
	"github.com/markkurossi/shs/word"
)

// State holds the eight hash state words.
type State [Size]uint32

// Schedule is the message schedule of one block.
type Schedule [Rounds]uint32

func bigSigma0(x uint32) uint32 {
	return word.RotR(x, 2) ^ word.RotR(x, 13) ^ word.RotR(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return word.RotR(x, 6) ^ word.RotR(x, 11) ^ word.RotR(x, 25)
}

func smallSigma0(x uint32) uint32 {
	return word.RotR(x, 7) ^ word.RotR(x, 18) ^ word.Shr(x, 3)
}

func smallSigma1(x uint32) uint32 {
	return word.RotR(x, 17) ^ word.RotR(x, 19) ^ word.Shr(x, 10)
}

// NewSchedule expands the block into its message schedule.
func NewSchedule(b *block.Block) (w Schedule) {
	m := b.Words()
	copy(w[:], m[:])
	for t := 16; t < Rounds; t++ {
		w[t] = word.Add(smallSigma1(w[t-2]), w[t-7], smallSigma0(w[t-15]),
			w[t-16])
	}
	return
}

// Compress runs the 64 rounds over the working variables initialized
// from s and returns their final values. The caller adds the result to
// s to get the next intermediate hash value.
func Compress(s State, w *Schedule) State {
	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]

	for t := 0; t < Rounds; t++ {
		t1 := word.Add(h, bigSigma1(e), word.Ch(e, f, g), _K[t], w[t])
		t2 := word.Add(bigSigma0(a), word.Maj(a, b, c))
		a, b, c, d, e, f, g, h = word.Add(t1, t2), a, b, c, word.Add(d, t1), e, f, g
	}

	return State{a, b, c, d, e, f, g, h}
}
