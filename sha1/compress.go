//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"github.com/markkurossi/shs/block"
	"github.com/markkurossi/shs/word"
)

// State holds the five hash state words.
type State [Size]uint32

// Schedule is the message schedule of one block.
type Schedule [Rounds]uint32

// NewSchedule expands the block into its message schedule.
func NewSchedule(b *block.Block) (w Schedule) {
	m := b.Words()
	copy(w[:], m[:])
	for t := 16; t < Rounds; t++ {
		w[t] = word.RotL(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}
	return
}

// f selects the round function for round t.
func f(t int, x, y, z uint32) uint32 {
	switch t / 20 {
	case 0:
		return word.Ch(x, y, z)
	case 2:
		return word.Maj(x, y, z)
	default:
		return word.Parity(x, y, z)
	}
}

// Compress runs the 80 rounds over the working variables initialized
// from s and returns their final values. The caller adds the result to
// s to get the next intermediate hash value.
func Compress(s State, w *Schedule) State {
	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]

	for t := 0; t < Rounds; t++ {
		tmp := word.Add(word.RotL(a, 5), f(t, b, c, d), e, _K[t/20], w[t])
		a, b, c, d, e = tmp, a, word.RotL(b, 30), c, d
	}

	return State{a, b, c, d, e}
}
