//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// initial is the initial hash value of section 5.3.1.
var initial = State{init0, init1, init2, init3, init4}

// _K holds the round constants, each used for 20 consecutive rounds.
var _K = [4]uint32{
	0x5A827999,
	0x6ED9EBA1,
	0x8F1BBCDC,
	0xCA62C1D6,
}
