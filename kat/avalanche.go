//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kat

import (
	"fmt"

	"github.com/markkurossi/shs"
	"github.com/markkurossi/shs/env"
)

// MaxAvalancheLength is the maximum length of avalanche test messages.
const MaxAvalancheLength = 3 * 64

// Avalanche hashes count corpus messages and, for each, a copy with
// one flipped bit. A test fails if the flip leaves the digest
// unchanged or if two different messages of the corpus share a digest.
func Avalanche(config *env.Config, report *Report, alg shs.Algorithm,
	count int) error {

	if alg.Words() == 0 {
		return fmt.Errorf("unsupported algorithm %v", alg)
	}
	corpus, err := NewCorpusFrom(config.GetRandom())
	if err != nil {
		return err
	}
	log := config.Logger()
	seen := make(map[string]string)

	var total ByteSize
	for i := 0; i < count; i++ {
		msg := corpus.Message(MaxAvalancheLength)
		if len(msg) == 0 {
			msg = []byte{0}
		}
		digest, err := shs.Sum(alg, msg)
		if err != nil {
			return err
		}

		orig := string(msg)

		var pos [4]byte
		corpus.Read(pos[:])
		bit := (int(pos[0])<<16 | int(pos[1])<<8 | int(pos[2])) % (len(msg) * 8)
		msg[bit/8] ^= 1 << uint(bit%8)

		flipped, err := shs.Sum(alg, msg)
		if err != nil {
			return err
		}
		total += ByteSize(2 * len(msg))

		name := fmt.Sprintf("avalanche #%d", i)
		result := Result{
			Name:      name,
			Algorithm: alg,
			Length:    len(msg),
			Got:       flipped.String(),
			Want:      digest.String(),
		}
		result.Passed = result.Got != result.Want
		if !result.Passed {
			log.Errorf(name, "%v: flipping bit %d did not change digest %s",
				alg, bit, result.Got)
		}
		for d, m := range map[string]string{
			result.Want: orig,
			result.Got:  string(msg),
		} {
			if prev, ok := seen[d]; ok && prev != m {
				result.Passed = false
				log.Errorf(name, "%v: digest %s shared by %x and %x",
					alg, d, prev, m)
			}
			seen[d] = m
		}
		report.Add(result)
	}
	report.Timing.Sample(fmt.Sprintf("%v avalanche", alg), total)

	return nil
}
