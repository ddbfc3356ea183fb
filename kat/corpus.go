//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kat

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the corpus seed size in bytes.
const SeedSize = chacha20.KeySize

// Corpus generates a deterministic stream of test messages from a
// seed. The stream is the ChaCha20 keystream keyed with the seed.
type Corpus struct {
	cipher *chacha20.Cipher
}

// NewCorpus creates a corpus from the seed.
func NewCorpus(seed [SeedSize]byte) (*Corpus, error) {
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &Corpus{
		cipher: cipher,
	}, nil
}

// NewCorpusFrom creates a corpus with a seed read from rand.
func NewCorpusFrom(rand io.Reader) (*Corpus, error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, fmt.Errorf("failed to read corpus seed: %w", err)
	}
	return NewCorpus(seed)
}

// Read fills p with the next corpus bytes. It never fails.
func (c *Corpus) Read(p []byte) (int, error) {
	clear(p)
	c.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Message returns the next message. Its length is uniformly chosen
// from [0, maxLength].
func (c *Corpus) Message(maxLength int) []byte {
	var buf [4]byte
	c.Read(buf[:])
	length := int(binary.BigEndian.Uint32(buf[:]) % uint32(maxLength+1))

	msg := make([]byte, length)
	c.Read(msg)
	return msg
}
