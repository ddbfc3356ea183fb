//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package shs

import (
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		alg  Algorithm
	}{
		{"sha1", SHA1},
		{"SHA-1", SHA1},
		{"Sha-1", SHA1},
		{"sha256", SHA256},
		{"SHA-256", SHA256},
	}
	for _, test := range tests {
		alg, err := ParseAlgorithm(test.name)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q): %v", test.name, err)
			continue
		}
		if alg != test.alg {
			t.Errorf("ParseAlgorithm(%q): got %v, want %v",
				test.name, alg, test.alg)
		}
	}
	for _, name := range []string{"", "md5", "sha512", "sha-2"} {
		if _, err := ParseAlgorithm(name); err == nil {
			t.Errorf("ParseAlgorithm(%q) succeeded", name)
		}
	}
}

func TestSum(t *testing.T) {
	for _, alg := range Algorithms {
		for _, msg := range []string{"", "a", "abc"} {
			digest, err := Sum(alg, []byte(msg))
			if err != nil {
				t.Fatalf("%v: %v", alg, err)
			}
			if len(digest) != alg.Words() {
				t.Errorf("%v(%q): got %d words, want %d",
					alg, msg, len(digest), alg.Words())
			}
			if len(digest.String()) != alg.Words()*9-1 {
				t.Errorf("%v(%q): string %q has wrong length",
					alg, msg, digest.String())
			}
		}
	}
	digest, err := Sum(SHA1, []byte("abc"))
	if err != nil {
		t.Fatal(err)
	}
	want := "a9993e36 4706816a ba3e2571 7850c26c 9cd0d89d"
	if digest.String() != want {
		t.Errorf("SHA-1(abc): got %s, want %s", digest, want)
	}
	if _, err := Sum(Algorithm(42), nil); err == nil {
		t.Errorf("Sum with unknown algorithm succeeded")
	}
}

func TestAlgorithmString(t *testing.T) {
	if SHA256.String() != "SHA-256" {
		t.Errorf("SHA256.String(): got %s", SHA256)
	}
	if Algorithm(7).String() != "{Algorithm 7}" {
		t.Errorf("unknown algorithm: got %s", Algorithm(7))
	}
}
