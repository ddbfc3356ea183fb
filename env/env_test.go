//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"bytes"
	"crypto/rand"
	"os"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	var config Config
	if config.GetRandom() != rand.Reader {
		t.Errorf("default random source is not crypto/rand")
	}
	if config.GetOutput() != os.Stdout {
		t.Errorf("default output is not os.Stdout")
	}

	var buf bytes.Buffer
	config.Out = &buf
	config.Rand = strings.NewReader("seed")
	if config.GetOutput() != &buf {
		t.Errorf("configured output ignored")
	}
	if config.GetRandom() == rand.Reader {
		t.Errorf("configured random source ignored")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false)

	err := log.Errorf("abc", "SHA-1 mismatch\ngot %s", "x")
	if err == nil || err.Error() != "SHA-1 mismatch" {
		t.Errorf("Errorf: got error %v", err)
	}
	log.Warningf("abc", "slow")
	log.Debugf("hidden")

	want := "abc: SHA-1 mismatch\ngot x\nabc: warning: slow\n"
	if buf.String() != want {
		t.Errorf("output: got %q, want %q", buf.String(), want)
	}

	buf.Reset()
	log = (&Config{Out: &buf, Verbose: true}).Logger()
	log.Debugf("block %d", 3)
	if buf.String() != "block 3\n" {
		t.Errorf("Debugf: got %q", buf.String())
	}
}
