//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the runtime environment of the self-test
// harness and commands.
package env

import (
	"crypto/rand"
	"io"
	"os"
)

// Config defines the harness configuration. Config must not be
// modified after being passed to a harness function. It is safe for
// concurrent use as the harness does not modify it.
type Config struct {
	// Rand seeds the generated test corpus. The default is
	// crypto/rand.Reader.
	Rand io.Reader

	// Verbose enables debug output.
	Verbose bool

	// Out receives reports and log messages. The default is
	// os.Stdout.
	Out io.Writer
}

// GetRandom returns the source of entropy for corpus seeds.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetOutput returns the output writer.
func (config *Config) GetOutput() io.Writer {
	if config.Out != nil {
		return config.Out
	}
	return os.Stdout
}

// Logger returns a logger writing to the configured output.
func (config *Config) Logger() *Logger {
	return NewLogger(config.GetOutput(), config.Verbose)
}
