//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Logger implements the harness logging facility.
type Logger struct {
	out     io.Writer
	verbose bool
}

// NewLogger creates a new logger outputting to the argument io.Writer.
// Debug messages are printed only if verbose is true.
func NewLogger(out io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     out,
		verbose: verbose,
	}
}

func line(format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	return msg
}

// Errorf logs an error message and returns its first line as an error.
func (l *Logger) Errorf(name string, format string, a ...interface{}) error {
	msg := line(format, a...)
	fmt.Fprintf(l.out, "%s: %s", name, msg)

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	return errors.New(msg)
}

// Warningf logs a warning message.
func (l *Logger) Warningf(name string, format string, a ...interface{}) {
	fmt.Fprintf(l.out, "%s: warning: %s", name, line(format, a...))
}

// Debugf logs a debug message if the logger is verbose.
func (l *Logger) Debugf(format string, a ...interface{}) {
	if !l.verbose {
		return
	}
	fmt.Fprint(l.out, line(format, a...))
}
