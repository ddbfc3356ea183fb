//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kat

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/markkurossi/shs"
	"github.com/markkurossi/shs/word"
)

// ParseRSP parses vectors from a NIST CAVP SHA response file such as
// SHA256ShortMsg.rsp. Only byte-oriented messages are supported. The
// name is used as the vector name prefix.
func ParseRSP(name string, in io.Reader) ([]Vector, error) {
	var vectors []Vector
	var alg shs.Algorithm
	var haveAlg bool
	var bits int
	var msg []byte
	var haveMsg bool

	scanner := bufio.NewScanner(in)
	scanner.Buffer(nil, 1024*1024)
	var lineno int
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if line[0] == '[' {
			l, err := parseField(strings.Trim(line, "[]"), "L")
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %s", name, lineno, err)
			}
			switch l {
			case "20":
				alg = shs.SHA1
			case "32":
				alg = shs.SHA256
			default:
				return nil, fmt.Errorf("%s:%d: unsupported digest size %s",
					name, lineno, l)
			}
			haveAlg = true
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: syntax error: %s", name, lineno, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Len":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%s:%d: invalid length: %s",
					name, lineno, value)
			}
			if n%8 != 0 {
				return nil, fmt.Errorf("%s:%d: bit-oriented message", name, lineno)
			}
			bits = n
			haveMsg = false

		case "Msg":
			data, err := hex.DecodeString(value)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: invalid message: %s",
					name, lineno, err)
			}
			if len(data) < bits/8 {
				return nil, fmt.Errorf("%s:%d: message shorter than Len",
					name, lineno)
			}
			msg = data[:bits/8]
			haveMsg = true

		case "MD":
			if !haveAlg || !haveMsg {
				return nil, fmt.Errorf("%s:%d: MD without [L] or Msg",
					name, lineno)
			}
			md, err := hex.DecodeString(value)
			if err != nil || len(md) != alg.Words()*4 {
				return nil, fmt.Errorf("%s:%d: invalid digest: %s",
					name, lineno, value)
			}
			words := make([]uint32, alg.Words())
			for i := range words {
				words[i] = binary.BigEndian.Uint32(md[i*4:])
			}
			m := msg
			vectors = append(vectors, Vector{
				Name:   fmt.Sprintf("%s Len=%d", name, bits),
				Length: len(m),
				Message: func() []byte {
					return m
				},
				Digests: map[shs.Algorithm]string{
					alg: word.Format(words),
				},
			})
			haveMsg = false

		default:
			// Other fields like Seed or COUNT of the Monte Carlo
			// files are not supported.
			return nil, fmt.Errorf("%s:%d: unsupported field %s",
				name, lineno, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vectors, nil
}

func parseField(s, key string) (string, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(k) != key {
		return "", fmt.Errorf("expected %s = value: %s", key, s)
	}
	return strings.TrimSpace(v), nil
}
