//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command shstest runs the known-answer self-tests of the SHA-1 and
// SHA-256 engines. It exits with status 0 if all tests pass and 1
// otherwise.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/markkurossi/shs"
	"github.com/markkurossi/shs/env"
	"github.com/markkurossi/shs/kat"
)

func main() {
	algFlag := flag.String("alg", "sha1,sha256", "comma-separated algorithms")
	verbose := flag.Bool("v", false, "verbose output")
	timing := flag.Bool("timing", false, "print timing report")
	avalanche := flag.Int("avalanche", 0,
		"number of avalanche messages per algorithm")
	seed := flag.String("seed", "",
		"hex-encoded 32-byte avalanche corpus `seed`")
	short := flag.Bool("short", false, "skip the long repeated messages")
	flag.Parse()

	log.SetFlags(0)

	var algs []shs.Algorithm
	for _, name := range strings.Split(*algFlag, ",") {
		alg, err := shs.ParseAlgorithm(strings.TrimSpace(name))
		if err != nil {
			log.Fatal(err)
		}
		algs = append(algs, alg)
	}

	config := &env.Config{
		Verbose: *verbose,
		Out:     os.Stdout,
	}
	var seedBytes []byte
	if len(*seed) > 0 {
		var err error
		seedBytes, err = hex.DecodeString(*seed)
		if err != nil || len(seedBytes) != kat.SeedSize {
			log.Fatalf("invalid seed: expected %d hex-encoded bytes",
				kat.SeedSize)
		}
	}

	vectors := kat.Vectors()
	if *short {
		var filtered []kat.Vector
		for _, v := range vectors {
			if v.Length <= 10000 {
				filtered = append(filtered, v)
			}
		}
		vectors = filtered
	}
	for _, file := range flag.Args() {
		v, err := readRSP(file)
		if err != nil {
			log.Fatal(err)
		}
		vectors = append(vectors, v...)
	}

	report, err := kat.Run(config, vectors, algs)
	if err != nil {
		log.Fatal(err)
	}
	if *avalanche > 0 {
		for _, alg := range algs {
			if seedBytes != nil {
				config.Rand = bytes.NewReader(seedBytes)
			}
			err = kat.Avalanche(config, report, alg, *avalanche)
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	report.Print(os.Stdout)
	if *timing {
		fmt.Println()
		report.Timing.Print(os.Stdout)
	}
	if !report.OK() {
		os.Exit(1)
	}
}

func readRSP(file string) ([]kat.Vector, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return kat.ParseRSP(file, f)
}
