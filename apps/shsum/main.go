//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command shsum prints SHA-1 or SHA-256 digests of files, strings, or
// the standard input. Each input is read completely into memory and
// hashed as one message.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/shs"
)

func main() {
	algFlag := flag.String("alg", "sha256", "hash algorithm: sha1, sha256")
	str := flag.String("s", "", "hash the `string` instead of files")
	flag.Parse()

	log.SetFlags(0)

	alg, err := shs.ParseAlgorithm(*algFlag)
	if err != nil {
		log.Fatal(err)
	}

	var failed bool
	switch {
	case len(*str) > 0:
		printDigest(alg, []byte(*str), fmt.Sprintf("%q", *str))

	case len(flag.Args()) == 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		printDigest(alg, data, "-")

	default:
		for _, file := range flag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Printf("%s: %s", file, err)
				failed = true
				continue
			}
			printDigest(alg, data, file)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printDigest(alg shs.Algorithm, data []byte, name string) {
	digest, err := shs.Sum(alg, data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s  %s\n", digest, name)
}
