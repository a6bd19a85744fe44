// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command lcr finds the longest common repeat in a text file.
//
//	lcr -l <minlen> [-binary] <file>
//
// FASTA input is tolerated: lines starting with '>' are dropped and the
// remaining bytes are uppercased before the search.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gaissmai/lcr"
)

func main() {
	minLen := flag.Int("l", 0, "lower bound on the repeat length to detect (required, >= 3)")
	binary := flag.Bool("binary", false, "use binary-search descent in the suffix array build")
	flag.Parse()

	if *minLen < 3 || flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s -l <minlen> [-binary] <file>\n", os.Args[0])
		os.Exit(2)
	}

	log.SetFlags(log.Lmicroseconds)

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	text := make([]byte, 0, len(raw))
	for _, line := range bytes.Split(raw, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) > 0 && line[0] == '>' {
			continue
		}
		text = append(text, bytes.ToUpper(line)...)
	}
	if len(text) == 0 {
		log.Fatal("empty input")
	}

	find := lcr.Find
	if *binary {
		find = lcr.FindBinary
	}

	ts := time.Now()
	weight, pos := find(text, *minLen)
	log.Printf("n=%d minlen=%d: weight %d at %d and %d (%v)",
		len(text), *minLen, weight, pos[0], pos[1], time.Since(ts))

	fmt.Println(weight)
}
