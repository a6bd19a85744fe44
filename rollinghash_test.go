// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package lcr

import (
	"math/rand/v2"
	"testing"
)

// linearBaseline hashes one byte at a time, the chunked fast path must
// agree with it exactly.
func linearBaseline(t []byte) Mod {
	var h Mod
	for i := len(t) - 1; i >= 0; i-- {
		h = h.mulAdd(hashBase, Mod(t[i]))
	}
	return h
}

func randomBytes(prng *rand.Rand, n int) []byte {
	t := make([]byte, n)
	for i := range t {
		t[i] = byte(prng.Uint64())
	}
	return t
}

func TestLinearHashChunked(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(3, 3))

	lens := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 15, 16, 17, 63, 64, 65, 100, 1000, 10000}
	for _, n := range lens {
		for range 20 {
			text := randomBytes(prng, n)
			h1 := linearBaseline(text)
			h2 := LinearHash(text)
			if h1 != h2 {
				t.Fatalf("hash mismatch for len %d: %d != %d", n, h2, h1)
			}
		}
	}
}

func TestQueryMatchesLinear(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(4, 4))

	queries := 1_000
	if testing.Short() {
		queries = 100
	}

	for _, s := range []int{8, 16, 32, 64, 128, 1024, 4096} {
		for _, n := range []int{0, 1, 7, 8, 9, 100, 1000, 10000} {
			text := randomBytes(prng, n)
			hasher := NewRollingHash(text, s)

			for range queries {
				i := int(prng.Uint64N(uint64(n + 1)))
				j := int(prng.Uint64N(uint64(n + 1)))
				if j < i {
					i, j = j, i
				}
				got := hasher.Query(i, j)
				want := LinearHash(text[i:j])
				if got != want {
					t.Fatalf("query mismatch for n=%d s=%d [%d:%d]: %d != %d", n, s, i, j, got, want)
				}
			}
		}
	}
}

func TestBadBlockSizePanics(t *testing.T) {
	t.Parallel()
	for _, s := range []int{0, 4, 7, 12, 24} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("block size %d must panic", s)
				}
			}()
			NewRollingHash([]byte("text"), s)
		}()
	}
}
