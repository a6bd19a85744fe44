// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rmq

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// querier is what both backends provide.
type querier interface {
	Query(l, r int) int
}

func naiveMin(a []int, l, r int) int {
	return slices.Min(a[l:r])
}

func TestScenario(t *testing.T) {
	t.Parallel()
	a := []int{5, 3, 7, 1, 4, 6, 2}

	for name, q := range map[string]querier{
		"sparse": NewSparseTable(a),
		"mask":   NewMask(a),
	} {
		if got := q.Query(1, 6); got != 1 {
			t.Errorf("%s: Query(1, 6) = %d, want 1", name, got)
		}
		if got := q.Query(4, 7); got != 2 {
			t.Errorf("%s: Query(4, 7) = %d, want 2", name, got)
		}
	}
}

func TestExhaustiveSmall(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(5, 5))

	for n := 1; n <= 130; n++ {
		a := make([]int, n)
		for i := range a {
			a[i] = int(prng.Uint64N(10))
		}

		sparse := NewSparseTable(a)
		mask := NewMask(a)

		for l := 0; l < n; l++ {
			for r := l + 1; r <= n; r++ {
				want := naiveMin(a, l, r)
				if got := sparse.Query(l, r); got != want {
					t.Fatalf("sparse n=%d [%d:%d]: got %d, want %d", n, l, r, got, want)
				}
				if got := mask.Query(l, r); got != want {
					t.Fatalf("mask n=%d [%d:%d]: got %d, want %d", n, l, r, got, want)
				}
			}
		}
	}
}

func TestRandomLarge(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(6, 6))

	queries := 20_000
	if testing.Short() {
		queries = 2_000
	}

	for _, n := range []int{200, 1000, 5000} {
		a := make([]int, n)
		for i := range a {
			a[i] = int(prng.Uint64() >> 1) // full range, distinct-ish
		}

		sparse := NewSparseTable(a)
		mask := NewMask(a)

		for range queries {
			l := int(prng.Uint64N(uint64(n)))
			r := int(prng.Uint64N(uint64(n)))
			if r <= l {
				l, r = r, l+1
			}
			want := naiveMin(a, l, r)
			if got := sparse.Query(l, r); got != want {
				t.Fatalf("sparse n=%d [%d:%d]: got %d, want %d", n, l, r, got, want)
			}
			if got := mask.Query(l, r); got != want {
				t.Fatalf("mask n=%d [%d:%d]: got %d, want %d", n, l, r, got, want)
			}
		}
	}
}

func TestEmptyRangePanics(t *testing.T) {
	t.Parallel()
	a := []int{1, 2, 3}

	for name, q := range map[string]querier{
		"sparse": NewSparseTable(a),
		"mask":   NewMask(a),
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: empty range must panic", name)
				}
			}()
			q.Query(2, 2)
		}()
	}
}
