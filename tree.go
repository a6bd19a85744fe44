// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package lcr

import (
	"cmp"
	"slices"

	"github.com/gaissmai/lcr/internal/rmq"
)

// Tree is a cartesian-tree view of a suffix array: SA holds the leaf
// labels in suffix order, LCP the weights between adjacent leaves,
// end-padded with a zero so both slices have equal length. Internal nodes
// are the LCP valleys; the tree itself is never materialized.
type Tree struct {
	SA  []int
	LCP []int
}

// MaxCommonWeight finds a pair of leaves u, v maximizing
// LCP_a(u,v) + LCP_b(u,v), where LCP_x is the minimum LCP between the two
// leaves in tree x. Both trees must carry the same leaf set.
//
// The returned pair holds the positions of u and v in a's leaf order;
// trees with fewer than two leaves yield weight 0 and -1 sentinels.
//
// The sweep walks a's LCP array with a monotonic stack. Popping a frame
// closes a subtree with common LCP top.lcp; the best partner across the
// merge boundary is always an adjacent pair in b-order, so sorting the
// window by b-position and scoring the straddling neighbours with an RMQ
// over b's LCP covers all candidates.
func MaxCommonWeight(a, b *Tree) (int, [2]int) {
	if len(a.LCP) != len(a.SA) || len(b.LCP) != len(b.SA) {
		panic("lcr: tree LCP and SA must have equal length")
	}
	n := len(a.SA)
	if n != len(b.SA) {
		panic("lcr: trees must have the same number of leaves")
	}
	if n < 2 {
		return 0, [2]int{-1, -1}
	}
	if a.LCP[n-1] != 0 || b.LCP[n-1] != 0 {
		panic("lcr: tree LCP must be zero-terminated")
	}

	bIdx := permutation(a, b)
	bRMQ := rmq.NewMask(b.LCP)

	bestW := 0
	best := [2]int{-1, -1}

	// inclusive start in a-order of the open subtree, and its right LCP
	type frame struct{ start, lcp int }
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{0, 0})

	for i, aLCPRight := range a.LCP {
		start := i
		for len(stack) > 0 && stack[len(stack)-1].lcp >= aLCPRight {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			// subtree over [top.start, i] closes with common LCP top.lcp
			win := bIdx[top.start : i+1]
			slices.SortFunc(win, func(x, y [2]int) int {
				return cmp.Compare(x[0], y[0])
			})
			for k := 1; k < len(win); k++ {
				al, ar := win[k-1][1], win[k][1]
				if (al < start) != (ar < start) {
					// endpoints on opposite sides of the merge boundary
					if w := top.lcp + bRMQ.Query(win[k-1][0], win[k][0]); w > bestW {
						bestW = w
						best = [2]int{al, ar}
					}
				}
			}
			start = top.start
		}
		stack = append(stack, frame{start, aLCPRight})
	}
	return bestW, best
}

// permutation returns, in a-leaf order, pairs (position in b, position in a).
func permutation(a, b *Tree) [][2]int {
	bInv := make(map[int]int, len(b.SA))
	for i, leaf := range b.SA {
		bInv[leaf] = i
	}
	p := make([][2]int, len(a.SA))
	for i, leaf := range a.SA {
		j, ok := bInv[leaf]
		if !ok {
			panic("lcr: trees carry different leaf sets")
		}
		p[i] = [2]int{j, i}
	}
	return p
}
