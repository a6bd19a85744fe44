// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package lcr

// Find computes the longest common repeat of text: two anchor positions
// p, q maximizing the forward LCP of the suffixes starting there plus the
// backward LCP of the prefixes ending there. minLen is the lower bound on
// repeat lengths the search is sensitive to, at least 3; repeats shorter
// than minLen may be missed, the minimizer density only guarantees an
// anchor inside every repeat of length minLen or more.
//
// The returned weight is the combined forward and backward extension; the
// anchors are text positions, -1 when the text yields no candidate pair.
// The input slice is not modified.
func Find(text []byte, minLen int) (int, [2]int) {
	return find(text, minLen, NewSSA)
}

// FindBinary is Find with binary-search descent in the suffix array build.
func FindBinary(text []byte, minLen int) (int, [2]int) {
	return find(text, minLen, NewSSABinary)
}

func find(text []byte, minLen int, newSSA func([]byte, []int) *SSA) (int, [2]int) {
	if minLen < 3 {
		panic("lcr: length bound must be at least 3")
	}
	k := min(minLen/2, 64)
	w := minLen - k - 1
	n := len(text)

	ms := Minimizers(text, k, w)
	if len(ms) < 2 {
		return 0, [2]int{-1, -1}
	}

	fwd := newSSA(text, ms)

	// the same anchors on the reversed text: the suffix of the reversal
	// starting at n-m is the reverse of the prefix ending at m
	rev := make([]byte, n)
	for i, c := range text {
		rev[n-1-i] = c
	}
	rms := make([]int, len(ms))
	for i, m := range ms {
		rms[i] = n - m
	}
	bwd := newSSA(rev, rms)
	for i := range bwd.SA {
		bwd.SA[i] = n - bwd.SA[i]
	}

	t1 := &Tree{SA: fwd.SA, LCP: append(fwd.LCP, 0)}
	t2 := &Tree{SA: bwd.SA, LCP: append(bwd.LCP, 0)}

	weight, pair := MaxCommonWeight(t1, t2)
	if pair[0] < 0 {
		return weight, pair
	}
	return weight, [2]int{t1.SA[pair[0]], t1.SA[pair[1]]}
}
