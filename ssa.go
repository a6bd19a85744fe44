// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package lcr

import "math/bits"

// SSA is a sparse suffix array: SA is a permutation of the input positions
// sorted by the suffixes starting there, LCP[i] is the length of the
// longest common prefix of the suffixes at SA[i] and SA[i+1].
//
// Construction is recursive hash bucketing: every level hashes an l-byte
// extension of each suffix past the prefix the current group is known to
// share, radix-sorts by hash, and descends into the refinement. Groups of
// equal hash are parked in a side cache and replaced by a single sentinel
// so the rest of the slice sorts at coarser granularity first.
type SSA struct {
	SA  []int
	LCP []int
}

// ih pairs a position, or a deferred-group sentinel, with its current
// bucketing hash.
type ih struct {
	idx int
	h   Mod
}

// hNone marks restored singletons during the expand walk. It is not a
// reduced residue and never collides with a bucketing hash.
const hNone = Mod(^uint64(0))

// NewSSA builds the sparse suffix array of text over the given positions
// using exponential-search descent: the probe length starts small and
// doubles until the first split.
//
// Positions must lie in [0, len(text)]; position len(text) denotes the
// empty suffix. The index slice is left unmodified.
func NewSSA(text []byte, idxs []int) *SSA {
	return newSSA(text, idxs, true)
}

// NewSSABinary builds the same arrays with pure binary-search descent,
// probing from the largest power of two not exceeding len(text).
func NewSSABinary(text []byte, idxs []int) *SSA {
	return newSSA(text, idxs, false)
}

func newSSA(text []byte, idxs []int, expSearch bool) *SSA {
	n := len(text)
	b := len(idxs)
	if b == 0 {
		panic("lcr: SSA needs a non-empty index set")
	}

	s := 8
	if n > 1 {
		s = max(8, nextPow2(n/ilog2(n)))
	}

	bld := &ssaBuilder{
		text:   text,
		n:      n,
		hasher: NewRollingHash(text, s),
	}

	starts := make([]ih, b)
	for i, idx := range idxs {
		if idx < 0 || idx > n {
			panic("lcr: SSA position out of range")
		}
		starts[i] = ih{idx: idx}
	}
	lcp := make([]int, b-1)

	l0 := 1
	if expSearch {
		l0 = nextPow2(bits.Len(uint(b-1)) / 2)
	} else if n > 1 {
		l0 = 1 << ilog2(n)
	}
	bld.sort(l0, 0, expSearch, starts, lcp)

	sa := make([]int, b)
	for i, x := range starts {
		sa[i] = x.idx
	}
	return &SSA{SA: sa, LCP: lcp}
}

type ssaBuilder struct {
	text   []byte
	n      int
	hasher *RollingHash

	// deferred groups, a [witness, len, positions...] record each
	cache []int
}

// witness resolves idx to a real text position: itself for a plain
// position, the stored member for a deferred-group sentinel. Any member
// serves, the whole group shares the established prefix.
func (b *ssaBuilder) witness(idx int) int {
	if idx <= b.n {
		return idx
	}
	return b.cache[idx-b.n-1]
}

// termSalt stands in for a terminator character outside the byte
// alphabet. Appended to clipped probes it keeps a short suffix from
// hashing like a longer one that continues in zero bytes.
const termSalt = Mod(prime - 1)

// probe hashes the l-byte extension at offset groupLCP of the suffix at w,
// clamped to the text end.
func (b *ssaBuilder) probe(w, groupLCP, l int) Mod {
	lo := min(w+groupLCP, b.n)
	hi := min(w+groupLCP+l, b.n)
	h := b.hasher.Query(lo, hi)
	if hi-lo < l {
		h = h.Add(Mod(hashBase).Pow(uint64(hi - lo)).Mul(termSalt))
	}
	return h
}

// sort orders starts by suffix and fills lcpOut. Every entry already
// shares a prefix of groupLCP bytes; l is the current probe length.
func (b *ssaBuilder) sort(l, groupLCP int, expSearch bool, starts []ih, lcpOut []int) {
	if len(starts) <= 1 {
		return
	}
	if expSearch && l > b.n {
		// no suffix extends further than n bytes, doubling cannot
		// split anything the binary descent cannot
		expSearch = false
	}

	if l == 0 {
		// character resolution: order by the single byte past the
		// shared prefix, an exhausted suffix before every real byte
		for i := range starts {
			w := b.witness(starts[i].idx)
			if p := w + groupLCP; p < b.n {
				starts[i].h = Mod(b.text[p]) + 1
			} else {
				starts[i].h = 0
			}
		}
		radixSort(starts)
		for i := range lcpOut {
			lcpOut[i] = groupLCP
		}
		return
	}

	for i := range starts {
		starts[i].h = b.probe(b.witness(starts[i].idx), groupLCP, l)
	}
	radixSort(starts)

	numGroups := 0
	for i := 0; i < len(starts); i += groupLen(starts, i) {
		numGroups++
	}

	switch {
	case numGroups == 1:
		// everyone shares the next l bytes
		if expSearch {
			b.sort(2*l, groupLCP+l, true, starts, lcpOut)
		} else {
			b.sort(l/2, groupLCP+l, false, starts, lcpOut)
		}
		return
	case numGroups == len(starts):
		// all singletons: everyone diverges within l, refine
		b.sort(l/2, groupLCP, false, starts, lcpOut)
		return
	}

	// defer-and-coarsen: park groups in the cache, sort the compacted
	// slice, restore, then refine within each group
	oldCacheLen := len(b.cache)

	i, j := 0, 0
	for i < len(starts) {
		glen := groupLen(starts, i)
		if glen == 1 {
			starts[j] = starts[i]
		} else {
			sentinel := b.n + 1 + len(b.cache)
			b.cache = append(b.cache, b.witness(starts[i].idx), glen)
			for _, x := range starts[i : i+glen] {
				b.cache = append(b.cache, x.idx)
			}
			starts[j] = ih{idx: sentinel}
		}
		i += glen
		j++
	}

	b.sort(l/2, groupLCP, false, starts[:j], lcpOut[:j-1])

	// expand from the right, restoring each deferred group in place;
	// boundary LCPs move along, group interiors are refined below
	i = len(starts)
	for j > 0 {
		j--
		if starts[j].idx <= b.n+oldCacheLen {
			// plain position or a sentinel of an enclosing call
			i--
			starts[i] = ih{idx: starts[j].idx, h: hNone}
		} else {
			off := starts[j].idx - b.n - 1
			glen := b.cache[off+1]
			i -= glen
			for k := 0; k < glen; k++ {
				starts[i+k] = ih{idx: b.cache[off+2+k], h: Mod(off)}
			}
		}
		if i > 0 {
			lcpOut[i-1] = lcpOut[j-1]
		}
	}
	b.cache = b.cache[:oldCacheLen]

	nextL := l / 2
	if expSearch {
		nextL = 2 * l
	}
	for i = 0; i < len(starts); {
		if starts[i].h == hNone {
			i++
			continue
		}
		glen := groupLen(starts, i)
		b.sort(nextL, groupLCP+l, expSearch, starts[i:i+glen], lcpOut[i:i+glen-1])
		i += glen
	}
}

// groupLen counts the run of entries sharing v[i]'s hash.
func groupLen(v []ih, i int) int {
	g := 1
	for i+g < len(v) && v[i+g].h == v[i].h {
		g++
	}
	return g
}

// radixSort sorts by hash, least significant byte first. Passes whose byte
// is constant across the slice are skipped.
func radixSort(a []ih) {
	buf := make([]ih, len(a))
	for shift := 0; shift < 64; shift += 8 {
		var count [256]int
		for _, x := range a {
			count[byte(uint64(x.h)>>shift)]++
		}
		if count[byte(uint64(a[0].h)>>shift)] == len(a) {
			continue
		}
		sum := 0
		for i := range count {
			count[i], sum = sum, sum+count[i]
		}
		for _, x := range a {
			k := byte(uint64(x.h) >> shift)
			buf[count[k]] = x
			count[k]++
		}
		copy(a, buf)
	}
}

func ilog2(n int) int {
	return bits.Len(uint(n)) - 1
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
