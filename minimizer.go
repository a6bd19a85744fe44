// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package lcr

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// ntHash base constants for the four nucleotides.
const (
	seedA = 0x3c8bfbb395c60474
	seedC = 0x3193c18562a02b4c
	seedG = 0x20323ed082572324
	seedT = 0x295549f54be24456
)

// kmerLUT maps every byte to a 64-bit constant for the rotational k-mer
// hash. Non-nucleotide bytes get xxhash-derived constants so texts over
// arbitrary alphabets hash with the same spread.
var kmerLUT = func() (lut [256]uint64) {
	lut['A'], lut['C'], lut['G'], lut['T'] = seedA, seedC, seedG, seedT
	for i := range lut {
		if lut[i] == 0 {
			lut[i] = xxhash.Sum64([]byte{byte(i)})
		}
	}
	return lut
}()

// Minimizers returns the start positions of the length-k minimizers over
// all windows of w consecutive k-mers, a span of k+w-1 bytes per window.
//
// Selection is robust winnowing: the current champion survives until it
// leaves the window, a new k-mer takes over on hash less-or-equal, so the
// rightmost of an equal-hash run wins. The result is strictly increasing
// and adjacent gaps are at most w.
func Minimizers(text []byte, k, w int) []int {
	if k < 1 || w < 1 {
		panic("lcr: minimizer parameters must satisfy k >= 1, w >= 1")
	}
	span := k + w - 1

	var ms []int
	var minHash, cur uint64
	minIdx := 0

	for i := 0; i+span <= len(text); i++ {
		win := text[i : i+span]
		if i == 0 || i > minIdx {
			// champion left the window, rescan
			mIdx, mh, c := minKmer(win, k)
			minIdx, minHash, cur = i+mIdx, mh, c
			ms = append(ms, minIdx)
			continue
		}
		cur = bits.RotateLeft64(cur, 1) ^
			bits.RotateLeft64(kmerLUT[win[span-k-1]], k) ^
			kmerLUT[win[span-1]]
		if cur <= minHash {
			minIdx, minHash = i+span-k, cur
			ms = append(ms, minIdx)
		}
	}
	return ms
}

// minKmer returns the rightmost minimum k-mer of s: its start offset, its
// hash, and the rolling state of the last k-mer.
func minKmer(s []byte, k int) (minIdx int, minHash, cur uint64) {
	for i := 0; i < k; i++ {
		cur ^= bits.RotateLeft64(kmerLUT[s[i]], k-1-i)
	}
	minHash = cur
	for i := k; i < len(s); i++ {
		cur = bits.RotateLeft64(cur, 1) ^
			bits.RotateLeft64(kmerLUT[s[i-k]], k) ^
			kmerLUT[s[i]]
		if cur <= minHash {
			minHash, minIdx = cur, i-k+1
		}
	}
	return minIdx, minHash, cur
}
