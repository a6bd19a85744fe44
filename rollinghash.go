// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package lcr

import (
	"encoding/binary"
	"math/bits"
)

// RollingHash answers polynomial hash queries over ranges of a text,
//
//	hash(b[0:m]) = Σ BASE^i · b[i]  (mod P), BASE = 256.
//
// Prefix hashes are stored every s bytes; a range query needs at most two
// prefix lookups plus an O(s) scan of the unaligned borders.
type RollingHash struct {
	text []byte
	s    int // block size, power of two, multiple of 8
	logS int

	f       Mod // 256^s = R^(s/8)
	baseInv Mod // 256^-1

	// prefixes[k] is the hash of text[0:k*s]
	prefixes []Mod
}

// NewRollingHash builds a hasher over text with block size s.
// s must be a power of two and a multiple of 8.
func NewRollingHash(text []byte, s int) *RollingHash {
	if s < 8 || s&(s-1) != 0 {
		panic("lcr: rolling hash block size must be a power of two, at least 8")
	}

	h := &RollingHash{
		text:    text,
		s:       s,
		logS:    bits.TrailingZeros(uint(s)),
		f:       Mod(residue).Pow(uint64(s / 8)),
		baseInv: Mod(hashBase).Pow(prime - 2),
	}

	h.prefixes = make([]Mod, 0, len(text)/s+1)
	prefix := Mod(0)
	fAcc := Mod(1)
	h.prefixes = append(h.prefixes, prefix)
	for off := 0; off+s <= len(text); off += s {
		chunk := LinearHash(text[off : off+s])
		prefix = chunk.mulAdd(uint64(fAcc), prefix)
		h.prefixes = append(h.prefixes, prefix)
		fAcc = fAcc.Mul(h.f)
	}
	return h
}

// Query returns the hash of text[i:j].
//
//	|......|..i...|......|...j..|...
//	       l             r
//	======= lookup pl
//	===================== lookup pr
//	       === scan sl   ==== scan sr
//
// The two scans re-anchor the prefix hashes to i and j; dividing by
// BASE^i shifts the range hash back to origin.
func (h *RollingHash) Query(i, j int) Mod {
	if j-i <= 2*h.s {
		return LinearHash(h.text[i:j])
	}
	l := i >> h.logS
	r := j >> h.logS

	sl := LinearHash(h.text[l<<h.logS : i])
	sr := LinearHash(h.text[r<<h.logS : j])

	hl := h.prefixes[l].Add(h.f.Pow(uint64(l)).Mul(sl))
	hr := h.prefixes[r].Add(h.f.Pow(uint64(r)).Mul(sr))

	return hr.Sub(hl).Mul(h.baseInv.Pow(uint64(i)))
}

// LinearHash evaluates the polynomial hash of t eight bytes at a time,
// treating each chunk as a little-endian base-2^64 limb and folding from
// the back. The short tail seeds the accumulator; it stays below 2^56 and
// needs no reduction.
func LinearHash(t []byte) Mod {
	full := len(t) &^ 7

	var tail [8]byte
	copy(tail[:], t[full:])
	h := Mod(binary.LittleEndian.Uint64(tail[:]))

	for off := full - 8; off >= 0; off -= 8 {
		h = h.rollAdd(binary.LittleEndian.Uint64(t[off:]))
	}
	return h
}
