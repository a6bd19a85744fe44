// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package lcr finds the longest common repeat within a byte string: the
// longest string appearing at two, possibly overlapping, positions of a
// text, measured as forward plus backward extension around anchor pairs.
//
// The pipeline sparsifies the text into minimizer anchors, builds sparse
// suffix arrays over the anchors on the text and on its reversal by
// hash-driven recursive bucketing, and solves a two-tree maximum combined
// LCP problem over the resulting cartesian trees:
//
//	ms  := Minimizers(text, k, w)
//	fwd := NewSSA(text, ms)        // suffixes, forward extension
//	bwd := NewSSA(reversed, ...)   // reversed prefixes, backward extension
//	w, pair := MaxCommonWeight(t1, t2)
//
// [Find] wires the stages together. The answer is exact for repeats at
// least as long as the configured bound, shorter repeats may be missed.
// Suffix grouping relies on hash equality: equal hashes are taken as equal
// bytes without a byte-level check, so a hash collision goes undetected
// and can distort the reported arrays.
//
// Everything is single-use: build, query, drop. Nothing is persisted and
// no structure is safe for concurrent mutation, but all queries on built
// structures are read-only.
package lcr
