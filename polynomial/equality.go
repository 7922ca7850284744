// SPDX-License-Identifier: MIT

// Package polynomial - value semantics: equality and hashing.
//
// Equal compares coefficients with == (no epsilon). Results of arithmetic
// can therefore differ from a hand-written literal in the last bit; compare
// evaluated values with a tolerance when that matters.

package polynomial

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// canonicalNaN is the single bit pattern every NaN hashes as.
const canonicalNaN = 0x7FF8000000000001

// Equal reports whether f and g have the same length and identical
// coefficients.
// Behavior highlights:
//   - Exact float64 comparison; -0 equals +0.
//   - NaN coefficients at the same position compare equal, keeping
//     Equal(f, f) true for every f.
//   - Equal(nil, nil) is true; a nil and a non-nil polynomial are not equal.
//
// Complexity: O(n).
func Equal(f, g *Polynomial) bool {
	if f == nil || g == nil {
		return f == g
	}
	if len(f.c) != len(g.c) {
		return false
	}
	for i, a := range f.c {
		b := g.c[i]
		if a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
			return false
		}
	}

	return true
}

// Equal reports whether p and g are equal. See the package function Equal.
func (p *Polynomial) Equal(g *Polynomial) bool { return Equal(p, g) }

// Hash returns a 64-bit xxhash of p consistent with Equal:
// Equal(f, g) implies f.Hash() == g.Hash().
//
// Implementation:
//   - Stage 1: write the coefficient count.
//   - Stage 2: write each coefficient's IEEE bits, with -0 folded to +0 and
//     every NaN folded to canonicalNaN, little-endian.
//
// Complexity: O(n), no allocations beyond the digest.
func (p *Polynomial) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(p.Len()))
	_, _ = d.Write(buf[:])
	if p == nil {
		return d.Sum64()
	}
	for _, c := range p.c {
		binary.LittleEndian.PutUint64(buf[:], canonicalBits(c))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// canonicalBits maps values that Equal treats as equal to the same bits.
func canonicalBits(v float64) uint64 {
	switch {
	case v == 0:
		return 0
	case math.IsNaN(v):
		return canonicalNaN
	default:
		return math.Float64bits(v)
	}
}
