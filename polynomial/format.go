// SPDX-License-Identifier: MIT

package polynomial

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtPlus  = " + "
	_fmtMul   = "*"
	_fmtPow   = "^"
	_fmtEq    = ") = "
	_fmtOpen  = "("
	_fmtZero  = "0"
	_fmtNilPo = "<nil>"
)

// String renders p as "c0 + c1*x^1 + c2*x^2 + ...".
// Every coefficient is printed, zeros included, so the output length tracks
// Len(). The zero polynomial renders as "0".
func (p *Polynomial) String() string { return p.Format() }

// Format renders p like String, configured by opts:
//   - WithVariable("t")      → "1 + 2*t^1"
//   - WithPrecision(3)       → coefficients with 3 significant digits
//   - WithFunctionName("f")  → "f(x) = 1 + 2*x^1"
//
// Complexity: O(n).
func (p *Polynomial) Format(opts ...Option) string {
	if p == nil {
		return _fmtNilPo
	}
	o := gatherOptions(opts...)

	var b strings.Builder
	if o.functionName != "" {
		b.WriteString(o.functionName)
		b.WriteString(_fmtOpen)
		b.WriteString(o.variable)
		b.WriteString(_fmtEq)
	}
	if len(p.c) == 0 {
		b.WriteString(_fmtZero)

		return b.String()
	}

	b.WriteString(strconv.FormatFloat(p.c[0], 'g', o.precision, 64))
	for i := 1; i < len(p.c); i++ {
		b.WriteString(_fmtPlus)
		b.WriteString(strconv.FormatFloat(p.c[i], 'g', o.precision, 64))
		b.WriteString(_fmtMul)
		b.WriteString(o.variable)
		b.WriteString(_fmtPow)
		b.WriteString(strconv.Itoa(i))
	}

	return b.String()
}
