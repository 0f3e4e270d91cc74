// Copyright (c) 2026 Spanlib Authors.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package span

import (
	"math/bits"
	"strconv"
	"strings"
)

// Uint128 is an unsigned 128-bit integer held as two 64-bit limbs. It is an
// immutable value, returned by the total-duration accessors whose results may
// exceed 64 bits.
type Uint128 struct {
	hi, lo uint64
}

// Uint128From64 returns v widened to 128 bits.
func Uint128From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

// uint128MulAdd64 returns a*b+c without overflow.
func uint128MulAdd64(a, b, c uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	lo, carry := bits.Add64(lo, c, 0)
	return Uint128{hi: hi + carry, lo: lo}
}

// IsUint64 reports whether the value fits in a uint64.
func (u Uint128) IsUint64() bool {
	return u.hi == 0
}

// Uint64 returns the low 64 bits of the value. The result equals the full
// value only when IsUint64 reports true.
func (u Uint128) Uint64() uint64 {
	return u.lo
}

// Cmp returns -1, 0 or 1 depending on whether u is below, equal to or above v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.hi != v.hi:
		if u.hi < v.hi {
			return -1
		}
		return 1
	case u.lo != v.lo:
		if u.lo < v.lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// quoRem64 divides u by v, returning the quotient and remainder.
func (u Uint128) quoRem64(v uint64) (Uint128, uint64) {
	qhi := u.hi / v
	rem := u.hi % v
	qlo, r := bits.Div64(rem, u.lo, v)
	return Uint128{hi: qhi, lo: qlo}, r
}

// String returns the value in decimal.
func (u Uint128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}

	// Peel the value into 19-digit groups, the largest power of ten that
	// fits a uint64.
	const group = uint64(10_000_000_000_000_000_000)
	var sb strings.Builder
	q, r := u.quoRem64(group)
	if q.hi == 0 {
		sb.WriteString(strconv.FormatUint(q.lo, 10))
	} else {
		q2, r2 := q.quoRem64(group)
		sb.WriteString(strconv.FormatUint(q2.lo, 10))
		pad19(&sb, r2)
	}
	pad19(&sb, r)
	return sb.String()
}

func pad19(sb *strings.Builder, v uint64) {
	s := strconv.FormatUint(v, 10)
	for i := len(s); i < 19; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(s)
}
