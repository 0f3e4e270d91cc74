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
	"math"
	"math/bits"
)

// SecsF64 returns the duration in seconds as a float64. Precision loss is
// expected for second counts above 2^53.
func (d Duration) SecsF64() float64 {
	return float64(d.secs) + float64(d.nanos)/nanosPerSec
}

// SecsF32 returns the duration in seconds as a float32. Precision loss is
// expected for second counts above 2^24.
func (d Duration) SecsF32() float32 {
	return float32(d.secs) + float32(d.nanos)/nanosPerSec
}

// TryFromSecsF64 converts a float64 number of seconds into a duration. The
// conversion is exact up to nanosecond resolution; the sub-nanosecond
// remainder is rounded to nearest, ties to even. It returns ErrNegative if
// the sign bit of secs is set (including negative zero) and ErrOverflowOrNaN
// if secs is NaN, infinite or too large to represent.
func TryFromSecsF64(secs float64) (Duration, error) {
	const (
		mantBits = 52
		expBits  = 11
		offset   = 44
		minExp   = 1 - (1<<expBits)/2
		mantMask = uint64(1)<<mantBits - 1
		expMask  = uint64(1)<<expBits - 1
	)

	b := math.Float64bits(secs)
	if b&(1<<63) != 0 {
		return Zero, ErrNegative
	}
	mant := b&mantMask | (mantMask + 1)
	exp := int(b>>mantBits&expMask) + minExp

	switch {
	case exp < -31:
		// Less than 1ns, and too small to round up to it.
		return Zero, nil
	case exp < 0:
		// Sub-second. The nanosecond product is evaluated at 128 bits;
		// the retained value sits above bit 96 and the discarded low 96
		// bits drive round-to-nearest, ties-to-even.
		shift := uint(offset + exp) // 13..43
		hi, lo := bits.Mul64(mant, nanosPerSec)
		hi = hi<<shift | lo>>(64-shift)
		lo = lo << shift

		nanos := uint32(hi >> 32)
		remHi := uint32(hi)
		isTie := remHi == 1<<31 && lo == 0
		remMSBZero := remHi>>31 == 0
		if !(remMSBZero || (nanos&1 == 0 && isTie)) {
			nanos++
			// Values just below a whole second, such as the largest
			// float64 under 1.0, round up to a full second.
			if nanos == nanosPerSec {
				return Duration{secs: 1}, nil
			}
		}
		return Duration{nanos: nanos}, nil
	case exp < mantBits:
		// Whole seconds in the high mantissa bits, a fraction in the
		// rest, rounded the same way as the sub-second case.
		whole := mant >> uint(mantBits-exp)
		t := (mant << uint(exp)) & mantMask
		hi, lo := bits.Mul64(nanosPerSec, t)

		nanos := uint32(hi<<(64-mantBits) | lo>>mantBits)
		rem := lo & (uint64(1)<<mantBits - 1)
		isTie := rem == 1<<(mantBits-1)
		remMSBZero := lo&(1<<(mantBits-1)) == 0
		if !(remMSBZero || (nanos&1 == 0 && isTie)) {
			nanos++
			// The carry into whole cannot overflow: exp < 52 bounds
			// whole below 1<<52.
			if nanos == nanosPerSec {
				return Duration{secs: whole + 1}, nil
			}
		}
		return Duration{secs: whole, nanos: nanos}, nil
	case exp < 64:
		// No fractional part; the shift is exact.
		return Duration{secs: mant << uint(exp-mantBits)}, nil
	default:
		// Also covers NaN and infinity, whose exponent field is
		// all-ones.
		return Zero, ErrOverflowOrNaN
	}
}

// TryFromSecsF32 converts a float32 number of seconds into a duration, with
// the same rounding and error behavior as TryFromSecsF64.
func TryFromSecsF32(secs float32) (Duration, error) {
	const (
		mantBits = 23
		expBits  = 8
		offset   = 41
		minExp   = 1 - (1<<expBits)/2
		mantMask = uint32(1)<<mantBits - 1
		expMask  = uint32(1)<<expBits - 1
	)

	b := math.Float32bits(secs)
	if b&(1<<31) != 0 {
		return Zero, ErrNegative
	}
	mant := b&mantMask | (mantMask + 1)
	exp := int(b>>mantBits&expMask) + minExp

	switch {
	case exp < -31:
		return Zero, nil
	case exp < 0:
		// The shifted mantissa fits 64 bits here, so the nanosecond
		// product splits cleanly at the 64-bit limb boundary.
		t := uint64(mant) << uint(offset+exp) // 10..40
		hi, lo := bits.Mul64(nanosPerSec, t)

		nanos := uint32(hi)
		isTie := lo == 1<<63
		remMSBZero := lo>>63 == 0
		if !(remMSBZero || (nanos&1 == 0 && isTie)) {
			// A 24-bit mantissa is too coarse for the round-up to
			// reach a full second, so nanos stays below 1e9.
			nanos++
		}
		return Duration{nanos: nanos}, nil
	case exp < mantBits:
		whole := uint64(mant >> uint(mantBits-exp))
		t := uint64((mant << uint(exp)) & mantMask)
		tmp := uint64(nanosPerSec) * t

		nanos := uint32(tmp >> mantBits)
		rem := tmp & (uint64(1)<<mantBits - 1)
		isTie := rem == 1<<(mantBits-1)
		remMSBZero := tmp&(1<<(mantBits-1)) == 0
		if !(remMSBZero || (nanos&1 == 0 && isTie)) {
			nanos++
		}
		return Duration{secs: whole, nanos: nanos}, nil
	case exp < 64:
		return Duration{secs: uint64(mant) << uint(exp-mantBits)}, nil
	default:
		return Zero, ErrOverflowOrNaN
	}
}

// FromSecsF64 converts a float64 number of seconds into a duration, panicking
// where TryFromSecsF64 would return an error.
func FromSecsF64(secs float64) Duration {
	d, err := TryFromSecsF64(secs)
	if err != nil {
		panic(err)
	}
	return d
}

// FromSecsF32 converts a float32 number of seconds into a duration, panicking
// where TryFromSecsF32 would return an error.
func FromSecsF32(secs float32) Duration {
	d, err := TryFromSecsF32(secs)
	if err != nil {
		panic(err)
	}
	return d
}

// MulF64 returns d scaled by rhs, panicking if the result is negative, not
// finite or too large to represent.
func (d Duration) MulF64(rhs float64) Duration {
	return FromSecsF64(rhs * d.SecsF64())
}

// MulF32 returns d scaled by rhs, panicking if the result is negative, not
// finite or too large to represent.
func (d Duration) MulF32(rhs float32) Duration {
	return FromSecsF32(rhs * d.SecsF32())
}

// DivF64 returns d divided by rhs, panicking if the result is negative, not
// finite or too large to represent.
func (d Duration) DivF64(rhs float64) Duration {
	return FromSecsF64(d.SecsF64() / rhs)
}

// DivF32 returns d divided by rhs, panicking if the result is negative, not
// finite or too large to represent.
func (d Duration) DivF32(rhs float32) Duration {
	return FromSecsF32(d.SecsF32() / rhs)
}

// DivDurationF64 returns the ratio d/rhs as a float64.
func (d Duration) DivDurationF64(rhs Duration) float64 {
	return d.SecsF64() / rhs.SecsF64()
}

// DivDurationF32 returns the ratio d/rhs as a float32.
func (d Duration) DivDurationF32(rhs Duration) float32 {
	return d.SecsF32() / rhs.SecsF32()
}
