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

import "math/bits"

// CheckedAdd returns d+rhs and true, or Zero and false if the sum would
// overflow the seconds counter.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	secs, carry := bits.Add64(d.secs, rhs.secs, 0)
	if carry != 0 {
		return Zero, false
	}
	nanos := d.nanos + rhs.nanos
	if nanos >= nanosPerSec {
		nanos -= nanosPerSec
		secs, carry = bits.Add64(secs, 1, 0)
		if carry != 0 {
			return Zero, false
		}
	}
	return Duration{secs: secs, nanos: nanos}, true
}

// SaturatingAdd returns d+rhs, clamping to Max on overflow.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	if sum, ok := d.CheckedAdd(rhs); ok {
		return sum
	}
	return Max
}

// Add returns d+rhs, panicking on overflow.
func (d Duration) Add(rhs Duration) Duration {
	sum, ok := d.CheckedAdd(rhs)
	if !ok {
		panic("overflow when adding durations")
	}
	return sum
}

// CheckedSub returns d-rhs and true, or Zero and false if the difference
// would be negative.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	secs, borrow := bits.Sub64(d.secs, rhs.secs, 0)
	if borrow != 0 {
		return Zero, false
	}
	var nanos uint32
	if d.nanos >= rhs.nanos {
		nanos = d.nanos - rhs.nanos
	} else {
		secs, borrow = bits.Sub64(secs, 1, 0)
		if borrow != 0 {
			return Zero, false
		}
		nanos = d.nanos + nanosPerSec - rhs.nanos
	}
	return Duration{secs: secs, nanos: nanos}, true
}

// SaturatingSub returns d-rhs, clamping to Zero if the difference would be
// negative.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	if diff, ok := d.CheckedSub(rhs); ok {
		return diff
	}
	return Zero
}

// Sub returns d-rhs, panicking if the difference would be negative.
func (d Duration) Sub(rhs Duration) Duration {
	diff, ok := d.CheckedSub(rhs)
	if !ok {
		panic("overflow when subtracting durations")
	}
	return diff
}

// CheckedMul returns d*rhs and true, or Zero and false on overflow.
func (d Duration) CheckedMul(rhs uint32) (Duration, bool) {
	// The nanosecond product is computed at 64 bits where it cannot
	// overflow, then split into a carry and a sub-second remainder.
	totalNanos := uint64(d.nanos) * uint64(rhs)
	extraSecs := totalNanos / nanosPerSec
	nanos := uint32(totalNanos % nanosPerSec)

	hi, secs := bits.Mul64(d.secs, uint64(rhs))
	if hi != 0 {
		return Zero, false
	}
	secs, carry := bits.Add64(secs, extraSecs, 0)
	if carry != 0 {
		return Zero, false
	}
	return Duration{secs: secs, nanos: nanos}, true
}

// SaturatingMul returns d*rhs, clamping to Max on overflow.
func (d Duration) SaturatingMul(rhs uint32) Duration {
	if product, ok := d.CheckedMul(rhs); ok {
		return product
	}
	return Max
}

// Mul returns d*rhs, panicking on overflow.
func (d Duration) Mul(rhs uint32) Duration {
	product, ok := d.CheckedMul(rhs)
	if !ok {
		panic("overflow when multiplying duration by scalar")
	}
	return product
}

// CheckedDiv returns d/rhs and true, or Zero and false if rhs is zero.
func (d Duration) CheckedDiv(rhs uint32) (Duration, bool) {
	if rhs == 0 {
		return Zero, false
	}
	secs := d.secs / uint64(rhs)
	carry := d.secs - secs*uint64(rhs)
	extraNanos := carry * nanosPerSec / uint64(rhs)
	nanos := d.nanos/rhs + uint32(extraNanos)
	return Duration{secs: secs, nanos: nanos}, true
}

// Div returns d/rhs, panicking if rhs is zero.
func (d Duration) Div(rhs uint32) Duration {
	quotient, ok := d.CheckedDiv(rhs)
	if !ok {
		panic("divide by zero error when dividing duration by scalar")
	}
	return quotient
}
