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

// sumAccumulator keeps nanoseconds in a 64-bit running total so the carry
// into seconds is folded only when that total would overflow, and once at the
// end.
type sumAccumulator struct {
	secs, nanos uint64
}

func (a *sumAccumulator) add(d Duration) {
	var carry uint64
	a.secs, carry = bits.Add64(a.secs, d.secs, 0)
	if carry != 0 {
		panic("overflow in sum over durations")
	}
	nanos, overflow := bits.Add64(a.nanos, uint64(d.nanos), 0)
	if overflow != 0 {
		a.secs, carry = bits.Add64(a.secs, a.nanos/nanosPerSec, 0)
		if carry != 0 {
			panic("overflow in sum over durations")
		}
		nanos = a.nanos%nanosPerSec + uint64(d.nanos)
	}
	a.nanos = nanos
}

func (a *sumAccumulator) total() Duration {
	secs, carry := bits.Add64(a.secs, a.nanos/nanosPerSec, 0)
	if carry != 0 {
		panic("overflow in sum over durations")
	}
	return Duration{secs: secs, nanos: uint32(a.nanos % nanosPerSec)}
}

// Sum returns the sum of the given durations. It panics if the total
// overflows the seconds counter; a sum is never allowed to silently wrap.
func Sum(durations ...Duration) Duration {
	var acc sumAccumulator
	for _, d := range durations {
		acc.add(d)
	}
	return acc.total()
}

// SumRefs is Sum over a sequence of duration pointers, summing without
// copying the values out first.
func SumRefs(durations []*Duration) Duration {
	var acc sumAccumulator
	for _, d := range durations {
		acc.add(*d)
	}
	return acc.total()
}
