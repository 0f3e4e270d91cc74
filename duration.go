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

// Package span provides a non-negative fixed-point time quantity with whole
// second and nanosecond resolution, checked and saturating arithmetic,
// bit-exact conversions to and from binary floating-point seconds, and
// adaptive human-readable rendering.
package span

import (
	"math"
	"math/bits"
)

const (
	nanosPerSec   = 1_000_000_000
	nanosPerMilli = 1_000_000
	nanosPerMicro = 1_000
	millisPerSec  = 1_000
	microsPerSec  = 1_000_000
)

// Duration is a span of time held as whole seconds plus a sub-second
// nanosecond remainder. It is an immutable value: every operation returns a
// new Duration and the nanosecond remainder is always below one second.
type Duration struct {
	secs  uint64
	nanos uint32 // always < nanosPerSec
}

var (
	// Zero is the empty duration.
	Zero = Duration{}

	// Max is the largest representable duration.
	Max = Duration{secs: math.MaxUint64, nanos: nanosPerSec - 1}

	// Second is the duration of one second.
	Second = Duration{secs: 1}

	// Millisecond is the duration of one millisecond.
	Millisecond = Duration{nanos: nanosPerMilli}

	// Microsecond is the duration of one microsecond.
	Microsecond = Duration{nanos: nanosPerMicro}

	// Nanosecond is the duration of one nanosecond.
	Nanosecond = Duration{nanos: 1}
)

// New returns a duration of secs whole seconds plus nanos nanoseconds. The
// nanosecond argument need not be below one second; whole seconds it contains
// carry into the seconds counter. New panics if that carry overflows the
// seconds counter.
func New(secs uint64, nanos uint32) Duration {
	carried, carry := bits.Add64(secs, uint64(nanos/nanosPerSec), 0)
	if carry != 0 {
		panic("overflow in span.New")
	}
	return Duration{secs: carried, nanos: nanos % nanosPerSec}
}

// FromSeconds returns a duration of secs whole seconds.
func FromSeconds(secs uint64) Duration {
	return Duration{secs: secs}
}

// FromMillis returns a duration of millis milliseconds.
func FromMillis(millis uint64) Duration {
	return Duration{
		secs:  millis / millisPerSec,
		nanos: uint32(millis%millisPerSec) * nanosPerMilli,
	}
}

// FromMicros returns a duration of micros microseconds.
func FromMicros(micros uint64) Duration {
	return Duration{
		secs:  micros / microsPerSec,
		nanos: uint32(micros%microsPerSec) * nanosPerMicro,
	}
}

// FromNanos returns a duration of nanos nanoseconds.
func FromNanos(nanos uint64) Duration {
	return Duration{
		secs:  nanos / nanosPerSec,
		nanos: uint32(nanos % nanosPerSec),
	}
}

// IsZero reports whether the duration spans no time.
func (d Duration) IsZero() bool {
	return d.secs == 0 && d.nanos == 0
}

// Seconds returns the number of whole seconds, truncating any sub-second
// remainder.
func (d Duration) Seconds() uint64 {
	return d.secs
}

// SubsecMillis returns the sub-second remainder in whole milliseconds. It is
// not the total duration in milliseconds; see Millis for that.
func (d Duration) SubsecMillis() uint32 {
	return d.nanos / nanosPerMilli
}

// SubsecMicros returns the sub-second remainder in whole microseconds. It is
// not the total duration in microseconds; see Micros for that.
func (d Duration) SubsecMicros() uint32 {
	return d.nanos / nanosPerMicro
}

// SubsecNanos returns the sub-second remainder in nanoseconds. It is not the
// total duration in nanoseconds; see Nanos for that.
func (d Duration) SubsecNanos() uint32 {
	return d.nanos
}

// Millis returns the total duration in milliseconds, widened so large second
// counts cannot overflow.
func (d Duration) Millis() Uint128 {
	return uint128MulAdd64(d.secs, millisPerSec, uint64(d.nanos/nanosPerMilli))
}

// Micros returns the total duration in microseconds, widened so large second
// counts cannot overflow.
func (d Duration) Micros() Uint128 {
	return uint128MulAdd64(d.secs, microsPerSec, uint64(d.nanos/nanosPerMicro))
}

// Nanos returns the total duration in nanoseconds, widened so large second
// counts cannot overflow.
func (d Duration) Nanos() Uint128 {
	return uint128MulAdd64(d.secs, nanosPerSec, uint64(d.nanos))
}
