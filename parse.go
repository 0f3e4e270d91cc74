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
	"fmt"
	"strconv"
	"strings"
)

// unitScale maps a unit suffix to the number of fractional digits it can
// carry before dropping below nanosecond resolution, and to its conversion
// into a duration.
type unitScale struct {
	fracDigits int // fraction digits down to nanosecond resolution
	fromInt    func(uint64) Duration
}

var unitScales = map[string]unitScale{
	"s":  {fracDigits: 9, fromInt: FromSeconds},
	"ms": {fracDigits: 6, fromInt: FromMillis},
	"µs": {fracDigits: 3, fromInt: FromMicros},
	"us": {fracDigits: 3, fromInt: FromMicros},
	"ns": {fracDigits: 0, fromInt: FromNanos},
}

// Parse converts a string in the formatter's own grammar,
// [+]<integer>[.<fraction>]<unit>, back into a duration. Recognized units are
// "s", "ms", "µs" (or "us") and "ns". The fraction may not be finer than a
// nanosecond.
func Parse(s string) (Duration, error) {
	orig := s
	s = strings.TrimPrefix(s, "+")

	// Longest suffix wins so "s" alone does not claim the tail of "ms",
	// "µs" or "ns".
	unit := ""
	for suffix := range unitScales {
		if strings.HasSuffix(s, suffix) && len(suffix) > len(unit) {
			unit = suffix
		}
	}
	if unit == "" {
		return Zero, fmt.Errorf("invalid duration %q: missing unit", orig)
	}
	scale := unitScales[unit]
	num := s[:len(s)-len(unit)]

	intPart := num
	fracPart := ""
	if dot := strings.IndexByte(num, '.'); dot >= 0 {
		intPart, fracPart = num[:dot], num[dot+1:]
		if fracPart == "" {
			return Zero, fmt.Errorf("invalid duration %q: empty fraction", orig)
		}
	}
	whole, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("invalid duration %q: %v", orig, err)
	}

	d := scale.fromInt(whole)
	if fracPart == "" {
		return d, nil
	}
	if len(fracPart) > scale.fracDigits {
		return Zero, fmt.Errorf("invalid duration %q: fraction finer than a nanosecond", orig)
	}
	frac, err := strconv.ParseUint(fracPart, 10, 32)
	if err != nil {
		return Zero, fmt.Errorf("invalid duration %q: %v", orig, err)
	}
	// Scale the fraction up to nanoseconds: a full-width fraction is
	// already a nanosecond count, shorter ones gain a zero per missing
	// digit.
	nanos := uint32(frac)
	for i := len(fracPart); i < scale.fracDigits; i++ {
		nanos *= 10
	}
	sum, ok := d.CheckedAdd(Duration{nanos: nanos})
	if !ok {
		return Zero, fmt.Errorf("invalid duration %q: value out of range", orig)
	}
	return sum, nil
}
