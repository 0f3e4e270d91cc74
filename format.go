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
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// String returns the duration rendered with an automatically chosen unit
// suffix at full precision, e.g. "5.730023852s" or "976.562µs".
func (d Duration) String() string {
	return fmt.Sprintf("%v", d)
}

// GoString returns a constructor-shaped representation of the duration.
func (d Duration) GoString() string {
	return fmt.Sprintf("span.New(%d, %d)", d.secs, d.nanos)
}

// Format implements fmt.Formatter. The verbs %v and %s render the duration as
// a decimal number with a unit suffix chosen so the number stays in a
// human-scaled range: seconds when there are whole seconds, otherwise
// milliseconds, microseconds or nanoseconds. The precision caps the number of
// fractional digits (with decimal round-half-up on the discarded remainder),
// the width pads the rendering with trailing spaces, and the '+' flag adds a
// leading sign.
func (d Duration) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if verb == 'v' && f.Flag('#') {
			io.WriteString(f, d.GoString())
			return
		}
		prefix := ""
		if f.Flag('+') {
			prefix = "+"
		}
		switch {
		case d.secs > 0:
			fmtDecimal(f, d.secs, d.nanos, nanosPerSec/10, prefix, "s")
		case d.nanos >= nanosPerMilli:
			fmtDecimal(f, uint64(d.nanos/nanosPerMilli), d.nanos%nanosPerMilli, nanosPerMilli/10, prefix, "ms")
		case d.nanos >= nanosPerMicro:
			fmtDecimal(f, uint64(d.nanos/nanosPerMicro), d.nanos%nanosPerMicro, nanosPerMicro/10, prefix, "µs")
		default:
			fmtDecimal(f, uint64(d.nanos), 0, 1, prefix, "ns")
		}
	default:
		fmt.Fprintf(f, "%%!%c(span.Duration=%s)", verb, d.String())
	}
}

// fmtDecimal renders integerPart plus fractionalPart/ (10*divisor) as a
// decimal number with the given prefix and unit suffix. fractionalPart must
// be below 10*divisor and divisor must be a power of ten no greater than
// 1e8. Trailing zero digits are omitted unless a precision asks for them.
func fmtDecimal(f fmt.State, integerPart uint64, fractionalPart, divisor uint32, prefix, unit string) {
	// Peel fractional digits into a buffer prefilled with '0'. Nine slots
	// suffice because fractionalPart is below 1e9.
	buf := [9]byte{'0', '0', '0', '0', '0', '0', '0', '0', '0'}
	pos := 0

	precision, hasPrecision := f.Precision()
	limit := len(buf)
	if hasPrecision && precision < limit {
		limit = precision
	}
	for fractionalPart > 0 && pos < limit {
		buf[pos] = '0' + byte(fractionalPart/divisor)
		fractionalPart %= divisor
		divisor /= 10
		pos++
	}

	// A precision below the natural digit count may have discarded a
	// non-zero remainder. Decimal round-half-up: carry right to left
	// through the digit buffer, and into the integer part if the carry
	// runs off the front.
	if fractionalPart > 0 && fractionalPart >= divisor*5 {
		carry := true
		for revPos := pos; carry && revPos > 0; {
			revPos--
			if buf[revPos] < '9' {
				buf[revPos]++
				carry = false
			} else {
				buf[revPos] = '0'
			}
		}
		if carry {
			integerPart++
		}
	}

	// With a precision, exactly that many digits appear (capped to the
	// buffer, zero-padded past it); otherwise digits up to the last
	// non-zero one.
	end := pos
	fracWidth := pos
	if hasPrecision {
		fracWidth = precision
		end = precision
		if end > len(buf) {
			end = len(buf)
		}
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(strconv.FormatUint(integerPart, 10))
	if end > 0 {
		sb.WriteByte('.')
		sb.Write(buf[:end])
		for i := end; i < fracWidth; i++ {
			sb.WriteByte('0')
		}
	}
	sb.WriteString(unit)

	out := sb.String()
	io.WriteString(f, out)

	// Padding is appended, keeping the content left-aligned. The unit may
	// be "µs", so the width is counted in runes.
	if width, ok := f.Width(); ok {
		for n := utf8.RuneCountInString(out); n < width; n++ {
			io.WriteString(f, " ")
		}
	}
}
