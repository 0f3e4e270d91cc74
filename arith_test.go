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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var arithSamples = []Duration{
	Zero,
	Nanosecond,
	New(0, 999_999_999),
	New(1, 1),
	New(5, 730023852),
	FromSeconds(1 << 40),
}

func TestCheckedAdd(t *testing.T) {
	sum, ok := New(0, 500_000_000).CheckedAdd(New(0, 600_000_000))
	require.True(t, ok)
	assert.Equal(t, New(1, 100_000_000), sum)

	_, ok = Max.CheckedAdd(Nanosecond)
	assert.False(t, ok)
	_, ok = FromSeconds(math.MaxUint64).CheckedAdd(Second)
	assert.False(t, ok)
}

func TestAddZeroIsIdentity(t *testing.T) {
	for _, d := range arithSamples {
		assert.Equal(t, d, d.Add(Zero), "%v", d)
		assert.Equal(t, d, Zero.Add(d), "%v", d)
	}
}

func TestAddThenSubRoundTrips(t *testing.T) {
	for _, a := range arithSamples {
		for _, b := range arithSamples {
			sum, ok := a.CheckedAdd(b)
			if !ok {
				continue
			}
			diff, ok := sum.CheckedSub(b)
			require.True(t, ok)
			assert.Equal(t, a, diff)
		}
	}
}

func TestAddPanicsOnOverflow(t *testing.T) {
	assert.PanicsWithValue(t, "overflow when adding durations", func() {
		Max.Add(Nanosecond)
	})
}

func TestCheckedSub(t *testing.T) {
	diff, ok := New(1, 100_000_000).CheckedSub(New(0, 200_000_000))
	require.True(t, ok)
	assert.Equal(t, New(0, 900_000_000), diff)

	_, ok = Zero.CheckedSub(Nanosecond)
	assert.False(t, ok)

	// The borrow itself may underflow when the second counters are
	// already equal.
	_, ok = New(3, 100).CheckedSub(New(3, 200))
	assert.False(t, ok)
}

func TestSubPanicsOnUnderflow(t *testing.T) {
	assert.PanicsWithValue(t, "overflow when subtracting durations", func() {
		Zero.Sub(Nanosecond)
	})
}

func TestSaturationBounds(t *testing.T) {
	for _, d := range arithSamples {
		assert.Equal(t, Max, Max.SaturatingAdd(d).SaturatingAdd(Nanosecond))
		assert.Equal(t, Zero, Zero.SaturatingSub(d))
	}
	assert.Equal(t, New(0, 1), New(0, 0).SaturatingAdd(New(0, 1)))
	assert.Equal(t, New(0, 1), New(0, 1).SaturatingSub(New(0, 0)))
	assert.Equal(t, Max, FromSeconds(1).SaturatingAdd(FromSeconds(math.MaxUint64)))
}

func TestCheckedMul(t *testing.T) {
	product, ok := New(0, 500_000_001).CheckedMul(2)
	require.True(t, ok)
	assert.Equal(t, New(1, 2), product)

	_, ok = FromSeconds(math.MaxUint64-1).CheckedMul(2)
	assert.False(t, ok)

	// The seconds product alone fits exactly, so only the nanosecond
	// carry pushes it over.
	secs := uint64(math.MaxUint64) / 3
	_, ok = FromSeconds(secs).CheckedMul(3)
	assert.True(t, ok)
	_, ok = New(secs, 999_999_999).CheckedMul(3)
	assert.False(t, ok)
}

func TestSaturatingMul(t *testing.T) {
	assert.Equal(t, New(1, 2), New(0, 500_000_001).SaturatingMul(2))
	assert.Equal(t, Max, FromSeconds(math.MaxUint64-1).SaturatingMul(2))
}

func TestMulPanicsOnOverflow(t *testing.T) {
	assert.PanicsWithValue(t, "overflow when multiplying duration by scalar", func() {
		FromSeconds(math.MaxUint64 - 1).Mul(2)
	})
}

func TestCheckedDiv(t *testing.T) {
	quotient, ok := FromSeconds(2).CheckedDiv(2)
	require.True(t, ok)
	assert.Equal(t, Second, quotient)

	quotient, ok = Second.CheckedDiv(2)
	require.True(t, ok)
	assert.Equal(t, New(0, 500_000_000), quotient)

	// The remainder of the seconds division contributes nanoseconds.
	quotient, ok = New(7, 0).CheckedDiv(3)
	require.True(t, ok)
	assert.Equal(t, New(2, 333_333_333), quotient)

	_, ok = FromSeconds(2).CheckedDiv(0)
	assert.False(t, ok)
}

func TestDivPanicsOnZero(t *testing.T) {
	assert.PanicsWithValue(t, "divide by zero error when dividing duration by scalar", func() {
		Second.Div(0)
	})
}

func TestArithmeticPreservesInvariant(t *testing.T) {
	for _, a := range arithSamples {
		for _, b := range arithSamples {
			if sum, ok := a.CheckedAdd(b); ok {
				assert.Less(t, sum.SubsecNanos(), uint32(nanosPerSec))
			}
			if diff, ok := a.CheckedSub(b); ok {
				assert.Less(t, diff.SubsecNanos(), uint32(nanosPerSec))
			}
			if product, ok := a.CheckedMul(7); ok {
				assert.Less(t, product.SubsecNanos(), uint32(nanosPerSec))
			}
			if quotient, ok := a.CheckedDiv(7); ok {
				assert.Less(t, quotient.SubsecNanos(), uint32(nanosPerSec))
			}
		}
	}
}
