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
)

func TestSum(t *testing.T) {
	assert.Equal(t, Zero, Sum())
	assert.Equal(t, Second, Sum(Second))
	assert.Equal(t, FromSeconds(2), Sum(Second, FromMillis(500), FromMillis(500)))
}

func TestSumCarriesSubSecondTotals(t *testing.T) {
	// Many sub-second values whose total exceeds a second must carry
	// into the seconds counter without loss.
	durations := make([]Duration, 40)
	for i := range durations {
		durations[i] = New(0, 900_000_000)
	}
	assert.Equal(t, FromSeconds(36), Sum(durations...))
}

func TestSumPanicsOnSecondsOverflow(t *testing.T) {
	assert.PanicsWithValue(t, "overflow in sum over durations", func() {
		Sum(FromSeconds(math.MaxUint64), FromSeconds(math.MaxUint64))
	})
}

func TestSumPanicsOnFinalCarryOverflow(t *testing.T) {
	// Each addend fits, but the final fold of excess nanoseconds does
	// not.
	assert.PanicsWithValue(t, "overflow in sum over durations", func() {
		Sum(Max, Nanosecond)
	})
}

func TestSumRefs(t *testing.T) {
	durations := []*Duration{{}, {}, {}}
	*durations[0] = New(1, 250_000_000)
	*durations[1] = New(2, 250_000_000)
	*durations[2] = New(0, 500_000_000)
	assert.Equal(t, FromSeconds(4), SumRefs(durations))

	assert.Equal(t, Zero, SumRefs(nil))
}
