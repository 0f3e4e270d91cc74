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
	"errors"
	"fmt"
	"strings"
)

var (
	errBucketsCount  = errors.New("count needs to be > 0")
	errBucketsStart  = errors.New("start needs to be > 0")
	errBucketsFactor = errors.New("factor needs to be > 1")
)

// Buckets is an ordered series of duration boundaries, e.g. for sizing
// histogram-style aggregations of elapsed spans.
type Buckets []Duration

func (b Buckets) String() string {
	values := make([]string, len(b))
	for i := range values {
		values[i] = b[i].String()
	}
	return fmt.Sprintf("[%s]", strings.Join(values, " "))
}

// LinearBuckets creates a set of linear duration buckets, clamping at Max
// once the series overflows.
func LinearBuckets(start, width Duration, count int) (Buckets, error) {
	if count <= 0 {
		return nil, errBucketsCount
	}
	buckets := make(Buckets, count)
	curr := start
	for i := range buckets {
		buckets[i] = curr
		curr = curr.SaturatingAdd(width)
	}
	return buckets, nil
}

// ExponentialBuckets creates a set of exponential duration buckets, clamping
// at Max once the series overflows.
func ExponentialBuckets(start Duration, factor float64, count int) (Buckets, error) {
	if count <= 0 {
		return nil, errBucketsCount
	}
	if start.IsZero() {
		return nil, errBucketsStart
	}
	if factor <= 1 {
		return nil, errBucketsFactor
	}
	buckets := make(Buckets, count)
	curr := start
	for i := range buckets {
		buckets[i] = curr
		curr = saturatingMulF64(curr, factor)
	}
	return buckets, nil
}

// saturatingMulF64 scales d by a factor above one, clamping at Max instead of
// panicking the way MulF64 would.
func saturatingMulF64(d Duration, factor float64) Duration {
	product, err := TryFromSecsF64(factor * d.SecsF64())
	if err != nil {
		return Max
	}
	return product
}
