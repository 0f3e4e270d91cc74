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

import "testing"

func BenchmarkCheckedAdd(b *testing.B) {
	x := New(5, 730023852)
	y := New(0, 976_562)
	for n := 0; n < b.N; n++ {
		x.CheckedAdd(y)
	}
}

func BenchmarkTryFromSecsF64(b *testing.B) {
	for n := 0; n < b.N; n++ {
		TryFromSecsF64(5.730023852)
	}
}

func BenchmarkString(b *testing.B) {
	d := New(5, 730023852)
	for n := 0; n < b.N; n++ {
		_ = d.String()
	}
}

func BenchmarkSum(b *testing.B) {
	durations := make([]Duration, 64)
	for i := range durations {
		durations[i] = New(0, 900_000_000)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Sum(durations...)
	}
}

func BenchmarkParse(b *testing.B) {
	for n := 0; n < b.N; n++ {
		Parse("5.730023852s")
	}
}
