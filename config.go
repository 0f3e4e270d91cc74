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
	"strconv"

	"gopkg.in/validator.v2"
)

// FormatConfig is a reusable rendering configuration for durations, loadable
// from YAML.
type FormatConfig struct {
	// Precision if specified fixes the number of fractional digits.
	// Values above nine render as trailing zeros.
	Precision *int `yaml:"precision"`

	// Width if specified pads renderings shorter than this many
	// characters.
	Width int `yaml:"width" validate:"min=0"`

	// SignPlus prefixes renderings with a '+' sign.
	SignPlus bool `yaml:"signPlus"`
}

var errNegativePrecision = errors.New("precision must not be negative")

// NewFormatter validates the configuration and creates a Formatter from it.
func (c FormatConfig) NewFormatter() (*Formatter, error) {
	if err := validator.Validate(c); err != nil {
		return nil, err
	}
	if c.Precision != nil && *c.Precision < 0 {
		return nil, errNegativePrecision
	}

	verb := "%"
	if c.SignPlus {
		verb += "+"
	}
	if c.Width > 0 {
		verb += strconv.Itoa(c.Width)
	}
	if c.Precision != nil {
		verb += "." + strconv.Itoa(*c.Precision)
	}
	verb += "v"
	return &Formatter{verb: verb}, nil
}

// Formatter renders durations with a fixed precision, width and sign
// configuration.
type Formatter struct {
	verb string
}

// Format returns d rendered under the formatter's configuration.
func (f *Formatter) Format(d Duration) string {
	return fmt.Sprintf(f.verb, d)
}
