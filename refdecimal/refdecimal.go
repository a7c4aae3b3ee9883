// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refdecimal is the reference fall-back decoder that
// [github.com/db47h/fastfloat] defers to whenever its fast core cannot
// guarantee a correctly rounded result: overlong mantissas, decimal
// exponents outside the power-of-ten table, and the rare inputs that land
// exactly on (or just short of) a rounding boundary.
//
// It trades speed for a proof of correctness: rather than truncated
// fixed-width tables, it parses the decimal text into an arbitrary-precision
// binary value and rounds exactly once, to binary64 precision, with ties to
// even. There is no fast path here and none is wanted; this package exists
// to be trustworthy, not quick.
package refdecimal

import (
	"math"
	"math/big"
)

// Parse decodes s, a decimal numeral already validated by the caller's own
// grammar (sign, integer part, optional fraction, optional exponent), into
// the binary64 value nearest (−1)^neg·w·10^q under round-half-to-even.
//
// ok is false when the reference decoder itself rejects s (should not
// happen for input that passed the caller's scanner) or when the decoded
// magnitude exceeds binary64 range and rounds to ±Inf: overflowing input is
// treated as a parse failure here, never as an infinity.
func Parse(s string) (value float64, ok bool) {
	f, _, err := big.ParseFloat(s, 10, 53, big.ToNearestEven)
	if err != nil {
		return 0, false
	}
	value, _ = f.Float64()
	if math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
