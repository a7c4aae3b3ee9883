// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fastfloat implements a correctly-rounded decimal-to-binary64 decoder.

Given a decimal numeral such as "3.14159" or "6.62607015e-34", ParseNumber
returns the nearest IEEE-754 binary64 value, rounded to nearest with ties to
even, using only fixed-width integer arithmetic.

The implementation follows the approach described by Daniel Lemire and Noble
Mushtak: a cheap exact path handles the common case where both the decimal
mantissa and the requested power of ten are exactly representable in binary64
(Clinger's algorithm), and a table-driven path handles everything else by
multiplying the mantissa against a precomputed 128-bit approximation of the
relevant power of ten. The table path is itself verified as it goes: when the
computed bits are too close to a rounding boundary to be trusted, ComputeFloat64
reports failure instead of guessing, and the caller falls back to
[github.com/db47h/fastfloat/refdecimal], which is slow but always
correct.

The entire core (ComputeFloat64 and the table in powers.go) is pure: it
performs no I/O, takes no locks and allocates no memory, so it may be called
concurrently from any number of goroutines, including from within a signal
handler.

Two entry points cover the two calling conventions seen in the wild:

	func ParseNumber(s string) (value float64, consumed int, ok bool)
	func ComputeFloat64(q int64, w uint64, neg bool) (value float64, ok bool)

ParseNumber scans a numeral out of s itself. ComputeFloat64 is exposed
separately for callers that already tokenize decimal numerals themselves (a
JSON decoder, for instance) and only need the final arithmetic step.
*/
package fastfloat
