// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "github.com/db47h/fastfloat/refdecimal"

// ParseNumber scans a single decimal numeral out of the start of s and
// returns the nearest binary64 value.
//
// On success, ok is true, value holds the correctly rounded result, and
// consumed is the number of bytes making up the numeral — s[consumed:] is
// whatever follows it, including nothing at all. On failure ok is false and
// value and consumed are both zero; this covers both a syntax error (s does
// not start with a valid numeral) and an over-range numeral that the
// reference decoder resolves to a non-finite value.
//
// ParseNumber never allocates and never blocks, except on the rare inputs
// that fall through to [refdecimal.Parse].
func ParseNumber(s string) (value float64, consumed int, ok bool) {
	v, n, mustDelegate, scanOK := scanNumber(s)
	if !scanOK {
		return 0, 0, false
	}
	if !mustDelegate {
		if f, computeOK := ComputeFloat64(v.q, v.w, v.neg); computeOK {
			return f, n, true
		}
	}
	f, refOK := refdecimal.Parse(s[:n])
	if !refOK {
		return 0, 0, false
	}
	return f, n, true
}
