// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// exactPowersOfTen holds 10^0 .. 10^22, each of which is exactly
// representable in binary64 (the largest is 10^22 == 1e22, whose mantissa
// fits in 53 bits). Used by the Clinger fast path below.
var exactPowersOfTen = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// maxExactInt is the largest integer exactly representable in a float64
// mantissa, 2^53 - 1.
const maxExactInt = 1<<53 - 1

// clingerFastPath implements W. D. Clinger's "How to read floating point
// numbers accurately" (PLDI '90): if w fits in 53 bits and q is small enough
// that 10^q (or 1/10^q) is itself exact in binary64, then a single
// correctly-rounded floating point multiply or divide yields the correctly
// rounded value of w * 10^q, because IEEE-754 guarantees that
// basic operations are correctly rounded and Go guarantees round-to-nearest,
// ties-to-even for all of +,-,*,/.
//
// This only holds when both operands feeding the multiply/divide are
// themselves exact, which is why q is restricted to [-22, 22]: outside that
// range 10^q can no longer be represented exactly as a float64, and a
// "single exact operation" stops being single or exact.
func clingerFastPath(w uint64, q int64, neg bool) (f float64, ok bool) {
	if w > maxExactInt {
		return 0, false
	}
	if q < -22 || q > 22 {
		return 0, false
	}
	f = float64(w)
	if q >= 0 {
		f *= exactPowersOfTen[q]
	} else {
		f /= exactPowersOfTen[-q]
	}
	if neg {
		f = -f
	}
	return f, true
}
