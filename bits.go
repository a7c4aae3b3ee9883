// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "math/bits"

// mul128 returns the full 128-bit product of a and b as (hi, lo), with hi
// holding the most significant 64 bits. On every architecture Go supports
// this compiles to a single hardware widening multiply.
func mul128(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// mul128x64to128 multiplies the 128-bit value (aHi, aLo) by the 64-bit value
// b, keeping the top 128 bits of the 192-bit result (i.e. it drops the low
// 64 bits of the full product, which is precisely what compute.go needs:
// aLo only ever contributes through its carry into the high word).
func mul128x64to128(aHi, aLo, b uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(aHi, b)
	carryLo, _ := bits.Mul64(aLo, b)
	var carry uint64
	lo, carry = bits.Add64(lo, carryLo, 0)
	hi += carry
	return hi, lo
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
