// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// decimalValue is the scanner's output: the sign, significand and decimal
// exponent triple from which ComputeFloat64 derives a binary64 result.
type decimalValue struct {
	neg bool
	w   uint64
	q   int64
}

// maxExponentAccumulator bounds the exponent sub-scan: once the running
// total reaches this value, further exponent digits are absorbed without
// changing it. That is coarse enough to still decide the q range check
// below correctly, since any q this large is already well outside
// [smallestPowerOfTen, largestPowerOfTen].
const maxExponentAccumulator = 1 << 32

// minOverflowDigits is the digit count at or above which w may have
// wrapped past 2^64 during accumulation (w holds at most 19 decimal
// digits exactly).
const minOverflowDigits = 19

// scanNumber scans the strict decimal grammar
//
//	[-] ( '0' | [1-9][0-9]* ) ( '.' [0-9]+ )? ( [eE] [+-]? [0-9]+ )?
//
// from the start of s. consumed is the number of bytes making up the
// numeral; ok is false on a syntax error, in which case v and consumed are
// meaningless and the caller must reject the input outright.
//
// mustDelegate is set when w or q cannot be trusted even though the
// grammar matched: either 19 or more significant digits were seen (w may
// have wrapped modulo 2^64) or q falls outside the power-of-ten table's
// range. The caller must then skip ComputeFloat64 and hand the consumed
// prefix to the reference decoder directly.
func scanNumber(s string) (v decimalValue, consumed int, mustDelegate, ok bool) {
	n := len(s)
	i := 0

	if i < n && s[i] == '-' {
		v.neg = true
		i++
	}
	if i >= n || !isDigit(s[i]) {
		return v, 0, false, false
	}

	digitCount := 0
	sawNonZero := false

	if s[i] == '0' {
		i++
		if i < n && isDigit(s[i]) {
			// a leading zero immediately followed by another digit ("00",
			// "01") is not a valid numeral.
			return v, 0, false, false
		}
	} else {
		for i < n && isDigit(s[i]) {
			v.w = v.w*10 + uint64(s[i]-'0')
			sawNonZero = true
			digitCount++
			i++
		}
	}

	if i < n && s[i] == '.' {
		i++
		fracStart := i
		for i < n && isDigit(s[i]) {
			d := s[i] - '0'
			if sawNonZero || d != 0 {
				sawNonZero = true
				v.w = v.w*10 + uint64(d)
				digitCount++
			}
			i++
		}
		if i == fracStart {
			// '.' with no following digit.
			return v, 0, false, false
		}
		v.q = -int64(i - fracStart)
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		expNeg := false
		if j < n && (s[j] == '+' || s[j] == '-') {
			expNeg = s[j] == '-'
			j++
		}
		expStart := j
		var exp int64
		for j < n && isDigit(s[j]) {
			if exp < maxExponentAccumulator {
				exp = exp*10 + int64(s[j]-'0')
			}
			j++
		}
		if j == expStart {
			// exponent marker with no digits following it.
			return v, 0, false, false
		}
		if expNeg {
			exp = -exp
		}
		v.q += exp
		i = j
	}

	if digitCount >= minOverflowDigits || v.q < smallestPowerOfTen || v.q > largestPowerOfTen {
		mustDelegate = true
	}
	return v, i, mustDelegate, true
}
