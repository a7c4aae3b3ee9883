// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdecimal

import (
	"math"
	"strconv"
	"testing"
)

func TestParseAgreesWithStrconv(t *testing.T) {
	td := []string{
		"0", "-0", "1", "3.14159", "2.5e10", "9007199254740991",
		"1e-300", "1e300", "4503599627370497.5",
		"1090544144181609348835077142190",
		"7.3177701707893310e+15",
	}
	for _, s := range td {
		v, ok := Parse(s)
		if !ok {
			t.Fatalf("Parse(%q) failed", s)
		}
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat(%q): %v", s, err)
		}
		if v != want {
			t.Fatalf("Parse(%q) = %v (%#x), want %v (%#x)", s, v, math.Float64bits(v), want, math.Float64bits(want))
		}
	}
}

func TestParseOverflowIsRejected(t *testing.T) {
	for _, s := range []string{"1e400", "-1e400", "1" + zeros(310)} {
		if _, ok := Parse(s); ok {
			t.Fatalf("Parse(%q) succeeded, want rejection as non-finite", s)
		}
	}
}

func TestParseSubnormal(t *testing.T) {
	// 2^-1074, the smallest positive subnormal double, expressed decimally;
	// exercises Float64's denormal rounding path rather than Inf/zero.
	s := "4.9406564584124654e-324"
	v, ok := Parse(s)
	if !ok {
		t.Fatalf("Parse(%q) failed", s)
	}
	if v != math.Float64frombits(1) {
		t.Fatalf("Parse(%q) = %#x, want smallest subnormal", s, math.Float64bits(v))
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
