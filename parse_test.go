// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

func TestParseNumberConcreteScenarios(t *testing.T) {
	td := []struct {
		s    string
		want float64
		n    int
		ok   bool
	}{
		{"0", 0, 1, true},
		{"-0", 0, 2, true},
		{"0.", 0, 0, false},
		// whose hex form is 0x1.b8779f2474dfbp+99.
		{"1090544144181609348835077142190", math.Float64frombits(uint64(1023+99)<<52 | 0xb8779f2474dfb), 31, true},
		{"4503599627370497.5", 4503599627370497.5, 18, true},
		{"5e0012", 5e12, 6, true},
		// a product with only the high 64 bits of the table entry would be
		// inconclusive here; ComputeFloat64's full 128-bit entry decides it.
		{"7.3177701707893310e+15", 7.317770170789331e+15, 22, true},
		{"0e+42949672970", 0, 14, true},
		{"", 0, 0, false},
		{"-", 0, 0, false},
		{"+1", 0, 0, false},
		{"00", 0, 0, false},
		{"01", 0, 0, false},
		{"1e", 0, 0, false},
		{"1e+", 0, 0, false},
	}

	for i, d := range td {
		t.Run(strconv.Itoa(i)+"/"+d.s, func(t *testing.T) {
			v, n, ok := ParseNumber(d.s)
			if ok != d.ok {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", d.s, ok, d.ok)
			}
			if !ok {
				return
			}
			if n != d.n {
				t.Fatalf("ParseNumber(%q) consumed = %d, want %d", d.s, n, d.n)
			}
			if v != d.want || math.Signbit(v) != math.Signbit(d.want) {
				t.Fatalf("ParseNumber(%q) = %v (%#x), want %v (%#x)", d.s, v, math.Float64bits(v), d.want, math.Float64bits(d.want))
			}
		})
	}
}

func TestParseNumberSignSymmetry(t *testing.T) {
	inputs := []string{"1", "3.14159", "2.5e10", "9007199254740991", "1e-300", "1e300"}
	for _, s := range inputs {
		pos, n1, ok1 := ParseNumber(s)
		neg, n2, ok2 := ParseNumber("-" + s)
		if !ok1 || !ok2 {
			t.Fatalf("ParseNumber(%q)/(-%q) expected success, got %v/%v", s, s, ok1, ok2)
		}
		if n2 != n1+1 {
			t.Fatalf("consumed mismatch for %q: %d vs %d", s, n1, n2)
		}
		if neg != -pos {
			t.Fatalf("sign symmetry broken for %q: %v vs %v", s, pos, neg)
		}
	}
}

func TestParseNumberPowersOfTen(t *testing.T) {
	for q := -307; q <= 308; q++ {
		s := "1e" + strconv.Itoa(q)
		v, _, ok := ParseNumber(s)
		if !ok {
			t.Fatalf("ParseNumber(%q) failed", s)
		}
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat(%q): %v", s, err)
		}
		if v != want {
			t.Fatalf("ParseNumber(%q) = %v (%#x), want %v (%#x)", s, v, math.Float64bits(v), want, math.Float64bits(want))
		}
	}
}

func TestParseNumberFullConsumption(t *testing.T) {
	s := "3.14159e2"
	_, n, ok := ParseNumber(s)
	if !ok || n != len(s) {
		t.Fatalf("ParseNumber(%q) = (_, %d, %v), want full consumption", s, n, ok)
	}
}

func TestParseNumberTrailingGarbage(t *testing.T) {
	v, n, ok := ParseNumber("123abc")
	if !ok || n != 3 || v != 123 {
		t.Fatalf("ParseNumber(%q) = (%v, %d, %v), want (123, 3, true)", "123abc", v, n, ok)
	}
}

// TestParseNumberRandomBitPatterns is a differential round-trip test: take a
// random finite binary64, format it with enough significant digits to
// round-trip, and require ParseNumber to recover the exact same bits. A
// thorough sweep would sample 10^7 values; this runs a smaller sample suited
// to a unit test's budget.
func TestParseNumberRandomBitPatterns(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	const iterations = 200000
	tried := 0
	for tried < iterations {
		bits := rnd.Uint64()
		want := math.Float64frombits(bits)
		exp := bits >> 52 & 0x7ff
		if exp == 0 || exp == 0x7ff {
			continue // skip subnormals, zero and non-finite values
		}
		tried++
		s := strconv.FormatFloat(want, 'e', 16, 64)
		got, _, ok := ParseNumber(s)
		if !ok {
			t.Fatalf("ParseNumber(%q) failed for bit pattern %#x", s, bits)
		}
		if math.Float64bits(got) != bits {
			t.Fatalf("ParseNumber(%q) = %#x, want %#x", s, math.Float64bits(got), bits)
		}
	}
}
