// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import (
	"strconv"
	"testing"
)

func TestScanNumberGrammar(t *testing.T) {
	td := []struct {
		s    string
		ok   bool
		n    int
		neg  bool
		w    uint64
		q    int64
		skip bool // mustDelegate expected true
	}{
		{s: "0", ok: true, n: 1, w: 0, q: 0},
		{s: "-0", ok: true, n: 2, neg: true, w: 0, q: 0},
		{s: "00", ok: false},
		{s: "01", ok: false},
		{s: "0.", ok: false},
		{s: "0.5", ok: true, n: 3, w: 5, q: -1},
		{s: "1.", ok: false},
		{s: "", ok: false},
		{s: "-", ok: false},
		{s: "+1", ok: false},
		{s: "1e", ok: false},
		{s: "1e+", ok: false},
		{s: "1e5", ok: true, n: 3, w: 1, q: 5},
		{s: "1E5", ok: true, n: 3, w: 1, q: 5},
		{s: "123.456e1", ok: true, n: 9, w: 123456, q: -3 + 1},
		{s: "5e0012", ok: true, n: 6, w: 5, q: 12},
		{s: "0.001", ok: true, n: 5, w: 1, q: -3},
		{s: "1090544144181609348835077142190", ok: true, n: 31, skip: true},
		{s: "0e+42949672970", ok: true, n: 14, w: 0, skip: true},
		{s: "123xyz", ok: true, n: 3, w: 123, q: 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i)+"/"+d.s, func(t *testing.T) {
			v, n, mustDelegate, ok := scanNumber(d.s)
			if ok != d.ok {
				t.Fatalf("scanNumber(%q) ok = %v, want %v", d.s, ok, d.ok)
			}
			if !ok {
				return
			}
			if n != d.n {
				t.Fatalf("scanNumber(%q) consumed = %d, want %d", d.s, n, d.n)
			}
			if d.skip {
				if !mustDelegate {
					t.Fatalf("scanNumber(%q) mustDelegate = false, want true", d.s)
				}
				return
			}
			if mustDelegate {
				t.Fatalf("scanNumber(%q) mustDelegate = true, want false", d.s)
			}
			if v.neg != d.neg || v.w != d.w || v.q != d.q {
				t.Fatalf("scanNumber(%q) = %+v, want neg=%v w=%d q=%d", d.s, v, d.neg, d.w, d.q)
			}
		})
	}
}

func TestScanNumberOverflowDelegation(t *testing.T) {
	// 19 nines: digit count reaches the minOverflowDigits delegation threshold.
	s := "9999999999999999999"
	_, _, mustDelegate, ok := scanNumber(s)
	if !ok || !mustDelegate {
		t.Fatalf("scanNumber(%q) = (_, _, %v, %v), want (_, _, true, true)", s, mustDelegate, ok)
	}
}

func TestScanNumberExponentRangeDelegation(t *testing.T) {
	for _, s := range []string{"1e309", "1e-326", "1e400"} {
		_, _, mustDelegate, ok := scanNumber(s)
		if !ok || !mustDelegate {
			t.Fatalf("scanNumber(%q) = (_, _, %v, %v), want (_, _, true, true)", s, mustDelegate, ok)
		}
	}
}
