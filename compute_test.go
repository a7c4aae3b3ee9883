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

func TestComputeFloat64Zero(t *testing.T) {
	f, ok := ComputeFloat64(0, 0, false)
	if !ok || f != 0 || math.Signbit(f) {
		t.Fatalf("ComputeFloat64(0,0,false) = (%v,%v), want (+0,true)", f, ok)
	}
	f, ok = ComputeFloat64(100, 0, true)
	if !ok || f != 0 || !math.Signbit(f) {
		t.Fatalf("ComputeFloat64(100,0,true) = (%v,%v), want (-0,true)", f, ok)
	}
}

// TestComputeFloat64ClingerExactness checks the Clinger fast path against
// Go's own correctly-rounded float parser for every n < 2^53 and q in
// [0, 22]. The full range is enormous, so this samples it densely rather
// than enumerating it.
func TestComputeFloat64ClingerExactness(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		n := rnd.Uint64() % (1 << 53)
		q := int64(rnd.Intn(23))
		f, ok := ComputeFloat64(q, n, false)
		if !ok {
			t.Fatalf("ComputeFloat64(%d,%d,false) reported failure, want success", q, n)
		}
		want, err := strconv.ParseFloat(strconv.FormatUint(n, 10)+"e"+strconv.FormatInt(q, 10), 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat: %v", err)
		}
		if f != want {
			t.Fatalf("ComputeFloat64(%d,%d,false) = %v (%#x), want %v (%#x)", q, n, f, math.Float64bits(f), want, math.Float64bits(want))
		}
	}
}

// TestComputeFloat64Agreement differentially tests the table path against
// strconv.ParseFloat across the full valid q range, using random 19-digit
// mantissas biased toward values the Clinger path cannot shortcut.
func TestComputeFloat64Agreement(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 200000; i++ {
		w := rnd.Uint64()
		q := int64(rnd.Intn(int(largestPowerOfTen-smallestPowerOfTen+1))) + smallestPowerOfTen
		neg := rnd.Intn(2) == 0

		f, ok := ComputeFloat64(q, w, neg)
		if !ok {
			continue // deferred to the reference decoder; not this test's concern
		}

		s := strconv.FormatUint(w, 10) + "e" + strconv.FormatInt(q, 10)
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat(%q): %v", s, err)
		}
		if neg {
			want = -want
		}
		if f != want {
			t.Fatalf("ComputeFloat64(%d,%d,%v) = %v (%#x), want %v (%#x) [%s]", q, w, neg, f, math.Float64bits(f), want, math.Float64bits(want), s)
		}
	}
}

func TestComputeFloat64RangeGuards(t *testing.T) {
	if _, ok := ComputeFloat64(smallestPowerOfTen-1, 1, false); ok {
		t.Fatalf("ComputeFloat64 accepted q below smallestPowerOfTen")
	}
	if _, ok := ComputeFloat64(largestPowerOfTen+1, 1, false); ok {
		t.Fatalf("ComputeFloat64 accepted q above largestPowerOfTen")
	}
}
