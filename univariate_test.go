// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import "testing"

func TestInterpolateUniformPointsRoundTrips(t *testing.T) {
	ys := frs(5, 9, 17) // 2x^2 + 2x + 5
	p := InterpolateUniformPoints(ys)

	for x, want := range ys {
		got := p.Evaluate(FrFromInt64(int64(x)))
		if !got.Equal(want) {
			t.Fatalf("p(%d) = %s, want %s", x, got, want)
		}
	}
}

func TestUnivariatePolyAdd(t *testing.T) {
	p := UnivariatePoly{Coeffs: frs(1, 2)}
	q := UnivariatePoly{Coeffs: frs(10, 20, 30)}

	sum := p.Add(q)
	want := frs(11, 22, 30)
	for i, w := range want {
		if !sum.Coeffs[i].Equal(w) {
			t.Fatalf("sum.Coeffs[%d] = %s, want %s", i, sum.Coeffs[i], w)
		}
	}
}

func TestUnivariatePolyDegree(t *testing.T) {
	p := UnivariatePoly{Coeffs: frs(1, 2, 0)}
	if p.Degree() != 1 {
		t.Fatalf("Degree() = %d, want 1", p.Degree())
	}
}
