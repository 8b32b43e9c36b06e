// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import "testing"

func frs(vals ...int64) []Fr {
	out := make([]Fr, len(vals))
	for i, v := range vals {
		out[i] = FrFromInt64(v)
	}
	return out
}

func TestMLEEvaluateOnHypercube(t *testing.T) {
	m := NewMLE(frs(1, 2, 3, 4))

	cases := []struct {
		point []Fr
		want  int64
	}{
		{frs(0, 0), 1},
		{frs(0, 1), 2},
		{frs(1, 0), 3},
		{frs(1, 1), 4},
	}
	for _, c := range cases {
		got := m.Evaluate(c.point)
		if !got.Equal(FrFromInt64(c.want)) {
			t.Fatalf("Evaluate(%v) = %s, want %d", c.point, got, c.want)
		}
	}
}

func TestMLEPartialEvaluateLeading(t *testing.T) {
	m := NewMLE(frs(1, 2, 3, 4))
	bound := m.PartialEvaluate(0, FrZero())
	if !bound.Evals[0].Equal(FrFromInt64(1)) || !bound.Evals[1].Equal(FrFromInt64(2)) {
		t.Fatalf("PartialEvaluate(0, 0) = %v, want [1 2]", bound.Evals)
	}

	bound = m.PartialEvaluate(0, FrOne())
	if !bound.Evals[0].Equal(FrFromInt64(3)) || !bound.Evals[1].Equal(FrFromInt64(4)) {
		t.Fatalf("PartialEvaluate(0, 1) = %v, want [3 4]", bound.Evals)
	}
}

func TestMLEMultiPartialEvaluateMatchesEvaluate(t *testing.T) {
	m := NewMLE(frs(1, 2, 3, 4, 5, 6, 7, 8))
	point := frs(0, 1, 1)

	bound := m.MultiPartialEvaluate(point[1:])
	got := bound.Evaluate(point[:1])
	want := m.Evaluate(point)

	if !got.Equal(want) {
		t.Fatalf("MultiPartialEvaluate then Evaluate = %s, want %s", got, want)
	}
}

func TestMLEBindLeadingMatchesEvaluate(t *testing.T) {
	m := NewMLE(frs(1, 2, 3, 4, 5, 6, 7, 8))
	point := frs(1, 0, 1)

	bound := m.BindLeading(point[:2])
	got := bound.Evaluate(point[2:])
	want := m.Evaluate(point)

	if !got.Equal(want) {
		t.Fatalf("BindLeading then Evaluate = %s, want %s", got, want)
	}
}

func TestMLEAddAndScale(t *testing.T) {
	a := NewMLE(frs(1, 2))
	b := NewMLE(frs(10, 20))

	sum := a.Add(b)
	if !sum.Evals[0].Equal(FrFromInt64(11)) || !sum.Evals[1].Equal(FrFromInt64(22)) {
		t.Fatalf("Add = %v, want [11 22]", sum.Evals)
	}

	scaled := a.Scale(FrFromInt64(3))
	if !scaled.Evals[0].Equal(FrFromInt64(3)) || !scaled.Evals[1].Equal(FrFromInt64(6)) {
		t.Fatalf("Scale = %v, want [3 6]", scaled.Evals)
	}
}
