// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// MLE is the evaluation-vector representation of a multilinear extension of
// a function on the boolean hypercube {0,1}^n. Evals has length 2^n.
// Variable 0 is the most significant bit of the flat index:
// index = sum_j x_j * 2^(n-1-j).
type MLE struct {
	Evals []Fr
}

// NewMLE wraps evals as a multilinear extension. evals must have
// power-of-two length; this is an authored-by-us invariant, so a mismatch
// panics rather than returning an error.
func NewMLE(evals []Fr) *MLE {
	if !isPowerOfTwo(len(evals)) {
		panic("gkr: MLE length must be a power of two")
	}
	return &MLE{Evals: evals}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func log2Exact(n int) int {
	k := 0
	for (1 << k) < n {
		k++
	}
	return k
}

// NumVars returns log2(len(Evals)).
func (m *MLE) NumVars() int {
	return log2Exact(len(m.Evals))
}

// Evaluate computes m(point) by folding the leading variable repeatedly.
func (m *MLE) Evaluate(point []Fr) Fr {
	if len(point) != m.NumVars() {
		panic("gkr: MLE.Evaluate point dimension mismatch")
	}
	cur := m.Evals
	for _, r := range point {
		half := len(cur) / 2
		next := make([]Fr, half)
		for i := 0; i < half; i++ {
			next[i] = linearInterpolate(cur[i], cur[half+i], r)
		}
		cur = next
	}
	return cur[0]
}

// PartialEvaluate binds the variable at position varIndex (0 = leading) to
// value, halving the evaluation vector. The prover and verifier only use
// varIndex 0 (directly for the output layer's gate-selector variable, and
// through BindLeading for the other layers); MultiPartialEvaluate binds
// the last variable. The operation is implemented generally.
func (m *MLE) PartialEvaluate(varIndex int, value Fr) *MLE {
	n := m.NumVars()
	if varIndex < 0 || varIndex >= n {
		panic("gkr: PartialEvaluate variable index out of range")
	}
	blockSize := 1 << (n - varIndex)
	half := blockSize / 2
	out := make([]Fr, len(m.Evals)/2)
	outIdx := 0
	for base := 0; base < len(m.Evals); base += blockSize {
		for i := 0; i < half; i++ {
			lo := m.Evals[base+i]
			hi := m.Evals[base+half+i]
			out[outIdx] = linearInterpolate(lo, hi, value)
			outIdx++
		}
	}
	return &MLE{Evals: out}
}

// MultiPartialEvaluate binds the trailing len(values) variables in order:
// values[0] binds the variable immediately after the retained prefix,
// values[len(values)-1] binds the very last variable.
func (m *MLE) MultiPartialEvaluate(values []Fr) *MLE {
	cur := m
	for i := len(values) - 1; i >= 0; i-- {
		cur = cur.PartialEvaluate(cur.NumVars()-1, values[i])
	}
	return cur
}

// BindLeading binds the leading len(values) variables in order: values[0]
// binds variable 0, values[1] binds the variable that was originally
// variable 1, and so on. Used to bind the wiring predicate's own
// gate-index variable group, which occupies the most-significant bits of
// the evaluation index (see the a*w^2+b*w+c position formula).
func (m *MLE) BindLeading(values []Fr) *MLE {
	cur := m
	for _, v := range values {
		cur = cur.PartialEvaluate(0, v)
	}
	return cur
}

// Scale returns c*m, a new MLE with every evaluation multiplied by c.
func (m *MLE) Scale(c Fr) *MLE {
	out := make([]Fr, len(m.Evals))
	for i, v := range m.Evals {
		out[i] = v.Mul(c)
	}
	return &MLE{Evals: out}
}

// Add returns m+other, requiring matching evaluation-vector length.
func (m *MLE) Add(other *MLE) *MLE {
	if len(m.Evals) != len(other.Evals) {
		panic("gkr: MLE.Add length mismatch")
	}
	out := make([]Fr, len(m.Evals))
	for i := range out {
		out[i] = m.Evals[i].Add(other.Evals[i])
	}
	return &MLE{Evals: out}
}

// AddMulPolynomials builds the outer-combination table used to combine two
// layer-value vectors under an operation: result[i*len(b)+j] = op(a[i], b[j]).
// This is the "add_mul_polynomials" kernel of the original GKR reduction.
func AddMulPolynomials(a, b []Fr, op Operation) []Fr {
	out := make([]Fr, len(a)*len(b))
	for i, ai := range a {
		for j, bj := range b {
			out[i*len(b)+j] = op.Apply(ai, bj)
		}
	}
	return out
}
