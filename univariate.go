// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// UnivariatePoly is a dense, ascending-order coefficient-form polynomial:
// Coeffs[i] is the coefficient of x^i. This is the wire format for every
// sum-check round message.
type UnivariatePoly struct {
	Coeffs []Fr
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p UnivariatePoly) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if !p.Coeffs[i].IsZero() {
			return i
		}
	}
	return -1
}

// Evaluate computes p(x) via Horner's method.
func (p UnivariatePoly) Evaluate(x Fr) Fr {
	acc := FrZero()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.Coeffs[i])
	}
	return acc
}

// Add returns p+q, zero-padding the shorter operand.
func (p UnivariatePoly) Add(q UnivariatePoly) UnivariatePoly {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]Fr, n)
	for i := 0; i < n; i++ {
		var a, b Fr
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i] = a.Add(b)
	}
	return UnivariatePoly{Coeffs: out}
}

// InterpolateUniformPoints returns the unique polynomial of degree
// len(ys)-1 passing through (0,ys[0]), (1,ys[1]), ..., via Lagrange
// interpolation on the uniform grid {0,...,len(ys)-1}.
func InterpolateUniformPoints(ys []Fr) UnivariatePoly {
	n := len(ys)
	xs := make([]Fr, n)
	for i := range xs {
		xs[i] = FrFromInt64(int64(i))
	}

	result := make([]Fr, n)
	for i := 0; i < n; i++ {
		// Build the i-th Lagrange basis polynomial as dense coefficients,
		// then accumulate ys[i]*basis into result.
		basis := []Fr{FrOne()}
		denom := FrOne()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			basis = polyMulLinear(basis, xs[j])
			denom = denom.Mul(xs[i].Sub(xs[j]))
		}
		scale := ys[i].Mul(denom.Inv())
		for k, c := range basis {
			result[k] = result[k].Add(c.Mul(scale))
		}
	}
	return UnivariatePoly{Coeffs: result}
}

// polyMulLinear multiplies a dense polynomial by (x - root), growing its
// degree by one.
func polyMulLinear(coeffs []Fr, root Fr) []Fr {
	out := make([]Fr, len(coeffs)+1)
	for i, c := range coeffs {
		out[i] = out[i].Sub(c.Mul(root))
		out[i+1] = out[i+1].Add(c)
	}
	return out
}
