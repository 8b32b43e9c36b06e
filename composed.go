// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// ProductPoly is the pointwise product of a fixed set of equal-length
// evaluation vectors. Its degree per variable equals the number of factors.
type ProductPoly struct {
	Factors [][]Fr
}

// NewProductPoly requires every factor to share the same length.
func NewProductPoly(factors [][]Fr) ProductPoly {
	if len(factors) == 0 {
		panic("gkr: ProductPoly requires at least one factor")
	}
	n := len(factors[0])
	for _, f := range factors {
		if len(f) != n {
			panic("gkr: ProductPoly factors must have equal length")
		}
	}
	return ProductPoly{Factors: factors}
}

// Degree returns the number of factors (the degree contributed per
// variable).
func (p ProductPoly) Degree() int {
	return len(p.Factors)
}

// NumVars returns log2 of a factor's length.
func (p ProductPoly) NumVars() int {
	return log2Exact(len(p.Factors[0]))
}

// evaluate computes the product of each factor's MLE evaluated at point.
func (p ProductPoly) evaluate(point []Fr) Fr {
	acc := FrOne()
	for _, f := range p.Factors {
		acc = acc.Mul((&MLE{Evals: f}).Evaluate(point))
	}
	return acc
}

// SumPoly is the pointwise sum of a fixed set of ProductPolys. In this
// module it always holds exactly two products: the add-gate term and the
// mul-gate term of one GKR layer round.
type SumPoly struct {
	Products []ProductPoly
}

// NumVars returns the shared number of variables across every product.
func (s *SumPoly) NumVars() int {
	return s.Products[0].NumVars()
}

// Evaluate sums every product's evaluation at point.
func (s *SumPoly) Evaluate(point []Fr) Fr {
	acc := FrZero()
	for _, p := range s.Products {
		acc = acc.Add(p.evaluate(point))
	}
	return acc
}

// RoundPoly extracts the current sum-check round's univariate message:
// g(X) = sum over the boolean hypercube of the remaining (non-leading)
// variables of the pointwise product, as a function of the leading
// variable X. Evaluated at X = 0..degree and interpolated to dense form.
func (s *SumPoly) RoundPoly() UnivariatePoly {
	degree := 0
	for _, p := range s.Products {
		if p.Degree() > degree {
			degree = p.Degree()
		}
	}

	ys := make([]Fr, degree+1)
	for x := 0; x <= degree; x++ {
		xFr := FrFromInt64(int64(x))
		total := FrZero()
		for _, p := range s.Products {
			total = total.Add(productEvalAt(p, xFr))
		}
		ys[x] = total
	}
	return InterpolateUniformPoints(ys)
}

// productEvalAt sums, over every suffix of the remaining (non-leading)
// variables, the product of each factor linearly interpolated between its
// low half (leading bit 0) and high half (leading bit 1) at X=x.
func productEvalAt(p ProductPoly, x Fr) Fr {
	half := len(p.Factors[0]) / 2
	total := FrZero()
	for suffix := 0; suffix < half; suffix++ {
		term := FrOne()
		for _, f := range p.Factors {
			v := linearInterpolate(f[suffix], f[half+suffix], x)
			term = term.Mul(v)
		}
		total = total.Add(term)
	}
	return total
}

// FoldRound binds the leading variable of every factor in every product to
// challenge, halving all factor lengths in place.
func (s *SumPoly) FoldRound(challenge Fr) {
	for pi := range s.Products {
		factors := s.Products[pi].Factors
		for fi, f := range factors {
			half := len(f) / 2
			next := make([]Fr, half)
			for i := 0; i < half; i++ {
				next[i] = linearInterpolate(f[i], f[half+i], challenge)
			}
			factors[fi] = next
		}
	}
}
