// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// circuitForLayer is a one-layer view used so GetAddMulI's layer-index-0
// convention (output-layer padding) can be reused uniformly when building
// the output layer's own wiring predicate.
func circuitForLayer(layer Layer) *Circuit {
	return &Circuit{Layers: []Layer{layer}}
}

// wiringCombo returns the bound add_i or mul_i MLE that the output/merged
// round polynomial multiplies against the W-combination table, without
// needing wNext's actual values: the initial form binds the leading
// (single-bit) gate-selector variable to r; the merged form binds the
// leading gate-index variable group at two points given by the previous
// round's rb, rc and scales+sums the copies by alpha, beta. Binding the
// leading group (rather than the trailing one) keeps the remaining
// variables aligned with the (b,c) split the W-combination table itself
// uses. Shared by the prover (builds the ProductPoly factor) and the
// verifier (evaluates it directly at the current round's own randomness).
func wiringCombo(circuit *Circuit, layerIdx int, nextWidth int, op Operation, r *Fr, rbPrev, rcPrev []Fr, alpha, beta Fr) *MLE {
	if layerIdx == 0 {
		return circuitForLayer(circuit.Layers[0]).GetAddMulI(0, nextWidth, op).PartialEvaluate(0, *r)
	}

	wi := circuit.GetAddMulI(layerIdx, nextWidth, op)
	boundRb := wi.BindLeading(rbPrev).Scale(alpha)
	boundRc := wi.BindLeading(rcPrev).Scale(beta)
	return boundRb.Add(boundRc)
}

// BuildInitialFbc constructs the layer-0 (output) round polynomial: the
// wiring predicates are partially evaluated at the leading gate-selector
// variable bound to r (the same randomness used to collapse the padded
// output claim), leaving the (b,c) variables that range over wNext free.
func BuildInitialFbc(r Fr, layer Layer, wNext []Fr) *SumPoly {
	c := circuitForLayer(layer)
	addI := wiringCombo(c, 0, len(wNext), OpAdd, &r, nil, nil, Fr{}, Fr{})
	mulI := wiringCombo(c, 0, len(wNext), OpMul, &r, nil, nil, Fr{}, Fr{})

	wSum := AddMulPolynomials(wNext, wNext, OpAdd)
	wProd := AddMulPolynomials(wNext, wNext, OpMul)

	return &SumPoly{Products: []ProductPoly{
		NewProductPoly([][]Fr{addI.Evals, wSum}),
		NewProductPoly([][]Fr{mulI.Evals, wProd}),
	}}
}

// BuildMergedFbc constructs layer i's round polynomial (i >= 1) from the
// two sum-check-derived evaluation points rb, rc of the previous round
// (each of length log2(layer.Width()), the previous round's own claim
// about this layer's value vector) and the random linear combination
// weights alpha, beta. The wiring factor is bound at rb and rc, scaled by
// alpha and beta and summed, leaving exactly 2*log2(len(wNext)) free
// variables — matching the outer W-combination tables built from wNext.
func BuildMergedFbc(circuit *Circuit, layerIdx int, wNext []Fr, rb, rc []Fr, alpha, beta Fr) *SumPoly {
	summedAdd := wiringCombo(circuit, layerIdx, len(wNext), OpAdd, nil, rb, rc, alpha, beta)
	summedMul := wiringCombo(circuit, layerIdx, len(wNext), OpMul, nil, rb, rc, alpha, beta)

	wSum := AddMulPolynomials(wNext, wNext, OpAdd)
	wProd := AddMulPolynomials(wNext, wNext, OpMul)

	return &SumPoly{Products: []ProductPoly{
		NewProductPoly([][]Fr{summedAdd.Evals, wSum}),
		NewProductPoly([][]Fr{summedMul.Evals, wProd}),
	}}
}
