// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// Prove evaluates circuit on inputs and produces a non-interactive GKR
// proof of that evaluation. Fails only on a malformed input length; every
// other invariant violation along the way indicates a bug in this module
// and panics instead.
func Prove(circuit *Circuit, inputs []Fr) (*Proof, error) {
	values, err := circuit.Evaluate(inputs)
	if err != nil {
		return nil, err
	}

	transcript := NewTranscript()
	outputPoly := NewMLE(values[0])
	transcript.AppendFrVec(values[0])
	r0 := transcript.Sample()
	claim := outputPoly.Evaluate([]Fr{r0})

	numLayers := len(circuit.Layers)
	proofPolynomials := make([][]UnivariatePoly, numLayers)
	claimedEvaluations := make([][2]Fr, numLayers)

	var rb, rc []Fr
	var alpha, beta Fr

	for i := 0; i < numLayers; i++ {
		layer := circuit.Layers[i]
		wNext := inputs
		if i+1 < numLayers {
			wNext = values[i+1]
		}

		var fbc *SumPoly
		if i == 0 {
			fbc = BuildInitialFbc(r0, layer, wNext)
		} else {
			fbc = BuildMergedFbc(circuit, i, wNext, rb, rc, alpha, beta)
		}

		scProof := GKRProve(claim, fbc, transcript)
		proofPolynomials[i] = scProof.RoundPolys

		randomness := scProof.Randomness
		half := len(randomness) / 2
		rb = randomness[:half]
		rc = randomness[half:]

		o1 := (&MLE{Evals: wNext}).Evaluate(rb)
		o2 := (&MLE{Evals: wNext}).Evaluate(rc)
		claimedEvaluations[i] = [2]Fr{o1, o2}

		transcript.AppendFr(o1)
		transcript.AppendFr(o2)

		if i+1 < numLayers {
			alpha = transcript.Sample()
			beta = transcript.Sample()
			claim = alpha.Mul(o1).Add(beta.Mul(o2))
		}
	}

	return &Proof{
		OutputPoly:         outputPoly,
		ProofPolynomials:   proofPolynomials,
		ClaimedEvaluations: claimedEvaluations,
	}, nil
}
