// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// Verify checks proof against circuit and the public inputs, replaying the
// same Fiat-Shamir transcript the prover used. Returns false on any
// inconsistency; never panics on attacker-supplied proof content.
func Verify(proof *Proof, circuit *Circuit, inputs []Fr) bool {
	if proof == nil || proof.OutputPoly == nil || len(proof.OutputPoly.Evals) != 2 {
		return false
	}

	numLayers := len(circuit.Layers)
	if len(proof.ProofPolynomials) != numLayers || len(proof.ClaimedEvaluations) != numLayers {
		return false
	}

	transcript := NewTranscript()
	transcript.AppendFrVec(proof.OutputPoly.Evals)
	r0 := transcript.Sample()
	claim := proof.OutputPoly.Evaluate([]Fr{r0})

	var rbPrev, rcPrev []Fr
	var alpha, beta Fr

	for i := 0; i < numLayers; i++ {
		nextWidth := len(inputs)
		if i+1 < numLayers {
			nextWidth = circuit.Layers[i+1].Width()
		}
		if !isPowerOfTwo(nextWidth) {
			return false
		}
		expectedRounds := 2 * log2Exact(nextWidth)

		roundPolys := proof.ProofPolynomials[i]
		if len(roundPolys) != expectedRounds {
			return false
		}

		ok, randomness, finalClaim := GKRVerify(roundPolys, claim, transcript)
		if !ok {
			return false
		}

		var r0Ptr *Fr
		if i == 0 {
			r0Ptr = &r0
		}
		addCombo := wiringCombo(circuit, i, nextWidth, OpAdd, r0Ptr, rbPrev, rcPrev, alpha, beta)
		mulCombo := wiringCombo(circuit, i, nextWidth, OpMul, r0Ptr, rbPrev, rcPrev, alpha, beta)

		o1 := proof.ClaimedEvaluations[i][0]
		o2 := proof.ClaimedEvaluations[i][1]

		expected := addCombo.Evaluate(randomness).Mul(o1.Add(o2)).
			Add(mulCombo.Evaluate(randomness).Mul(o1.Mul(o2)))
		if !expected.Equal(finalClaim) {
			return false
		}

		half := len(randomness) / 2
		pb, pc := randomness[:half], randomness[half:]

		if i+1 == numLayers {
			wantO1 := (&MLE{Evals: inputs}).Evaluate(pb)
			wantO2 := (&MLE{Evals: inputs}).Evaluate(pc)
			if !o1.Equal(wantO1) || !o2.Equal(wantO2) {
				return false
			}
		}

		transcript.AppendFr(o1)
		transcript.AppendFr(o2)

		if i+1 < numLayers {
			alpha = transcript.Sample()
			beta = transcript.Sample()
			claim = alpha.Mul(o1).Add(beta.Mul(o2))
			rbPrev, rcPrev = pb, pc
		}
	}

	return true
}
