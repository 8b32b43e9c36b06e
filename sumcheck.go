// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// SumcheckProof carries the round polynomials and the challenges they were
// folded against, produced by one run of GKRProve.
type SumcheckProof struct {
	RoundPolys []UnivariatePoly
	Randomness []Fr
}

// GKRProve runs the sum-check subprotocol for sum_{x in {0,1}^n} poly(x) =
// claim, absorbing each round polynomial into t and sampling the next
// challenge from it.
func GKRProve(claim Fr, poly *SumPoly, t *Transcript) SumcheckProof {
	n := poly.NumVars()
	proof := SumcheckProof{
		RoundPolys: make([]UnivariatePoly, n),
		Randomness: make([]Fr, n),
	}

	cur := claim
	for round := 0; round < n; round++ {
		g := poly.RoundPoly()
		if !g.Evaluate(FrZero()).Add(g.Evaluate(FrOne())).Equal(cur) {
			panic("gkr: sum-check prover produced an inconsistent round polynomial")
		}

		t.AppendFrVec(g.Coeffs)
		challenge := t.Sample()

		proof.RoundPolys[round] = g
		proof.Randomness[round] = challenge

		cur = g.Evaluate(challenge)
		poly.FoldRound(challenge)
	}
	return proof
}

// GKRVerify replays one sum-check transcript: each round polynomial must
// sum to the running claim at 0 and 1, after which the transcript samples
// the same challenge the prover used and the claim is updated to the round
// polynomial's evaluation there. Returns false on the first inconsistency.
func GKRVerify(roundPolys []UnivariatePoly, claim Fr, t *Transcript) (ok bool, randomness []Fr, finalClaim Fr) {
	cur := claim
	randomness = make([]Fr, len(roundPolys))

	for round, g := range roundPolys {
		if !g.Evaluate(FrZero()).Add(g.Evaluate(FrOne())).Equal(cur) {
			return false, nil, FrZero()
		}

		t.AppendFrVec(g.Coeffs)
		challenge := t.Sample()
		randomness[round] = challenge

		cur = g.Evaluate(challenge)
	}
	return true, randomness, cur
}
