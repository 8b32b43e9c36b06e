// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

// Proof is the complete non-interactive GKR transcript: enough for a
// verifier to check the prover correctly evaluated a circuit, without
// recomputing it.
type Proof struct {
	// OutputPoly is the MLE of the (possibly zero-padded) circuit output.
	OutputPoly *MLE

	// ProofPolynomials holds, per layer (outer index 0 = output layer),
	// one sum-check round polynomial per round.
	ProofPolynomials [][]UnivariatePoly

	// ClaimedEvaluations holds, per layer, the prover's claimed pair
	// (o1, o2) = (W_{i+1}(r_b), W_{i+1}(r_c)).
	ClaimedEvaluations [][2]Fr
}
