// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// demoCircuit builds the three-layer demo circuit used across the test
// scenarios: bottom layer (width 4, Mul gates) reading the 8 raw inputs,
// a middle layer (width 2, Add gates), and the single-gate output layer
// (Add). Circuit.Layers is stored output-first, so the bottom (widest)
// layer is the last entry.
func demoCircuit() *Circuit {
	return &Circuit{Layers: []Layer{
		{Gates: []Operation{OpAdd}},                         // output, width 1
		{Gates: []Operation{OpAdd, OpAdd}},                   // width 2
		{Gates: []Operation{OpMul, OpMul, OpMul, OpMul}},     // bottom, width 4
	}}
}

func demoInputs() []Fr {
	vals := []int64{5, 2, 2, 4, 10, 0, 3, 3}
	out := make([]Fr, len(vals))
	for i, v := range vals {
		out[i] = FrFromInt64(v)
	}
	return out
}

func TestProveAndVerify(t *testing.T) {
	circuit := demoCircuit()
	inputs := demoInputs()

	proof, err := Prove(circuit, inputs)
	if err != nil {
		t.Fatalf("Prove returned error: %v", err)
	}
	spew.Dump(proof)

	if !Verify(proof, circuit, inputs) {
		t.Fatal("Verify rejected an honestly generated proof")
	}
}

func TestProveRejectsMismatchedInputLength(t *testing.T) {
	circuit := demoCircuit()
	_, err := Prove(circuit, demoInputs()[:7])
	if err == nil {
		t.Fatal("expected Prove to reject a malformed input length")
	}
}

func TestVerifyRejectsTamperedClaimedEvaluation(t *testing.T) {
	circuit := demoCircuit()
	inputs := demoInputs()

	proof, err := Prove(circuit, inputs)
	if err != nil {
		t.Fatalf("Prove returned error: %v", err)
	}

	proof.ClaimedEvaluations[0][0] = proof.ClaimedEvaluations[0][0].Add(FrOne())

	if Verify(proof, circuit, inputs) {
		t.Fatal("Verify accepted a proof with a tampered claimed evaluation")
	}
}

func TestVerifyRejectsTamperedOutput(t *testing.T) {
	circuit := demoCircuit()
	inputs := demoInputs()

	proof, err := Prove(circuit, inputs)
	if err != nil {
		t.Fatalf("Prove returned error: %v", err)
	}

	proof.OutputPoly = NewMLE([]Fr{
		proof.OutputPoly.Evals[0].Add(FrOne()),
		proof.OutputPoly.Evals[1],
	})

	if Verify(proof, circuit, inputs) {
		t.Fatal("Verify accepted a proof with a tampered output claim")
	}
}

func TestVerifyRejectsTamperedRoundPolynomial(t *testing.T) {
	circuit := demoCircuit()
	inputs := demoInputs()

	proof, err := Prove(circuit, inputs)
	if err != nil {
		t.Fatalf("Prove returned error: %v", err)
	}

	lastLayer := len(proof.ProofPolynomials) - 1
	lastRound := len(proof.ProofPolynomials[lastLayer]) - 1
	tampered := proof.ProofPolynomials[lastLayer][lastRound]
	tampered.Coeffs = append([]Fr{}, tampered.Coeffs...)
	tampered.Coeffs[0] = tampered.Coeffs[0].Add(FrOne())
	proof.ProofPolynomials[lastLayer][lastRound] = tampered

	if Verify(proof, circuit, inputs) {
		t.Fatal("Verify accepted a proof with a tampered round polynomial")
	}
}

func TestAddMulPolynomialsAddLaw(t *testing.T) {
	a := []Fr{FrFromInt64(1), FrFromInt64(2)}
	b := []Fr{FrFromInt64(3), FrFromInt64(4)}

	got := AddMulPolynomials(a, b, OpAdd)
	want := []Fr{FrFromInt64(4), FrFromInt64(5), FrFromInt64(5), FrFromInt64(6)}

	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("AddMulPolynomials(add) index %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestAddMulPolynomialsMulLaw(t *testing.T) {
	a := []Fr{FrFromInt64(1), FrFromInt64(2)}
	b := []Fr{FrFromInt64(3), FrFromInt64(4)}

	got := AddMulPolynomials(a, b, OpMul)
	want := []Fr{FrFromInt64(3), FrFromInt64(4), FrFromInt64(6), FrFromInt64(8)}

	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("AddMulPolynomials(mul) index %d: got %s want %s", i, got[i], want[i])
		}
	}
}
