// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

// Transcript is the Fiat-Shamir absorber/sampler shared by the prover and
// verifier drivers. Append order must match exactly between prove and verify
// or the sampled challenges diverge and the proof is rejected.
type Transcript struct {
	state   crypto.KeccakState
	counter int
}

// NewTranscript returns a fresh transcript seeded with no prior state.
func NewTranscript() *Transcript {
	return &Transcript{state: crypto.NewKeccakState()}
}

// Append absorbs raw bytes into the transcript state.
func (t *Transcript) Append(data []byte) {
	if _, err := t.state.Write(data); err != nil {
		panic(err)
	}
}

// AppendFr absorbs the canonical encoding of a single field element.
func (t *Transcript) AppendFr(x Fr) {
	b := x.Bytes()
	t.Append(b[:])
}

// AppendFrVec absorbs the canonical encoding of a slice of field elements.
func (t *Transcript) AppendFrVec(xs []Fr) {
	t.Append(EncodeFrVec(xs))
}

// Sample squeezes the next challenge. A monotonic counter is absorbed before
// every squeeze so two samples separated by no Append still diverge.
func (t *Transcript) Sample() Fr {
	t.counter++
	t.AppendFr(FrFromInt64(int64(t.counter)))
	return FrFromBigInt(new(big.Int).SetBytes(t.state.Sum(nil)))
}

// EncodeFrVec concatenates the canonical 32-byte encoding of each element.
func EncodeFrVec(xs []Fr) []byte {
	out := make([]byte, 0, 32*len(xs))
	for _, x := range xs {
		b := x.Bytes()
		out = append(out, b[:]...)
	}
	return out
}
