// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import (
	"crypto/rand"
	"math/big"

	"github.com/cloudflare/bn256"
)

// Fr is an element of the BN254 scalar field, always kept reduced mod
// bn256.Order.
type Fr struct {
	v *big.Int
}

var zero = big.NewInt(0)

// FrZero returns the additive identity.
func FrZero() Fr { return Fr{v: new(big.Int)} }

// FrOne returns the multiplicative identity.
func FrOne() Fr { return FrFromInt64(1) }

// FrFromInt64 reduces v mod bn256.Order.
func FrFromInt64(v int64) Fr {
	return Fr{v: new(big.Int).Mod(big.NewInt(v), bn256.Order)}
}

// FrFromBigInt reduces v mod bn256.Order.
func FrFromBigInt(v *big.Int) Fr {
	return Fr{v: new(big.Int).Mod(v, bn256.Order)}
}

// FrFromBytes interprets b as a little-endian encoded field element.
func FrFromBytes(b [32]byte) Fr {
	be := make([]byte, 32)
	for i := range b {
		be[31-i] = b[i]
	}
	return Fr{v: new(big.Int).Mod(new(big.Int).SetBytes(be), bn256.Order)}
}

// MustRandFr samples a uniformly random field element.
func MustRandFr() Fr {
	v, err := rand.Int(rand.Reader, bn256.Order)
	if err != nil {
		panic(err)
	}
	return Fr{v: v}
}

func (x Fr) bigInt() *big.Int {
	if x.v == nil {
		return zero
	}
	return x.v
}

// Bytes returns the canonical fixed-width little-endian encoding of x.
func (x Fr) Bytes() [32]byte {
	be := x.bigInt().Bytes()
	var out [32]byte
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// Add returns x+y mod bn256.Order.
func (x Fr) Add(y Fr) Fr {
	return Fr{v: new(big.Int).Mod(new(big.Int).Add(x.bigInt(), y.bigInt()), bn256.Order)}
}

// Sub returns x-y mod bn256.Order.
func (x Fr) Sub(y Fr) Fr {
	return Fr{v: new(big.Int).Mod(new(big.Int).Sub(x.bigInt(), y.bigInt()), bn256.Order)}
}

// Mul returns x*y mod bn256.Order.
func (x Fr) Mul(y Fr) Fr {
	return Fr{v: new(big.Int).Mod(new(big.Int).Mul(x.bigInt(), y.bigInt()), bn256.Order)}
}

// Neg returns -x mod bn256.Order.
func (x Fr) Neg() Fr {
	return Fr{v: new(big.Int).Mod(new(big.Int).Neg(x.bigInt()), bn256.Order)}
}

// Inv returns the multiplicative inverse of x. Panics if x is zero: the
// only inversion in this module is of a nonzero denominator guaranteed by
// the interpolation grid, never attacker-controlled shape.
func (x Fr) Inv() Fr {
	if x.IsZero() {
		panic("gkr: inverse of zero field element")
	}
	return Fr{v: new(big.Int).ModInverse(x.bigInt(), bn256.Order)}
}

// Pow returns x^e mod bn256.Order for e >= 0.
func (x Fr) Pow(e int64) Fr {
	return Fr{v: new(big.Int).Exp(x.bigInt(), big.NewInt(e), bn256.Order)}
}

// IsZero reports whether x is the additive identity.
func (x Fr) IsZero() bool {
	return x.bigInt().Sign() == 0
}

// Equal reports whether x and y represent the same field element.
func (x Fr) Equal(y Fr) bool {
	return x.bigInt().Cmp(y.bigInt()) == 0
}

// String renders the decimal representation, used by go-spew dumps in tests.
func (x Fr) String() string {
	return x.bigInt().String()
}

// linearInterpolate evaluates the unique affine function through (0,y0) and
// (1,y1) at t: y0 + t*(y1-y0). Used by sum-check's per-round factor folding.
func linearInterpolate(y0, y1, t Fr) Fr {
	return y0.Add(t.Mul(y1.Sub(y0)))
}
