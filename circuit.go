// Package gkr
// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import "fmt"

// Operation tags a gate as addition or multiplication.
type Operation int

const (
	OpAdd Operation = iota
	OpMul
)

// Apply evaluates the operation on a pair of wire values.
func (op Operation) Apply(a, b Fr) Fr {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpMul:
		return a.Mul(b)
	default:
		panic("gkr: unknown operation")
	}
}

// Layer holds one gate per entry. Gate g reads wires 2g and 2g+1 of the
// next-deeper layer (or of the input vector, for the bottom layer).
type Layer struct {
	Gates []Operation
}

// Width returns the number of gates in the layer.
func (l Layer) Width() int {
	return len(l.Gates)
}

// Circuit is a layered arithmetic circuit, ordered output-first (index 0 is
// the output layer, width 1) down to the layer just above the inputs.
type Circuit struct {
	Layers []Layer
}

// BottomLayer returns the layer that reads directly from the input vector.
func (c *Circuit) BottomLayer() Layer {
	return c.Layers[len(c.Layers)-1]
}

// Evaluate runs the circuit bottom-up on inputs, returning the value vector
// of every layer indexed the same way as c.Layers (index 0 = output layer's
// values, last index = the layer just above the inputs). Fails if the input
// length does not match twice the bottom layer's width.
func (c *Circuit) Evaluate(inputs []Fr) ([][]Fr, error) {
	bottom := c.BottomLayer()
	if len(inputs) != 2*bottom.Width() {
		return nil, fmt.Errorf("gkr: expected %d inputs for bottom layer of width %d, got %d",
			2*bottom.Width(), bottom.Width(), len(inputs))
	}

	values := make([][]Fr, len(c.Layers))
	cur := inputs
	for i := len(c.Layers) - 1; i >= 0; i-- {
		layer := c.Layers[i]
		out := make([]Fr, layer.Width())
		for g, op := range layer.Gates {
			out[g] = op.Apply(cur[2*g], cur[2*g+1])
		}
		values[i] = out
		cur = out
	}

	if len(values[0]) == 1 {
		values[0] = append(values[0], FrZero())
	}
	return values, nil
}

// gateIndexBits returns the number of bits needed to index layer i's own
// gates. The output layer (index 0) is always treated as width 2, matching
// the mandatory zero-padding of its value vector (see SPEC_FULL.md Design
// Notes: this generalizes the single "a" bit the original reduction names
// for the demo's output layer to every layer, derived from actual width).
func gateIndexBits(layerIdx int, layer Layer) int {
	if layerIdx == 0 {
		return 1
	}
	return log2Exact(layer.Width())
}

// GetAddMulI builds the dense wiring predicate extension for Layers[layerIdx]
// restricted to op, against a next-layer width of nextWidth. The returned
// MLE has gateIndexBits(layerIdx)+2*log2(nextWidth) variables, with exactly
// one nonzero entry per gate of the matching operation, at position
// a*nextWidth^2 + b*nextWidth + c where (b,c) = (2a, 2a+1).
func (c *Circuit) GetAddMulI(layerIdx int, nextWidth int, op Operation) *MLE {
	layer := c.Layers[layerIdx]
	aBits := gateIndexBits(layerIdx, layer)

	total := (1 << aBits) * nextWidth * nextWidth
	evals := make([]Fr, total)

	for a, gateOp := range layer.Gates {
		if gateOp != op {
			continue
		}
		b := 2 * a
		cWire := 2*a + 1
		if b >= nextWidth || cWire >= nextWidth {
			panic("gkr: wiring predicate references a wire beyond next layer width")
		}
		pos := a*nextWidth*nextWidth + b*nextWidth + cWire
		evals[pos] = FrOne()
	}

	return NewMLE(evals)
}
