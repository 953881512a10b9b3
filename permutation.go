// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

import "math/bits"

// Permutation enforces that out is a permutation of in using a
// switching network:
//
//  1. Compute the total control-bit count B = Σ⌈log2(i+1)⌉ for
//     i in [0, n).
//  2. Allocate B fresh control-bit witnesses.
//  3. Emit a PermutationSort directive over in with those bits as
//     outputs (tuple arity 1, sort key index 0) — the prover hint
//     that assigns bit values so the network's outputs sort
//     ascending.
//  4. Run permutationLayer over in and the bits (without enforcing
//     ascending order) to get the network's output expressions.
//  5. AssertZero(b_i - out_i) for each pair.
//
// permutationLayer's correctness — that for any permutation there is
// a bit assignment routing in to any target ordering — is a
// precondition of the network construction, not proven here (see
// spec.md §4.10/§9).
func (b *Builder) Permutation(in, out []Expression) error {
	bitsLen := controlBitCount(len(in))

	controlBits := make([]Witness, bitsLen)
	for i := range controlBits {
		controlBits[i] = b.nextWitnessIndex()
	}

	sortInputs := make([][]Expression, len(in))
	for i, e := range in {
		sortInputs[i] = []Expression{e}
	}
	b.Push(Opcode{
		Kind: OpDirective,
		Directive: Directive{
			Kind:       DirectivePermutationSort,
			SortInputs: sortInputs,
			SortTuple:  1,
			SortBits:   append([]Witness{}, controlBits...),
			SortBy:     []uint32{0},
		},
	})

	network, err := b.permutationLayer(in, controlBits)
	if err != nil {
		return err
	}

	for i, wire := range network {
		b.AssertIsZero(wire.Sub(out[i]))
	}
	return nil
}

// controlBitCount returns Σ_{i=0..n-1} ⌈log2(i+1)⌉.
func controlBitCount(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += ceilLog2(i + 1)
	}
	return total
}

// ceilLog2 returns ⌈log2(v)⌉ for v >= 1.
func ceilLog2(v int) int {
	if v <= 1 {
		return 0
	}
	return bits.Len(uint(v - 1))
}

// permutationLayer builds a switching network over wires, consuming
// exactly controlBitCount(len(wires)) control-bit witnesses from
// controlBits (in allocation order), and returns the network's output
// expressions. It does not itself enforce that the outputs are
// sorted; Permutation's surrounding directive is what steers the
// prover's bit assignment toward a specific target order.
//
// Construction: wires are inserted into a growing sequence one at a
// time. Inserting the i-th wire (0-indexed) into a sequence that
// already holds i elements uses ⌈log2(i+1)⌉ control bits to select
// one of the i+1 resulting positions, via a cyclic rotation of the
// (i+1)-element appended sequence. A rotation is applied in
// ⌈log2(i+1)⌉ stages, stage k conditionally rotating by 2^k positions
// (mod i+1) according to one shared control bit: since composing
// conditional-rotate-by-2^k stages realizes a net rotation equal to
// the bits' binary value (mod i+1), and any amount in [0, i] is
// reachable (the modulus never exceeds 2^⌈log2(i+1)⌉), every one of
// the i+1 target positions is reachable, and every bit assignment —
// including ones the prover did not intend — still composes cyclic
// rotations, which are themselves always bijections, so the result is
// always some permutation of the input regardless of the bits chosen.
// Each control bit is separately constrained boolean via
// AssertZero(s*(1-s)), satisfying the requirement (spec.md §4.10)
// that permutation_layer is responsible for boolean-constraining its
// own control bits.
//
// No corpus file implements a sorting/permutation network for ACIR
// (see DESIGN.md); this construction is original, written in the
// plain-loop, explicit-error-return style the rest of this package
// uses. It trades the textbook O(n log n) switch count of a Beneš/
// Waksman network for a simpler rotation-based insertion network with
// the same control-bit budget the original Rust specifies, at the
// cost of doing O(n) work per stage rather than O(1).
func (b *Builder) permutationLayer(wires []Expression, controlBits []Witness) ([]Expression, error) {
	next := 0
	take := func(count int) ([]Witness, error) {
		if next+count > len(controlBits) {
			return nil, &InternalError{Kind: ArityMismatch, Name: "PermutationSort", Arg: "bits", CallStack: b.currentCallStack.clone()}
		}
		out := controlBits[next : next+count]
		next += count
		return out, nil
	}

	seq := make([]Expression, 0, len(wires))
	for i, w := range wires {
		d := ceilLog2(i + 1)
		bitsForStep, err := take(d)
		if err != nil {
			return nil, err
		}
		seq = b.insertByRotation(seq, w, bitsForStep)
	}
	return seq, nil
}

// insertByRotation appends elem to seq and rotates the resulting
// (len(seq)+1)-element sequence by the value encoded by bits (low bit
// first), modulo its own length, placing elem at the position the
// bits select.
func (b *Builder) insertByRotation(seq []Expression, elem Expression, stepBits []Witness) []Expression {
	arr := append(append([]Expression{}, seq...), elem)
	n := len(arr)
	if n <= 1 {
		return arr
	}

	for k, bit := range stepBits {
		b.constrainBoolean(bit)
		shift := 1 << uint(k)
		rotated := make([]Expression, n)
		bitExpr := NewExpressionWitness(bit)
		for j := 0; j < n; j++ {
			src := (j + shift) % n
			diff := arr[src].Sub(arr[j])
			selected := b.MulWithWitness(bitExpr, diff)
			rotated[j] = arr[j].Add(selected)
		}
		arr = rotated
	}
	return arr
}

// constrainBoolean pushes AssertZero(s*(1-s)), pinning s to {0,1}.
func (b *Builder) constrainBoolean(s Witness) {
	sExpr := NewExpressionWitness(s)
	oneMinusS := sExpr.MulScalar(fieldNeg(FieldOne())).Add(NewExpressionConstant(FieldOne()))
	product := b.MulWithWitness(sExpr, oneMinusS)
	b.AssertIsZero(product)
}
