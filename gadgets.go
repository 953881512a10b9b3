// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

// invertDirectiveBytecode is the standard "compute multiplicative
// inverse" foreign program: given one field input, it hints one field
// output equal to its inverse (or an arbitrary value when the input
// is zero, since the hint is never itself constrained). It is
// compiled once upstream by the foreign-bytecode compiler (an
// external collaborator, out of scope per spec.md §1); this package
// only names it.
var invertDirectiveBytecode = []byte("brillig.directive.invert")

// BrilligInverse allocates a fresh witness w and embeds the standard
// inverse-hint foreign program with input expr, output w, and an
// unconditional predicate (constant one). The returned witness is NOT
// constrained to be an inverse of expr; callers are responsible for
// adding whatever constraints make that true (see IsZero).
func (b *Builder) BrilligInverse(expr Expression) Witness {
	inverted := b.nextWitnessIndex()
	one := NewExpressionConstant(FieldOne())

	input := b.GetOrCreateWitness(expr)
	b.EmbedForeign(&one, ForeignProgram{Bytecode: invertDirectiveBytecode}, []Witness{input}, []Witness{inverted})

	return inverted
}

// IsZero returns a witness y satisfying y = 1 iff expr = 0, using the
// two-constraint protocol:
//
//  1. t is a witness handle for expr (reused directly if expr is
//     already a witness; otherwise reduced from -expr — negation does
//     not change the zero-ness and sometimes simplifies to an existing
//     witness).
//  2. z = BrilligInverse(t): an unconstrained hint, the prover's
//     choice of 1/t when t != 0.
//  3. A fresh y with AssertZero(t*z + y - 1) and AssertZero(t*y).
//
// The pair forces y = 1 - t*z and t*y = 0, which jointly pin y: if
// t = 0 then y = 1; if t != 0 then y = 0 forces t*z = 1, i.e. z = 1/t,
// which the prover can always supply.
func (b *Builder) IsZero(expr Expression) Witness {
	var t Witness
	if w, ok := expr.ToWitness(); ok {
		t = w
	} else {
		negated := expr.MulScalar(fieldNeg(FieldOne()))
		t = b.GetOrCreateWitness(negated)
	}

	z := b.BrilligInverse(NewExpressionWitness(t))

	y := b.nextWitnessIndex()

	// y + t*z - 1 == 0
	yIsBoolean := Expression{
		MulTerms:           []MulTerm{{Coefficient: FieldOne(), Left: t, Right: z}},
		LinearCombinations: []LinearTerm{{Coefficient: FieldOne(), Witness: y}},
		QC:                 fieldNeg(FieldOne()),
	}
	b.AssertIsZero(yIsBoolean)

	// t*y == 0
	tyZero := Expression{
		MulTerms: []MulTerm{{Coefficient: FieldOne(), Left: t, Right: y}},
	}
	b.AssertIsZero(tyZero)

	return y
}

// IsEqual returns IsZero(a - b): a witness that is 1 iff a == b.
func (b *Builder) IsEqual(a, other Expression) Witness {
	return b.IsZero(a.Sub(other))
}

// RadixLeDecompose requires radix == 2^bitSize (a compiler-bug check,
// panicking otherwise — the SSA lowering is guaranteed never to call
// this with a non-power-of-two radix). It allocates limbCount fresh
// witnesses, emits a ToLeRadix directive hinting them, range-
// constrains each to bitSize bits, and binds the decomposition with
// AssertZero(expr - Σ limb_i * radix^i). Limbs are returned
// little-endian.
func (b *Builder) RadixLeDecompose(expr Expression, radix, limbCount, bitSize uint32) ([]Witness, error) {
	if !isPowerOfTwoRadix(radix, bitSize) {
		panic("acir: ICE: radix must be a power of 2 matching bitSize")
	}

	limbs := make([]Witness, limbCount)
	for i := range limbs {
		limbs[i] = b.nextWitnessIndex()
	}

	b.Push(Opcode{
		Kind: OpDirective,
		Directive: Directive{
			Kind:             DirectiveToLeRadix,
			ToLeRadixInput:   expr,
			ToLeRadixOutputs: append([]Witness{}, limbs...),
			ToLeRadixRadix:   radix,
		},
	})

	composed := Expression{}
	radixPow := FieldOne()
	for _, limb := range limbs {
		if err := b.RangeConstraint(limb, bitSize); err != nil {
			return nil, err
		}
		composed = composed.AddMul(radixPow, NewExpressionWitness(limb))
		radixPow = fieldMul(radixPow, uint32AsField(radix))
	}

	b.AssertIsZero(expr.Sub(composed))

	return limbs, nil
}

// isPowerOfTwoRadix reports whether radix == 2^bitSize.
func isPowerOfTwoRadix(radix, bitSize uint32) bool {
	if bitSize >= 32 {
		return false
	}
	return radix == uint32(1)<<bitSize
}

// uint32AsField lifts a small unsigned integer into the field.
func uint32AsField(v uint32) F {
	var f F
	f.SetUint64(uint64(v))
	return f
}

// RangeConstraint emits a RANGE black-box call asserting that witness
// represents an integer in [0, 2^numBits). Fails when numBits is at
// or beyond the field's representable width — users should use an
// explicit field cast instead.
func (b *Builder) RangeConstraint(w Witness, numBits uint32) error {
	if numBits >= FieldMaxNumBits() {
		return &RuntimeError{
			Kind:      InvalidRangeConstraint,
			NumBits:   FieldMaxNumBits(),
			CallStack: b.currentCallStack.clone(),
		}
	}

	b.Push(Opcode{
		Kind: OpBlackBox,
		BlackBox: BlackBoxFuncCall{
			Name:   BlackBoxRange,
			Inputs: [][]FunctionInput{{{Witness: w, NumBits: numBits}}},
		},
	})
	return nil
}
