// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

// GetOrCreateWitness returns the witness underlying expr when
// expr.ToWitness() succeeds; otherwise it allocates a fresh witness,
// pushes AssertZero(expr - w), and returns w. Downstream gadgets need
// a degree-1 handle, and this is the one place that reduction
// happens.
func (b *Builder) GetOrCreateWitness(expr Expression) Witness {
	if w, ok := expr.ToWitness(); ok {
		return w
	}
	return b.CreateWitnessForExpression(expr)
}

// CreateWitnessForExpression always allocates a fresh witness
// constrained to equal expr, even if expr was already reducible to an
// existing witness.
func (b *Builder) CreateWitnessForExpression(expr Expression) Witness {
	fresh := b.nextWitnessIndex()
	b.AssertIsZero(expr.SubWitness(fresh))
	return fresh
}

// AssertIsZero pushes AssertZero(expr). This is the Builder's one
// soundness primitive and is never elided.
func (b *Builder) AssertIsZero(expr Expression) {
	b.Push(Opcode{Kind: OpAssertZero, AssertZero: expr})
}

// MulWithWitness returns an expression equivalent to lhs*rhs while
// respecting the degree-2 budget, reducing non-linear operands to
// witnesses as needed.
//
// Decision order:
//  1. Both operands linear, or either constant: direct product
//     (guaranteed degree <= 2).
//  2. Otherwise reduce each non-linear operand via
//     GetOrCreateWitness. If lhs and rhs are structurally identical,
//     reduce only once and square the reduced handle.
func (b *Builder) MulWithWitness(lhs, rhs Expression) Expression {
	lhsLinear := lhs.IsLinear()
	rhsLinear := rhs.IsLinear()

	if (lhsLinear && rhsLinear) || lhs.IsConst() || rhs.IsConst() {
		product, ok := lhs.Mul(rhs)
		if !ok {
			panic("acir: both operands were checked degree <= 1 or const, product must be degree <= 2")
		}
		return product
	}

	lhsReduced := lhs
	if !lhsLinear {
		lhsReduced = NewExpressionWitness(b.GetOrCreateWitness(lhs))
	}

	if lhs.equalStructural(rhs) {
		product, ok := lhsReduced.Mul(lhsReduced)
		if !ok {
			panic("acir: reduced operand must be degree <= 1")
		}
		return product
	}

	rhsReduced := rhs
	if !rhsLinear {
		rhsReduced = NewExpressionWitness(b.GetOrCreateWitness(rhs))
	}

	product, ok := lhsReduced.Mul(rhsReduced)
	if !ok {
		panic("acir: both operands were reduced to degree <= 1")
	}
	return product
}
