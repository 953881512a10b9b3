// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

import "testing"

func TestExpressionToWitness(t *testing.T) {
	w := Witness(4)
	e := NewExpressionWitness(w)
	got, ok := e.ToWitness()
	if !ok || got != w {
		t.Fatalf("ToWitness() = (%v, %v), want (%v, true)", got, ok, w)
	}

	withConst := e.Add(NewExpressionConstant(FieldOne()))
	if _, ok := withConst.ToWitness(); ok {
		t.Errorf("expected ToWitness() to fail for w+1")
	}
}

func TestExpressionDegreeHelpers(t *testing.T) {
	c := NewExpressionConstant(FieldOne())
	if !c.IsConst() || !c.IsLinear() {
		t.Errorf("constant expression should be const and linear")
	}

	lin := NewExpressionWitness(Witness(1))
	if lin.IsConst() || !lin.IsLinear() {
		t.Errorf("witness expression should be linear, not const")
	}

	quad := Expression{MulTerms: []MulTerm{{Coefficient: FieldOne(), Left: 1, Right: 2}}}
	if quad.IsLinear() {
		t.Errorf("expression with a mul term should not be linear")
	}
}

func TestExpressionMulDegreeCheck(t *testing.T) {
	lhs := NewExpressionWitness(Witness(1))
	rhs := NewExpressionWitness(Witness(2))
	product, ok := lhs.Mul(rhs)
	if !ok {
		t.Fatalf("expected linear*linear to succeed")
	}
	if product.IsLinear() {
		t.Errorf("product of two distinct linear terms should be quadratic")
	}

	quad, _ := lhs.Mul(rhs)
	if _, ok := quad.Mul(rhs); ok {
		t.Errorf("expected quadratic*linear to fail the degree check")
	}
}

func TestExpressionAddSub(t *testing.T) {
	a := NewExpressionWitness(Witness(1))
	b := NewExpressionWitness(Witness(1))
	diff := a.Sub(b)
	if !diff.IsConst() {
		t.Fatalf("w1 - w1 should reduce to a constant expression form (zero coefficients), got %+v", diff)
	}
	if !fieldIsZero(diff.QC) {
		t.Errorf("w1 - w1 constant term should be zero")
	}
}
