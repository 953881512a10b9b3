// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

import "testing"

// Scenario A — equality gadget.
func TestIsZeroEmitsInverseHintAndTwoConstraints(t *testing.T) {
	b := NewBuilder()
	w := b.NextWitnessIndex()
	y := b.IsZero(NewExpressionWitness(w))

	ops := b.Opcodes()
	if len(ops) != 3 {
		t.Fatalf("expected 1 foreign hint + 2 AssertZero, got %d opcodes", len(ops))
	}
	if ops[0].Kind != OpForeign {
		t.Fatalf("expected first opcode to be the inverse hint, got %v", ops[0].Kind)
	}
	if ops[1].Kind != OpAssertZero || ops[2].Kind != OpAssertZero {
		t.Fatalf("expected two AssertZero opcodes to follow the hint")
	}
	if y == w {
		t.Errorf("IsZero's output witness should be fresh, not the input")
	}
}

func TestIsEqualIsZeroOfDifference(t *testing.T) {
	b := NewBuilder()
	w1 := b.NextWitnessIndex()
	w2 := b.NextWitnessIndex()
	b.IsEqual(NewExpressionWitness(w1), NewExpressionWitness(w2))

	// a-b is a two-term expression, so IsZero must first reduce it to a
	// witness (1 opcode) before the inverse hint (1) and the two
	// equality constraints (2).
	ops := b.Opcodes()
	if len(ops) != 4 {
		t.Fatalf("IsEqual(w1, w2) should push 1 reduction + 1 hint + 2 asserts, got %d opcodes", len(ops))
	}
	if ops[0].Kind != OpAssertZero {
		t.Errorf("expected first opcode to bind the reduced difference, got %v", ops[0].Kind)
	}
	if ops[1].Kind != OpForeign {
		t.Errorf("expected second opcode to be the inverse hint, got %v", ops[1].Kind)
	}
}

// Scenario B — binary (radix-2) decomposition.
func TestRadixLeDecomposeBindsAndRangeConstrains(t *testing.T) {
	b := NewBuilder()
	w := b.NextWitnessIndex()
	limbs, err := b.RadixLeDecompose(NewExpressionWitness(w), 2, 8, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limbs) != 8 {
		t.Fatalf("expected 8 limbs, got %d", len(limbs))
	}

	ops := b.Opcodes()
	if ops[0].Kind != OpDirective || ops[0].Directive.Kind != DirectiveToLeRadix {
		t.Fatalf("expected first opcode to be a ToLeRadix directive, got %+v", ops[0])
	}
	for i := 0; i < 8; i++ {
		rc := ops[1+i]
		if rc.Kind != OpBlackBox || rc.BlackBox.Name != BlackBoxRange {
			t.Fatalf("expected a RANGE call for limb %d, got %+v", i, rc)
		}
	}
	last := ops[len(ops)-1]
	if last.Kind != OpAssertZero {
		t.Fatalf("expected a final AssertZero binding the decomposition, got %v", last.Kind)
	}
}

func TestRadixLeDecomposeRejectsNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for a radix that isn't 2^bitSize")
		}
	}()
	b := NewBuilder()
	w := b.NextWitnessIndex()
	b.RadixLeDecompose(NewExpressionWitness(w), 10, 1, 1)
}

// Scenario C — range constraint overflow.
func TestRangeConstraintRejectsOverWidthBits(t *testing.T) {
	b := NewBuilder()
	w := b.NextWitnessIndex()
	err := b.RangeConstraint(w, FieldMaxNumBits())
	if err == nil {
		t.Fatal("expected an error constraining to the field's full bit width")
	}
	rerr, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if rerr.Kind != InvalidRangeConstraint {
		t.Errorf("expected InvalidRangeConstraint, got %v", rerr.Kind)
	}
}

func TestRangeConstraintAcceptsValidWidth(t *testing.T) {
	b := NewBuilder()
	w := b.NextWitnessIndex()
	if err := b.RangeConstraint(w, 32); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Opcodes()) != 1 {
		t.Fatalf("expected one BlackBox opcode, got %d", len(b.Opcodes()))
	}
}
