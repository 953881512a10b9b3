// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

import "testing"

func witnessInput(b *Builder, numBits uint32) FunctionInput {
	return FunctionInput{Witness: b.NextWitnessIndex(), NumBits: numBits}
}

func TestCallBlackBoxANDAllocatesOutputAndPushes(t *testing.T) {
	b := NewBuilder()
	a := witnessInput(b, 8)
	c := witnessInput(b, 8)

	outputs, err := b.CallBlackBox(BlackBoxAND, [][]FunctionInput{{a}, {c}}, nil, nil, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outputs) != 1 {
		t.Fatalf("expected 1 output witness, got %d", len(outputs))
	}
	ops := b.Opcodes()
	if len(ops) != 1 || ops[0].Kind != OpBlackBox || ops[0].BlackBox.Name != BlackBoxAND {
		t.Fatalf("expected a single AND BlackBox opcode, got %+v", ops)
	}
}

// Property 8 — arity enforcement, exercised on AND's fixed input arity
// (the output-arity case follows below).
func TestCallBlackBoxRejectsWrongInputArity(t *testing.T) {
	b := NewBuilder()
	a := witnessInput(b, 8)
	// AND expects exactly 2 inputs total; give it 1.
	_, err := b.CallBlackBox(BlackBoxAND, [][]FunctionInput{{a}}, nil, nil, 1)
	if err == nil {
		t.Fatal("expected an arity-mismatch error")
	}
	ierr, ok := err.(*InternalError)
	if !ok {
		t.Fatalf("expected *InternalError, got %T", err)
	}
	if ierr.Kind != ArityMismatch {
		t.Errorf("expected ArityMismatch, got %v", ierr.Kind)
	}
}

func TestCallBlackBoxRejectsWrongOutputArity(t *testing.T) {
	b := NewBuilder()
	a := witnessInput(b, 8)
	c := witnessInput(b, 8)
	// AND expects exactly 1 output; ask for 2.
	_, err := b.CallBlackBox(BlackBoxAND, [][]FunctionInput{{a}, {c}}, nil, nil, 2)
	if err == nil {
		t.Fatal("expected an arity-mismatch error for output count")
	}
}

func TestCallBlackBoxVariableArityIsUnchecked(t *testing.T) {
	b := NewBuilder()
	msg := witnessInput(b, 8)
	// SHA256 has variable input arity; any nonzero group count passes.
	outputs, err := b.CallBlackBox(BlackBoxSHA256, [][]FunctionInput{{msg}}, nil, nil, 32)
	if err != nil {
		t.Fatalf("unexpected error for variable-arity call: %v", err)
	}
	if len(outputs) != 32 {
		t.Fatalf("expected 32 output witnesses, got %d", len(outputs))
	}
}

// Scenario E — Keccak256 var_message_size handling.
func TestCallBlackBoxKeccak256CapturesVarMessageSize(t *testing.T) {
	b := NewBuilder()
	byte0 := witnessInput(b, 8)
	byte1 := witnessInput(b, 8)
	size := witnessInput(b, 32)

	outputs, err := b.CallBlackBox(BlackBoxKeccak256, [][]FunctionInput{{byte0, byte1}, {size}}, nil, nil, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outputs) != 32 {
		t.Fatalf("expected 32 output witnesses, got %d", len(outputs))
	}

	call := b.Opcodes()[0].BlackBox
	if call.VarMessageSize == nil {
		t.Fatal("expected VarMessageSize to be captured")
	}
	if *call.VarMessageSize != size {
		t.Errorf("VarMessageSize = %+v, want %+v", *call.VarMessageSize, size)
	}
	if len(call.Inputs) != 1 || len(call.Inputs[0]) != 2 {
		t.Errorf("expected message bytes preserved separately from the size group, got %+v", call.Inputs)
	}
}

func TestCallBlackBoxKeccak256MissingMessageSizeIsInternalError(t *testing.T) {
	b := NewBuilder()
	_, err := b.CallBlackBox(BlackBoxKeccak256, [][]FunctionInput{}, nil, nil, 32)
	if err == nil {
		t.Fatal("expected a missing-arg error when no message_size group is present")
	}
	ierr, ok := err.(*InternalError)
	if !ok {
		t.Fatalf("expected *InternalError, got %T", err)
	}
	if ierr.Kind != MissingArg {
		t.Errorf("expected MissingArg, got %v", ierr.Kind)
	}
}

func TestCallBlackBoxPedersenDecodesDomainSeparator(t *testing.T) {
	b := NewBuilder()
	a := witnessInput(b, 254)
	var domainSep F
	domainSep.SetUint64(7)

	outputs, err := b.CallBlackBox(BlackBoxPedersenCommitment, [][]FunctionInput{{a}}, []F{domainSep}, nil, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outputs) != 2 {
		t.Fatalf("expected 2 output witnesses, got %d", len(outputs))
	}
	call := b.Opcodes()[0].BlackBox
	if call.DomainSeparator == nil || *call.DomainSeparator != 7 {
		t.Fatalf("expected DomainSeparator = 7, got %+v", call.DomainSeparator)
	}
}

func TestCallBlackBoxPoseidon2PermutationDecodesLen(t *testing.T) {
	b := NewBuilder()
	state := []FunctionInput{witnessInput(b, 254), witnessInput(b, 254), witnessInput(b, 254)}
	var length F
	length.SetUint64(3)

	outputs, err := b.CallBlackBox(BlackBoxPoseidon2Permutation, [][]FunctionInput{state}, []F{length}, nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outputs) != 3 {
		t.Fatalf("expected 3 output witnesses, got %d", len(outputs))
	}
	call := b.Opcodes()[0].BlackBox
	if call.Len == nil || *call.Len != 3 {
		t.Fatalf("expected Len = 3, got %+v", call.Len)
	}
}

func TestCallBlackBoxBigIntFromLeBytesDecodesModulus(t *testing.T) {
	b := NewBuilder()
	byteInputs := []FunctionInput{witnessInput(b, 8), witnessInput(b, 8)}

	// Derive two realistic-looking modulus bytes from a fixed label
	// rather than hand-picked small integers, the way the fixture
	// helper is meant to be used.
	digest := fieldFromLabel("bn254-fr-modulus-low-bytes")
	digestBytes := digest.Bytes()
	modulusByte0 := fieldFromLabel32(digestBytes[31])
	modulusByte1 := fieldFromLabel32(digestBytes[30])
	var outHandle F
	outHandle.SetUint64(1)

	_, err := b.CallBlackBox(BlackBoxBigIntFromLeBytes, [][]FunctionInput{byteInputs}, []F{modulusByte0, modulusByte1}, []F{outHandle}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := b.Opcodes()[0].BlackBox
	if len(call.BigIntModulus) != 2 {
		t.Fatalf("expected 2 modulus bytes, got %v", call.BigIntModulus)
	}
	if call.BigIntModulus[0] != digestBytes[31] || call.BigIntModulus[1] != digestBytes[30] {
		t.Errorf("modulus bytes = %v, want [%d %d]", call.BigIntModulus, digestBytes[31], digestBytes[30])
	}
	if call.BigIntOutput != 1 {
		t.Errorf("expected BigIntOutput handle 1, got %d", call.BigIntOutput)
	}
}
