// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

// FunctionInput pairs a witness with the bit-width the backend should
// treat it as, the unit black-box calls are built from.
type FunctionInput struct {
	Witness Witness
	NumBits uint32
}

// BlackBoxFuncName enumerates the closed set of foreign primitive
// calls the proving backend implements natively. New primitives
// require an explicit addition here and to the arity tables below.
type BlackBoxFuncName uint8

const (
	BlackBoxAND BlackBoxFuncName = iota
	BlackBoxXOR
	BlackBoxRange
	BlackBoxSHA256
	BlackBoxBlake2s
	BlackBoxBlake3
	BlackBoxKeccak256
	BlackBoxKeccakf1600
	BlackBoxSha256Compression
	// BlackBoxPedersenCommitment computes a Pedersen vector commitment
	// over the BN254/Grumpkin embedded curve. The reference
	// implementation is gnark-crypto's ecc/bn254 G1 arithmetic (the
	// same library zk/pedersen.go in the teacher uses); the Builder
	// only wires witnesses to the call, it never evaluates the curve.
	BlackBoxPedersenCommitment
	BlackBoxPedersenHash
	BlackBoxSchnorrVerify
	BlackBoxEcdsaSecp256k1
	BlackBoxEcdsaSecp256r1
	BlackBoxFixedBaseScalarMul
	BlackBoxEmbeddedCurveAdd
	// BlackBoxPoseidon2Permutation is the PQ-friendly sponge
	// permutation; gnark-crypto's ecc/bn254/fr/poseidon2 package (as
	// used directly by the teacher's zk/poseidon.go) is the reference
	// implementation the backend runs — again, named, not executed,
	// here.
	BlackBoxPoseidon2Permutation
	BlackBoxRecursiveAggregation
	BlackBoxBigIntAdd
	BlackBoxBigIntSub
	BlackBoxBigIntMul
	BlackBoxBigIntDiv
	BlackBoxBigIntFromLeBytes
	BlackBoxBigIntToLeBytes
)

func (n BlackBoxFuncName) String() string {
	switch n {
	case BlackBoxAND:
		return "AND"
	case BlackBoxXOR:
		return "XOR"
	case BlackBoxRange:
		return "RANGE"
	case BlackBoxSHA256:
		return "SHA256"
	case BlackBoxBlake2s:
		return "Blake2s"
	case BlackBoxBlake3:
		return "Blake3"
	case BlackBoxKeccak256:
		return "Keccak256"
	case BlackBoxKeccakf1600:
		return "Keccakf1600"
	case BlackBoxSha256Compression:
		return "Sha256Compression"
	case BlackBoxPedersenCommitment:
		return "PedersenCommitment"
	case BlackBoxPedersenHash:
		return "PedersenHash"
	case BlackBoxSchnorrVerify:
		return "SchnorrVerify"
	case BlackBoxEcdsaSecp256k1:
		return "EcdsaSecp256k1"
	case BlackBoxEcdsaSecp256r1:
		return "EcdsaSecp256r1"
	case BlackBoxFixedBaseScalarMul:
		return "FixedBaseScalarMul"
	case BlackBoxEmbeddedCurveAdd:
		return "EmbeddedCurveAdd"
	case BlackBoxPoseidon2Permutation:
		return "Poseidon2Permutation"
	case BlackBoxRecursiveAggregation:
		return "RecursiveAggregation"
	case BlackBoxBigIntAdd:
		return "BigIntAdd"
	case BlackBoxBigIntSub:
		return "BigIntSub"
	case BlackBoxBigIntMul:
		return "BigIntMul"
	case BlackBoxBigIntDiv:
		return "BigIntDiv"
	case BlackBoxBigIntFromLeBytes:
		return "BigIntFromLeBytes"
	case BlackBoxBigIntToLeBytes:
		return "BigIntToLeBytes"
	default:
		return "Unknown"
	}
}

// expectedInputArity returns the total FunctionInput count the
// backend requires for name, or (0, false) when the arity is
// variable ("var" in spec.md §6) and unchecked.
func expectedInputArity(name BlackBoxFuncName) (int, bool) {
	switch name {
	case BlackBoxAND, BlackBoxXOR:
		return 2, true
	case BlackBoxRange:
		return 1, true
	case BlackBoxKeccakf1600:
		return 25, true
	case BlackBoxSha256Compression:
		return 24, true
	case BlackBoxFixedBaseScalarMul:
		return 2, true
	case BlackBoxEmbeddedCurveAdd:
		return 4, true
	case BlackBoxBigIntAdd, BlackBoxBigIntSub, BlackBoxBigIntMul, BlackBoxBigIntDiv, BlackBoxBigIntToLeBytes:
		return 0, true
	default:
		// SHA256, Blake2s, Blake3, Keccak256, PedersenCommitment,
		// PedersenHash, SchnorrVerify, EcdsaSecp256k1/r1,
		// Poseidon2Permutation, RecursiveAggregation, BigIntFromLeBytes.
		return 0, false
	}
}

// expectedOutputArity returns the output witness count the backend
// requires for name, or (0, false) when variable/unchecked.
func expectedOutputArity(name BlackBoxFuncName) (int, bool) {
	switch name {
	case BlackBoxAND, BlackBoxXOR:
		return 1, true
	case BlackBoxRange:
		return 0, true
	case BlackBoxSHA256, BlackBoxBlake2s, BlackBoxBlake3, BlackBoxKeccak256:
		return 32, true
	case BlackBoxKeccakf1600:
		return 25, true
	case BlackBoxSha256Compression:
		return 8, true
	case BlackBoxPedersenCommitment, BlackBoxFixedBaseScalarMul, BlackBoxEmbeddedCurveAdd:
		return 2, true
	case BlackBoxPedersenHash:
		return 1, true
	case BlackBoxSchnorrVerify, BlackBoxEcdsaSecp256k1, BlackBoxEcdsaSecp256r1:
		return 1, true
	case BlackBoxBigIntAdd, BlackBoxBigIntSub, BlackBoxBigIntMul, BlackBoxBigIntDiv, BlackBoxBigIntFromLeBytes:
		return 0, true
	default:
		// Poseidon2Permutation, RecursiveAggregation, BigIntToLeBytes.
		return 0, false
	}
}

// BlackBoxFuncCall is the pushed opcode's payload. Like Opcode itself,
// it is one broad struct discriminated by Name rather than one Go
// type per black-box variant (see zk/types.go's Proof/Commitment for
// the same idiom in the teacher).
type BlackBoxFuncCall struct {
	Name BlackBoxFuncName

	Inputs       [][]FunctionInput
	Outputs      []Witness
	ConstInputs  []F
	ConstOutputs []F

	// Keccak256 only.
	VarMessageSize *FunctionInput

	// PedersenCommitment, PedersenHash only: domain_sep decoded from
	// the low bits of ConstInputs[0].
	DomainSeparator *uint32

	// Poseidon2Permutation only: len decoded from the low bits of
	// ConstInputs[0].
	Len *uint32

	// BigInt* only: 32-bit handles into the backend's bigint table and
	// (for FromLeBytes) the modulus byte string.
	BigIntLhs     uint32
	BigIntRhs     uint32
	BigIntOutput  uint32
	BigIntInput   uint32
	BigIntModulus []byte
}

// CallBlackBox validates arities, allocates outputCount fresh output
// witnesses, builds the BlackBoxFuncCall payload for name from the
// positional input/constant slots, pushes one BlackBox opcode, and
// returns the output witnesses.
//
// Arity mismatch is a fatal internal error: the upstream lowering
// invariant is that the SSA always calls black boxes with exact
// arities (the source language's typed foreign-function shims make
// the check redundant upstream; it exists here only to catch compiler
// bugs).
func (b *Builder) CallBlackBox(name BlackBoxFuncName, inputs [][]FunctionInput, constInputs, constOutputs []F, outputCount int) ([]Witness, error) {
	inputCount := 0
	for _, group := range inputs {
		inputCount += len(group)
	}
	if expected, checked := expectedInputArity(name); checked && expected != inputCount {
		return nil, &InternalError{Kind: ArityMismatch, Name: name.String(), CallStack: b.currentCallStack.clone()}
	}
	if expected, checked := expectedOutputArity(name); checked && expected != outputCount {
		return nil, &InternalError{Kind: ArityMismatch, Name: name.String(), CallStack: b.currentCallStack.clone()}
	}

	outputs := make([]Witness, outputCount)
	for i := range outputs {
		outputs[i] = b.nextWitnessIndex()
	}

	call := BlackBoxFuncCall{Name: name, Outputs: append([]Witness{}, outputs...)}

	switch name {
	case BlackBoxAND, BlackBoxXOR:
		call.Inputs = [][]FunctionInput{inputs[0], inputs[1]}
	case BlackBoxRange:
		call.Inputs = [][]FunctionInput{inputs[0]}
	case BlackBoxSHA256, BlackBoxBlake2s, BlackBoxBlake3, BlackBoxKeccakf1600, BlackBoxSha256Compression:
		call.Inputs = inputs
	case BlackBoxKeccak256:
		if len(inputs) == 0 {
			return nil, &InternalError{Kind: MissingArg, Name: name.String(), Arg: "message_size", CallStack: b.currentCallStack.clone()}
		}
		lastGroup := inputs[len(inputs)-1]
		if len(lastGroup) == 0 {
			return nil, &InternalError{Kind: MissingArg, Name: name.String(), Arg: "message_size", CallStack: b.currentCallStack.clone()}
		}
		varSize := lastGroup[0]
		call.Inputs = [][]FunctionInput{inputs[0]}
		call.VarMessageSize = &varSize
	case BlackBoxPedersenCommitment, BlackBoxPedersenHash:
		call.Inputs = [][]FunctionInput{inputs[0]}
		domainSep := uint32(low128AsUint64(constInputs[0]))
		call.DomainSeparator = &domainSep
	case BlackBoxSchnorrVerify, BlackBoxEcdsaSecp256k1, BlackBoxEcdsaSecp256r1:
		call.Inputs = inputs
	case BlackBoxFixedBaseScalarMul, BlackBoxEmbeddedCurveAdd:
		call.Inputs = inputs
	case BlackBoxPoseidon2Permutation:
		call.Inputs = [][]FunctionInput{inputs[0]}
		length := uint32(low128AsUint64(constInputs[0]))
		call.Len = &length
	case BlackBoxRecursiveAggregation:
		call.Inputs = inputs
	case BlackBoxBigIntAdd, BlackBoxBigIntSub, BlackBoxBigIntMul, BlackBoxBigIntDiv:
		call.BigIntLhs = uint32(low128AsUint64(constInputs[0]))
		call.BigIntRhs = uint32(low128AsUint64(constInputs[1]))
		call.BigIntOutput = uint32(low128AsUint64(constOutputs[0]))
	case BlackBoxBigIntFromLeBytes:
		call.Inputs = [][]FunctionInput{inputs[0]}
		modulus := make([]byte, len(constInputs))
		for i, c := range constInputs {
			modulus[i] = byte(low128AsUint64(c))
		}
		call.BigIntModulus = modulus
		call.BigIntOutput = uint32(low128AsUint64(constOutputs[0]))
	case BlackBoxBigIntToLeBytes:
		call.BigIntInput = uint32(low128AsUint64(constInputs[0]))
	}

	b.Push(Opcode{Kind: OpBlackBox, BlackBox: call})

	return outputs, nil
}
