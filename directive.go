// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

import "sort"

// DirectiveKind discriminates Directive's two variants.
type DirectiveKind uint8

const (
	DirectiveToLeRadix DirectiveKind = iota
	DirectivePermutationSort
)

// Directive is a prover-only hint whose outputs are untrusted: the
// directive itself applies no constraint, so callers must
// independently constrain its outputs.
type Directive struct {
	Kind DirectiveKind

	// ToLeRadix
	ToLeRadixInput   Expression
	ToLeRadixOutputs []Witness
	ToLeRadixRadix   uint32

	// PermutationSort
	SortInputs [][]Expression
	SortTuple  uint32
	SortBits   []Witness
	SortBy     []uint32
}

// ForeignCall is an embedded generic prover-side program: a compiled
// bytecode blob plus its input/output wiring and an optional
// predicate gating execution.
type ForeignCall struct {
	Predicate *Expression
	Inputs    []Witness
	Outputs   []Witness
	Bytecode  []byte
}

// ForeignProgram is the compiled artifact produced upstream (by the
// Brillig/foreign-bytecode compiler, an external collaborator) that
// EmbedForeign wraps into a single opcode. Its internal location and
// assertion-message maps are keyed by instruction index within the
// program and get merged into the Builder's own maps, addressed as
// ForeignLocation(acirIndex, innerIndex).
type ForeignProgram struct {
	Bytecode        []byte
	InnerLocations  map[int]CallStack
	InnerMessages   map[int]string
}

// EmbedForeign pushes one Foreign opcode carrying program's bytecode,
// wired to inputs/outputs and gated by predicate (nil means
// unconditional), then merges program's internal location and
// assertion-message maps into the Builder's own, keyed by
// ForeignLocation{acir_index: pushIndex, inner_index}.
func (b *Builder) EmbedForeign(predicate *Expression, program ForeignProgram, inputs, outputs []Witness) {
	b.Push(Opcode{
		Kind: OpForeign,
		Foreign: ForeignCall{
			Predicate: predicate,
			Inputs:    inputs,
			Outputs:   outputs,
			Bytecode:  program.Bytecode,
		},
	})
	pushIndex := len(b.opcodes) - 1

	innerIdxs := make([]int, 0, len(program.InnerLocations))
	for innerIndex := range program.InnerLocations {
		innerIdxs = append(innerIdxs, innerIndex)
	}
	sort.Ints(innerIdxs)
	for _, innerIndex := range innerIdxs {
		b.setLocation(ForeignLocation(pushIndex, innerIndex), program.InnerLocations[innerIndex])
	}

	msgIdxs := make([]int, 0, len(program.InnerMessages))
	for innerIndex := range program.InnerMessages {
		msgIdxs = append(msgIdxs, innerIndex)
	}
	sort.Ints(msgIdxs)
	for _, innerIndex := range msgIdxs {
		b.setAssertMessage(ForeignLocation(pushIndex, innerIndex), program.InnerMessages[innerIndex])
	}
}
