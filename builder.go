// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package acir accumulates, incrementally, the flat opcode stream of
// an arithmetic circuit: field-arithmetic assertions, black-box
// function calls, and prover-side directive/foreign programs. It is
// the terminal lowering pass of a zero-knowledge program compiler,
// consumed by a downstream proving backend once draining (TakeOpcodes
// plus the remaining read-only fields) is complete.
//
// The Builder is strictly single-owner, single-threaded: every
// primitive completes synchronously, and there are no ordering
// guarantees beyond "operations take effect in the order they are
// invoked."
package acir

import "sort"

// Builder is the single stateful object callers mutate by invoking
// the lowering primitives in this package. See spec.md §3 for the
// full state description.
type Builder struct {
	nextWitness *uint32

	opcodes []Opcode

	returnWitnesses []Witness
	inputWitnesses  []Witness

	// locations mirrors generated_acir.rs's locations: BTreeMap —
	// ordered deterministically by key, not by Go's unordered map
	// iteration or by insertion sequence. Locations/AssertMessages sort
	// by key on read; locations/assertMessages themselves give O(1)
	// lookup and writes.
	locations        map[OpcodeLocation]CallStack
	currentCallStack CallStack

	assertMessages map[OpcodeLocation]string

	warnings []SsaReport
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		locations:      make(map[OpcodeLocation]CallStack),
		assertMessages: make(map[OpcodeLocation]string),
	}
}

// Push appends opcode to the stream and, if CurrentCallStack is
// non-empty, stamps it against the opcode's fresh location.
func (b *Builder) Push(opcode Opcode) {
	b.opcodes = append(b.opcodes, opcode)
	if !b.currentCallStack.IsEmpty() {
		b.setLocation(b.LastLocation(), b.currentCallStack.clone())
	}
}

// setLocation records callStack for loc.
func (b *Builder) setLocation(loc OpcodeLocation, callStack CallStack) {
	b.locations[loc] = callStack
}

func (b *Builder) setAssertMessage(loc OpcodeLocation, message string) {
	b.assertMessages[loc] = message
}

// lessLocation orders OpcodeLocation the way a BTreeMap<OpcodeLocation, _>
// would under the original's derived Ord: by variant declaration order
// (Acir before Brillig/Foreign) first, then by fields in declaration
// order (AcirIndex, then InnerIndex).
func lessLocation(a, b OpcodeLocation) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.AcirIndex != b.AcirIndex {
		return a.AcirIndex < b.AcirIndex
	}
	return a.InnerIndex < b.InnerIndex
}

// TakeOpcodes returns the accumulated opcode stream and clears it.
func (b *Builder) TakeOpcodes() []Opcode {
	out := b.opcodes
	b.opcodes = nil
	return out
}

// Opcodes returns the accumulated opcode stream without clearing it,
// for callers (tests, inspection) that want a peek mid-build.
func (b *Builder) Opcodes() []Opcode {
	return b.opcodes
}

// LastLocation returns Acir(len-1); only defined after at least one
// Push.
func (b *Builder) LastLocation() OpcodeLocation {
	return AcirLocation(len(b.opcodes) - 1)
}

// SetCurrentCallStack sets the call stack stamped onto subsequently
// pushed opcodes.
func (b *Builder) SetCurrentCallStack(cs CallStack) {
	b.currentCallStack = cs
}

// CurrentCallStack returns the call stack that will be stamped onto
// the next pushed opcode.
func (b *Builder) CurrentCallStack() CallStack {
	return b.currentCallStack
}

// Locations returns the location map's entries ordered by key, the
// same order a BTreeMap<OpcodeLocation, CallStack> would iterate in.
func (b *Builder) Locations() ([]OpcodeLocation, []CallStack) {
	locs := make([]OpcodeLocation, 0, len(b.locations))
	for loc := range b.locations {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool { return lessLocation(locs[i], locs[j]) })

	stacks := make([]CallStack, len(locs))
	for i, loc := range locs {
		stacks[i] = b.locations[loc]
	}
	return locs, stacks
}

// AssertMessages returns the assert-message map's entries ordered by
// key, the same order a BTreeMap<OpcodeLocation, String> would
// iterate in.
func (b *Builder) AssertMessages() ([]OpcodeLocation, []string) {
	locs := make([]OpcodeLocation, 0, len(b.assertMessages))
	for loc := range b.assertMessages {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool { return lessLocation(locs[i], locs[j]) })

	msgs := make([]string, len(locs))
	for i, loc := range locs {
		msgs[i] = b.assertMessages[loc]
	}
	return locs, msgs
}

// PushReturnWitness appends w to ReturnWitnesses. Duplicates are
// legal and semantically meaningful: they describe how a structured
// ABI value is reconstituted from flat witnesses.
func (b *Builder) PushReturnWitness(w Witness) {
	b.returnWitnesses = append(b.returnWitnesses, w)
}

// ReturnWitnesses returns the program's return witnesses in order.
func (b *Builder) ReturnWitnesses() []Witness {
	return b.returnWitnesses
}

// SetInputWitnesses sets the program's input witnesses. Per
// spec.md §4.11 this is written only once, at program finalisation,
// by an external contract the Builder does not itself enforce.
func (b *Builder) SetInputWitnesses(ws []Witness) {
	b.inputWitnesses = ws
}

// InputWitnesses returns the program's input witnesses.
func (b *Builder) InputWitnesses() []Witness {
	return b.inputWitnesses
}

// Warn appends a non-fatal diagnostic. Warnings never abort lowering.
func (b *Builder) Warn(report SsaReport) {
	b.warnings = append(b.warnings, report)
}

// Warnings returns the accumulated diagnostics.
func (b *Builder) Warnings() []SsaReport {
	return b.warnings
}
