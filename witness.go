// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

// Witness is a dense identifier for a single prover-supplied field
// value, drawn from the monotonically increasing index space
// [0, next). Equality is identifier equality.
type Witness uint32

// nextWitnessIndex advances the allocator and returns the freshly
// allocated witness. The first call returns Witness(0).
func (b *Builder) nextWitnessIndex() Witness {
	if b.nextWitness == nil {
		var zero uint32
		b.nextWitness = &zero
		return Witness(0)
	}
	*b.nextWitness++
	return Witness(*b.nextWitness)
}

// CurrentWitnessIndex returns the most recently allocated witness, or
// Witness(0) when no witness has ever been allocated. Note the quirk
// (preserved intentionally, see DESIGN.md's witness.go entry): this
// return value is indistinguishable from the first witness that will
// ever be allocated.
func (b *Builder) CurrentWitnessIndex() Witness {
	if b.nextWitness == nil {
		return Witness(0)
	}
	return Witness(*b.nextWitness)
}

// NextWitnessIndex allocates and returns a fresh witness.
func (b *Builder) NextWitnessIndex() Witness {
	return b.nextWitnessIndex()
}
