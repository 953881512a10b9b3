// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

import (
	"crypto/sha256"
)

// fieldFromLabel deterministically reduces label into a field element,
// the same try-free hash-then-SetBytes-and-reduce construction
// zk/pedersen.go's hashToG1 uses to derive nothing-up-my-sleeve curve
// generators. Here it stands in for realistic, non-trivial witness and
// constant values in black-box call fixtures, since this package never
// itself runs a hash or a curve operation.
func fieldFromLabel(label string) F {
	digest := sha256.Sum256([]byte(label))
	return FieldFromBytesBE(digest[:])
}

// fieldFromLabel32 lifts a single byte into the field, used to build
// small per-limb constants out of a larger derived fixture.
func fieldFromLabel32(b byte) F {
	var f F
	f.SetUint64(uint64(b))
	return f
}
