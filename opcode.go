// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

// OpcodeKind discriminates the four opcode shapes the Builder can
// emit. Opcode follows the teacher's tagged-union-via-struct-with-
// kind-field idiom (see e.g. zk/types.go's Commitment/CommitType)
// rather than one Go interface per variant.
type OpcodeKind uint8

const (
	OpAssertZero OpcodeKind = iota
	OpBlackBox
	OpDirective
	OpForeign
)

// Opcode is one statement in the flat opcode stream. Exactly one of
// the fields matching Kind is populated.
type Opcode struct {
	Kind OpcodeKind

	AssertZero Expression
	BlackBox   BlackBoxFuncCall
	Directive  Directive
	Foreign    ForeignCall
}

// LocationKind discriminates the two OpcodeLocation shapes.
type LocationKind uint8

const (
	LocationAcir LocationKind = iota
	LocationForeign
)

// OpcodeLocation addresses either a position in the opcode stream
// (Acir) or an instruction inside an embedded foreign program at a
// given stream position (Foreign).
type OpcodeLocation struct {
	Kind       LocationKind
	AcirIndex  int
	InnerIndex int // only meaningful when Kind == LocationForeign
}

// AcirLocation builds an Acir-kind location.
func AcirLocation(index int) OpcodeLocation {
	return OpcodeLocation{Kind: LocationAcir, AcirIndex: index}
}

// ForeignLocation builds a Foreign-kind location.
func ForeignLocation(acirIndex, innerIndex int) OpcodeLocation {
	return OpcodeLocation{Kind: LocationForeign, AcirIndex: acirIndex, InnerIndex: innerIndex}
}
