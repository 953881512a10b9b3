// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

import "fmt"

// RuntimeError is a user-facing failure: the lowering itself is
// valid, but the user's program asked for something the field/backend
// cannot support.
type RuntimeError struct {
	Kind      RuntimeErrorKind
	NumBits   uint32
	CallStack CallStack
}

// RuntimeErrorKind enumerates RuntimeError's variants. Only one exists
// today (InvalidRangeConstraint); the enum leaves room to add more
// without changing RuntimeError's shape.
type RuntimeErrorKind uint8

const (
	InvalidRangeConstraint RuntimeErrorKind = iota
)

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case InvalidRangeConstraint:
		return fmt.Sprintf("range constraint of %d bits is unsatisfiable: the field cannot represent that many bits; use an explicit field cast instead", e.NumBits)
	default:
		return "runtime error"
	}
}

// InternalError indicates a compiler bug: an upstream invariant (exact
// arities, a required input group present) was violated by the caller.
// A radix that is not a power of two is also a compiler bug, but
// RadixLeDecompose panics on it rather than returning an InternalError. These are never expected to surface from a
// correct lowering pass.
type InternalError struct {
	Kind      InternalErrorKind
	Name      string
	Arg       string
	CallStack CallStack
}

// InternalErrorKind enumerates InternalError's variants.
type InternalErrorKind uint8

const (
	MissingArg InternalErrorKind = iota
	ArityMismatch
)

func (e *InternalError) Error() string {
	switch e.Kind {
	case MissingArg:
		return fmt.Sprintf("missing required argument %q for %s", e.Arg, e.Name)
	case ArityMismatch:
		return fmt.Sprintf("arity mismatch calling black box function %s", e.Name)
	default:
		return "internal error"
	}
}

// SsaReport is a non-fatal diagnostic accumulated in Builder.warnings.
// It never aborts lowering.
type SsaReport struct {
	Message   string
	CallStack CallStack
}
