// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

// SourceSpan is a single opaque source-location frame. The Builder
// never inspects its fields; it only stores and forwards them.
type SourceSpan struct {
	File string
	Line uint32
	Col  uint32
}

// CallStack is an opaque record of source-code positions attached to
// an emitted opcode for diagnostics. Equality and ordering on
// CallStack itself are not required by any Builder operation.
type CallStack []SourceSpan

// IsEmpty reports whether the call stack carries no frames.
func (c CallStack) IsEmpty() bool {
	return len(c) == 0
}

// clone returns an independent copy, since CallStack is stamped onto
// every opcode pushed while current.
func (c CallStack) clone() CallStack {
	if len(c) == 0 {
		return nil
	}
	out := make(CallStack, len(c))
	copy(out, c)
	return out
}
