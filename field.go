// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/holiman/uint256"
)

// F is a single element of the circuit's scalar field (BN254 Fr).
// All expression coefficients, constants, and black-box constant
// arguments are values of this type.
type F = fr.Element

// FieldMaxNumBits returns the bit-length of the field modulus minus
// one. RangeConstraint accepts only num_bits strictly below this value.
func FieldMaxNumBits() uint32 {
	return uint32(fr.Bits) - 1
}

// FieldZero returns the additive identity.
func FieldZero() F {
	var f F
	f.SetZero()
	return f
}

// FieldOne returns the multiplicative identity.
func FieldOne() F {
	var f F
	f.SetOne()
	return f
}

// FieldFromBytesBE reduces a big-endian byte string into the field,
// mirroring FieldElement::from_be_bytes_reduce in the original.
func FieldFromBytesBE(b []byte) F {
	var f F
	f.SetBytes(b)
	return f
}

// fieldNeg returns -f.
func fieldNeg(f F) F {
	var out F
	out.Neg(&f)
	return out
}

// fieldAdd returns a+b.
func fieldAdd(a, b F) F {
	var out F
	out.Add(&a, &b)
	return out
}

// fieldSub returns a-b.
func fieldSub(a, b F) F {
	var out F
	out.Sub(&a, &b)
	return out
}

// fieldMul returns a*b.
func fieldMul(a, b F) F {
	var out F
	out.Mul(&a, &b)
	return out
}

// fieldIsZero reports whether f is the additive identity.
func fieldIsZero(f F) bool {
	return f.IsZero()
}

// fieldEqual reports structural (value) equality.
func fieldEqual(a, b F) bool {
	return a.Equal(&b)
}

// low128AsUint64 decodes a field constant as an unsigned 256-bit
// integer and returns its low 64 bits, used for the small
// discriminants (domain_sep, len, bigint ids, modulus bytes) described
// in spec.md §6. Overflow is caller-guaranteed not to occur, matching
// FieldElement::to_u128 usage in the original, which truncates to the
// low 128 bits without checking range.
func low128AsUint64(f F) uint64 {
	bi := f.BigInt(new(big.Int))
	// The field modulus is well under 2^256, so this never overflows.
	u, _ := uint256.FromBig(bi)
	return u.Uint64()
}
