// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package curve defines the secp256k1 arithmetic capability consumed by the
// key derivation core, along with a software implementation of it.
//
// Points cross the interface in their 65-byte uncompressed serialization
// (0x04 || x || y) and scalars as 32-byte big-endian arrays, the same shapes
// a hardware crypto accelerator exposes.  Implementations must be safe for
// concurrent use.
package curve

import "errors"

// These constants define the lengths of serialized curve values.
const (
	// ScalarLen is the length of a serialized scalar.
	ScalarLen = 32

	// CoordLen is the length of a serialized field element.
	CoordLen = 32

	// PointLen is the length of a serialized uncompressed point.
	PointLen = 65

	// PointPrefixUncompressed is the prefix byte of an uncompressed point.
	PointPrefixUncompressed byte = 0x04
)

var (
	// ErrInvalidScalar is returned when a scalar is zero or not below the
	// group order.
	ErrInvalidScalar = errors.New("scalar is zero or overflows the group order")

	// ErrInvalidPoint is returned when a serialized point is malformed or
	// not on the curve.
	ErrInvalidPoint = errors.New("invalid curve point")
)

// Ops is the elliptic curve capability used by the derivation and tweak
// engines.
type Ops interface {
	// ScalarBaseMult computes k*G and writes it to out.  k must be a valid
	// non-zero scalar below the group order.
	ScalarBaseMult(k *[ScalarLen]byte, out *[PointLen]byte) error

	// PointAdd computes a+b and writes it to out.  It returns false when
	// the sum is the point at infinity, in which case out is untouched.
	PointAdd(a, b *[PointLen]byte, out *[PointLen]byte) (bool, error)

	// RecoverY writes the y coordinate with the requested parity for the
	// given x coordinate.  It returns false when x does not belong to a
	// point on the curve.
	RecoverY(x *[CoordLen]byte, odd bool, y *[CoordLen]byte) (bool, error)

	// IsBelowOrder returns whether k, interpreted as a big-endian integer,
	// is strictly less than the group order.
	IsBelowOrder(k *[ScalarLen]byte) bool

	// AddModN computes a+b mod n and writes it to out.  out may alias a or
	// b.
	AddModN(a, b *[ScalarLen]byte, out *[ScalarLen]byte) error

	// NegateModN replaces k with n-k mod n.
	NegateModN(k *[ScalarLen]byte) error
}

// IsOddY returns whether the y coordinate of the serialized uncompressed
// point is odd.
func IsOddY(p *[PointLen]byte) bool {
	return p[PointLen-1]&1 == 1
}
