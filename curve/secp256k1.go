// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"github.com/btcsuite/btcd/btcec/v2"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 implements Ops in software on top of btcec.  Scalars are loaded
// into temporary values which are zeroed before each method returns.
type Secp256k1 struct{}

// A compile-time assertion to ensure Secp256k1 implements Ops.
var _ Ops = Secp256k1{}

// loadPoint parses a serialized uncompressed point into jacobian coordinates,
// verifying it is on the curve.
func loadPoint(p *[PointLen]byte, result *btcec.JacobianPoint) error {
	if p[0] != PointPrefixUncompressed {
		return ErrInvalidPoint
	}
	pub, err := btcec.ParsePubKey(p[:])
	if err != nil {
		return ErrInvalidPoint
	}
	pub.AsJacobian(result)
	return nil
}

// storePoint serializes an affine point in uncompressed form.
func storePoint(p *btcec.JacobianPoint, out *[PointLen]byte) {
	out[0] = PointPrefixUncompressed
	p.X.PutBytesUnchecked(out[1 : 1+CoordLen])
	p.Y.PutBytesUnchecked(out[1+CoordLen:])
}

// ScalarBaseMult computes k*G.
func (Secp256k1) ScalarBaseMult(k *[ScalarLen]byte, out *[PointLen]byte) error {
	var s btcec.ModNScalar
	defer s.Zero()
	if overflow := s.SetBytes(k); overflow != 0 || s.IsZero() {
		return ErrInvalidScalar
	}

	var result btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&s, &result)
	result.ToAffine()
	storePoint(&result, out)
	return nil
}

// PointAdd computes a+b.
func (Secp256k1) PointAdd(a, b *[PointLen]byte, out *[PointLen]byte) (bool, error) {
	var pa, pb, sum btcec.JacobianPoint
	if err := loadPoint(a, &pa); err != nil {
		return false, err
	}
	if err := loadPoint(b, &pb); err != nil {
		return false, err
	}

	btcec.AddNonConst(&pa, &pb, &sum)
	sum.X.Normalize()
	sum.Y.Normalize()
	sum.Z.Normalize()
	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return false, nil
	}
	sum.ToAffine()
	storePoint(&sum, out)
	return true, nil
}

// RecoverY solves the curve equation for y given x.
func (Secp256k1) RecoverY(x *[CoordLen]byte, odd bool, y *[CoordLen]byte) (bool, error) {
	var fx, fy secp.FieldVal
	if overflow := fx.SetByteSlice(x[:]); overflow {
		return false, nil
	}
	if !secp.DecompressY(&fx, odd, &fy) {
		return false, nil
	}
	fy.Normalize()
	fy.PutBytes(y)
	return true, nil
}

// IsBelowOrder reports whether k < n.
func (Secp256k1) IsBelowOrder(k *[ScalarLen]byte) bool {
	var s btcec.ModNScalar
	overflow := s.SetBytes(k)
	s.Zero()
	return overflow == 0
}

// AddModN computes a+b mod n.
func (Secp256k1) AddModN(a, b *[ScalarLen]byte, out *[ScalarLen]byte) error {
	var sa, sb btcec.ModNScalar
	defer sa.Zero()
	defer sb.Zero()
	if sa.SetBytes(a) != 0 || sb.SetBytes(b) != 0 {
		return ErrInvalidScalar
	}
	sa.Add(&sb)
	sa.PutBytes(out)
	return nil
}

// NegateModN computes n-k mod n in place.
func (Secp256k1) NegateModN(k *[ScalarLen]byte) error {
	var s btcec.ModNScalar
	defer s.Zero()
	if s.SetBytes(k) != 0 {
		return ErrInvalidScalar
	}
	s.Negate()
	s.PutBytes(k)
	return nil
}
