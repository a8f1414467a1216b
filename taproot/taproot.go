// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package taproot

import (
	"fmt"
	"hash"

	"github.com/btcsuite/keycore"
	"github.com/btcsuite/keycore/curve"
	"github.com/btcsuite/keycore/hashes"
	"github.com/btcsuite/keycore/hashstream"
	"github.com/btcsuite/keycore/internal/secret"
)

// XOnlyKeyLen is the length of a BIP340 x-only public key.
const XOnlyKeyLen = 32

// TagTapTweak is the BIP341 tag of the hash committing an internal key to
// its output key.
var TagTapTweak = []byte("TapTweak")

// TaggedHashInit returns a SHA-256 computation that has already absorbed
// SHA256(tag) || SHA256(tag), ready for the message to be written to it.
func TaggedHashInit(p hashes.Provider, tag []byte) (hash.Hash, error) {
	var tagHash [hashes.SHA256Size]byte
	if err := hashstream.SHA256(p, tag, &tagHash); err != nil {
		return nil, err
	}

	h, err := p.NewSHA256()
	if err != nil {
		return nil, keycore.CapabilityError("sha256 init", err)
	}
	if err := hashstream.Update(h, tagHash[:]); err != nil {
		return nil, err
	}
	if err := hashstream.Update(h, tagHash[:]); err != nil {
		return nil, err
	}
	return h, nil
}

// TaggedHash returns the BIP340 tagged hash of the concatenated msgs.
func TaggedHash(p hashes.Provider, tag []byte, msgs ...[]byte) ([hashes.SHA256Size]byte, error) {
	var out [hashes.SHA256Size]byte
	h, err := TaggedHashInit(p, tag)
	if err != nil {
		return out, err
	}
	for _, msg := range msgs {
		if err := hashstream.Update(h, msg); err != nil {
			return out, err
		}
	}
	err = hashstream.Digest(h, out[:])
	return out, err
}

// Tweaker computes BIP341 key path only tweaks, where the output key commits
// to the internal key and an empty script tree.
type Tweaker struct {
	curve  curve.Ops
	hashes hashes.Provider
}

// New returns a Tweaker using the given capabilities.
func New(ops curve.Ops, h hashes.Provider) *Tweaker {
	return &Tweaker{curve: ops, hashes: h}
}

// tweakScalar computes t = hash_TapTweak(x) and checks that it is below the
// group order.
func (tw *Tweaker) tweakScalar(x *[XOnlyKeyLen]byte) ([32]byte, error) {
	t, err := TaggedHash(tw.hashes, TagTapTweak, x[:])
	if err != nil {
		return t, err
	}
	if !tw.curve.IsBelowOrder(&t) {
		return t, keycore.MakeError(keycore.ErrScalarOutOfRange,
			"tweak is not below the group order")
	}
	return t, nil
}

// TweakPubKey computes the output key Q = lift_x(pub) + t*G and writes its x
// coordinate to out, returning the parity of its y coordinate.  out may point
// to pub.
func (tw *Tweaker) TweakPubKey(pub *[XOnlyKeyLen]byte, out *[XOnlyKeyLen]byte) (byte, error) {
	t, err := tw.tweakScalar(pub)
	if err != nil {
		return 0, err
	}

	// lift_x takes the point with an even y coordinate.
	var p [curve.PointLen]byte
	p[0] = curve.PointPrefixUncompressed
	copy(p[1:1+curve.CoordLen], pub[:])
	ok, err := tw.curve.RecoverY(pub, false, (*[curve.CoordLen]byte)(p[1+curve.CoordLen:]))
	if err != nil {
		return 0, keycore.CapabilityError("point decompression", err)
	}
	if !ok {
		str := fmt.Sprintf("x-only key %x is not on the curve", pub[:])
		return 0, keycore.MakeError(keycore.ErrInvalidPointEncoding, str)
	}

	q := p
	if !secret.IsZero(t[:]) {
		var tG [curve.PointLen]byte
		if err := tw.curve.ScalarBaseMult(&t, &tG); err != nil {
			return 0, keycore.CapabilityError("scalar base multiplication", err)
		}
		ok, err := tw.curve.PointAdd(&p, &tG, &q)
		if err != nil {
			return 0, keycore.CapabilityError("point addition", err)
		}
		if !ok {
			return 0, keycore.MakeError(keycore.ErrScalarOutOfRange,
				"tweaked key is the point at infinity")
		}
	}

	var parity byte
	if curve.IsOddY(&q) {
		parity = 1
	}
	copy(out[:], q[1:1+curve.CoordLen])
	log.Tracef("Tweaked x-only key %x (output parity %d)", out[:], parity)
	return parity, nil
}

// TweakSecKey replaces seckey with the secret key of the output key, (d + t)
// mod n, where d is seckey negated if its public key has an odd y coordinate.
// seckey is consumed: it is zeroed on error and the caller must wipe the
// result once done with it.
func (tw *Tweaker) TweakSecKey(seckey *[32]byte) (err error) {
	defer secret.ZeroOnError(&err, seckey[:])

	if secret.IsZero(seckey[:]) || !tw.curve.IsBelowOrder(seckey) {
		return keycore.MakeError(keycore.ErrScalarOutOfRange,
			"secret key is not a valid scalar")
	}

	var point [curve.PointLen]byte
	if err := tw.curve.ScalarBaseMult(seckey, &point); err != nil {
		return keycore.CapabilityError("scalar base multiplication", err)
	}
	if curve.IsOddY(&point) {
		if err := tw.curve.NegateModN(seckey); err != nil {
			return keycore.CapabilityError("scalar negation", err)
		}
	}

	var x [XOnlyKeyLen]byte
	copy(x[:], point[1:1+curve.CoordLen])
	t, err := tw.tweakScalar(&x)
	if err != nil {
		return err
	}
	if err := tw.curve.AddModN(seckey, &t, seckey); err != nil {
		return keycore.CapabilityError("scalar addition", err)
	}
	if secret.IsZero(seckey[:]) {
		return keycore.MakeError(keycore.ErrScalarOutOfRange,
			"tweaked secret key is zero")
	}
	return nil
}
