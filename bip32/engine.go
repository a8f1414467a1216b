// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip32

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/btcsuite/keycore"
	"github.com/btcsuite/keycore/curve"
	"github.com/btcsuite/keycore/hashes"
	"github.com/btcsuite/keycore/hashstream"
	"github.com/btcsuite/keycore/internal/secret"
	"github.com/btcsuite/keycore/pubkey"
)

// MasterKeySource produces the master private key and chain code on demand.
// Implementations must zero both outputs when returning an error.
type MasterKeySource interface {
	MasterKey(privKey, chainCode *[32]byte) error
}

// Engine derives keys along BIP32 paths from the master key.  It holds no
// secret state between calls and is safe for concurrent use provided its
// capabilities are.
type Engine struct {
	master MasterKeySource
	curve  curve.Ops
	hashes hashes.Provider
}

// NewEngine returns a derivation engine using the given master key source and
// curve and hash capabilities.
func NewEngine(master MasterKeySource, ops curve.Ops, h hashes.Provider) *Engine {
	return &Engine{
		master: master,
		curve:  ops,
		hashes: h,
	}
}

// hardenedPrefix is the byte placed before a private key in the HMAC data of
// a hardened child.
var hardenedPrefix = []byte{0x00}

// masterKey loads the master key material into km.
func (e *Engine) masterKey(km *KeyMaterial) error {
	err := e.master.MasterKey(&km.PrivKey, &km.ChainCode)
	if err == nil {
		return nil
	}
	var kerr keycore.Error
	if errors.As(err, &kerr) {
		return err
	}
	return keycore.CapabilityError("master key retrieval", err)
}

// pubKey writes the compressed public key for the private key k.
func (e *Engine) pubKey(k *[32]byte, out *[pubkey.CompressedLen]byte) error {
	var point [curve.PointLen]byte
	if err := e.curve.ScalarBaseMult(k, &point); err != nil {
		return keycore.CapabilityError("scalar base multiplication", err)
	}
	*out = pubkey.CompressPoint(&point)
	return nil
}

// childScalar checks that the left half of an HMAC node is usable as a
// tweak, i.e. non-zero and below the group order.
func (e *Engine) childScalar(node *[64]byte) (*[32]byte, error) {
	il := (*[32]byte)(node[:32])
	if secret.IsZero(il[:]) || !e.curve.IsBelowOrder(il) {
		return nil, keycore.MakeError(keycore.ErrScalarOutOfRange,
			"derived tweak is not a valid scalar")
	}
	return il, nil
}

// ckdPriv replaces km with its child at index.
//
// The child private key is IL + kpar (mod n) and the child chain code is IR,
// where IL and IR are the halves of HMAC-SHA512(cpar, data).  data is
// 0x00 || kpar || ser32(i) for hardened children and serP(point(kpar)) ||
// ser32(i) otherwise.
func (e *Engine) ckdPriv(km *KeyMaterial, index uint32) error {
	var scope secret.Scope
	defer scope.Wipe()

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)

	node := scope.Node64()
	if IsHardened(index) {
		err := hashstream.HMACSHA512(e.hashes, km.ChainCode[:], node,
			hardenedPrefix, km.PrivKey[:], idx[:])
		if err != nil {
			return err
		}
	} else {
		var pub [pubkey.CompressedLen]byte
		if err := e.pubKey(&km.PrivKey, &pub); err != nil {
			return err
		}
		err := hashstream.HMACSHA512(e.hashes, km.ChainCode[:], node,
			pub[:], idx[:])
		if err != nil {
			return err
		}
	}

	il, err := e.childScalar(node)
	if err != nil {
		return err
	}
	if err := e.curve.AddModN(il, &km.PrivKey, &km.PrivKey); err != nil {
		return keycore.CapabilityError("scalar addition", err)
	}
	if secret.IsZero(km.PrivKey[:]) {
		return keycore.MakeError(keycore.ErrScalarOutOfRange,
			"derived private key is zero")
	}
	copy(km.ChainCode[:], node[32:])
	return nil
}

// derive walks path from the master key, leaving the result in km.  When
// parentPub is not nil and the path is not empty, the compressed public key
// of the last step's parent is written to it.
func (e *Engine) derive(path Path, km *KeyMaterial, parentPub *[pubkey.CompressedLen]byte) (err error) {
	defer secret.ZeroOnError(&err, km.PrivKey[:], km.ChainCode[:])

	if err := path.Validate(); err != nil {
		return err
	}
	if err := e.masterKey(km); err != nil {
		return err
	}

	for i, index := range path {
		if parentPub != nil && i == len(path)-1 {
			if err := e.pubKey(&km.PrivKey, parentPub); err != nil {
				return err
			}
		}
		if err := e.ckdPriv(km, index); err != nil {
			log.Debugf("Derivation failed at step %d of %v: %v", i,
				path, err)
			return err
		}
	}
	return nil
}

// DerivePrivateKey derives the private key and chain code at path into km.
// The caller owns km and must call km.Zero once done with it.  On error km is
// already zeroed.
//
// A derivation step whose tweak is not a valid scalar fails with
// ErrScalarOutOfRange.  Unlike BIP32, which only rejects tweaks at or above
// the group order, a zero tweak is rejected too.  The next index is not
// tried automatically.
func (e *Engine) DerivePrivateKey(path Path, km *KeyMaterial) error {
	log.Tracef("Deriving private key at %v", path)
	return e.derive(path, km, nil)
}

// CKDPub derives the non-hardened child at index of the extended public key
// parent into child.  child may point to parent, in which case it is
// overwritten on success.  On error child is left untouched.
//
// As with DerivePrivateKey, a zero tweak fails with ErrScalarOutOfRange
// alongside tweaks at or above the group order and a child at infinity.
func (e *Engine) CKDPub(parent *ExtendedPubKey, index uint32, child *ExtendedPubKey) error {
	// A hardened child can't be derived from a public key.
	if IsHardened(index) {
		str := fmt.Sprintf("cannot derive hardened child %d from a "+
			"public key", index)
		return keycore.MakeError(keycore.ErrInvalidIndex, str)
	}
	if parent.Depth == math.MaxUint8 {
		return keycore.MakeError(keycore.ErrInvalidPath,
			"cannot derive a key with more than 255 indices in its path")
	}

	p := *parent
	fp, err := e.KeyFingerprint(&p.PubKey)
	if err != nil {
		return err
	}

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)

	var node [64]byte
	defer secret.Zero(node[:])
	err = hashstream.HMACSHA512(e.hashes, p.ChainCode[:], &node,
		p.PubKey[:], idx[:])
	if err != nil {
		return err
	}
	il, err := e.childScalar(&node)
	if err != nil {
		return err
	}

	// Ki = point(IL) + Kpar
	var tweakPoint, parentPoint, childPoint [curve.PointLen]byte
	if err := e.curve.ScalarBaseMult(il, &tweakPoint); err != nil {
		return keycore.CapabilityError("scalar base multiplication", err)
	}
	if err := pubkey.Decompress(e.curve, parentPoint[:], p.PubKey[:]); err != nil {
		return err
	}
	ok, err := e.curve.PointAdd(&parentPoint, &tweakPoint, &childPoint)
	if err != nil {
		return keycore.CapabilityError("point addition", err)
	}
	if !ok {
		return keycore.MakeError(keycore.ErrScalarOutOfRange,
			"derived public key is the point at infinity")
	}

	*child = ExtendedPubKey{
		Version:  p.Version,
		Depth:    p.Depth + 1,
		ParentFP: fp,
		ChildNum: index,
		PubKey:   pubkey.CompressPoint(&childPoint),
	}
	copy(child.ChainCode[:], node[32:])
	return nil
}

// KeyFingerprint returns the fingerprint of a compressed public key, the
// first four bytes of its hash160 read as a big-endian integer.
func (e *Engine) KeyFingerprint(pub *[pubkey.CompressedLen]byte) (uint32, error) {
	var h [hashes.RIPEMD160Size]byte
	if err := hashstream.Hash160(e.hashes, pub[:], &h); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(h[:4]), nil
}

// MasterKeyFingerprint returns the fingerprint of the master public key.
func (e *Engine) MasterKeyFingerprint() (uint32, error) {
	var pub [pubkey.CompressedLen]byte
	if err := e.CompressedPubKeyAtPath(nil, &pub, nil); err != nil {
		return 0, err
	}
	return e.KeyFingerprint(&pub)
}

// CompressedPubKeyAtPath writes the compressed public key at path to pub and,
// when chainCode is not nil, its chain code.  The private key is wiped before
// returning.  Neither output is written on error.
func (e *Engine) CompressedPubKeyAtPath(path Path, pub *[pubkey.CompressedLen]byte,
	chainCode *[ChainCodeLen]byte) error {

	var km KeyMaterial
	defer km.Zero()
	if err := e.derive(path, &km, nil); err != nil {
		return err
	}

	var result [pubkey.CompressedLen]byte
	if err := e.pubKey(&km.PrivKey, &result); err != nil {
		return err
	}
	*pub = result
	if chainCode != nil {
		*chainCode = km.ChainCode
	}
	return nil
}

// ExtendedPubKeyAtPath returns the extended public key at path with the given
// version.  A key at depth zero has a zero parent fingerprint and child
// number.
func (e *Engine) ExtendedPubKeyAtPath(path Path, version uint32) (*ExtendedPubKey, error) {
	var km KeyMaterial
	defer km.Zero()

	var parentPub [pubkey.CompressedLen]byte
	if err := e.derive(path, &km, &parentPub); err != nil {
		return nil, err
	}

	k := &ExtendedPubKey{
		Version:   version,
		Depth:     uint8(len(path)),
		ChainCode: km.ChainCode,
	}
	if err := e.pubKey(&km.PrivKey, &k.PubKey); err != nil {
		return nil, err
	}
	if len(path) > 0 {
		fp, err := e.KeyFingerprint(&parentPub)
		if err != nil {
			return nil, err
		}
		k.ParentFP = fp
		k.ChildNum = path[len(path)-1]
	}

	log.Debugf("Derived extended public key at %v (parent fingerprint "+
		"%08x)", path, k.ParentFP)
	return k, nil
}

// SerializedExtendedPubKeyAtPath writes the Base58Check text of the extended
// public key at path to out and returns the number of bytes written.  It
// fails with ErrEncodingOverflow if out cannot hold the text, in which case
// out is not modified.  No terminator is written, so a buffer exactly as
// long as the text is large enough.
func (e *Engine) SerializedExtendedPubKeyAtPath(path Path, version uint32, out []byte) (int, error) {
	s, err := e.ExtendedPubKeyStringAtPath(path, version)
	if err != nil {
		return 0, err
	}
	if len(s) > len(out) {
		str := fmt.Sprintf("extended key needs %d bytes, buffer has %d",
			len(s), len(out))
		return 0, keycore.MakeError(keycore.ErrEncodingOverflow, str)
	}
	return copy(out, s), nil
}

// ExtendedPubKeyStringAtPath returns the Base58Check text of the extended
// public key at path.
func (e *Engine) ExtendedPubKeyStringAtPath(path Path, version uint32) (string, error) {
	k, err := e.ExtendedPubKeyAtPath(path, version)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}
