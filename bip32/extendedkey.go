// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip32

// References:
//   [BIP32]: BIP0032 - Hierarchical Deterministic Wallets
//   https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/keycore"
	"github.com/btcsuite/keycore/base58check"
	"github.com/btcsuite/keycore/curve"
	"github.com/btcsuite/keycore/internal/secret"
	"github.com/btcsuite/keycore/pubkey"
)

const (
	// SerializedKeyLen is the length of a serialized public or private
	// extended key.  It consists of 4 bytes version, 1 byte depth, 4 bytes
	// fingerprint, 4 bytes child number, 32 bytes chain code, and 33 bytes
	// public/private key data.
	SerializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33 // 78 bytes

	// SerializedCheckedKeyLen is the length of a serialized extended key
	// followed by its checksum.
	SerializedCheckedKeyLen = SerializedKeyLen + base58check.ChecksumLen

	// MaxSerializedPubKeyLength is the size of an output buffer large
	// enough for the Base58 text of any checked extended public key plus
	// a terminator.
	MaxSerializedPubKeyLength = 113

	// ChainCodeLen is the length of a chain code.
	ChainCodeLen = 32
)

// KeyMaterial is a private key along with its chain code.  It is owned by the
// caller of the derivation that produced it, who must call Zero once done.
type KeyMaterial struct {
	PrivKey   [32]byte
	ChainCode [ChainCodeLen]byte
}

// Zero wipes the private key and chain code.
func (k *KeyMaterial) Zero() {
	secret.Zero32(&k.PrivKey)
	secret.Zero32(&k.ChainCode)
}

// ExtendedPubKey is the decoded form of a BIP32 serialized extended public
// key.
type ExtendedPubKey struct {
	Version   uint32
	Depth     uint8
	ParentFP  uint32
	ChildNum  uint32
	ChainCode [ChainCodeLen]byte
	PubKey    [pubkey.CompressedLen]byte
}

// Serialize returns the 78-byte BIP32 serialization of the key.  All
// integers are big-endian.
func (k *ExtendedPubKey) Serialize() [SerializedKeyLen]byte {
	var b [SerializedKeyLen]byte
	binary.BigEndian.PutUint32(b[0:4], k.Version)
	b[4] = k.Depth
	binary.BigEndian.PutUint32(b[5:9], k.ParentFP)
	binary.BigEndian.PutUint32(b[9:13], k.ChildNum)
	copy(b[13:45], k.ChainCode[:])
	copy(b[45:78], k.PubKey[:])
	return b
}

// SerializeChecked returns the serialized key followed by a freshly computed
// checksum.
func (k *ExtendedPubKey) SerializeChecked() [SerializedCheckedKeyLen]byte {
	var b [SerializedCheckedKeyLen]byte
	ser := k.Serialize()
	copy(b[:], ser[:])
	cksum := base58check.Checksum(ser[:])
	copy(b[SerializedKeyLen:], cksum[:])
	return b
}

// String returns the Base58Check encoding of the extended key, for example
// xpub661MyMwAqRbcF... for a mainnet key.
func (k *ExtendedPubKey) String() string {
	ser := k.Serialize()
	return base58check.CheckEncode(ser[:])
}

// ParseExtendedPubKey decodes a Base58Check extended public key, verifying
// its checksum, that a depth 0 key carries no parent fingerprint or child
// number, and that the public key is a point on the curve.
func ParseExtendedPubKey(s string, ops curve.Ops) (*ExtendedPubKey, error) {
	payload, err := base58check.CheckDecode(s)
	if err != nil {
		return nil, err
	}
	return DeserializeExtendedPubKey(payload, ops)
}

// DeserializeExtendedPubKey decodes a 78-byte serialized extended public key.
func DeserializeExtendedPubKey(b []byte, ops curve.Ops) (*ExtendedPubKey, error) {
	if len(b) != SerializedKeyLen {
		str := fmt.Sprintf("extended key is %d bytes, want %d", len(b),
			SerializedKeyLen)
		return nil, keycore.MakeError(keycore.ErrInvalidFormat, str)
	}

	k := &ExtendedPubKey{
		Version:  binary.BigEndian.Uint32(b[0:4]),
		Depth:    b[4],
		ParentFP: binary.BigEndian.Uint32(b[5:9]),
		ChildNum: binary.BigEndian.Uint32(b[9:13]),
	}
	copy(k.ChainCode[:], b[13:45])
	copy(k.PubKey[:], b[45:78])

	// A master key has no parent and is not a child of anything.
	if k.Depth == 0 && (k.ParentFP != 0 || k.ChildNum != 0) {
		str := fmt.Sprintf("depth 0 key with parent fingerprint %08x "+
			"and child number %d", k.ParentFP, k.ChildNum)
		return nil, keycore.MakeError(keycore.ErrInvalidFormat, str)
	}

	// Private extended keys carry 0x00 || k here and are refused along with
	// anything that is not a point on the curve.
	var point [pubkey.UncompressedLen]byte
	if err := pubkey.Decompress(ops, point[:], k.PubKey[:]); err != nil {
		return nil, err
	}
	return k, nil
}
