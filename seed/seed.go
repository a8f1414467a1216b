// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package seed provides the master key capability of the derivation core:
// it holds the device master seed for the lifetime of a session and derives
// the BIP32 master key and the SLIP-0021 root node from it on demand.
//
// Nothing derived from the seed is retained between calls.
package seed

import (
	"fmt"

	"github.com/btcsuite/keycore"
	"github.com/btcsuite/keycore/curve"
	"github.com/btcsuite/keycore/hashes"
	"github.com/btcsuite/keycore/hashstream"
	"github.com/btcsuite/keycore/internal/secret"
	"github.com/tyler-smith/go-bip39"
)

const (
	// MinSeedBytes is the minimum number of bytes allowed for a seed to
	// a master node.
	MinSeedBytes = 16 // 128 bits

	// MaxSeedBytes is the maximum number of bytes allowed for a seed to
	// a master node.
	MaxSeedBytes = 64 // 512 bits
)

var (
	// masterKey is the HMAC key used to derive the BIP32 master node.
	masterKey = []byte("Bitcoin seed")

	// symmetricKey is the HMAC key used to derive the SLIP-0021 root node.
	symmetricKey = []byte("Symmetric key seed")
)

// errWiped is returned when a Seed is used after Zero.
var errWiped = keycore.MakeError(keycore.ErrSeedUnavailable, "seed has been wiped")

// Seed is a master seed along with the capabilities needed to derive root
// key material from it.
type Seed struct {
	seed   []byte
	curve  curve.Ops
	hashes hashes.Provider
}

// New returns a Seed holding a copy of seed.  The seed must be between
// MinSeedBytes and MaxSeedBytes long.
func New(seed []byte, ops curve.Ops, h hashes.Provider) (*Seed, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		str := fmt.Sprintf("seed length must be between %d and %d bits",
			MinSeedBytes*8, MaxSeedBytes*8)
		return nil, keycore.MakeError(keycore.ErrInvalidFormat, str)
	}

	s := &Seed{
		seed:   make([]byte, len(seed)),
		curve:  ops,
		hashes: h,
	}
	copy(s.seed, seed)
	return s, nil
}

// FromMnemonic returns a Seed derived from a BIP39 mnemonic and passphrase.
// The mnemonic checksum is verified.
func FromMnemonic(mnemonic, passphrase string, ops curve.Ops,
	h hashes.Provider) (*Seed, error) {

	raw, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, keycore.Error{
			Err:         keycore.ErrInvalidFormat,
			Description: "invalid mnemonic",
			Cause:       err,
		}
	}
	defer secret.Zero(raw)

	log.Debugf("Loaded %d-byte seed from mnemonic", len(raw))
	return New(raw, ops, h)
}

// MasterKey writes the BIP32 master private key and chain code, the left and
// right halves of HMAC-SHA512("Bitcoin seed", seed).  Both outputs are zeroed
// when an error is returned.
func (s *Seed) MasterKey(privKey, chainCode *[32]byte) (err error) {
	defer secret.ZeroOnError(&err, privKey[:], chainCode[:])

	if len(s.seed) == 0 {
		return errWiped
	}

	var scope secret.Scope
	defer scope.Wipe()

	node := scope.Node64()
	err = hashstream.HMACSHA512(s.hashes, masterKey, node, s.seed)
	if err != nil {
		return err
	}

	il := (*[32]byte)(node[:32])
	if secret.IsZero(il[:]) || !s.curve.IsBelowOrder(il) {
		return keycore.MakeError(keycore.ErrScalarOutOfRange,
			"seed produces an unusable master key")
	}

	*privKey = *il
	copy(chainCode[:], node[32:])
	return nil
}

// SymmetricRoot writes the SLIP-0021 root node,
// HMAC-SHA512("Symmetric key seed", seed).  The output is zeroed when an
// error is returned.
func (s *Seed) SymmetricRoot(node *[64]byte) (err error) {
	defer secret.ZeroOnError(&err, node[:])

	if len(s.seed) == 0 {
		return errWiped
	}
	return hashstream.HMACSHA512(s.hashes, symmetricKey, node, s.seed)
}

// Zero wipes the seed.  The Seed must not be used afterwards.
func (s *Seed) Zero() {
	secret.Zero(s.seed)
	s.seed = s.seed[:0]
}
