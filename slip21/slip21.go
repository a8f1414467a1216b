// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package slip21 derives symmetric keys from the master seed as described by
// SLIP-0021.
//
// Every node of the SLIP-0021 tree is 64 bytes.  The left half keys the HMAC
// producing the node's children and the right half is the node's symmetric
// key.  A child node is HMAC-SHA512(parent[0:32], 0x00 || label).  Labels are
// used exactly as given, so the leading 0x00 is part of the label passed by
// the caller.
package slip21

import (
	"errors"

	"github.com/btcsuite/keycore"
	"github.com/btcsuite/keycore/hashes"
	"github.com/btcsuite/keycore/hashstream"
	"github.com/btcsuite/keycore/internal/secret"
)

// KeyLen is the length of a derived symmetric key.
const KeyLen = 32

// RootSource produces the SLIP-0021 root node on demand.  Implementations
// must zero node when returning an error.
type RootSource interface {
	SymmetricRoot(node *[64]byte) error
}

// Deriver derives SLIP-0021 symmetric keys.  It holds no secret state
// between calls.
type Deriver struct {
	root   RootSource
	hashes hashes.Provider
}

// New returns a Deriver drawing its root node from root.
func New(root RootSource, h hashes.Provider) *Deriver {
	return &Deriver{root: root, hashes: h}
}

// Label returns the conventional encoding of a SLIP-0021 label: a 0x00 byte
// followed by the label text.
func Label(s string) []byte {
	b := make([]byte, 0, len(s)+1)
	b = append(b, 0x00)
	return append(b, s...)
}

// DeriveSymmetricKey writes the key of the root's child for label to key.
// key is zeroed on error.  The caller must wipe key once done with it.
func (d *Deriver) DeriveSymmetricKey(label []byte, key *[KeyLen]byte) error {
	return d.DerivePath([][]byte{label}, key)
}

// DerivePath writes the key of the node reached by following labels from the
// root to key.  An empty path yields the root's own key.  key is zeroed on
// error.
func (d *Deriver) DerivePath(labels [][]byte, key *[KeyLen]byte) (err error) {
	defer secret.ZeroOnError(&err, key[:])

	var scope secret.Scope
	defer scope.Wipe()

	node := scope.Node64()
	if err := d.root.SymmetricRoot(node); err != nil {
		var kerr keycore.Error
		if errors.As(err, &kerr) {
			return err
		}
		return keycore.CapabilityError("symmetric root retrieval", err)
	}

	parentKey := scope.Key32()
	for _, label := range labels {
		copy(parentKey[:], node[:32])
		err := hashstream.HMACSHA512(d.hashes, parentKey[:], node, label)
		if err != nil {
			return err
		}
	}

	log.Tracef("Derived symmetric key at depth %d", len(labels))
	copy(key[:], node[32:])
	return nil
}
