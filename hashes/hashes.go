// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashes defines the hashing capability consumed by the key
// derivation core and a software implementation of it.
//
// A hash computation is modelled by the standard hash.Hash interface: the
// constructor initializes it, Write updates it and Sum finalizes it.  The
// constructors return an error so implementations backed by a hardware
// accelerator can report a failure to allocate a context.
package hashes

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

// These constants define the output sizes of the supported hashes.
const (
	// SHA256Size is the size of a SHA-256 digest.
	SHA256Size = sha256.Size

	// RIPEMD160Size is the size of a RIPEMD-160 digest.
	RIPEMD160Size = ripemd160.Size

	// HMACSHA512Size is the size of an HMAC-SHA512 output.
	HMACSHA512Size = sha512.Size
)

// Provider creates initialized incremental hash computations.
type Provider interface {
	// NewSHA256 returns a new SHA-256 computation.
	NewSHA256() (hash.Hash, error)

	// NewRIPEMD160 returns a new RIPEMD-160 computation.
	NewRIPEMD160() (hash.Hash, error)

	// NewHMACSHA512 returns a new HMAC-SHA512 computation keyed by key.
	// The key is copied, so the caller may wipe it after the call.
	NewHMACSHA512(key []byte) (hash.Hash, error)
}

// Software implements Provider with the Go standard library and
// golang.org/x/crypto.
type Software struct{}

// A compile-time assertion to ensure Software implements Provider.
var _ Provider = Software{}

// NewSHA256 returns a new SHA-256 computation.
func (Software) NewSHA256() (hash.Hash, error) {
	return sha256.New(), nil
}

// NewRIPEMD160 returns a new RIPEMD-160 computation.
func (Software) NewRIPEMD160() (hash.Hash, error) {
	return ripemd160.New(), nil
}

// NewHMACSHA512 returns a new HMAC-SHA512 computation keyed by key.
func (Software) NewHMACSHA512(key []byte) (hash.Hash, error) {
	return hmac.New(sha512.New, key), nil
}
