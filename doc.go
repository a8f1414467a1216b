// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package keycore implements the key derivation and encoding core of a
hardware-style bitcoin signer.

The core derives BIP32 private and public keys, computes key fingerprints,
serializes extended public keys and addresses with Base58Check, derives
SLIP-0021 symmetric keys and computes BIP341 Taproot key tweaks.  All
elliptic curve and hash primitives are consumed through the capability
interfaces in the curve and hashes packages so the algorithms can run
against any conforming implementation, software or hardware backed.

The functionality is split across the following packages:

  - hashstream: typed incremental updates of an open hash computation
  - pubkey: compressed/uncompressed public key conversion
  - base58check: checksummed Base58 addresses and payloads
  - bip32: private and public child key derivation, extended public keys
  - slip21: SLIP-0021 symmetric key derivation
  - taproot: BIP340 tagged hashes and BIP341 key tweaks
  - seed: master key source backed by a seed or BIP39 mnemonic

Errors

Every error returned by the packages of this module is either an ErrorKind
or an Error wrapping one, so callers can use errors.Is to check for a
specific failure:

	if errors.Is(err, keycore.ErrInvalidIndex) {
		// hardened index passed to public derivation
	}

Secret material

Private keys, chain codes and symmetric keys are written into caller owned
buffers.  Whenever an operation fails after it has started to populate such
a buffer, the buffer is zeroed before the error is returned.  On success the
caller owns the material and must wipe it once done.
*/
package keycore
