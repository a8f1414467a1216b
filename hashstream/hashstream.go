// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashstream provides helpers to feed typed values into an open
// hash computation and to finalize it into a caller supplied buffer.
package hashstream

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/keycore"
	"github.com/btcsuite/keycore/hashes"
)

// Update feeds data into the hash computation h.
func Update(h hash.Hash, data []byte) error {
	if _, err := h.Write(data); err != nil {
		return keycore.CapabilityError("hash update", err)
	}
	return nil
}

// UpdateU8 feeds a single byte into h.
func UpdateU8(h hash.Hash, v uint8) error {
	return Update(h, []byte{v})
}

// UpdateU16 feeds v into h encoded as 2 big-endian bytes.
func UpdateU16(h hash.Hash, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return Update(h, buf[:])
}

// UpdateU32 feeds v into h encoded as 4 big-endian bytes.
func UpdateU32(h hash.Hash, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return Update(h, buf[:])
}

// UpdateVarInt feeds v into h encoded as a bitcoin compact size integer: a
// single byte below 0xfd, otherwise a 0xfd, 0xfe or 0xff marker followed by
// a 2, 4 or 8 byte little-endian value.
func UpdateVarInt(h hash.Hash, v uint64) error {
	if err := wire.WriteVarInt(h, 0, v); err != nil {
		return keycore.CapabilityError("hash update", err)
	}
	return nil
}

// Digest finalizes h and writes the result into the start of out, which
// must be at least h.Size() bytes long.
func Digest(h hash.Hash, out []byte) error {
	if len(out) < h.Size() {
		str := fmt.Sprintf("digest needs %d bytes, buffer has %d",
			h.Size(), len(out))
		return keycore.MakeError(keycore.ErrBufferTooSmall, str)
	}
	h.Sum(out[:0])
	return nil
}

// SHA256 computes SHA256(in) into out.
func SHA256(p hashes.Provider, in []byte, out *[hashes.SHA256Size]byte) error {
	h, err := p.NewSHA256()
	if err != nil {
		return keycore.CapabilityError("sha256 init", err)
	}
	if err := Update(h, in); err != nil {
		return err
	}
	return Digest(h, out[:])
}

// DoubleSHA256 computes SHA256(SHA256(in)) into out.
func DoubleSHA256(p hashes.Provider, in []byte, out *[hashes.SHA256Size]byte) error {
	var first [hashes.SHA256Size]byte
	if err := SHA256(p, in, &first); err != nil {
		return err
	}
	return SHA256(p, first[:], out)
}

// RIPEMD160 computes RIPEMD160(in) into out.
func RIPEMD160(p hashes.Provider, in []byte, out *[hashes.RIPEMD160Size]byte) error {
	h, err := p.NewRIPEMD160()
	if err != nil {
		return keycore.CapabilityError("ripemd160 init", err)
	}
	if err := Update(h, in); err != nil {
		return err
	}
	return Digest(h, out[:])
}

// Hash160 computes RIPEMD160(SHA256(in)) into out.
func Hash160(p hashes.Provider, in []byte, out *[hashes.RIPEMD160Size]byte) error {
	var sha [hashes.SHA256Size]byte
	if err := SHA256(p, in, &sha); err != nil {
		return err
	}
	return RIPEMD160(p, sha[:], out)
}

// HMACSHA512 computes HMAC-SHA512(key, data...) into out.
func HMACSHA512(p hashes.Provider, key []byte, out *[hashes.HMACSHA512Size]byte,
	data ...[]byte) error {

	h, err := p.NewHMACSHA512(key)
	if err != nil {
		return keycore.CapabilityError("hmac-sha512 init", err)
	}
	for _, d := range data {
		if err := Update(h, d); err != nil {
			return err
		}
	}
	return Digest(h, out[:])
}
