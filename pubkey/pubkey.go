// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pubkey converts secp256k1 public keys between their compressed
// (33-byte) and uncompressed (65-byte) serializations.
//
// Both conversions read their whole input before writing any output, so the
// output may share storage with the input.  In particular a single 65-byte
// buffer can be converted in place by passing buf as out and buf[:33] (or
// buf) as in.
package pubkey

import (
	"fmt"

	"github.com/btcsuite/keycore"
	"github.com/btcsuite/keycore/curve"
)

// These constants define the lengths of serialized public keys.
const (
	// CompressedLen is the length of a compressed public key.
	CompressedLen = 33

	// UncompressedLen is the length of an uncompressed public key.
	UncompressedLen = 65

	// XOnlyLen is the length of a BIP340 x-only public key.
	XOnlyLen = 32
)

const (
	prefixEven         byte = 0x02 // y_bit + x coord, even y
	prefixOdd          byte = 0x03 // y_bit + x coord, odd y
	prefixUncompressed byte = 0x04 // x coord + y coord
)

// Compress writes the compressed form of the uncompressed key in to out.
// in must be exactly 65 bytes starting with 0x04 and out must be at least 33
// bytes.  The prefix of the result encodes the parity of in's y coordinate.
func Compress(out, in []byte) error {
	if len(in) != UncompressedLen || in[0] != prefixUncompressed {
		return keycore.MakeError(keycore.ErrInvalidPointEncoding,
			"malformed uncompressed public key")
	}
	if len(out) < CompressedLen {
		str := fmt.Sprintf("compressed key needs %d bytes, buffer has %d",
			CompressedLen, len(out))
		return keycore.MakeError(keycore.ErrBufferTooSmall, str)
	}

	prefix := prefixEven
	if in[UncompressedLen-1]&1 == 1 {
		prefix = prefixOdd
	}
	copy(out[1:CompressedLen], in[1:1+curve.CoordLen])
	out[0] = prefix
	return nil
}

// Decompress writes the uncompressed form of the compressed key in to out,
// recovering the y coordinate through ops.  in must be exactly 33 bytes
// starting with 0x02 or 0x03 and out must be at least 65 bytes.
func Decompress(ops curve.Ops, out, in []byte) error {
	if len(in) != CompressedLen ||
		(in[0] != prefixEven && in[0] != prefixOdd) {

		return keycore.MakeError(keycore.ErrInvalidPointEncoding,
			"malformed compressed public key")
	}
	if len(out) < UncompressedLen {
		str := fmt.Sprintf("uncompressed key needs %d bytes, buffer has %d",
			UncompressedLen, len(out))
		return keycore.MakeError(keycore.ErrBufferTooSmall, str)
	}

	var x, y [curve.CoordLen]byte
	copy(x[:], in[1:])
	odd := in[0] == prefixOdd

	ok, err := ops.RecoverY(&x, odd, &y)
	if err != nil {
		return keycore.CapabilityError("recover y", err)
	}
	if !ok {
		return keycore.MakeError(keycore.ErrInvalidPointEncoding,
			"x coordinate is not on the curve")
	}

	out[0] = prefixUncompressed
	copy(out[1:1+curve.CoordLen], x[:])
	copy(out[1+curve.CoordLen:UncompressedLen], y[:])
	return nil
}

// CompressPoint returns the compressed form of a point produced by the curve
// capability.
func CompressPoint(p *[curve.PointLen]byte) [CompressedLen]byte {
	var out [CompressedLen]byte
	out[0] = prefixEven
	if curve.IsOddY(p) {
		out[0] = prefixOdd
	}
	copy(out[1:], p[1:1+curve.CoordLen])
	return out
}

// XOnly returns the BIP340 x-only form of a compressed public key.
func XOnly(compressed *[CompressedLen]byte) [XOnlyLen]byte {
	var out [XOnlyLen]byte
	copy(out[:], compressed[1:])
	return out
}
