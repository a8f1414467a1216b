// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58check implements Base58 encoding with a trailing four byte
// double-SHA256 checksum, as used by bitcoin addresses and extended keys.
package base58check

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/keycore"
)

const (
	// ChecksumLen is the length of the checksum appended to the payload.
	ChecksumLen = 4

	// HashLen is the length of the hash carried by an address.
	HashLen = 20
)

// Checksum returns the first four bytes of SHA256(SHA256(data)).
func Checksum(data []byte) (cksum [ChecksumLen]byte) {
	h := chainhash.DoubleHashB(data)
	copy(cksum[:], h[:ChecksumLen])
	return
}

// CheckEncode appends a four byte checksum to payload and returns its Base58
// encoding.
func CheckEncode(payload []byte) string {
	b := make([]byte, 0, len(payload)+ChecksumLen)
	b = append(b, payload...)
	cksum := Checksum(b)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and verifies
// the checksum.  It returns the payload without the checksum.
func CheckDecode(input string) ([]byte, error) {
	decoded := base58.Decode(input)
	if len(decoded) < ChecksumLen+1 {
		return nil, keycore.MakeError(keycore.ErrInvalidFormat,
			"payload and/or checksum bytes missing")
	}
	var cksum [ChecksumLen]byte
	copy(cksum[:], decoded[len(decoded)-ChecksumLen:])
	if Checksum(decoded[:len(decoded)-ChecksumLen]) != cksum {
		return nil, keycore.MakeError(keycore.ErrChecksum,
			"checksum mismatch")
	}
	return decoded[:len(decoded)-ChecksumLen], nil
}

// versionBytes serializes version using the fewest big-endian bytes among 1,
// 2 and 4 that can hold it.
func versionBytes(version uint32) []byte {
	switch {
	case version < 1<<8:
		return []byte{byte(version)}
	case version < 1<<16:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(version))
		return b[:]
	default:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], version)
		return b[:]
	}
}

// EncodeAddress returns the Base58Check encoding of the version prefix
// followed by hash160.  A version below 256 is prepended as one byte, below
// 65536 as two big-endian bytes and as four big-endian bytes otherwise.
func EncodeAddress(hash160 *[HashLen]byte, version uint32) string {
	prefix := versionBytes(version)
	b := make([]byte, 0, len(prefix)+HashLen)
	b = append(b, prefix...)
	b = append(b, hash160[:]...)
	return CheckEncode(b)
}

// PutAddress writes the address encoding of hash160 and version into out
// and returns the number of bytes written.  ErrBufferTooSmall is returned,
// and out is left untouched, when the text does not fit.  No terminator is
// written, so out only needs room for the text itself.
func PutAddress(out []byte, hash160 *[HashLen]byte, version uint32) (int, error) {
	addr := EncodeAddress(hash160, version)
	if len(addr) > len(out) {
		str := fmt.Sprintf("address needs %d bytes, buffer has %d",
			len(addr), len(out))
		return 0, keycore.MakeError(keycore.ErrBufferTooSmall, str)
	}
	return copy(out, addr), nil
}

// DecodeAddress decodes an address produced by EncodeAddress, verifying its
// checksum.  The width of the version prefix is inferred from the decoded
// length.
func DecodeAddress(addr string) (hash160 [HashLen]byte, version uint32, err error) {
	payload, err := CheckDecode(addr)
	if err != nil {
		return hash160, 0, err
	}

	prefixLen := len(payload) - HashLen
	switch prefixLen {
	case 1:
		version = uint32(payload[0])
	case 2:
		version = uint32(binary.BigEndian.Uint16(payload[:2]))
	case 4:
		version = binary.BigEndian.Uint32(payload[:4])
	default:
		str := fmt.Sprintf("unexpected address payload length %d",
			len(payload))
		return hash160, 0, keycore.MakeError(keycore.ErrInvalidFormat, str)
	}
	copy(hash160[:], payload[prefixLen:])
	return hash160, version, nil
}
