// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keycore

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidIndex indicates a hardened child index was passed to public
	// child derivation, which can only derive normal children.
	ErrInvalidIndex = ErrorKind("ErrInvalidIndex")

	// ErrInvalidPointEncoding indicates a serialized public key has an
	// invalid length or prefix byte, or its x coordinate is not on the
	// curve.
	ErrInvalidPointEncoding = ErrorKind("ErrInvalidPointEncoding")

	// ErrScalarOutOfRange indicates a derived scalar is greater than or
	// equal to the group order, or a derivation produced a zero key or the
	// point at infinity.
	ErrScalarOutOfRange = ErrorKind("ErrScalarOutOfRange")

	// ErrBufferTooSmall indicates a destination buffer can not hold the
	// result of an operation.
	ErrBufferTooSmall = ErrorKind("ErrBufferTooSmall")

	// ErrEncodingOverflow indicates the text encoding of an extended public
	// key does not fit the destination buffer.
	ErrEncodingOverflow = ErrorKind("ErrEncodingOverflow")

	// ErrCapabilityFailure indicates the underlying curve or hash
	// capability reported an error.
	ErrCapabilityFailure = ErrorKind("ErrCapabilityFailure")

	// ErrInvalidPath indicates a BIP32 derivation path is malformed or
	// exceeds the maximum supported depth.
	ErrInvalidPath = ErrorKind("ErrInvalidPath")

	// ErrChecksum indicates the checksum of a Base58Check encoded string
	// does not match its payload.
	ErrChecksum = ErrorKind("ErrChecksum")

	// ErrInvalidFormat indicates a Base58Check encoded string is not valid
	// Base58 or has an unexpected length, or a decoded record has
	// inconsistent fields.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrSeedUnavailable indicates the master key source no longer holds
	// seed material, for example after it was wiped.
	ErrSeedUnavailable = ErrorKind("ErrSeedUnavailable")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error raised by the key derivation core.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string

	// Cause is the error reported by a capability, if any.
	Cause error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Description, e.Cause)
	}
	return e.Description
}

// Unwrap returns the underlying wrapped errors.
func (e Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// CapabilityError wraps an error returned by a curve or hash capability so
// it matches ErrCapabilityFailure while keeping the cause reachable.
func CapabilityError(op string, cause error) Error {
	return Error{
		Err:         ErrCapabilityFailure,
		Description: op + " failed",
		Cause:       cause,
	}
}
