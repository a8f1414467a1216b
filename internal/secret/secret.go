// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package secret provides scoped buffers for secret material which are
// guaranteed to be wiped on every exit path of the operation that acquired
// them.
//
// The intended pattern is:
//
//	var scope secret.Scope
//	defer scope.Wipe()
//	node := scope.Bytes(64)
//
// Buffers owned by the caller that must only be wiped when the operation
// fails are handled with ZeroOnError:
//
//	func derive(out *[32]byte) (err error) {
//		defer secret.ZeroOnError(&err, out[:])
//		...
//	}
package secret

// Zero sets every byte of b to zero.
func Zero(b []byte) {
	clear(b)
}

// Zero32 sets every byte of the passed array to zero.
func Zero32(b *[32]byte) {
	clear(b[:])
}

// ZeroOnError zeroes the passed buffers when *err is non-nil.  It is meant to
// be deferred by functions that populate caller owned secret buffers.
func ZeroOnError(err *error, bufs ...[]byte) {
	if *err == nil {
		return
	}
	for _, b := range bufs {
		clear(b)
	}
}

// IsZero returns whether every byte of b is zero.  It does not exit early so
// the running time only depends on the length of b.
func IsZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

// Scope tracks the secret buffers acquired by a single operation.  The zero
// value is ready to use.  A Scope must not be copied after first use.
type Scope struct {
	bufs [][]byte
}

// Bytes returns a new zeroed buffer of length n owned by the scope.  The
// buffer is locked into memory where the platform allows it.
func (s *Scope) Bytes(n int) []byte {
	b := make([]byte, n)
	lock(b)
	s.bufs = append(s.bufs, b)
	return b
}

// Key32 returns a new zeroed 32-byte array owned by the scope.
func (s *Scope) Key32() *[32]byte {
	return (*[32]byte)(s.Bytes(32))
}

// Node64 returns a new zeroed 64-byte array owned by the scope, sized for an
// HMAC-SHA512 output.
func (s *Scope) Node64() *[64]byte {
	return (*[64]byte)(s.Bytes(64))
}

// Track adds a buffer allocated elsewhere to the scope so it is wiped along
// with the buffers acquired through the scope.  It returns b.
func (s *Scope) Track(b []byte) []byte {
	s.bufs = append(s.bufs, b)
	return b
}

// Wipe zeroes and releases every buffer tracked by the scope.  It is safe to
// call Wipe multiple times.
func (s *Scope) Wipe() {
	for i, b := range s.bufs {
		clear(b)
		unlock(b)
		s.bufs[i] = nil
	}
	s.bufs = s.bufs[:0]
}
