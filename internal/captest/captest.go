// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package captest provides fault injecting wrappers around the curve and hash
// capabilities for tests.
package captest

import (
	"errors"
	"hash"

	"github.com/btcsuite/keycore/curve"
	"github.com/btcsuite/keycore/hashes"
)

// ErrInjected is the error returned by an injected failure.
var ErrInjected = errors.New("injected capability failure")

// counter fails the call whose 1-based number equals failAt.  A zero failAt
// never fails.
type counter struct {
	failAt int
	calls  int
}

func (c *counter) fail() bool {
	c.calls++
	return c.failAt != 0 && c.calls == c.failAt
}

// Calls returns the number of calls seen so far.
func (c *counter) Calls() int {
	return c.calls
}

// Curve wraps a curve.Ops and fails the n-th call made through it.
type Curve struct {
	counter
	ops curve.Ops
}

// NewCurve returns a Curve failing call number failAt (1-based), or never
// when failAt is zero.
func NewCurve(ops curve.Ops, failAt int) *Curve {
	return &Curve{counter: counter{failAt: failAt}, ops: ops}
}

var _ curve.Ops = (*Curve)(nil)

func (c *Curve) ScalarBaseMult(k *[curve.ScalarLen]byte, out *[curve.PointLen]byte) error {
	if c.fail() {
		return ErrInjected
	}
	return c.ops.ScalarBaseMult(k, out)
}

func (c *Curve) PointAdd(a, b *[curve.PointLen]byte, out *[curve.PointLen]byte) (bool, error) {
	if c.fail() {
		return false, ErrInjected
	}
	return c.ops.PointAdd(a, b, out)
}

func (c *Curve) RecoverY(x *[curve.CoordLen]byte, odd bool, y *[curve.CoordLen]byte) (bool, error) {
	if c.fail() {
		return false, ErrInjected
	}
	return c.ops.RecoverY(x, odd, y)
}

// IsBelowOrder can not report an error, so it is never failed but still
// counted.
func (c *Curve) IsBelowOrder(k *[curve.ScalarLen]byte) bool {
	c.calls++
	return c.ops.IsBelowOrder(k)
}

func (c *Curve) AddModN(a, b *[curve.ScalarLen]byte, out *[curve.ScalarLen]byte) error {
	if c.fail() {
		return ErrInjected
	}
	return c.ops.AddModN(a, b, out)
}

func (c *Curve) NegateModN(k *[curve.ScalarLen]byte) error {
	if c.fail() {
		return ErrInjected
	}
	return c.ops.NegateModN(k)
}

// Hashes wraps a hashes.Provider and fails the n-th constructor call made
// through it.
type Hashes struct {
	counter
	provider hashes.Provider
}

// NewHashes returns a Hashes failing constructor call number failAt
// (1-based), or never when failAt is zero.
func NewHashes(p hashes.Provider, failAt int) *Hashes {
	return &Hashes{counter: counter{failAt: failAt}, provider: p}
}

var _ hashes.Provider = (*Hashes)(nil)

func (h *Hashes) NewSHA256() (hash.Hash, error) {
	if h.fail() {
		return nil, ErrInjected
	}
	return h.provider.NewSHA256()
}

func (h *Hashes) NewRIPEMD160() (hash.Hash, error) {
	if h.fail() {
		return nil, ErrInjected
	}
	return h.provider.NewRIPEMD160()
}

func (h *Hashes) NewHMACSHA512(key []byte) (hash.Hash, error) {
	if h.fail() {
		return nil, ErrInjected
	}
	return h.provider.NewHMACSHA512(key)
}

// FixedHMAC is a hashes.Provider whose HMAC-SHA512 computations always
// produce Output, which lets tests force out of range derivation scalars.
// SHA-256 and RIPEMD-160 are served by the embedded provider.
type FixedHMAC struct {
	hashes.Provider
	Output [hashes.HMACSHA512Size]byte
}

// NewHMACSHA512 returns a computation that ignores its input and key.
func (f *FixedHMAC) NewHMACSHA512([]byte) (hash.Hash, error) {
	return &fixedHash{out: f.Output[:]}, nil
}

type fixedHash struct {
	out []byte
}

func (f *fixedHash) Write(p []byte) (int, error) { return len(p), nil }
func (f *fixedHash) Sum(b []byte) []byte         { return append(b, f.out...) }
func (f *fixedHash) Reset()                      {}
func (f *fixedHash) Size() int                   { return len(f.out) }
func (f *fixedHash) BlockSize() int              { return 128 }
