// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build unix

package secret

import "golang.org/x/sys/unix"

// lock attempts to keep b out of swap.  Failure is not fatal since the
// buffer is wiped regardless, so errors (e.g. RLIMIT_MEMLOCK) are ignored.
func lock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Mlock(b)
}

func unlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}
