// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !unix

package secret

// lock is a no-op on platforms without mlock.
func lock([]byte) {}

func unlock([]byte) {}
