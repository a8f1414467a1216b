// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip32

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/keycore"
)

const (
	// HardenedKeyStart is the index at which a hardened key starts.  Each
	// extended key has 2^31 normal child keys and 2^31 hardened child keys.
	// Thus the range for normal child keys is [0, 2^31 - 1] and the range
	// for hardened child keys is [2^31, 2^32 - 1].
	HardenedKeyStart = 0x80000000 // 2^31

	// MaxPathLen is the maximum number of derivation steps accepted by the
	// engine.
	MaxPathLen = 10
)

// Path is a BIP32 derivation path, ordered from the master key to the leaf.
type Path []uint32

// IsHardened returns whether index denotes a hardened child.
func IsHardened(index uint32) bool {
	return index >= HardenedKeyStart
}

// Validate returns an error when the path is longer than MaxPathLen.
func (p Path) Validate() error {
	if len(p) > MaxPathLen {
		str := fmt.Sprintf("path has %d steps, at most %d are supported",
			len(p), MaxPathLen)
		return keycore.MakeError(keycore.ErrInvalidPath, str)
	}
	return nil
}

// String returns the path in the m/44'/0'/0'/0/5 notation.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, index := range p {
		b.WriteByte('/')
		if IsHardened(index) {
			b.WriteString(strconv.FormatUint(uint64(index-HardenedKeyStart), 10))
			b.WriteByte('\'')
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(index), 10))
	}
	return b.String()
}

// ParsePath parses a path such as m/44'/0'/0'/0/5.  The leading "m/" is
// optional and hardened steps may be marked with ', h or H.  An empty string
// or "m" is the empty path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "m" {
		return Path{}, nil
	}
	s = strings.TrimPrefix(s, "m/")

	parts := strings.Split(s, "/")
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		hardened := false
		if n := len(part); n > 0 {
			switch part[n-1] {
			case '\'', 'h', 'H':
				hardened = true
				part = part[:n-1]
			}
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil || index >= HardenedKeyStart {
			str := fmt.Sprintf("invalid path element %q", part)
			return nil, keycore.MakeError(keycore.ErrInvalidPath, str)
		}
		if hardened {
			index += HardenedKeyStart
		}
		path = append(path, uint32(index))
	}

	if err := path.Validate(); err != nil {
		return nil, err
	}
	return path, nil
}
