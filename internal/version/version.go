// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version reports the version of keycorectl.
package version

import (
	"fmt"
	"strings"
)

// semverAlphabet is the set of characters allowed in the pre-release and
// build metadata parts of a semantic version.
const semverAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease may be overridden at build time with
	// '-ldflags "-X github.com/btcsuite/keycore/internal/version.PreRelease=beta"'.
	PreRelease = "beta"

	// BuildMetadata may be overridden at build time the same way.
	BuildMetadata = ""
)

// String returns the version in semantic versioning 2.0.0 form.  Characters
// outside the allowed alphabet are dropped from the pre-release and build
// parts.
func String() string {
	v := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if pre := normalize(PreRelease); pre != "" {
		v += "-" + pre
	}
	if build := normalize(BuildMetadata); build != "" {
		v += "+" + build
	}
	return v
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(semverAlphabet, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
