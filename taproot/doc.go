// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package taproot implements the BIP340 tagged hash and the BIP341 key tweaks
used to turn an internal key into a taproot output key.

Public keys are handled in their 32-byte x-only form.  An x-only key always
denotes the point with an even y coordinate, so TweakSecKey negates a secret
key whose public key has an odd y coordinate before adding the tweak.  The
output key of TweakPubKey and the public key of the TweakSecKey result are
the same point.

Only key path spending is supported: the tweak commits to the internal key
and an empty script tree.
*/
package taproot
