// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bip32

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/keycore"
	"github.com/btcsuite/keycore/curve"
	"github.com/btcsuite/keycore/hashes"
	"github.com/btcsuite/keycore/internal/captest"
	"github.com/btcsuite/keycore/internal/secret"
	"github.com/btcsuite/keycore/seed"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	gobip32 "github.com/tyler-smith/go-bip32"
	"pgregory.net/rapid"
)

const (
	vector1Seed = "000102030405060708090a0b0c0d0e0f"
	vector2Seed = "fffcf9f6f3f0edeae7e4e1dedbd8d5d2cfccc9c6c3c0bdbab7b4b1aeab" +
		"a8a5a29f9c999693908d8a8784817e7b7875726f6c696663605d5a5754514e4b484542"
	vector3Seed = "4b381541583be4423346c643850da4b320e46a87ae3d2a4e6da11eba819c" +
		"d4acba45d239319ac14f863b8d5ab5a0d0c64d2e8a1e7d1457df2e5a3c51c73235be"
)

var (
	mainNetVersion = binary.BigEndian.Uint32(chaincfg.MainNetParams.HDPublicKeyID[:])
	testNetVersion = binary.BigEndian.Uint32(chaincfg.TestNet3Params.HDPublicKeyID[:])
)

func newSeed(t *testing.T, seedHex string, h hashes.Provider) *seed.Seed {
	t.Helper()
	raw, err := hex.DecodeString(seedHex)
	require.NoError(t, err)
	s, err := seed.New(raw, curve.Secp256k1{}, h)
	require.NoError(t, err)
	return s
}

func newTestEngine(t *testing.T, seedHex string) *Engine {
	t.Helper()
	return NewEngine(newSeed(t, seedHex, hashes.Software{}),
		curve.Secp256k1{}, hashes.Software{})
}

// TestBIP32Vectors ensures the extended public keys derived along the paths
// of the published BIP32 test vectors match.
func TestBIP32Vectors(t *testing.T) {
	hkStart := uint32(HardenedKeyStart)
	tests := []struct {
		name    string
		seed    string
		path    Path
		version uint32
		want    string
	}{
		// Test vector 1
		{
			name:    "test vector 1 chain m",
			seed:    vector1Seed,
			path:    Path{},
			version: mainNetVersion,
			want:    "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8",
		},
		{
			name:    "test vector 1 chain m/0H",
			seed:    vector1Seed,
			path:    Path{hkStart},
			version: mainNetVersion,
			want:    "xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw",
		},
		{
			name:    "test vector 1 chain m/0H/1",
			seed:    vector1Seed,
			path:    Path{hkStart, 1},
			version: mainNetVersion,
			want:    "xpub6ASuArnXKPbfEwhqN6e3mwBcDTgzisQN1wXN9BJcM47sSikHjJf3UFHKkNAWbWMiGj7Wf5uMash7SyYq527Hqck2AxYysAA7xmALppuCkwQ",
		},
		{
			name:    "test vector 1 chain m/0H/1/2H",
			seed:    vector1Seed,
			path:    Path{hkStart, 1, hkStart + 2},
			version: mainNetVersion,
			want:    "xpub6D4BDPcP2GT577Vvch3R8wDkScZWzQzMMUm3PWbmWvVJrZwQY4VUNgqFJPMM3No2dFDFGTsxxpG5uJh7n7epu4trkrX7x7DogT5Uv6fcLW5",
		},
		{
			name:    "test vector 1 chain m/0H/1/2H/2",
			seed:    vector1Seed,
			path:    Path{hkStart, 1, hkStart + 2, 2},
			version: mainNetVersion,
			want:    "xpub6FHa3pjLCk84BayeJxFW2SP4XRrFd1JYnxeLeU8EqN3vDfZmbqBqaGJAyiLjTAwm6ZLRQUMv1ZACTj37sR62cfN7fe5JnJ7dh8zL4fiyLHV",
		},
		{
			name:    "test vector 1 chain m/0H/1/2H/2/1000000000",
			seed:    vector1Seed,
			path:    Path{hkStart, 1, hkStart + 2, 2, 1000000000},
			version: mainNetVersion,
			want:    "xpub6H1LXWLaKsWFhvm6RVpEL9P4KfRZSW7abD2ttkWP3SSQvnyA8FSVqNTEcYFgJS2UaFcxupHiYkro49S8yGasTvXEYBVPamhGW6cFJodrTHy",
		},
		// Test vector 2
		{
			name:    "test vector 2 chain m",
			seed:    vector2Seed,
			path:    Path{},
			version: mainNetVersion,
			want:    "xpub661MyMwAqRbcFW31YEwpkMuc5THy2PSt5bDMsktWQcFF8syAmRUapSCGu8ED9W6oDMSgv6Zz8idoc4a6mr8BDzTJY47LJhkJ8UB7WEGuduB",
		},
		{
			name:    "test vector 2 chain m/0",
			seed:    vector2Seed,
			path:    Path{0},
			version: mainNetVersion,
			want:    "xpub69H7F5d8KSRgmmdJg2KhpAK8SR3DjMwAdkxj3ZuxV27CprR9LgpeyGmXUbC6wb7ERfvrnKZjXoUmmDznezpbZb7ap6r1D3tgFxHmwMkQTPH",
		},
		{
			name:    "test vector 2 chain m/0/2147483647H",
			seed:    vector2Seed,
			path:    Path{0, hkStart + 2147483647},
			version: mainNetVersion,
			want:    "xpub6ASAVgeehLbnwdqV6UKMHVzgqAG8Gr6riv3Fxxpj8ksbH9ebxaEyBLZ85ySDhKiLDBrQSARLq1uNRts8RuJiHjaDMBU4Zn9h8LZNnBC5y4a",
		},
		{
			name:    "test vector 2 chain m/0/2147483647H/1",
			seed:    vector2Seed,
			path:    Path{0, hkStart + 2147483647, 1},
			version: mainNetVersion,
			want:    "xpub6DF8uhdarytz3FWdA8TvFSvvAh8dP3283MY7p2V4SeE2wyWmG5mg5EwVvmdMVCQcoNJxGoWaU9DCWh89LojfZ537wTfunKau47EL2dhHKon",
		},
		{
			name:    "test vector 2 chain m/0/2147483647H/1/2147483646H",
			seed:    vector2Seed,
			path:    Path{0, hkStart + 2147483647, 1, hkStart + 2147483646},
			version: mainNetVersion,
			want:    "xpub6ERApfZwUNrhLCkDtcHTcxd75RbzS1ed54G1LkBUHQVHQKqhMkhgbmJbZRkrgZw4koxb5JaHWkY4ALHY2grBGRjaDMzQLcgJvLJuZZvRcEL",
		},
		{
			name:    "test vector 2 chain m/0/2147483647H/1/2147483646H/2",
			seed:    vector2Seed,
			path:    Path{0, hkStart + 2147483647, 1, hkStart + 2147483646, 2},
			version: mainNetVersion,
			want:    "xpub6FnCn6nSzZAw5Tw7cgR9bi15UV96gLZhjDstkXXxvCLsUXBGXPdSnLFbdpq8p9HmGsApME5hQTZ3emM2rnY5agb9rXpVGyy3bdW6EEgAtqt",
		},
		// Test vector 3
		{
			name:    "test vector 3 chain m",
			seed:    vector3Seed,
			path:    Path{},
			version: mainNetVersion,
			want:    "xpub661MyMwAqRbcEZVB4dScxMAdx6d4nFc9nvyvH3v4gJL378CSRZiYmhRoP7mBy6gSPSCYk6SzXPTf3ND1cZAceL7SfJ1Z3GC8vBgp2epUt13",
		},
		{
			name:    "test vector 3 chain m/0H",
			seed:    vector3Seed,
			path:    Path{hkStart},
			version: mainNetVersion,
			want:    "xpub68NZiKmJWnxxS6aaHmn81bvJeTESw724CRDs6HbuccFQN9Ku14VQrADWgqbhhTHBaohPX4CjNLf9fq9MYo6oDaPPLPxSb7gwQN3ih19Zm4Y",
		},
		// Testnet version bytes
		{
			name:    "test vector 1 chain m testnet",
			seed:    vector1Seed,
			path:    Path{},
			version: testNetVersion,
			want:    "tpubD6NzVbkrYhZ4XgiXtGrdW5XDAPFCL9h7we1vwNCpn8tGbBcgfVYjXyhWo4E1xkh56hjod1RhGjxbaTLV3X4FyWuejifB9jusQ46QzG87VKp",
		},
	}

tests:
	for i, test := range tests {
		engine := newTestEngine(t, test.seed)

		var buf [MaxSerializedPubKeyLength]byte
		n, err := engine.SerializedExtendedPubKeyAtPath(test.path,
			test.version, buf[:])
		if err != nil {
			t.Errorf("SerializedExtendedPubKeyAtPath #%d (%s): "+
				"unexpected error: %v", i, test.name, err)
			continue
		}
		if got := string(buf[:n]); got != test.want {
			t.Errorf("SerializedExtendedPubKeyAtPath #%d (%s): "+
				"mismatched serialized extended key -- got: "+
				"%s, want: %s", i, test.name, got, test.want)
			continue
		}

		key, err := ParseExtendedPubKey(test.want, curve.Secp256k1{})
		if err != nil {
			t.Errorf("ParseExtendedPubKey #%d (%s): unexpected "+
				"error: %v", i, test.name, err)
			continue
		}
		derived, err := engine.ExtendedPubKeyAtPath(test.path,
			test.version)
		if err != nil {
			t.Errorf("ExtendedPubKeyAtPath #%d (%s): unexpected "+
				"error: %v", i, test.name, err)
			continue tests
		}
		if *derived != *key {
			t.Errorf("ExtendedPubKeyAtPath #%d (%s): mismatched "+
				"record -- got: %s want: %s", i, test.name,
				spew.Sdump(derived), spew.Sdump(key))
		}
	}
}

// TestDerivePrivateKeyOracle compares private derivation with the
// hdkeychain package.
func TestDerivePrivateKeyOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		seedBytes := make([]byte, 16+rng.Intn(49))
		rng.Read(seedBytes)
		path := make(Path, rng.Intn(MaxPathLen+1))
		for j := range path {
			path[j] = rng.Uint32()
		}

		s, err := seed.New(seedBytes, curve.Secp256k1{}, hashes.Software{})
		require.NoError(t, err)
		engine := NewEngine(s, curve.Secp256k1{}, hashes.Software{})

		var km KeyMaterial
		require.NoError(t, engine.DerivePrivateKey(path, &km))

		ext, err := hdkeychain.NewMaster(seedBytes, &chaincfg.MainNetParams)
		require.NoError(t, err)
		for _, index := range path {
			ext, err = ext.Derive(index)
			require.NoError(t, err)
		}
		priv, err := ext.ECPrivKey()
		require.NoError(t, err)

		require.Equal(t, priv.Serialize(), km.PrivKey[:], "path %v", path)
		require.Equal(t, ext.ChainCode(), km.ChainCode[:], "path %v", path)

		neutered, err := ext.Neuter()
		require.NoError(t, err)
		xpub, err := engine.ExtendedPubKeyStringAtPath(path, mainNetVersion)
		require.NoError(t, err)
		require.Equal(t, neutered.String(), xpub, "path %v", path)

		km.Zero()
		require.True(t, secret.IsZero(km.PrivKey[:]))
		require.True(t, secret.IsZero(km.ChainCode[:]))
	}
}

// TestCKDPubMatchesPrivate ensures public derivation from an extended public
// key yields the public projection of private derivation.
func TestCKDPubMatchesPrivate(t *testing.T) {
	engine := newTestEngine(t, vector1Seed)

	// m/0H/1/2H/2 followed by public derivation of 1000000000.
	base := Path{HardenedKeyStart, 1, HardenedKeyStart + 2, 2}
	parent, err := engine.ExtendedPubKeyAtPath(base, mainNetVersion)
	require.NoError(t, err)

	var child ExtendedPubKey
	require.NoError(t, engine.CKDPub(parent, 1000000000, &child))
	require.Equal(t, "xpub6H1LXWLaKsWFhvm6RVpEL9P4KfRZSW7abD2ttkWP3SSQvnyA8"+
		"FSVqNTEcYFgJS2UaFcxupHiYkro49S8yGasTvXEYBVPamhGW6cFJodrTHy",
		child.String())

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10; i++ {
		prefix := Path{HardenedKeyStart + rng.Uint32()%HardenedKeyStart}
		parent, err := engine.ExtendedPubKeyAtPath(prefix, mainNetVersion)
		require.NoError(t, err)

		path := append(Path{}, prefix...)
		key := *parent
		steps := 1 + rng.Intn(MaxPathLen-1)
		for j := 0; j < steps; j++ {
			index := rng.Uint32() % HardenedKeyStart
			require.NoError(t, engine.CKDPub(&key, index, &key))
			path = append(path, index)
		}

		want, err := engine.ExtendedPubKeyAtPath(path, mainNetVersion)
		require.NoError(t, err)
		if key != *want {
			t.Fatalf("CKDPub along %v: mismatched key -- got: %s "+
				"want: %s", path, spew.Sdump(key), spew.Sdump(want))
		}

		var pub [33]byte
		var chainCode [32]byte
		require.NoError(t, engine.CompressedPubKeyAtPath(path, &pub,
			&chainCode))
		require.Equal(t, want.PubKey, pub)
		require.Equal(t, want.ChainCode, chainCode)
	}
}

// TestCKDPubIndependent cross-checks public derivation against an
// independent BIP32 implementation for arbitrary seeds and index chains.
func TestCKDPubIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), seed.MinSeedBytes,
			seed.MaxSeedBytes).Draw(t, "seed")
		account := rapid.Uint32Range(0, HardenedKeyStart-1).Draw(t, "account")
		indices := rapid.SliceOfN(rapid.Uint32Range(0, HardenedKeyStart-1),
			1, MaxPathLen-1).Draw(t, "indices")

		s, err := seed.New(raw, curve.Secp256k1{}, hashes.Software{})
		require.NoError(t, err)
		engine := NewEngine(s, curve.Secp256k1{}, hashes.Software{})

		parent, err := engine.ExtendedPubKeyAtPath(
			Path{HardenedKeyStart + account}, mainNetVersion)
		require.NoError(t, err)

		other, err := gobip32.B58Deserialize(parent.String())
		require.NoError(t, err)

		key := *parent
		for _, index := range indices {
			require.NoError(t, engine.CKDPub(&key, index, &key))

			other, err = other.NewChildKey(index)
			require.NoError(t, err)
			require.Equal(t, other.String(), key.String())
		}
	})
}

// TestCKDPubHardened ensures hardened public derivation fails without
// touching the output.
func TestCKDPubHardened(t *testing.T) {
	engine := newTestEngine(t, vector1Seed)
	parent, err := engine.ExtendedPubKeyAtPath(Path{}, mainNetVersion)
	require.NoError(t, err)

	for _, index := range []uint32{HardenedKeyStart, HardenedKeyStart + 1, 0xffffffff} {
		child := ExtendedPubKey{Version: 7, Depth: 9, ParentFP: 11}
		child.PubKey[0] = 0x5a
		before := child

		err := engine.CKDPub(parent, index, &child)
		require.ErrorIs(t, err, keycore.ErrInvalidIndex)
		require.Equal(t, before, child)

		// Aliased parent and child must be left intact too.
		key := *parent
		err = engine.CKDPub(&key, index, &key)
		require.ErrorIs(t, err, keycore.ErrInvalidIndex)
		require.Equal(t, *parent, key)
	}

	maxDepth := *parent
	maxDepth.Depth = 255
	var child ExtendedPubKey
	err = engine.CKDPub(&maxDepth, 0, &child)
	require.ErrorIs(t, err, keycore.ErrInvalidPath)
	require.Equal(t, ExtendedPubKey{}, child)
}

// TestCKDPubInPlace ensures deriving into the parent gives the same child as
// deriving into separate storage.
func TestCKDPubInPlace(t *testing.T) {
	engine := newTestEngine(t, vector2Seed)
	parent, err := engine.ExtendedPubKeyAtPath(Path{}, mainNetVersion)
	require.NoError(t, err)

	var child ExtendedPubKey
	require.NoError(t, engine.CKDPub(parent, 0, &child))

	key := *parent
	require.NoError(t, engine.CKDPub(&key, 0, &key))
	require.Equal(t, child, key)
	require.Equal(t, "xpub69H7F5d8KSRgmmdJg2KhpAK8SR3DjMwAdkxj3ZuxV27CprR9Lgp"+
		"eyGmXUbC6wb7ERfvrnKZjXoUmmDznezpbZb7ap6r1D3tgFxHmwMkQTPH", key.String())
}

// TestFingerprints checks the master fingerprint of the first test vector and
// that children carry their parent's fingerprint.
func TestFingerprints(t *testing.T) {
	engine := newTestEngine(t, vector1Seed)

	fp, err := engine.MasterKeyFingerprint()
	require.NoError(t, err)
	require.Equal(t, uint32(0x3442193e), fp)

	var pub [33]byte
	require.NoError(t, engine.CompressedPubKeyAtPath(Path{}, &pub, nil))
	want := binary.BigEndian.Uint32(btcutil.Hash160(pub[:])[:4])
	got, err := engine.KeyFingerprint(&pub)
	require.NoError(t, err)
	require.Equal(t, want, got)

	child, err := engine.ExtendedPubKeyAtPath(Path{HardenedKeyStart}, mainNetVersion)
	require.NoError(t, err)
	require.Equal(t, fp, child.ParentFP)
	require.Equal(t, uint32(HardenedKeyStart), child.ChildNum)
	require.Equal(t, uint8(1), child.Depth)

	master, err := engine.ExtendedPubKeyAtPath(Path{}, mainNetVersion)
	require.NoError(t, err)
	require.Zero(t, master.ParentFP)
	require.Zero(t, master.ChildNum)
}

// TestWipeOnCurveFailure injects a failure into each curve call made while
// deriving and ensures the caller's key material is zeroed.
func TestWipeOnCurveFailure(t *testing.T) {
	path := Path{HardenedKeyStart, 1, 2}
	s := newSeed(t, vector1Seed, hashes.Software{})

	counting := captest.NewCurve(curve.Secp256k1{}, 0)
	var km KeyMaterial
	require.NoError(t, NewEngine(s, counting, hashes.Software{}).
		DerivePrivateKey(path, &km))
	km.Zero()
	calls := counting.Calls()

	failures := 0
	for failAt := 1; failAt <= calls; failAt++ {
		ops := captest.NewCurve(curve.Secp256k1{}, failAt)
		engine := NewEngine(s, ops, hashes.Software{})

		km := KeyMaterial{}
		for i := range km.PrivKey {
			km.PrivKey[i] = 0xaa
			km.ChainCode[i] = 0xbb
		}
		err := engine.DerivePrivateKey(path, &km)
		if err == nil {
			// IsBelowOrder can't fail.
			km.Zero()
			continue
		}
		failures++
		require.ErrorIs(t, err, keycore.ErrCapabilityFailure)
		require.ErrorIs(t, err, captest.ErrInjected)
		require.True(t, secret.IsZero(km.PrivKey[:]), "fail at %d", failAt)
		require.True(t, secret.IsZero(km.ChainCode[:]), "fail at %d", failAt)
	}
	require.NotZero(t, failures)
}

// TestWipeOnHashFailure injects a failure into each hash computation of a
// derivation, including the master key, and ensures key material is zeroed.
func TestWipeOnHashFailure(t *testing.T) {
	path := Path{HardenedKeyStart, 1, 2}
	for failAt := 1; failAt <= 3; failAt++ {
		engine := NewEngine(newSeed(t, vector1Seed, hashes.Software{}),
			curve.Secp256k1{}, captest.NewHashes(hashes.Software{}, failAt))

		km := KeyMaterial{PrivKey: [32]byte{1}, ChainCode: [32]byte{2}}
		err := engine.DerivePrivateKey(path, &km)
		require.ErrorIs(t, err, keycore.ErrCapabilityFailure)
		require.True(t, secret.IsZero(km.PrivKey[:]))
		require.True(t, secret.IsZero(km.ChainCode[:]))
	}

	// Master key failure.
	engine := NewEngine(newSeed(t, vector1Seed, captest.NewHashes(hashes.Software{}, 1)),
		curve.Secp256k1{}, hashes.Software{})
	km := KeyMaterial{PrivKey: [32]byte{1}, ChainCode: [32]byte{2}}
	err := engine.DerivePrivateKey(path, &km)
	require.ErrorIs(t, err, keycore.ErrCapabilityFailure)
	require.True(t, secret.IsZero(km.PrivKey[:]))
	require.True(t, secret.IsZero(km.ChainCode[:]))

	engine = NewEngine(newSeed(t, vector1Seed, captest.NewHashes(hashes.Software{}, 1)),
		curve.Secp256k1{}, hashes.Software{})
	var pub [33]byte
	err = engine.CompressedPubKeyAtPath(path, &pub, nil)
	require.ErrorIs(t, err, keycore.ErrCapabilityFailure)
	require.Equal(t, [33]byte{}, pub)
}

// TestInvalidChildScalar forces every HMAC output to be unusable and ensures
// derivation fails with ErrScalarOutOfRange and wiped outputs.
func TestInvalidChildScalar(t *testing.T) {
	fixed := &captest.FixedHMAC{Provider: hashes.Software{}}
	for i := range fixed.Output {
		fixed.Output[i] = 0xff
	}
	engine := newTestEngine(t, vector1Seed)
	engine.hashes = fixed

	km := KeyMaterial{PrivKey: [32]byte{1}, ChainCode: [32]byte{2}}
	err := engine.DerivePrivateKey(Path{0}, &km)
	require.ErrorIs(t, err, keycore.ErrScalarOutOfRange)
	require.True(t, secret.IsZero(km.PrivKey[:]))
	require.True(t, secret.IsZero(km.ChainCode[:]))

	// The master key itself is still derivable.
	require.NoError(t, engine.DerivePrivateKey(Path{}, &km))
	km.Zero()

	parent, err := newTestEngine(t, vector1Seed).ExtendedPubKeyAtPath(Path{},
		mainNetVersion)
	require.NoError(t, err)
	child := ExtendedPubKey{Depth: 42}
	err = engine.CKDPub(parent, 0, &child)
	require.ErrorIs(t, err, keycore.ErrScalarOutOfRange)
	require.Equal(t, ExtendedPubKey{Depth: 42}, child)

	// A zero tweak is refused by both derivations.
	fixed.Output = [64]byte{}
	err = engine.CKDPub(parent, 0, &child)
	require.ErrorIs(t, err, keycore.ErrScalarOutOfRange)
	require.Equal(t, ExtendedPubKey{Depth: 42}, child)

	km = KeyMaterial{PrivKey: [32]byte{1}, ChainCode: [32]byte{2}}
	err = engine.DerivePrivateKey(Path{HardenedKeyStart}, &km)
	require.ErrorIs(t, err, keycore.ErrScalarOutOfRange)
	require.True(t, secret.IsZero(km.PrivKey[:]))
}

// TestWipedSeed ensures an engine whose seed was wiped reports it rather
// than deriving from empty material.
func TestWipedSeed(t *testing.T) {
	s := newSeed(t, vector1Seed, hashes.Software{})
	engine := NewEngine(s, curve.Secp256k1{}, hashes.Software{})
	s.Zero()

	km := KeyMaterial{PrivKey: [32]byte{1}}
	err := engine.DerivePrivateKey(Path{0}, &km)
	require.ErrorIs(t, err, keycore.ErrSeedUnavailable)
	require.True(t, secret.IsZero(km.PrivKey[:]))

	_, err = engine.MasterKeyFingerprint()
	require.ErrorIs(t, err, keycore.ErrSeedUnavailable)
}

// TestSerializedOverflow ensures a short output buffer is reported and left
// untouched.
func TestSerializedOverflow(t *testing.T) {
	engine := newTestEngine(t, vector1Seed)

	buf := bytes.Repeat([]byte{'z'}, 110)
	_, err := engine.SerializedExtendedPubKeyAtPath(Path{}, mainNetVersion,
		buf)
	require.ErrorIs(t, err, keycore.ErrEncodingOverflow)
	require.Equal(t, bytes.Repeat([]byte{'z'}, 110), buf)

	buf = make([]byte, 111)
	n, err := engine.SerializedExtendedPubKeyAtPath(Path{}, mainNetVersion,
		buf)
	require.NoError(t, err)
	require.Equal(t, 111, n)
}

// TestPathTooLong ensures paths longer than MaxPathLen are rejected.
func TestPathTooLong(t *testing.T) {
	engine := newTestEngine(t, vector1Seed)

	km := KeyMaterial{PrivKey: [32]byte{1}}
	err := engine.DerivePrivateKey(make(Path, MaxPathLen+1), &km)
	require.ErrorIs(t, err, keycore.ErrInvalidPath)
	require.True(t, secret.IsZero(km.PrivKey[:]))

	require.NoError(t, engine.DerivePrivateKey(make(Path, MaxPathLen), &km))
	km.Zero()
}
