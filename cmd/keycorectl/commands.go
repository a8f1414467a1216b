// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/keycore/base58check"
	"github.com/btcsuite/keycore/bip32"
	"github.com/btcsuite/keycore/curve"
	"github.com/btcsuite/keycore/hashes"
	"github.com/btcsuite/keycore/hashstream"
	"github.com/btcsuite/keycore/internal/log"
	"github.com/btcsuite/keycore/pubkey"
	"github.com/btcsuite/keycore/seed"
	"github.com/btcsuite/keycore/slip21"
	"github.com/btcsuite/keycore/taproot"
)

// errUsage is returned when a command is invoked with the wrong arguments.
var errUsage = errors.New("invalid usage")

// session bundles the derivation engines built from one master seed.
type session struct {
	params  *chaincfg.Params
	curve   curve.Ops
	hashes  hashes.Provider
	engine  *bip32.Engine
	sym     *slip21.Deriver
	tweaker *taproot.Tweaker
}

func newSession(s *seed.Seed, params *chaincfg.Params, ops curve.Ops,
	h hashes.Provider) *session {

	return &session{
		params:  params,
		curve:   ops,
		hashes:  h,
		engine:  bip32.NewEngine(s, ops, h),
		sym:     slip21.New(s, h),
		tweaker: taproot.New(ops, h),
	}
}

// hdVersion returns the extended public key version of the active network.
func (s *session) hdVersion() uint32 {
	return binary.BigEndian.Uint32(s.params.HDPublicKeyID[:])
}

// command describes a keycorectl command.
type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int
	run     func(s *session, w io.Writer, args []string) error
}

var commands = map[string]command{
	"fingerprint": {
		usage: "fingerprint",
		help:  "Show the master key fingerprint",
		run:   (*session).fingerprint,
	},
	"pubkey": {
		usage:   "pubkey <path>",
		help:    "Show the compressed public key and chain code at path",
		minArgs: 1,
		maxArgs: 1,
		run:     (*session).pubKey,
	},
	"xpub": {
		usage:   "xpub <path>",
		help:    "Show the extended public key at path",
		minArgs: 1,
		maxArgs: 1,
		run:     (*session).xpub,
	},
	"address": {
		usage:   "address <path>",
		help:    "Show the pay-to-pubkey-hash address of the key at path",
		minArgs: 1,
		maxArgs: 1,
		run:     (*session).address,
	},
	"ckdpub": {
		usage:   "ckdpub <xpub> <index>",
		help:    "Derive a non-hardened child of an extended public key",
		minArgs: 2,
		maxArgs: 2,
		run:     (*session).ckdPub,
	},
	"symkey": {
		usage:   "symkey <label> [<label>...]",
		help:    "Show the SLIP-0021 symmetric key at the label path",
		minArgs: 1,
		maxArgs: -1,
		run:     (*session).symKey,
	},
	"taptweak": {
		usage:   "taptweak <path>",
		help:    "Show the BIP0341 output key and address for the key at path",
		minArgs: 1,
		maxArgs: 1,
		run:     (*session).tapTweak,
	},
}

// writeUsage lists the available commands.
func writeUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-28s %s\n", commands[name].usage,
			commands[name].help)
	}
}

// run executes the command named by args[0].
func (s *session) run(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	args = args[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("%w: %s", errUsage, cmd.usage)
	}

	log.KctlLog.Debugf("Running %s on %s", cmd.usage, s.params.Name)
	return cmd.run(s, w, args)
}

func (s *session) fingerprint(w io.Writer, _ []string) error {
	fp, err := s.engine.MasterKeyFingerprint()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%08x\n", fp)
	return nil
}

func (s *session) pubKey(w io.Writer, args []string) error {
	path, err := bip32.ParsePath(args[0])
	if err != nil {
		return err
	}
	var pub [pubkey.CompressedLen]byte
	var chainCode [bip32.ChainCodeLen]byte
	if err := s.engine.CompressedPubKeyAtPath(path, &pub, &chainCode); err != nil {
		return err
	}
	fmt.Fprintf(w, "pubkey:    %x\nchaincode: %x\n", pub[:], chainCode[:])
	return nil
}

func (s *session) xpub(w io.Writer, args []string) error {
	path, err := bip32.ParsePath(args[0])
	if err != nil {
		return err
	}
	var buf [bip32.MaxSerializedPubKeyLength]byte
	n, err := s.engine.SerializedExtendedPubKeyAtPath(path, s.hdVersion(),
		buf[:])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", buf[:n])
	return nil
}

func (s *session) address(w io.Writer, args []string) error {
	path, err := bip32.ParsePath(args[0])
	if err != nil {
		return err
	}
	var pub [pubkey.CompressedLen]byte
	if err := s.engine.CompressedPubKeyAtPath(path, &pub, nil); err != nil {
		return err
	}
	var h160 [hashes.RIPEMD160Size]byte
	if err := hashstream.Hash160(s.hashes, pub[:], &h160); err != nil {
		return err
	}
	fmt.Fprintln(w, base58check.EncodeAddress(&h160,
		uint32(s.params.PubKeyHashAddrID)))
	return nil
}

func (s *session) ckdPub(w io.Writer, args []string) error {
	parent, err := bip32.ParseExtendedPubKey(args[0], s.curve)
	if err != nil {
		return err
	}
	index, err := bip32.ParsePath(args[1])
	if err != nil {
		return err
	}
	if len(index) != 1 {
		return fmt.Errorf("%w: expected a single index, got %q",
			errUsage, args[1])
	}

	var child bip32.ExtendedPubKey
	if err := s.engine.CKDPub(parent, index[0], &child); err != nil {
		return err
	}
	fmt.Fprintln(w, child.String())
	return nil
}

func (s *session) symKey(w io.Writer, args []string) error {
	labels := make([][]byte, 0, len(args))
	for _, arg := range args {
		labels = append(labels, slip21.Label(arg))
	}

	var key [slip21.KeyLen]byte
	defer clear(key[:])
	if err := s.sym.DerivePath(labels, &key); err != nil {
		return err
	}
	fmt.Fprintln(w, hex.EncodeToString(key[:]))
	return nil
}

func (s *session) tapTweak(w io.Writer, args []string) error {
	path, err := bip32.ParsePath(args[0])
	if err != nil {
		return err
	}

	var pub [pubkey.CompressedLen]byte
	if err := s.engine.CompressedPubKeyAtPath(path, &pub, nil); err != nil {
		return err
	}
	internal := pubkey.XOnly(&pub)

	var output [taproot.XOnlyKeyLen]byte
	parity, err := s.tweaker.TweakPubKey(&internal, &output)
	if err != nil {
		return err
	}

	// Cross-check the output key against the tweaked private key.
	if err := s.checkTweakedSecKey(path, &output, parity); err != nil {
		return err
	}

	addr, err := btcutil.NewAddressTaproot(output[:], s.params)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "internal: %x\noutput:   %x\nparity:   %d\naddress:  %s\n",
		internal[:], output[:], parity, addr.EncodeAddress())
	return nil
}

// checkTweakedSecKey tweaks the private key at path and verifies that its
// public key is the expected output key.
func (s *session) checkTweakedSecKey(path bip32.Path,
	output *[taproot.XOnlyKeyLen]byte, parity byte) error {

	var km bip32.KeyMaterial
	defer km.Zero()
	if err := s.engine.DerivePrivateKey(path, &km); err != nil {
		return err
	}
	if err := s.tweaker.TweakSecKey(&km.PrivKey); err != nil {
		return err
	}

	var point [curve.PointLen]byte
	if err := s.curve.ScalarBaseMult(&km.PrivKey, &point); err != nil {
		return err
	}
	tweaked := pubkey.CompressPoint(&point)
	if [taproot.XOnlyKeyLen]byte(tweaked[1:]) != *output ||
		tweaked[0]&1 != parity {

		return errors.New("tweaked private key does not match the " +
			"output key")
	}
	log.KctlLog.Debugf("Tweaked private key matches output key %x",
		output[:])
	return nil
}
