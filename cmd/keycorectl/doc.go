// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
keycorectl derives keys from a master seed and prints their public forms.

Usage:

	keycorectl [OPTIONS] <command> [<args>...]

Application Options:

	-C, --configfile=    Path to configuration file
	-V, --version        Display version information and exit
	    --testnet        Use the test network
	    --regtest        Use the regression test network
	    --simnet         Use the simulation test network
	    --signet         Use the signet test network
	    --seed=          Hex encoded master seed (16 to 64 bytes)
	    --mnemonic=      BIP39 mnemonic to derive the master seed from
	    --passphrase=    Optional BIP39 passphrase used with --mnemonic
	-d, --debuglevel=    Logging level for all subsystems (default: info)
	    --logdir=        Directory to log output
	    --nofilelogging  Disable file logging

Commands:

	address <path>               Show the pay-to-pubkey-hash address of the key at path
	ckdpub <xpub> <index>        Derive a non-hardened child of an extended public key
	fingerprint                  Show the master key fingerprint
	pubkey <path>                Show the compressed public key and chain code at path
	symkey <label> [<label>...]  Show the SLIP-0021 symmetric key at the label path
	taptweak <path>              Show the BIP0341 output key and address for the key at path
	xpub <path>                  Show the extended public key at path

Paths use the m/44'/0'/0'/0/5 notation, where h or H may be used in place of
the apostrophe.  Private keys are never printed.
*/
package main
