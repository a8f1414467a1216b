// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

// FileContents is a string containing the commented example config for
// keycorectl.
const FileContents = `[Application Options]

; ------------------------------------------------------------------------------
; Network settings
; ------------------------------------------------------------------------------

; The network selects the extended public key version bytes and the address
; prefixes.  Mainnet is used when none is given.  Only one may be selected.

; Use testnet.
; testnet=1

; Use the regression test network.
; regtest=1

; Use simnet.
; simnet=1

; Use signet.
; signet=1


; ------------------------------------------------------------------------------
; Seed settings
; ------------------------------------------------------------------------------

; Exactly one of seed and mnemonic must be given, either here or on the command
; line.  Keep this file readable only by its owner when a seed is stored here.

; Hex encoded master seed of 16 to 64 bytes.
; seed=000102030405060708090a0b0c0d0e0f

; BIP39 mnemonic the master seed is derived from, along with an optional
; passphrase.
; mnemonic=
; passphrase=


; ------------------------------------------------------------------------------
; Debug
; ------------------------------------------------------------------------------

; Debug logging level.
; Valid levels are {trace, debug, info, warn, error, critical}
; You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set
; log level for individual subsystems.  Use keycorectl --debuglevel=show to
; list available subsystems.
; debuglevel=info

; The directory to store log files.  The network name is appended to it.
; logdir=~/.keycorectl/logs

; Disable writing log files.
; nofilelogging=1
`
