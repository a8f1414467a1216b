// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/keycore/curve"
	"github.com/btcsuite/keycore/hashes"
	"github.com/btcsuite/keycore/internal/log"
	"github.com/btcsuite/keycore/internal/version"
)

// realMain is the real main function for keycorectl.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Printf("%s version %s\n", filepath.Base(os.Args[0]),
			version.String())
		return nil
	}

	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer log.LogRotator.Close()
	}
	kctlLog := log.KctlLog
	kctlLog.Infof("Version %s", version.String())

	ops, h := curve.Secp256k1{}, hashes.Software{}
	s, err := cfg.loadSeed(ops, h)
	if err != nil {
		kctlLog.Errorf("Unable to load seed: %v", err)
		return err
	}
	defer s.Zero()

	err = newSession(s, cfg.params, ops, h).run(os.Stdout, args)
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, err)
		writeUsage(os.Stderr)
		return err
	}
	if err != nil {
		kctlLog.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
