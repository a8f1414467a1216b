// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/keycore/curve"
	"github.com/btcsuite/keycore/hashes"
	"github.com/btcsuite/keycore/internal/log"
	"github.com/btcsuite/keycore/internal/secret"
	"github.com/btcsuite/keycore/sampleconfig"
	"github.com/btcsuite/keycore/seed"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "keycorectl.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "keycorectl.log"
	defaultLogLevel       = "info"
)

var (
	keycoreHomeDir    = btcutil.AppDataDir("keycorectl", false)
	defaultConfigFile = filepath.Join(keycoreHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(keycoreHomeDir, defaultLogDirname)
)

// config defines the configuration options for keycorectl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile     string `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`
	TestNet3       bool   `long:"testnet" description:"Use the test network"`
	RegressionTest bool   `long:"regtest" description:"Use the regression test network"`
	SimNet         bool   `long:"simnet" description:"Use the simulation test network"`
	SigNet         bool   `long:"signet" description:"Use the signet test network"`
	Seed           string `long:"seed" description:"Hex encoded master seed (16 to 64 bytes)"`
	Mnemonic       string `long:"mnemonic" description:"BIP39 mnemonic to derive the master seed from"`
	Passphrase     string `long:"passphrase" description:"Optional BIP39 passphrase used with --mnemonic"`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir         string `long:"logdir" description:"Directory to log output"`
	NoFileLogging  bool   `long:"nofilelogging" description:"Disable file logging"`

	params *chaincfg.Params
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(keycoreHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// createDefaultConfigFile creates a config file at the given path using the
// sample config.  The file is only readable by its owner since it may hold a
// seed.
func createDefaultConfigFile(destinationPath string) error {
	// Create the destination directory if it does not exist.
	err := os.MkdirAll(filepath.Dir(destinationPath), 0700)
	if err != nil {
		return err
	}

	return os.WriteFile(destinationPath, []byte(sampleconfig.FileContents),
		0600)
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in keycorectl functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	// Special show command to list supported subsystems and exit.
	if preCfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", log.SupportedSubsystems())
		os.Exit(0)
	}

	// Create the default config file from the sample if it doesn't exist.
	if preCfg.ConfigFile == defaultConfigFile && !fileExists(defaultConfigFile) {
		err := createDefaultConfigFile(defaultConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a default config "+
				"file: %v\n", err)
		}
	}

	// Load additional config from file.
	parser := flags.NewParser(&cfg, flags.Default)
	if fileExists(preCfg.ConfigFile) {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n",
				err)
			return nil, nil, err
		}
	} else if preCfg.ConfigFile != defaultConfigFile {
		err := fmt.Errorf("config file %s does not exist",
			preCfg.ConfigFile)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	numNets := 0
	cfg.params = &chaincfg.MainNetParams
	if cfg.TestNet3 {
		numNets++
		cfg.params = &chaincfg.TestNet3Params
	}
	if cfg.RegressionTest {
		numNets++
		cfg.params = &chaincfg.RegressionNetParams
	}
	if cfg.SimNet {
		numNets++
		cfg.params = &chaincfg.SimNetParams
	}
	if cfg.SigNet {
		numNets++
		cfg.params = &chaincfg.SigNetParams
	}
	if numNets > 1 {
		str := "%s: the testnet, regtest, simnet, and signet params " +
			"can't be used together -- choose one of the four"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Exactly one seed source is required.
	if (cfg.Seed == "") == (cfg.Mnemonic == "") {
		str := "%s: exactly one of --seed and --mnemonic must be given"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}
	if cfg.Passphrase != "" && cfg.Mnemonic == "" {
		str := "%s: --passphrase requires --mnemonic"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Namespace the log directory per network.
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir),
		cfg.params.Name)

	// Parse, validate, and set debug log level(s).
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err.Error())
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// errNoSeed is returned when a seed is requested from a config that carries
// none.
var errNoSeed = errors.New("no seed configured")

// loadSeed returns the master seed described by the configuration.  The
// caller must call Zero on the result once done.
func (cfg *config) loadSeed(ops curve.Ops, h hashes.Provider) (*seed.Seed, error) {
	switch {
	case cfg.Mnemonic != "":
		return seed.FromMnemonic(cfg.Mnemonic, cfg.Passphrase, ops, h)

	case cfg.Seed != "":
		raw, err := hex.DecodeString(cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("invalid hex seed: %w", err)
		}
		defer secret.Zero(raw)
		return seed.New(raw, ops, h)
	}
	return nil, errNoSeed
}
