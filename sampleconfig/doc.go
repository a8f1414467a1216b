// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package sampleconfig provides a single constant that contains the contents of
the sample configuration file for keycorectl.  keycorectl writes it out the
first time it runs without a configuration file so users have a commented
list of every option to start from.
*/
package sampleconfig
