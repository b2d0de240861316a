// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed test keys
var (
	Owner    = testKey(0x11)
	Receiver = testKey(0x22)
	Other    = testKey(0x33)
	LiveKey  = liveKey(0x44)
)

// deterministic key from a repeated seed byte
func testKey(b byte) *account.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	return &account.PrivateKey{
		Test:       true,
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}
}

func liveKey(b byte) *account.PrivateKey {
	k := testKey(b)
	k.Test = false
	return k
}

// SetupTestLogger - start a logger writing to a local directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop the logger and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// SetupTestStorage - open a fresh database in a temporary directory
//
// returns the directory to pass to TeardownTestStorage
func SetupTestStorage() (string, error) {
	directory, err := ioutil.TempDir("", "registry-test")
	if nil != err {
		return "", err
	}
	err = storage.Initialise(filepath.Join(directory, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(directory)
		return "", err
	}
	return directory, nil
}

// TeardownTestStorage - close the database and remove its directory
func TeardownTestStorage(directory string) {
	storage.Finalise()
	os.RemoveAll(directory)
}

// Certificate - a fresh self-signed PEM certificate and key for localhost
func Certificate() (string, string, error) {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("registry test", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		return "", "", err
	}
	return string(cert), string(key), nil
}
