// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/assetregistry/storage"
)

// common test setup routines

// configure for testing, returns the directory to remove
func setup(t *testing.T) string {
	directory, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(directory, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(directory)
		t.Fatalf("storage initialise error: %s", err)
	}
	return directory
}

// post test cleanup
func teardown(directory string) {
	storage.Finalise()
	os.RemoveAll(directory)
}
