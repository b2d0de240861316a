// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/chain"
)

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "registryd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	name := filepath.Join(dir, "registryd.conf")
	err = ioutil.WriteFile(name, []byte(text), 0600)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, name
}

func TestConfigurationDefaults(t *testing.T) {
	dir, name := writeConfiguration(t, `
return {
    data_directory = ".",
    chain = "Local",
}
`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(name)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, chain.Local, options.Chain, "chain is lower cased")
	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "data", defaultLocalDatabase), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultCertificateFile), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, defaultKeyFile), options.ClientRPC.PrivateKey, "wrong key")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, defaultHeightInterval, options.Height.Interval, "wrong interval")
	assert.Equal(t, "", options.PidFile, "pid file should be unset")

	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		info, err := os.Stat(d)
		assert.Nil(t, err, "directory: %q not created", d)
		assert.True(t, info.IsDir(), "not a directory: %q", d)
	}
}

func TestConfigurationOverrides(t *testing.T) {
	dir, name := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.pidfile = "registryd.pid"
M.chain = "testing"
M.database = {
    directory = "store",
    name = "assets.leveldb",
}
M.height = {
    interval = 5,
}
M.client_rpc = {
    maximum_connections = 3,
    listen = { "127.0.0.1:2130" },
    certificate = "/etc/registry/rpc.crt",
    private_key = "rpc.key",
}
return M
`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(name)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, chain.Testing, options.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(dir, "registryd.pid"), options.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, "store", "assets.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, 5, options.Height.Interval, "wrong interval")
	assert.Equal(t, uint64(3), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, "/etc/registry/rpc.crt", options.ClientRPC.Certificate, "absolute path changed")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), options.ClientRPC.PrivateKey, "wrong key")
}

func TestConfigurationErrors(t *testing.T) {
	errorList := []struct {
		name string
		text string
	}{
		{"unknown chain", `return { data_directory = ".", chain = "nochain" }`},
		{"missing data directory", `return { chain = "local" }`},
		{"home data directory", `return { data_directory = "~", chain = "local" }`},
		{"non-existent data directory", `return { data_directory = "/does/not/exist", chain = "local" }`},
		{"database path", `return { data_directory = ".", chain = "local", database = { name = "sub/x.leveldb" } }`},
		{"zero interval", `return { data_directory = ".", chain = "local", height = { interval = 0 } }`},
		{"not a table", `return 42`},
		{"syntax", `return {`},
	}

	for _, e := range errorList {
		dir, name := writeConfiguration(t, e.text)
		_, err := getConfiguration(name)
		assert.NotNil(t, err, "%s: expected an error", e.name)
		os.RemoveAll(dir)
	}
}
