// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io/ioutil"
	"sync"

	"github.com/bitmark-inc/assetregistry/counter"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/height"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/rpc/certificate"
	"github.com/bitmark-inc/assetregistry/rpc/listeners"
	"github.com/bitmark-inc/assetregistry/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"
)

// Services - what the RPC server exposes
type Services struct {
	Version  string
	Chain    string
	Testnet  bool
	Registry *registry.Registry
	Marker   height.Marker
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - load the certificate and start listening
//
// configuration.Certificate and configuration.PrivateKey are PEM file names
func Initialise(configuration *listeners.RPCConfiguration, services *Services) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	certificatePEM, err := ioutil.ReadFile(configuration.Certificate)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", tlsName, configuration.Certificate, err)
		return err
	}
	keyPEM, err := ioutil.ReadFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", tlsName, configuration.PrivateKey, err)
		return err
	}

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, string(certificatePEM), string(keyPEM))
	if nil != err {
		return err
	}

	s := server.Create(
		log,
		services.Version,
		services.Chain,
		services.Testnet,
		services.Registry,
		services.Marker,
		&connectionCountRPC,
	)

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		rpcListener.Close()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	err := globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return err
}
