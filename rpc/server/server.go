// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - assemble the RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/assetregistry/counter"
	"github.com/bitmark-inc/assetregistry/height"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/rpc/assets"
	"github.com/bitmark-inc/assetregistry/rpc/node"
	"github.com/bitmark-inc/assetregistry/rpc/request"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, chainName string, testnet bool, reg *registry.Registry, marker height.Marker, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	verifier := request.NewVerifier(testnet, request.DefaultWindow)

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, reg, verifier))
	_ = server.Register(node.New(log, start, version, chainName, marker, reg, rpcCount))

	return server
}
