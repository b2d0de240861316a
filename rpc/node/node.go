// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC service describing the running daemon
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/assetregistry/counter"
	"github.com/bitmark-inc/assetregistry/height"
	"github.com/bitmark-inc/assetregistry/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// AssetCounter - source of the number of registered assets
type AssetCounter interface {
	Count() uint64
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	Marker  height.Marker
	Assets  AssetCounter
	counter *counter.Counter
}

// New - create the service
func New(log *logger.L, start time.Time, version string, chain string, marker height.Marker, assets AssetCounter, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		Marker:  marker,
		Assets:  assets,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string `json:"chain"`
	Height  uint64 `json:"height"`
	Assets  uint64 `json:"assets"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Height = node.Marker.Height()
	reply.Assets = node.Assets.Count()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
