// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request

import (
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/fault"
)

// DefaultWindow - allowed distance between request and server clocks
const DefaultWindow = 5 * time.Minute

// Verifier - checks signed requests and rejects replays
type Verifier struct {
	testnet bool
	window  time.Duration
	seen    *cache.Cache
	now     func() time.Time
}

// NewVerifier - verifier for accounts on the given network
//
// a signature is remembered for twice the window, long enough to
// outlive any timestamp it could have been accepted with
func NewVerifier(testnet bool, window time.Duration) *Verifier {
	return &Verifier{
		testnet: testnet,
		window:  window,
		seen:    cache.New(2*window, window),
		now:     time.Now,
	}
}

// Verify - check network, timestamp, signature and freshness in that order
func (v *Verifier) Verify(caller *account.Account, timestamp int64, message []byte, signature account.Signature) error {
	if nil == caller {
		return fault.MissingParameters
	}
	if caller.IsTesting() != v.testnet {
		return fault.WrongNetworkForPublicKey
	}

	delta := v.now().Sub(time.Unix(timestamp, 0))
	if delta > v.window || delta < -v.window {
		return fault.RequestExpired
	}

	err := caller.CheckSignature(message, signature)
	if nil != err {
		return err
	}

	err = v.seen.Add(hex.EncodeToString(signature), struct{}{}, cache.DefaultExpiration)
	if nil != err {
		return fault.ReplayedRequest
	}
	return nil
}
