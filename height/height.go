// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package height - the monotonic marker recorded against new assets
package height

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// Marker - source of the current height
type Marker interface {
	Height() uint64
}

// Sequence - a persisted height advanced on a fixed interval
type Sequence struct {
	sync.Mutex
	log      *logger.L
	pool     storage.Handle
	interval time.Duration
	height   uint64
}

// database key
var heightKey = []byte("height")

// New - resume the sequence stored in pool
func New(pool storage.Handle, interval time.Duration) (*Sequence, error) {
	if interval <= 0 {
		return nil, fault.InvalidInterval
	}

	h, _ := pool.GetN(heightKey)

	s := &Sequence{
		log:      logger.New("height"),
		pool:     pool,
		interval: interval,
		height:   h,
	}
	s.log.Infof("resume at height: %d", h)
	return s, nil
}

// Height - current value
func (s *Sequence) Height() uint64 {
	return atomic.LoadUint64(&s.height)
}

// Advance - move to the next height and persist it
func (s *Sequence) Advance() uint64 {
	s.Lock()
	defer s.Unlock()

	h := s.height + 1
	s.pool.PutN(heightKey, h)
	atomic.StoreUint64(&s.height, h)
	return h
}

// Run - background ticker
func (s *Sequence) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log

	log.Info("starting…")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			h := s.Advance()
			log.Debugf("height: %d", h)
		}
	}

	log.Info("stopped")
}
