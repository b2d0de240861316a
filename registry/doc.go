// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - register, modify and transfer digital assets
//
// all mutating operations run one at a time; each validates its
// input, checks existence and ownership, then stages every write in a
// single storage transaction which is committed or aborted as a whole
package registry
