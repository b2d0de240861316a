// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. asset id     = big endian uint64 (8 bytes)
// 4. principal    = account bytes: Varint64(key variant) ++ public key
// 5. count        = big endian uint64 (8 bytes)
// 6. *others*     = byte values of various length
//
// Assets:
//
//   A ++ asset id              - registered asset
//                                data: packed asset record
//
// Permissions:
//
//   P ++ asset id ++ principal - access flag
//                                data: 0x01 = authorized, 0x00 = not authorized
//
// Counters:
//
//   N ++ name                  - monotonic counter (e.g. "asset" = last allocated asset id)
//                                data: count
//
// Heights:
//
//   H ++ "height"              - current height marker
//                                data: count
//
// Testing:
//   Z ++ key                   - testing data
//
// Writes from the registry are staged in a transaction and reach the
// database in a single LevelDB batch, so either all of them land or
// none do.
package storage
