// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - asset records and their persistent store
//
// a record is packed as a sequence of Varint64 prefixed fields and
// stored in the assets pool under its 8 byte big endian ID
package asset
