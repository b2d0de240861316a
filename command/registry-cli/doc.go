// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// registry-cli - command line client for registryd
//
// requests that change assets are signed with the private key given by
// --key or the REGISTRY_KEY environment variable
package main
