// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/util"
)

// PrivateKey - ed25519 signing key of a principal
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key pair
func NewPrivateKey(test bool) (*PrivateKey, error) {
	return newPrivateKey(rand.Reader, test)
}

func newPrivateKey(random io.Reader, test bool) (*PrivateKey, error) {
	_, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}, nil
}

// PrivateKeyFromBase58 - decode the text form produced by String()
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || len(decoded) <= checksumLength {
		return nil, fault.CannotDecodePrivateKey
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	keyVariant, keyVariantLength := util.FromVarint64(decoded[:checksumStart])
	if 0 == keyVariantLength || keyVariant&publicKeyCode != 0 {
		return nil, fault.NotPrivateKey
	}
	if keyVariant>>algorithmShift != ED25519 {
		return nil, fault.InvalidKeyType
	}

	key := decoded[keyVariantLength:checksumStart]
	if ed25519.PrivateKeySize != len(key) {
		return nil, fault.InvalidKeyLength
	}

	privateKey := &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: ed25519.PrivateKey(append([]byte{}, key...)),
	}

	// the embedded public key must belong to the seed
	expected := ed25519.NewKeyFromSeed(privateKey.PrivateKey.Seed())
	if !bytes.Equal(expected, privateKey.PrivateKey) {
		return nil, fault.WrongPublicKeyForThisPrivateKey
	}
	return privateKey, nil
}

// Account - the public half as an account
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		Test:      privateKey.Test,
		PublicKey: privateKey.PrivateKey.Public().(ed25519.PublicKey),
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - byte slice for encoded key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - base58 encoding of encoded key with checksum
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}
