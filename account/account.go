// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = iota + 1
	// end of list (one greater than last item)
	algorithmLimit
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - the principal that owns assets
//
// only ed25519 keys are supported
type Account struct {
	Test      bool
	PublicKey []byte
}

// New - create an account from a raw public key
func New(publicKey []byte, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}
	return &Account{
		Test:      test,
		PublicKey: append([]byte{}, publicKey...),
	}, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || len(accountDecoded) <= checksumLength {
		return nil, fault.CannotDecodeAccount
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return FromBytes(accountDecoded[:checksumStart])
}

// FromBytes - convert a byte encoded buffer to an account
//
// the buffer is: Varint64(key variant) ++ public key
func FromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm < ED25519 || keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	return New(accountBytes[keyVariantLength:], isTest)
}

// KeyType - key type code (see enumeration above)
func (account *Account) KeyType() int {
	return ED25519
}

// IsTesting - whether the public key is for a test network
func (account *Account) IsTesting() bool {
	return account.Test
}

// CheckSignature - verify the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) || ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// Equal - two accounts are the same principal
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// String - base58 encoding of encoded key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
