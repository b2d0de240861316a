// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// registry errors
var (
	AdministrativeRightsRequired = PermissionError("administrative rights required")
	AssetNotFound                = NotFoundError("asset not found")
	AssetSizeConstraintViolation = InvalidError("asset size constraint violation")
	ContentAccessDenied          = PermissionError("content access denied")
	DuplicateAssetRegistration   = ExistsError("duplicate asset registration")
	InsufficientAuthorization    = PermissionError("insufficient authorization")
	MalformedAssetData           = LengthError("malformed asset data")
	MetadataValidationFailure    = InvalidError("metadata validation failure")
	OwnershipVerificationFailed  = PermissionError("ownership verification failed")
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised              = ExistsError("already initialised")
	CannotDecodeAccount             = RecordError("cannot decode account")
	CannotDecodePrivateKey          = RecordError("cannot decode private key")
	CertificateFileAlreadyExists    = ExistsError("certificate file already exists")
	ChecksumMismatch                = ProcessError("checksum mismatch")
	DatabaseIsNotSet                = ProcessError("database is not set")
	InvalidChain                    = InvalidError("invalid chain")
	InvalidCount                    = InvalidError("invalid count")
	InvalidInterval                 = InvalidError("invalid interval")
	InvalidIPAddress                = InvalidError("invalid IP address")
	InvalidKeyLength                = InvalidError("invalid key length")
	InvalidKeyType                  = InvalidError("invalid key type")
	InvalidPrivateKey               = InvalidError("invalid private key")
	InvalidSignature                = InvalidError("invalid signature")
	InvalidStructPointer            = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists            = ExistsError("key file already exists")
	MissingParameters               = InvalidError("missing parameters")
	NotAssetRecord                  = RecordError("not asset record")
	NotInitialised                  = NotFoundError("not initialised")
	NotPrivateKey                   = InvalidError("not private key")
	NotPublicKey                    = InvalidError("not public key")
	RateLimiting                    = InvalidError("rate limiting")
	ReplayedRequest                 = ExistsError("replayed request")
	RequestExpired                  = InvalidError("request expired")
	TransactionAlreadyInUse         = ProcessError("transaction already in use")
	TransactionNotInUse             = ProcessError("transaction not in use")
	UnknownRecordTag                = RecordError("unknown record tag")
	WrongNetworkForPublicKey        = InvalidError("wrong network for public key")
	WrongPublicKeyForThisPrivateKey = InvalidError("wrong public key for this private key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
