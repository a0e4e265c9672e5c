// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrCannotDecodeAddress          = InvalidError("cannot decode address")
	ErrHeterogeneousContainer       = InvalidError("container element kind mismatch")
	ErrInstructionsNotParsed        = ProcessError("instructions are raw text and not parsed")
	ErrInvalidEntityType            = InvalidError("entity type discriminant is invalid")
	ErrInvalidExpressionString      = InvalidError("expression string is invalid")
	ErrInvalidLoggerChannel         = ProcessError("invalid logger channel")
	ErrInvalidNonFungibleLocalId    = InvalidError("non-fungible local id is invalid")
	ErrInvalidPublicKeyLength       = InvalidError("public key length is invalid")
	ErrInvalidSignatureLength       = InvalidError("signature length is invalid")
	ErrInvalidTextualLiteral        = InvalidError("textual literal is invalid")
	ErrNotInstructionPack           = RecordError("not an instruction pack")
	ErrNotReceiptPack               = RecordError("not a receipt pack")
	ErrNotValuePack                 = RecordError("not a value pack")
	ErrOddNumberOfMapElements       = InvalidError("map requires an even number of elements")
	ErrOutOfRangeDecimal            = InvalidError("decimal is out of range")
	ErrOutOfRangeInteger            = InvalidError("integer is out of range")
	ErrTransactionNotCommitted      = ProcessError("transaction was not committed successfully")
	ErrUnknownNetwork               = NotFoundError("network id is not registered")
	ErrVisitorChangedKind           = ProcessError("visitor changed the kind of a value")
	ErrWrongNetworkForAddress       = InvalidError("wrong network for address")
	ErrWrongNetworkForNonFungibleId = InvalidError("wrong network for non-fungible global id")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
