// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package value - the canonical manifest value model
//
// A Value is one of a closed set of variants. Every variant knows its
// Kind and converts losslessly between three representations: the
// in-memory model, the packed wire form and the textual manifest
// literal tree. Containers declare the kind of their contents and
// reject heterogeneous elements at every conversion boundary.
package value

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/address"
)

// Value - the closed union of manifest values
//
// implementations are exactly the variant structs in this package;
// external packages cannot add variants
type Value interface {
	Kind() Kind
	isValue()
}

// Bool - a boolean value
type Bool struct {
	Value bool
}

// I8 - an 8-bit signed integer
type I8 struct {
	Value int8
}

// I16 - a 16-bit signed integer
type I16 struct {
	Value int16
}

// I32 - a 32-bit signed integer
type I32 struct {
	Value int32
}

// I64 - a 64-bit signed integer
type I64 struct {
	Value int64
}

// I128 - a 128-bit signed integer
type I128 struct {
	Value Int128
}

// U8 - an 8-bit unsigned integer
type U8 struct {
	Value uint8
}

// U16 - a 16-bit unsigned integer
type U16 struct {
	Value uint16
}

// U32 - a 32-bit unsigned integer
type U32 struct {
	Value uint32
}

// U64 - a 64-bit unsigned integer
type U64 struct {
	Value uint64
}

// U128 - a 128-bit unsigned integer
//
// the backing store is 256 bits wide; construction and unpacking
// enforce the 128-bit range
type U128 struct {
	Value uint256.Int
}

// String - a utf-8 string
type String struct {
	Value string
}

// Enum - a discriminated sum type value
type Enum struct {
	Variant uint8
	Fields  []Value
}

// Some - the present case of an optional value
type Some struct {
	Value Value
}

// None - the absent case of an optional value
type None struct{}

// Ok - the success case of a result value
type Ok struct {
	Value Value
}

// Err - the failure case of a result value
type Err struct {
	Value Value
}

// Array - a homogeneous sequence with a declared element kind
type Array struct {
	ElementKind Kind
	Elements    []Value
}

// MapEntry - a single key/value pair of a Map
type MapEntry struct {
	Key   Value
	Value Value
}

// Map - a homogeneous key/value mapping with declared kinds
type Map struct {
	KeyKind   Kind
	ValueKind Kind
	Entries   []MapEntry
}

// Tuple - a heterogeneous sequence
type Tuple struct {
	Elements []Value
}

// Decimal - a fixed precision decimal of 18 fractional digits
type Decimal struct {
	Value decimal.Decimal
}

// PreciseDecimal - a fixed precision decimal of 64 fractional digits
type PreciseDecimal struct {
	Value decimal.Decimal
}

// Address - a global component address
type Address struct {
	Value address.Address
}

// ResourceAddress - a resource manager address
type ResourceAddress struct {
	Value address.Address
}

// PackageAddress - a package address
type PackageAddress struct {
	Value address.Address
}

// Own - a reference to an owned node
type Own struct {
	Value address.Address
}

// Hash - a 32 byte content hash
type Hash struct {
	Value Digest
}

// Secp256k1PublicKey - a 33 byte compressed ECDSA public key
type Secp256k1PublicKey struct {
	Value PublicKeySecp256k1
}

// Secp256k1Signature - a 65 byte [v, r, s] ECDSA signature
type Secp256k1Signature struct {
	Value SignatureSecp256k1
}

// Ed25519PublicKey - a 32 byte EdDSA public key
type Ed25519PublicKey struct {
	Value PublicKeyEd25519
}

// Ed25519Signature - a 64 byte EdDSA signature
type Ed25519Signature struct {
	Value SignatureEd25519
}

// Bucket - a transient bucket handle
type Bucket struct {
	ID TransientID
}

// Proof - a transient proof handle
type Proof struct {
	ID TransientID
}

// NonFungibleLocalId - the id of one unit within a non-fungible resource
type NonFungibleLocalId struct {
	Value LocalID
}

// NonFungibleGlobalId - a resource address paired with a local id
type NonFungibleGlobalId struct {
	Resource address.Address
	LocalID  LocalID
}

// Expression - a manifest-only expression literal
type Expression struct {
	Value ExpressionKind
}

// Blob - a reference to a manifest blob by its hash
type Blob struct {
	Hash Digest
}

// Bytes - an opaque byte string
type Bytes struct {
	Value []byte
}

// Kind - pure function of the variant tag, never inspects payload

func (Bool) Kind() Kind                { return KindBool }
func (I8) Kind() Kind                  { return KindI8 }
func (I16) Kind() Kind                 { return KindI16 }
func (I32) Kind() Kind                 { return KindI32 }
func (I64) Kind() Kind                 { return KindI64 }
func (I128) Kind() Kind                { return KindI128 }
func (U8) Kind() Kind                  { return KindU8 }
func (U16) Kind() Kind                 { return KindU16 }
func (U32) Kind() Kind                 { return KindU32 }
func (U64) Kind() Kind                 { return KindU64 }
func (U128) Kind() Kind                { return KindU128 }
func (String) Kind() Kind              { return KindString }
func (Enum) Kind() Kind                { return KindEnum }
func (Some) Kind() Kind                { return KindSome }
func (None) Kind() Kind                { return KindNone }
func (Ok) Kind() Kind                  { return KindOk }
func (Err) Kind() Kind                 { return KindErr }
func (Array) Kind() Kind               { return KindArray }
func (Map) Kind() Kind                 { return KindMap }
func (Tuple) Kind() Kind               { return KindTuple }
func (Decimal) Kind() Kind             { return KindDecimal }
func (PreciseDecimal) Kind() Kind      { return KindPreciseDecimal }
func (Address) Kind() Kind             { return KindAddress }
func (ResourceAddress) Kind() Kind     { return KindResourceAddress }
func (PackageAddress) Kind() Kind      { return KindPackageAddress }
func (Own) Kind() Kind                 { return KindOwn }
func (Hash) Kind() Kind                { return KindHash }
func (Secp256k1PublicKey) Kind() Kind  { return KindSecp256k1PublicKey }
func (Secp256k1Signature) Kind() Kind  { return KindSecp256k1Signature }
func (Ed25519PublicKey) Kind() Kind    { return KindEd25519PublicKey }
func (Ed25519Signature) Kind() Kind    { return KindEd25519Signature }
func (Bucket) Kind() Kind              { return KindBucket }
func (Proof) Kind() Kind               { return KindProof }
func (NonFungibleLocalId) Kind() Kind  { return KindNonFungibleLocalId }
func (NonFungibleGlobalId) Kind() Kind { return KindNonFungibleGlobalId }
func (Expression) Kind() Kind          { return KindExpression }
func (Blob) Kind() Kind                { return KindBlob }
func (Bytes) Kind() Kind               { return KindBytes }

func (Bool) isValue()                {}
func (I8) isValue()                  {}
func (I16) isValue()                 {}
func (I32) isValue()                 {}
func (I64) isValue()                 {}
func (I128) isValue()                {}
func (U8) isValue()                  {}
func (U16) isValue()                 {}
func (U32) isValue()                 {}
func (U64) isValue()                 {}
func (U128) isValue()                {}
func (String) isValue()              {}
func (Enum) isValue()                {}
func (Some) isValue()                {}
func (None) isValue()                {}
func (Ok) isValue()                  {}
func (Err) isValue()                 {}
func (Array) isValue()               {}
func (Map) isValue()                 {}
func (Tuple) isValue()               {}
func (Decimal) isValue()             {}
func (PreciseDecimal) isValue()      {}
func (Address) isValue()             {}
func (ResourceAddress) isValue()     {}
func (PackageAddress) isValue()      {}
func (Own) isValue()                 {}
func (Hash) isValue()                {}
func (Secp256k1PublicKey) isValue()  {}
func (Secp256k1Signature) isValue()  {}
func (Ed25519PublicKey) isValue()    {}
func (Ed25519Signature) isValue()    {}
func (Bucket) isValue()              {}
func (Proof) isValue()               {}
func (NonFungibleLocalId) isValue()  {}
func (NonFungibleGlobalId) isValue() {}
func (Expression) isValue()          {}
func (Blob) isValue()                {}
func (Bytes) isValue()               {}
