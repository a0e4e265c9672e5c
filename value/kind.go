// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"fmt"

	"github.com/meridian-inc/manifestkit/fault"
)

// Kind - discriminant for the closed Value union
//
// the numeric value doubles as the wire tag byte, except for the four
// model-only kinds (Some, None, Ok, Err) which all pack as Enum
type Kind uint8

// enumeration of all value kinds
//
// these are wire values and must never be renumbered
const (
	KindBool Kind = 0x01

	KindI8   Kind = 0x02
	KindI16  Kind = 0x03
	KindI32  Kind = 0x04
	KindI64  Kind = 0x05
	KindI128 Kind = 0x06

	KindU8   Kind = 0x07
	KindU16  Kind = 0x08
	KindU32  Kind = 0x09
	KindU64  Kind = 0x0a
	KindU128 Kind = 0x0b

	KindString Kind = 0x0c

	KindArray Kind = 0x20
	KindTuple Kind = 0x21
	KindEnum  Kind = 0x22
	KindMap   Kind = 0x23

	// model-only kinds: packed as Enum with a reserved discriminator
	KindSome Kind = 0x24
	KindNone Kind = 0x25
	KindOk   Kind = 0x26
	KindErr  Kind = 0x27

	KindAddress         Kind = 0x80
	KindResourceAddress Kind = 0x81
	KindPackageAddress  Kind = 0x82
	KindOwn             Kind = 0x85

	KindDecimal        Kind = 0x90
	KindPreciseDecimal Kind = 0x91

	KindHash               Kind = 0xa0
	KindSecp256k1PublicKey Kind = 0xa1
	KindSecp256k1Signature Kind = 0xa2
	KindEd25519PublicKey   Kind = 0xa3
	KindEd25519Signature   Kind = 0xa4

	KindBucket Kind = 0xb0
	KindProof  Kind = 0xb1

	KindNonFungibleLocalId  Kind = 0xc0
	KindNonFungibleGlobalId Kind = 0xc1

	KindExpression Kind = 0xd0
	KindBlob       Kind = 0xd1
	KindBytes      Kind = 0xd2
)

// reserved enum discriminators for the option and result families
//
// unpacking special-cases these before falling through to a generic
// user enum
const (
	DiscriminatorNone uint8 = 0
	DiscriminatorSome uint8 = 1
	DiscriminatorOk   uint8 = 2
	DiscriminatorErr  uint8 = 3
)

var kindNames = map[Kind]string{
	KindBool:                "Bool",
	KindI8:                  "I8",
	KindI16:                 "I16",
	KindI32:                 "I32",
	KindI64:                 "I64",
	KindI128:                "I128",
	KindU8:                  "U8",
	KindU16:                 "U16",
	KindU32:                 "U32",
	KindU64:                 "U64",
	KindU128:                "U128",
	KindString:              "String",
	KindArray:               "Array",
	KindTuple:               "Tuple",
	KindEnum:                "Enum",
	KindMap:                 "Map",
	KindSome:                "Some",
	KindNone:                "None",
	KindOk:                  "Ok",
	KindErr:                 "Err",
	KindAddress:             "Address",
	KindResourceAddress:     "ResourceAddress",
	KindPackageAddress:      "PackageAddress",
	KindOwn:                 "Own",
	KindDecimal:             "Decimal",
	KindPreciseDecimal:      "PreciseDecimal",
	KindHash:                "Hash",
	KindSecp256k1PublicKey:  "Secp256k1PublicKey",
	KindSecp256k1Signature:  "Secp256k1Signature",
	KindEd25519PublicKey:    "Ed25519PublicKey",
	KindEd25519Signature:    "Ed25519Signature",
	KindBucket:              "Bucket",
	KindProof:               "Proof",
	KindNonFungibleLocalId:  "NonFungibleLocalId",
	KindNonFungibleGlobalId: "NonFungibleGlobalId",
	KindExpression:          "Expression",
	KindBlob:                "Blob",
	KindBytes:               "Bytes",
}

// IsValid - true for a registered kind
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

// WireKind - the tag byte used on the wire
//
// this mapping is a deliberate surjection: the whole option and result
// family shares the Enum wire kind
func (k Kind) WireKind() Kind {
	switch k {
	case KindSome, KindNone, KindOk, KindErr:
		return KindEnum
	default:
		return k
	}
}

// String - the canonical kind name as used in textual manifests
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%#02x)", uint8(k))
	}
	return name
}

// MarshalText - satisfy the encoding.TextMarshaler interface
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fault.ErrNotValuePack
	}
	return []byte(name), nil
}

// UnmarshalText - satisfy the encoding.TextUnmarshaler interface
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := KindFromString(string(text))
	if nil != err {
		return err
	}
	*k = parsed
	return nil
}

// KindFromString - inverse of String
func KindFromString(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fault.ErrNotValuePack
}
