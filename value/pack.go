// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"encoding/binary"

	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/util"
)

// Packed - a packed value is just a byte slice
type Packed []byte

// Pack - convert a value to its wire form
//
// layout: one tag byte (the wire kind) followed by the payload;
// integers are little-endian fixed width, lengths are Varint64,
// addresses pack their raw bytes only (the network id is reattached
// from context on unpack)
func Pack(v Value) (Packed, error) {
	if err := CheckElements(v); nil != err {
		return nil, err
	}
	return appendValue(Packed{}, v)
}

func appendValue(buffer Packed, v Value) (Packed, error) {
	buffer = append(buffer, byte(v.Kind().WireKind()))

	switch t := v.(type) {

	case Bool:
		if t.Value {
			return append(buffer, 0x01), nil
		}
		return append(buffer, 0x00), nil

	case I8:
		return append(buffer, byte(t.Value)), nil
	case U8:
		return append(buffer, t.Value), nil

	case I16:
		return binary.LittleEndian.AppendUint16(buffer, uint16(t.Value)), nil
	case U16:
		return binary.LittleEndian.AppendUint16(buffer, t.Value), nil

	case I32:
		return binary.LittleEndian.AppendUint32(buffer, uint32(t.Value)), nil
	case U32:
		return binary.LittleEndian.AppendUint32(buffer, t.Value), nil

	case I64:
		return binary.LittleEndian.AppendUint64(buffer, uint64(t.Value)), nil
	case U64:
		return binary.LittleEndian.AppendUint64(buffer, t.Value), nil

	case I128:
		buffer = binary.LittleEndian.AppendUint64(buffer, t.Value.Lo)
		return binary.LittleEndian.AppendUint64(buffer, uint64(t.Value.Hi)), nil

	case U128:
		if _, err := uint128Checked(&t.Value); nil != err {
			return nil, err
		}
		buffer = binary.LittleEndian.AppendUint64(buffer, t.Value[0])
		return binary.LittleEndian.AppendUint64(buffer, t.Value[1]), nil

	case String:
		return appendString(buffer, t.Value), nil

	case Enum:
		return appendEnum(buffer, t.Variant, t.Fields)

	case Some:
		return appendEnum(buffer, DiscriminatorSome, []Value{t.Value})
	case None:
		return appendEnum(buffer, DiscriminatorNone, nil)
	case Ok:
		return appendEnum(buffer, DiscriminatorOk, []Value{t.Value})
	case Err:
		return appendEnum(buffer, DiscriminatorErr, []Value{t.Value})

	case Array:
		buffer = append(buffer, byte(t.ElementKind))
		buffer = append(buffer, util.ToVarint64(uint64(len(t.Elements)))...)
		var err error
		for _, element := range t.Elements {
			buffer, err = appendValue(buffer, element)
			if nil != err {
				return nil, err
			}
		}
		return buffer, nil

	case Map:
		buffer = append(buffer, byte(t.KeyKind), byte(t.ValueKind))
		buffer = append(buffer, util.ToVarint64(uint64(len(t.Entries)))...)
		var err error
		for _, entry := range t.Entries {
			buffer, err = appendValue(buffer, entry.Key)
			if nil != err {
				return nil, err
			}
			buffer, err = appendValue(buffer, entry.Value)
			if nil != err {
				return nil, err
			}
		}
		return buffer, nil

	case Tuple:
		buffer = append(buffer, util.ToVarint64(uint64(len(t.Elements)))...)
		var err error
		for _, element := range t.Elements {
			buffer, err = appendValue(buffer, element)
			if nil != err {
				return nil, err
			}
		}
		return buffer, nil

	case Decimal:
		return appendString(buffer, t.Value.String()), nil
	case PreciseDecimal:
		return appendString(buffer, t.Value.String()), nil

	case Address:
		return append(buffer, t.Value.Raw[:]...), nil
	case ResourceAddress:
		return append(buffer, t.Value.Raw[:]...), nil
	case PackageAddress:
		return append(buffer, t.Value.Raw[:]...), nil
	case Own:
		return append(buffer, t.Value.Raw[:]...), nil

	case Hash:
		return append(buffer, t.Value[:]...), nil
	case Secp256k1PublicKey:
		return append(buffer, t.Value[:]...), nil
	case Secp256k1Signature:
		return append(buffer, t.Value[:]...), nil
	case Ed25519PublicKey:
		return append(buffer, t.Value[:]...), nil
	case Ed25519Signature:
		return append(buffer, t.Value[:]...), nil

	case Bucket:
		return appendTransient(buffer, t.ID), nil
	case Proof:
		return appendTransient(buffer, t.ID), nil

	case NonFungibleLocalId:
		return appendLocalID(buffer, t.Value), nil

	case NonFungibleGlobalId:
		buffer = append(buffer, t.Resource.Raw[:]...)
		return appendLocalID(buffer, t.LocalID), nil

	case Expression:
		if !t.Value.IsValid() {
			return nil, fault.ErrInvalidExpressionString
		}
		return append(buffer, byte(t.Value)), nil

	case Blob:
		return append(buffer, t.Hash[:]...), nil

	case Bytes:
		buffer = append(buffer, util.ToVarint64(uint64(len(t.Value)))...)
		return append(buffer, t.Value...), nil

	default:
		fault.Panicf("value.Pack: unhandled variant: %T", v)
		return nil, nil
	}
}

func appendEnum(buffer Packed, variant uint8, fields []Value) (Packed, error) {
	buffer = append(buffer, variant)
	buffer = append(buffer, util.ToVarint64(uint64(len(fields)))...)
	var err error
	for _, field := range fields {
		buffer, err = appendValue(buffer, field)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// transient handle: form byte then payload
const (
	transientIndexed byte = 0x00
	transientNamed   byte = 0x01
)

func appendTransient(buffer Packed, id TransientID) Packed {
	if id.IsNamed {
		buffer = append(buffer, transientNamed)
		return appendString(buffer, id.Name)
	}
	buffer = append(buffer, transientIndexed)
	return binary.LittleEndian.AppendUint32(buffer, id.Index)
}

// PackLocalID - wire form of a bare local id, as used inside
// instruction operands
func PackLocalID(buffer []byte, id LocalID) []byte {
	return appendLocalID(Packed(buffer), id)
}

// PackTransient - wire form of a bare bucket or proof handle
func PackTransient(buffer []byte, id TransientID) []byte {
	return appendTransient(Packed(buffer), id)
}

func appendLocalID(buffer Packed, id LocalID) Packed {
	buffer = append(buffer, byte(id.kind))
	switch id.kind {
	case LocalIDInteger:
		return binary.LittleEndian.AppendUint64(buffer, id.num)
	case LocalIDString:
		return appendString(buffer, id.str)
	case LocalIDBytes:
		payload := id.Payload()
		buffer = append(buffer, util.ToVarint64(uint64(len(payload)))...)
		return append(buffer, payload...)
	case LocalIDRUID:
		return append(buffer, id.Payload()...)
	default:
		fault.Panicf("value.Pack: invalid local id kind: %d", id.kind)
		return nil
	}
}
