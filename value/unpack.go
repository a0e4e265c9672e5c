// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
	"github.com/meridian-inc/manifestkit/util"
)

// limits to stop malformed lengths from exhausting memory
const (
	maxStringLength    = 1048576
	maxContainerLength = 1048576
)

// Decode - unpack exactly one value from a buffer
//
// trailing bytes after the value are an error; the network id is
// attached to every address encountered since the wire form carries
// no network tag
func Decode(buffer []byte, networkID network.ID) (Value, error) {
	v, n, err := Packed(buffer).Unpack(networkID)
	if nil != err {
		return nil, err
	}
	if n != len(buffer) {
		return nil, fault.ErrNotValuePack
	}
	return v, nil
}

// Unpack - turn a byte slice into a value
//
// also returns the number of bytes consumed; truncated or malformed
// input yields ErrNotValuePack
func (record Packed) Unpack(networkID network.ID) (v Value, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			v = nil
			n = 0
			e = fault.ErrNotValuePack
		}
	}()

	return unpackValue(record, networkID, 0)
}

// expected is the declared kind inside a container, or 0 at top level
func unpackValue(buffer Packed, networkID network.ID, expected Kind) (Value, int, error) {
	if 0 == len(buffer) {
		return nil, 0, fault.ErrNotValuePack
	}
	tag := Kind(buffer[0])
	if !tag.IsValid() || tag.WireKind() != tag {
		return nil, 0, fault.ErrNotValuePack
	}
	if 0 != expected && tag != expected.WireKind() {
		return nil, 0, fault.ErrHeterogeneousContainer
	}
	n := 1
	payload := buffer[n:]

	switch tag {

	case KindBool:
		switch at(payload, 0) {
		case 0x00:
			return Bool{Value: false}, n + 1, nil
		case 0x01:
			return Bool{Value: true}, n + 1, nil
		default:
			return nil, 0, fault.ErrNotValuePack
		}

	case KindI8:
		return I8{Value: int8(at(payload, 0))}, n + 1, nil
	case KindU8:
		return U8{Value: at(payload, 0)}, n + 1, nil

	case KindI16:
		return I16{Value: int16(binary.LittleEndian.Uint16(take(payload, 2)))}, n + 2, nil
	case KindU16:
		return U16{Value: binary.LittleEndian.Uint16(take(payload, 2))}, n + 2, nil

	case KindI32:
		return I32{Value: int32(binary.LittleEndian.Uint32(take(payload, 4)))}, n + 4, nil
	case KindU32:
		return U32{Value: binary.LittleEndian.Uint32(take(payload, 4))}, n + 4, nil

	case KindI64:
		return I64{Value: int64(binary.LittleEndian.Uint64(take(payload, 8)))}, n + 8, nil
	case KindU64:
		return U64{Value: binary.LittleEndian.Uint64(take(payload, 8))}, n + 8, nil

	case KindI128:
		b := take(payload, 16)
		return I128{Value: Int128{
			Lo: binary.LittleEndian.Uint64(b[0:8]),
			Hi: int64(binary.LittleEndian.Uint64(b[8:16])),
		}}, n + 16, nil

	case KindU128:
		b := take(payload, 16)
		var u uint256.Int
		u[0] = binary.LittleEndian.Uint64(b[0:8])
		u[1] = binary.LittleEndian.Uint64(b[8:16])
		return U128{Value: u}, n + 16, nil

	case KindString:
		s, used, err := unpackString(payload)
		if nil != err {
			return nil, 0, err
		}
		return String{Value: s}, n + used, nil

	case KindEnum:
		return unpackEnum(buffer, payload, networkID, expected, n)

	case KindArray:
		elementKind := Kind(at(payload, 0))
		if !elementKind.IsValid() {
			return nil, 0, fault.ErrNotValuePack
		}
		n += 1
		count, countLength := util.ClippedVarint64(buffer[n:], 0, maxContainerLength)
		if 0 == countLength {
			return nil, 0, fault.ErrNotValuePack
		}
		n += countLength
		elements := make([]Value, 0, count)
		for i := 0; i < count; i += 1 {
			element, used, err := unpackValue(buffer[n:], networkID, elementKind)
			if nil != err {
				return nil, 0, err
			}
			elements = append(elements, element)
			n += used
		}
		return Array{ElementKind: elementKind, Elements: elements}, n, nil

	case KindMap:
		keyKind := Kind(at(payload, 0))
		valueKind := Kind(at(payload, 1))
		if !keyKind.IsValid() || !valueKind.IsValid() {
			return nil, 0, fault.ErrNotValuePack
		}
		n += 2
		count, countLength := util.ClippedVarint64(buffer[n:], 0, maxContainerLength)
		if 0 == countLength {
			return nil, 0, fault.ErrNotValuePack
		}
		n += countLength
		entries := make([]MapEntry, 0, count)
		for i := 0; i < count; i += 1 {
			key, used, err := unpackValue(buffer[n:], networkID, keyKind)
			if nil != err {
				return nil, 0, err
			}
			n += used
			val, used, err := unpackValue(buffer[n:], networkID, valueKind)
			if nil != err {
				return nil, 0, err
			}
			n += used
			entries = append(entries, MapEntry{Key: key, Value: val})
		}
		return Map{KeyKind: keyKind, ValueKind: valueKind, Entries: entries}, n, nil

	case KindTuple:
		count, countLength := util.ClippedVarint64(payload, 0, maxContainerLength)
		if 0 == countLength {
			return nil, 0, fault.ErrNotValuePack
		}
		n += countLength
		elements := make([]Value, 0, count)
		for i := 0; i < count; i += 1 {
			element, used, err := unpackValue(buffer[n:], networkID, 0)
			if nil != err {
				return nil, 0, err
			}
			elements = append(elements, element)
			n += used
		}
		return Tuple{Elements: elements}, n, nil

	case KindDecimal:
		s, used, err := unpackString(payload)
		if nil != err {
			return nil, 0, err
		}
		d, err := DecimalFromString(s)
		if nil != err {
			return nil, 0, fault.ErrNotValuePack
		}
		return Decimal{Value: d}, n + used, nil

	case KindPreciseDecimal:
		s, used, err := unpackString(payload)
		if nil != err {
			return nil, 0, err
		}
		d, err := PreciseDecimalFromString(s)
		if nil != err {
			return nil, 0, fault.ErrNotValuePack
		}
		return PreciseDecimal{Value: d}, n + used, nil

	case KindAddress, KindResourceAddress, KindPackageAddress, KindOwn:
		a, err := address.FromBytes(take(payload, address.RawSize), networkID)
		if nil != err {
			return nil, 0, err
		}
		n += address.RawSize
		switch tag {
		case KindAddress:
			return Address{Value: a}, n, nil
		case KindResourceAddress:
			return ResourceAddress{Value: a}, n, nil
		case KindPackageAddress:
			return PackageAddress{Value: a}, n, nil
		default:
			return Own{Value: a}, n, nil
		}

	case KindHash:
		var d Digest
		copy(d[:], take(payload, DigestLength))
		return Hash{Value: d}, n + DigestLength, nil

	case KindSecp256k1PublicKey:
		var k PublicKeySecp256k1
		copy(k[:], take(payload, Secp256k1PublicKeyLength))
		return Secp256k1PublicKey{Value: k}, n + Secp256k1PublicKeyLength, nil

	case KindSecp256k1Signature:
		var s SignatureSecp256k1
		copy(s[:], take(payload, Secp256k1SignatureLength))
		return Secp256k1Signature{Value: s}, n + Secp256k1SignatureLength, nil

	case KindEd25519PublicKey:
		var k PublicKeyEd25519
		copy(k[:], take(payload, Ed25519PublicKeyLength))
		return Ed25519PublicKey{Value: k}, n + Ed25519PublicKeyLength, nil

	case KindEd25519Signature:
		var s SignatureEd25519
		copy(s[:], take(payload, Ed25519SignatureLength))
		return Ed25519Signature{Value: s}, n + Ed25519SignatureLength, nil

	case KindBucket:
		id, used, err := unpackTransient(payload)
		if nil != err {
			return nil, 0, err
		}
		return Bucket{ID: id}, n + used, nil

	case KindProof:
		id, used, err := unpackTransient(payload)
		if nil != err {
			return nil, 0, err
		}
		return Proof{ID: id}, n + used, nil

	case KindNonFungibleLocalId:
		id, used, err := unpackLocalID(payload)
		if nil != err {
			return nil, 0, err
		}
		return NonFungibleLocalId{Value: id}, n + used, nil

	case KindNonFungibleGlobalId:
		resource, err := address.FromBytes(take(payload, address.RawSize), networkID)
		if nil != err {
			return nil, 0, err
		}
		if !resource.IsResource() {
			return nil, 0, fault.ErrNotValuePack
		}
		n += address.RawSize
		id, used, err := unpackLocalID(buffer[n:])
		if nil != err {
			return nil, 0, err
		}
		return NonFungibleGlobalId{Resource: resource, LocalID: id}, n + used, nil

	case KindExpression:
		e := ExpressionKind(at(payload, 0))
		if !e.IsValid() {
			return nil, 0, fault.ErrNotValuePack
		}
		return Expression{Value: e}, n + 1, nil

	case KindBlob:
		var d Digest
		copy(d[:], take(payload, DigestLength))
		return Blob{Hash: d}, n + DigestLength, nil

	case KindBytes:
		length, lengthOffset := util.ClippedVarint64(payload, 0, maxStringLength)
		if 0 == lengthOffset {
			return nil, 0, fault.ErrNotValuePack
		}
		n += lengthOffset
		b := make([]byte, length)
		copy(b, take(buffer[n:], length))
		return Bytes{Value: b}, n + length, nil

	default:
		return nil, 0, fault.ErrNotValuePack
	}
}

// the option and result family packs as Enum; the reserved
// discriminators are recognised here before falling through to a
// generic user enum, except when a container declares plain Enum
func unpackEnum(buffer Packed, payload Packed, networkID network.ID, expected Kind, n int) (Value, int, error) {
	variant := at(payload, 0)
	n += 1
	count, countLength := util.ClippedVarint64(buffer[n:], 0, maxContainerLength)
	if 0 == countLength {
		return nil, 0, fault.ErrNotValuePack
	}
	n += countLength
	fields := make([]Value, 0, count)
	for i := 0; i < count; i += 1 {
		field, used, err := unpackValue(buffer[n:], networkID, 0)
		if nil != err {
			return nil, 0, err
		}
		fields = append(fields, field)
		n += used
	}

	reserved := func() (Value, bool) {
		switch {
		case DiscriminatorNone == variant && 0 == count:
			return None{}, true
		case DiscriminatorSome == variant && 1 == count:
			return Some{Value: fields[0]}, true
		case DiscriminatorOk == variant && 1 == count:
			return Ok{Value: fields[0]}, true
		case DiscriminatorErr == variant && 1 == count:
			return Err{Value: fields[0]}, true
		default:
			return nil, false
		}
	}

	switch expected {
	case 0:
		if v, ok := reserved(); ok {
			return v, n, nil
		}

	case KindEnum:
		// declared plain enum: no special casing

	case KindSome, KindNone, KindOk, KindErr:
		v, ok := reserved()
		if !ok || v.Kind() != expected {
			return nil, 0, fault.ErrHeterogeneousContainer
		}
		return v, n, nil
	}

	if 0 == count {
		fields = nil
	}
	return Enum{Variant: variant, Fields: fields}, n, nil
}

func unpackString(buffer Packed) (string, int, error) {
	length, lengthOffset := util.ClippedVarint64(buffer, 0, maxStringLength)
	if 0 == lengthOffset {
		return "", 0, fault.ErrNotValuePack
	}
	s := string(take(buffer[lengthOffset:], length))
	return s, lengthOffset + length, nil
}

func unpackTransient(buffer Packed) (TransientID, int, error) {
	switch at(buffer, 0) {
	case transientIndexed:
		index := binary.LittleEndian.Uint32(take(buffer[1:], 4))
		return IndexedID(index), 5, nil
	case transientNamed:
		name, used, err := unpackString(buffer[1:])
		if nil != err {
			return TransientID{}, 0, err
		}
		return NamedID(name), 1 + used, nil
	default:
		return TransientID{}, 0, fault.ErrNotValuePack
	}
}

// UnpackLocalID - inverse of PackLocalID
func UnpackLocalID(buffer []byte) (id LocalID, n int, e error) {
	defer func() {
		if r := recover(); nil != r {
			id = LocalID{}
			n = 0
			e = fault.ErrNotValuePack
		}
	}()
	return unpackLocalID(Packed(buffer))
}

// UnpackTransient - inverse of PackTransient
func UnpackTransient(buffer []byte) (id TransientID, n int, e error) {
	defer func() {
		if r := recover(); nil != r {
			id = TransientID{}
			n = 0
			e = fault.ErrNotValuePack
		}
	}()
	return unpackTransient(Packed(buffer))
}

func unpackLocalID(buffer Packed) (LocalID, int, error) {
	switch LocalIDKind(at(buffer, 0)) {
	case LocalIDInteger:
		num := binary.LittleEndian.Uint64(take(buffer[1:], 8))
		return IntegerLocalID(num), 9, nil

	case LocalIDString:
		s, used, err := unpackString(buffer[1:])
		if nil != err {
			return LocalID{}, 0, err
		}
		id, err := StringLocalID(s)
		if nil != err {
			return LocalID{}, 0, err
		}
		return id, 1 + used, nil

	case LocalIDBytes:
		length, lengthOffset := util.ClippedVarint64(buffer[1:], 1, maxLocalIDBytesLength)
		if 0 == lengthOffset {
			return LocalID{}, 0, fault.ErrNotValuePack
		}
		id, err := BytesLocalID(take(buffer[1+lengthOffset:], length))
		if nil != err {
			return LocalID{}, 0, err
		}
		return id, 1 + lengthOffset + length, nil

	case LocalIDRUID:
		id, err := RUIDLocalID(take(buffer[1:], ruidLength))
		if nil != err {
			return LocalID{}, 0, err
		}
		return id, 1 + ruidLength, nil

	default:
		return LocalID{}, 0, fault.ErrNotValuePack
	}
}

// bounds checked byte access: out of range panics are recovered by
// Unpack and reported as ErrNotValuePack
func at(buffer Packed, i int) byte {
	return buffer[i]
}

func take(buffer Packed, n int) []byte {
	return buffer[:n:n]
}
