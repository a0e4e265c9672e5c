// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
)

// TextNode - one node of the textual manifest literal tree
//
// leaves carry their token in Literal; wrapper kinds such as Decimal or
// Address carry a single String child holding the literal payload, the
// same shape the manifest grammar uses
type TextNode struct {
	Kind        Kind
	Literal     string
	Variant     uint8
	ElementKind Kind
	KeyKind     Kind
	ValueKind   Kind
	Children    []TextNode
}

func stringLeaf(s string) TextNode {
	return TextNode{Kind: KindString, Literal: s}
}

func numberLeaf(kind Kind, literal string) TextNode {
	return TextNode{Kind: kind, Literal: literal}
}

// ToText - convert a value to its textual literal tree
//
// every address in the value must belong to the supplied network; a
// value decoded on one network cannot be rendered for another
func ToText(v Value, networkID network.ID) (TextNode, error) {
	if err := CheckElements(v); nil != err {
		return TextNode{}, err
	}
	return toText(v, networkID)
}

func toText(v Value, networkID network.ID) (TextNode, error) {

	checkNetwork := func(a address.Address) error {
		if a.NetworkID != networkID {
			return fault.ErrWrongNetworkForAddress
		}
		return nil
	}

	wrap := func(kind Kind, payload string) TextNode {
		return TextNode{Kind: kind, Children: []TextNode{stringLeaf(payload)}}
	}

	switch t := v.(type) {

	case Bool:
		return TextNode{Kind: KindBool, Literal: strconv.FormatBool(t.Value)}, nil

	case I8:
		return numberLeaf(KindI8, strconv.FormatInt(int64(t.Value), 10)), nil
	case I16:
		return numberLeaf(KindI16, strconv.FormatInt(int64(t.Value), 10)), nil
	case I32:
		return numberLeaf(KindI32, strconv.FormatInt(int64(t.Value), 10)), nil
	case I64:
		return numberLeaf(KindI64, strconv.FormatInt(t.Value, 10)), nil
	case I128:
		return numberLeaf(KindI128, t.Value.String()), nil

	case U8:
		return numberLeaf(KindU8, strconv.FormatUint(uint64(t.Value), 10)), nil
	case U16:
		return numberLeaf(KindU16, strconv.FormatUint(uint64(t.Value), 10)), nil
	case U32:
		return numberLeaf(KindU32, strconv.FormatUint(uint64(t.Value), 10)), nil
	case U64:
		return numberLeaf(KindU64, strconv.FormatUint(t.Value, 10)), nil
	case U128:
		if _, err := uint128Checked(&t.Value); nil != err {
			return TextNode{}, err
		}
		return numberLeaf(KindU128, t.Value.Dec()), nil

	case String:
		return stringLeaf(t.Value), nil

	case Enum:
		node := TextNode{Kind: KindEnum, Variant: t.Variant}
		for _, field := range t.Fields {
			child, err := toText(field, networkID)
			if nil != err {
				return TextNode{}, err
			}
			node.Children = append(node.Children, child)
		}
		return node, nil

	case Some:
		child, err := toText(t.Value, networkID)
		if nil != err {
			return TextNode{}, err
		}
		return TextNode{Kind: KindSome, Children: []TextNode{child}}, nil
	case None:
		return TextNode{Kind: KindNone}, nil
	case Ok:
		child, err := toText(t.Value, networkID)
		if nil != err {
			return TextNode{}, err
		}
		return TextNode{Kind: KindOk, Children: []TextNode{child}}, nil
	case Err:
		child, err := toText(t.Value, networkID)
		if nil != err {
			return TextNode{}, err
		}
		return TextNode{Kind: KindErr, Children: []TextNode{child}}, nil

	case Array:
		node := TextNode{Kind: KindArray, ElementKind: t.ElementKind}
		for _, element := range t.Elements {
			child, err := toText(element, networkID)
			if nil != err {
				return TextNode{}, err
			}
			node.Children = append(node.Children, child)
		}
		return node, nil

	case Map:
		node := TextNode{Kind: KindMap, KeyKind: t.KeyKind, ValueKind: t.ValueKind}
		for _, entry := range t.Entries {
			key, err := toText(entry.Key, networkID)
			if nil != err {
				return TextNode{}, err
			}
			val, err := toText(entry.Value, networkID)
			if nil != err {
				return TextNode{}, err
			}
			node.Children = append(node.Children, key, val)
		}
		return node, nil

	case Tuple:
		node := TextNode{Kind: KindTuple}
		for _, element := range t.Elements {
			child, err := toText(element, networkID)
			if nil != err {
				return TextNode{}, err
			}
			node.Children = append(node.Children, child)
		}
		return node, nil

	case Decimal:
		return wrap(KindDecimal, t.Value.String()), nil
	case PreciseDecimal:
		return wrap(KindPreciseDecimal, t.Value.String()), nil

	case Address:
		if err := checkNetwork(t.Value); nil != err {
			return TextNode{}, err
		}
		return wrap(KindAddress, t.Value.String()), nil
	case ResourceAddress:
		if err := checkNetwork(t.Value); nil != err {
			return TextNode{}, err
		}
		return wrap(KindResourceAddress, t.Value.String()), nil
	case PackageAddress:
		if err := checkNetwork(t.Value); nil != err {
			return TextNode{}, err
		}
		return wrap(KindPackageAddress, t.Value.String()), nil
	case Own:
		if err := checkNetwork(t.Value); nil != err {
			return TextNode{}, err
		}
		return wrap(KindOwn, t.Value.String()), nil

	case Hash:
		return wrap(KindHash, t.Value.String()), nil
	case Secp256k1PublicKey:
		return wrap(KindSecp256k1PublicKey, t.Value.String()), nil
	case Secp256k1Signature:
		return wrap(KindSecp256k1Signature, t.Value.String()), nil
	case Ed25519PublicKey:
		return wrap(KindEd25519PublicKey, t.Value.String()), nil
	case Ed25519Signature:
		return wrap(KindEd25519Signature, t.Value.String()), nil

	case Bucket:
		return TextNode{Kind: KindBucket, Children: []TextNode{transientNode(t.ID)}}, nil
	case Proof:
		return TextNode{Kind: KindProof, Children: []TextNode{transientNode(t.ID)}}, nil

	case NonFungibleLocalId:
		return wrap(KindNonFungibleLocalId, t.Value.String()), nil

	case NonFungibleGlobalId:
		if t.Resource.NetworkID != networkID {
			return TextNode{}, fault.ErrWrongNetworkForNonFungibleId
		}
		payload := t.Resource.String() + ":" + t.LocalID.String()
		return wrap(KindNonFungibleGlobalId, payload), nil

	case Expression:
		if !t.Value.IsValid() {
			return TextNode{}, fault.ErrInvalidExpressionString
		}
		return wrap(KindExpression, t.Value.String()), nil

	case Blob:
		return wrap(KindBlob, t.Hash.String()), nil

	case Bytes:
		return wrap(KindBytes, hex.EncodeToString(t.Value)), nil

	default:
		fault.Panicf("value.ToText: unhandled variant: %T", v)
		return TextNode{}, nil
	}
}

func transientNode(id TransientID) TextNode {
	if id.IsNamed {
		return stringLeaf(id.Name)
	}
	return numberLeaf(KindU32, strconv.FormatUint(uint64(id.Index), 10))
}

// FromText - convert a textual literal tree back to a value
//
// addresses embedded in the tree are parsed against the supplied
// network and rejected on mismatch
func FromText(node TextNode, networkID network.ID) (Value, error) {
	v, err := fromText(node, networkID)
	if nil != err {
		return nil, err
	}
	if err := CheckElements(v); nil != err {
		return nil, err
	}
	return v, nil
}

func fromText(node TextNode, networkID network.ID) (Value, error) {

	switch node.Kind {

	case KindBool:
		b, err := strconv.ParseBool(node.Literal)
		if nil != err {
			return nil, fault.ErrInvalidTextualLiteral
		}
		return Bool{Value: b}, nil

	case KindI8:
		n, err := strconv.ParseInt(node.Literal, 10, 8)
		if nil != err {
			return nil, fault.ErrOutOfRangeInteger
		}
		return I8{Value: int8(n)}, nil
	case KindI16:
		n, err := strconv.ParseInt(node.Literal, 10, 16)
		if nil != err {
			return nil, fault.ErrOutOfRangeInteger
		}
		return I16{Value: int16(n)}, nil
	case KindI32:
		n, err := strconv.ParseInt(node.Literal, 10, 32)
		if nil != err {
			return nil, fault.ErrOutOfRangeInteger
		}
		return I32{Value: int32(n)}, nil
	case KindI64:
		n, err := strconv.ParseInt(node.Literal, 10, 64)
		if nil != err {
			return nil, fault.ErrOutOfRangeInteger
		}
		return I64{Value: n}, nil
	case KindI128:
		i, err := Int128FromString(node.Literal)
		if nil != err {
			return nil, err
		}
		return I128{Value: i}, nil

	case KindU8:
		n, err := strconv.ParseUint(node.Literal, 10, 8)
		if nil != err {
			return nil, fault.ErrOutOfRangeInteger
		}
		return U8{Value: uint8(n)}, nil
	case KindU16:
		n, err := strconv.ParseUint(node.Literal, 10, 16)
		if nil != err {
			return nil, fault.ErrOutOfRangeInteger
		}
		return U16{Value: uint16(n)}, nil
	case KindU32:
		n, err := strconv.ParseUint(node.Literal, 10, 32)
		if nil != err {
			return nil, fault.ErrOutOfRangeInteger
		}
		return U32{Value: uint32(n)}, nil
	case KindU64:
		n, err := strconv.ParseUint(node.Literal, 10, 64)
		if nil != err {
			return nil, fault.ErrOutOfRangeInteger
		}
		return U64{Value: n}, nil
	case KindU128:
		u, err := Uint128FromString(node.Literal)
		if nil != err {
			return nil, err
		}
		return U128{Value: u}, nil

	case KindString:
		return String{Value: node.Literal}, nil

	case KindEnum:
		fields := make([]Value, 0, len(node.Children))
		for _, child := range node.Children {
			field, err := fromText(child, networkID)
			if nil != err {
				return nil, err
			}
			fields = append(fields, field)
		}
		if 0 == len(fields) {
			fields = nil
		}
		return Enum{Variant: node.Variant, Fields: fields}, nil

	case KindSome:
		inner, err := singleChild(node, networkID)
		if nil != err {
			return nil, err
		}
		return Some{Value: inner}, nil
	case KindNone:
		if 0 != len(node.Children) {
			return nil, fault.ErrInvalidTextualLiteral
		}
		return None{}, nil
	case KindOk:
		inner, err := singleChild(node, networkID)
		if nil != err {
			return nil, err
		}
		return Ok{Value: inner}, nil
	case KindErr:
		inner, err := singleChild(node, networkID)
		if nil != err {
			return nil, err
		}
		return Err{Value: inner}, nil

	case KindArray:
		if !node.ElementKind.IsValid() {
			return nil, fault.ErrInvalidTextualLiteral
		}
		elements := make([]Value, 0, len(node.Children))
		for _, child := range node.Children {
			element, err := fromText(child, networkID)
			if nil != err {
				return nil, err
			}
			elements = append(elements, element)
		}
		if 0 == len(elements) {
			elements = nil
		}
		return Array{ElementKind: node.ElementKind, Elements: elements}, nil

	case KindMap:
		if !node.KeyKind.IsValid() || !node.ValueKind.IsValid() {
			return nil, fault.ErrInvalidTextualLiteral
		}
		if 0 != len(node.Children)%2 {
			return nil, fault.ErrOddNumberOfMapElements
		}
		entries := make([]MapEntry, 0, len(node.Children)/2)
		for i := 0; i < len(node.Children); i += 2 {
			key, err := fromText(node.Children[i], networkID)
			if nil != err {
				return nil, err
			}
			val, err := fromText(node.Children[i+1], networkID)
			if nil != err {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: key, Value: val})
		}
		if 0 == len(entries) {
			entries = nil
		}
		return Map{KeyKind: node.KeyKind, ValueKind: node.ValueKind, Entries: entries}, nil

	case KindTuple:
		elements := make([]Value, 0, len(node.Children))
		for _, child := range node.Children {
			element, err := fromText(child, networkID)
			if nil != err {
				return nil, err
			}
			elements = append(elements, element)
		}
		if 0 == len(elements) {
			elements = nil
		}
		return Tuple{Elements: elements}, nil

	case KindDecimal:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		d, err := DecimalFromString(s)
		if nil != err {
			return nil, err
		}
		return Decimal{Value: d}, nil

	case KindPreciseDecimal:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		d, err := PreciseDecimalFromString(s)
		if nil != err {
			return nil, err
		}
		return PreciseDecimal{Value: d}, nil

	case KindAddress:
		a, err := addressPayload(node, networkID)
		if nil != err {
			return nil, err
		}
		return Address{Value: a}, nil

	case KindResourceAddress:
		a, err := addressPayload(node, networkID)
		if nil != err {
			return nil, err
		}
		if !a.IsResource() {
			return nil, fault.ErrInvalidEntityType
		}
		return ResourceAddress{Value: a}, nil

	case KindPackageAddress:
		a, err := addressPayload(node, networkID)
		if nil != err {
			return nil, err
		}
		if address.Package != a.EntityType() {
			return nil, fault.ErrInvalidEntityType
		}
		return PackageAddress{Value: a}, nil

	case KindOwn:
		a, err := addressPayload(node, networkID)
		if nil != err {
			return nil, err
		}
		return Own{Value: a}, nil

	case KindHash:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		d, err := DigestFromString(s)
		if nil != err {
			return nil, err
		}
		return Hash{Value: d}, nil

	case KindSecp256k1PublicKey:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		k, err := Secp256k1PublicKeyFromString(s)
		if nil != err {
			return nil, err
		}
		return Secp256k1PublicKey{Value: k}, nil

	case KindSecp256k1Signature:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		sig, err := Secp256k1SignatureFromString(s)
		if nil != err {
			return nil, err
		}
		return Secp256k1Signature{Value: sig}, nil

	case KindEd25519PublicKey:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		k, err := Ed25519PublicKeyFromString(s)
		if nil != err {
			return nil, err
		}
		return Ed25519PublicKey{Value: k}, nil

	case KindEd25519Signature:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		sig, err := Ed25519SignatureFromString(s)
		if nil != err {
			return nil, err
		}
		return Ed25519Signature{Value: sig}, nil

	case KindBucket:
		id, err := transientPayload(node)
		if nil != err {
			return nil, err
		}
		return Bucket{ID: id}, nil

	case KindProof:
		id, err := transientPayload(node)
		if nil != err {
			return nil, err
		}
		return Proof{ID: id}, nil

	case KindNonFungibleLocalId:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		id, err := LocalIDFromString(s)
		if nil != err {
			return nil, err
		}
		return NonFungibleLocalId{Value: id}, nil

	case KindNonFungibleGlobalId:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		parts := strings.SplitN(s, ":", 2)
		if 2 != len(parts) {
			return nil, fault.ErrInvalidNonFungibleLocalId
		}
		a, err := address.FromString(parts[0], networkID)
		if nil != err {
			return nil, err
		}
		if !a.IsResource() {
			return nil, fault.ErrInvalidEntityType
		}
		id, err := LocalIDFromString(parts[1])
		if nil != err {
			return nil, err
		}
		return NonFungibleGlobalId{Resource: a, LocalID: id}, nil

	case KindExpression:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		switch s {
		case entireWorktopString:
			return Expression{Value: EntireWorktop}, nil
		case entireAuthZoneString:
			return Expression{Value: EntireAuthZone}, nil
		default:
			return nil, ExpressionError{
				Found:    s,
				Expected: []string{entireWorktopString, entireAuthZoneString},
			}
		}

	case KindBlob:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		d, err := DigestFromString(s)
		if nil != err {
			return nil, err
		}
		return Blob{Hash: d}, nil

	case KindBytes:
		s, err := stringPayload(node)
		if nil != err {
			return nil, err
		}
		b, err := hex.DecodeString(s)
		if nil != err {
			return nil, fault.ErrInvalidTextualLiteral
		}
		return Bytes{Value: b}, nil

	default:
		return nil, fault.ErrInvalidTextualLiteral
	}
}

func singleChild(node TextNode, networkID network.ID) (Value, error) {
	if 1 != len(node.Children) {
		return nil, fault.ErrInvalidTextualLiteral
	}
	return fromText(node.Children[0], networkID)
}

// stringPayload - the single String child required by wrapper kinds
func stringPayload(node TextNode) (string, error) {
	if 1 != len(node.Children) {
		return "", fault.ErrInvalidTextualLiteral
	}
	child := node.Children[0]
	if KindString != child.Kind {
		return "", ShapeError{
			Parsing:  node.Kind,
			Expected: []Kind{KindString},
			Found:    child.Kind,
		}
	}
	return child.Literal, nil
}

func addressPayload(node TextNode, networkID network.ID) (address.Address, error) {
	s, err := stringPayload(node)
	if nil != err {
		return address.Address{}, err
	}
	return address.FromString(s, networkID)
}

// transientPayload - a bucket or proof handle child, either a quoted
// name or a u32 index
func transientPayload(node TextNode) (TransientID, error) {
	if 1 != len(node.Children) {
		return TransientID{}, fault.ErrInvalidTextualLiteral
	}
	child := node.Children[0]
	switch child.Kind {
	case KindString:
		return NamedID(child.Literal), nil
	case KindU32:
		n, err := strconv.ParseUint(child.Literal, 10, 32)
		if nil != err {
			return TransientID{}, fault.ErrOutOfRangeInteger
		}
		return IndexedID(uint32(n)), nil
	default:
		return TransientID{}, ShapeError{
			Parsing:  node.Kind,
			Expected: []Kind{KindU32, KindString},
			Found:    child.Kind,
		}
	}
}

// integer literal suffixes as used by the manifest grammar
var kindSuffixes = map[Kind]string{
	KindI8:   "i8",
	KindI16:  "i16",
	KindI32:  "i32",
	KindI64:  "i64",
	KindI128: "i128",
	KindU8:   "u8",
	KindU16:  "u16",
	KindU32:  "u32",
	KindU64:  "u64",
	KindU128: "u128",
}

// String - render the node as a manifest literal
func (node TextNode) String() string {
	switch node.Kind {

	case KindBool:
		return node.Literal

	case KindI8, KindI16, KindI32, KindI64, KindI128,
		KindU8, KindU16, KindU32, KindU64, KindU128:
		return node.Literal + kindSuffixes[node.Kind]

	case KindString:
		return strconv.Quote(node.Literal)

	case KindEnum:
		parts := make([]string, 0, len(node.Children)+1)
		parts = append(parts, fmt.Sprintf("%du8", node.Variant))
		for _, child := range node.Children {
			parts = append(parts, child.String())
		}
		return fmt.Sprintf("Enum(%s)", strings.Join(parts, ", "))

	case KindNone:
		return "None"

	case KindArray:
		return fmt.Sprintf("Array<%s>(%s)", node.ElementKind, joinChildren(node.Children))

	case KindMap:
		return fmt.Sprintf(
			"Map<%s, %s>(%s)",
			node.KeyKind, node.ValueKind, joinChildren(node.Children),
		)

	default:
		// Tuple, Some, Ok, Err and every wrapper kind share the
		// Name(children) form
		return fmt.Sprintf("%s(%s)", node.Kind, joinChildren(node.Children))
	}
}

func joinChildren(children []TextNode) string {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		parts = append(parts, child.String())
	}
	return strings.Join(parts, ", ")
}
