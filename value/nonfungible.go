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

	"github.com/meridian-inc/manifestkit/fault"
)

// LocalIDKind - discriminant of the local id union
type LocalIDKind uint8

// possible local id forms
const (
	LocalIDInteger LocalIDKind = iota
	LocalIDString
	LocalIDBytes
	LocalIDRUID
)

// limits on local id payloads
const (
	maxLocalIDStringLength = 64
	maxLocalIDBytesLength  = 64
	ruidLength             = 32
)

// LocalID - the id of a single unit within a non-fungible resource
//
// a closed union of integer "#n#", string "<name>", bytes "[hex]" and
// ruid "{hex}" forms; stored so the type stays comparable and usable
// as a map key in analysis fact sets
type LocalID struct {
	kind LocalIDKind
	num  uint64
	str  string // string contents, or lowercase hex for bytes and ruid
}

// IntegerLocalID - construct an integer form id
func IntegerLocalID(n uint64) LocalID {
	return LocalID{kind: LocalIDInteger, num: n}
}

// StringLocalID - construct a string form id
//
// allowed characters are letters, digits and underscore, 1..64 long
func StringLocalID(s string) (LocalID, error) {
	if 0 == len(s) || len(s) > maxLocalIDStringLength {
		return LocalID{}, fault.ErrInvalidNonFungibleLocalId
	}
	for _, c := range s {
		ok := c >= 'a' && c <= 'z' ||
			c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' ||
			'_' == c
		if !ok {
			return LocalID{}, fault.ErrInvalidNonFungibleLocalId
		}
	}
	return LocalID{kind: LocalIDString, str: s}, nil
}

// BytesLocalID - construct a bytes form id, 1..64 bytes
func BytesLocalID(b []byte) (LocalID, error) {
	if 0 == len(b) || len(b) > maxLocalIDBytesLength {
		return LocalID{}, fault.ErrInvalidNonFungibleLocalId
	}
	return LocalID{kind: LocalIDBytes, str: hex.EncodeToString(b)}, nil
}

// RUIDLocalID - construct a ruid form id from exactly 32 bytes
func RUIDLocalID(b []byte) (LocalID, error) {
	if ruidLength != len(b) {
		return LocalID{}, fault.ErrInvalidNonFungibleLocalId
	}
	return LocalID{kind: LocalIDRUID, str: hex.EncodeToString(b)}, nil
}

// LocalIDFromString - parse the canonical textual form
func LocalIDFromString(s string) (LocalID, error) {
	if len(s) < 3 {
		return LocalID{}, fault.ErrInvalidNonFungibleLocalId
	}
	inner := s[1 : len(s)-1]
	switch {
	case strings.HasPrefix(s, "#") && strings.HasSuffix(s, "#"):
		n, err := strconv.ParseUint(inner, 10, 64)
		if nil != err {
			return LocalID{}, fault.ErrInvalidNonFungibleLocalId
		}
		return IntegerLocalID(n), nil

	case strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">"):
		return StringLocalID(inner)

	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		b, err := hex.DecodeString(inner)
		if nil != err {
			return LocalID{}, fault.ErrInvalidNonFungibleLocalId
		}
		return BytesLocalID(b)

	case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
		b, err := hex.DecodeString(strings.ReplaceAll(inner, "-", ""))
		if nil != err {
			return LocalID{}, fault.ErrInvalidNonFungibleLocalId
		}
		return RUIDLocalID(b)

	default:
		return LocalID{}, fault.ErrInvalidNonFungibleLocalId
	}
}

// LocalIDKindOf - the form of this id
func (id LocalID) LocalIDKind() LocalIDKind {
	return id.kind
}

// Integer - the numeric payload of an integer form id
func (id LocalID) Integer() uint64 {
	return id.num
}

// Payload - the raw payload bytes of a bytes or ruid form id
func (id LocalID) Payload() []byte {
	b, err := hex.DecodeString(id.str)
	if nil != err {
		fault.Panicf("LocalID.Payload: corrupt hex: %q", id.str)
	}
	return b
}

// Name - the string payload of a string form id
func (id LocalID) Name() string {
	return id.str
}

// String - canonical textual form
func (id LocalID) String() string {
	switch id.kind {
	case LocalIDInteger:
		return fmt.Sprintf("#%d#", id.num)
	case LocalIDString:
		return fmt.Sprintf("<%s>", id.str)
	case LocalIDBytes:
		return fmt.Sprintf("[%s]", id.str)
	case LocalIDRUID:
		return fmt.Sprintf("{%s}", id.str)
	default:
		fault.Panicf("LocalID.String: invalid kind: %d", id.kind)
		return ""
	}
}

// MarshalText - satisfy the encoding.TextMarshaler interface
func (id LocalID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
