// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strconv"
)

// TransientID - manifest-scoped handle for buckets and proofs
//
// a handle is referenced either by name or by numeric index; the zero
// value is the numeric handle 0
type TransientID struct {
	Name    string
	Index   uint32
	IsNamed bool
}

// NamedID - a handle referenced by name
func NamedID(name string) TransientID {
	return TransientID{Name: name, IsNamed: true}
}

// IndexedID - a handle referenced by numeric index
func IndexedID(index uint32) TransientID {
	return TransientID{Index: index}
}

// String - the manifest literal payload of the handle
func (t TransientID) String() string {
	if t.IsNamed {
		return fmt.Sprintf("%q", t.Name)
	}
	return strconv.FormatUint(uint64(t.Index), 10)
}

// ExpressionKind - the closed set of manifest expressions
type ExpressionKind uint8

// possible expressions
const (
	EntireWorktop ExpressionKind = iota
	EntireAuthZone
	expressionLimit
)

// expression literal strings
const (
	entireWorktopString  = "ENTIRE_WORKTOP"
	entireAuthZoneString = "ENTIRE_AUTH_ZONE"
)

// IsValid - true for a registered expression
func (e ExpressionKind) IsValid() bool {
	return e < expressionLimit
}

// String - the manifest literal of the expression
func (e ExpressionKind) String() string {
	switch e {
	case EntireWorktop:
		return entireWorktopString
	case EntireAuthZone:
		return entireAuthZoneString
	default:
		return fmt.Sprintf("Expression(%d)", uint8(e))
	}
}
