// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify

// ReservedInstruction - an instruction a wallet must issue itself and
// therefore refuses inside externally supplied manifests
type ReservedInstruction uint8

// possible reserved instructions
const (
	ReservedAccountLockFee ReservedInstruction = iota
	ReservedAccountSecurify
	ReservedIdentitySecurify
	ReservedAccountUpdateSettings
	ReservedAccessController
	reservedLimit
)

var reservedNames = [reservedLimit]string{
	"AccountLockFee",
	"AccountSecurify",
	"IdentitySecurify",
	"AccountUpdateSettings",
	"AccessController",
}

// String - the canonical name
func (r ReservedInstruction) String() string {
	if r >= reservedLimit {
		return "ReservedInstruction(invalid)"
	}
	return reservedNames[r]
}

// MarshalText - satisfy the encoding.TextMarshaler interface
func (r ReservedInstruction) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
