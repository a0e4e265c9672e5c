// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - network-aware ledger entity addresses
//
// A raw address is a fixed byte string whose first byte selects the
// entity type. The network id is never part of the raw bytes; it is
// attached at construction and affects only the textual bech32m form.
// Equality and map membership depend on the raw bytes alone.
package address

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
)

// RawSize - exact byte count of a raw address
const RawSize = 30

// Raw - the network independent part of an address
type Raw [RawSize]byte

// Address - a raw address bound to the network it was decoded on
type Address struct {
	NetworkID network.ID
	Raw       Raw
}

// MarshalText - lowercase hex, mainly for use as a JSON map key
func (r Raw) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(r[:])), nil
}

// FromBytes - construct an address from raw bytes and a network id
func FromBytes(raw []byte, networkID network.ID) (Address, error) {
	if RawSize != len(raw) {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	if !EntityType(raw[0]).IsValid() {
		return Address{}, fault.ErrInvalidEntityType
	}
	a := Address{NetworkID: networkID}
	copy(a.Raw[:], raw)
	return a, nil
}

// FromString - parse a bech32m encoded address
//
// the encoded network must match the supplied one; addresses never
// change network by parsing
func FromString(s string, networkID network.ID) (Address, error) {
	hrp, data, version, err := bech32.DecodeGeneric(s)
	if nil != err || bech32.VersionM != version {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if nil != err || RawSize != len(raw) {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	a, err := FromBytes(raw, networkID)
	if nil != err {
		return Address{}, err
	}
	expected, err := a.EntityType().hrpPrefix()
	if nil != err {
		return Address{}, err
	}
	if hrp != expected+networkID.Suffix() {
		return Address{}, fault.ErrWrongNetworkForAddress
	}
	return a, nil
}

// EntityType - the entity discriminant carried in the first raw byte
func (a Address) EntityType() EntityType {
	return EntityType(a.Raw[0])
}

// SameAs - equality on the raw bytes only
//
// two addresses on different networks with equal raw bytes are the
// same entity
func (a Address) SameAs(b Address) bool {
	return a.Raw == b.Raw
}

// String - bech32m textual form
func (a Address) String() string {
	prefix, err := a.EntityType().hrpPrefix()
	if nil != err {
		fault.Panicf("address.String: invalid entity type: %#02x", a.Raw[0])
	}
	data, err := bech32.ConvertBits(a.Raw[:], 8, 5, true)
	if nil != err {
		fault.Panicf("address.String: convert bits: %s", err)
	}
	s, err := bech32.EncodeM(prefix+a.NetworkID.Suffix(), data)
	if nil != err {
		fault.Panicf("address.String: encode: %s", err)
	}
	return s
}

// MarshalText - satisfy the encoding.TextMarshaler interface
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// entity subtype predicates used by the classifier

// IsAccount - user or preallocated account component
func (a Address) IsAccount() bool {
	t := a.EntityType()
	return Account == t || PreallocatedAccount == t
}

// IsIdentity - user or preallocated identity component
func (a Address) IsIdentity() bool {
	t := a.EntityType()
	return Identity == t || PreallocatedIdentity == t
}

// IsValidator - consensus validator component
func (a Address) IsValidator() bool {
	return Validator == a.EntityType()
}

// IsAccessController - access controller component
func (a Address) IsAccessController() bool {
	return AccessController == a.EntityType()
}

// IsResource - fungible or non-fungible resource manager
func (a Address) IsResource() bool {
	t := a.EntityType()
	return FungibleResource == t || NonFungibleResource == t
}

// IsVault - internal fungible or non-fungible vault node
func (a Address) IsVault() bool {
	t := a.EntityType()
	return FungibleVault == t || NonFungibleVault == t
}

// IsClock - the network clock
func (a Address) IsClock() bool {
	return Clock == a.EntityType()
}

// IsConsensusManager - the epoch / consensus manager
func (a Address) IsConsensusManager() bool {
	return ConsensusManager == a.EntityType()
}

// IsUserApplication - anything deployed by users rather than reserved
// system components
func (a Address) IsUserApplication() bool {
	t := a.EntityType()
	return GenericComponent == t || Package == t
}
