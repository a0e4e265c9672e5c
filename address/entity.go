// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/meridian-inc/manifestkit/fault"
)

// EntityType - the first byte of every raw address selects the kind of
// entity the address belongs to
type EntityType byte

// enumeration of entity type discriminants
//
// these are wire values and must never be renumbered
const (
	Package             EntityType = 0x0d
	FungibleResource    EntityType = 0x5d
	NonFungibleResource EntityType = 0x9a
	GenericComponent    EntityType = 0xc0
	Account             EntityType = 0xc1
	Identity            EntityType = 0xc2
	Validator           EntityType = 0x83
	AccessController    EntityType = 0xac
	Clock               EntityType = 0x58
	ConsensusManager    EntityType = 0x86

	// accounts and identities derived from a public key before any
	// on-ledger state exists
	PreallocatedAccount  EntityType = 0xd1
	PreallocatedIdentity EntityType = 0xd2

	// internal vault nodes, addressable only through direct vault calls
	FungibleVault    EntityType = 0x59
	NonFungibleVault EntityType = 0x98
)

// hrpPrefix - the bech32 human-readable part before the network suffix
func (e EntityType) hrpPrefix() (string, error) {
	switch e {
	case Package:
		return "package_", nil
	case FungibleResource, NonFungibleResource:
		return "resource_", nil
	case GenericComponent:
		return "component_", nil
	case Account, PreallocatedAccount:
		return "account_", nil
	case Identity, PreallocatedIdentity:
		return "identity_", nil
	case Validator:
		return "validator_", nil
	case AccessController:
		return "accesscontroller_", nil
	case Clock:
		return "clock_", nil
	case ConsensusManager:
		return "consensusmanager_", nil
	case FungibleVault, NonFungibleVault:
		return "internal_vault_", nil
	default:
		return "", fault.ErrInvalidEntityType
	}
}

// IsValid - true for a registered entity type discriminant
func (e EntityType) IsValid() bool {
	_, err := e.hrpPrefix()
	return nil == err
}
