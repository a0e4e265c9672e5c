// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
	"github.com/meridian-inc/manifestkit/value"
)

// TransactionType - the closed union of recognised transaction shapes
//
// exactly one variant is produced per classification; the matchers run
// in a fixed priority order and GeneralTransaction always matches
type TransactionType interface {
	transactionType()
}

// SimpleTransfer - one resource moved from one account to another
type SimpleTransfer struct {
	From        address.Address
	To          address.Address
	Transferred ResourceSpecifier
}

// Transfer - a multi resource transfer out of a single account
//
// destination raw address -> resource raw address -> quantity
type Transfer struct {
	From      address.Address
	Transfers map[address.Raw]map[address.Raw]Resources
}

// ResourcePreference - how an account treats deposits of one resource
type ResourcePreference uint8

// possible resource preferences
const (
	PreferenceAllowed ResourcePreference = iota
	PreferenceDisallowed
)

// String - the canonical preference name
func (p ResourcePreference) String() string {
	switch p {
	case PreferenceAllowed:
		return "Allowed"
	case PreferenceDisallowed:
		return "Disallowed"
	default:
		return "ResourcePreference(invalid)"
	}
}

// ResourcePreferenceChange - set a preference or remove the entry
type ResourcePreferenceChange struct {
	Remove     bool
	Preference ResourcePreference
}

// DepositRule - an account's default rule for third party deposits
type DepositRule uint8

// possible default deposit rules
const (
	RuleAccept DepositRule = iota
	RuleReject
	RuleAllowExisting
)

// String - the canonical rule name
func (r DepositRule) String() string {
	switch r {
	case RuleAccept:
		return "Accept"
	case RuleReject:
		return "Reject"
	case RuleAllowExisting:
		return "AllowExisting"
	default:
		return "DepositRule(invalid)"
	}
}

// DepositorBadge - a badge authorising third party deposits, either a
// whole resource or one specific non-fungible
type DepositorBadge struct {
	Resource address.Address
	ID       value.LocalID
	HasID    bool
}

// AuthorizedDepositorsChange - badge additions and removals for one
// account
type AuthorizedDepositorsChange struct {
	Added   []DepositorBadge
	Removed []DepositorBadge
}

// AccountDepositSettings - a manifest that only adjusts deposit
// settings of the signer's accounts
type AccountDepositSettings struct {
	// account raw address -> resource raw address -> change
	ResourcePreferenceChanges map[address.Raw]map[address.Raw]ResourcePreferenceChange

	// account raw address -> new default rule
	DefaultDepositRuleChanges map[address.Raw]DepositRule

	// account raw address -> badge changes
	AuthorizedDepositorsChanges map[address.Raw]AuthorizedDepositorsChange
}

// StakeInformation - one stake delegation observed in a manifest
type StakeInformation struct {
	FromAccount       address.Address
	Validator         address.Address
	StakedAmount      decimal.Decimal
	StakeUnitResource address.Address
	StakeUnitAmount   Source[decimal.Decimal]
}

// Stake - a manifest that only stakes to validators
type Stake struct {
	Stakes []StakeInformation
}

// UnstakeData - the data carried by a stake claim non-fungible
type UnstakeData struct {
	Name        string
	ClaimEpoch  uint64
	ClaimAmount decimal.Decimal
}

// UnstakeInformation - one unstake operation observed in a manifest
type UnstakeInformation struct {
	FromAccount       address.Address
	Validator         address.Address
	StakeUnitResource address.Address
	StakeUnitAmount   decimal.Decimal
	ClaimNftResource  address.Address
	ClaimNftLocalID   value.LocalID
	ClaimNftData      UnstakeData
}

// Unstake - a manifest that only unstakes from validators
type Unstake struct {
	Unstakes []UnstakeInformation
}

// ClaimStakeInformation - one stake claim observed in a manifest
type ClaimStakeInformation struct {
	IntoAccount      address.Address
	Validator        address.Address
	ClaimNftResource address.Address
	ClaimNftLocalIDs []value.LocalID
	ClaimedXrd       Source[decimal.Decimal]
}

// ClaimStake - a manifest that only claims unstaked resources
type ClaimStake struct {
	Claims []ClaimStakeInformation
}

// EncounteredAddresses - every address referenced by a manifest,
// partitioned by entity subtype
type EncounteredAddresses struct {
	Accounts          []address.Address
	Identities        []address.Address
	Validators        []address.Address
	AccessControllers []address.Address
	Resources         []address.Address
	Components        []address.Address
	Packages          []address.Address
	Others            []address.Address

	// manifest allocated addresses with no concrete value
	Named []uint32
}

// GeneralTransaction - the fallback shape, always applicable
type GeneralTransaction struct {
	// resources proven from accounts
	AccountProofs []ResourceSpecifier

	// account raw address -> resources leaving it
	AccountWithdraws map[address.Raw][]ResourceTracker

	// account raw address -> resources entering it
	AccountDeposits map[address.Raw][]ResourceTracker

	AddressesInManifest EncounteredAddresses

	// entity raw address -> metadata key -> value, from the receipt
	MetadataOfNewEntities map[address.Raw]map[string]value.Value

	// resource raw address -> local id -> data, from the receipt
	DataOfNewlyMintedNonFungibles map[address.Raw]map[value.LocalID][]byte
}

func (SimpleTransfer) transactionType()         {}
func (Transfer) transactionType()               {}
func (AccountDepositSettings) transactionType() {}
func (Stake) transactionType()                  {}
func (Unstake) transactionType()                {}
func (ClaimStake) transactionType()             {}
func (GeneralTransaction) transactionType()     {}

// DecodeUnstakeData - decode the packed data of a stake claim
// non-fungible
//
// the wire shape is a tuple of name, claim epoch and claim amount
func DecodeUnstakeData(data []byte, networkID network.ID) (UnstakeData, error) {
	v, err := value.Decode(data, networkID)
	if nil != err {
		return UnstakeData{}, err
	}
	tuple, ok := v.(value.Tuple)
	if !ok || 3 != len(tuple.Elements) {
		return UnstakeData{}, fault.ErrNotValuePack
	}
	name, ok := tuple.Elements[0].(value.String)
	if !ok {
		return UnstakeData{}, fault.ErrNotValuePack
	}
	epoch, ok := tuple.Elements[1].(value.U64)
	if !ok {
		return UnstakeData{}, fault.ErrNotValuePack
	}
	amount, ok := tuple.Elements[2].(value.Decimal)
	if !ok {
		return UnstakeData{}, fault.ErrNotValuePack
	}
	return UnstakeData{
		Name:        name.Value,
		ClaimEpoch:  epoch.Value,
		ClaimAmount: amount.Value,
	}, nil
}

// PackUnstakeData - inverse of DecodeUnstakeData, used by tests and
// simulators
func PackUnstakeData(data UnstakeData) ([]byte, error) {
	return value.Pack(value.Tuple{Elements: []value.Value{
		value.String{Value: data.Name},
		value.U64{Value: data.ClaimEpoch},
		value.Decimal{Value: data.ClaimAmount},
	}})
}
