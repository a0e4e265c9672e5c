// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package receipt - execution receipts produced by a ledger or
// simulator
//
// A receipt is consumed read only: the classifier uses it to resolve
// predicted amounts and newly created entities. Nothing in this
// package executes anything.
package receipt

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/value"
)

// Status - the outcome of a submitted transaction
type Status uint8

// possible transaction outcomes
const (
	CommittedSuccess Status = iota
	CommittedFailure
	Rejected
	Aborted
	statusLimit
)

var statusNames = [statusLimit]string{
	"CommittedSuccess",
	"CommittedFailure",
	"Rejected",
	"Aborted",
}

// IsValid - true for a registered status
func (s Status) IsValid() bool {
	return s < statusLimit
}

// String - the canonical status name
func (s Status) String() string {
	if !s.IsValid() {
		return "Status(invalid)"
	}
	return statusNames[s]
}

// QuantifierKind - fungible amount or non-fungible id set
type QuantifierKind uint8

// possible quantifier forms
const (
	QuantifierAmount QuantifierKind = iota
	QuantifierIDs
)

// ResourceQuantifier - a concrete quantity of one resource
//
// Amount is set for the fungible form, IDs for the non-fungible form
type ResourceQuantifier struct {
	Kind     QuantifierKind
	Resource address.Address
	Amount   decimal.Decimal
	IDs      []value.LocalID
}

// AmountQuantifier - construct the fungible form
func AmountQuantifier(resource address.Address, amount decimal.Decimal) ResourceQuantifier {
	return ResourceQuantifier{
		Kind:     QuantifierAmount,
		Resource: resource,
		Amount:   amount,
	}
}

// IDsQuantifier - construct the non-fungible form
func IDsQuantifier(resource address.Address, ids []value.LocalID) ResourceQuantifier {
	return ResourceQuantifier{
		Kind:     QuantifierIDs,
		Resource: resource,
		IDs:      ids,
	}
}

// ChangeDirection - whether resources entered or left the worktop
type ChangeDirection uint8

// possible worktop change directions
const (
	Put ChangeDirection = iota
	Take
)

// WorktopChange - one observed worktop movement
type WorktopChange struct {
	Direction  ChangeDirection
	Quantifier ResourceQuantifier
}

// NewEntities - everything created by the transaction
//
// metadata and minted data are keyed by raw address so lookups ignore
// the network binding
type NewEntities struct {
	ComponentAddresses []address.Address
	ResourceAddresses  []address.Address
	PackageAddresses   []address.Address

	// entity raw address -> metadata key -> value; a nil value records
	// an explicit removal
	Metadata map[address.Raw]map[string]value.Value

	// resource raw address -> local id -> raw data bytes
	MintedNonFungibles map[address.Raw]map[value.LocalID][]byte
}

// Receipt - the decoded execution receipt
type Receipt struct {
	Status Status

	// instruction index -> worktop movements caused by it
	WorktopChanges map[int][]WorktopChange

	NewEntities NewEntities
}

// Committed - true only for a successful commit
//
// every receipt dependent classification refuses anything else
func (r *Receipt) Committed() bool {
	return CommittedSuccess == r.Status
}

// MintedData - the raw data of one newly minted non-fungible
func (r *Receipt) MintedData(resource address.Address, id value.LocalID) ([]byte, bool) {
	byID, ok := r.NewEntities.MintedNonFungibles[resource.Raw]
	if !ok {
		return nil, false
	}
	data, ok := byID[id]
	return data, ok
}
