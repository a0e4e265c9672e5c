// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package classify - transaction shape recognition
//
// A manifest is matched against a fixed list of known shapes, most
// specific first. The matchers only ever look at parsed instructions
// and, where amounts depend on execution, at the receipt of one
// simulated run. GeneralTransaction matches everything, so
// classification never fails on shape alone.
package classify

import (
	"encoding/json"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/instruction"
	"github.com/meridian-inc/manifestkit/network"
	"github.com/meridian-inc/manifestkit/receipt"
	"github.com/meridian-inc/manifestkit/traverse"
)

// Classification - the result of classifying one transaction
type Classification struct {
	Type                 TransactionType
	ReservedInstructions []ReservedInstruction
}

// TypeName - the canonical name of a transaction type variant
func TypeName(t TransactionType) string {
	switch t.(type) {
	case SimpleTransfer:
		return "SimpleTransfer"
	case Transfer:
		return "Transfer"
	case AccountDepositSettings:
		return "AccountDepositSettings"
	case Stake:
		return "Stake"
	case Unstake:
		return "Unstake"
	case ClaimStake:
		return "ClaimStake"
	case GeneralTransaction:
		return "GeneralTransaction"
	default:
		return "TransactionType(invalid)"
	}
}

// MarshalJSON - tagged rendering so consumers can switch on the type
func (c Classification) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type                 string                `json:"type"`
		Value                TransactionType       `json:"value"`
		ReservedInstructions []ReservedInstruction `json:"reservedInstructions,omitempty"`
	}{
		Type:                 TypeName(c.Type),
		Value:                c.Type,
		ReservedInstructions: c.ReservedInstructions,
	})
}

// ManifestSummary - static analysis needing no receipt
type ManifestSummary struct {
	EncounteredAddresses    EncounteredAddresses
	AccountsRequiringAuth   []address.Address
	IdentitiesRequiringAuth []address.Address
	AccountProofResources   []ResourceSpecifier
}

// Classify - determine the transaction type of a manifest
//
// receiptBytes may be empty: receipt dependent categories are then
// skipped and the static shapes still apply. A present receipt must
// decode and must record a successful commit.
func Classify(
	instrs instruction.Instructions,
	receiptBytes []byte,
	networkID network.ID,
) (*Classification, error) {

	list, err := instrs.Parsed()
	if nil != err {
		return nil, err
	}

	var rcpt *receipt.Receipt
	if 0 != len(receiptBytes) {
		rcpt, err = receipt.ReceiptFromBytes(receiptBytes, networkID)
		if nil != err {
			return nil, err
		}
		if !rcpt.Committed() {
			return nil, fault.ErrTransactionNotCommitted
		}
	}

	addresses := newAddressVisitor()
	auth := newAuthVisitor()
	proofs := newProofVisitor()
	reserved := newReservedVisitor()
	tracker := newTrackerVisitor(rcpt)

	err = traverse.Traverse(
		list,
		[]traverse.ValueVisitor{addresses},
		[]traverse.InstructionVisitor{addresses, auth, proofs, reserved, tracker},
	)
	if nil != err {
		return nil, err
	}

	c := &Classification{
		ReservedInstructions: reserved.list(),
	}

	// most specific shape first; order is load bearing
	if t, ok := matchSimpleTransfer(list); ok {
		c.Type = *t
		return c, nil
	}
	if t, ok := matchTransfer(list); ok {
		c.Type = *t
		return c, nil
	}
	if t, ok := matchStake(list, rcpt); ok {
		c.Type = *t
		return c, nil
	}
	if t, ok := matchUnstake(list, rcpt, networkID); ok {
		c.Type = *t
		return c, nil
	}
	if t, ok := matchClaimStake(list, rcpt); ok {
		c.Type = *t
		return c, nil
	}
	if t, ok := matchAccountDepositSettings(list); ok {
		c.Type = *t
		return c, nil
	}

	general := GeneralTransaction{
		AccountProofs:       proofs.proofs,
		AccountWithdraws:    tracker.withdraws,
		AccountDeposits:     tracker.deposits,
		AddressesInManifest: addresses.encountered(),
	}
	if 0 == len(general.AccountWithdraws) {
		general.AccountWithdraws = nil
	}
	if 0 == len(general.AccountDeposits) {
		general.AccountDeposits = nil
	}
	if nil != rcpt {
		general.MetadataOfNewEntities = rcpt.NewEntities.Metadata
		general.DataOfNewlyMintedNonFungibles = rcpt.NewEntities.MintedNonFungibles
	}
	c.Type = general
	return c, nil
}

// AnalyzeManifest - static facts about a manifest, no receipt needed
func AnalyzeManifest(
	instrs instruction.Instructions,
	networkID network.ID,
) (*ManifestSummary, error) {

	list, err := instrs.Parsed()
	if nil != err {
		return nil, err
	}

	addresses := newAddressVisitor()
	auth := newAuthVisitor()
	proofs := newProofVisitor()

	err = traverse.Traverse(
		list,
		[]traverse.ValueVisitor{addresses},
		[]traverse.InstructionVisitor{addresses, auth, proofs},
	)
	if nil != err {
		return nil, err
	}

	return &ManifestSummary{
		EncounteredAddresses:    addresses.encountered(),
		AccountsRequiringAuth:   auth.accountList(),
		IdentitiesRequiringAuth: auth.identityList(),
		AccountProofResources:   proofs.proofs,
	}, nil
}
