// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - the closed manifest instruction union
//
// One variant per manifest instruction. Instructions are pure data;
// all interpretation lives in the traversal visitors.
package instruction

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/value"
)

// Tag - discriminant for the closed instruction union
//
// these are wire values and must never be renumbered
type Tag uint8

// enumeration of all instruction tags, grouped by concern
const (
	TagTakeAllFromWorktop                Tag = 0x00
	TagTakeFromWorktop                   Tag = 0x01
	TagTakeNonFungiblesFromWorktop       Tag = 0x02
	TagReturnToWorktop                   Tag = 0x03
	TagAssertWorktopContainsAny          Tag = 0x04
	TagAssertWorktopContains             Tag = 0x05
	TagAssertWorktopContainsNonFungibles Tag = 0x06

	TagPopFromAuthZone                       Tag = 0x10
	TagPushToAuthZone                        Tag = 0x11
	TagDropAuthZoneProofs                    Tag = 0x12
	TagCreateProofFromAuthZoneOfAmount       Tag = 0x14
	TagCreateProofFromAuthZoneOfNonFungibles Tag = 0x15
	TagCreateProofFromAuthZoneOfAll          Tag = 0x16

	TagCreateProofFromBucketOfAmount       Tag = 0x21
	TagCreateProofFromBucketOfNonFungibles Tag = 0x22
	TagCreateProofFromBucketOfAll          Tag = 0x23
	TagBurnResource                        Tag = 0x24

	TagCloneProof Tag = 0x30
	TagDropProof  Tag = 0x31

	TagCallFunction             Tag = 0x40
	TagCallMethod               Tag = 0x41
	TagCallRoyaltyMethod        Tag = 0x42
	TagCallMetadataMethod       Tag = 0x43
	TagCallRoleAssignmentMethod Tag = 0x44
	TagCallDirectVaultMethod    Tag = 0x45

	TagDropAllProofs         Tag = 0x50
	TagAllocateGlobalAddress Tag = 0x51
)

var tagNames = map[Tag]string{
	TagTakeAllFromWorktop:                    "TakeAllFromWorktop",
	TagTakeFromWorktop:                       "TakeFromWorktop",
	TagTakeNonFungiblesFromWorktop:           "TakeNonFungiblesFromWorktop",
	TagReturnToWorktop:                       "ReturnToWorktop",
	TagAssertWorktopContainsAny:              "AssertWorktopContainsAny",
	TagAssertWorktopContains:                 "AssertWorktopContains",
	TagAssertWorktopContainsNonFungibles:     "AssertWorktopContainsNonFungibles",
	TagPopFromAuthZone:                       "PopFromAuthZone",
	TagPushToAuthZone:                        "PushToAuthZone",
	TagDropAuthZoneProofs:                    "DropAuthZoneProofs",
	TagCreateProofFromAuthZoneOfAmount:       "CreateProofFromAuthZoneOfAmount",
	TagCreateProofFromAuthZoneOfNonFungibles: "CreateProofFromAuthZoneOfNonFungibles",
	TagCreateProofFromAuthZoneOfAll:          "CreateProofFromAuthZoneOfAll",
	TagCreateProofFromBucketOfAmount:         "CreateProofFromBucketOfAmount",
	TagCreateProofFromBucketOfNonFungibles:   "CreateProofFromBucketOfNonFungibles",
	TagCreateProofFromBucketOfAll:            "CreateProofFromBucketOfAll",
	TagBurnResource:                          "BurnResource",
	TagCloneProof:                            "CloneProof",
	TagDropProof:                             "DropProof",
	TagCallFunction:                          "CallFunction",
	TagCallMethod:                            "CallMethod",
	TagCallRoyaltyMethod:                     "CallRoyaltyMethod",
	TagCallMetadataMethod:                    "CallMetadataMethod",
	TagCallRoleAssignmentMethod:              "CallRoleAssignmentMethod",
	TagCallDirectVaultMethod:                 "CallDirectVaultMethod",
	TagDropAllProofs:                         "DropAllProofs",
	TagAllocateGlobalAddress:                 "AllocateGlobalAddress",
}

// IsValid - true for a registered tag
func (t Tag) IsValid() bool {
	_, ok := tagNames[t]
	return ok
}

// String - the canonical instruction name
func (t Tag) String() string {
	name, ok := tagNames[t]
	if !ok {
		return "Tag(invalid)"
	}
	return name
}

// Instruction - the closed union of manifest instructions
type Instruction interface {
	Tag() Tag
	isInstruction()
}

// CallMethod - invoke a method on a global component
type CallMethod struct {
	Address    address.Dynamic
	MethodName string
	Args       []value.Value
}

// CallFunction - invoke a blueprint function of a package
type CallFunction struct {
	PackageAddress address.Dynamic
	BlueprintName  string
	FunctionName   string
	Args           []value.Value
}

// CallRoyaltyMethod - invoke a method on a component royalty module
type CallRoyaltyMethod struct {
	Address    address.Dynamic
	MethodName string
	Args       []value.Value
}

// CallMetadataMethod - invoke a method on a component metadata module
type CallMetadataMethod struct {
	Address    address.Dynamic
	MethodName string
	Args       []value.Value
}

// CallRoleAssignmentMethod - invoke a method on a component role
// assignment module
type CallRoleAssignmentMethod struct {
	Address    address.Dynamic
	MethodName string
	Args       []value.Value
}

// CallDirectVaultMethod - invoke a method directly on an internal vault
type CallDirectVaultMethod struct {
	Address    address.Address
	MethodName string
	Args       []value.Value
}

// TakeFromWorktop - move an amount of a resource into a new bucket
type TakeFromWorktop struct {
	Resource address.Address
	Amount   decimal.Decimal
}

// TakeNonFungiblesFromWorktop - move specific non-fungibles into a new
// bucket
type TakeNonFungiblesFromWorktop struct {
	Resource address.Address
	IDs      []value.LocalID
}

// TakeAllFromWorktop - move the whole worktop balance of a resource
// into a new bucket
type TakeAllFromWorktop struct {
	Resource address.Address
}

// ReturnToWorktop - return a bucket to the worktop
type ReturnToWorktop struct {
	Bucket value.TransientID
}

// AssertWorktopContainsAny - assert a non-zero worktop balance
type AssertWorktopContainsAny struct {
	Resource address.Address
}

// AssertWorktopContains - assert a minimum worktop balance
type AssertWorktopContains struct {
	Resource address.Address
	Amount   decimal.Decimal
}

// AssertWorktopContainsNonFungibles - assert specific ids are present
type AssertWorktopContainsNonFungibles struct {
	Resource address.Address
	IDs      []value.LocalID
}

// PopFromAuthZone - pop the most recently pushed proof
type PopFromAuthZone struct{}

// PushToAuthZone - push a proof onto the auth zone
type PushToAuthZone struct {
	Proof value.TransientID
}

// DropAuthZoneProofs - drop every proof in the auth zone
type DropAuthZoneProofs struct{}

// CreateProofFromAuthZoneOfAmount - compose a proof of an amount
type CreateProofFromAuthZoneOfAmount struct {
	Resource address.Address
	Amount   decimal.Decimal
}

// CreateProofFromAuthZoneOfNonFungibles - compose a proof of given ids
type CreateProofFromAuthZoneOfNonFungibles struct {
	Resource address.Address
	IDs      []value.LocalID
}

// CreateProofFromAuthZoneOfAll - compose a proof of the whole balance
type CreateProofFromAuthZoneOfAll struct {
	Resource address.Address
}

// CreateProofFromBucketOfAmount - prove an amount from a bucket
type CreateProofFromBucketOfAmount struct {
	Bucket value.TransientID
	Amount decimal.Decimal
}

// CreateProofFromBucketOfNonFungibles - prove given ids from a bucket
type CreateProofFromBucketOfNonFungibles struct {
	Bucket value.TransientID
	IDs    []value.LocalID
}

// CreateProofFromBucketOfAll - prove the whole contents of a bucket
type CreateProofFromBucketOfAll struct {
	Bucket value.TransientID
}

// BurnResource - burn the contents of a bucket
type BurnResource struct {
	Bucket value.TransientID
}

// CloneProof - duplicate a proof
type CloneProof struct {
	Proof value.TransientID
}

// DropProof - drop a single proof
type DropProof struct {
	Proof value.TransientID
}

// DropAllProofs - drop every proof in the transaction
type DropAllProofs struct{}

// AllocateGlobalAddress - reserve an address for an entity to be
// created later in the same manifest
type AllocateGlobalAddress struct {
	Package       address.Address
	BlueprintName string
}

func (CallMethod) Tag() Tag                            { return TagCallMethod }
func (CallFunction) Tag() Tag                          { return TagCallFunction }
func (CallRoyaltyMethod) Tag() Tag                     { return TagCallRoyaltyMethod }
func (CallMetadataMethod) Tag() Tag                    { return TagCallMetadataMethod }
func (CallRoleAssignmentMethod) Tag() Tag              { return TagCallRoleAssignmentMethod }
func (CallDirectVaultMethod) Tag() Tag                 { return TagCallDirectVaultMethod }
func (TakeFromWorktop) Tag() Tag                       { return TagTakeFromWorktop }
func (TakeNonFungiblesFromWorktop) Tag() Tag           { return TagTakeNonFungiblesFromWorktop }
func (TakeAllFromWorktop) Tag() Tag                    { return TagTakeAllFromWorktop }
func (ReturnToWorktop) Tag() Tag                       { return TagReturnToWorktop }
func (AssertWorktopContainsAny) Tag() Tag              { return TagAssertWorktopContainsAny }
func (AssertWorktopContains) Tag() Tag                 { return TagAssertWorktopContains }
func (AssertWorktopContainsNonFungibles) Tag() Tag     { return TagAssertWorktopContainsNonFungibles }
func (PopFromAuthZone) Tag() Tag                       { return TagPopFromAuthZone }
func (PushToAuthZone) Tag() Tag                        { return TagPushToAuthZone }
func (DropAuthZoneProofs) Tag() Tag                    { return TagDropAuthZoneProofs }
func (CreateProofFromAuthZoneOfAmount) Tag() Tag       { return TagCreateProofFromAuthZoneOfAmount }
func (CreateProofFromAuthZoneOfNonFungibles) Tag() Tag { return TagCreateProofFromAuthZoneOfNonFungibles }
func (CreateProofFromAuthZoneOfAll) Tag() Tag          { return TagCreateProofFromAuthZoneOfAll }
func (CreateProofFromBucketOfAmount) Tag() Tag         { return TagCreateProofFromBucketOfAmount }
func (CreateProofFromBucketOfNonFungibles) Tag() Tag   { return TagCreateProofFromBucketOfNonFungibles }
func (CreateProofFromBucketOfAll) Tag() Tag            { return TagCreateProofFromBucketOfAll }
func (BurnResource) Tag() Tag                          { return TagBurnResource }
func (CloneProof) Tag() Tag                            { return TagCloneProof }
func (DropProof) Tag() Tag                             { return TagDropProof }
func (DropAllProofs) Tag() Tag                         { return TagDropAllProofs }
func (AllocateGlobalAddress) Tag() Tag                 { return TagAllocateGlobalAddress }

func (CallMethod) isInstruction()                            {}
func (CallFunction) isInstruction()                          {}
func (CallRoyaltyMethod) isInstruction()                     {}
func (CallMetadataMethod) isInstruction()                    {}
func (CallRoleAssignmentMethod) isInstruction()              {}
func (CallDirectVaultMethod) isInstruction()                 {}
func (TakeFromWorktop) isInstruction()                       {}
func (TakeNonFungiblesFromWorktop) isInstruction()           {}
func (TakeAllFromWorktop) isInstruction()                    {}
func (ReturnToWorktop) isInstruction()                       {}
func (AssertWorktopContainsAny) isInstruction()              {}
func (AssertWorktopContains) isInstruction()                 {}
func (AssertWorktopContainsNonFungibles) isInstruction()     {}
func (PopFromAuthZone) isInstruction()                       {}
func (PushToAuthZone) isInstruction()                        {}
func (DropAuthZoneProofs) isInstruction()                    {}
func (CreateProofFromAuthZoneOfAmount) isInstruction()       {}
func (CreateProofFromAuthZoneOfNonFungibles) isInstruction() {}
func (CreateProofFromAuthZoneOfAll) isInstruction()          {}
func (CreateProofFromBucketOfAmount) isInstruction()         {}
func (CreateProofFromBucketOfNonFungibles) isInstruction()   {}
func (CreateProofFromBucketOfAll) isInstruction()            {}
func (BurnResource) isInstruction()                          {}
func (CloneProof) isInstruction()                            {}
func (DropProof) isInstruction()                             {}
func (DropAllProofs) isInstruction()                         {}
func (AllocateGlobalAddress) isInstruction()                 {}
