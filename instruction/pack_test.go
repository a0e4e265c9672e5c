// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/instruction"
	"github.com/meridian-inc/manifestkit/network"
	"github.com/meridian-inc/manifestkit/util"
	"github.com/meridian-inc/manifestkit/value"
)

func makeAddress(t *testing.T, entity address.EntityType, fill byte) address.Address {
	t.Helper()
	raw := make([]byte, address.RawSize)
	raw[0] = byte(entity)
	for i := 1; i < address.RawSize; i += 1 {
		raw[i] = fill
	}
	a, err := address.FromBytes(raw, network.Simulator)
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	return a
}

// test the packing of one instruction against a fixed wire fixture
func TestPackTakeFromWorktop(t *testing.T) {
	resource := makeAddress(t, address.FungibleResource, 0x22)

	r := instruction.TakeFromWorktop{
		Resource: resource,
		Amount:   value.MustDecimal("10"),
	}

	expected := []byte{byte(instruction.TagTakeFromWorktop)}
	expected = append(expected, resource.Raw[:]...)
	expected = append(expected, 0x02, '1', '0')

	packed, err := instruction.Pack(r)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	back, n, err := instruction.Packed(packed).Unpack(network.Simulator)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if n != len(packed) {
		t.Fatalf("consumed: %d  expected: %d", n, len(packed))
	}
	if !reflect.DeepEqual(instruction.Instruction(r), back) {
		t.Fatalf("unpacked: %#v  expected: %#v", back, r)
	}
}

// ensures that pack->unpack returns the same original instruction list
func TestPackInstructionsRoundTrip(t *testing.T) {
	account := makeAddress(t, address.Account, 0x11)
	resource := makeAddress(t, address.FungibleResource, 0x22)
	nfResource := makeAddress(t, address.NonFungibleResource, 0x33)
	pkg := makeAddress(t, address.Package, 0x44)
	vault := makeAddress(t, address.FungibleVault, 0x55)

	list := []instruction.Instruction{
		instruction.CallMethod{
			Address:    address.Static{Address: account},
			MethodName: "withdraw",
			Args: []value.Value{
				value.ResourceAddress{Value: resource},
				value.Decimal{Value: value.MustDecimal("10")},
			},
		},
		instruction.CallFunction{
			PackageAddress: address.Static{Address: pkg},
			BlueprintName:  "Faucet",
			FunctionName:   "new",
		},
		instruction.CallMethod{
			Address:    address.Named(3),
			MethodName: "configure",
		},
		instruction.CallRoyaltyMethod{
			Address:    address.Static{Address: account},
			MethodName: "set_royalty",
		},
		instruction.CallDirectVaultMethod{
			Address:    vault,
			MethodName: "recall",
		},
		instruction.TakeFromWorktop{Resource: resource, Amount: value.MustDecimal("2.5")},
		instruction.TakeNonFungiblesFromWorktop{
			Resource: nfResource,
			IDs:      []value.LocalID{value.IntegerLocalID(1), value.IntegerLocalID(2)},
		},
		instruction.TakeAllFromWorktop{Resource: resource},
		instruction.ReturnToWorktop{Bucket: value.IndexedID(2)},
		instruction.AssertWorktopContains{Resource: resource, Amount: value.MustDecimal("1")},
		instruction.AssertWorktopContainsAny{Resource: nfResource},
		instruction.PopFromAuthZone{},
		instruction.PushToAuthZone{Proof: value.IndexedID(0)},
		instruction.DropAuthZoneProofs{},
		instruction.CreateProofFromAuthZoneOfAmount{Resource: resource, Amount: value.MustDecimal("1")},
		instruction.CreateProofFromBucketOfAll{Bucket: value.NamedID("payment")},
		instruction.BurnResource{Bucket: value.IndexedID(1)},
		instruction.CloneProof{Proof: value.IndexedID(4)},
		instruction.DropProof{Proof: value.NamedID("auth")},
		instruction.DropAllProofs{},
		instruction.AllocateGlobalAddress{Package: pkg, BlueprintName: "Radiswap"},
	}

	packed, err := instruction.PackInstructions(list)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	back, err := instruction.UnpackInstructions(packed, network.Simulator)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if !reflect.DeepEqual(list, back) {
		t.Fatalf("length: %d  expected: %d", len(back), len(list))
	}
}

func TestUnpackInstructionsRejectsTrailingBytes(t *testing.T) {
	packed, err := instruction.PackInstructions([]instruction.Instruction{
		instruction.DropAllProofs{},
	})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	_, err = instruction.UnpackInstructions(append(packed, 0x00), network.Simulator)
	if fault.ErrNotInstructionPack != err {
		t.Fatalf("trailing byte error: %v  expected: %v", err, fault.ErrNotInstructionPack)
	}
}

func TestUnpackRejectsMalformed(t *testing.T) {
	account := makeAddress(t, address.Account, 0x11)

	// an account is not a vault
	badVault, err := instruction.Pack(instruction.CallDirectVaultMethod{
		Address:    account,
		MethodName: "recall",
	})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// an account is not a resource
	badResource, err := instruction.Pack(instruction.TakeAllFromWorktop{Resource: account})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// a component is not a package
	badPackage, err := instruction.Pack(instruction.AllocateGlobalAddress{
		Package:       makeAddress(t, address.GenericComponent, 0x12),
		BlueprintName: "Radiswap",
	})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// unknown tag, truncated operands, unknown dynamic form, missing
	// transient, truncated index, then the three mistyped addresses
	invalid := [][]byte{
		{},
		{0xff},
		{byte(instruction.TagTakeFromWorktop)},
		{byte(instruction.TagCallMethod), 0x02},
		{byte(instruction.TagReturnToWorktop)},
		{byte(instruction.TagPushToAuthZone), 0x00, 0x01},
		badVault,
		badResource,
		badPackage,
	}

	for i, buffer := range invalid {
		_, _, err := instruction.Packed(buffer).Unpack(network.Simulator)
		if fault.ErrNotInstructionPack != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, fault.ErrNotInstructionPack)
		}
	}
}

// raw manifest text cannot feed traversal
func TestInstructionsParsedState(t *testing.T) {
	raw := instruction.FromText("CALL_METHOD ...")
	if raw.IsParsed() {
		t.Fatal("raw text reported as parsed")
	}
	_, err := raw.Parsed()
	if fault.ErrInstructionsNotParsed != err {
		t.Fatalf("parsed error: %v  expected: %v", err, fault.ErrInstructionsNotParsed)
	}

	wrapped := instruction.FromParsed([]instruction.Instruction{instruction.DropAllProofs{}})
	if !wrapped.IsParsed() {
		t.Fatal("parsed list reported as raw text")
	}
	list, err := wrapped.Parsed()
	if nil != err {
		t.Fatalf("parsed error: %s", err)
	}
	if 1 != len(list) {
		t.Fatalf("length: %d  expected: 1", len(list))
	}
}
