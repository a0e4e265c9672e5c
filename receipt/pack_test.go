// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
	"github.com/meridian-inc/manifestkit/receipt"
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

// ensures that pack->unpack returns the same original receipt
func TestPackReceiptRoundTrip(t *testing.T) {
	resource := makeAddress(t, address.FungibleResource, 0x22)
	nfResource := makeAddress(t, address.NonFungibleResource, 0x33)
	component := makeAddress(t, address.GenericComponent, 0x44)
	id := value.IntegerLocalID(7)

	r := &receipt.Receipt{
		Status: receipt.CommittedSuccess,
		WorktopChanges: map[int][]receipt.WorktopChange{
			2: {{
				Direction:  receipt.Put,
				Quantifier: receipt.AmountQuantifier(resource, value.MustDecimal("12.5")),
			}},
			4: {
				{
					Direction:  receipt.Take,
					Quantifier: receipt.IDsQuantifier(nfResource, []value.LocalID{id}),
				},
				{
					Direction:  receipt.Put,
					Quantifier: receipt.AmountQuantifier(resource, value.MustDecimal("1")),
				},
			},
		},
		NewEntities: receipt.NewEntities{
			ComponentAddresses: []address.Address{component},
			Metadata: map[address.Raw]map[string]value.Value{
				component.Raw: {
					"name": value.String{Value: "Radiswap"},
					"icon": nil,
				},
			},
			MintedNonFungibles: map[address.Raw]map[value.LocalID][]byte{
				nfResource.Raw: {
					id: {0xde, 0xad, 0xbe, 0xef},
				},
			},
		},
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	back, err := receipt.ReceiptFromBytes(packed, network.Simulator)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if !reflect.DeepEqual(r, back) {
		t.Fatalf("unpacked: %#v  expected: %#v", back, r)
	}

	// the map iteration order must not leak into the wire form
	again, err := r.Pack()
	if nil != err {
		t.Fatalf("repack error: %s", err)
	}
	if !bytes.Equal(packed, again) {
		t.Fatal("pack is not deterministic")
	}
}

func TestPackReceiptMinimal(t *testing.T) {
	r := &receipt.Receipt{Status: receipt.CommittedFailure}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	back, err := receipt.ReceiptFromBytes(packed, network.Simulator)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if !reflect.DeepEqual(r, back) {
		t.Fatalf("unpacked: %#v  expected: %#v", back, r)
	}
	if back.Committed() {
		t.Fatal("a committed failure reported as committed")
	}
}

func TestCommitted(t *testing.T) {
	tests := []struct {
		status    receipt.Status
		committed bool
	}{
		{receipt.CommittedSuccess, true},
		{receipt.CommittedFailure, false},
		{receipt.Rejected, false},
		{receipt.Aborted, false},
	}
	for i, test := range tests {
		r := &receipt.Receipt{Status: test.status}
		if test.committed != r.Committed() {
			t.Errorf("%d: committed: %v  expected: %v", i, r.Committed(), test.committed)
		}
	}
}

func TestReceiptFromBytesRejectsMalformed(t *testing.T) {
	r := &receipt.Receipt{Status: receipt.CommittedSuccess}
	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// trailing byte
	_, err = receipt.ReceiptFromBytes(append(packed, 0x00), network.Simulator)
	if fault.ErrNotReceiptPack != err {
		t.Fatalf("trailing byte error: %v  expected: %v", err, fault.ErrNotReceiptPack)
	}

	// unknown status, empty buffer, truncated sections
	invalid := [][]byte{
		{},
		{0xff},
		{byte(receipt.CommittedSuccess)},
		{byte(receipt.CommittedSuccess), 0x01},
	}
	for i, buffer := range invalid {
		_, err := receipt.ReceiptFromBytes(buffer, network.Simulator)
		if fault.ErrNotReceiptPack != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, fault.ErrNotReceiptPack)
		}
	}

	// a quantifier must name a resource
	account := makeAddress(t, address.Account, 0x11)
	bad := &receipt.Receipt{
		Status: receipt.CommittedSuccess,
		WorktopChanges: map[int][]receipt.WorktopChange{
			0: {{
				Direction:  receipt.Put,
				Quantifier: receipt.AmountQuantifier(account, value.MustDecimal("1")),
			}},
		},
	}
	packed, err = bad.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	_, err = receipt.ReceiptFromBytes(packed, network.Simulator)
	if fault.ErrNotReceiptPack != err {
		t.Fatalf("non-resource quantifier error: %v  expected: %v", err, fault.ErrNotReceiptPack)
	}
}

func TestPackRejectsInvalidStatus(t *testing.T) {
	r := &receipt.Receipt{Status: receipt.Status(99)}
	_, err := r.Pack()
	if fault.ErrNotReceiptPack != err {
		t.Fatalf("pack error: %v  expected: %v", err, fault.ErrNotReceiptPack)
	}
}

func TestMintedData(t *testing.T) {
	nfResource := makeAddress(t, address.NonFungibleResource, 0x33)
	id := value.IntegerLocalID(1)

	r := &receipt.Receipt{
		Status: receipt.CommittedSuccess,
		NewEntities: receipt.NewEntities{
			MintedNonFungibles: map[address.Raw]map[value.LocalID][]byte{
				nfResource.Raw: {id: {0x01}},
			},
		},
	}

	data, ok := r.MintedData(nfResource, id)
	if !ok || !bytes.Equal([]byte{0x01}, data) {
		t.Fatalf("minted data: %x, %v  expected: 01, true", data, ok)
	}
	if _, ok := r.MintedData(nfResource, value.IntegerLocalID(2)); ok {
		t.Fatal("unexpected data for an unknown id")
	}
}
