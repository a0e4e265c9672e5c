// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"strings"
	"testing"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
)

// build a raw address with a given entity byte and a repeated filler
func makeRaw(entity address.EntityType, fill byte) []byte {
	raw := make([]byte, address.RawSize)
	raw[0] = byte(entity)
	for i := 1; i < address.RawSize; i += 1 {
		raw[i] = fill
	}
	return raw
}

func makeAddress(t *testing.T, entity address.EntityType, fill byte, networkID network.ID) address.Address {
	t.Helper()
	a, err := address.FromBytes(makeRaw(entity, fill), networkID)
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	return a
}

// ensures that encode->decode returns the same original address on
// every entity type and network
func TestStringRoundTrip(t *testing.T) {
	entities := []address.EntityType{
		address.Package,
		address.FungibleResource,
		address.NonFungibleResource,
		address.GenericComponent,
		address.Account,
		address.Identity,
		address.Validator,
		address.AccessController,
		address.Clock,
		address.ConsensusManager,
		address.PreallocatedAccount,
		address.PreallocatedIdentity,
		address.FungibleVault,
		address.NonFungibleVault,
	}
	networks := []network.ID{network.Mainnet, network.Testnet, network.Simulator}

	for i, entity := range entities {
		for _, networkID := range networks {
			a := makeAddress(t, entity, 0x5a, networkID)

			s := a.String()
			back, err := address.FromString(s, networkID)
			if nil != err {
				t.Fatalf("%d: decode %q error: %s", i, s, err)
			}
			if back != a {
				t.Errorf("%d: decoded: %#v  expected: %#v", i, back, a)
			}
		}
	}
}

func TestStringNetworkSuffix(t *testing.T) {
	tests := []struct {
		networkID network.ID
		prefix    string
	}{
		{network.Mainnet, "account_mr1"},
		{network.Testnet, "account_mt1"},
		{network.Simulator, "account_ml1"},
	}
	for i, test := range tests {
		a := makeAddress(t, address.Account, 0x11, test.networkID)
		s := a.String()
		if !strings.HasPrefix(s, test.prefix) {
			t.Errorf("%d: encoded: %q  expected prefix: %q", i, s, test.prefix)
		}
	}
}

// an address encoded for one network must not parse on another
func TestWrongNetworkRejected(t *testing.T) {
	a := makeAddress(t, address.Account, 0x33, network.Mainnet)

	_, err := address.FromString(a.String(), network.Testnet)
	if fault.ErrWrongNetworkForAddress != err {
		t.Fatalf("cross network decode error: %v  expected: %v", err, fault.ErrWrongNetworkForAddress)
	}
}

func TestFromBytesRejectsBadInput(t *testing.T) {
	// short buffer
	_, err := address.FromBytes(make([]byte, address.RawSize-1), network.Mainnet)
	if fault.ErrCannotDecodeAddress != err {
		t.Fatalf("short buffer error: %v  expected: %v", err, fault.ErrCannotDecodeAddress)
	}

	// unregistered entity discriminant
	raw := makeRaw(address.Account, 0x00)
	raw[0] = 0xff
	_, err = address.FromBytes(raw, network.Mainnet)
	if fault.ErrInvalidEntityType != err {
		t.Fatalf("bad entity error: %v  expected: %v", err, fault.ErrInvalidEntityType)
	}
}

func TestFromStringRejectsGarbage(t *testing.T) {
	invalid := []string{
		"",
		"not bech32 at all",
		"account_mr1qqqqqq", // too short to hold a raw address
	}
	for i, s := range invalid {
		_, err := address.FromString(s, network.Mainnet)
		if nil == err {
			t.Errorf("%d: unexpected success decoding: %q", i, s)
		}
	}
}

func TestEntityPredicates(t *testing.T) {
	tests := []struct {
		entity    address.EntityType
		account   bool
		identity  bool
		validator bool
		resource  bool
		vault     bool
	}{
		{address.Account, true, false, false, false, false},
		{address.PreallocatedAccount, true, false, false, false, false},
		{address.Identity, false, true, false, false, false},
		{address.PreallocatedIdentity, false, true, false, false, false},
		{address.Validator, false, false, true, false, false},
		{address.FungibleResource, false, false, false, true, false},
		{address.NonFungibleResource, false, false, false, true, false},
		{address.FungibleVault, false, false, false, false, true},
		{address.NonFungibleVault, false, false, false, false, true},
		{address.GenericComponent, false, false, false, false, false},
	}
	for i, test := range tests {
		a := makeAddress(t, test.entity, 0x01, network.Mainnet)
		if test.account != a.IsAccount() {
			t.Errorf("%d: IsAccount: %v  expected: %v", i, a.IsAccount(), test.account)
		}
		if test.identity != a.IsIdentity() {
			t.Errorf("%d: IsIdentity: %v  expected: %v", i, a.IsIdentity(), test.identity)
		}
		if test.validator != a.IsValidator() {
			t.Errorf("%d: IsValidator: %v  expected: %v", i, a.IsValidator(), test.validator)
		}
		if test.resource != a.IsResource() {
			t.Errorf("%d: IsResource: %v  expected: %v", i, a.IsResource(), test.resource)
		}
		if test.vault != a.IsVault() {
			t.Errorf("%d: IsVault: %v  expected: %v", i, a.IsVault(), test.vault)
		}
	}
}

// equality ignores the network binding
func TestSameAs(t *testing.T) {
	onMain := makeAddress(t, address.Account, 0x42, network.Mainnet)
	onTest := makeAddress(t, address.Account, 0x42, network.Testnet)
	other := makeAddress(t, address.Account, 0x43, network.Mainnet)

	if !onMain.SameAs(onTest) {
		t.Error("same raw bytes on different networks reported unequal")
	}
	if onMain.SameAs(other) {
		t.Error("different raw bytes reported equal")
	}
}
