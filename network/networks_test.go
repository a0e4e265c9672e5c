// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package network_test

import (
	"testing"

	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
)

func TestNameRoundTrip(t *testing.T) {
	tests := []struct {
		id     network.ID
		name   string
		suffix string
	}{
		{network.Mainnet, network.MainnetName, "mr"},
		{network.Testnet, network.TestnetName, "mt"},
		{network.Simulator, network.SimulatorName, "ml"},
	}
	for i, test := range tests {
		name, err := test.id.Name()
		if nil != err {
			t.Fatalf("%d: name error: %s", i, err)
		}
		if name != test.name {
			t.Errorf("%d: name: %q  expected: %q", i, name, test.name)
		}
		id, err := network.FromName(name)
		if nil != err {
			t.Fatalf("%d: from name error: %s", i, err)
		}
		if id != test.id {
			t.Errorf("%d: id: %d  expected: %d", i, id, test.id)
		}
		if suffix := test.id.Suffix(); suffix != test.suffix {
			t.Errorf("%d: suffix: %q  expected: %q", i, suffix, test.suffix)
		}
	}
}

func TestUnknownNetwork(t *testing.T) {
	if _, err := network.ID(7).Name(); fault.ErrUnknownNetwork != err {
		t.Fatalf("name error: %v  expected: %v", err, fault.ErrUnknownNetwork)
	}
	if _, err := network.FromName("nonesuch"); fault.ErrUnknownNetwork != err {
		t.Fatalf("from name error: %v  expected: %v", err, fault.ErrUnknownNetwork)
	}
	if network.Valid("nonesuch") {
		t.Fatal("unexpectedly valid name")
	}

	// an unregistered id still renders a usable suffix
	if suffix := network.ID(7).Suffix(); "mx7" != suffix {
		t.Fatalf("suffix: %q  expected: %q", suffix, "mx7")
	}
}
