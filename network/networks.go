// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package network - the closed registry of ledger networks
//
// A network is identified on the wire by a single byte. The id never
// travels inside packed values; it is supplied per call and affects
// only the textual rendering of addresses.
package network

import (
	"fmt"

	"github.com/meridian-inc/manifestkit/fault"
)

// ID - single byte network identifier
type ID uint8

// well-known networks
const (
	Mainnet   ID = 1
	Testnet   ID = 2
	Simulator ID = 242
)

// names of all networks
const (
	MainnetName   = "main"
	TestnetName   = "test"
	SimulatorName = "local"
)

// bech32 human-readable part suffixes
const (
	mainnetSuffix   = "mr"
	testnetSuffix   = "mt"
	simulatorSuffix = "ml"
)

// Name - the registered name for a network id
func (id ID) Name() (string, error) {
	switch id {
	case Mainnet:
		return MainnetName, nil
	case Testnet:
		return TestnetName, nil
	case Simulator:
		return SimulatorName, nil
	default:
		return "", fault.ErrUnknownNetwork
	}
}

// Suffix - the HRP suffix appended to every entity prefix on this network
//
// unregistered ids render as "mx" plus the decimal id so that any
// address remains printable
func (id ID) Suffix() string {
	switch id {
	case Mainnet:
		return mainnetSuffix
	case Testnet:
		return testnetSuffix
	case Simulator:
		return simulatorSuffix
	default:
		return fmt.Sprintf("mx%d", uint8(id))
	}
}

// FromName - convert a registered network name to its id
func FromName(name string) (ID, error) {
	switch name {
	case MainnetName:
		return Mainnet, nil
	case TestnetName:
		return Testnet, nil
	case SimulatorName:
		return Simulator, nil
	default:
		return 0, fault.ErrUnknownNetwork
	}
}

// Valid - validate a network name
func Valid(name string) bool {
	_, err := FromName(name)
	return nil == err
}
