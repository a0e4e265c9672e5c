// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify

import (
	"bytes"
	"sort"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/instruction"
	"github.com/meridian-inc/manifestkit/value"
)

// addressVisitor - collects every address a manifest references
//
// implements both visitor interfaces: instruction operands and value
// nodes each carry addresses
type addressVisitor struct {
	seen  map[address.Raw]address.Address
	named map[uint32]bool

	// allocations mint named addresses in order
	allocations uint32
}

func newAddressVisitor() *addressVisitor {
	return &addressVisitor{
		seen:  make(map[address.Raw]address.Address),
		named: make(map[uint32]bool),
	}
}

func (v *addressVisitor) add(a address.Address) {
	v.seen[a.Raw] = a
}

func (v *addressVisitor) addDynamic(d address.Dynamic) {
	switch t := d.(type) {
	case address.Static:
		v.add(t.Address)
	case address.Named:
		v.named[uint32(t)] = true
	}
}

func (v *addressVisitor) VisitInstruction(index int, ins instruction.Instruction) error {
	switch t := ins.(type) {
	case instruction.CallMethod:
		v.addDynamic(t.Address)
	case instruction.CallFunction:
		v.addDynamic(t.PackageAddress)
	case instruction.CallRoyaltyMethod:
		v.addDynamic(t.Address)
	case instruction.CallMetadataMethod:
		v.addDynamic(t.Address)
	case instruction.CallRoleAssignmentMethod:
		v.addDynamic(t.Address)
	case instruction.CallDirectVaultMethod:
		v.add(t.Address)
	case instruction.TakeFromWorktop:
		v.add(t.Resource)
	case instruction.TakeNonFungiblesFromWorktop:
		v.add(t.Resource)
	case instruction.TakeAllFromWorktop:
		v.add(t.Resource)
	case instruction.AssertWorktopContainsAny:
		v.add(t.Resource)
	case instruction.AssertWorktopContains:
		v.add(t.Resource)
	case instruction.AssertWorktopContainsNonFungibles:
		v.add(t.Resource)
	case instruction.CreateProofFromAuthZoneOfAmount:
		v.add(t.Resource)
	case instruction.CreateProofFromAuthZoneOfNonFungibles:
		v.add(t.Resource)
	case instruction.CreateProofFromAuthZoneOfAll:
		v.add(t.Resource)
	case instruction.AllocateGlobalAddress:
		v.add(t.Package)
		v.named[v.allocations] = true
		v.allocations += 1
	}
	return nil
}

func (v *addressVisitor) VisitValue(node *value.Value) error {
	switch t := (*node).(type) {
	case value.Address:
		v.add(t.Value)
	case value.ResourceAddress:
		v.add(t.Value)
	case value.PackageAddress:
		v.add(t.Value)
	case value.Own:
		v.add(t.Value)
	case value.NonFungibleGlobalId:
		v.add(t.Resource)
	}
	return nil
}

// encountered - the partitioned result, each partition sorted by raw
// bytes for deterministic output
func (v *addressVisitor) encountered() EncounteredAddresses {
	var out EncounteredAddresses

	raws := make([]address.Raw, 0, len(v.seen))
	for raw := range v.seen {
		raws = append(raws, raw)
	}
	sort.Slice(raws, func(i, j int) bool {
		return bytes.Compare(raws[i][:], raws[j][:]) < 0
	})

	for _, raw := range raws {
		a := v.seen[raw]
		switch {
		case a.IsAccount():
			out.Accounts = append(out.Accounts, a)
		case a.IsIdentity():
			out.Identities = append(out.Identities, a)
		case a.IsValidator():
			out.Validators = append(out.Validators, a)
		case a.IsAccessController():
			out.AccessControllers = append(out.AccessControllers, a)
		case a.IsResource():
			out.Resources = append(out.Resources, a)
		case address.GenericComponent == a.EntityType():
			out.Components = append(out.Components, a)
		case address.Package == a.EntityType():
			out.Packages = append(out.Packages, a)
		default:
			out.Others = append(out.Others, a)
		}
	}

	for id := range v.named {
		out.Named = append(out.Named, id)
	}
	sort.Slice(out.Named, func(i, j int) bool { return out.Named[i] < out.Named[j] })
	return out
}

// authVisitor - accounts and identities whose own authority the
// manifest needs
type authVisitor struct {
	accounts   map[address.Raw]address.Address
	identities map[address.Raw]address.Address
}

func newAuthVisitor() *authVisitor {
	return &authVisitor{
		accounts:   make(map[address.Raw]address.Address),
		identities: make(map[address.Raw]address.Address),
	}
}

func (v *authVisitor) VisitInstruction(index int, ins instruction.Instruction) error {
	if a, method, _, ok := accountCall(ins); ok {
		if accountAuthMethods[method] || accountGuardedDepositMethods[method] {
			v.accounts[a.Raw] = a
		}
		return nil
	}
	if a, method, ok := identityCall(ins); ok {
		if identityAuthMethods[method] {
			v.identities[a.Raw] = a
		}
		return nil
	}

	// owner module methods need the owner badge as well
	switch t := ins.(type) {
	case instruction.CallRoyaltyMethod:
		v.owned(t.Address)
	case instruction.CallMetadataMethod:
		v.owned(t.Address)
	case instruction.CallRoleAssignmentMethod:
		v.owned(t.Address)
	}
	return nil
}

func (v *authVisitor) owned(d address.Dynamic) {
	a, ok := address.StaticOf(d)
	if !ok {
		return
	}
	if a.IsAccount() {
		v.accounts[a.Raw] = a
	} else if a.IsIdentity() {
		v.identities[a.Raw] = a
	}
}

func (v *authVisitor) accountList() []address.Address {
	return sortedAddresses(v.accounts)
}

func (v *authVisitor) identityList() []address.Address {
	return sortedAddresses(v.identities)
}

// proofVisitor - resources proven from accounts
type proofVisitor struct {
	proofs   []ResourceSpecifier
	accounts map[address.Raw]address.Address
}

func newProofVisitor() *proofVisitor {
	return &proofVisitor{accounts: make(map[address.Raw]address.Address)}
}

func (v *proofVisitor) VisitInstruction(index int, ins instruction.Instruction) error {
	a, method, args, ok := accountCall(ins)
	if !ok || !accountProofMethods[method] || 2 != len(args) {
		return nil
	}
	resource, ok := argResource(args[0])
	if !ok {
		return nil
	}

	switch method {
	case MethodCreateProofOfAmount:
		amount, ok := argDecimal(args[1])
		if !ok {
			return nil
		}
		v.proofs = append(v.proofs, ResourceSpecifier{
			Resource: resource,
			Amount:   amount,
		})

	case MethodCreateProofOfNonFungibles:
		ids, ok := argLocalIDs(args[1])
		if !ok {
			return nil
		}
		v.proofs = append(v.proofs, ResourceSpecifier{
			Resource:    resource,
			NonFungible: true,
			IDs:         ids,
		})
	}
	v.accounts[a.Raw] = a
	return nil
}

// reservedVisitor - instructions a wallet reserves for itself
type reservedVisitor struct {
	found map[ReservedInstruction]bool
}

func newReservedVisitor() *reservedVisitor {
	return &reservedVisitor{found: make(map[ReservedInstruction]bool)}
}

func (v *reservedVisitor) VisitInstruction(index int, ins instruction.Instruction) error {
	if _, method, _, ok := accountCall(ins); ok {
		switch {
		case accountLockFeeMethods[method]:
			v.found[ReservedAccountLockFee] = true
		case MethodSecurify == method:
			v.found[ReservedAccountSecurify] = true
		case accountDepositSettingsMethods[method]:
			v.found[ReservedAccountUpdateSettings] = true
		}
		return nil
	}
	if _, method, ok := identityCall(ins); ok {
		if MethodSecurify == method {
			v.found[ReservedIdentitySecurify] = true
		}
		return nil
	}
	if call, ok := ins.(instruction.CallMethod); ok {
		if a, ok := address.StaticOf(call.Address); ok && a.IsAccessController() {
			v.found[ReservedAccessController] = true
		}
	}
	return nil
}

func (v *reservedVisitor) list() []ReservedInstruction {
	out := make([]ReservedInstruction, 0, len(v.found))
	for r := ReservedInstruction(0); r < reservedLimit; r += 1 {
		if v.found[r] {
			out = append(out, r)
		}
	}
	if 0 == len(out) {
		out = nil
	}
	return out
}

func sortedAddresses(m map[address.Raw]address.Address) []address.Address {
	raws := make([]address.Raw, 0, len(m))
	for raw := range m {
		raws = append(raws, raw)
	}
	sort.Slice(raws, func(i, j int) bool {
		return bytes.Compare(raws[i][:], raws[j][:]) < 0
	})
	out := make([]address.Address, 0, len(raws))
	for _, raw := range raws {
		out = append(out, m[raw])
	}
	if 0 == len(out) {
		out = nil
	}
	return out
}
