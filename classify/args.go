// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/instruction"
	"github.com/meridian-inc/manifestkit/value"
)

// operand extraction from call arguments
//
// the matchers only accept the exact shapes the native components
// declare; anything else simply fails the pattern

func argResource(v value.Value) (address.Address, bool) {
	switch t := v.(type) {
	case value.Address:
		return t.Value, t.Value.IsResource()
	case value.ResourceAddress:
		return t.Value, true
	default:
		return address.Address{}, false
	}
}

func argDecimal(v value.Value) (decimal.Decimal, bool) {
	d, ok := v.(value.Decimal)
	if !ok {
		return decimal.Decimal{}, false
	}
	return d.Value, true
}

func argLocalIDs(v value.Value) ([]value.LocalID, bool) {
	array, ok := v.(value.Array)
	if !ok || value.KindNonFungibleLocalId != array.ElementKind {
		return nil, false
	}
	ids := make([]value.LocalID, 0, len(array.Elements))
	for _, element := range array.Elements {
		id, ok := element.(value.NonFungibleLocalId)
		if !ok {
			return nil, false
		}
		ids = append(ids, id.Value)
	}
	return ids, true
}

func argBucket(v value.Value) (value.TransientID, bool) {
	b, ok := v.(value.Bucket)
	if !ok {
		return value.TransientID{}, false
	}
	return b.ID, true
}

// collectBuckets - every bucket referenced anywhere in the arguments,
// plus whether the whole worktop expression appears
func collectBuckets(args []value.Value) (buckets []value.TransientID, entireWorktop bool) {
	var walk func(v value.Value)
	walk = func(v value.Value) {
		switch t := v.(type) {
		case value.Bucket:
			buckets = append(buckets, t.ID)
		case value.Expression:
			if value.EntireWorktop == t.Value {
				entireWorktop = true
			}
		case value.Enum:
			for _, field := range t.Fields {
				walk(field)
			}
		case value.Some:
			walk(t.Value)
		case value.Ok:
			walk(t.Value)
		case value.Err:
			walk(t.Value)
		case value.Array:
			for _, element := range t.Elements {
				walk(element)
			}
		case value.Map:
			for _, entry := range t.Entries {
				walk(entry.Key)
				walk(entry.Value)
			}
		case value.Tuple:
			for _, element := range t.Elements {
				walk(element)
			}
		}
	}
	for _, arg := range args {
		walk(arg)
	}
	return buckets, entireWorktop
}

// accountCall - a method call on a static account address
func accountCall(ins instruction.Instruction) (address.Address, string, []value.Value, bool) {
	call, ok := ins.(instruction.CallMethod)
	if !ok {
		return address.Address{}, "", nil, false
	}
	a, ok := address.StaticOf(call.Address)
	if !ok || !a.IsAccount() {
		return address.Address{}, "", nil, false
	}
	return a, call.MethodName, call.Args, true
}

// identityCall - a method call on a static identity address
func identityCall(ins instruction.Instruction) (address.Address, string, bool) {
	call, ok := ins.(instruction.CallMethod)
	if !ok {
		return address.Address{}, "", false
	}
	a, ok := address.StaticOf(call.Address)
	if !ok || !a.IsIdentity() {
		return address.Address{}, "", false
	}
	return a, call.MethodName, true
}

// validatorCall - a method call on a static validator address
func validatorCall(ins instruction.Instruction) (address.Address, string, []value.Value, bool) {
	call, ok := ins.(instruction.CallMethod)
	if !ok {
		return address.Address{}, "", nil, false
	}
	a, ok := address.StaticOf(call.Address)
	if !ok || !a.IsValidator() {
		return address.Address{}, "", nil, false
	}
	return a, call.MethodName, call.Args, true
}

// withdrawSpec - decode one account withdraw call into a specifier
//
// the combined lock fee forms carry the fee amount as a leading
// argument which is skipped here
func withdrawSpec(method string, args []value.Value) (ResourceSpecifier, bool) {
	operands := args
	switch method {
	case MethodLockFeeAndWithdraw, MethodLockFeeAndWithdrawNonFungibles:
		if 0 == len(operands) {
			return ResourceSpecifier{}, false
		}
		if _, ok := argDecimal(operands[0]); !ok {
			return ResourceSpecifier{}, false
		}
		operands = operands[1:]
	}
	if 2 != len(operands) {
		return ResourceSpecifier{}, false
	}
	resource, ok := argResource(operands[0])
	if !ok {
		return ResourceSpecifier{}, false
	}

	switch method {
	case MethodWithdraw, MethodLockFeeAndWithdraw:
		amount, ok := argDecimal(operands[1])
		if !ok {
			return ResourceSpecifier{}, false
		}
		return ResourceSpecifier{Resource: resource, Amount: amount}, true

	case MethodWithdrawNonFungibles, MethodLockFeeAndWithdrawNonFungibles:
		ids, ok := argLocalIDs(operands[1])
		if !ok {
			return ResourceSpecifier{}, false
		}
		return ResourceSpecifier{
			Resource:    resource,
			NonFungible: true,
			Amount:      decimal.NewFromInt(int64(len(ids))),
			IDs:         ids,
		}, true

	default:
		return ResourceSpecifier{}, false
	}
}

// sameIDSet - set equality on local id lists
func sameIDSet(a []value.LocalID, b []value.LocalID) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[value.LocalID]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
	}
	return true
}
