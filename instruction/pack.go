// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"

	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
	"github.com/meridian-inc/manifestkit/util"
	"github.com/meridian-inc/manifestkit/value"
)

// Packed - a packed instruction is just a byte slice
type Packed []byte

// limits to stop malformed lengths from exhausting memory
const (
	maxStringLength = 1048576
	maxListLength   = 1048576
)

// dynamic address form byte
const (
	dynamicStatic byte = 0x00
	dynamicNamed  byte = 0x01
)

// Pack - convert an instruction to its wire form
//
// layout: one tag byte then the operands in declaration order; strings
// and lists are varint prefixed, amounts pack as decimal strings,
// addresses pack their raw bytes only
func Pack(ins Instruction) (Packed, error) {
	buffer := Packed{byte(ins.Tag())}

	switch t := ins.(type) {

	case CallMethod:
		return packCall(buffer, t.Address, t.MethodName, t.Args)
	case CallRoyaltyMethod:
		return packCall(buffer, t.Address, t.MethodName, t.Args)
	case CallMetadataMethod:
		return packCall(buffer, t.Address, t.MethodName, t.Args)
	case CallRoleAssignmentMethod:
		return packCall(buffer, t.Address, t.MethodName, t.Args)

	case CallFunction:
		buffer, err := appendDynamic(buffer, t.PackageAddress)
		if nil != err {
			return nil, err
		}
		buffer = appendString(buffer, t.BlueprintName)
		buffer = appendString(buffer, t.FunctionName)
		return appendArgs(buffer, t.Args)

	case CallDirectVaultMethod:
		buffer = append(buffer, t.Address.Raw[:]...)
		buffer = appendString(buffer, t.MethodName)
		return appendArgs(buffer, t.Args)

	case TakeFromWorktop:
		buffer = append(buffer, t.Resource.Raw[:]...)
		return appendDecimal(buffer, t.Amount), nil

	case TakeNonFungiblesFromWorktop:
		buffer = append(buffer, t.Resource.Raw[:]...)
		return appendLocalIDs(buffer, t.IDs), nil

	case TakeAllFromWorktop:
		return append(buffer, t.Resource.Raw[:]...), nil

	case ReturnToWorktop:
		return value.PackTransient(buffer, t.Bucket), nil

	case AssertWorktopContainsAny:
		return append(buffer, t.Resource.Raw[:]...), nil

	case AssertWorktopContains:
		buffer = append(buffer, t.Resource.Raw[:]...)
		return appendDecimal(buffer, t.Amount), nil

	case AssertWorktopContainsNonFungibles:
		buffer = append(buffer, t.Resource.Raw[:]...)
		return appendLocalIDs(buffer, t.IDs), nil

	case PopFromAuthZone:
		return buffer, nil
	case PushToAuthZone:
		return value.PackTransient(buffer, t.Proof), nil
	case DropAuthZoneProofs:
		return buffer, nil

	case CreateProofFromAuthZoneOfAmount:
		buffer = append(buffer, t.Resource.Raw[:]...)
		return appendDecimal(buffer, t.Amount), nil

	case CreateProofFromAuthZoneOfNonFungibles:
		buffer = append(buffer, t.Resource.Raw[:]...)
		return appendLocalIDs(buffer, t.IDs), nil

	case CreateProofFromAuthZoneOfAll:
		return append(buffer, t.Resource.Raw[:]...), nil

	case CreateProofFromBucketOfAmount:
		buffer = value.PackTransient(buffer, t.Bucket)
		return appendDecimal(buffer, t.Amount), nil

	case CreateProofFromBucketOfNonFungibles:
		buffer = value.PackTransient(buffer, t.Bucket)
		return appendLocalIDs(buffer, t.IDs), nil

	case CreateProofFromBucketOfAll:
		return value.PackTransient(buffer, t.Bucket), nil

	case BurnResource:
		return value.PackTransient(buffer, t.Bucket), nil

	case CloneProof:
		return value.PackTransient(buffer, t.Proof), nil
	case DropProof:
		return value.PackTransient(buffer, t.Proof), nil
	case DropAllProofs:
		return buffer, nil

	case AllocateGlobalAddress:
		buffer = append(buffer, t.Package.Raw[:]...)
		return appendString(buffer, t.BlueprintName), nil

	default:
		fault.Panicf("instruction.Pack: unhandled variant: %T", ins)
		return nil, nil
	}
}

func packCall(buffer Packed, target address.Dynamic, method string, args []value.Value) (Packed, error) {
	buffer, err := appendDynamic(buffer, target)
	if nil != err {
		return nil, err
	}
	buffer = appendString(buffer, method)
	return appendArgs(buffer, args)
}

func appendDynamic(buffer Packed, d address.Dynamic) (Packed, error) {
	switch t := d.(type) {
	case address.Static:
		buffer = append(buffer, dynamicStatic)
		return append(buffer, t.Raw[:]...), nil
	case address.Named:
		buffer = append(buffer, dynamicNamed)
		return binary.LittleEndian.AppendUint32(buffer, uint32(t)), nil
	default:
		return nil, fault.ErrNotInstructionPack
	}
}

func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

func appendDecimal(buffer Packed, d decimal.Decimal) Packed {
	return appendString(buffer, d.String())
}

func appendLocalIDs(buffer Packed, ids []value.LocalID) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(ids)))...)
	for _, id := range ids {
		buffer = value.PackLocalID(buffer, id)
	}
	return buffer
}

func appendArgs(buffer Packed, args []value.Value) (Packed, error) {
	buffer = append(buffer, util.ToVarint64(uint64(len(args)))...)
	for _, arg := range args {
		packed, err := value.Pack(arg)
		if nil != err {
			return nil, err
		}
		buffer = append(buffer, packed...)
	}
	return buffer, nil
}

// PackInstructions - pack a whole instruction list as one record
//
// layout: varint count then the packed instructions back to back
func PackInstructions(list []Instruction) (Packed, error) {
	buffer := Packed(util.ToVarint64(uint64(len(list))))
	for _, ins := range list {
		packed, err := Pack(ins)
		if nil != err {
			return nil, err
		}
		buffer = append(buffer, packed...)
	}
	return buffer, nil
}

// UnpackInstructions - inverse of PackInstructions
//
// trailing bytes after the final instruction are an error
func UnpackInstructions(buffer []byte, networkID network.ID) ([]Instruction, error) {
	count, countLength := util.ClippedVarint64(buffer, 0, maxListLength)
	if 0 == countLength {
		return nil, fault.ErrNotInstructionPack
	}
	n := countLength
	list := make([]Instruction, 0, count)
	for i := 0; i < count; i += 1 {
		ins, used, err := Packed(buffer[n:]).Unpack(networkID)
		if nil != err {
			return nil, err
		}
		list = append(list, ins)
		n += used
	}
	if n != len(buffer) {
		return nil, fault.ErrNotInstructionPack
	}
	return list, nil
}

// Unpack - turn a byte slice into an instruction
//
// also returns the number of bytes consumed; truncated or malformed
// input yields ErrNotInstructionPack
func (record Packed) Unpack(networkID network.ID) (ins Instruction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			ins = nil
			n = 0
			e = fault.ErrNotInstructionPack
		}
	}()

	if 0 == len(record) {
		return nil, 0, fault.ErrNotInstructionPack
	}
	tag := Tag(record[0])
	if !tag.IsValid() {
		return nil, 0, fault.ErrNotInstructionPack
	}
	u := &unpacker{buffer: record, n: 1, networkID: networkID}

	switch tag {

	case TagCallMethod:
		target, method, args := u.call()
		return CallMethod{Address: target, MethodName: method, Args: args}, u.n, u.err
	case TagCallRoyaltyMethod:
		target, method, args := u.call()
		return CallRoyaltyMethod{Address: target, MethodName: method, Args: args}, u.n, u.err
	case TagCallMetadataMethod:
		target, method, args := u.call()
		return CallMetadataMethod{Address: target, MethodName: method, Args: args}, u.n, u.err
	case TagCallRoleAssignmentMethod:
		target, method, args := u.call()
		return CallRoleAssignmentMethod{Address: target, MethodName: method, Args: args}, u.n, u.err

	case TagCallFunction:
		target := u.dynamic()
		blueprint := u.string()
		function := u.string()
		args := u.args()
		return CallFunction{
			PackageAddress: target,
			BlueprintName:  blueprint,
			FunctionName:   function,
			Args:           args,
		}, u.n, u.err

	case TagCallDirectVaultMethod:
		vault := u.address()
		if nil == u.err && !vault.IsVault() {
			u.err = fault.ErrNotInstructionPack
		}
		method := u.string()
		args := u.args()
		return CallDirectVaultMethod{Address: vault, MethodName: method, Args: args}, u.n, u.err

	case TagTakeFromWorktop:
		resource := u.resource()
		amount := u.decimal()
		return TakeFromWorktop{Resource: resource, Amount: amount}, u.n, u.err

	case TagTakeNonFungiblesFromWorktop:
		resource := u.resource()
		ids := u.localIDs()
		return TakeNonFungiblesFromWorktop{Resource: resource, IDs: ids}, u.n, u.err

	case TagTakeAllFromWorktop:
		return TakeAllFromWorktop{Resource: u.resource()}, u.n, u.err

	case TagReturnToWorktop:
		return ReturnToWorktop{Bucket: u.transient()}, u.n, u.err

	case TagAssertWorktopContainsAny:
		return AssertWorktopContainsAny{Resource: u.resource()}, u.n, u.err

	case TagAssertWorktopContains:
		resource := u.resource()
		amount := u.decimal()
		return AssertWorktopContains{Resource: resource, Amount: amount}, u.n, u.err

	case TagAssertWorktopContainsNonFungibles:
		resource := u.resource()
		ids := u.localIDs()
		return AssertWorktopContainsNonFungibles{Resource: resource, IDs: ids}, u.n, u.err

	case TagPopFromAuthZone:
		return PopFromAuthZone{}, u.n, u.err
	case TagPushToAuthZone:
		return PushToAuthZone{Proof: u.transient()}, u.n, u.err
	case TagDropAuthZoneProofs:
		return DropAuthZoneProofs{}, u.n, u.err

	case TagCreateProofFromAuthZoneOfAmount:
		resource := u.resource()
		amount := u.decimal()
		return CreateProofFromAuthZoneOfAmount{Resource: resource, Amount: amount}, u.n, u.err

	case TagCreateProofFromAuthZoneOfNonFungibles:
		resource := u.resource()
		ids := u.localIDs()
		return CreateProofFromAuthZoneOfNonFungibles{Resource: resource, IDs: ids}, u.n, u.err

	case TagCreateProofFromAuthZoneOfAll:
		return CreateProofFromAuthZoneOfAll{Resource: u.resource()}, u.n, u.err

	case TagCreateProofFromBucketOfAmount:
		bucket := u.transient()
		amount := u.decimal()
		return CreateProofFromBucketOfAmount{Bucket: bucket, Amount: amount}, u.n, u.err

	case TagCreateProofFromBucketOfNonFungibles:
		bucket := u.transient()
		ids := u.localIDs()
		return CreateProofFromBucketOfNonFungibles{Bucket: bucket, IDs: ids}, u.n, u.err

	case TagCreateProofFromBucketOfAll:
		return CreateProofFromBucketOfAll{Bucket: u.transient()}, u.n, u.err

	case TagBurnResource:
		return BurnResource{Bucket: u.transient()}, u.n, u.err

	case TagCloneProof:
		return CloneProof{Proof: u.transient()}, u.n, u.err
	case TagDropProof:
		return DropProof{Proof: u.transient()}, u.n, u.err
	case TagDropAllProofs:
		return DropAllProofs{}, u.n, u.err

	case TagAllocateGlobalAddress:
		pkg := u.address()
		if nil == u.err && address.Package != pkg.EntityType() {
			u.err = fault.ErrNotInstructionPack
		}
		blueprint := u.string()
		return AllocateGlobalAddress{Package: pkg, BlueprintName: blueprint}, u.n, u.err

	default:
		return nil, 0, fault.ErrNotInstructionPack
	}
}

// unpacker - sequential operand reader
//
// the first error sticks and every later read becomes a no-op, so the
// per-tag cases above can stay linear
type unpacker struct {
	buffer    Packed
	n         int
	networkID network.ID
	err       error
}

func (u *unpacker) fail() {
	if nil == u.err {
		u.err = fault.ErrNotInstructionPack
	}
}

func (u *unpacker) string() string {
	if nil != u.err {
		return ""
	}
	length, lengthOffset := util.ClippedVarint64(u.buffer[u.n:], 0, maxStringLength)
	if 0 == lengthOffset {
		u.fail()
		return ""
	}
	u.n += lengthOffset
	if u.n+length > len(u.buffer) {
		u.fail()
		return ""
	}
	s := string(u.buffer[u.n : u.n+length])
	u.n += length
	return s
}

func (u *unpacker) decimal() decimal.Decimal {
	s := u.string()
	if nil != u.err {
		return decimal.Decimal{}
	}
	d, err := value.DecimalFromString(s)
	if nil != err {
		u.fail()
		return decimal.Decimal{}
	}
	return d
}

func (u *unpacker) address() address.Address {
	if nil != u.err {
		return address.Address{}
	}
	if u.n+address.RawSize > len(u.buffer) {
		u.fail()
		return address.Address{}
	}
	a, err := address.FromBytes(u.buffer[u.n:u.n+address.RawSize], u.networkID)
	if nil != err {
		u.fail()
		return address.Address{}
	}
	u.n += address.RawSize
	return a
}

func (u *unpacker) resource() address.Address {
	a := u.address()
	if nil == u.err && !a.IsResource() {
		u.fail()
		return address.Address{}
	}
	return a
}

func (u *unpacker) dynamic() address.Dynamic {
	if nil != u.err {
		return nil
	}
	if u.n >= len(u.buffer) {
		u.fail()
		return nil
	}
	form := u.buffer[u.n]
	u.n += 1
	switch form {
	case dynamicStatic:
		a := u.address()
		if nil != u.err {
			return nil
		}
		return address.Static{Address: a}
	case dynamicNamed:
		if u.n+4 > len(u.buffer) {
			u.fail()
			return nil
		}
		id := binary.LittleEndian.Uint32(u.buffer[u.n : u.n+4])
		u.n += 4
		return address.Named(id)
	default:
		u.fail()
		return nil
	}
}

func (u *unpacker) transient() value.TransientID {
	if nil != u.err {
		return value.TransientID{}
	}
	id, used, err := value.UnpackTransient(u.buffer[u.n:])
	if nil != err {
		u.fail()
		return value.TransientID{}
	}
	u.n += used
	return id
}

func (u *unpacker) localIDs() []value.LocalID {
	if nil != u.err {
		return nil
	}
	count, countLength := util.ClippedVarint64(u.buffer[u.n:], 0, maxListLength)
	if 0 == countLength {
		u.fail()
		return nil
	}
	u.n += countLength
	ids := make([]value.LocalID, 0, count)
	for i := 0; i < count; i += 1 {
		id, used, err := value.UnpackLocalID(u.buffer[u.n:])
		if nil != err {
			u.fail()
			return nil
		}
		ids = append(ids, id)
		u.n += used
	}
	if 0 == len(ids) {
		ids = nil
	}
	return ids
}

func (u *unpacker) args() []value.Value {
	if nil != u.err {
		return nil
	}
	count, countLength := util.ClippedVarint64(u.buffer[u.n:], 0, maxListLength)
	if 0 == countLength {
		u.fail()
		return nil
	}
	u.n += countLength
	args := make([]value.Value, 0, count)
	for i := 0; i < count; i += 1 {
		arg, used, err := value.Packed(u.buffer[u.n:]).Unpack(u.networkID)
		if nil != err {
			u.fail()
			return nil
		}
		args = append(args, arg)
		u.n += used
	}
	if 0 == len(args) {
		args = nil
	}
	return args
}

func (u *unpacker) call() (address.Dynamic, string, []value.Value) {
	target := u.dynamic()
	method := u.string()
	args := u.args()
	return target, method, args
}
