// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"bytes"
	"sort"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
	"github.com/meridian-inc/manifestkit/util"
	"github.com/meridian-inc/manifestkit/value"
)

// Packed - a packed receipt is just a byte slice
type Packed []byte

// limits to stop malformed lengths from exhausting memory
const (
	maxStringLength = 1048576
	maxListLength   = 1048576
)

// quantifier form byte
const (
	quantifierAmount byte = 0x00
	quantifierIDs    byte = 0x01
)

// metadata presence byte
const (
	metadataRemoved byte = 0x00
	metadataPresent byte = 0x01
)

// Pack - convert a receipt to its wire form
//
// maps are emitted in sorted key order so the output is deterministic;
// mainly used by tests and simulators, ledger nodes produce receipts
// natively
func (r *Receipt) Pack() (Packed, error) {
	if !r.Status.IsValid() {
		return nil, fault.ErrNotReceiptPack
	}
	buffer := Packed{byte(r.Status)}

	// worktop changes
	indexes := make([]int, 0, len(r.WorktopChanges))
	for index := range r.WorktopChanges {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)
	buffer = append(buffer, util.ToVarint64(uint64(len(indexes)))...)
	for _, index := range indexes {
		buffer = append(buffer, util.ToVarint64(uint64(index))...)
		changes := r.WorktopChanges[index]
		buffer = append(buffer, util.ToVarint64(uint64(len(changes)))...)
		for _, change := range changes {
			buffer = append(buffer, byte(change.Direction))
			buffer = appendQuantifier(buffer, change.Quantifier)
		}
	}

	buffer = appendAddresses(buffer, r.NewEntities.ComponentAddresses)
	buffer = appendAddresses(buffer, r.NewEntities.ResourceAddresses)
	buffer = appendAddresses(buffer, r.NewEntities.PackageAddresses)

	// metadata of new entities
	entities := sortedRaws(len(r.NewEntities.Metadata))
	for raw := range r.NewEntities.Metadata {
		entities = append(entities, raw)
	}
	sort.Slice(entities, func(i, j int) bool {
		return bytes.Compare(entities[i][:], entities[j][:]) < 0
	})
	buffer = append(buffer, util.ToVarint64(uint64(len(entities)))...)
	for _, raw := range entities {
		buffer = append(buffer, raw[:]...)
		pairs := r.NewEntities.Metadata[raw]
		keys := make([]string, 0, len(pairs))
		for key := range pairs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		buffer = append(buffer, util.ToVarint64(uint64(len(keys)))...)
		for _, key := range keys {
			buffer = appendString(buffer, key)
			v := pairs[key]
			if nil == v {
				buffer = append(buffer, metadataRemoved)
				continue
			}
			buffer = append(buffer, metadataPresent)
			packed, err := value.Pack(v)
			if nil != err {
				return nil, err
			}
			buffer = append(buffer, packed...)
		}
	}

	// minted non-fungible data
	resources := sortedRaws(len(r.NewEntities.MintedNonFungibles))
	for raw := range r.NewEntities.MintedNonFungibles {
		resources = append(resources, raw)
	}
	sort.Slice(resources, func(i, j int) bool {
		return bytes.Compare(resources[i][:], resources[j][:]) < 0
	})
	buffer = append(buffer, util.ToVarint64(uint64(len(resources)))...)
	for _, raw := range resources {
		buffer = append(buffer, raw[:]...)
		byID := r.NewEntities.MintedNonFungibles[raw]
		ids := make([]value.LocalID, 0, len(byID))
		for id := range byID {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			return ids[i].String() < ids[j].String()
		})
		buffer = append(buffer, util.ToVarint64(uint64(len(ids)))...)
		for _, id := range ids {
			buffer = value.PackLocalID(buffer, id)
			data := byID[id]
			buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
			buffer = append(buffer, data...)
		}
	}

	return buffer, nil
}

func sortedRaws(capacity int) []address.Raw {
	return make([]address.Raw, 0, capacity)
}

func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

func appendAddresses(buffer Packed, list []address.Address) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(list)))...)
	for _, a := range list {
		buffer = append(buffer, a.Raw[:]...)
	}
	return buffer
}

func appendQuantifier(buffer Packed, q ResourceQuantifier) Packed {
	buffer = append(buffer, q.Resource.Raw[:]...)
	switch q.Kind {
	case QuantifierIDs:
		buffer = append(buffer, quantifierIDs)
		buffer = append(buffer, util.ToVarint64(uint64(len(q.IDs)))...)
		for _, id := range q.IDs {
			buffer = value.PackLocalID(buffer, id)
		}
		return buffer
	default:
		buffer = append(buffer, quantifierAmount)
		return appendString(buffer, q.Amount.String())
	}
}

// ReceiptFromBytes - decode a packed receipt
//
// trailing bytes after the receipt are an error; the network id is
// attached to every address since the wire form carries none
func ReceiptFromBytes(buffer []byte, networkID network.ID) (*Receipt, error) {
	u := &unpacker{buffer: buffer, networkID: networkID}

	status := Status(u.byte())
	if nil == u.err && !status.IsValid() {
		u.err = fault.ErrNotReceiptPack
	}

	r := &Receipt{Status: status}

	changeCount := u.count()
	if changeCount > 0 {
		r.WorktopChanges = make(map[int][]WorktopChange, changeCount)
	}
	for i := 0; i < changeCount; i += 1 {
		index := u.count()
		perInstruction := u.count()
		changes := make([]WorktopChange, 0, perInstruction)
		for j := 0; j < perInstruction; j += 1 {
			direction := ChangeDirection(u.byte())
			if nil == u.err && Put != direction && Take != direction {
				u.err = fault.ErrNotReceiptPack
			}
			changes = append(changes, WorktopChange{
				Direction:  direction,
				Quantifier: u.quantifier(),
			})
		}
		if nil != u.err {
			return nil, u.err
		}
		r.WorktopChanges[index] = changes
	}

	r.NewEntities.ComponentAddresses = u.addresses()
	r.NewEntities.ResourceAddresses = u.addresses()
	r.NewEntities.PackageAddresses = u.addresses()

	entityCount := u.count()
	if entityCount > 0 {
		r.NewEntities.Metadata = make(map[address.Raw]map[string]value.Value, entityCount)
	}
	for i := 0; i < entityCount; i += 1 {
		entity := u.address()
		pairCount := u.count()
		pairs := make(map[string]value.Value, pairCount)
		for j := 0; j < pairCount; j += 1 {
			key := u.string()
			switch u.byte() {
			case metadataRemoved:
				pairs[key] = nil
			case metadataPresent:
				pairs[key] = u.value()
			default:
				if nil == u.err {
					u.err = fault.ErrNotReceiptPack
				}
			}
		}
		if nil != u.err {
			return nil, u.err
		}
		r.NewEntities.Metadata[entity.Raw] = pairs
	}

	resourceCount := u.count()
	if resourceCount > 0 {
		r.NewEntities.MintedNonFungibles = make(map[address.Raw]map[value.LocalID][]byte, resourceCount)
	}
	for i := 0; i < resourceCount; i += 1 {
		resource := u.address()
		if nil == u.err && !resource.IsResource() {
			u.err = fault.ErrNotReceiptPack
		}
		idCount := u.count()
		byID := make(map[value.LocalID][]byte, idCount)
		for j := 0; j < idCount; j += 1 {
			id := u.localID()
			byID[id] = u.bytes()
		}
		if nil != u.err {
			return nil, u.err
		}
		r.NewEntities.MintedNonFungibles[resource.Raw] = byID
	}

	if nil != u.err {
		return nil, u.err
	}
	if u.n != len(buffer) {
		return nil, fault.ErrNotReceiptPack
	}
	return r, nil
}

// unpacker - sequential field reader, first error sticks
type unpacker struct {
	buffer    []byte
	n         int
	networkID network.ID
	err       error
}

func (u *unpacker) fail() {
	if nil == u.err {
		u.err = fault.ErrNotReceiptPack
	}
}

func (u *unpacker) byte() byte {
	if nil != u.err {
		return 0
	}
	if u.n >= len(u.buffer) {
		u.fail()
		return 0
	}
	b := u.buffer[u.n]
	u.n += 1
	return b
}

func (u *unpacker) count() int {
	if nil != u.err {
		return 0
	}
	count, countLength := util.ClippedVarint64(u.buffer[u.n:], 0, maxListLength)
	if 0 == countLength {
		u.fail()
		return 0
	}
	u.n += countLength
	return count
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

func (u *unpacker) bytes() []byte {
	if nil != u.err {
		return nil
	}
	length, lengthOffset := util.ClippedVarint64(u.buffer[u.n:], 0, maxStringLength)
	if 0 == lengthOffset {
		u.fail()
		return nil
	}
	u.n += lengthOffset
	if u.n+length > len(u.buffer) {
		u.fail()
		return nil
	}
	b := make([]byte, length)
	copy(b, u.buffer[u.n:u.n+length])
	u.n += length
	return b
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

func (u *unpacker) addresses() []address.Address {
	count := u.count()
	if nil != u.err || 0 == count {
		return nil
	}
	list := make([]address.Address, 0, count)
	for i := 0; i < count; i += 1 {
		list = append(list, u.address())
	}
	if nil != u.err {
		return nil
	}
	return list
}

func (u *unpacker) localID() value.LocalID {
	if nil != u.err {
		return value.LocalID{}
	}
	id, used, err := value.UnpackLocalID(u.buffer[u.n:])
	if nil != err {
		u.fail()
		return value.LocalID{}
	}
	u.n += used
	return id
}

func (u *unpacker) value() value.Value {
	if nil != u.err {
		return nil
	}
	v, used, err := value.Packed(u.buffer[u.n:]).Unpack(u.networkID)
	if nil != err {
		u.fail()
		return nil
	}
	u.n += used
	return v
}

func (u *unpacker) quantifier() ResourceQuantifier {
	resource := u.address()
	if nil == u.err && !resource.IsResource() {
		u.fail()
	}
	switch u.byte() {
	case quantifierAmount:
		s := u.string()
		if nil != u.err {
			return ResourceQuantifier{}
		}
		amount, err := value.DecimalFromString(s)
		if nil != err {
			u.fail()
			return ResourceQuantifier{}
		}
		return AmountQuantifier(resource, amount)

	case quantifierIDs:
		count := u.count()
		ids := make([]value.LocalID, 0, count)
		for i := 0; i < count; i += 1 {
			ids = append(ids, u.localID())
		}
		if nil != u.err {
			return ResourceQuantifier{}
		}
		if 0 == len(ids) {
			ids = nil
		}
		return IDsQuantifier(resource, ids)

	default:
		u.fail()
		return ResourceQuantifier{}
	}
}
