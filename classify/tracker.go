// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/instruction"
	"github.com/meridian-inc/manifestkit/receipt"
	"github.com/meridian-inc/manifestkit/value"
)

// trackerVisitor - follows resources across the worktop boundary
//
// buckets are created by the take instructions and numbered in
// creation order, matching the wire representation of bucket handles.
// Amounts the manifest does not state are resolved from the receipt
// when one is available and otherwise recorded as unresolved
// predictions.
type trackerVisitor struct {
	rcpt *receipt.Receipt

	bucketCounter uint32
	buckets       map[value.TransientID]ResourceTracker

	withdrawAccounts map[address.Raw]address.Address
	withdraws        map[address.Raw][]ResourceTracker

	depositAccounts map[address.Raw]address.Address
	deposits        map[address.Raw][]ResourceTracker
}

func newTrackerVisitor(rcpt *receipt.Receipt) *trackerVisitor {
	return &trackerVisitor{
		rcpt:             rcpt,
		buckets:          make(map[value.TransientID]ResourceTracker),
		withdrawAccounts: make(map[address.Raw]address.Address),
		withdraws:        make(map[address.Raw][]ResourceTracker),
		depositAccounts:  make(map[address.Raw]address.Address),
		deposits:         make(map[address.Raw][]ResourceTracker),
	}
}

func (v *trackerVisitor) newBucket(contents ResourceTracker) {
	id := value.IndexedID(v.bucketCounter)
	v.bucketCounter += 1
	v.buckets[id] = contents
}

// worktopTakes - receipt movements out of the worktop at an
// instruction, nil without a receipt
func (v *trackerVisitor) worktopTakes(index int) []receipt.ResourceQuantifier {
	if nil == v.rcpt {
		return nil
	}
	var out []receipt.ResourceQuantifier
	for _, change := range v.rcpt.WorktopChanges[index] {
		if receipt.Take == change.Direction {
			out = append(out, change.Quantifier)
		}
	}
	return out
}

func quantifierTracker(q receipt.ResourceQuantifier, index int) ResourceTracker {
	if receipt.QuantifierIDs == q.Kind {
		return ResourceTracker{
			Resource:    q.Resource,
			NonFungible: true,
			Amount:      Predicted(decimal.NewFromInt(int64(len(q.IDs))), index),
			IDs:         Predicted(q.IDs, index),
		}
	}
	return ResourceTracker{
		Resource: q.Resource,
		Amount:   Predicted(q.Amount, index),
	}
}

func (v *trackerVisitor) VisitInstruction(index int, ins instruction.Instruction) error {

	if a, method, args, ok := accountCall(ins); ok {
		switch {
		case accountWithdrawMethods[method]:
			spec, ok := withdrawSpec(method, args)
			if !ok {
				return nil
			}
			tracker := ResourceTracker{
				Resource:    spec.Resource,
				NonFungible: spec.NonFungible,
				Amount:      Guaranteed(spec.Amount),
			}
			if spec.NonFungible {
				tracker.IDs = Guaranteed(spec.IDs)
			}
			v.withdrawAccounts[a.Raw] = a
			v.withdraws[a.Raw] = append(v.withdraws[a.Raw], tracker)

		case accountDepositMethods[method]:
			buckets, entireWorktop := collectBuckets(args)
			v.depositAccounts[a.Raw] = a
			for _, id := range buckets {
				contents, ok := v.buckets[id]
				if !ok {
					continue
				}
				delete(v.buckets, id)
				v.deposits[a.Raw] = append(v.deposits[a.Raw], contents)
			}
			if entireWorktop {
				for _, q := range v.worktopTakes(index) {
					v.deposits[a.Raw] = append(v.deposits[a.Raw], quantifierTracker(q, index))
				}
			}
		}
		return nil
	}

	switch t := ins.(type) {

	case instruction.TakeFromWorktop:
		v.newBucket(ResourceTracker{
			Resource: t.Resource,
			Amount:   Guaranteed(t.Amount),
		})

	case instruction.TakeNonFungiblesFromWorktop:
		v.newBucket(ResourceTracker{
			Resource:    t.Resource,
			NonFungible: true,
			Amount:      Guaranteed(decimal.NewFromInt(int64(len(t.IDs)))),
			IDs:         Guaranteed(t.IDs),
		})

	case instruction.TakeAllFromWorktop:
		// the amount is only known after execution
		contents := ResourceTracker{
			Resource: t.Resource,
			Amount:   Predicted(decimal.Decimal{}, index),
		}
		for _, q := range v.worktopTakes(index) {
			if q.Resource.SameAs(t.Resource) {
				contents = quantifierTracker(q, index)
				break
			}
		}
		v.newBucket(contents)

	case instruction.ReturnToWorktop:
		delete(v.buckets, t.Bucket)

	case instruction.BurnResource:
		delete(v.buckets, t.Bucket)

	default:
		// buckets handed to any other call are consumed by it
		for _, arg := range callArgs(ins) {
			buckets, _ := collectBuckets([]value.Value{arg})
			for _, id := range buckets {
				delete(v.buckets, id)
			}
		}
	}
	return nil
}

func callArgs(ins instruction.Instruction) []value.Value {
	switch t := ins.(type) {
	case instruction.CallMethod:
		return t.Args
	case instruction.CallFunction:
		return t.Args
	case instruction.CallRoyaltyMethod:
		return t.Args
	case instruction.CallMetadataMethod:
		return t.Args
	case instruction.CallRoleAssignmentMethod:
		return t.Args
	case instruction.CallDirectVaultMethod:
		return t.Args
	default:
		return nil
	}
}
