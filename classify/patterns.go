// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/instruction"
	"github.com/meridian-inc/manifestkit/network"
	"github.com/meridian-inc/manifestkit/receipt"
	"github.com/meridian-inc/manifestkit/value"
)

// pattern matchers
//
// each matcher re-reads the instruction list and either reconstructs
// its shape completely or rejects; a partial match is a rejection.
// Named addresses reject every pattern because the call helpers only
// accept static addresses.

// patternBucket - bucket contents as far as the manifest states them
type patternBucket struct {
	resource    address.Address
	amount      decimal.Decimal
	ids         []value.LocalID
	nonFungible bool
}

// bucketSink - shared bucket bookkeeping for the matchers; buckets are
// numbered in creation order as on the wire
type bucketSink struct {
	counter uint32
	open    map[value.TransientID]patternBucket
}

func newBucketSink() *bucketSink {
	return &bucketSink{open: make(map[value.TransientID]patternBucket)}
}

func (s *bucketSink) create(b patternBucket) {
	s.open[value.IndexedID(s.counter)] = b
	s.counter += 1
}

func (s *bucketSink) consume(id value.TransientID) (patternBucket, bool) {
	b, ok := s.open[id]
	if ok {
		delete(s.open, id)
	}
	return b, ok
}

// standaloneLockFee - a plain fee lock with no combined withdraw
func standaloneLockFee(ins instruction.Instruction) (address.Address, bool) {
	a, method, _, ok := accountCall(ins)
	if !ok {
		return address.Address{}, false
	}
	if MethodLockFee != method && MethodLockContingentFee != method {
		return address.Address{}, false
	}
	return a, true
}

// soleBucketArg - exactly one bucket and nothing else bucket-like
func soleBucketArg(args []value.Value) (value.TransientID, bool) {
	buckets, entireWorktop := collectBuckets(args)
	if entireWorktop || 1 != len(buckets) {
		return value.TransientID{}, false
	}
	return buckets[0], true
}

// entireWorktopDeposit - a batch deposit of the whole worktop into an
// account
func entireWorktopDeposit(ins instruction.Instruction) (address.Address, bool) {
	a, method, args, ok := accountCall(ins)
	if !ok {
		return address.Address{}, false
	}
	if MethodDepositBatch != method && MethodTryDepositBatchOrAbort != method {
		return address.Address{}, false
	}
	buckets, entireWorktop := collectBuckets(args)
	if !entireWorktop || 0 != len(buckets) {
		return address.Address{}, false
	}
	return a, true
}

func matchSimpleTransfer(list []instruction.Instruction) (*SimpleTransfer, bool) {
	i := 0
	next := func() (instruction.Instruction, bool) {
		if i >= len(list) {
			return nil, false
		}
		ins := list[i]
		i += 1
		return ins, true
	}

	ins, ok := next()
	if !ok {
		return nil, false
	}

	// optional standalone fee lock, must be on the sending account
	lockAccount, haveLock := standaloneLockFee(ins)
	if haveLock {
		ins, ok = next()
		if !ok {
			return nil, false
		}
	}

	from, method, args, ok := accountCall(ins)
	if !ok || !accountWithdrawMethods[method] {
		return nil, false
	}
	if haveLock {
		// a combined fee-and-withdraw after a standalone lock is not
		// the simple shape
		if accountLockFeeMethods[method] || !lockAccount.SameAs(from) {
			return nil, false
		}
	}
	spec, ok := withdrawSpec(method, args)
	if !ok {
		return nil, false
	}

	ins, ok = next()
	if !ok {
		return nil, false
	}
	switch t := ins.(type) {
	case instruction.TakeFromWorktop:
		if spec.NonFungible || !t.Resource.SameAs(spec.Resource) || !t.Amount.Equal(spec.Amount) {
			return nil, false
		}
	case instruction.TakeNonFungiblesFromWorktop:
		if !spec.NonFungible || !t.Resource.SameAs(spec.Resource) || !sameIDSet(t.IDs, spec.IDs) {
			return nil, false
		}
	default:
		return nil, false
	}

	ins, ok = next()
	if !ok {
		return nil, false
	}
	to, method, args, ok := accountCall(ins)
	if !ok || (MethodDeposit != method && MethodTryDepositOrAbort != method) {
		return nil, false
	}
	bucket, ok := soleBucketArg(args)
	if !ok || value.IndexedID(0) != bucket {
		return nil, false
	}

	if i != len(list) {
		return nil, false
	}
	return &SimpleTransfer{From: from, To: to, Transferred: spec}, true
}

func matchTransfer(list []instruction.Instruction) (*Transfer, bool) {
	var from address.Address
	haveFrom := false
	sink := newBucketSink()
	transfers := make(map[address.Raw]map[address.Raw]Resources)

	addDeposit := func(to address.Address, b patternBucket) {
		byResource, ok := transfers[to.Raw]
		if !ok {
			byResource = make(map[address.Raw]Resources)
			transfers[to.Raw] = byResource
		}
		r := byResource[b.resource.Raw]
		r.NonFungible = b.nonFungible
		r.Amount = r.Amount.Add(b.amount)
		r.IDs = append(r.IDs, b.ids...)
		byResource[b.resource.Raw] = r
	}

	for _, ins := range list {
		if a, method, args, ok := accountCall(ins); ok {
			switch {
			case MethodLockFee == method, MethodLockContingentFee == method:
				// fee locks are orthogonal to the transfer shape

			case accountWithdrawMethods[method]:
				if _, ok := withdrawSpec(method, args); !ok {
					return nil, false
				}
				if haveFrom && !from.SameAs(a) {
					return nil, false
				}
				from = a
				haveFrom = true

			case accountDepositMethods[method]:
				buckets, entireWorktop := collectBuckets(args)
				if entireWorktop || 0 == len(buckets) {
					return nil, false
				}
				for _, id := range buckets {
					b, ok := sink.consume(id)
					if !ok {
						return nil, false
					}
					addDeposit(a, b)
				}

			default:
				return nil, false
			}
			continue
		}

		switch t := ins.(type) {
		case instruction.TakeFromWorktop:
			sink.create(patternBucket{resource: t.Resource, amount: t.Amount})
		case instruction.TakeNonFungiblesFromWorktop:
			sink.create(patternBucket{
				resource:    t.Resource,
				amount:      decimal.NewFromInt(int64(len(t.IDs))),
				ids:         t.IDs,
				nonFungible: true,
			})
		default:
			return nil, false
		}
	}

	if !haveFrom || 0 == len(transfers) {
		return nil, false
	}
	return &Transfer{From: from, Transfers: transfers}, true
}

// worktopPut - the single receipt movement onto the worktop at an
// instruction
func worktopPut(rcpt *receipt.Receipt, index int) (receipt.ResourceQuantifier, bool) {
	var found receipt.ResourceQuantifier
	count := 0
	for _, change := range rcpt.WorktopChanges[index] {
		if receipt.Put == change.Direction {
			found = change.Quantifier
			count += 1
		}
	}
	return found, 1 == count
}

func matchStake(list []instruction.Instruction, rcpt *receipt.Receipt) (*Stake, bool) {
	if nil == rcpt {
		return nil, false
	}

	var from address.Address
	haveFrom := false
	sink := newBucketSink()
	var stakes []StakeInformation

	last := len(list) - 1
	if last < 1 {
		return nil, false
	}

	for index := 0; index < last; index += 1 {
		ins := list[index]

		if a, method, args, ok := accountCall(ins); ok {
			switch {
			case MethodLockFee == method, MethodLockContingentFee == method:

			case accountWithdrawMethods[method]:
				spec, ok := withdrawSpec(method, args)
				if !ok || spec.NonFungible || !IsXRD(spec.Resource) {
					return nil, false
				}
				if haveFrom && !from.SameAs(a) {
					return nil, false
				}
				from = a
				haveFrom = true

			default:
				return nil, false
			}
			continue
		}

		if take, ok := ins.(instruction.TakeFromWorktop); ok {
			if !IsXRD(take.Resource) {
				return nil, false
			}
			sink.create(patternBucket{resource: take.Resource, amount: take.Amount})
			continue
		}

		validator, method, args, ok := validatorCall(ins)
		if !ok || MethodStake != method {
			return nil, false
		}
		id, ok := soleBucketArg(args)
		if !ok {
			return nil, false
		}
		b, ok := sink.consume(id)
		if !ok {
			return nil, false
		}
		put, ok := worktopPut(rcpt, index)
		if !ok || receipt.QuantifierAmount != put.Kind {
			return nil, false
		}
		stakes = append(stakes, StakeInformation{
			FromAccount:       from,
			Validator:         validator,
			StakedAmount:      b.amount,
			StakeUnitResource: put.Resource,
			StakeUnitAmount:   Predicted(put.Amount, index),
		})
	}

	if !haveFrom || 0 == len(stakes) {
		return nil, false
	}
	to, ok := entireWorktopDeposit(list[last])
	if !ok || !to.SameAs(from) {
		return nil, false
	}
	return &Stake{Stakes: stakes}, true
}

func matchUnstake(list []instruction.Instruction, rcpt *receipt.Receipt, networkID network.ID) (*Unstake, bool) {
	if nil == rcpt {
		return nil, false
	}

	var from address.Address
	haveFrom := false
	sink := newBucketSink()
	var unstakes []UnstakeInformation

	last := len(list) - 1
	if last < 1 {
		return nil, false
	}

	for index := 0; index < last; index += 1 {
		ins := list[index]

		if a, method, args, ok := accountCall(ins); ok {
			switch {
			case MethodLockFee == method, MethodLockContingentFee == method:

			case accountWithdrawMethods[method]:
				spec, ok := withdrawSpec(method, args)
				if !ok || spec.NonFungible || IsXRD(spec.Resource) {
					return nil, false
				}
				if haveFrom && !from.SameAs(a) {
					return nil, false
				}
				from = a
				haveFrom = true

			default:
				return nil, false
			}
			continue
		}

		if take, ok := ins.(instruction.TakeFromWorktop); ok {
			if IsXRD(take.Resource) {
				return nil, false
			}
			sink.create(patternBucket{resource: take.Resource, amount: take.Amount})
			continue
		}

		validator, method, args, ok := validatorCall(ins)
		if !ok || MethodUnstake != method {
			return nil, false
		}
		id, ok := soleBucketArg(args)
		if !ok {
			return nil, false
		}
		b, ok := sink.consume(id)
		if !ok {
			return nil, false
		}
		put, ok := worktopPut(rcpt, index)
		if !ok || receipt.QuantifierIDs != put.Kind {
			return nil, false
		}
		for _, claimID := range put.IDs {
			data, ok := rcpt.MintedData(put.Resource, claimID)
			if !ok {
				return nil, false
			}
			decoded, err := DecodeUnstakeData(data, networkID)
			if nil != err {
				return nil, false
			}
			unstakes = append(unstakes, UnstakeInformation{
				FromAccount:       from,
				Validator:         validator,
				StakeUnitResource: b.resource,
				StakeUnitAmount:   b.amount,
				ClaimNftResource:  put.Resource,
				ClaimNftLocalID:   claimID,
				ClaimNftData:      decoded,
			})
		}
	}

	if !haveFrom || 0 == len(unstakes) {
		return nil, false
	}
	to, ok := entireWorktopDeposit(list[last])
	if !ok || !to.SameAs(from) {
		return nil, false
	}
	return &Unstake{Unstakes: unstakes}, true
}

func matchClaimStake(list []instruction.Instruction, rcpt *receipt.Receipt) (*ClaimStake, bool) {
	if nil == rcpt {
		return nil, false
	}

	var account address.Address
	haveAccount := false
	sink := newBucketSink()
	var claims []ClaimStakeInformation

	last := len(list) - 1
	if last < 1 {
		return nil, false
	}

	for index := 0; index < last; index += 1 {
		ins := list[index]

		if a, method, args, ok := accountCall(ins); ok {
			switch {
			case MethodLockFee == method, MethodLockContingentFee == method:

			case accountWithdrawMethods[method]:
				spec, ok := withdrawSpec(method, args)
				if !ok || !spec.NonFungible {
					return nil, false
				}
				if haveAccount && !account.SameAs(a) {
					return nil, false
				}
				account = a
				haveAccount = true

			default:
				return nil, false
			}
			continue
		}

		if take, ok := ins.(instruction.TakeNonFungiblesFromWorktop); ok {
			sink.create(patternBucket{
				resource:    take.Resource,
				amount:      decimal.NewFromInt(int64(len(take.IDs))),
				ids:         take.IDs,
				nonFungible: true,
			})
			continue
		}

		validator, method, args, ok := validatorCall(ins)
		if !ok || MethodClaimXrd != method {
			return nil, false
		}
		id, ok := soleBucketArg(args)
		if !ok {
			return nil, false
		}
		b, ok := sink.consume(id)
		if !ok {
			return nil, false
		}
		put, ok := worktopPut(rcpt, index)
		if !ok || receipt.QuantifierAmount != put.Kind || !IsXRD(put.Resource) {
			return nil, false
		}
		claims = append(claims, ClaimStakeInformation{
			IntoAccount:      account,
			Validator:        validator,
			ClaimNftResource: b.resource,
			ClaimNftLocalIDs: b.ids,
			ClaimedXrd:       Predicted(put.Amount, index),
		})
	}

	if !haveAccount || 0 == len(claims) {
		return nil, false
	}
	to, ok := entireWorktopDeposit(list[last])
	if !ok || !to.SameAs(account) {
		return nil, false
	}
	return &ClaimStake{Claims: claims}, true
}

// authorized depositor badge: a whole resource or one non-fungible
const (
	badgeVariantResource    uint8 = 0
	badgeVariantNonFungible uint8 = 1
)

func argBadge(v value.Value) (DepositorBadge, bool) {
	e, ok := v.(value.Enum)
	if !ok || 1 != len(e.Fields) {
		return DepositorBadge{}, false
	}
	switch e.Variant {
	case badgeVariantResource:
		resource, ok := argResource(e.Fields[0])
		if !ok {
			return DepositorBadge{}, false
		}
		return DepositorBadge{Resource: resource}, true
	case badgeVariantNonFungible:
		global, ok := e.Fields[0].(value.NonFungibleGlobalId)
		if !ok {
			return DepositorBadge{}, false
		}
		return DepositorBadge{
			Resource: global.Resource,
			ID:       global.LocalID,
			HasID:    true,
		}, true
	default:
		return DepositorBadge{}, false
	}
}

func matchAccountDepositSettings(list []instruction.Instruction) (*AccountDepositSettings, bool) {
	out := &AccountDepositSettings{
		ResourcePreferenceChanges:   make(map[address.Raw]map[address.Raw]ResourcePreferenceChange),
		DefaultDepositRuleChanges:   make(map[address.Raw]DepositRule),
		AuthorizedDepositorsChanges: make(map[address.Raw]AuthorizedDepositorsChange),
	}
	matched := false

	setPreference := func(account address.Address, resource address.Address, change ResourcePreferenceChange) {
		byResource, ok := out.ResourcePreferenceChanges[account.Raw]
		if !ok {
			byResource = make(map[address.Raw]ResourcePreferenceChange)
			out.ResourcePreferenceChanges[account.Raw] = byResource
		}
		byResource[resource.Raw] = change
	}

	for _, ins := range list {
		a, method, args, ok := accountCall(ins)
		if !ok {
			return nil, false
		}

		switch method {

		case MethodLockFee, MethodLockContingentFee:

		case MethodSetResourcePreference:
			if 2 != len(args) {
				return nil, false
			}
			resource, ok := argResource(args[0])
			if !ok {
				return nil, false
			}
			e, ok := args[1].(value.Enum)
			if !ok || 0 != len(e.Fields) || e.Variant > uint8(PreferenceDisallowed) {
				return nil, false
			}
			setPreference(a, resource, ResourcePreferenceChange{
				Preference: ResourcePreference(e.Variant),
			})
			matched = true

		case MethodRemoveResourcePreference:
			if 1 != len(args) {
				return nil, false
			}
			resource, ok := argResource(args[0])
			if !ok {
				return nil, false
			}
			setPreference(a, resource, ResourcePreferenceChange{Remove: true})
			matched = true

		case MethodSetDefaultDepositRule:
			if 1 != len(args) {
				return nil, false
			}
			e, ok := args[0].(value.Enum)
			if !ok || 0 != len(e.Fields) || e.Variant > uint8(RuleAllowExisting) {
				return nil, false
			}
			out.DefaultDepositRuleChanges[a.Raw] = DepositRule(e.Variant)
			matched = true

		case MethodAddAuthorizedDepositor:
			if 1 != len(args) {
				return nil, false
			}
			badge, ok := argBadge(args[0])
			if !ok {
				return nil, false
			}
			change := out.AuthorizedDepositorsChanges[a.Raw]
			change.Added = append(change.Added, badge)
			out.AuthorizedDepositorsChanges[a.Raw] = change
			matched = true

		case MethodRemoveAuthorizedDepositor:
			if 1 != len(args) {
				return nil, false
			}
			badge, ok := argBadge(args[0])
			if !ok {
				return nil, false
			}
			change := out.AuthorizedDepositorsChanges[a.Raw]
			change.Removed = append(change.Removed, badge)
			out.AuthorizedDepositorsChanges[a.Raw] = change
			matched = true

		default:
			return nil, false
		}
	}

	if !matched {
		return nil, false
	}
	return out, true
}
