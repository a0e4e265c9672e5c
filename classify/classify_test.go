// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/classify"
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/instruction"
	"github.com/meridian-inc/manifestkit/network"
	"github.com/meridian-inc/manifestkit/receipt"
	"github.com/meridian-inc/manifestkit/value"
)

const testNetwork = network.Simulator

func makeAddress(t *testing.T, entity address.EntityType, fill byte) address.Address {
	t.Helper()
	raw := make([]byte, address.RawSize)
	raw[0] = byte(entity)
	for i := 1; i < address.RawSize; i += 1 {
		raw[i] = fill
	}
	a, err := address.FromBytes(raw, testNetwork)
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	return a
}

func methodCall(a address.Address, method string, args ...value.Value) instruction.CallMethod {
	return instruction.CallMethod{
		Address:    address.Static{Address: a},
		MethodName: method,
		Args:       args,
	}
}

func classifyList(t *testing.T, list []instruction.Instruction, rcpt *receipt.Receipt) *classify.Classification {
	t.Helper()

	var receiptBytes []byte
	if nil != rcpt {
		packed, err := rcpt.Pack()
		if nil != err {
			t.Fatalf("receipt pack error: %s", err)
		}
		receiptBytes = packed
	}

	c, err := classify.Classify(instruction.FromParsed(list), receiptBytes, testNetwork)
	if nil != err {
		t.Fatalf("classify error: %s", err)
	}
	return c
}

// lock fee, withdraw, take, deposit: the canonical simple transfer
func TestClassifySimpleTransfer(t *testing.T) {
	sender := makeAddress(t, address.Account, 0x11)
	recipient := makeAddress(t, address.Account, 0x22)
	resource := makeAddress(t, address.FungibleResource, 0x33)

	list := []instruction.Instruction{
		methodCall(sender, classify.MethodLockFee, value.Decimal{Value: value.MustDecimal("10")}),
		methodCall(sender, classify.MethodWithdraw,
			value.ResourceAddress{Value: resource},
			value.Decimal{Value: value.MustDecimal("100")},
		),
		instruction.TakeFromWorktop{Resource: resource, Amount: value.MustDecimal("100")},
		methodCall(recipient, classify.MethodTryDepositOrAbort, value.Bucket{ID: value.IndexedID(0)}),
	}

	c := classifyList(t, list, nil)

	transfer, ok := c.Type.(classify.SimpleTransfer)
	if !ok {
		t.Fatalf("type: %s  expected: SimpleTransfer", classify.TypeName(c.Type))
	}
	assert.Equal(t, sender, transfer.From, "wrong sender")
	assert.Equal(t, recipient, transfer.To, "wrong recipient")
	assert.Equal(t, resource, transfer.Transferred.Resource, "wrong resource")
	assert.True(t, transfer.Transferred.Amount.Equal(value.MustDecimal("100")), "wrong amount")

	// the fee lock is orthogonal to the shape but still reserved
	assert.Equal(t, []classify.ReservedInstruction{classify.ReservedAccountLockFee},
		c.ReservedInstructions, "wrong reserved instructions")
}

func TestClassifySimpleTransferNonFungible(t *testing.T) {
	sender := makeAddress(t, address.Account, 0x11)
	recipient := makeAddress(t, address.Account, 0x22)
	resource := makeAddress(t, address.NonFungibleResource, 0x33)
	ids := []value.LocalID{value.IntegerLocalID(1), value.IntegerLocalID(2)}

	list := []instruction.Instruction{
		methodCall(sender, classify.MethodWithdrawNonFungibles,
			value.ResourceAddress{Value: resource},
			value.Array{ElementKind: value.KindNonFungibleLocalId, Elements: []value.Value{
				value.NonFungibleLocalId{Value: ids[0]},
				value.NonFungibleLocalId{Value: ids[1]},
			}},
		),
		instruction.TakeNonFungiblesFromWorktop{Resource: resource, IDs: ids},
		methodCall(recipient, classify.MethodDeposit, value.Bucket{ID: value.IndexedID(0)}),
	}

	c := classifyList(t, list, nil)

	transfer, ok := c.Type.(classify.SimpleTransfer)
	if !ok {
		t.Fatalf("type: %s  expected: SimpleTransfer", classify.TypeName(c.Type))
	}
	assert.True(t, transfer.Transferred.NonFungible, "expected a non-fungible specifier")
	assert.Equal(t, ids, transfer.Transferred.IDs, "wrong ids")
}

// two destinations cannot be the simple shape but still form a
// transfer
func TestClassifyTransferTwoRecipients(t *testing.T) {
	sender := makeAddress(t, address.Account, 0x11)
	first := makeAddress(t, address.Account, 0x22)
	second := makeAddress(t, address.Account, 0x23)
	resource := makeAddress(t, address.FungibleResource, 0x33)

	list := []instruction.Instruction{
		methodCall(sender, classify.MethodWithdraw,
			value.ResourceAddress{Value: resource},
			value.Decimal{Value: value.MustDecimal("10")},
		),
		instruction.TakeFromWorktop{Resource: resource, Amount: value.MustDecimal("4")},
		methodCall(first, classify.MethodTryDepositOrAbort, value.Bucket{ID: value.IndexedID(0)}),
		instruction.TakeFromWorktop{Resource: resource, Amount: value.MustDecimal("6")},
		methodCall(second, classify.MethodTryDepositOrAbort, value.Bucket{ID: value.IndexedID(1)}),
	}

	c := classifyList(t, list, nil)

	transfer, ok := c.Type.(classify.Transfer)
	if !ok {
		t.Fatalf("type: %s  expected: Transfer", classify.TypeName(c.Type))
	}
	assert.Equal(t, sender, transfer.From, "wrong sender")
	assert.Len(t, transfer.Transfers, 2, "wrong destination count")
	assert.True(t, transfer.Transfers[first.Raw][resource.Raw].Amount.Equal(value.MustDecimal("4")),
		"wrong first amount")
	assert.True(t, transfer.Transfers[second.Raw][resource.Raw].Amount.Equal(value.MustDecimal("6")),
		"wrong second amount")
}

// an instruction outside the transfer vocabulary demotes the manifest
// to the general shape
func TestClassifyGeneralFallback(t *testing.T) {
	sender := makeAddress(t, address.Account, 0x11)
	recipient := makeAddress(t, address.Account, 0x22)
	resource := makeAddress(t, address.FungibleResource, 0x33)

	list := []instruction.Instruction{
		methodCall(sender, classify.MethodWithdraw,
			value.ResourceAddress{Value: resource},
			value.Decimal{Value: value.MustDecimal("5")},
		),
		instruction.TakeFromWorktop{Resource: resource, Amount: value.MustDecimal("5")},
		instruction.DropAllProofs{},
		methodCall(recipient, classify.MethodTryDepositOrAbort, value.Bucket{ID: value.IndexedID(0)}),
	}

	c := classifyList(t, list, nil)

	general, ok := c.Type.(classify.GeneralTransaction)
	if !ok {
		t.Fatalf("type: %s  expected: GeneralTransaction", classify.TypeName(c.Type))
	}

	withdraws := general.AccountWithdraws[sender.Raw]
	if assert.Len(t, withdraws, 1, "wrong withdraw count") {
		assert.Equal(t, resource, withdraws[0].Resource, "wrong withdrawn resource")
		assert.False(t, withdraws[0].Amount.IsPredicted, "manifest amount reported as predicted")
		assert.True(t, withdraws[0].Amount.Value.Equal(value.MustDecimal("5")), "wrong withdrawn amount")
	}
	deposits := general.AccountDeposits[recipient.Raw]
	if assert.Len(t, deposits, 1, "wrong deposit count") {
		assert.Equal(t, resource, deposits[0].Resource, "wrong deposited resource")
	}
	assert.Equal(t, []address.Address{sender, recipient},
		general.AddressesInManifest.Accounts, "wrong accounts")
}

// withdrawing from two different accounts is never a transfer shape
func TestClassifyTwoWithdrawersFallsBack(t *testing.T) {
	first := makeAddress(t, address.Account, 0x11)
	second := makeAddress(t, address.Account, 0x12)
	recipient := makeAddress(t, address.Account, 0x22)
	resource := makeAddress(t, address.FungibleResource, 0x33)

	list := []instruction.Instruction{
		methodCall(first, classify.MethodWithdraw,
			value.ResourceAddress{Value: resource},
			value.Decimal{Value: value.MustDecimal("3")},
		),
		methodCall(second, classify.MethodWithdraw,
			value.ResourceAddress{Value: resource},
			value.Decimal{Value: value.MustDecimal("4")},
		),
		instruction.TakeFromWorktop{Resource: resource, Amount: value.MustDecimal("7")},
		methodCall(recipient, classify.MethodTryDepositOrAbort, value.Bucket{ID: value.IndexedID(0)}),
	}

	c := classifyList(t, list, nil)

	general, ok := c.Type.(classify.GeneralTransaction)
	if !ok {
		t.Fatalf("type: %s  expected: GeneralTransaction", classify.TypeName(c.Type))
	}

	// both withdrawals must be reported, one per account
	for i, account := range []address.Address{first, second} {
		withdraws := general.AccountWithdraws[account.Raw]
		if !assert.Len(t, withdraws, 1, "%d: wrong withdraw count", i) {
			continue
		}
		assert.Equal(t, resource, withdraws[0].Resource, "%d: wrong withdrawn resource", i)
	}
	assert.True(t, general.AccountWithdraws[first.Raw][0].Amount.Value.Equal(value.MustDecimal("3")),
		"wrong first amount")
	assert.True(t, general.AccountWithdraws[second.Raw][0].Amount.Value.Equal(value.MustDecimal("4")),
		"wrong second amount")
}

func TestClassifyStake(t *testing.T) {
	staker := makeAddress(t, address.Account, 0x11)
	validator := makeAddress(t, address.Validator, 0x22)
	stakeUnits := makeAddress(t, address.FungibleResource, 0x33)
	xrd := classify.XRD(testNetwork)

	list := []instruction.Instruction{
		methodCall(staker, classify.MethodLockFee, value.Decimal{Value: value.MustDecimal("10")}),
		methodCall(staker, classify.MethodWithdraw,
			value.ResourceAddress{Value: xrd},
			value.Decimal{Value: value.MustDecimal("100")},
		),
		instruction.TakeFromWorktop{Resource: xrd, Amount: value.MustDecimal("100")},
		methodCall(validator, classify.MethodStake, value.Bucket{ID: value.IndexedID(0)}),
		methodCall(staker, classify.MethodDepositBatch, value.Expression{Value: value.EntireWorktop}),
	}

	rcpt := &receipt.Receipt{
		Status: receipt.CommittedSuccess,
		WorktopChanges: map[int][]receipt.WorktopChange{
			3: {{
				Direction:  receipt.Put,
				Quantifier: receipt.AmountQuantifier(stakeUnits, value.MustDecimal("95")),
			}},
		},
	}

	c := classifyList(t, list, rcpt)

	stake, ok := c.Type.(classify.Stake)
	if !ok {
		t.Fatalf("type: %s  expected: Stake", classify.TypeName(c.Type))
	}
	if assert.Len(t, stake.Stakes, 1, "wrong stake count") {
		info := stake.Stakes[0]
		assert.Equal(t, staker, info.FromAccount, "wrong account")
		assert.Equal(t, validator, info.Validator, "wrong validator")
		assert.True(t, info.StakedAmount.Equal(value.MustDecimal("100")), "wrong staked amount")
		assert.Equal(t, stakeUnits, info.StakeUnitResource, "wrong stake unit resource")
		assert.True(t, info.StakeUnitAmount.IsPredicted, "stake units must be predicted")
		assert.Equal(t, 3, info.StakeUnitAmount.InstructionIndex, "wrong prediction index")
		assert.True(t, info.StakeUnitAmount.Value.Equal(value.MustDecimal("95")), "wrong stake unit amount")
	}
}

// the same manifest without a receipt cannot be recognised as a stake
func TestClassifyStakeNeedsReceipt(t *testing.T) {
	staker := makeAddress(t, address.Account, 0x11)
	validator := makeAddress(t, address.Validator, 0x22)
	xrd := classify.XRD(testNetwork)

	list := []instruction.Instruction{
		methodCall(staker, classify.MethodWithdraw,
			value.ResourceAddress{Value: xrd},
			value.Decimal{Value: value.MustDecimal("100")},
		),
		instruction.TakeFromWorktop{Resource: xrd, Amount: value.MustDecimal("100")},
		methodCall(validator, classify.MethodStake, value.Bucket{ID: value.IndexedID(0)}),
		methodCall(staker, classify.MethodDepositBatch, value.Expression{Value: value.EntireWorktop}),
	}

	c := classifyList(t, list, nil)
	if _, ok := c.Type.(classify.GeneralTransaction); !ok {
		t.Fatalf("type: %s  expected: GeneralTransaction", classify.TypeName(c.Type))
	}
}

func TestClassifyUnstake(t *testing.T) {
	staker := makeAddress(t, address.Account, 0x11)
	validator := makeAddress(t, address.Validator, 0x22)
	stakeUnits := makeAddress(t, address.FungibleResource, 0x33)
	claimNft := makeAddress(t, address.NonFungibleResource, 0x44)
	claimID := value.IntegerLocalID(1)

	claimData, err := classify.PackUnstakeData(classify.UnstakeData{
		Name:        "Stake Claim",
		ClaimEpoch:  42,
		ClaimAmount: value.MustDecimal("50"),
	})
	if nil != err {
		t.Fatalf("claim data pack error: %s", err)
	}

	list := []instruction.Instruction{
		methodCall(staker, classify.MethodWithdraw,
			value.ResourceAddress{Value: stakeUnits},
			value.Decimal{Value: value.MustDecimal("50")},
		),
		instruction.TakeFromWorktop{Resource: stakeUnits, Amount: value.MustDecimal("50")},
		methodCall(validator, classify.MethodUnstake, value.Bucket{ID: value.IndexedID(0)}),
		methodCall(staker, classify.MethodDepositBatch, value.Expression{Value: value.EntireWorktop}),
	}

	rcpt := &receipt.Receipt{
		Status: receipt.CommittedSuccess,
		WorktopChanges: map[int][]receipt.WorktopChange{
			2: {{
				Direction:  receipt.Put,
				Quantifier: receipt.IDsQuantifier(claimNft, []value.LocalID{claimID}),
			}},
		},
		NewEntities: receipt.NewEntities{
			MintedNonFungibles: map[address.Raw]map[value.LocalID][]byte{
				claimNft.Raw: {claimID: claimData},
			},
		},
	}

	c := classifyList(t, list, rcpt)

	unstake, ok := c.Type.(classify.Unstake)
	if !ok {
		t.Fatalf("type: %s  expected: Unstake", classify.TypeName(c.Type))
	}
	if assert.Len(t, unstake.Unstakes, 1, "wrong unstake count") {
		info := unstake.Unstakes[0]
		assert.Equal(t, staker, info.FromAccount, "wrong account")
		assert.Equal(t, validator, info.Validator, "wrong validator")
		assert.Equal(t, stakeUnits, info.StakeUnitResource, "wrong stake unit resource")
		assert.Equal(t, claimNft, info.ClaimNftResource, "wrong claim resource")
		assert.Equal(t, claimID, info.ClaimNftLocalID, "wrong claim id")
		assert.Equal(t, "Stake Claim", info.ClaimNftData.Name, "wrong claim name")
		assert.Equal(t, uint64(42), info.ClaimNftData.ClaimEpoch, "wrong claim epoch")
		assert.True(t, info.ClaimNftData.ClaimAmount.Equal(value.MustDecimal("50")), "wrong claim amount")
	}
}

func TestClassifyClaimStake(t *testing.T) {
	claimant := makeAddress(t, address.Account, 0x11)
	validator := makeAddress(t, address.Validator, 0x22)
	claimNft := makeAddress(t, address.NonFungibleResource, 0x44)
	xrd := classify.XRD(testNetwork)
	claimID := value.IntegerLocalID(1)

	list := []instruction.Instruction{
		methodCall(claimant, classify.MethodWithdrawNonFungibles,
			value.ResourceAddress{Value: claimNft},
			value.Array{ElementKind: value.KindNonFungibleLocalId, Elements: []value.Value{
				value.NonFungibleLocalId{Value: claimID},
			}},
		),
		instruction.TakeNonFungiblesFromWorktop{Resource: claimNft, IDs: []value.LocalID{claimID}},
		methodCall(validator, classify.MethodClaimXrd, value.Bucket{ID: value.IndexedID(0)}),
		methodCall(claimant, classify.MethodDepositBatch, value.Expression{Value: value.EntireWorktop}),
	}

	rcpt := &receipt.Receipt{
		Status: receipt.CommittedSuccess,
		WorktopChanges: map[int][]receipt.WorktopChange{
			2: {{
				Direction:  receipt.Put,
				Quantifier: receipt.AmountQuantifier(xrd, value.MustDecimal("50")),
			}},
		},
	}

	c := classifyList(t, list, rcpt)

	claim, ok := c.Type.(classify.ClaimStake)
	if !ok {
		t.Fatalf("type: %s  expected: ClaimStake", classify.TypeName(c.Type))
	}
	if assert.Len(t, claim.Claims, 1, "wrong claim count") {
		info := claim.Claims[0]
		assert.Equal(t, claimant, info.IntoAccount, "wrong account")
		assert.Equal(t, validator, info.Validator, "wrong validator")
		assert.Equal(t, claimNft, info.ClaimNftResource, "wrong claim resource")
		assert.Equal(t, []value.LocalID{claimID}, info.ClaimNftLocalIDs, "wrong claim ids")
		assert.True(t, info.ClaimedXrd.IsPredicted, "claimed amount must be predicted")
		assert.True(t, info.ClaimedXrd.Value.Equal(value.MustDecimal("50")), "wrong claimed amount")
	}
}

func TestClassifyAccountDepositSettings(t *testing.T) {
	account := makeAddress(t, address.Account, 0x11)
	resource := makeAddress(t, address.FungibleResource, 0x22)
	badge := makeAddress(t, address.FungibleResource, 0x33)

	list := []instruction.Instruction{
		methodCall(account, classify.MethodSetResourcePreference,
			value.ResourceAddress{Value: resource},
			value.Enum{Variant: 1},
		),
		methodCall(account, classify.MethodSetDefaultDepositRule, value.Enum{Variant: 2}),
		methodCall(account, classify.MethodAddAuthorizedDepositor,
			value.Enum{Variant: 0, Fields: []value.Value{
				value.ResourceAddress{Value: badge},
			}},
		),
		methodCall(account, classify.MethodRemoveResourcePreference,
			value.ResourceAddress{Value: badge},
		),
	}

	c := classifyList(t, list, nil)

	settings, ok := c.Type.(classify.AccountDepositSettings)
	if !ok {
		t.Fatalf("type: %s  expected: AccountDepositSettings", classify.TypeName(c.Type))
	}

	expectedPreferences := map[address.Raw]map[address.Raw]classify.ResourcePreferenceChange{
		account.Raw: {
			resource.Raw: {Preference: classify.PreferenceDisallowed},
			badge.Raw:    {Remove: true},
		},
	}
	assert.Equal(t, expectedPreferences, settings.ResourcePreferenceChanges, "wrong preference changes")

	assert.Equal(t, map[address.Raw]classify.DepositRule{account.Raw: classify.RuleAllowExisting},
		settings.DefaultDepositRuleChanges, "wrong rule changes")

	depositors := settings.AuthorizedDepositorsChanges[account.Raw]
	if assert.Len(t, depositors.Added, 1, "wrong depositor count") {
		assert.Equal(t, badge, depositors.Added[0].Resource, "wrong badge resource")
		assert.False(t, depositors.Added[0].HasID, "resource badge must not carry an id")
	}

	assert.Equal(t, []classify.ReservedInstruction{classify.ReservedAccountUpdateSettings},
		c.ReservedInstructions, "wrong reserved instructions")
}

// named addresses defeat every specific pattern
func TestClassifyNamedAddressFallsBack(t *testing.T) {
	list := []instruction.Instruction{
		instruction.CallMethod{
			Address:    address.Named(0),
			MethodName: "free",
		},
	}

	c := classifyList(t, list, nil)

	general, ok := c.Type.(classify.GeneralTransaction)
	if !ok {
		t.Fatalf("type: %s  expected: GeneralTransaction", classify.TypeName(c.Type))
	}
	assert.Equal(t, []uint32{0}, general.AddressesInManifest.Named, "wrong named addresses")
}

func TestClassifyReservedInstructions(t *testing.T) {
	account := makeAddress(t, address.Account, 0x11)
	identity := makeAddress(t, address.Identity, 0x22)
	controller := makeAddress(t, address.AccessController, 0x33)

	list := []instruction.Instruction{
		methodCall(account, classify.MethodLockFee, value.Decimal{Value: value.MustDecimal("1")}),
		methodCall(account, classify.MethodSecurify),
		methodCall(identity, classify.MethodSecurify),
		methodCall(account, classify.MethodSetDefaultDepositRule, value.Enum{Variant: 0}),
		methodCall(controller, "create_proof"),
	}

	c := classifyList(t, list, nil)

	expected := []classify.ReservedInstruction{
		classify.ReservedAccountLockFee,
		classify.ReservedAccountSecurify,
		classify.ReservedIdentitySecurify,
		classify.ReservedAccountUpdateSettings,
		classify.ReservedAccessController,
	}
	assert.Equal(t, expected, c.ReservedInstructions, "wrong reserved instructions")
}

// a receipt that did not commit successfully is unusable
func TestClassifyRejectsUncommittedReceipt(t *testing.T) {
	rcpt := &receipt.Receipt{Status: receipt.CommittedFailure}
	packed, err := rcpt.Pack()
	if nil != err {
		t.Fatalf("receipt pack error: %s", err)
	}

	_, err = classify.Classify(
		instruction.FromParsed([]instruction.Instruction{instruction.DropAllProofs{}}),
		packed,
		testNetwork,
	)
	if fault.ErrTransactionNotCommitted != err {
		t.Fatalf("classify error: %v  expected: %v", err, fault.ErrTransactionNotCommitted)
	}
}

func TestClassifyRejectsRawText(t *testing.T) {
	_, err := classify.Classify(instruction.FromText("CALL_METHOD ..."), nil, testNetwork)
	if fault.ErrInstructionsNotParsed != err {
		t.Fatalf("classify error: %v  expected: %v", err, fault.ErrInstructionsNotParsed)
	}
}

func TestAnalyzeManifest(t *testing.T) {
	account := makeAddress(t, address.Account, 0x11)
	other := makeAddress(t, address.Account, 0x22)
	resource := makeAddress(t, address.FungibleResource, 0x33)
	pkg := makeAddress(t, address.Package, 0x44)

	list := []instruction.Instruction{
		methodCall(account, classify.MethodWithdraw,
			value.ResourceAddress{Value: resource},
			value.Decimal{Value: value.MustDecimal("1")},
		),
		methodCall(other, classify.MethodCreateProofOfAmount,
			value.ResourceAddress{Value: resource},
			value.Decimal{Value: value.MustDecimal("5")},
		),
		methodCall(other, classify.MethodTryDepositOrRefund, value.Expression{Value: value.EntireWorktop}),
		instruction.AllocateGlobalAddress{Package: pkg, BlueprintName: "Radiswap"},
	}

	summary, err := classify.AnalyzeManifest(instruction.FromParsed(list), testNetwork)
	if nil != err {
		t.Fatalf("analyze error: %s", err)
	}

	// withdraw and proof creation need authority, the guarded deposit
	// does not
	assert.Equal(t, []address.Address{account, other}, summary.AccountsRequiringAuth, "wrong auth accounts")
	assert.Nil(t, summary.IdentitiesRequiringAuth, "unexpected identities")

	if assert.Len(t, summary.AccountProofResources, 1, "wrong proof count") {
		proof := summary.AccountProofResources[0]
		assert.Equal(t, resource, proof.Resource, "wrong proof resource")
		assert.True(t, proof.Amount.Equal(value.MustDecimal("5")), "wrong proof amount")
	}

	assert.Equal(t, []address.Address{account, other}, summary.EncounteredAddresses.Accounts, "wrong accounts")
	assert.Equal(t, []address.Address{resource}, summary.EncounteredAddresses.Resources, "wrong resources")
	assert.Equal(t, []address.Address{pkg}, summary.EncounteredAddresses.Packages, "wrong packages")
	assert.Equal(t, []uint32{0}, summary.EncounteredAddresses.Named, "wrong named addresses")
}

func TestDecodeUnstakeDataRejectsWrongShape(t *testing.T) {
	packed, err := value.Pack(value.Tuple{Elements: []value.Value{
		value.String{Value: "only a name"},
	}})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	_, err = classify.DecodeUnstakeData(packed, testNetwork)
	if fault.ErrNotValuePack != err {
		t.Fatalf("decode error: %v  expected: %v", err, fault.ErrNotValuePack)
	}
}

func TestXRDWellKnownAddress(t *testing.T) {
	xrd := classify.XRD(testNetwork)
	assert.True(t, xrd.IsResource(), "xrd must be a resource")
	assert.True(t, classify.IsXRD(xrd), "xrd not recognised")

	other := makeAddress(t, address.FungibleResource, 0x01)
	assert.False(t, classify.IsXRD(other), "non-xrd recognised as xrd")
}
