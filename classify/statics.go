// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify

import (
	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/network"
)

// account component method names
const (
	MethodLockFee           = "lock_fee"
	MethodLockContingentFee = "lock_contingent_fee"
	MethodSecurify          = "securify"

	MethodWithdraw                       = "withdraw"
	MethodWithdrawNonFungibles           = "withdraw_non_fungibles"
	MethodLockFeeAndWithdraw             = "lock_fee_and_withdraw"
	MethodLockFeeAndWithdrawNonFungibles = "lock_fee_and_withdraw_non_fungibles"

	MethodDeposit                 = "deposit"
	MethodDepositBatch            = "deposit_batch"
	MethodTryDepositOrAbort       = "try_deposit_or_abort"
	MethodTryDepositBatchOrAbort  = "try_deposit_batch_or_abort"
	MethodTryDepositOrRefund      = "try_deposit_or_refund"
	MethodTryDepositBatchOrRefund = "try_deposit_batch_or_refund"

	MethodBurn             = "burn"
	MethodBurnNonFungibles = "burn_non_fungibles"

	MethodCreateProofOfAmount       = "create_proof_of_amount"
	MethodCreateProofOfNonFungibles = "create_proof_of_non_fungibles"

	MethodSetResourcePreference     = "set_resource_preference"
	MethodRemoveResourcePreference  = "remove_resource_preference"
	MethodSetDefaultDepositRule     = "set_default_deposit_rule"
	MethodAddAuthorizedDepositor    = "add_authorized_depositor"
	MethodRemoveAuthorizedDepositor = "remove_authorized_depositor"
)

// validator component method names
const (
	MethodStake    = "stake"
	MethodUnstake  = "unstake"
	MethodClaimXrd = "claim_xrd"
)

// account methods taking resources out of the account
var accountWithdrawMethods = map[string]bool{
	MethodWithdraw:                       true,
	MethodWithdrawNonFungibles:           true,
	MethodLockFeeAndWithdraw:             true,
	MethodLockFeeAndWithdrawNonFungibles: true,
}

// account methods putting resources into the account
var accountDepositMethods = map[string]bool{
	MethodDeposit:                 true,
	MethodDepositBatch:            true,
	MethodTryDepositOrAbort:       true,
	MethodTryDepositBatchOrAbort:  true,
	MethodTryDepositOrRefund:      true,
	MethodTryDepositBatchOrRefund: true,
}

// the try deposit family works without the account's own authority
var accountGuardedDepositMethods = map[string]bool{
	MethodDeposit:      true,
	MethodDepositBatch: true,
}

// account methods creating proofs of owned resources
var accountProofMethods = map[string]bool{
	MethodCreateProofOfAmount:       true,
	MethodCreateProofOfNonFungibles: true,
}

// account methods adjusting third party deposit settings
var accountDepositSettingsMethods = map[string]bool{
	MethodSetResourcePreference:     true,
	MethodRemoveResourcePreference:  true,
	MethodSetDefaultDepositRule:     true,
	MethodAddAuthorizedDepositor:    true,
	MethodRemoveAuthorizedDepositor: true,
}

// account methods locking transaction fees
var accountLockFeeMethods = map[string]bool{
	MethodLockFee:                        true,
	MethodLockContingentFee:              true,
	MethodLockFeeAndWithdraw:             true,
	MethodLockFeeAndWithdrawNonFungibles: true,
}

// accountAuthMethods - account methods only callable with the
// account's own authority
var accountAuthMethods = map[string]bool{
	MethodLockFee:                        true,
	MethodLockContingentFee:              true,
	MethodSecurify:                       true,
	MethodWithdraw:                       true,
	MethodWithdrawNonFungibles:           true,
	MethodLockFeeAndWithdraw:             true,
	MethodLockFeeAndWithdrawNonFungibles: true,
	MethodBurn:                           true,
	MethodBurnNonFungibles:               true,
	MethodCreateProofOfAmount:            true,
	MethodCreateProofOfNonFungibles:      true,
	MethodSetResourcePreference:          true,
	MethodRemoveResourcePreference:       true,
	MethodSetDefaultDepositRule:          true,
	MethodAddAuthorizedDepositor:         true,
	MethodRemoveAuthorizedDepositor:      true,
}

// identity methods only callable with the identity's own authority
var identityAuthMethods = map[string]bool{
	MethodSecurify: true,
}

// xrdRaw - the well known raw address of the network fee and staking
// resource, identical on every network
var xrdRaw = address.Raw{0: byte(address.FungibleResource)}

// XRD - the fee and staking resource bound to a network
func XRD(networkID network.ID) address.Address {
	return address.Address{NetworkID: networkID, Raw: xrdRaw}
}

// IsXRD - raw address comparison against the well known resource
func IsXRD(a address.Address) bool {
	return xrdRaw == a.Raw
}
