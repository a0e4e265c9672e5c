// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/meridian-inc/manifestkit/instruction"
)

func runInstructionsDecode(c *cli.Context) error {
	m := config(c)

	buffer, err := hexArgument(c)
	if nil != err {
		return err
	}

	list, err := instruction.UnpackInstructions(buffer, m.networkID)
	if nil != err {
		return err
	}

	for index, ins := range list {
		fmt.Fprintf(c.App.Writer, "%3d: %s\n", index, describe(ins))
	}
	return nil
}

// describe - one line per instruction with its main operands
func describe(ins instruction.Instruction) string {
	switch t := ins.(type) {

	case instruction.CallMethod:
		return fmt.Sprintf("%s %s %q args: %d", t.Tag(), t.Address, t.MethodName, len(t.Args))
	case instruction.CallRoyaltyMethod:
		return fmt.Sprintf("%s %s %q args: %d", t.Tag(), t.Address, t.MethodName, len(t.Args))
	case instruction.CallMetadataMethod:
		return fmt.Sprintf("%s %s %q args: %d", t.Tag(), t.Address, t.MethodName, len(t.Args))
	case instruction.CallRoleAssignmentMethod:
		return fmt.Sprintf("%s %s %q args: %d", t.Tag(), t.Address, t.MethodName, len(t.Args))
	case instruction.CallDirectVaultMethod:
		return fmt.Sprintf("%s %s %q args: %d", t.Tag(), t.Address, t.MethodName, len(t.Args))

	case instruction.CallFunction:
		return fmt.Sprintf(
			"%s %s %s %q args: %d",
			t.Tag(), t.PackageAddress, t.BlueprintName, t.FunctionName, len(t.Args),
		)

	case instruction.TakeFromWorktop:
		return fmt.Sprintf("%s %s %s", t.Tag(), t.Resource, t.Amount)
	case instruction.TakeNonFungiblesFromWorktop:
		return fmt.Sprintf("%s %s ids: %d", t.Tag(), t.Resource, len(t.IDs))
	case instruction.TakeAllFromWorktop:
		return fmt.Sprintf("%s %s", t.Tag(), t.Resource)

	case instruction.ReturnToWorktop:
		return fmt.Sprintf("%s bucket: %s", t.Tag(), t.Bucket)

	case instruction.AssertWorktopContainsAny:
		return fmt.Sprintf("%s %s", t.Tag(), t.Resource)
	case instruction.AssertWorktopContains:
		return fmt.Sprintf("%s %s %s", t.Tag(), t.Resource, t.Amount)
	case instruction.AssertWorktopContainsNonFungibles:
		return fmt.Sprintf("%s %s ids: %d", t.Tag(), t.Resource, len(t.IDs))

	case instruction.PushToAuthZone:
		return fmt.Sprintf("%s proof: %s", t.Tag(), t.Proof)

	case instruction.CreateProofFromAuthZoneOfAmount:
		return fmt.Sprintf("%s %s %s", t.Tag(), t.Resource, t.Amount)
	case instruction.CreateProofFromAuthZoneOfNonFungibles:
		return fmt.Sprintf("%s %s ids: %d", t.Tag(), t.Resource, len(t.IDs))
	case instruction.CreateProofFromAuthZoneOfAll:
		return fmt.Sprintf("%s %s", t.Tag(), t.Resource)

	case instruction.CreateProofFromBucketOfAmount:
		return fmt.Sprintf("%s bucket: %s %s", t.Tag(), t.Bucket, t.Amount)
	case instruction.CreateProofFromBucketOfNonFungibles:
		return fmt.Sprintf("%s bucket: %s ids: %d", t.Tag(), t.Bucket, len(t.IDs))
	case instruction.CreateProofFromBucketOfAll:
		return fmt.Sprintf("%s bucket: %s", t.Tag(), t.Bucket)

	case instruction.BurnResource:
		return fmt.Sprintf("%s bucket: %s", t.Tag(), t.Bucket)

	case instruction.CloneProof:
		return fmt.Sprintf("%s proof: %s", t.Tag(), t.Proof)
	case instruction.DropProof:
		return fmt.Sprintf("%s proof: %s", t.Tag(), t.Proof)

	case instruction.AllocateGlobalAddress:
		return fmt.Sprintf("%s %s %s", t.Tag(), t.Package, t.BlueprintName)

	default:
		return ins.Tag().String()
	}
}
