// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package traverse - deterministic walk over parsed instructions
//
// Visitors accumulate their own state; the walker only fixes the
// order: instructions in manifest order, instruction visitors before
// value visitors, value nodes left to right depth first. The first
// error aborts the whole traversal and is returned verbatim.
package traverse

import (
	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/instruction"
	"github.com/meridian-inc/manifestkit/value"
)

// ValueVisitor - called once per value node
//
// the node is passed by pointer so a visitor may rewrite it in place;
// the rewritten value must keep its kind
type ValueVisitor interface {
	VisitValue(v *value.Value) error
}

// InstructionVisitor - called once per instruction with its index
type InstructionVisitor interface {
	VisitInstruction(index int, ins instruction.Instruction) error
}

// Traverse - run all visitors over an instruction list
func Traverse(
	list []instruction.Instruction,
	valueVisitors []ValueVisitor,
	instructionVisitors []InstructionVisitor,
) error {
	for index, ins := range list {
		for _, visitor := range instructionVisitors {
			if err := visitor.VisitInstruction(index, ins); nil != err {
				return err
			}
		}
		args := instructionValues(ins)
		for i := range args {
			if err := walkValue(&args[i], valueVisitors); nil != err {
				return err
			}
		}
	}
	return nil
}

// instructionValues - the value nodes reachable from an instruction
//
// only call style instructions carry values; every other operand is
// typed data outside the value model. The returned slice shares its
// backing array with the instruction so element rewrites persist
func instructionValues(ins instruction.Instruction) []value.Value {
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

// walkValue - depth first, parents before children
//
// container children are visited through addressable storage: slice
// elements in place, single child fields via a copy written back, so
// any rewrite survives in the caller's tree
func walkValue(v *value.Value, visitors []ValueVisitor) error {
	for _, visitor := range visitors {
		kind := (*v).Kind()
		if err := visitor.VisitValue(v); nil != err {
			return err
		}
		if (*v).Kind() != kind {
			return fault.ErrVisitorChangedKind
		}
	}

	switch t := (*v).(type) {
	case value.Enum:
		for i := range t.Fields {
			if err := walkValue(&t.Fields[i], visitors); nil != err {
				return err
			}
		}
	case value.Some:
		if err := walkValue(&t.Value, visitors); nil != err {
			return err
		}
		*v = t
	case value.Ok:
		if err := walkValue(&t.Value, visitors); nil != err {
			return err
		}
		*v = t
	case value.Err:
		if err := walkValue(&t.Value, visitors); nil != err {
			return err
		}
		*v = t
	case value.Array:
		for i := range t.Elements {
			if err := walkValue(&t.Elements[i], visitors); nil != err {
				return err
			}
		}
	case value.Map:
		for i := range t.Entries {
			if err := walkValue(&t.Entries[i].Key, visitors); nil != err {
				return err
			}
			if err := walkValue(&t.Entries[i].Value, visitors); nil != err {
				return err
			}
		}
	case value.Tuple:
		for i := range t.Elements {
			if err := walkValue(&t.Elements[i], visitors); nil != err {
				return err
			}
		}
	}
	return nil
}
