// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/address"
	"github.com/meridian-inc/manifestkit/value"
)

// Source - a fact together with how it was obtained
//
// a guaranteed fact is read off the manifest itself; a predicted fact
// comes from the receipt of one simulated execution and records the
// instruction it was observed at
type Source[T any] struct {
	Value            T
	IsPredicted      bool
	InstructionIndex int
}

// Guaranteed - a fact read off the manifest
func Guaranteed[T any](v T) Source[T] {
	return Source[T]{Value: v}
}

// Predicted - a fact observed in the receipt at an instruction
func Predicted[T any](v T, index int) Source[T] {
	return Source[T]{Value: v, IsPredicted: true, InstructionIndex: index}
}

// ResourceTracker - the movement of one resource through an account
// boundary
//
// IDs is only meaningful for a non-fungible resource
type ResourceTracker struct {
	Resource    address.Address
	NonFungible bool
	Amount      Source[decimal.Decimal]
	IDs         Source[[]value.LocalID]
}

// ResourceSpecifier - a concrete resource quantity with no provenance
type ResourceSpecifier struct {
	Resource    address.Address
	NonFungible bool
	Amount      decimal.Decimal
	IDs         []value.LocalID
}

// Resources - a quantity without its resource, used as the leaf of
// nested transfer maps that already key by resource
type Resources struct {
	NonFungible bool
	Amount      decimal.Decimal
	IDs         []value.LocalID
}
