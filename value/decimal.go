// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-inc/manifestkit/fault"
)

// fractional digit limits of the two decimal kinds
const (
	DecimalScale        = 18
	PreciseDecimalScale = 64
)

// integer digit limits, chosen so either kind fits its fixed width
// wire budget
const (
	decimalIntegerDigits        = 60
	preciseDecimalIntegerDigits = 90
)

// DecimalFromString - parse a Decimal literal with scale and magnitude
// bounds enforced
func DecimalFromString(s string) (decimal.Decimal, error) {
	return boundedDecimal(s, DecimalScale, decimalIntegerDigits)
}

// PreciseDecimalFromString - parse a PreciseDecimal literal with scale
// and magnitude bounds enforced
func PreciseDecimalFromString(s string) (decimal.Decimal, error) {
	return boundedDecimal(s, PreciseDecimalScale, preciseDecimalIntegerDigits)
}

func boundedDecimal(s string, scale int32, integerDigits int32) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if nil != err {
		return decimal.Decimal{}, fault.ErrOutOfRangeDecimal
	}
	if d.Exponent() < -scale {
		return decimal.Decimal{}, fault.ErrOutOfRangeDecimal
	}
	if int32(len(d.Truncate(0).Abs().String())) > integerDigits {
		return decimal.Decimal{}, fault.ErrOutOfRangeDecimal
	}
	return d, nil
}

// MustDecimal - parse a Decimal literal, panic on bad input
//
// only for statically known literals such as tests and fixtures
func MustDecimal(s string) decimal.Decimal {
	d, err := DecimalFromString(s)
	if nil != err {
		fault.Panicf("MustDecimal: %q: %s", s, err)
	}
	return d
}
