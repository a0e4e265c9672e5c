// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/meridian-inc/manifestkit/fault"
)

// Int128 - a 128-bit two's complement signed integer
//
// stored as machine words so the containing variant stays comparable
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	int128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	int128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	u128Max   = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// Int128FromString - parse a decimal string with 128-bit range check
func Int128FromString(s string) (Int128, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, fault.ErrOutOfRangeInteger
	}
	return Int128FromBig(i)
}

// Int128FromBig - convert with 128-bit range check
func Int128FromBig(i *big.Int) (Int128, error) {
	if i.Cmp(int128Min) < 0 || i.Cmp(int128Max) > 0 {
		return Int128{}, fault.ErrOutOfRangeInteger
	}
	// two's complement: reduce modulo 2^128 then split words
	m := new(big.Int).And(i, u128Max)
	lo := new(big.Int).And(m, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(m, 64).Uint64()
	return Int128{Hi: int64(hi), Lo: lo}, nil
}

// Big - expand back to a big integer
func (i Int128) Big() *big.Int {
	b := new(big.Int).SetUint64(uint64(i.Hi))
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(i.Lo))
	if i.Hi < 0 {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return b
}

// String - canonical decimal form
func (i Int128) String() string {
	return i.Big().String()
}

// Uint128FromString - parse a decimal string with 128-bit range check
func Uint128FromString(s string) (uint256.Int, error) {
	i, err := uint256.FromDecimal(s)
	if nil != err {
		return uint256.Int{}, fault.ErrOutOfRangeInteger
	}
	return uint128Checked(i)
}

// uint128Checked - reject anything above 128 bits
func uint128Checked(i *uint256.Int) (uint256.Int, error) {
	if 0 != i[2] || 0 != i[3] {
		return uint256.Int{}, fault.ErrOutOfRangeInteger
	}
	return *i, nil
}
