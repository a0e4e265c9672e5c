// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
)

// ShapeError - a textual node's inner shape does not match what its
// declared kind requires
//
// carries the expected kind set and the kind actually found so callers
// can produce precise diagnostics
type ShapeError struct {
	Parsing  Kind
	Expected []Kind
	Found    Kind
}

func (e ShapeError) Error() string {
	return fmt.Sprintf(
		"unexpected contents parsing %s: expected one of %v found %s",
		e.Parsing, e.Expected, e.Found,
	)
}

// ExpressionError - an expression literal with an unknown string
type ExpressionError struct {
	Found    string
	Expected []string
}

func (e ExpressionError) Error() string {
	return fmt.Sprintf(
		"invalid expression string %q: expected one of %v",
		e.Found, e.Expected,
	)
}
