// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"
)

// Dynamic - an address argument that is either a static global address
// or a named address allocated earlier in the same manifest
//
// named addresses cannot take part in pattern matching because their
// concrete value is unknown until execution
type Dynamic interface {
	dynamic()
	String() string
}

// Static - a concrete global address
type Static struct {
	Address
}

// Named - a manifest-scoped address id
type Named uint32

func (Static) dynamic() {}
func (Named) dynamic()  {}

// String - render a named address by its index
func (n Named) String() string {
	return fmt.Sprintf("NamedAddress(%d)", uint32(n))
}

// StaticOf - unwrap a dynamic address if it is static
func StaticOf(d Dynamic) (Address, bool) {
	s, ok := d.(Static)
	if !ok {
		return Address{}, false
	}
	return s.Address, true
}
