// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"github.com/meridian-inc/manifestkit/fault"
)

// CheckElements - validate container homogeneity
//
// an Array element whose kind differs from the declared element kind,
// or a Map key or value whose kind differs from the declared key or
// value kind, is a construction error and never silently coerced;
// the check recurses so nested containers are validated too
func CheckElements(v Value) error {
	switch t := v.(type) {
	case Array:
		if !t.ElementKind.IsValid() {
			return fault.ErrNotValuePack
		}
		for _, element := range t.Elements {
			if element.Kind() != t.ElementKind {
				return fault.ErrHeterogeneousContainer
			}
			if err := CheckElements(element); nil != err {
				return err
			}
		}

	case Map:
		if !t.KeyKind.IsValid() || !t.ValueKind.IsValid() {
			return fault.ErrNotValuePack
		}
		for _, entry := range t.Entries {
			if entry.Key.Kind() != t.KeyKind || entry.Value.Kind() != t.ValueKind {
				return fault.ErrHeterogeneousContainer
			}
			if err := CheckElements(entry.Key); nil != err {
				return err
			}
			if err := CheckElements(entry.Value); nil != err {
				return err
			}
		}

	case Tuple:
		for _, element := range t.Elements {
			if err := CheckElements(element); nil != err {
				return err
			}
		}

	case Enum:
		for _, field := range t.Fields {
			if err := CheckElements(field); nil != err {
				return err
			}
		}

	case Some:
		return CheckElements(t.Value)
	case Ok:
		return CheckElements(t.Value)
	case Err:
		return CheckElements(t.Value)
	}
	return nil
}
