// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value_test

import (
	"strings"
	"testing"

	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/value"
)

// ensures that parse->render returns the canonical literal for every
// local id form
func TestLocalIDFromStringRoundTrip(t *testing.T) {
	ruid := "{" + strings.Repeat("ab", 32) + "}"

	tests := []struct {
		str  string
		kind value.LocalIDKind
	}{
		{"#0#", value.LocalIDInteger},
		{"#18446744073709551615#", value.LocalIDInteger},
		{"<unit_1>", value.LocalIDString},
		{"[dead]", value.LocalIDBytes},
		{ruid, value.LocalIDRUID},
	}

	for i, test := range tests {
		id, err := value.LocalIDFromString(test.str)
		if nil != err {
			t.Fatalf("%d: parse %q error: %s", i, test.str, err)
		}
		if test.kind != id.LocalIDKind() {
			t.Errorf("%d: kind: %d  expected: %d", i, id.LocalIDKind(), test.kind)
		}
		if s := id.String(); s != test.str {
			t.Errorf("%d: rendered: %q  expected: %q", i, s, test.str)
		}
	}
}

func TestLocalIDFromStringRejectsInvalid(t *testing.T) {
	invalid := []string{
		"",
		"#",
		"#not a number#",
		"#-1#",
		"<>",
		"<spaced name>",
		"<" + strings.Repeat("a", 65) + ">",
		"[]",
		"[zz]",
		"[" + strings.Repeat("ab", 65) + "]",
		"{abcd}",
		"plain",
	}
	for i, s := range invalid {
		_, err := value.LocalIDFromString(s)
		if fault.ErrInvalidNonFungibleLocalId != err {
			t.Errorf("%d: parse %q error: %v  expected: %v", i, s, err, fault.ErrInvalidNonFungibleLocalId)
		}
	}
}

// ruid literals may carry uuid style dashes
func TestRUIDLocalIDDashes(t *testing.T) {
	hex := strings.Repeat("ab", 32)
	dashed := "{" + hex[:8] + "-" + hex[8:12] + "-" + hex[12:] + "}"

	id, err := value.LocalIDFromString(dashed)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	if s := id.String(); s != "{"+hex+"}" {
		t.Fatalf("rendered: %q  expected: %q", s, "{"+hex+"}")
	}
}

func TestLocalIDConstructors(t *testing.T) {
	if _, err := value.StringLocalID("has space"); fault.ErrInvalidNonFungibleLocalId != err {
		t.Fatalf("string id error: %v  expected: %v", err, fault.ErrInvalidNonFungibleLocalId)
	}
	if _, err := value.BytesLocalID(nil); fault.ErrInvalidNonFungibleLocalId != err {
		t.Fatalf("bytes id error: %v  expected: %v", err, fault.ErrInvalidNonFungibleLocalId)
	}
	if _, err := value.RUIDLocalID(make([]byte, 31)); fault.ErrInvalidNonFungibleLocalId != err {
		t.Fatalf("ruid id error: %v  expected: %v", err, fault.ErrInvalidNonFungibleLocalId)
	}

	id := value.IntegerLocalID(7)
	if 7 != id.Integer() {
		t.Fatalf("integer payload: %d  expected: 7", id.Integer())
	}
}
