// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/meridian-inc/manifestkit/fault"
)

// Instructions - the instruction section of a manifest
//
// carries either raw manifest text produced by an external compiler or
// the parsed instruction list; only the parsed form can feed traversal
// and classification
type Instructions struct {
	text     string
	parsed   []Instruction
	isParsed bool
}

// FromParsed - wrap an already parsed instruction list
func FromParsed(list []Instruction) Instructions {
	return Instructions{parsed: list, isParsed: true}
}

// FromText - wrap raw manifest text
func FromText(text string) Instructions {
	return Instructions{text: text}
}

// IsParsed - true when the parsed form is available
func (ins Instructions) IsParsed() bool {
	return ins.isParsed
}

// Parsed - the instruction list
//
// raw text cannot be traversed and is reported as an error rather
// than silently skipped
func (ins Instructions) Parsed() ([]Instruction, error) {
	if !ins.isParsed {
		return nil, fault.ErrInstructionsNotParsed
	}
	return ins.parsed, nil
}

// Text - the raw manifest text, empty for the parsed form
func (ins Instructions) Text() string {
	return ins.text
}
