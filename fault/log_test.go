// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/meridian-inc/manifestkit/fault"
)

// the panic log channel needs logging running first, the way the CLI
// main sets it up
func TestInitialise(t *testing.T) {
	logging := logger.Configuration{
		Directory: t.TempDir(),
		File:      "fault_test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	err := logger.Initialise(logging)
	if nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}
	defer logger.Finalise()

	err = fault.Initialise()
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	defer fault.Finalise()

	// a second channel is a programming mistake
	err = fault.Initialise()
	if fault.ErrAlreadyInitialised != err {
		t.Fatalf("second initialise error: %v  expected: %v", err, fault.ErrAlreadyInitialised)
	}
}
