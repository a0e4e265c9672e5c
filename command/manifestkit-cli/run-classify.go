// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/meridian-inc/manifestkit/classify"
	"github.com/meridian-inc/manifestkit/instruction"
)

func runClassify(c *cli.Context) error {
	m := config(c)

	buffer, err := hexArgument(c)
	if nil != err {
		return err
	}

	list, err := instruction.UnpackInstructions(buffer, m.networkID)
	if nil != err {
		return err
	}

	var receiptBytes []byte
	if r := c.String("receipt"); "" != r {
		receiptBytes, err = hex.DecodeString(r)
		if nil != err {
			return err
		}
	}

	result, err := classify.Classify(instruction.FromParsed(list), receiptBytes, m.networkID)
	if nil != err {
		return err
	}
	return printJson(c.App.Writer, result)
}

func runAnalyze(c *cli.Context) error {
	m := config(c)

	buffer, err := hexArgument(c)
	if nil != err {
		return err
	}

	list, err := instruction.UnpackInstructions(buffer, m.networkID)
	if nil != err {
		return err
	}

	summary, err := classify.AnalyzeManifest(instruction.FromParsed(list), m.networkID)
	if nil != err {
		return err
	}
	return printJson(c.App.Writer, summary)
}
