// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/value"
)

func hexArgument(c *cli.Context) ([]byte, error) {
	if 1 != c.NArg() {
		return nil, fault.ErrInvalidTextualLiteral
	}
	s := strings.TrimSpace(c.Args().Get(0))
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	return b, nil
}

func runValueDecode(c *cli.Context) error {
	m := config(c)

	buffer, err := hexArgument(c)
	if nil != err {
		return err
	}

	v, err := value.Decode(buffer, m.networkID)
	if nil != err {
		return err
	}

	node, err := value.ToText(v, m.networkID)
	if nil != err {
		return err
	}

	if m.verbose {
		return printJson(c.App.Writer, node)
	}
	fmt.Fprintf(c.App.Writer, "%s\n", node)
	return nil
}

func runValueEncode(c *cli.Context) error {
	m := config(c)

	input, err := io.ReadAll(os.Stdin)
	if nil != err {
		return err
	}

	var node value.TextNode
	err = json.Unmarshal(input, &node)
	if nil != err {
		return err
	}

	v, err := value.FromText(node, m.networkID)
	if nil != err {
		return err
	}

	packed, err := value.Pack(v)
	if nil != err {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s\n", hex.EncodeToString(packed))
	return nil
}
