// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/meridian-inc/manifestkit/fault"
	"github.com/meridian-inc/manifestkit/network"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// metadata - data shared between the command handlers
type metadata struct {
	networkID network.ID
	verbose   bool
}

func main() {
	defer exitwithstatus.Handler()

	// start logging
	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "manifestkit-cli.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	err := logger.Initialise(logging)
	if nil != err {
		exitwithstatus.Message("manifestkit-cli: logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	// set up the fault panic log (now that logging is available)
	fault.Initialise()
	defer fault.Finalise()

	m := metadata{}

	app := cli.NewApp()
	app.Name = "manifestkit-cli"
	app.Usage = "decode, analyse and classify transaction manifests"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: network.MainnetName,
			Usage: " decode for `NETWORK` [main|test|local]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "value-decode",
			Usage:     "decode a packed value to its manifest literal",
			ArgsUsage: "HEX",
			Action:    runValueDecode,
		},
		{
			Name:      "value-encode",
			Usage:     "encode the JSON literal tree on stdin to a packed value",
			ArgsUsage: "",
			Action:    runValueEncode,
		},
		{
			Name:      "instructions-decode",
			Usage:     "decode a packed instruction stream to a summary",
			ArgsUsage: "HEX",
			Action:    runInstructionsDecode,
		},
		{
			Name:      "classify",
			Usage:     "classify a packed instruction stream",
			ArgsUsage: "HEX",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receipt, r",
					Value: "",
					Usage: " packed execution receipt `HEX`",
				},
			},
			Action: runClassify,
		},
		{
			Name:      "analyze",
			Usage:     "static analysis of a packed instruction stream",
			ArgsUsage: "HEX",
			Action:    runAnalyze,
		},
	}

	app.Before = func(c *cli.Context) error {
		m.verbose = c.GlobalBool("verbose")
		id, err := network.FromName(c.GlobalString("network"))
		if nil != err {
			return err
		}
		m.networkID = id
		return nil
	}

	// make the shared data reachable from the command handlers
	app.Metadata = map[string]interface{}{
		"config": &m,
	}

	err = app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

// config - fetch the shared data inside a command handler
func config(c *cli.Context) *metadata {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		fault.Panicf("main: missing metadata")
	}
	return m
}
