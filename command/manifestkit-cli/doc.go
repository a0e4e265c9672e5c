// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line tool for working with packed transaction manifests:
// decode values and instruction streams, run the static analyser and
// classify transactions against an optional execution receipt.
package main
