// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line application runtime.
//
// It wires the config fetcher and the payload validator into a single
// download run whose result is written to an output stream.
package client
