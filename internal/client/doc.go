// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the local store and owns the process
// lifecycle: signal handling, the context carrying the logger and closing
// the database on exit.
package client
