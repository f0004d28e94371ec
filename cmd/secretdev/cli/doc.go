// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree for the secretdev CLI:
// declarative [Command] values with pflag flag sets, nested
// subcommand dispatch, structured help output, and typo suggestions
// for unknown commands and flags.
package cli
