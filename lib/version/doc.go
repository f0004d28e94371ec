// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package version carries the build identity of secretdev binaries.
//
// The package-level variables ([Version], [GitCommit], [GitDirty],
// [BuildTime]) are injected with -ldflags -X, for example:
//
//	go build -ldflags "-X github.com/secretdev/secretdev/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// [Info] formats them as the one-line string used by --version flags
// and the control socket's describe response; [Full] adds the Go
// toolchain and platform for the CLI's version subcommand.
package version
