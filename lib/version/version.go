// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// Build identity, injected through -ldflags -X. Untouched development
// and test builds keep the placeholder values.
var (
	// Version is the release version, set by the release process.
	Version = "0.1.0-dev"

	// GitCommit is the short commit hash the binary was built from.
	GitCommit = "unknown"

	// GitDirty is "true" when the working tree had uncommitted
	// changes at build time.
	GitDirty = "false"

	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Info renders the one-line identity used by --version flags and the
// control socket's describe response.
func Info() string {
	commit := GitCommit
	if GitDirty == "true" {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", Version, commit, BuildTime)
}

// Full extends Info with the toolchain and platform of the build.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
