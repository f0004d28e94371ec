// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"testing"
)

// SocketDir returns a short-pathed temporary directory for Unix
// socket files, removed when the test ends.
//
// t.TempDir is the wrong tool here: sun_path caps socket paths at
// 108 bytes, and CI runners routinely point TMPDIR somewhere deep
// enough to blow that limit. Allocating directly under /tmp keeps the
// joined socket path short.
func SocketDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("/tmp", "secretdev-test-*")
	if err != nil {
		t.Fatalf("creating socket directory: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}
