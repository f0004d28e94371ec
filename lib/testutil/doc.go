// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil holds the small helpers secretdev tests share.
//
// [SocketDir] hands out a short-pathed directory under /tmp for Unix
// socket files; sun_path's 108-byte limit rules out t.TempDir on CI
// runners with deep TMPDIRs. [RequireReceive] is the channel-receive
// safety valve: a receive that must happen, bounded by a timeout, with
// the select boilerplate kept out of tests.
//
// Helpers fail the test with t.Fatalf instead of returning errors;
// there is nothing a test can do with a broken fixture.
//
// This package has no secretdev-internal dependencies.
package testutil
