// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts wall-clock reads behind an interface so that
// time-dependent code can be tested deterministically.
//
// Code that records timestamps takes a Clock instead of calling
// time.Now. Production callers pass Real(); tests pass a FakeClock
// whose reading only moves when the test calls Advance.
package clock
