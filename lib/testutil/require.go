// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"testing"
	"time"
)

// RequireReceive returns the next value from ch, failing the test if
// none arrives within timeout or the channel closes empty. It keeps
// the select-with-timeout safety valve out of individual tests.
func RequireReceive[T any](t *testing.T, ch <-chan T, timeout time.Duration, msg string) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed before a value arrived: %s", msg)
		}
		return v
	case <-time.After(timeout):
		t.Fatalf("nothing received after %v: %s", timeout, msg)
	}
	panic("unreachable")
}
