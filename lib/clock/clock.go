// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock is the injected source of the current time. Code that needs
// time.Now takes a Clock instead, so tests can pin it.
type Clock interface {
	Now() time.Time
}
