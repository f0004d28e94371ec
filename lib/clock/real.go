// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// Real returns the wall clock.
func Real() Clock { return wallClock{} }
