// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package device

import "sync/atomic"

// SessionCounters tracks device sessions with two deliberately
// redundant words: open counts live sessions, and balance starts at 1
// and moves opposite to open, reading 1-open. Each word is updated
// atomically on its own; there is no combined update, so a reader
// sampling both may catch a pair mid-transition. At quiescence the
// pair is always consistent.
type SessionCounters struct {
	open    atomic.Int64
	balance atomic.Int64
}

// SessionOpened records a new session against the store and returns
// the updated counter values for logging.
func (c *Context) SessionOpened() (open, balance int64) {
	open = c.sessions.open.Add(1)
	balance = c.sessions.balance.Add(-1)
	return open, balance
}

// SessionClosed records the end of a session and returns the updated
// counter values for logging.
func (c *Context) SessionClosed() (open, balance int64) {
	open = c.sessions.open.Add(-1)
	balance = c.sessions.balance.Add(1)
	return open, balance
}
