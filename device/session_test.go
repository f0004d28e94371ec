// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package device

import "testing"

func TestSessionOpened_MovesBothCounters(t *testing.T) {
	store := newStore(t)

	open, balance := store.SessionOpened()
	if open != 1 {
		t.Errorf("open = %d, want 1", open)
	}
	if balance != 0 {
		t.Errorf("balance = %d, want 0", balance)
	}
}

func TestSessionClosed_RestoresIdleValues(t *testing.T) {
	store := newStore(t)

	store.SessionOpened()
	open, balance := store.SessionClosed()
	if open != 0 {
		t.Errorf("open = %d, want 0", open)
	}
	if balance != 1 {
		t.Errorf("balance = %d, want 1", balance)
	}
}

func TestSessionCounters_Nested(t *testing.T) {
	store := newStore(t)

	store.SessionOpened()
	open, balance := store.SessionOpened()
	if open != 2 || balance != -1 {
		t.Errorf("after two opens: open = %d, balance = %d, want 2, -1", open, balance)
	}

	store.SessionClosed()
	open, balance = store.SessionClosed()
	if open != 0 || balance != 1 {
		t.Errorf("after both close: open = %d, balance = %d, want 0, 1", open, balance)
	}
}

func TestSessionCounters_VisibleInStats(t *testing.T) {
	store := newStore(t)

	store.SessionOpened()
	store.SessionOpened()
	stats := store.Stats()
	if stats.SessionsOpen != 2 {
		t.Errorf("SessionsOpen = %d, want 2", stats.SessionsOpen)
	}
	if stats.SessionBalance != -1 {
		t.Errorf("SessionBalance = %d, want -1", stats.SessionBalance)
	}
}
