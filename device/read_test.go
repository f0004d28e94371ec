// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package device

import (
	"bytes"
	"errors"
	"testing"
)

func TestRead_FullCapacityBuffer(t *testing.T) {
	store := newStore(t)

	dest := make([]byte, MaxBytes)
	n, err := store.Read(dest)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != len(initialSecret) {
		t.Errorf("expected %d bytes, got %d", len(initialSecret), n)
	}
}

func TestRead_OversizedBuffer(t *testing.T) {
	store := newStore(t)

	// Buffers larger than capacity are fine; only the committed
	// length comes back.
	dest := make([]byte, 4*MaxBytes)
	n, err := store.Read(dest)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got := string(dest[:n]); got != initialSecret {
		t.Errorf("expected %q, got %q", initialSecret, got)
	}
}

func TestRead_BufferTooSmall(t *testing.T) {
	store := newStore(t)

	dest := make([]byte, MaxBytes-1)
	n, err := store.Read(dest)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 bytes on rejected read, got %d", n)
	}
	if got := store.Stats().TX; got != 0 {
		t.Errorf("TX moved on rejected read: %d", got)
	}
}

func TestRead_BufferTooSmallLeavesDestUntouched(t *testing.T) {
	store := newStore(t)

	dest := make([]byte, MaxBytes-1)
	store.Read(dest)
	if !bytes.Equal(dest, make([]byte, MaxBytes-1)) {
		t.Error("rejected read modified the destination buffer")
	}
}

func TestRead_EmptyBuffer(t *testing.T) {
	store := newStore(t)

	_, err := store.Read(nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nil buffer, got %v", err)
	}
}

func TestRead_NoSecretCommitted(t *testing.T) {
	store := newStore(t)
	if _, err := store.Write(nil); err != nil {
		t.Fatalf("empty Write failed: %v", err)
	}

	_, err := store.Read(make([]byte, MaxBytes))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument on empty store, got %v", err)
	}
}

func TestRead_CopyOutFault(t *testing.T) {
	store, err := Attach(Options{Boundary: faultBoundary{failOut: true}})
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	dest := make([]byte, MaxBytes)
	n, err := store.Read(dest)
	if !errors.Is(err, ErrCopyFault) {
		t.Fatalf("expected ErrCopyFault, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 bytes on faulted read, got %d", n)
	}
	if got := store.Stats().TX; got != 0 {
		t.Errorf("TX moved on faulted read: %d", got)
	}
	if !bytes.Equal(dest, make([]byte, MaxBytes)) {
		t.Error("faulted read left bytes in the destination buffer")
	}
}

func TestRead_TXAccumulates(t *testing.T) {
	store := newStore(t)

	dest := make([]byte, MaxBytes)
	for i := 0; i < 3; i++ {
		if _, err := store.Read(dest); err != nil {
			t.Fatalf("Read %d failed: %v", i, err)
		}
	}

	want := uint64(3 * len(initialSecret))
	if got := store.Stats().TX; got != want {
		t.Errorf("TX = %d, want %d", got, want)
	}
}

func TestRead_DoesNotConsumeSecret(t *testing.T) {
	store := newStore(t)

	dest := make([]byte, MaxBytes)
	if _, err := store.Read(dest); err != nil {
		t.Fatalf("first Read failed: %v", err)
	}
	n, err := store.Read(dest)
	if err != nil {
		t.Fatalf("second Read failed: %v", err)
	}
	if got := string(dest[:n]); got != initialSecret {
		t.Errorf("second Read = %q, want %q", got, initialSecret)
	}
}
