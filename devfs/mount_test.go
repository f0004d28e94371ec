// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package devfs

import (
	"strings"
	"testing"

	"github.com/secretdev/secretdev/device"
)

func TestMount_RequiresMountpoint(t *testing.T) {
	store, err := device.Attach(device.Options{})
	if err != nil {
		t.Fatalf("attaching store: %v", err)
	}

	_, err = Mount(Options{Store: store})
	if err == nil {
		t.Fatal("expected error for missing mountpoint")
	}
	if !strings.Contains(err.Error(), "mountpoint") {
		t.Errorf("expected mountpoint error, got %q", err)
	}
}

func TestMount_RequiresStore(t *testing.T) {
	_, err := Mount(Options{Mountpoint: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for missing store")
	}
	if !strings.Contains(err.Error(), "store") {
		t.Errorf("expected store error, got %q", err)
	}
}
