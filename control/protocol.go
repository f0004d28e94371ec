// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package control

import "time"

// DefaultSocketPath is where the service listens when no socket path
// is configured.
const DefaultSocketPath = "/run/secretdev/control.sock"

// Socket protocol actions. Shared by Server and Client; the strings
// are the wire-level "action" field values.
const (
	actionStats    = "stats"
	actionDescribe = "describe"
)

// Describe is the response to the "describe" action: the static facts
// of a running service. Everything here is fixed at startup.
type Describe struct {
	// DevicePath is the absolute path of the mounted device node.
	DevicePath string `json:"device_path"`

	// SocketPath is the control socket the service listens on.
	SocketPath string `json:"socket_path"`

	// MaxBytes is the device capacity.
	MaxBytes int `json:"max_bytes"`

	// Version is the service build version (version.Info format).
	Version string `json:"version"`

	// PID is the service process ID.
	PID int `json:"pid"`

	// AttachedAt is when the store was attached.
	AttachedAt time.Time `json:"attached_at"`
}
