// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package device

// Boundary moves payload bytes between caller-owned buffers and
// store-owned memory. It models the privilege-crossing copy of a
// device driver: the transfer itself is the step that can fail when
// the caller's buffer is bad, independently of any validation the
// store has already done. Implementations must copy fully or not at
// all from the store's point of view; on error the store discards
// the operation.
type Boundary interface {
	// CopyIn transfers an inbound payload from the caller's buffer
	// src into store-owned memory dst. Both slices have equal length.
	CopyIn(dst, src []byte) error

	// CopyOut transfers committed payload bytes src into the caller's
	// buffer dst. Both slices have equal length.
	CopyOut(dst, src []byte) error
}

// Direct is the in-process Boundary: both sides of the transfer live
// in the same address space, so the copy is plain and never fails.
type Direct struct{}

// CopyIn implements Boundary.
func (Direct) CopyIn(dst, src []byte) error {
	copy(dst, src)
	return nil
}

// CopyOut implements Boundary.
func (Direct) CopyOut(dst, src []byte) error {
	copy(dst, src)
	return nil
}
