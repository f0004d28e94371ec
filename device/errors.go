// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package device

import "errors"

// Error kinds returned by the store's data path. Callers classify with
// errors.Is; the session layer translates each kind to its errno.
var (
	// ErrInvalidArgument reports a request that violates the size
	// contract: a read buffer smaller than MaxBytes, a write larger
	// than MaxBytes, or a read while no secret is committed. EINVAL
	// class.
	ErrInvalidArgument = errors.New("device: invalid argument")

	// ErrCopyFault reports a failed boundary transfer. The store's
	// state and counters are untouched when this is returned. EFAULT
	// class.
	ErrCopyFault = errors.New("device: copy fault")

	// ErrScratchExhausted reports that page-locked staging memory
	// could not be allocated for an inbound payload. ENOMEM class.
	ErrScratchExhausted = errors.New("device: scratch memory exhausted")
)
