// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package device

import (
	"fmt"

	"github.com/secretdev/secretdev/lib/guarded"
)

// Write replaces the committed secret with the bytes of src and
// returns len(src). Payloads larger than MaxBytes are rejected with
// ErrInvalidArgument before any staging happens. A zero-length write
// is a valid commit: it leaves the store empty, so the next read
// fails until something is written again.
//
// Inbound bytes are staged in page-locked scratch memory that is
// zeroed and released on every exit path. The commit is all or
// nothing: on ErrScratchExhausted or ErrCopyFault the previously
// committed secret is untouched and rx has not moved. On success rx
// grows by the accepted byte count.
func (c *Context) Write(src []byte) (int, error) {
	count := len(src)
	if count > MaxBytes {
		c.logger.Warn("write exceeds device capacity",
			"count", count,
			"capacity", MaxBytes)
		return 0, fmt.Errorf("%w: write of %d bytes exceeds capacity %d", ErrInvalidArgument, count, MaxBytes)
	}

	if count == 0 {
		// Nothing to stage and nothing to copy: commit the empty
		// value directly.
		c.secret.Store(&secretValue{})
		c.logger.Debug("secret written", "bytes", 0)
		return 0, nil
	}

	staging, err := guarded.New(count)
	if err != nil {
		c.logger.Warn("staging allocation failed", "bytes", count, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrScratchExhausted, err)
	}
	defer staging.Close()

	if err := c.boundary.CopyIn(staging.Bytes(), src); err != nil {
		c.logger.Warn("copy-in fault", "bytes", count, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrCopyFault, err)
	}

	value := &secretValue{length: count}
	copy(value.data[:], staging.Bytes())
	c.secret.Store(value)

	c.rx.Add(uint64(count))
	c.logger.Debug("secret written", "bytes", count)
	return count, nil
}
