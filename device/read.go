// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package device

import "fmt"

// Read copies the committed secret into dest and returns the number
// of bytes copied. dest must have room for a full-capacity payload:
// offering fewer than MaxBytes bytes is rejected with
// ErrInvalidArgument before anything is copied, however short the
// committed secret currently is. Reading an empty store (never
// written, written empty, or detached) also fails with
// ErrInvalidArgument.
//
// On success tx grows by the byte count returned. On any error no
// bytes have been copied and no counters have moved.
func (c *Context) Read(dest []byte) (int, error) {
	count := len(dest)
	if count < MaxBytes {
		c.logger.Warn("read buffer below device capacity",
			"count", count,
			"required", MaxBytes)
		return 0, fmt.Errorf("%w: read buffer holds %d bytes, need %d", ErrInvalidArgument, count, MaxBytes)
	}

	value := c.secret.Load()
	if value.length == 0 {
		c.logger.Warn("read with no secret committed")
		return 0, fmt.Errorf("%w: no secret committed", ErrInvalidArgument)
	}

	if err := c.boundary.CopyOut(dest[:value.length], value.data[:value.length]); err != nil {
		c.logger.Warn("copy-out fault", "bytes", value.length, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrCopyFault, err)
	}

	c.tx.Add(uint64(value.length))
	c.logger.Debug("secret read", "bytes", value.length)
	return value.length, nil
}
