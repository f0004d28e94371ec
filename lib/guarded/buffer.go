// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package guarded

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// Buffer is a fixed-size scratch region that is locked against swapping,
// excluded from core dumps, and zeroed on release. The backing memory is
// allocated via mmap outside the Go heap, so the garbage collector never
// copies or relocates it and the zeroing on Close is final.
//
// The device write path stages caller payloads here before committing
// them, which keeps in-transit secret bytes off the reusable heap. A
// Buffer must not be copied after creation. After Close, any access to
// the buffer's contents panics.
type Buffer struct {
	mu     sync.Mutex
	region []byte
	size   int
	closed bool
}

// New allocates a zero-filled scratch buffer of exactly size bytes.
// The region is:
//   - Locked into physical RAM (mlock), preventing swap
//   - Excluded from core dumps (MADV_DONTDUMP)
//   - Outside the Go heap, invisible to the garbage collector
//
// Allocation can genuinely fail: mlock is subject to RLIMIT_MEMLOCK,
// and sandboxed environments often run with a zero limit. Callers must
// treat a failure as an out-of-scratch-memory condition and must call
// Close when the buffer is no longer needed.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("guarded: buffer size must be positive, got %d", size)
	}

	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("guarded: mmap failed: %w", err)
	}

	if err := unix.Mlock(region); err != nil {
		unix.Munmap(region)
		return nil, fmt.Errorf("guarded: mlock failed: %w", err)
	}

	if err := unix.Madvise(region, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(region)
		unix.Munmap(region)
		return nil, fmt.Errorf("guarded: madvise(MADV_DONTDUMP) failed: %w", err)
	}

	return &Buffer{
		region: region,
		size:   size,
	}, nil
}

// Bytes returns the scratch region. The returned slice points directly
// into the mmap region; do not hold references to it beyond the
// lifetime of the Buffer. Panics if the buffer has been closed.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("guarded: access to closed buffer")
	}

	return b.region[:b.size]
}

// Len returns the size of the scratch region.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.size
}

// Close zeros the region, unlocks and unmaps it. Close is idempotent,
// which makes it safe to defer alongside early-return error paths.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	Zero(b.region)

	// Unlock and unmap. The first failure is reported; the memory is
	// released by the kernel at process exit regardless.
	var firstError error
	if err := unix.Munlock(b.region); err != nil && firstError == nil {
		firstError = fmt.Errorf("guarded: munlock failed: %w", err)
	}
	if err := unix.Munmap(b.region); err != nil && firstError == nil {
		firstError = fmt.Errorf("guarded: munmap failed: %w", err)
	}

	b.region = nil
	return firstError
}

// Zero overwrites every byte of data with zeros. Use it to scrub
// heap-allocated slices that briefly held payload bytes (prompt input,
// staging copies) once they are no longer needed.
func Zero(data []byte) {
	for index := range data {
		data[index] = 0
	}
}
