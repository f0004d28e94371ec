// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package guarded provides page-locked scratch buffers for staging
// payload bytes during boundary transfers.
//
// [Buffer] allocates memory outside the Go heap via mmap(MAP_ANONYMOUS),
// locks it into physical RAM via mlock (preventing swap), and marks it
// excluded from core dumps via madvise(MADV_DONTDUMP). On Close, the
// memory is zeroed, unlocked, and unmapped. Because the region lives
// outside the Go heap, the garbage collector cannot copy or relocate
// it, so no stray duplicates of staged bytes survive release.
//
// The device write path allocates one Buffer per write, exactly the
// requested payload size, fills it from the caller's buffer, commits,
// and releases it on every exit path. [New] fails when the platform
// refuses mmap or mlock (RLIMIT_MEMLOCK exhaustion is the common
// cause); callers surface that as an out-of-memory condition rather
// than falling back to unlocked heap.
//
// Depends on golang.org/x/sys/unix. No secretdev-internal dependencies.
package guarded
