// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package devfs exposes a secret store as a device-style file node on
// a FUSE mount. The kernel's file layer does the dispatching: open,
// read, write, flush, and release on the node become calls into the
// store, and store errors travel back to callers as errnos.
//
// The mount serves a single regular file (default name "secret",
// mode 0666) whose size reports the committed secret's length.
// Sessions are counted on open and release, with the calling
// process's PID, UID, GID, and comm logged for each.
//
// Handles run with FOPEN_DIRECT_IO. The node is a mutable device,
// not a document: page-caching it would let readers see stale
// payloads, and direct I/O also hands the store the caller's exact
// read and write sizes, which the size contract depends on (a read
// must offer a full-capacity buffer; a write carries at most the
// capacity).
//
// Offsets exist only as glue. A read at offset zero returns the whole
// committed payload; any later offset returns EOF so that sequential
// readers (cat, shell redirection) terminate. Every write call
// replaces the payload wholesale, whatever its offset. Truncation
// requests (O_TRUNC) are accepted as no-ops so shells can open the
// node for writing without disturbing it.
//
// Errno translation: ErrInvalidArgument becomes EINVAL, ErrCopyFault
// becomes EFAULT, ErrScratchExhausted becomes ENOMEM, and anything
// else becomes EIO.
package devfs
