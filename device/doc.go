// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package device implements the secret store: a single bounded
// in-memory payload exchanged wholesale between the service and its
// callers, with the validation, staging, and accounting rules of a
// character-device read/write path.
//
// # Model
//
// A [Context] holds one committed secret of at most [MaxBytes] bytes.
// [Context.Read] hands the whole committed payload to a caller whose
// buffer can hold a full-capacity payload; [Context.Write] replaces
// the payload wholesale. There are no offsets, no partial transfers,
// and no persistence: the secret lives exactly as long as the Context.
//
// # Copy boundary
//
// Payload bytes cross between caller-owned buffers and store-owned
// memory through a [Boundary]. The production implementation, [Direct],
// is a plain in-process copy that never fails; tests substitute
// fault-injecting boundaries to exercise the ErrCopyFault paths the
// way a bad caller buffer would on a real privilege boundary.
//
// # Staging
//
// Inbound payloads are staged in page-locked scratch memory
// (lib/guarded) before they are committed, and the scratch region is
// zeroed and released on every exit path. Payload bytes therefore
// never transit reusable heap memory on the write path. [Attach]
// probes scratch availability once at startup so that an environment
// without mlock headroom fails fast instead of failing the first
// write.
//
// # Concurrency
//
// The store takes no locks. The committed secret is an immutable
// value behind an atomic pointer: writers build a new value and swap
// it in, readers always observe exactly one committed payload, and
// concurrent writers resolve to last-writer-wins. Transfer and
// session counters are independent atomic words; a reader of several
// counters may observe them mid-transition relative to each other.
package device
