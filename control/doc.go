// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package control is the out-of-band diagnostic surface of the secret
// device: transfer counters and service facts, queried over a Unix
// socket instead of through the data path (the device node itself
// carries only payload bytes).
//
// Two actions exist. "stats" returns a [device.Stats] snapshot: tx/rx
// byte counters, the reserved error counter, the committed secret's
// length and fingerprint, session counters, and the opaque config
// words. "describe" returns static service facts ([Describe]): device
// node path, socket path, capacity, build version, PID, and attach
// time.
//
// [Server] binds a store to a service.SocketServer; [Client] provides
// typed calls for both actions. The wire protocol is the lib/service
// CBOR request-response envelope.
package control
