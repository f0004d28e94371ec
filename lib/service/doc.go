// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides shared infrastructure for secretdev
// services: the Unix socket control protocol and the standard service
// logger.
//
// The socket protocol is CBOR request-response, one cycle per
// connection. A client connects, writes a single CBOR map carrying an
// "action" field plus action-specific fields, and reads back a single
// [Response] envelope ({ok, error, data}). CBOR values are
// self-delimiting, so there is no framing layer. [SocketServer]
// dispatches requests to registered [ActionFunc] handlers with read
// and write deadlines, caps request sizes, and drains in-flight
// handlers before shutdown. [ServiceClient] is the matching caller
// side; typed wrappers live with the protocol they speak (package
// control).
//
// # Authentication
//
// There is none at the socket layer. Filesystem permissions on the
// socket path determine who can issue control requests, the same way
// permissions on the device node determine who can exchange secrets.
package service
