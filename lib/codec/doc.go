// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// the secretdev control protocol.
//
// secretdev uses two serialization formats with a clear boundary:
//
//   - JSON for human-facing output: the CLI's --json mode.
//   - CBOR for the wire: control socket requests and responses.
//
// This package provides the shared CBOR encoding and decoding modes so
// that server and client encode identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (the control socket):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// # Struct Tag Rules
//
// The struct tag on a type documents its serialization format:
//
//   - `cbor` tag: the type is only ever serialized as CBOR (protocol
//     envelopes).
//   - `json` tag: the type may be serialized as both JSON and CBOR.
//     fxamacker/cbor v2 reads `json` tags as fallback when `cbor` tags
//     are absent, so a single `json` tag controls field naming and
//     omitempty for both formats (stats and describe payloads, which
//     the CLI also prints as JSON).
//
// Never use both `cbor` and `json` tags on the same field; the tag
// choice documents which contract a type participates in.
package codec
