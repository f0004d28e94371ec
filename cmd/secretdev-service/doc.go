// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

// Package main implements the secretdev service: it attaches a secret
// store, exposes it as a device node on a FUSE mount, and serves
// store statistics over a Unix control socket.
//
// The device node is the data path. Processes open it like a file;
// reads return the committed secret and writes replace it, subject to
// the store's size contract. The control socket is the out-of-band
// path, answering stats and describe queries without opening a device
// session.
//
// Configuration comes from an optional YAML file plus flags; a flag
// set on the command line wins over the file. The service runs until
// SIGINT or SIGTERM, then unmounts the filesystem before detaching
// the store so no session can reach a dead store.
package main
