// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package device

import (
	"encoding/hex"
	"time"

	"github.com/zeebo/blake3"
)

// fingerprintKey is the BLAKE3 keyed-hash domain key for secret
// fingerprints. The byte values are the ASCII encoding of the domain
// name, zero-padded to 32 bytes: readable in hex dumps without
// sacrificing any cryptographic property (keyed mode treats the key
// as an opaque 32-byte value).
var fingerprintKey = [32]byte{
	's', 'e', 'c', 'r', 'e', 't', 'd', 'e', 'v', '.', 's', 'e', 'c', 'r', 'e', 't',
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Stats is a point-in-time snapshot of the store's counters and the
// identity of the committed secret. The fingerprint identifies the
// payload without exposing it: equal payloads fingerprint equal,
// and any change to the committed bytes changes it.
//
// Counter words are sampled independently, so a snapshot taken during
// concurrent traffic may show related counters (open and balance, tx
// and secret length) mid-transition relative to each other.
type Stats struct {
	TX             uint64    `json:"tx"`
	RX             uint64    `json:"rx"`
	Errors         uint64    `json:"errors"`
	SecretLength   int       `json:"secret_length"`
	Fingerprint    string    `json:"fingerprint"`
	SessionsOpen   int64     `json:"sessions_open"`
	SessionBalance int64     `json:"session_balance"`
	Config1        uint32    `json:"config1"`
	Config2        uint32    `json:"config2"`
	Config3        uint64    `json:"config3"`
	AttachedAt     time.Time `json:"attached_at"`
}

// Stats returns a snapshot of the store.
func (c *Context) Stats() Stats {
	value := c.secret.Load()
	return Stats{
		TX:             c.tx.Load(),
		RX:             c.rx.Load(),
		Errors:         c.errCount.Load(),
		SecretLength:   value.length,
		Fingerprint:    fingerprint(value.data[:value.length]),
		SessionsOpen:   c.sessions.open.Load(),
		SessionBalance: c.sessions.balance.Load(),
		Config1:        c.config1,
		Config2:        c.config2,
		Config3:        c.config3,
		AttachedAt:     c.attachedAt,
	}
}

// fingerprint computes the hex keyed-BLAKE3 digest of the committed
// payload bytes.
func fingerprint(data []byte) string {
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("device: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}
