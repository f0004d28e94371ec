// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package device

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/secretdev/secretdev/lib/clock"
	"github.com/secretdev/secretdev/lib/guarded"
)

// MaxBytes is the capacity of the secret store. Reads must offer a
// buffer of at least this size, and writes may carry at most this
// many bytes.
const MaxBytes = 128

// initialSecret is the payload committed at Attach time, before any
// caller has written.
const initialSecret = "initmsg"

// secretValue is one committed secret. Values are immutable: a commit
// builds a fresh secretValue and swaps the store's pointer to it, so
// a reader holding a loaded value can copy from it without any
// coordination with writers.
type secretValue struct {
	data   [MaxBytes]byte
	length int
}

// Context is the store-side state of an attached device: the committed
// secret, the transfer and session counters, and the opaque config
// words. One Context exists per Attach, and all sessions of the device
// share it.
type Context struct {
	secret atomic.Pointer[secretValue]

	// tx counts bytes handed out by successful reads; rx counts bytes
	// accepted by successful writes. Both only grow. errCount is
	// reserved accounting, carried in Stats but never mutated on the
	// current paths.
	tx       atomic.Uint64
	rx       atomic.Uint64
	errCount atomic.Uint64

	sessions SessionCounters

	// Opaque config words, recorded at Attach and reported in Stats.
	// The store never interprets them.
	config1 uint32
	config2 uint32
	config3 uint64

	boundary   Boundary
	clock      clock.Clock
	logger     *slog.Logger
	attachedAt time.Time
}

// Options configures Attach. The zero value is usable: every field
// has a default.
type Options struct {
	// Boundary performs caller-buffer transfers. Nil selects Direct,
	// the plain in-process copy.
	Boundary Boundary

	// Clock supplies the attach timestamp. Nil selects the wall clock.
	Clock clock.Clock

	// Logger receives data-path and lifecycle events. Nil discards
	// them.
	Logger *slog.Logger

	// Opaque config words, visible in Stats and otherwise ignored.
	Config1 uint32
	Config2 uint32
	Config3 uint64
}

// Attach constructs the store and commits the initial secret. It
// probes page-locked scratch availability once (allocating and
// releasing a full-capacity staging buffer) so that an environment
// whose RLIMIT_MEMLOCK cannot cover a write fails here, at startup,
// rather than on the first caller write. Any error from Attach is
// fatal: no Context exists and the service must not come up.
func Attach(options Options) (*Context, error) {
	if options.Boundary == nil {
		options.Boundary = Direct{}
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	probe, err := guarded.New(MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("device: staging probe failed: %w", err)
	}
	if err := probe.Close(); err != nil {
		return nil, fmt.Errorf("device: staging probe release failed: %w", err)
	}

	c := &Context{
		config1:    options.Config1,
		config2:    options.Config2,
		config3:    options.Config3,
		boundary:   options.Boundary,
		clock:      options.Clock,
		logger:     options.Logger,
		attachedAt: options.Clock.Now(),
	}
	c.sessions.balance.Store(1)

	initial := &secretValue{length: len(initialSecret)}
	copy(initial.data[:], initialSecret)
	c.secret.Store(initial)

	c.logger.Info("secret store attached",
		"capacity", MaxBytes,
		"secret_length", initial.length)
	return c, nil
}

// Detach drops the committed secret, leaving the store empty. It
// always succeeds and is not guarded against later calls: the layer
// that dispatched sessions to the store is responsible for not
// routing new operations here afterwards. A read that does arrive
// after Detach fails the same way any read of an empty store does.
func (c *Context) Detach() {
	c.secret.Store(&secretValue{})
	c.logger.Info("secret store detached",
		"tx", c.tx.Load(),
		"rx", c.rx.Load())
}
