// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package devfs

import (
	"context"
	"errors"
	"syscall"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/secretdev/secretdev/device"
)

// deviceNode is the secret store's file node. All sessions share the
// one store; the store's own synchronization keeps them safe.
type deviceNode struct {
	gofuse.Inode

	options *Options
}

var _ gofuse.InodeEmbedder = (*deviceNode)(nil)
var _ gofuse.NodeGetattrer = (*deviceNode)(nil)
var _ gofuse.NodeSetattrer = (*deviceNode)(nil)
var _ gofuse.NodeOpener = (*deviceNode)(nil)

// Getattr reports the node as a world-readable, world-writable
// regular file sized to the committed secret.
func (d *deviceNode) Getattr(ctx context.Context, f gofuse.FileHandle, out *fuse.AttrOut) syscall.Errno {
	d.fillAttr(&out.Attr)
	return 0
}

// Setattr accepts size changes without touching the store. Shells
// open the node with O_TRUNC; honoring the truncate literally would
// destroy the secret before the write that follows it.
func (d *deviceNode) Setattr(ctx context.Context, f gofuse.FileHandle, in *fuse.SetAttrIn, out *fuse.AttrOut) syscall.Errno {
	d.fillAttr(&out.Attr)
	return 0
}

func (d *deviceNode) fillAttr(attr *fuse.Attr) {
	size := uint64(d.options.Store.Stats().SecretLength)
	attr.Mode = syscall.S_IFREG | 0o666
	attr.Size = size
	attr.Blocks = (size + 511) / 512
	attr.Blksize = device.MaxBytes
}

// Open starts a session on the store. Any access mode is accepted;
// the store itself decides what each transfer is allowed to do.
func (d *deviceNode) Open(ctx context.Context, flags uint32) (gofuse.FileHandle, uint32, syscall.Errno) {
	caller := callerFromContext(ctx)
	open, balance := d.options.Store.SessionOpened()
	d.options.Logger.Info("device session opened",
		"comm", caller.Comm,
		"pid", caller.PID,
		"uid", caller.UID,
		"gid", caller.GID,
		"sessions_open", open,
		"session_balance", balance)
	return &sessionHandle{node: d}, fuse.FOPEN_DIRECT_IO, 0
}

// sessionHandle is one open file description on the device node. It
// holds no transfer state: reads and writes go straight to the store.
type sessionHandle struct {
	node *deviceNode
}

var _ gofuse.FileReader = (*sessionHandle)(nil)
var _ gofuse.FileWriter = (*sessionHandle)(nil)
var _ gofuse.FileFlusher = (*sessionHandle)(nil)
var _ gofuse.FileReleaser = (*sessionHandle)(nil)

// Read returns the committed secret. A nonzero offset means the
// caller already consumed the payload on an earlier call, so it gets
// EOF; without this, sequential readers would loop forever.
func (h *sessionHandle) Read(ctx context.Context, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	if off > 0 {
		return fuse.ReadResultData(nil), 0
	}
	n, err := h.node.options.Store.Read(dest)
	if err != nil {
		return nil, errnoFromError(err)
	}
	return fuse.ReadResultData(dest[:n]), 0
}

// Write replaces the committed secret with data. The offset is
// ignored: the store has no notion of position, every write is a
// wholesale replacement.
func (h *sessionHandle) Write(ctx context.Context, data []byte, off int64) (uint32, syscall.Errno) {
	n, err := h.node.options.Store.Write(data)
	if err != nil {
		return 0, errnoFromError(err)
	}
	return uint32(n), 0
}

// Flush is a no-op. Writes commit synchronously, so there is nothing
// to push on close.
func (h *sessionHandle) Flush(ctx context.Context) syscall.Errno {
	return 0
}

// Release ends the session.
func (h *sessionHandle) Release(ctx context.Context) syscall.Errno {
	open, balance := h.node.options.Store.SessionClosed()
	h.node.options.Logger.Info("device session closed",
		"sessions_open", open,
		"session_balance", balance)
	return 0
}

// errnoFromError translates store errors into the errno a device
// driver would return for the same condition.
func errnoFromError(err error) syscall.Errno {
	switch {
	case errors.Is(err, device.ErrInvalidArgument):
		return syscall.EINVAL
	case errors.Is(err, device.ErrCopyFault):
		return syscall.EFAULT
	case errors.Is(err, device.ErrScratchExhausted):
		return syscall.ENOMEM
	default:
		return syscall.EIO
	}
}
