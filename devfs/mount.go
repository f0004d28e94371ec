// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package devfs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"time"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/secretdev/secretdev/device"
)

// DefaultNodeName is the device node's filename when Options.NodeName
// is empty.
const DefaultNodeName = "secret"

// Options configures a device filesystem mount.
type Options struct {
	// Mountpoint is the directory where the filesystem is mounted.
	// Created if it does not exist.
	Mountpoint string

	// Store is the attached secret store that every session on the
	// device node talks to.
	Store *device.Context

	// NodeName is the filename of the device node inside the mount.
	// Empty means DefaultNodeName.
	NodeName string

	// AllowOther permits users other than the mounting user to access
	// the filesystem. Requires user_allow_other in /etc/fuse.conf.
	AllowOther bool

	// Logger receives session and data-path events. If nil, logging
	// goes to stderr at error level.
	Logger *slog.Logger
}

// Mount mounts the device filesystem and returns the FUSE server. The
// caller should defer Unmount and call Wait to block until the
// filesystem is unmounted.
func Mount(options Options) (*fuse.Server, error) {
	switch {
	case options.Mountpoint == "":
		return nil, fmt.Errorf("devfs: no mountpoint given")
	case options.Store == nil:
		return nil, fmt.Errorf("devfs: no store given")
	}
	if options.NodeName == "" {
		options.NodeName = DefaultNodeName
	}
	if options.Logger == nil {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
		options.Logger = slog.New(handler)
	}

	if err := os.MkdirAll(options.Mountpoint, 0o755); err != nil {
		return nil, fmt.Errorf("devfs: creating mountpoint %s: %w", options.Mountpoint, err)
	}

	root := &rootNode{options: &options}

	// Attribute caching is safe here: the node's metadata never
	// changes, and reads bypass the page cache via direct IO anyway.
	attrTTL := time.Second
	negativeTTL := 100 * time.Millisecond
	server, err := gofuse.Mount(options.Mountpoint, root, &gofuse.Options{
		EntryTimeout:    &attrTTL,
		AttrTimeout:     &attrTTL,
		NegativeTimeout: &negativeTTL,
		MountOptions: fuse.MountOptions{
			FsName:     "secretdev",
			Name:       "secretdev",
			AllowOther: options.AllowOther,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mounting filesystem: %w", err)
	}

	options.Logger.Info("device filesystem mounted",
		"mountpoint", options.Mountpoint,
		"node", options.NodeName)
	return server, nil
}

// rootNode is the filesystem root. It holds the single device node.
type rootNode struct {
	gofuse.Inode

	options *Options
}

var _ gofuse.InodeEmbedder = (*rootNode)(nil)
var _ gofuse.NodeOnAdder = (*rootNode)(nil)

// OnAdd installs the device node under the root once the mount is
// live.
func (r *rootNode) OnAdd(ctx context.Context) {
	node := &deviceNode{options: r.options}
	child := r.NewPersistentInode(ctx, node, gofuse.StableAttr{Mode: syscall.S_IFREG})
	r.AddChild(r.options.NodeName, child, true)
}
