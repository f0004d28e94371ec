// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/secretdev/secretdev/control"
	"github.com/secretdev/secretdev/devfs"
)

// defaultMountpoint matches the service's default mount directory.
const defaultMountpoint = "/mnt/secretdev"

// deviceConnection carries the flags that locate the device node.
// Defaults come from the SECRETDEV_MOUNTPOINT environment variable
// when set.
type deviceConnection struct {
	Mountpoint string
	Node       string
}

func (c *deviceConnection) addFlags(flagSet *pflag.FlagSet) {
	mountpointDefault := defaultMountpoint
	if envMountpoint := os.Getenv("SECRETDEV_MOUNTPOINT"); envMountpoint != "" {
		mountpointDefault = envMountpoint
	}

	flagSet.StringVar(&c.Mountpoint, "mountpoint", mountpointDefault, "device filesystem mount directory")
	flagSet.StringVar(&c.Node, "node", devfs.DefaultNodeName, "device node filename")
}

// devicePath returns the full path of the device node.
func (c *deviceConnection) devicePath() string {
	return filepath.Join(c.Mountpoint, c.Node)
}

// socketConnection carries the flag that locates the control socket.
// The default comes from the SECRETDEV_SOCKET environment variable
// when set.
type socketConnection struct {
	SocketPath string
}

func (c *socketConnection) addFlags(flagSet *pflag.FlagSet) {
	socketDefault := control.DefaultSocketPath
	if envSocket := os.Getenv("SECRETDEV_SOCKET"); envSocket != "" {
		socketDefault = envSocket
	}

	flagSet.StringVar(&c.SocketPath, "socket", socketDefault, "control socket path")
}

// connect creates a control client from the connection parameters.
func (c *socketConnection) connect() (*control.Client, error) {
	return control.NewClient(c.SocketPath)
}
