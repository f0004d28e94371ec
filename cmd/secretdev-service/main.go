// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/secretdev/secretdev/control"
	"github.com/secretdev/secretdev/devfs"
	"github.com/secretdev/secretdev/device"
	"github.com/secretdev/secretdev/lib/service"
	"github.com/secretdev/secretdev/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")

	var (
		configPath string
		mountpoint string
		socketPath string
		nodeName   string
		allowOther bool
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "path to YAML configuration file (optional)")
	flag.StringVar(&mountpoint, "mountpoint", "", "device filesystem mount directory")
	flag.StringVar(&socketPath, "socket", "", "control socket path")
	flag.StringVar(&nodeName, "node-name", "", "device node filename")
	flag.BoolVar(&allowOther, "allow-other", true, "allow other users to access the device node")
	flag.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	if showVersion {
		fmt.Printf("secretdev-service %s\n", version.Info())
		return nil
	}

	cfg := Default()
	if configPath != "" {
		loaded, err := LoadFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags the user actually set win over the file. flag.Visit only
	// walks set flags, so defaults never clobber file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mountpoint":
			cfg.Paths.Mountpoint = mountpoint
		case "socket":
			cfg.Paths.Socket = socketPath
		case "node-name":
			cfg.Device.NodeName = nodeName
		case "allow-other":
			cfg.Device.AllowOther = allowOther
		case "log-level":
			cfg.Log.Level = logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := service.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := service.NewLogger(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Attach the store. Any failure here is fatal: a service without
	// a store has nothing to serve.
	store, err := device.Attach(device.Options{
		Logger:  logger,
		Config1: cfg.Device.Config1,
		Config2: cfg.Device.Config2,
		Config3: cfg.Device.Config3,
	})
	if err != nil {
		return fmt.Errorf("attaching secret store: %w", err)
	}
	defer store.Detach()

	// Mount the device filesystem. LIFO defer order unmounts before
	// Detach, so no session can reach a detached store.
	fuseServer, err := devfs.Mount(devfs.Options{
		Mountpoint: cfg.Paths.Mountpoint,
		Store:      store,
		NodeName:   cfg.Device.NodeName,
		AllowOther: cfg.Device.AllowOther,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("mounting device filesystem: %w", err)
	}
	defer func() {
		if err := fuseServer.Unmount(); err != nil {
			logger.Error("failed to unmount device filesystem", "error", err)
		} else {
			logger.Info("device filesystem unmounted", "mountpoint", cfg.Paths.Mountpoint)
		}
	}()

	controlServer, err := control.NewServer(control.ServerOptions{
		Store:      store,
		SocketPath: cfg.Paths.Socket,
		DevicePath: cfg.DevicePath(),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("creating control server: %w", err)
	}

	// Start the control socket listener in a goroutine.
	socketDone := make(chan error, 1)
	go func() {
		socketDone <- controlServer.Serve(ctx)
	}()

	logger.Info("secretdev service running",
		"device", cfg.DevicePath(),
		"socket", cfg.Paths.Socket,
		"capacity", device.MaxBytes,
		"version", version.Info(),
	)

	// Wait for shutdown signal.
	<-ctx.Done()
	logger.Info("shutting down")

	// Wait for the control socket to drain active connections.
	if err := <-socketDone; err != nil {
		logger.Error("control socket error", "error", err)
	}

	return nil
}
