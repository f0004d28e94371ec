// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/secretdev/secretdev/control"
	"github.com/secretdev/secretdev/devfs"
	"github.com/secretdev/secretdev/lib/service"
)

// Config is the service configuration.
type Config struct {
	// Paths configures filesystem locations.
	Paths PathsConfig `yaml:"paths"`

	// Device configures the device node and the store's attach words.
	Device DeviceConfig `yaml:"device"`

	// Log configures logging.
	Log LogConfig `yaml:"log"`
}

// PathsConfig configures filesystem locations.
type PathsConfig struct {
	// Mountpoint is the directory where the device filesystem is
	// mounted. Default: /mnt/secretdev
	Mountpoint string `yaml:"mountpoint"`

	// Socket is the Unix socket path for the control service.
	// Default: /run/secretdev/control.sock
	Socket string `yaml:"socket"`
}

// DeviceConfig configures the device node and the store.
type DeviceConfig struct {
	// NodeName is the device node's filename inside the mount.
	// Default: secret
	NodeName string `yaml:"node_name"`

	// AllowOther permits users other than the mounting user to access
	// the device node. Requires user_allow_other in /etc/fuse.conf.
	// Default: true
	AllowOther bool `yaml:"allow_other"`

	// Config1, Config2, and Config3 are opaque words recorded on the
	// store at attach. The store carries them without interpreting
	// them.
	Config1 uint32 `yaml:"config1"`
	Config2 uint32 `yaml:"config2"`
	Config3 uint64 `yaml:"config3"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the default configuration. These are the values a
// bare `secretdev-service` run uses; a config file and flags override
// them.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Mountpoint: "/mnt/secretdev",
			Socket:     control.DefaultSocketPath,
		},
		Device: DeviceConfig{
			NodeName:   devfs.DefaultNodeName,
			AllowOther: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadFile loads configuration from a YAML file, merging it over the
// defaults. Fields absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// DevicePath returns the full path of the device node.
func (c *Config) DevicePath() string {
	return filepath.Join(c.Paths.Mountpoint, c.Device.NodeName)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Paths.Mountpoint == "" {
		errs = append(errs, fmt.Errorf("paths.mountpoint is required"))
	}
	if c.Paths.Socket == "" {
		errs = append(errs, fmt.Errorf("paths.socket is required"))
	}
	if c.Device.NodeName == "" {
		errs = append(errs, fmt.Errorf("device.node_name is required"))
	}
	if _, err := service.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
