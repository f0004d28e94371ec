// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/secretdev/secretdev/cmd/secretdev/cli"
)

// TestCommandTree walks the full production command tree and checks
// the invariants help output depends on: unique sibling names, a
// summary on every subcommand, and an action on every leaf.
func TestCommandTree(t *testing.T) {
	walkCommands(root(), nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")

		seen := make(map[string]bool)
		for _, sub := range command.Subcommands {
			if sub.Name == "" {
				t.Errorf("%s: subcommand with empty name", name)
			}
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", name, sub.Name)
			}
			seen[sub.Name] = true
			if sub.Summary == "" {
				t.Errorf("%s %s: missing summary", name, sub.Name)
			}
		}

		if len(command.Subcommands) == 0 && command.Run == nil {
			t.Errorf("%s: leaf command without Run", name)
		}
	})
}

// walkCommands recursively visits every command in the tree, calling
// visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}

func TestRootDispatchesVersion(t *testing.T) {
	if err := root().Execute([]string{"version"}); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}

func TestDeviceConnection_Defaults(t *testing.T) {
	t.Setenv("SECRETDEV_MOUNTPOINT", "")

	var connection deviceConnection
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	connection.addFlags(flagSet)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("parsing empty args: %v", err)
	}

	if got := connection.devicePath(); got != "/mnt/secretdev/secret" {
		t.Errorf("expected /mnt/secretdev/secret, got %s", got)
	}
}

func TestDeviceConnection_EnvDefault(t *testing.T) {
	t.Setenv("SECRETDEV_MOUNTPOINT", "/env/mount")

	var connection deviceConnection
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	connection.addFlags(flagSet)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("parsing empty args: %v", err)
	}

	if got := connection.devicePath(); got != "/env/mount/secret" {
		t.Errorf("expected env default to apply, got %s", got)
	}
}

func TestDeviceConnection_FlagBeatsEnv(t *testing.T) {
	t.Setenv("SECRETDEV_MOUNTPOINT", "/env/mount")

	var connection deviceConnection
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	connection.addFlags(flagSet)
	if err := flagSet.Parse([]string{"--mountpoint", "/flag/mount", "--node", "vault"}); err != nil {
		t.Fatalf("parsing args: %v", err)
	}

	if got := connection.devicePath(); got != "/flag/mount/vault" {
		t.Errorf("expected flag values to win, got %s", got)
	}
}

func TestSocketConnection_EnvDefault(t *testing.T) {
	t.Setenv("SECRETDEV_SOCKET", "/env/control.sock")

	var connection socketConnection
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	connection.addFlags(flagSet)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("parsing empty args: %v", err)
	}

	if connection.SocketPath != "/env/control.sock" {
		t.Errorf("expected env default to apply, got %s", connection.SocketPath)
	}
}

func TestResolvePayload_Argument(t *testing.T) {
	payload, err := resolvePayload([]string{"hunter2"}, false)
	if err != nil {
		t.Fatalf("resolvePayload failed: %v", err)
	}
	if string(payload) != "hunter2" {
		t.Errorf("expected payload hunter2, got %q", payload)
	}
}

func TestResolvePayload_ArgumentAndStdinConflict(t *testing.T) {
	_, err := resolvePayload([]string{"value"}, true)
	if err == nil {
		t.Fatal("expected error for value argument combined with --stdin")
	}
}

func TestResolvePayload_TooManyArguments(t *testing.T) {
	_, err := resolvePayload([]string{"one", "two"}, false)
	if err == nil {
		t.Fatal("expected error for multiple value arguments")
	}
}
