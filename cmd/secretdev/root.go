// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/secretdev/secretdev/cmd/secretdev/cli"
	"github.com/secretdev/secretdev/lib/version"
)

// root builds the complete secretdev CLI command tree.
func root() *cli.Command {
	return &cli.Command{
		Name: "secretdev",
		Description: `secretdev: client for the secretdev secret store.

Read and replace the secret through the device node, and query
transfer statistics over the control socket.`,
		Subcommands: []*cli.Command{
			readCommand(),
			writeCommand(),
			statsCommand(),
			statusCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("secretdev %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Read the committed secret",
				Command:     "secretdev read",
			},
			{
				Description: "Demonstrate the undersized-buffer rejection",
				Command:     "secretdev read --count 32",
			},
			{
				Description: "Replace the secret from an argument",
				Command:     "secretdev write 'new secret'",
			},
			{
				Description: "Replace the secret from a pipe",
				Command:     "head -c 64 /dev/urandom | secretdev write --stdin",
			},
			{
				Description: "Show transfer statistics as JSON",
				Command:     "secretdev stats --json",
			},
		},
	}
}
