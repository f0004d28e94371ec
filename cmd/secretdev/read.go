// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/secretdev/secretdev/cmd/secretdev/cli"
	"github.com/secretdev/secretdev/device"
)

type readParams struct {
	deviceConnection
	Count int
}

func readCommand() *cli.Command {
	var params readParams

	return &cli.Command{
		Name:    "read",
		Summary: "Read the committed secret from the device node",
		Usage:   "secretdev read [flags]",
		Description: `Open the device node read-only and issue a single read with a
buffer of --count bytes.

The store hands out the whole secret or nothing: the read buffer must
hold the full 128-byte capacity, so --count below 128 demonstrates
the invalid-argument rejection.`,
		Examples: []cli.Example{
			{
				Description: "Read with a full-capacity buffer",
				Command:     "secretdev read",
			},
			{
				Description: "Provoke the undersized-buffer rejection",
				Command:     "secretdev read --count 32",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("read", pflag.ContinueOnError)
			params.addFlags(flagSet)
			flagSet.IntVar(&params.Count, "count", device.MaxBytes, "read buffer size in bytes")
			return flagSet
		},
		Run: func(args []string) error {
			if params.Count < 0 {
				return fmt.Errorf("--count must be non-negative")
			}

			file, err := os.OpenFile(params.devicePath(), os.O_RDONLY, 0)
			if err != nil {
				return fmt.Errorf("opening device node: %w", err)
			}
			defer file.Close()

			buffer := make([]byte, params.Count)
			n, err := file.Read(buffer)
			if err != nil && err != io.EOF {
				if errors.Is(err, syscall.EINVAL) && params.Count < device.MaxBytes {
					return fmt.Errorf("reading device node: %w (the store requires a buffer of at least %d bytes)",
						err, device.MaxBytes)
				}
				return fmt.Errorf("reading device node: %w", err)
			}

			os.Stdout.Write(buffer[:n])
			// The payload rarely ends in a newline; add one on a
			// terminal so the shell prompt starts on its own line.
			if term.IsTerminal(int(os.Stdout.Fd())) && (n == 0 || buffer[n-1] != '\n') {
				fmt.Println()
			}
			return nil
		},
	}
}
