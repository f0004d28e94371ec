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
	"github.com/secretdev/secretdev/lib/guarded"
)

type writeParams struct {
	deviceConnection
	Stdin bool
}

func writeCommand() *cli.Command {
	var params writeParams

	return &cli.Command{
		Name:    "write",
		Summary: "Replace the committed secret",
		Usage:   "secretdev write [value] [flags]",
		Description: `Write a new secret to the device node in a single write call.

The payload comes from the value argument, from stdin with --stdin,
or from a hidden terminal prompt when run interactively with no
value. The store rejects payloads above its 128-byte capacity.`,
		Examples: []cli.Example{
			{
				Description: "Replace the secret from an argument",
				Command:     "secretdev write 'new secret'",
			},
			{
				Description: "Replace the secret from a pipe",
				Command:     "head -c 64 /dev/urandom | secretdev write --stdin",
			},
			{
				Description: "Prompt for the secret without echoing it",
				Command:     "secretdev write",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("write", pflag.ContinueOnError)
			params.addFlags(flagSet)
			flagSet.BoolVar(&params.Stdin, "stdin", false, "read the secret from stdin")
			return flagSet
		},
		Run: func(args []string) error {
			payload, err := resolvePayload(args, params.Stdin)
			if err != nil {
				return err
			}
			defer guarded.Zero(payload)

			file, err := os.OpenFile(params.devicePath(), os.O_WRONLY, 0)
			if err != nil {
				return fmt.Errorf("opening device node: %w", err)
			}
			defer file.Close()

			n, err := file.Write(payload)
			if err != nil {
				if errors.Is(err, syscall.EINVAL) && len(payload) > device.MaxBytes {
					return fmt.Errorf("writing device node: %w (payload of %d bytes exceeds the %d-byte capacity)",
						err, len(payload), device.MaxBytes)
				}
				return fmt.Errorf("writing device node: %w", err)
			}

			fmt.Fprintf(os.Stderr, "wrote %d bytes\n", n)
			return nil
		},
	}
}

// resolvePayload picks the secret source: explicit argument, stdin,
// or a hidden terminal prompt. Callers zero the returned buffer after
// use.
func resolvePayload(args []string, useStdin bool) ([]byte, error) {
	if len(args) > 0 && useStdin {
		return nil, fmt.Errorf("pass a value argument or --stdin, not both")
	}
	if len(args) > 1 {
		return nil, fmt.Errorf("expected at most one value argument, got %d", len(args))
	}
	if len(args) == 1 {
		return []byte(args[0]), nil
	}

	if useStdin {
		payload, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return payload, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no value given; pass a value argument, use --stdin, or run interactively")
	}
	fmt.Fprint(os.Stderr, "Secret: ")
	payload, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading secret from prompt: %w", err)
	}
	return payload, nil
}
