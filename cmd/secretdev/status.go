// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/secretdev/secretdev/cmd/secretdev/cli"
)

type statusParams struct {
	socketConnection
	JSON bool
}

func statusCommand() *cli.Command {
	var params statusParams

	return &cli.Command{
		Name:    "status",
		Summary: "Show service status",
		Usage:   "secretdev status [flags]",
		Description: `Show the running service's identity: device node path, control
socket, store capacity, version, PID, and uptime. Exits 1 when the
service is unreachable.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
			params.addFlags(flagSet)
			flagSet.BoolVar(&params.JSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			ctx := context.Background()
			client, err := params.connect()
			if err != nil {
				return err
			}

			describe, err := client.Describe(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "service unreachable at %s: %v\n", params.SocketPath, err)
				return &cli.ExitError{Code: 1}
			}

			if params.JSON {
				return cli.WriteJSON(describe)
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "Device:\t%s\n", describe.DevicePath)
			fmt.Fprintf(writer, "Socket:\t%s\n", describe.SocketPath)
			fmt.Fprintf(writer, "Capacity:\t%d bytes\n", describe.MaxBytes)
			fmt.Fprintf(writer, "Version:\t%s\n", describe.Version)
			fmt.Fprintf(writer, "PID:\t%d\n", describe.PID)
			fmt.Fprintf(writer, "Up:\t%s\n", time.Since(describe.AttachedAt).Round(time.Second))
			writer.Flush()
			return nil
		},
	}
}
