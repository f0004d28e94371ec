// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/secretdev/secretdev/cmd/secretdev/cli"
)

type statsParams struct {
	socketConnection
	JSON bool
}

func statsCommand() *cli.Command {
	var params statsParams

	return &cli.Command{
		Name:    "stats",
		Summary: "Show transfer statistics",
		Usage:   "secretdev stats [flags]",
		Description: `Query the control socket for the store's transfer statistics:
byte counters, session counters, and the committed secret's length
and fingerprint. The secret itself never crosses the socket.`,
		Examples: []cli.Example{
			{
				Description: "Show statistics as a table",
				Command:     "secretdev stats",
			},
			{
				Description: "Show statistics as JSON",
				Command:     "secretdev stats --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("stats", pflag.ContinueOnError)
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

			stats, err := client.Stats(ctx)
			if err != nil {
				return err
			}

			if params.JSON {
				return cli.WriteJSON(stats)
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "TX (read out):\t%d bytes\n", stats.TX)
			fmt.Fprintf(writer, "RX (written in):\t%d bytes\n", stats.RX)
			fmt.Fprintf(writer, "Errors:\t%d\n", stats.Errors)
			fmt.Fprintf(writer, "Secret Length:\t%d bytes\n", stats.SecretLength)
			fmt.Fprintf(writer, "Fingerprint:\t%s\n", stats.Fingerprint)
			fmt.Fprintf(writer, "Sessions Open:\t%d\n", stats.SessionsOpen)
			fmt.Fprintf(writer, "Session Balance:\t%d\n", stats.SessionBalance)
			fmt.Fprintf(writer, "Config Words:\t%d, %d, %d\n", stats.Config1, stats.Config2, stats.Config3)
			fmt.Fprintf(writer, "Attached:\t%s\n", stats.AttachedAt.Format("2006-01-02 15:04:05 UTC"))
			writer.Flush()
			return nil
		},
	}
}
