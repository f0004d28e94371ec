// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one node of the CLI tree: either a group that dispatches
// to Subcommands or a leaf with a Run function. Fields are plain data
// so the whole tree can be declared as literals.
type Command struct {
	// Name is what the user types to select this command.
	Name string

	// Summary is the one-liner shown next to Name in the parent's
	// command listing.
	Summary string

	// Description is the long-form text at the top of this command's
	// own help.
	Description string

	// Usage overrides the synthesized usage line when set.
	Usage string

	// Examples render at the bottom of the help output.
	Examples []Example

	// Flags builds this command's flag set. Called fresh each time
	// one is needed; nil means no flags.
	Flags func() *pflag.FlagSet

	// Subcommands dispatch on the first positional argument.
	Subcommands []*Command

	// Run executes a leaf with the positional arguments left after
	// flag parsing.
	Run func(args []string) error

	// parent links back up the tree during dispatch so error messages
	// and help can print the full command path.
	parent *Command
}

// Example pairs a shell line with what it demonstrates.
type Example struct {
	Description string
	Command     string
}

// Execute runs the command against args: help handling first, then
// subcommand dispatch, then flag parsing and Run.
func (c *Command) Execute(args []string) error {
	if len(args) > 0 && isHelpArg(args[0]) {
		c.PrintHelp(os.Stderr)
		return nil
	}

	if len(c.Subcommands) > 0 {
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			return c.dispatch(args[0], args[1:])
		}
		if c.Run == nil {
			c.PrintHelp(os.Stderr)
			if len(args) == 0 {
				return errors.New("subcommand required")
			}
			return fmt.Errorf("subcommand required (got flag %q)", args[0])
		}
	}

	return c.runLeaf(args)
}

// dispatch hands the remaining args to the named subcommand, or
// explains what the user probably meant.
func (c *Command) dispatch(name string, rest []string) error {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			sub.parent = c
			return sub.Execute(rest)
		}
	}

	hint := ""
	if match := suggestCommand(name, c.Subcommands); match != "" {
		hint = fmt.Sprintf(" (did you mean %q?)", match)
	}
	return fmt.Errorf("unknown command %q%s\n\nRun '%s --help' for usage.",
		name, hint, c.fullName())
}

// runLeaf parses flags and invokes Run.
func (c *Command) runLeaf(args []string) error {
	if c.Flags != nil {
		flagSet := c.Flags()

		// pflag prints its own error and usage dump on failure; keep
		// it quiet, the returned error carries everything.
		flagSet.SetOutput(io.Discard)

		if err := flagSet.Parse(args); err != nil {
			if strings.Contains(err.Error(), "unknown flag") {
				if match := suggestFlag(args, c.Flags()); match != "" {
					return fmt.Errorf("%s (did you mean %s?)\n\nRun '%s --help' for usage.",
						err, match, c.fullName())
				}
			}
			return fmt.Errorf("%s\n\nRun '%s --help' for usage.", err, c.fullName())
		}
		args = flagSet.Args()
	}

	if c.Run == nil {
		c.PrintHelp(os.Stderr)
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	return c.Run(args)
}

// PrintHelp renders the command's help text to w.
func (c *Command) PrintHelp(w io.Writer) {
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", c.fullName())
	default:
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", c.fullName())
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprint(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if c.Flags != nil {
		var rendered strings.Builder
		flagSet := c.Flags()
		flagSet.SetOutput(&rendered)
		flagSet.PrintDefaults()
		if rendered.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", rendered.String())
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprint(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", c.fullName())
	}
}

// fullName walks the parent links to build the command path, e.g.
// "secretdev stats".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
