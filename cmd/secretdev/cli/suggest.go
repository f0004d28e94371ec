// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// closeEnough is the largest edit distance still worth offering as a
// suggestion; anything further is probably not a typo.
const closeEnough = 3

// suggestCommand returns the subcommand name closest to the unknown
// input, or "" when nothing is plausibly a typo of it.
func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, len(commands))
	for i, command := range commands {
		names[i] = command.Name
	}
	return closest(unknown, names)
}

// suggestFlag finds the first flag-shaped argument the flag set does
// not define and returns the closest defined flag, prefixed ready for
// display ("--socket", "-v"). Returns "" when there is nothing to
// suggest.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	name, found := firstUnknownFlag(args, flagSet)
	if !found {
		return ""
	}

	var defined []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		defined = append(defined, f.Name)
	})

	match := closest(name, defined)
	switch {
	case match == "":
		return ""
	case len(match) == 1:
		return "-" + match
	default:
		return "--" + match
	}
}

// firstUnknownFlag scans args for the first dash-prefixed token whose
// name (dashes and =value stripped) the flag set does not know.
func firstUnknownFlag(args []string, flagSet *pflag.FlagSet) (string, bool) {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		if flagSet.Lookup(name) != nil {
			continue
		}
		if len(name) == 1 && flagSet.ShorthandLookup(name) != nil {
			continue
		}
		return name, true
	}
	return "", false
}

// closest returns the candidate within closeEnough edits of input,
// preferring lower distance and earlier position on ties.
func closest(input string, candidates []string) string {
	best := ""
	bestDistance := closeEnough + 1
	for _, candidate := range candidates {
		if distance := editDistance(input, candidate); distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b, computed
// with a single reusable row plus the diagonal carried in a local.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diagonal := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			substitution := diagonal
			if a[i-1] != b[j-1] {
				substitution++
			}
			diagonal = row[j]

			best := substitution
			if deletion := row[j] + 1; deletion < best {
				best = deletion
			}
			if insertion := row[j-1] + 1; insertion < best {
				best = insertion
			}
			row[j] = best
		}
	}
	return row[len(b)]
}
