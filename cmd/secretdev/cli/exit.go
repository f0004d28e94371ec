// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError asks main for a specific exit code without an "error:"
// line on stderr. Commands return it when a non-zero exit is an
// answer rather than a failure — status reporting an unreachable
// service, for example — after printing their own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode is the hook main looks for (via an anonymous interface) to
// tell handled exits apart from errors worth printing.
func (e *ExitError) ExitCode() int {
	return e.Code
}
