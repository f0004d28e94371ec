// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package devfs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hanwen/go-fuse/v2/fuse"
)

// callerIdentity describes the process behind a FUSE request.
type callerIdentity struct {
	PID  uint32
	UID  uint32
	GID  uint32
	Comm string
}

// callerFromContext extracts the requesting process from a FUSE
// request context. Contexts from outside the FUSE dispatch loop carry
// no caller; those report as unknown.
func callerFromContext(ctx context.Context) callerIdentity {
	caller, ok := fuse.FromContext(ctx)
	if !ok {
		return callerIdentity{Comm: "unknown"}
	}
	return callerIdentity{
		PID:  caller.Pid,
		UID:  caller.Uid,
		GID:  caller.Gid,
		Comm: commForPID(caller.Pid),
	}
}

// commForPID reads the short command name the kernel records for a
// process. Best effort: the process may already be gone.
func commForPID(pid uint32) string {
	if pid == 0 {
		return "unknown"
	}
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(data))
}
