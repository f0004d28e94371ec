// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package control

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/secretdev/secretdev/device"
	"github.com/secretdev/secretdev/lib/service"
	"github.com/secretdev/secretdev/lib/version"
)

// ServerOptions configures NewServer.
type ServerOptions struct {
	// Store is the attached secret store to report on. Required.
	Store *device.Context

	// SocketPath is the Unix socket to listen on. Required.
	SocketPath string

	// DevicePath is the mounted device node path, reported by the
	// describe action.
	DevicePath string

	// Logger receives socket server events. Nil discards them.
	Logger *slog.Logger
}

// Server answers control queries for one attached store.
type Server struct {
	store  *device.Context
	facts  Describe
	socket *service.SocketServer
}

// NewServer builds the control server and registers its actions. The
// describe facts are computed once here: they do not change for the
// lifetime of the service.
func NewServer(options ServerOptions) (*Server, error) {
	if options.Store == nil {
		return nil, errors.New("control: Store is required")
	}
	if options.SocketPath == "" {
		return nil, errors.New("control: SocketPath is required")
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	server := &Server{
		store: options.Store,
		facts: Describe{
			DevicePath: options.DevicePath,
			SocketPath: options.SocketPath,
			MaxBytes:   device.MaxBytes,
			Version:    version.Info(),
			PID:        os.Getpid(),
			AttachedAt: options.Store.Stats().AttachedAt,
		},
	}

	socket := service.NewSocketServer(options.SocketPath, options.Logger)
	socket.Handle(actionStats, server.handleStats)
	socket.Handle(actionDescribe, server.handleDescribe)
	server.socket = socket

	return server, nil
}

// Serve listens on the control socket until ctx is cancelled, then
// drains in-flight requests. See service.SocketServer.Serve.
func (s *Server) Serve(ctx context.Context) error {
	return s.socket.Serve(ctx)
}

// handleStats returns a fresh snapshot of the store.
func (s *Server) handleStats(ctx context.Context, raw []byte) (any, error) {
	return s.store.Stats(), nil
}

// handleDescribe returns the static service facts.
func (s *Server) handleDescribe(ctx context.Context, raw []byte) (any, error) {
	return s.facts, nil
}
