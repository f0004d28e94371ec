// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/secretdev/secretdev/lib/codec"
)

// Deadlines for one request-response cycle. A client that connects is
// expected to send its request right away; the read window is generous
// because nothing else holds the connection open.
const (
	requestWindow = 30 * time.Second
	replyWindow   = 10 * time.Second
)

// requestCap bounds how many bytes of a single request the server will
// read. Control requests are a few small fields; anything near this
// limit is not a legitimate client.
const requestCap = 64 * 1024

// ActionFunc handles one request for a registered action. raw is the
// complete CBOR request, action field included, so handlers can decode
// whatever extra fields their action defines.
//
// The returned value becomes the response's data field (CBOR-encoded);
// nil means the response is a bare {ok: true}. A returned error turns
// into {ok: false, error: ...}.
type ActionFunc func(ctx context.Context, raw []byte) (any, error)

// Response is the envelope every request gets back.
type Response struct {
	OK    bool             `cbor:"ok"`
	Error string           `cbor:"error,omitempty"`
	Data  codec.RawMessage `cbor:"data,omitempty"`
}

// SocketServer answers CBOR requests on a Unix socket, one
// request-response cycle per connection. The request's "action" field
// selects the handler; requests for unregistered actions get a failure
// response. Register handlers with Handle, then call Serve.
type SocketServer struct {
	path     string
	actions  map[string]ActionFunc
	logger   *slog.Logger
	inflight sync.WaitGroup
}

// NewSocketServer prepares a server for the socket at path. Nothing is
// bound until Serve runs.
func NewSocketServer(path string, logger *slog.Logger) *SocketServer {
	return &SocketServer{
		path:    path,
		actions: make(map[string]ActionFunc),
		logger:  logger,
	}
}

// Handle registers handler under the action name. Registering the same
// action twice is a programming error and panics.
func (s *SocketServer) Handle(action string, handler ActionFunc) {
	if _, taken := s.actions[action]; taken {
		panic(fmt.Sprintf("service.SocketServer: action %q registered twice", action))
	}
	s.actions[action] = handler
}

// Serve binds the socket and dispatches connections until ctx is
// cancelled. A leftover socket file at the path is removed before
// binding, and the file is removed again on the way out. Cancellation
// stops the accept loop but lets requests already being handled run to
// completion before Serve returns.
func (s *SocketServer) Serve(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale socket %s: %w", s.path, err)
	}

	listener, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.path, err)
	}
	defer func() {
		listener.Close()
		os.Remove(s.path)
	}()

	// Accept blocks with no context support; closing the listener is
	// how cancellation reaches it.
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	s.logger.Info("control socket listening", "path", s.path)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Error("accept failed", "error", err)
			continue
		}

		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			s.serveConn(ctx, conn)
		}()
	}

	s.inflight.Wait()
	return nil
}

// serveConn runs one request-response cycle and closes the connection.
func (s *SocketServer) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(requestWindow))

	// One CBOR value is one request; CBOR self-delimits, so there is
	// no framing to parse.
	var raw codec.RawMessage
	if err := codec.NewDecoder(io.LimitReader(conn, requestCap)).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			// Connection opened and dropped without a request.
			return
		}
		s.reply(conn, Response{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	var envelope struct {
		Action string `cbor:"action"`
	}
	if err := codec.Unmarshal(raw, &envelope); err != nil {
		s.reply(conn, Response{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}
	if envelope.Action == "" {
		s.reply(conn, Response{Error: "missing required field: action"})
		return
	}

	handler, known := s.actions[envelope.Action]
	if !known {
		s.reply(conn, Response{Error: fmt.Sprintf("unknown action %q", envelope.Action)})
		return
	}

	result, err := handler(ctx, []byte(raw))
	if err != nil {
		s.logger.Debug("action failed", "action", envelope.Action, "error", err)
		s.reply(conn, Response{Error: err.Error()})
		return
	}

	response := Response{OK: true}
	if result != nil {
		data, err := codec.Marshal(result)
		if err != nil {
			s.reply(conn, Response{Error: fmt.Sprintf("internal: encoding response: %v", err)})
			return
		}
		response.Data = data
	}
	s.reply(conn, response)
}

// reply writes one response envelope. A write failure only gets a
// debug log: the connection is about to close either way, and if the
// response was an error the caller already has it.
func (s *SocketServer) reply(conn net.Conn, response Response) {
	conn.SetWriteDeadline(time.Now().Add(replyWindow))
	if err := codec.NewEncoder(conn).Encode(response); err != nil {
		s.logger.Debug("response write failed", "error", err)
	}
}
