// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/secretdev/secretdev/lib/codec"
)

// Client-side timing. The connect window is short because a healthy
// server accepts immediately; the response window covers the server's
// full request-plus-reply budget with room for handler work.
const (
	connectWindow  = 5 * time.Second
	responseWindow = 45 * time.Second
)

// responseCap mirrors the server's request cap: a control response
// that does not fit in 64 KiB is not one this client sent for.
const responseCap = 64 * 1024

// ServiceError carries a failure the server itself reported, as
// opposed to a connection or encoding problem on the way there.
type ServiceError struct {
	Action  string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error on %q: %s", e.Action, e.Message)
}

// ServiceClient issues requests against a control socket. Every Call
// dials fresh, matching the server's one-cycle-per-connection model;
// there is no connection state to manage or invalidate.
//
// The socket carries no caller authentication. Whoever can open the
// socket path can query it; filesystem permissions are the gate.
type ServiceClient struct {
	socketPath string
}

// NewServiceClient returns a client for the socket at socketPath.
func NewServiceClient(socketPath string) *ServiceClient {
	return &ServiceClient{socketPath: socketPath}
}

// Call sends one request and decodes the reply.
//
// fields holds any action-specific request fields, or nil for actions
// without parameters; the "action" key is added here and must not
// appear in fields. When the server answers ok=true and result is
// non-nil, the response data is decoded into result. When the server
// answers ok=false, the returned error is a *ServiceError wrapping the
// server's message; transport and codec failures come back as plain
// errors.
func (c *ServiceClient) Call(ctx context.Context, action string, fields map[string]any, result any) error {
	request := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		request[key] = value
	}
	request["action"] = action

	response, err := c.roundTrip(ctx, request)
	if err != nil {
		return fmt.Errorf("calling %q on %s: %w", action, c.socketPath, err)
	}

	if !response.OK {
		return &ServiceError{Action: action, Message: response.Error}
	}

	if result != nil && len(response.Data) > 0 {
		if err := codec.Unmarshal(response.Data, result); err != nil {
			return fmt.Errorf("decoding response data for %q: %w", action, err)
		}
	}
	return nil
}

// roundTrip dials, writes the request, and reads the one response.
func (c *ServiceClient) roundTrip(ctx context.Context, request any) (*Response, error) {
	dialer := net.Dialer{Timeout: connectWindow}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("connecting: %w", err)
	}
	defer conn.Close()

	if err := codec.NewEncoder(conn).Encode(request); err != nil {
		return nil, fmt.Errorf("writing request: %w", err)
	}

	// Half-close after the request so the server's reader sees a
	// clean EOF behind the one CBOR value.
	if unixConn, ok := conn.(*net.UnixConn); ok {
		unixConn.CloseWrite()
	}

	conn.SetReadDeadline(time.Now().Add(responseWindow))
	var response Response
	if err := codec.NewDecoder(io.LimitReader(conn, responseCap)).Decode(&response); err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return &response, nil
}
