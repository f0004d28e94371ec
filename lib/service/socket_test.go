// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/secretdev/secretdev/lib/codec"
	"github.com/secretdev/secretdev/lib/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// startServer runs server on a fresh socket path, waits for the
// socket to exist, and tears the server down with the test. It
// returns the socket path.
func startServer(t *testing.T, server *SocketServer) string {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Serve(ctx); err != nil {
			t.Errorf("Serve returned error: %v", err)
		}
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	// A plain file can sit at the path until Serve replaces it with the
	// listener, so readiness means a socket specifically.
	for {
		if info, err := os.Stat(server.path); err == nil && info.Mode()&os.ModeSocket != 0 {
			return server.path
		}
		if t.Context().Err() != nil {
			t.Fatalf("socket %s never appeared", server.path)
		}
		runtime.Gosched()
	}
}

func newTestServer(t *testing.T) *SocketServer {
	t.Helper()
	path := filepath.Join(testutil.SocketDir(t), "control.sock")
	return NewSocketServer(path, testLogger())
}

// call sends one CBOR request over a fresh connection and returns the
// decoded response envelope.
func call(t *testing.T, socketPath string, request any) Response {
	t.Helper()

	conn, err := net.DialTimeout("unix", socketPath, 5*time.Second)
	if err != nil {
		t.Fatalf("dialing %s: %v", socketPath, err)
	}
	defer conn.Close()

	if err := codec.NewEncoder(conn).Encode(request); err != nil {
		t.Fatalf("encoding request: %v", err)
	}
	if unixConn, ok := conn.(*net.UnixConn); ok {
		unixConn.CloseWrite()
	}

	var response Response
	if err := codec.NewDecoder(conn).Decode(&response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return response
}

// dataField decodes the response data as a string-keyed map and
// returns the named entry.
func dataField(t *testing.T, response Response, name string) any {
	t.Helper()
	if len(response.Data) == 0 {
		t.Fatal("response carries no data")
	}
	var data map[string]any
	if err := codec.Unmarshal(response.Data, &data); err != nil {
		t.Fatalf("decoding response data: %v", err)
	}
	return data[name]
}

func TestServe_RoutesToHandler(t *testing.T) {
	server := newTestServer(t)
	server.Handle("stats", func(ctx context.Context, raw []byte) (any, error) {
		return map[string]any{"tx": 42}, nil
	})
	path := startServer(t, server)

	response := call(t, path, map[string]string{"action": "stats"})
	if !response.OK {
		t.Fatalf("expected ok response, got error %q", response.Error)
	}
	if got := dataField(t, response, "tx"); got != uint64(42) {
		t.Errorf("tx = %v (%T), want 42", got, got)
	}
}

func TestServe_HandlerDecodesRequestFields(t *testing.T) {
	server := newTestServer(t)
	server.Handle("echo", func(ctx context.Context, raw []byte) (any, error) {
		var request struct {
			Value int `cbor:"value"`
		}
		if err := codec.Unmarshal(raw, &request); err != nil {
			return nil, err
		}
		return map[string]any{"value": request.Value}, nil
	})
	path := startServer(t, server)

	response := call(t, path, map[string]any{"action": "echo", "value": 99})
	if !response.OK {
		t.Fatalf("expected ok response, got error %q", response.Error)
	}
	if got := dataField(t, response, "value"); got != uint64(99) {
		t.Errorf("value = %v, want 99", got)
	}
}

func TestServe_NilHandlerResultMeansBareOK(t *testing.T) {
	server := newTestServer(t)
	server.Handle("noop", func(ctx context.Context, raw []byte) (any, error) {
		return nil, nil
	})
	path := startServer(t, server)

	response := call(t, path, map[string]string{"action": "noop"})
	if !response.OK {
		t.Fatalf("expected ok response, got error %q", response.Error)
	}
	if len(response.Data) != 0 {
		t.Errorf("expected empty data, got %d bytes", len(response.Data))
	}
}

func TestServe_HandlerErrorBecomesFailureResponse(t *testing.T) {
	server := newTestServer(t)
	server.Handle("fail", func(ctx context.Context, raw []byte) (any, error) {
		return nil, fmt.Errorf("store not attached")
	})
	path := startServer(t, server)

	response := call(t, path, map[string]string{"action": "fail"})
	if response.OK {
		t.Fatal("expected failure response")
	}
	if response.Error != "store not attached" {
		t.Errorf("error = %q, want the handler's message", response.Error)
	}
}

func TestServe_UnknownAction(t *testing.T) {
	server := newTestServer(t)
	server.Handle("stats", func(ctx context.Context, raw []byte) (any, error) {
		return nil, nil
	})
	path := startServer(t, server)

	response := call(t, path, map[string]string{"action": "absent"})
	if response.OK {
		t.Fatal("expected failure response for unknown action")
	}
	if response.Error == "" {
		t.Error("expected an error message naming the action")
	}
}

func TestServe_MissingAction(t *testing.T) {
	server := newTestServer(t)
	path := startServer(t, server)

	response := call(t, path, map[string]string{"query": "stats"})
	if response.OK {
		t.Fatal("expected failure response for request without action")
	}
}

func TestServe_MalformedRequest(t *testing.T) {
	server := newTestServer(t)
	path := startServer(t, server)

	conn, err := net.DialTimeout("unix", path, 5*time.Second)
	if err != nil {
		t.Fatalf("dialing: %v", err)
	}
	defer conn.Close()

	// 0xff is not the start of any well-formed CBOR item.
	conn.Write([]byte{0xff, 0xfe, 0xfd})
	if unixConn, ok := conn.(*net.UnixConn); ok {
		unixConn.CloseWrite()
	}

	var response Response
	if err := codec.NewDecoder(conn).Decode(&response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if response.OK {
		t.Error("expected failure response for malformed CBOR")
	}
}

func TestServe_ConcurrentClients(t *testing.T) {
	server := newTestServer(t)
	server.Handle("echo", func(ctx context.Context, raw []byte) (any, error) {
		var request struct {
			Value int `cbor:"value"`
		}
		codec.Unmarshal(raw, &request)
		return map[string]any{"value": request.Value}, nil
	})
	path := startServer(t, server)

	const clients = 20
	var wg sync.WaitGroup
	for i := range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			response := call(t, path, map[string]any{"action": "echo", "value": i})
			if !response.OK {
				t.Errorf("client %d: got error %q", i, response.Error)
				return
			}
			if got := dataField(t, response, "value"); got != uint64(i) {
				t.Errorf("client %d: value = %v", i, got)
			}
		}()
	}
	wg.Wait()
}

func TestServe_DrainsInflightRequestOnCancel(t *testing.T) {
	server := newTestServer(t)

	started := make(chan struct{})
	release := make(chan struct{})
	server.Handle("slow", func(ctx context.Context, raw []byte) (any, error) {
		close(started)
		<-release
		return map[string]any{"done": true}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- server.Serve(ctx)
	}()
	for {
		if _, err := os.Stat(server.path); err == nil {
			break
		}
		runtime.Gosched()
	}

	responses := make(chan Response, 1)
	go func() {
		responses <- call(t, server.path, map[string]string{"action": "slow"})
	}()

	// Cancel while the handler is mid-request, then let it finish.
	<-started
	cancel()
	close(release)

	response := testutil.RequireReceive(t, responses, 5*time.Second, "in-flight request never completed")
	if !response.OK {
		t.Errorf("in-flight request failed: %q", response.Error)
	}
	if got := dataField(t, response, "done"); got != true {
		t.Errorf("done = %v, want true", got)
	}

	if err := testutil.RequireReceive(t, serveDone, 5*time.Second, "Serve did not return after drain"); err != nil {
		t.Errorf("Serve returned error: %v", err)
	}
	if _, err := os.Stat(server.path); !os.IsNotExist(err) {
		t.Error("socket file survived shutdown")
	}
}

func TestServe_ReplacesStaleSocketFile(t *testing.T) {
	path := filepath.Join(testutil.SocketDir(t), "control.sock")

	// A crashed predecessor leaves its socket path behind.
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("planting stale socket file: %v", err)
	}

	server := NewSocketServer(path, testLogger())
	server.Handle("noop", func(ctx context.Context, raw []byte) (any, error) {
		return nil, nil
	})
	startServer(t, server)

	response := call(t, path, map[string]string{"action": "noop"})
	if !response.OK {
		t.Error("server did not recover the stale socket path")
	}
}

func TestHandle_DuplicateActionPanics(t *testing.T) {
	server := NewSocketServer("/tmp/unused.sock", testLogger())
	noop := func(ctx context.Context, raw []byte) (any, error) { return nil, nil }
	server.Handle("stats", noop)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	server.Handle("stats", noop)
}
