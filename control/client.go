// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package control

import (
	"context"
	"errors"

	"github.com/secretdev/secretdev/device"
	"github.com/secretdev/secretdev/lib/service"
)

// Client provides typed access to a service's control socket. Each
// method maps to one socket action; the underlying service client
// opens a fresh connection per call.
type Client struct {
	client *service.ServiceClient
}

// NewClient creates a client for the control socket at socketPath.
func NewClient(socketPath string) (*Client, error) {
	if socketPath == "" {
		return nil, errors.New("control: socket path is required")
	}
	return &Client{client: service.NewServiceClient(socketPath)}, nil
}

// Stats fetches a point-in-time snapshot of the store.
func (c *Client) Stats(ctx context.Context) (*device.Stats, error) {
	var stats device.Stats
	if err := c.client.Call(ctx, actionStats, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Describe fetches the static service facts.
func (c *Client) Describe(ctx context.Context) (*Describe, error) {
	var facts Describe
	if err := c.client.Call(ctx, actionDescribe, nil, &facts); err != nil {
		return nil, err
	}
	return &facts, nil
}
