//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package docling provides an HTTP client for a docling-style document
// processing service exposing /process and /health.
package docling

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ragscore/ragscore/document"
)

// Verify that Client implements the document.Processor interface.
var _ document.Processor = (*Client)(nil)

// ErrServiceUnavailable reports that the processing service could not be
// reached or returned an error status.
var ErrServiceUnavailable = errors.New("docling: processing service unavailable")

const (
	// DefaultBaseURL is the default docling service endpoint.
	DefaultBaseURL = "http://127.0.0.1:8003"
	// DefaultTimeout bounds each processing call. Document parsing can be
	// slow, so this is deliberately generous.
	DefaultTimeout = 120 * time.Second

	processPath = "/process"
	healthPath  = "/health"
)

// Client calls a docling-style document processing service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option represents a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets the processing service base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client. The caller owns its timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-call timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a new docling client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type processRequest struct {
	DocumentPath string `json:"document_path"`
}

// Process parses the document at ref and returns its extracted content.
func (c *Client) Process(ctx context.Context, ref string) (*document.Processed, error) {
	if ref == "" {
		return nil, errors.New("docling: document ref is empty")
	}
	payload, err := json.Marshal(processRequest{DocumentPath: ref})
	if err != nil {
		return nil, fmt.Errorf("marshal process request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+processPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build process request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: process returned status %d", ErrServiceUnavailable, resp.StatusCode)
	}
	var processed document.Processed
	if err := json.NewDecoder(resp.Body).Decode(&processed); err != nil {
		return nil, fmt.Errorf("decode process response: %w", err)
	}
	return &processed, nil
}

// Healthy reports whether the processing service answers its health check.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
