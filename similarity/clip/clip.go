//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package clip provides a similarity gateway backed by an HTTP CLIP-style
// embedding service exposing /embed/text and /embed/image.
package clip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ragscore/ragscore/log"
	"github.com/ragscore/ragscore/similarity"
)

// Verify that Provider implements the similarity.Gateway interface.
var _ similarity.Gateway = (*Provider)(nil)

const (
	// DefaultBaseURL is the default CLIP service endpoint.
	DefaultBaseURL = "http://127.0.0.1:8002"
	// DefaultTimeout bounds each provider call. Timeouts are mandatory:
	// a hung provider must degrade a metric, not stall an evaluation.
	DefaultTimeout = 15 * time.Second
	// DefaultMaxRetries is the default maximum number of retries.
	DefaultMaxRetries = 2

	textEmbedPath  = "/embed/text"
	imageEmbedPath = "/embed/image"
)

// defaultRetryBackoff is the default backoff durations for retry attempts.
var defaultRetryBackoff = []time.Duration{
	100 * time.Millisecond,
	200 * time.Millisecond,
	400 * time.Millisecond,
}

// Provider calls a CLIP-style embedding service over HTTP.
type Provider struct {
	baseURL      string
	httpClient   *http.Client
	maxRetries   int
	retryBackoff []time.Duration
}

// Option represents a functional option for configuring the Provider.
type Option func(*Provider)

// WithBaseURL sets the embedding service base URL.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client. The caller owns its timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// WithTimeout sets the per-call timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) {
		if timeout > 0 {
			p.httpClient.Timeout = timeout
		}
	}
}

// WithMaxRetries sets the maximum number of retries for provider errors.
// Negative values are treated as 0.
func WithMaxRetries(maxRetries int) Option {
	return func(p *Provider) {
		if maxRetries < 0 {
			maxRetries = 0
		}
		p.maxRetries = maxRetries
	}
}

// WithRetryBackoff sets the backoff durations per retry attempt. If retries
// exceed the slice length, the last duration is reused.
func WithRetryBackoff(backoff []time.Duration) Option {
	return func(p *Provider) {
		p.retryBackoff = backoff
	}
}

// New creates a new CLIP gateway with the given options.
func New(opts ...Option) *Provider {
	p := &Provider{
		baseURL:      DefaultBaseURL,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		maxRetries:   DefaultMaxRetries,
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name identifies the provider for result metadata.
func (p *Provider) Name() string {
	return "m_clip"
}

type textEmbedRequest struct {
	Texts []string `json:"texts"`
}

type textEmbedResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}

type imageEmbedRequest struct {
	ImageRef string `json:"image_ref"`
}

type imageEmbedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// EmbedText returns the embedding vector for the given text.
func (p *Provider) EmbedText(ctx context.Context, text string) ([]float64, error) {
	var resp textEmbedResponse
	err := p.postWithRetry(ctx, textEmbedPath, textEmbedRequest{Texts: []string{text}}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0]) == 0 {
		return nil, fmt.Errorf("%w: empty text embedding response", similarity.ErrProviderUnavailable)
	}
	return resp.Embeddings[0], nil
}

// EmbedImage returns the embedding vector for the image at ref.
func (p *Provider) EmbedImage(ctx context.Context, ref string) ([]float64, error) {
	var resp imageEmbedResponse
	err := p.postWithRetry(ctx, imageEmbedPath, imageEmbedRequest{ImageRef: ref}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Embedding) == 0 {
		return nil, fmt.Errorf("%w: empty image embedding response", similarity.ErrProviderUnavailable)
	}
	return resp.Embedding, nil
}

// postWithRetry wraps post with retry logic for provider errors.
func (p *Provider) postWithRetry(ctx context.Context, path string, body, out any) error {
	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := p.retryBackoff[len(p.retryBackoff)-1]
			if attempt-1 < len(p.retryBackoff) {
				backoff = p.retryBackoff[attempt-1]
			}
			log.Debugf("retrying embedding call %s (attempt %d) after %v", path, attempt, backoff)
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", similarity.ErrProviderUnavailable, ctx.Err())
			case <-time.After(backoff):
			}
		}
		if err := p.post(ctx, path, body, out); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

func (p *Provider) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal embedding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", similarity.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", similarity.ErrProviderUnavailable, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", similarity.ErrProviderUnavailable, path, err)
	}
	return nil
}
