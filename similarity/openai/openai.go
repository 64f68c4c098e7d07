//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package openai provides a text-only similarity gateway backed by the
// OpenAI embeddings API. Image embedding requests degrade to
// similarity.ErrProviderUnavailable so callers substitute the neutral score.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ragscore/ragscore/log"
	"github.com/ragscore/ragscore/similarity"
)

// Verify that Provider implements the similarity.Gateway interface.
var _ similarity.Gateway = (*Provider)(nil)

const (
	// DefaultModel is the default OpenAI embedding model.
	DefaultModel = "text-embedding-3-small"
	// DefaultDimensions is the default embedding dimension for text-embedding-3-small.
	DefaultDimensions = 1536
	// DefaultMaxRetries is the default maximum number of retries.
	DefaultMaxRetries = 2

	// Model prefix for text-embedding-3 series.
	textEmbedding3Prefix = "text-embedding-3"
)

// defaultRetryBackoff is the default backoff durations for retry attempts.
var defaultRetryBackoff = []time.Duration{
	100 * time.Millisecond,
	200 * time.Millisecond,
	400 * time.Millisecond,
	800 * time.Millisecond,
}

// Provider implements similarity.Gateway for the OpenAI embeddings API.
type Provider struct {
	client       openai.Client
	model        string
	dimensions   int
	apiKey       string
	baseURL      string
	maxRetries   int
	retryBackoff []time.Duration
}

// Option represents a functional option for configuring the Provider.
type Option func(*Provider)

// WithModel sets the embedding model to use.
func WithModel(model string) Option {
	return func(p *Provider) {
		p.model = model
	}
}

// WithDimensions sets the number of dimensions for the embedding.
// Only works with text-embedding-3 and later models.
func WithDimensions(dimensions int) Option {
	return func(p *Provider) {
		p.dimensions = dimensions
	}
}

// WithAPIKey sets the OpenAI API key.
// If not provided, will use OPENAI_API_KEY environment variable.
func WithAPIKey(apiKey string) Option {
	return func(p *Provider) {
		p.apiKey = apiKey
	}
}

// WithBaseURL sets the base URL, for OpenAI-compatible APIs.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.baseURL = baseURL
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

// WithRetryBackoff sets the backoff durations for each retry attempt. If the
// number of retries exceeds the slice length, the last duration is reused.
func WithRetryBackoff(backoff []time.Duration) Option {
	return func(p *Provider) {
		p.retryBackoff = backoff
	}
}

// New creates a new OpenAI-backed gateway with the given options.
func New(opts ...Option) *Provider {
	p := &Provider{
		model:        DefaultModel,
		dimensions:   DefaultDimensions,
		maxRetries:   DefaultMaxRetries,
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(p)
	}
	var clientOpts []option.RequestOption
	if p.apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(p.apiKey))
	}
	if p.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(p.baseURL))
	}
	// Retries are handled here, not by the SDK.
	clientOpts = append(clientOpts, option.WithMaxRetries(0))
	p.client = openai.NewClient(clientOpts...)
	return p
}

// Name identifies the provider for result metadata.
func (p *Provider) Name() string {
	return p.model
}

// EmbedText returns the embedding vector for the given text.
func (p *Provider) EmbedText(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	rsp, err := p.responseWithRetry(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", similarity.ErrProviderUnavailable, err)
	}
	if len(rsp.Data) == 0 || len(rsp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("%w: empty embedding response", similarity.ErrProviderUnavailable)
	}
	return rsp.Data[0].Embedding, nil
}

// EmbedImage is not supported by the OpenAI embeddings API; callers treat
// this as a degraded provider and substitute the neutral score.
func (p *Provider) EmbedImage(ctx context.Context, ref string) ([]float64, error) {
	return nil, fmt.Errorf("%w: image embedding not supported by %s", similarity.ErrProviderUnavailable, p.model)
}

// responseWithRetry wraps the embeddings call with retry logic.
func (p *Provider) responseWithRetry(ctx context.Context, text string) (*openai.CreateEmbeddingResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		rsp, err := p.response(ctx, text)
		if err == nil {
			return rsp, nil
		}
		lastErr = err
		if attempt >= p.maxRetries {
			break
		}
		backoff := p.getBackoffDuration(attempt)
		log.Infof("embedding request failed, retrying in %v (attempt %d/%d): %v", backoff, attempt+1, p.maxRetries, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, lastErr
}

// getBackoffDuration returns the backoff duration for the given attempt.
func (p *Provider) getBackoffDuration(attempt int) time.Duration {
	if len(p.retryBackoff) == 0 {
		return 0
	}
	if attempt < len(p.retryBackoff) {
		return p.retryBackoff[attempt]
	}
	return p.retryBackoff[len(p.retryBackoff)-1]
}

func (p *Provider) response(ctx context.Context, text string) (*openai.CreateEmbeddingResponse, error) {
	request := openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model: p.model,
	}
	// Dimensions are only honored by text-embedding-3 models.
	if strings.HasPrefix(p.model, textEmbedding3Prefix) {
		request.Dimensions = openai.Int(int64(p.dimensions))
	}
	return p.client.Embeddings.New(ctx, request)
}
