//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package qdrant adapts a Qdrant collection to the search.Index interface
// so retrieval runs against live collections can be scored.
package qdrant

import (
	"context"
	"errors"
	"fmt"

	"github.com/qdrant/go-client/qdrant"

	"github.com/ragscore/ragscore/search"
)

// Verify that Index implements the search.Index interface.
var _ search.Index = (*Index)(nil)

const (
	// DefaultHost is the default Qdrant host.
	DefaultHost = "localhost"
	// DefaultPort is the default Qdrant gRPC port.
	DefaultPort = 6334
	// DefaultCollection is the default collection name.
	DefaultCollection = "documents"
	// DefaultLimit applies when a query passes a non-positive limit.
	DefaultLimit = 10
)

var errVectorRequired = errors.New("qdrant: query vector is required")

// Client is the subset of the Qdrant client the index uses. It allows
// mocking in tests.
type Client interface {
	Query(ctx context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error)
	Close() error
}

// Index queries one Qdrant collection.
type Index struct {
	client     Client
	collection string
	host       string
	port       int
	apiKey     string
	useTLS     bool
}

// Option represents a functional option for configuring the Index.
type Option func(*Index)

// WithHost sets the Qdrant host.
func WithHost(host string) Option {
	return func(i *Index) {
		i.host = host
	}
}

// WithPort sets the Qdrant gRPC port.
func WithPort(port int) Option {
	return func(i *Index) {
		i.port = port
	}
}

// WithAPIKey sets the API key for Qdrant Cloud.
func WithAPIKey(apiKey string) Option {
	return func(i *Index) {
		i.apiKey = apiKey
	}
}

// WithTLS enables TLS on the connection.
func WithTLS(useTLS bool) Option {
	return func(i *Index) {
		i.useTLS = useTLS
	}
}

// WithCollection sets the collection to query.
func WithCollection(collection string) Option {
	return func(i *Index) {
		i.collection = collection
	}
}

// WithClient injects a pre-built client, mainly for tests. When set, the
// connection options are ignored.
func WithClient(client Client) Option {
	return func(i *Index) {
		i.client = client
	}
}

// New creates an Index, dialing Qdrant unless a client is injected.
func New(opts ...Option) (*Index, error) {
	i := &Index{
		host:       DefaultHost,
		port:       DefaultPort,
		collection: DefaultCollection,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.client == nil {
		client, err := qdrant.NewClient(&qdrant.Config{
			Host:   i.host,
			Port:   i.port,
			APIKey: i.apiKey,
			UseTLS: i.useTLS,
		})
		if err != nil {
			return nil, fmt.Errorf("connect qdrant %s:%d: %w", i.host, i.port, err)
		}
		i.client = client
	}
	return i, nil
}

// Query runs a dense vector similarity search and converts the scored
// points into search results with their payloads.
func (i *Index) Query(ctx context.Context, vector []float64, limit int) ([]search.Result, error) {
	if len(vector) == 0 {
		return nil, errVectorRequired
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	points, err := i.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: i.collection,
		Query:          qdrant.NewQuery(toFloat32Slice(vector)...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("query collection %q: %w", i.collection, err)
	}
	return toResults(points), nil
}

// Close releases the underlying connection.
func (i *Index) Close() error {
	if i.client == nil {
		return nil
	}
	return i.client.Close()
}
