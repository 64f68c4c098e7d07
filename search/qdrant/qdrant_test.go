//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package qdrant

import (
	"context"
	"errors"
	"testing"

	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragscore/ragscore/search"
)

// mockClient records the last query and returns canned points.
type mockClient struct {
	lastReq *qdrant.QueryPoints
	points  []*qdrant.ScoredPoint
	err     error
	closed  bool
}

func (m *mockClient) Query(_ context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error) {
	m.lastReq = req
	return m.points, m.err
}

func (m *mockClient) Close() error {
	m.closed = true
	return nil
}

func newTestIndex(t *testing.T, client Client) *Index {
	t.Helper()
	idx, err := New(WithClient(client), WithCollection("test_docs"))
	require.NoError(t, err)
	return idx
}

func TestQueryRequiresVector(t *testing.T) {
	idx := newTestIndex(t, &mockClient{})
	_, err := idx.Query(context.Background(), nil, 5)
	assert.Error(t, err)
}

func TestQueryConvertsScoredPoints(t *testing.T) {
	client := &mockClient{
		points: []*qdrant.ScoredPoint{
			{
				Id:    qdrant.NewID("11111111-1111-1111-1111-111111111111"),
				Score: 0.92,
				Payload: qdrant.NewValueMap(map[string]any{
					search.PayloadDocumentID:  "doc-1",
					search.PayloadContentType: "image",
					search.PayloadPageNumber:  3,
				}),
			},
			{
				Id:    qdrant.NewIDNum(42),
				Score: 0.71,
			},
		},
	}
	idx := newTestIndex(t, client)

	results, err := idx.Query(context.Background(), []float64{0.1, 0.2}, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "11111111-1111-1111-1111-111111111111", results[0].ID)
	assert.InDelta(t, 0.92, results[0].Score, 1e-6)
	assert.Equal(t, "doc-1", results[0].DocumentID())
	assert.Equal(t, "image", results[0].ContentType())
	assert.Equal(t, 3, results[0].PageNumber())

	assert.Equal(t, "42", results[1].ID)
	assert.Equal(t, "text", results[1].ContentType())
	assert.Equal(t, 1, results[1].PageNumber())
}

func TestQueryUsesCollectionAndLimit(t *testing.T) {
	client := &mockClient{}
	idx := newTestIndex(t, client)

	_, err := idx.Query(context.Background(), []float64{0.5}, 7)
	require.NoError(t, err)
	require.NotNil(t, client.lastReq)
	assert.Equal(t, "test_docs", client.lastReq.CollectionName)
	require.NotNil(t, client.lastReq.Limit)
	assert.Equal(t, uint64(7), *client.lastReq.Limit)
}

func TestQueryDefaultLimit(t *testing.T) {
	client := &mockClient{}
	idx := newTestIndex(t, client)

	_, err := idx.Query(context.Background(), []float64{0.5}, 0)
	require.NoError(t, err)
	require.NotNil(t, client.lastReq.Limit)
	assert.Equal(t, uint64(DefaultLimit), *client.lastReq.Limit)
}

func TestQueryPropagatesClientError(t *testing.T) {
	client := &mockClient{err: errors.New("connection refused")}
	idx := newTestIndex(t, client)
	_, err := idx.Query(context.Background(), []float64{0.5}, 5)
	assert.ErrorContains(t, err, "test_docs")
}

func TestClose(t *testing.T) {
	client := &mockClient{}
	idx := newTestIndex(t, client)
	require.NoError(t, idx.Close())
	assert.True(t, client.closed)
}
