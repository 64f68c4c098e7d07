//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragscore/ragscore/metric"
	"github.com/ragscore/ragscore/search"
)

func rankedResults() []search.Result {
	return []search.Result{
		{ID: "r1", Score: 0.95, Payload: map[string]any{
			search.PayloadDocumentID: "doc-1", search.PayloadContentType: "text", search.PayloadPageNumber: 1,
		}},
		{ID: "r2", Score: 0.80, Payload: map[string]any{
			search.PayloadDocumentID: "doc-2", search.PayloadContentType: "image", search.PayloadPageNumber: 3,
		}},
		{ID: "r3", Score: 0.60, Payload: map[string]any{
			search.PayloadDocumentID: "doc-3", search.PayloadContentType: "table", search.PayloadPageNumber: 5,
		}},
	}
}

func TestEvaluateSearchRejectsInvalidRequests(t *testing.T) {
	e := New()
	_, err := e.EvaluateSearch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = e.EvaluateSearch(context.Background(), &SearchRequest{SearchType: SearchTypeText})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestEvaluateSearchComputesRankedMetrics(t *testing.T) {
	e := New()
	req := &SearchRequest{
		Query:       "turbine maintenance",
		Results:     rankedResults(),
		RelevantIDs: []string{"r1", "r3"},
		SearchType:  SearchTypeText,
	}
	result, err := e.EvaluateSearch(context.Background(), req)
	require.NoError(t, err)

	mapScore := result.Score(metric.MetricMAPScore)
	require.NotNil(t, mapScore)
	precision, ok := mapScore.Details["precision_at_k"].(map[int]float64)
	require.True(t, ok)
	assert.InDelta(t, 1.0, precision[1], 1e-9)
	assert.InDelta(t, 2.0/3.0, precision[3], 1e-9)

	mrr, ok := result.ScoreValue(metric.MetricMRRScore)
	require.True(t, ok)
	assert.InDelta(t, 1.0, mrr, 1e-9)

	ndcg, ok := result.ScoreValue(metric.MetricNDCGScore)
	require.True(t, ok)
	assert.Greater(t, ndcg, 0.0)
	assert.LessOrEqual(t, ndcg, 1.0)

	diversity, ok := result.ScoreValue(metric.MetricResultDiversity)
	require.True(t, ok)
	assert.Greater(t, diversity, 0.5)

	// Text search mode computes no cross-modal accuracy.
	assert.Nil(t, result.Score(metric.MetricCrossModalAccuracy))
}

func TestEvaluateSearchCrossModalModes(t *testing.T) {
	e := New()
	for _, mode := range []string{SearchTypeCrossModal, SearchTypeMultimodal, SearchTypeHybrid} {
		t.Run(mode, func(t *testing.T) {
			result, err := e.EvaluateSearch(context.Background(), &SearchRequest{
				Query:      "turbine maintenance",
				Results:    rankedResults(),
				SearchType: mode,
			})
			require.NoError(t, err)
			accuracy := result.Score(metric.MetricCrossModalAccuracy)
			require.NotNil(t, accuracy)
			assert.GreaterOrEqual(t, accuracy.Value, 0.0)
			assert.LessOrEqual(t, accuracy.Value, 1.0)
		})
	}
}

func TestEvaluateSearchEmptyResults(t *testing.T) {
	e := New()
	result, err := e.EvaluateSearch(context.Background(), &SearchRequest{
		Query:      "turbine maintenance",
		SearchType: SearchTypeText,
	})
	require.NoError(t, err)

	mrr, ok := result.ScoreValue(metric.MetricMRRScore)
	require.True(t, ok)
	assert.Zero(t, mrr)

	ranking, ok := result.ScoreValue(metric.MetricRankingQuality)
	require.True(t, ok)
	assert.Zero(t, ranking)
}

func TestEvaluateSearchSuggestions(t *testing.T) {
	e := New()
	// Five identical low-scored hits on one document: poor diversity and
	// flat ranking.
	flat := make([]search.Result, 5)
	for i := range flat {
		flat[i] = search.Result{ID: "dup", Score: 0.5, Payload: map[string]any{
			search.PayloadDocumentID: "doc-1",
		}}
	}
	result, err := e.EvaluateSearch(context.Background(), &SearchRequest{
		Query:       "turbine maintenance",
		Results:     flat,
		RelevantIDs: []string{"missing"},
		SearchType:  SearchTypeText,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Suggestions,
		"Relevant documents rank low - consider tuning the embedding model or reranking")
	assert.Contains(t, result.Suggestions,
		"Results cluster on few documents - widen retrieval across documents and content types")
}
