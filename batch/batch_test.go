//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragscore/ragscore/dataset"
	"github.com/ragscore/ragscore/evaluation"
	"github.com/ragscore/ragscore/metric"
)

func defaultRequests() []*evaluation.Request {
	var requests []*evaluation.Request
	for _, entry := range dataset.Default().Entries {
		requests = append(requests, entry.Request())
	}
	return requests
}

func TestRunRejectsEmptyBatch(t *testing.T) {
	b := New(evaluation.New())
	_, err := b.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestRunAggregatesOverDataset(t *testing.T) {
	b := New(evaluation.New())
	report, err := b.Run(context.Background(), defaultRequests())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 5, report.TotalEntries)
	assert.Equal(t, 5, report.SucceededEntries)
	assert.Zero(t, report.FailedEntries)
	assert.NoError(t, report.Err())

	overall, ok := report.Aggregate("overall_score")
	require.True(t, ok)
	assert.Equal(t, 5, overall.Count)
	assert.GreaterOrEqual(t, overall.Min, 0.0)
	assert.LessOrEqual(t, overall.Max, 1.0)
	assert.GreaterOrEqual(t, overall.Mean, overall.Min)
	assert.LessOrEqual(t, overall.Mean, overall.Max)
	assert.GreaterOrEqual(t, overall.Std, 0.0)

	faithfulness, ok := report.Aggregate(metric.MetricFaithfulness)
	require.True(t, ok)
	assert.Equal(t, 5, faithfulness.Count)
}

func TestRunPreservesInputOrderInSample(t *testing.T) {
	requests := defaultRequests()
	b := New(evaluation.New(), WithParallelism(3))
	report, err := b.Run(context.Background(), requests)
	require.NoError(t, err)

	require.Len(t, report.Sample, len(requests))
	for i, result := range report.Sample {
		assert.Equal(t, requests[i].Query, result.Query)
	}
}

func TestRunRecordsEntryErrorsWithoutAborting(t *testing.T) {
	requests := defaultRequests()
	// Second entry is invalid: empty contexts.
	requests[1] = &evaluation.Request{
		Query:           "broken entry",
		GeneratedAnswer: "answer",
	}
	b := New(evaluation.New())
	report, err := b.Run(context.Background(), requests)
	require.NoError(t, err)

	assert.Equal(t, 5, report.TotalEntries)
	assert.Equal(t, 4, report.SucceededEntries)
	assert.Equal(t, 1, report.FailedEntries)
	require.Len(t, report.EntryErrors, 1)
	assert.Equal(t, 1, report.EntryErrors[0].Index)
	assert.Error(t, report.Err())

	overall, ok := report.Aggregate("overall_score")
	require.True(t, ok)
	assert.Equal(t, 4, overall.Count)
}

func TestRunSampleIsBounded(t *testing.T) {
	base := defaultRequests()
	var requests []*evaluation.Request
	for len(requests) < sampleSize+5 {
		requests = append(requests, base[len(requests)%len(base)])
	}
	b := New(evaluation.New(), WithParallelism(8))
	report, err := b.Run(context.Background(), requests)
	require.NoError(t, err)
	assert.Len(t, report.Sample, sampleSize)
}

func TestRunIsDeterministicAcrossParallelism(t *testing.T) {
	requests := defaultRequests()
	serial, err := New(evaluation.New(), WithParallelism(1)).Run(context.Background(), requests)
	require.NoError(t, err)
	parallel, err := New(evaluation.New(), WithParallelism(4)).Run(context.Background(), requests)
	require.NoError(t, err)

	assert.Equal(t, serial.Aggregates, parallel.Aggregates)
}
