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

	"github.com/ragscore/ragscore/evaluation"
)

func reportWithMeans(means map[string]float64) *Report {
	r := &Report{Aggregates: make(map[string]Aggregate)}
	for name, mean := range means {
		r.Aggregates[name] = Aggregate{Mean: mean, Count: 1}
	}
	return r
}

func TestCompareRequiresBothReports(t *testing.T) {
	_, err := Compare(nil, &Report{})
	assert.Error(t, err)
	_, err = Compare(&Report{}, nil)
	assert.Error(t, err)
}

func TestCompareDifferenceAndWinner(t *testing.T) {
	a := reportWithMeans(map[string]float64{"faithfulness": 0.6, "basic_relevance": 0.9})
	b := reportWithMeans(map[string]float64{"faithfulness": 0.8, "basic_relevance": 0.85})

	c, err := Compare(a, b)
	require.NoError(t, err)
	require.Len(t, c.Metrics, 2)

	// Lexical metric order.
	assert.Equal(t, "basic_relevance", c.Metrics[0].MetricName)
	assert.Equal(t, "faithfulness", c.Metrics[1].MetricName)

	assert.InDelta(t, -0.05, c.Metrics[0].Difference, 1e-9)
	assert.Equal(t, WinnerSystemA, c.Metrics[0].Winner)
	assert.InDelta(t, 0.2, c.Metrics[1].Difference, 1e-9)
	assert.Equal(t, WinnerSystemB, c.Metrics[1].Winner)

	// The largest absolute difference decides the overall winner.
	assert.Equal(t, WinnerSystemB, c.OverallWinner)
}

func TestCompareIsAntisymmetric(t *testing.T) {
	a := reportWithMeans(map[string]float64{"faithfulness": 0.6})
	b := reportWithMeans(map[string]float64{"faithfulness": 0.8})

	forward, err := Compare(a, b)
	require.NoError(t, err)
	backward, err := Compare(b, a)
	require.NoError(t, err)

	assert.InDelta(t, -forward.Metrics[0].Difference, backward.Metrics[0].Difference, 1e-9)
	assert.Equal(t, WinnerSystemB, forward.OverallWinner)
	assert.Equal(t, WinnerSystemA, backward.OverallWinner)
}

func TestCompareIdenticalReportsTie(t *testing.T) {
	a := reportWithMeans(map[string]float64{"faithfulness": 0.7, "basic_relevance": 0.7})
	c, err := Compare(a, reportWithMeans(map[string]float64{"faithfulness": 0.7, "basic_relevance": 0.7}))
	require.NoError(t, err)
	for _, m := range c.Metrics {
		assert.Equal(t, WinnerTie, m.Winner)
	}
	assert.Equal(t, WinnerTie, c.OverallWinner)
}

func TestCompareSystems(t *testing.T) {
	base := []*evaluation.Request{
		{
			Query:             "How does the cooling system work?",
			RetrievedContexts: []string{"The cooling system circulates coolant through the engine block."},
			GeneratedAnswer:   "placeholder",
		},
	}
	answersA := []string{"Something about weather patterns and rainfall."}
	answersB := []string{"The cooling system circulates coolant through the engine block."}

	b := New(evaluation.New())
	c, err := b.CompareSystems(context.Background(), base, answersA, answersB)
	require.NoError(t, err)

	// System B restates the context, so faithfulness favors it.
	var faithfulness *MetricComparison
	for i := range c.Metrics {
		if c.Metrics[i].MetricName == "faithfulness" {
			faithfulness = &c.Metrics[i]
		}
	}
	require.NotNil(t, faithfulness)
	assert.Equal(t, WinnerSystemB, faithfulness.Winner)
	assert.Greater(t, faithfulness.Difference, 0.0)

	// The base requests keep their original answers.
	assert.Equal(t, "placeholder", base[0].GeneratedAnswer)
}

func TestCompareSystemsAnswerCountMismatch(t *testing.T) {
	b := New(evaluation.New())
	base := []*evaluation.Request{{Query: "q", RetrievedContexts: []string{"c"}, GeneratedAnswer: "a"}}
	_, err := b.CompareSystems(context.Background(), base, []string{"one"}, nil)
	assert.Error(t, err)
}

func TestCompareSkipsUnsharedMetrics(t *testing.T) {
	a := reportWithMeans(map[string]float64{"faithfulness": 0.6, "only_a": 0.1})
	b := reportWithMeans(map[string]float64{"faithfulness": 0.7, "only_b": 0.9})
	c, err := Compare(a, b)
	require.NoError(t, err)
	require.Len(t, c.Metrics, 1)
	assert.Equal(t, "faithfulness", c.Metrics[0].MetricName)
}
