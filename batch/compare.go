//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/ragscore/ragscore/evaluation"
)

// Winner labels for metric and overall comparisons.
const (
	WinnerSystemA = "System A"
	WinnerSystemB = "System B"
	WinnerTie     = "Tie"
)

// MetricComparison compares one metric's mean between two systems.
type MetricComparison struct {
	// MetricName identifies the compared metric.
	MetricName string `json:"metric_name"`
	// SystemA is system A's mean for the metric.
	SystemA float64 `json:"system_a"`
	// SystemB is system B's mean for the metric.
	SystemB float64 `json:"system_b"`
	// Difference is SystemB minus SystemA.
	Difference float64 `json:"difference"`
	// Winner names the better system for this metric, or Tie.
	Winner string `json:"winner"`
}

// Comparison is the outcome of comparing two batch reports.
type Comparison struct {
	// ComparisonID uniquely identifies the comparison.
	ComparisonID string `json:"comparison_id"`
	// Metrics holds per-metric comparisons in lexical metric order.
	Metrics []MetricComparison `json:"metrics"`
	// OverallWinner is the winner on the metric with the largest absolute
	// difference, or Tie when every metric ties.
	OverallWinner string `json:"overall_winner"`
}

// CompareSystems evaluates two systems' answers over the same queries and
// contexts, then contrasts the resulting reports. answersA and answersB
// must each supply one answer per base request.
func (e *Evaluator) CompareSystems(ctx context.Context, base []*evaluation.Request, answersA, answersB []string) (*Comparison, error) {
	if len(answersA) != len(base) || len(answersB) != len(base) {
		return nil, fmt.Errorf("batch: need one answer per request, got %d and %d for %d requests",
			len(answersA), len(answersB), len(base))
	}
	withAnswers := func(answers []string) []*evaluation.Request {
		requests := make([]*evaluation.Request, len(base))
		for i, req := range base {
			r := *req
			r.GeneratedAnswer = answers[i]
			requests[i] = &r
		}
		return requests
	}
	reportA, err := e.Run(ctx, withAnswers(answersA))
	if err != nil {
		return nil, fmt.Errorf("batch: evaluate system A: %w", err)
	}
	reportB, err := e.Run(ctx, withAnswers(answersB))
	if err != nil {
		return nil, fmt.Errorf("batch: evaluate system B: %w", err)
	}
	return Compare(reportA, reportB)
}

// Compare contrasts two batch reports metric by metric over the metrics
// both reports aggregated. Differences are computed as B minus A, so
// swapping the arguments flips every sign and winner.
func Compare(reportA, reportB *Report) (*Comparison, error) {
	if reportA == nil || reportB == nil {
		return nil, fmt.Errorf("batch: both reports are required")
	}
	comparison := &Comparison{
		ComparisonID:  uuid.NewString(),
		OverallWinner: WinnerTie,
	}
	var shared []string
	for _, name := range reportA.MetricNames() {
		if _, ok := reportB.Aggregates[name]; ok {
			shared = append(shared, name)
		}
	}
	sort.Strings(shared)
	maxAbsDifference := 0.0
	for _, name := range shared {
		a := reportA.Aggregates[name]
		b := reportB.Aggregates[name]
		mc := MetricComparison{
			MetricName: name,
			SystemA:    a.Mean,
			SystemB:    b.Mean,
			Difference: b.Mean - a.Mean,
			Winner:     WinnerTie,
		}
		switch {
		case mc.Difference > 0:
			mc.Winner = WinnerSystemB
		case mc.Difference < 0:
			mc.Winner = WinnerSystemA
		}
		if abs := math.Abs(mc.Difference); abs > maxAbsDifference {
			maxAbsDifference = abs
			comparison.OverallWinner = mc.Winner
		}
		comparison.Metrics = append(comparison.Metrics, mc)
	}
	return comparison, nil
}
