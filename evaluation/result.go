//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"time"

	"github.com/ragscore/ragscore/metric"
)

// Result is the outcome of evaluating one request. It is built once by the
// orchestrator and never mutated afterwards; the quality gate derives its
// own report instead of editing scores in place.
type Result struct {
	// Query echoes the evaluated query.
	Query string `json:"query"`
	// Scores lists the computed metric scores in computation order.
	Scores []*metric.Score `json:"scores"`
	// OverallScore is the arithmetic mean of the core metric subset.
	OverallScore float64 `json:"overall_score"`
	// Recommendations lists deterministic remediation suggestions.
	Recommendations []string `json:"recommendations,omitempty"`
	// EvaluationTime records how long the evaluation took.
	EvaluationTime time.Duration `json:"evaluation_time"`
	// ModelsUsed identifies the providers that contributed scores.
	ModelsUsed []string `json:"models_used"`
}

// Score returns the named metric score, or nil when it was not computed.
func (r *Result) Score(name string) *metric.Score {
	if r == nil {
		return nil
	}
	for _, s := range r.Scores {
		if s != nil && s.MetricName == name {
			return s
		}
	}
	return nil
}

// ScoreValue returns the named metric value and whether it was computed.
func (r *Result) ScoreValue(name string) (float64, bool) {
	s := r.Score(name)
	if s == nil {
		return 0, false
	}
	return s.Value, true
}
