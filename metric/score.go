//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package metric provides pure quality metrics for multimodal RAG output.
//
// Every scoring function in this package is total: malformed but well-typed
// input yields 0.0 (or the documented neutral default) instead of an error.
// Text comparison is case-insensitive and whitespace-tokenized; no stemming
// or semantic matching happens here. Semantic scoring is delegated to the
// similarity gateway by the evaluation orchestrator.
package metric

// Score holds the outcome of a single metric computation.
type Score struct {
	// MetricName identifies the metric.
	MetricName string `json:"metric_name"`
	// Value is the computed score. Bounded metrics are clamped to [0, 1].
	Value float64 `json:"value"`
	// Threshold is the minimum passing value, when the consumer set one.
	Threshold *float64 `json:"threshold,omitempty"`
	// Unbounded marks count-based diagnostics that are not clamped to [0, 1].
	Unbounded bool `json:"unbounded,omitempty"`
	// Details contains auxiliary metric-specific numbers and strings.
	Details map[string]any `json:"details,omitempty"`
}

// Clamp01 clamps a bounded score into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
