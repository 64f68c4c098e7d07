//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package gate turns evaluation results into deterministic pass/fail
// decisions against a per-metric threshold table. The gate never mutates
// the result it inspects; it produces its own report.
package gate

import (
	"fmt"

	"github.com/ragscore/ragscore/evaluation"
	"github.com/ragscore/ragscore/metric"
	"github.com/ragscore/ragscore/status"
)

// DefaultThreshold applies to any metric without an explicit entry in the
// threshold table.
const DefaultThreshold = 0.7

// Thresholds maps metric names to minimum passing values.
type Thresholds map[string]float64

// MetricDecision records the gate outcome for one computed metric.
type MetricDecision struct {
	// MetricName identifies the gated metric.
	MetricName string `json:"metric_name"`
	// Value is the metric value the decision was made on.
	Value float64 `json:"value"`
	// Threshold is the minimum passing value applied.
	Threshold float64 `json:"threshold"`
	// Status is Passed when Value >= Threshold, Failed otherwise.
	Status status.EvalStatus `json:"status"`
}

// Report is the outcome of gating one evaluation result. Decisions keep the
// metric computation order so reports diff cleanly across runs.
type Report struct {
	// Decisions holds one entry per computed metric, in score order.
	Decisions []MetricDecision `json:"decisions"`
	// FailingMetrics lists the names of failed metrics, in score order.
	FailingMetrics []string `json:"failing_metrics,omitempty"`
	// OverallStatus is Passed only when every gated core metric passed.
	OverallStatus status.EvalStatus `json:"overall_status"`
}

// Engine gates evaluation results against a threshold table. A nil or
// partial table falls back to DefaultThreshold per metric. The zero value
// gates everything at the default.
type Engine struct {
	thresholds Thresholds
}

// Option represents a functional option for configuring the Engine.
type Option func(*Engine)

// WithThresholds sets per-metric thresholds. Metrics absent from the table
// keep DefaultThreshold.
func WithThresholds(thresholds Thresholds) Option {
	return func(e *Engine) {
		e.thresholds = thresholds
	}
}

// New creates a gate engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Threshold returns the threshold applied to the named metric.
func (e *Engine) Threshold(name string) float64 {
	if t, ok := e.thresholds[name]; ok {
		return t
	}
	return DefaultThreshold
}

// Check gates every computed metric on the result. The overall status is
// Passed only when all core metrics present on the result pass; a result
// computed without any core metric gates to NotEvaluated.
func (e *Engine) Check(result *evaluation.Result) (*Report, error) {
	if result == nil {
		return nil, fmt.Errorf("gate: result is nil")
	}
	report := &Report{OverallStatus: status.EvalStatusNotEvaluated}
	coreSeen := false
	corePassed := true
	for _, s := range result.Scores {
		if s == nil || s.Unbounded {
			continue
		}
		threshold := e.Threshold(s.MetricName)
		decision := MetricDecision{
			MetricName: s.MetricName,
			Value:      s.Value,
			Threshold:  threshold,
			Status:     status.EvalStatusPassed,
		}
		if s.Value < threshold {
			decision.Status = status.EvalStatusFailed
			report.FailingMetrics = append(report.FailingMetrics, s.MetricName)
		}
		report.Decisions = append(report.Decisions, decision)
		if metric.IsCoreMetric(s.MetricName) {
			coreSeen = true
			corePassed = corePassed && decision.Status == status.EvalStatusPassed
		}
	}
	if coreSeen {
		if corePassed {
			report.OverallStatus = status.EvalStatusPassed
		} else {
			report.OverallStatus = status.EvalStatusFailed
		}
	}
	return report, nil
}

// Decision returns the decision for the named metric, or nil when the
// metric was not gated.
func (r *Report) Decision(name string) *MetricDecision {
	if r == nil {
		return nil
	}
	for i := range r.Decisions {
		if r.Decisions[i].MetricName == name {
			return &r.Decisions[i]
		}
	}
	return nil
}
