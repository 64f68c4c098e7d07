//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/ragscore/ragscore/evaluation"
)

// sampleSize bounds the individual results carried on a report so reports
// over large batches stay small.
const sampleSize = 10

// overallScoreKey is the aggregate key for the per-entry overall score.
const overallScoreKey = "overall_score"

// Aggregate summarizes one metric across all successful entries.
type Aggregate struct {
	// Mean is the arithmetic mean.
	Mean float64 `json:"mean"`
	// Std is the population standard deviation.
	Std float64 `json:"std"`
	// Min is the smallest observed value.
	Min float64 `json:"min"`
	// Max is the largest observed value.
	Max float64 `json:"max"`
	// Count is the number of entries that computed the metric.
	Count int `json:"count"`
}

// EntryError records one failed entry by input position.
type EntryError struct {
	// Index is the entry's position in the input slice.
	Index int `json:"index"`
	// Message is the rendered entry error.
	Message string `json:"message"`
}

// Report is the outcome of one batch run.
type Report struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`
	// TotalEntries is the number of input requests.
	TotalEntries int `json:"total_entries"`
	// SucceededEntries is the number of entries that evaluated cleanly.
	SucceededEntries int `json:"succeeded_entries"`
	// FailedEntries is the number of entries that errored.
	FailedEntries int `json:"failed_entries"`
	// Aggregates maps metric names (plus overall_score) to their summary
	// statistics over the successful entries.
	Aggregates map[string]Aggregate `json:"aggregates"`
	// Sample holds up to sampleSize successful results in input order.
	Sample []*evaluation.Result `json:"individual_results,omitempty"`
	// EntryErrors lists failed entries in input order.
	EntryErrors []EntryError `json:"entry_errors,omitempty"`
}

// Err folds the entry errors into one error, or nil when every entry
// succeeded.
func (r *Report) Err() error {
	if r == nil || len(r.EntryErrors) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, e := range r.EntryErrors {
		merr = multierror.Append(merr, fmt.Errorf("entry %d: %s", e.Index, e.Message))
	}
	return merr.ErrorOrNil()
}

// Aggregate returns the named aggregate and whether it exists.
func (r *Report) Aggregate(name string) (Aggregate, bool) {
	a, ok := r.Aggregates[name]
	return a, ok
}

// MetricNames returns the aggregated metric names in lexical order.
func (r *Report) MetricNames() []string {
	names := make([]string, 0, len(r.Aggregates))
	for name := range r.Aggregates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildReport folds ordered entry results into a report.
func buildReport(runID string, results []*entryResult) *Report {
	report := &Report{
		RunID:        runID,
		TotalEntries: len(results),
		Aggregates:   make(map[string]Aggregate),
	}
	series := make(map[string][]float64)
	for _, er := range results {
		if er == nil {
			continue
		}
		if er.err != nil {
			report.FailedEntries++
			report.EntryErrors = append(report.EntryErrors, EntryError{
				Index:   er.index,
				Message: er.err.Error(),
			})
			continue
		}
		report.SucceededEntries++
		if len(report.Sample) < sampleSize {
			report.Sample = append(report.Sample, er.result)
		}
		for _, s := range er.result.Scores {
			if s == nil {
				continue
			}
			series[s.MetricName] = append(series[s.MetricName], s.Value)
		}
		series[overallScoreKey] = append(series[overallScoreKey], er.result.OverallScore)
	}
	for name, values := range series {
		report.Aggregates[name] = aggregate(values)
	}
	return report
}

// aggregate computes mean, population standard deviation, min and max.
func aggregate(values []float64) Aggregate {
	agg := Aggregate{Count: len(values)}
	if len(values) == 0 {
		return agg
	}
	agg.Min = values[0]
	agg.Max = values[0]
	sum := 0.0
	for _, v := range values {
		sum += v
		if v < agg.Min {
			agg.Min = v
		}
		if v > agg.Max {
			agg.Max = v
		}
	}
	agg.Mean = sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		d := v - agg.Mean
		variance += d * d
	}
	agg.Std = math.Sqrt(variance / float64(len(values)))
	return agg
}
