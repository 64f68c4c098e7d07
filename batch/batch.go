//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package batch evaluates collections of requests concurrently and folds
// the per-entry results into aggregate reports. It also compares two
// systems' reports metric by metric.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ragscore/ragscore/evaluation"
	"github.com/ragscore/ragscore/log"
)

// DefaultParallelism is the default number of concurrent evaluations.
const DefaultParallelism = 4

// entryResult pairs one evaluation outcome with its input position so the
// report preserves input order regardless of completion order.
type entryResult struct {
	index  int
	result *evaluation.Result
	err    error
}

// Evaluator runs batches of evaluation requests over a worker pool.
type Evaluator struct {
	evaluator   *evaluation.Evaluator
	parallelism int
}

// Option represents a functional option for configuring the batch Evaluator.
type Option func(*Evaluator)

// WithParallelism sets the number of concurrent evaluations. Values below
// one keep the default.
func WithParallelism(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.parallelism = n
		}
	}
}

// New creates a batch evaluator around the given single-request evaluator.
func New(evaluator *evaluation.Evaluator, opts ...Option) *Evaluator {
	e := &Evaluator{
		evaluator:   evaluator,
		parallelism: DefaultParallelism,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates every request and folds the outcomes into a report. One
// failing entry never aborts the batch: its error lands in the report's
// entry error manifest while the remaining entries are still evaluated.
func (e *Evaluator) Run(ctx context.Context, requests []*evaluation.Request) (*Report, error) {
	if e.evaluator == nil {
		return nil, fmt.Errorf("batch: evaluator is nil")
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("batch: no requests")
	}
	pool, err := createEntryEvalPool(e.parallelism)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	defer pool.Release()

	results := make([]*entryResult, len(requests))
	var wg sync.WaitGroup
	for idx, req := range requests {
		wg.Add(1)
		param := entryEvalParamPool.Get().(*entryEvalParam)
		param.idx = idx
		param.ctx = ctx
		param.req = req
		param.eval = e.evaluator
		param.results = results
		param.wg = &wg
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			results[idx] = &entryResult{
				index: idx,
				err:   fmt.Errorf("submit evaluation task for entry %d: %w", idx, err),
			}
		}
	}
	wg.Wait()

	report := buildReport(uuid.NewString(), results)
	if len(report.EntryErrors) > 0 {
		log.Warnf("batch run %s: %d of %d entries failed", report.RunID, report.FailedEntries, report.TotalEntries)
	}
	return report, nil
}
