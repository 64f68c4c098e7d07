//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package evaluation orchestrates quality evaluation of multimodal RAG
// output: it dispatches the requested metric groups to the metric library,
// routes semantic metrics through the similarity gateway, and assembles an
// immutable result with scores, recommendations and timing.
package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/ragscore/ragscore/metric"
	"github.com/ragscore/ragscore/similarity"
)

// lexicalProvider identifies the built-in lexical scorer in ModelsUsed.
const lexicalProvider = "ragscore_lexical"

// Evaluator orchestrates metric computation for evaluation requests.
// It holds no mutable state beyond its configuration and is safe for
// concurrent use across independent requests.
type Evaluator struct {
	gateway similarity.Gateway
}

// Option represents a functional option for configuring the Evaluator.
type Option func(*Evaluator)

// WithGateway injects the similarity gateway used by semantic metrics.
// Without one, gateway-backed metrics degrade to the neutral default.
func WithGateway(gateway similarity.Gateway) Option {
	return func(e *Evaluator) {
		e.gateway = gateway
	}
}

// New creates an Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate validates the request, computes the requested metric groups plus
// the always-on diagnostics, and returns the assembled result.
//
// A provider outage never fails the call: gateway-backed metrics substitute
// similarity.NeutralScore and the evaluation continues.
func (e *Evaluator) Evaluate(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	result := &Result{
		Query:      req.Query,
		ModelsUsed: []string{lexicalProvider},
	}
	gatewayUsed := false

	if req.wantsType(metric.EvalTypeTextQuality) {
		e.appendTextQuality(req, result)
	}
	if req.wantsType(metric.EvalTypeImageRelevance) {
		gatewayUsed = e.appendImageRelevance(ctx, req, result) || gatewayUsed
	}
	if req.wantsType(metric.EvalTypeCrossModalConsistency) {
		result.Scores = append(result.Scores, &metric.Score{
			MetricName: metric.MetricCrossModalConsistency,
			Value:      metric.CrossModalConsistency(req.CrossModalPairs),
			Details:    map[string]any{"pairs": len(req.CrossModalPairs)},
		})
	}
	if req.wantsType(metric.EvalTypeMultimodalFaithfulness) {
		gatewayUsed = e.appendMultimodalFaithfulness(ctx, req, result) || gatewayUsed
	}

	// Diagnostics run regardless of the requested groups.
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricVisualGrounding,
		Value:      metric.VisualGrounding(req.GeneratedAnswer, req.RetrievedImages),
		Details:    map[string]any{"images": len(req.RetrievedImages)},
	})
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricContentCoverage,
		Value:      metric.ContentCoverage(req.GeneratedAnswer, req.RetrievedContexts, req.RetrievedImages),
		Details:    map[string]any{"elements": len(req.RetrievedContexts) + len(req.RetrievedImages)},
	})

	if gatewayUsed && e.gateway != nil {
		result.ModelsUsed = append(result.ModelsUsed, e.gateway.Name())
	}
	result.OverallScore = overallScore(result)
	result.Recommendations = buildRecommendations(result)
	result.EvaluationTime = time.Since(start)
	return result, nil
}

// appendTextQuality computes the lexical text-quality metrics. The
// answer-similarity metric only runs when a ground truth is present.
func (e *Evaluator) appendTextQuality(req *Request, result *Result) {
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricBasicRelevance,
		Value:      metric.BasicRelevance(req.Query, req.RetrievedContexts),
		Details:    map[string]any{"contexts": len(req.RetrievedContexts)},
	})
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricContextUtilization,
		Value:      metric.ContextUtilization(req.RetrievedContexts, req.GeneratedAnswer),
	})
	completeness := &metric.Score{
		MetricName: metric.MetricAnswerCompleteness,
		Value:      metric.AnswerCompleteness(req.Query, req.GeneratedAnswer),
		Details:    map[string]any{},
	}
	if n, err := metric.SentenceCount(req.GeneratedAnswer); err == nil {
		completeness.Details["answer_sentences"] = n
	}
	result.Scores = append(result.Scores, completeness)
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricFaithfulness,
		Value:      metric.Faithfulness(req.RetrievedContexts, req.GeneratedAnswer),
	})
	if req.GroundTruth != "" {
		result.Scores = append(result.Scores, &metric.Score{
			MetricName: metric.MetricAnswerSimilarity,
			Value:      metric.AnswerSimilarity(req.GeneratedAnswer, req.GroundTruth),
		})
	}
}

// overallScore averages the core metric subset present on the result.
func overallScore(result *Result) float64 {
	sum, count := 0.0, 0
	for _, name := range metric.CoreMetrics {
		if v, ok := result.ScoreValue(name); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// String renders a short summary suitable for logs.
func (r *Result) String() string {
	return fmt.Sprintf("evaluation{query=%q overall=%.3f metrics=%d}", r.Query, r.OverallScore, len(r.Scores))
}
