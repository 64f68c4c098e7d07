//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"fmt"

	"github.com/ragscore/ragscore/log"
	"github.com/ragscore/ragscore/metric"
)

// DefaultEvaluationTypes is used when a request names no metric groups.
var DefaultEvaluationTypes = []string{
	metric.EvalTypeTextQuality,
	metric.EvalTypeImageRelevance,
	metric.EvalTypeCrossModalConsistency,
	metric.EvalTypeMultimodalFaithfulness,
}

// Request describes one multimodal RAG output to evaluate.
type Request struct {
	// Query is the user question that produced the answer.
	Query string `json:"query"`
	// RetrievedContexts holds the text chunks the generator saw, in
	// retrieval order.
	RetrievedContexts []string `json:"retrieved_contexts"`
	// RetrievedImages holds descriptors of the retrieved images.
	RetrievedImages []metric.Image `json:"retrieved_images,omitempty"`
	// GeneratedAnswer is the answer under evaluation.
	GeneratedAnswer string `json:"generated_answer"`
	// GroundTruth is the reference answer, when one exists.
	GroundTruth string `json:"ground_truth,omitempty"`
	// CrossModalPairs links text spans to images with typed relationships.
	CrossModalPairs []metric.CrossModalPair `json:"cross_modal_pairs,omitempty"`
	// EvaluationTypes selects the metric groups to run. Empty means all.
	EvaluationTypes []string `json:"evaluation_types,omitempty"`
}

// Validate rejects requests with missing required fields before any metric
// runs, and normalizes cross-modal pairs in place: unknown relationship
// types map to "other" and confidences are clamped to [0, 1], with a
// warning rather than a hard failure.
func (r *Request) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}
	if r.Query == "" {
		return fmt.Errorf("%w: query is empty", ErrInvalidRequest)
	}
	if len(r.RetrievedContexts) == 0 {
		return fmt.Errorf("%w: retrieved contexts are empty", ErrInvalidRequest)
	}
	if r.GeneratedAnswer == "" {
		return fmt.Errorf("%w: generated answer is empty", ErrInvalidRequest)
	}
	for i := range r.CrossModalPairs {
		pair := &r.CrossModalPairs[i]
		normalized, recognized := metric.NormalizeRelationship(string(pair.Relationship))
		if !recognized {
			log.Warnf("unknown relationship type %q on cross-modal pair %d, treating as %q",
				pair.Relationship, i, metric.RelationshipOther)
		}
		pair.Relationship = normalized
		if pair.Confidence < 0 || pair.Confidence > 1 {
			log.Warnf("cross-modal pair %d confidence %v outside [0, 1], clamping", i, pair.Confidence)
			pair.Confidence = metric.Clamp01(pair.Confidence)
		}
	}
	return nil
}

// wantsType reports whether the request asks for the given metric group.
func (r *Request) wantsType(name string) bool {
	types := r.EvaluationTypes
	if len(types) == 0 {
		types = DefaultEvaluationTypes
	}
	for _, t := range types {
		if t == name {
			return true
		}
	}
	return false
}
