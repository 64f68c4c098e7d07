//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"context"
	"fmt"

	"github.com/ragscore/ragscore/log"
	"github.com/ragscore/ragscore/metric"
	"github.com/ragscore/ragscore/similarity"
)

// appendImageRelevance computes the mean cosine similarity between the query
// embedding and each retrieved image embedding. It reports whether the
// gateway actually served the metric (false when it degraded to neutral).
func (e *Evaluator) appendImageRelevance(ctx context.Context, req *Request, result *Result) bool {
	score := &metric.Score{
		MetricName: metric.MetricImageRelevance,
		Details:    map[string]any{"images": len(req.RetrievedImages)},
	}
	result.Scores = append(result.Scores, score)
	if len(req.RetrievedImages) == 0 {
		score.Value = 0.0
		return false
	}
	value, err := e.imageRelevance(ctx, req.Query, req.RetrievedImages)
	if err != nil {
		score.Value = similarity.NeutralScore
		score.Details["degraded"] = true
		log.Warnf("image relevance degraded to neutral %v: %v", similarity.NeutralScore, err)
		return false
	}
	score.Value = value
	return true
}

// appendMultimodalFaithfulness computes the best semantic support for the
// answer across text contexts and image-derived texts. It reports whether
// the gateway actually served the metric.
func (e *Evaluator) appendMultimodalFaithfulness(ctx context.Context, req *Request, result *Result) bool {
	score := &metric.Score{
		MetricName: metric.MetricMultimodalFaithfulness,
		Details:    map[string]any{},
	}
	result.Scores = append(result.Scores, score)
	value, err := e.multimodalFaithfulness(ctx, req)
	if err != nil {
		score.Value = similarity.NeutralScore
		score.Details["degraded"] = true
		log.Warnf("multimodal faithfulness degraded to neutral %v: %v", similarity.NeutralScore, err)
		return false
	}
	score.Value = value
	return true
}

// imageRelevance embeds the query and every image, then averages the cosine
// similarities. Any provider failure degrades the whole metric.
func (e *Evaluator) imageRelevance(ctx context.Context, query string, images []metric.Image) (float64, error) {
	if e.gateway == nil {
		return 0, fmt.Errorf("%w: no gateway configured", similarity.ErrProviderUnavailable)
	}
	queryVec, err := e.gateway.EmbedText(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("embed query: %w", err)
	}
	sum := 0.0
	for _, img := range images {
		imgVec, err := e.gateway.EmbedImage(ctx, img.Ref)
		if err != nil {
			return 0, fmt.Errorf("embed image %q: %w", img.Ref, err)
		}
		sum += metric.Clamp01(similarity.Cosine(queryVec, imgVec))
	}
	return sum / float64(len(images)), nil
}

// multimodalFaithfulness embeds the answer and each source text, returning
// the maximum cosine similarity. Images contribute their extracted text or
// caption as a text surrogate; an answer with no sources scores zero.
func (e *Evaluator) multimodalFaithfulness(ctx context.Context, req *Request) (float64, error) {
	sources := make([]string, 0, len(req.RetrievedContexts)+len(req.RetrievedImages))
	sources = append(sources, req.RetrievedContexts...)
	for _, img := range req.RetrievedImages {
		switch {
		case img.ExtractedText != "":
			sources = append(sources, "Image content: "+img.ExtractedText)
		case img.Caption != "":
			sources = append(sources, "Image caption: "+img.Caption)
		}
	}
	if len(sources) == 0 {
		return 0.0, nil
	}
	if e.gateway == nil {
		return 0, fmt.Errorf("%w: no gateway configured", similarity.ErrProviderUnavailable)
	}
	answerVec, err := e.gateway.EmbedText(ctx, req.GeneratedAnswer)
	if err != nil {
		return 0, fmt.Errorf("embed answer: %w", err)
	}
	best := 0.0
	for i, source := range sources {
		srcVec, err := e.gateway.EmbedText(ctx, source)
		if err != nil {
			return 0, fmt.Errorf("embed source %d: %w", i, err)
		}
		if sim := metric.Clamp01(similarity.Cosine(answerVec, srcVec)); sim > best {
			best = sim
		}
	}
	return best, nil
}
