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

	"github.com/ragscore/ragscore/metric"
	"github.com/ragscore/ragscore/search"
)

// Search type identifiers. Cross-modal accuracy only applies to search
// modes that mix content types.
const (
	SearchTypeText       = "text"
	SearchTypeCrossModal = "cross_modal"
	SearchTypeMultimodal = "multimodal"
	SearchTypeHybrid     = "hybrid"
)

// SearchRequest describes one retrieval run to score against known
// relevant documents.
type SearchRequest struct {
	// Query is the search query that produced the results.
	Query string `json:"query"`
	// Results holds the ranked results, best first.
	Results []search.Result `json:"results"`
	// RelevantIDs lists the document IDs known to be relevant.
	RelevantIDs []string `json:"relevant_ids"`
	// SearchType identifies the retrieval mode under evaluation.
	SearchType string `json:"search_type"`
}

// SearchResult carries the retrieval-quality scores for one run.
type SearchResult struct {
	// Query echoes the evaluated query.
	Query string `json:"query"`
	// SearchType echoes the evaluated retrieval mode.
	SearchType string `json:"search_type"`
	// Scores lists the computed scores in computation order. Ranked
	// precision and recall appear as precision_at_k / recall_at_k details.
	Scores []*metric.Score `json:"scores"`
	// Suggestions lists deterministic retrieval tuning hints.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Score returns the named score, or nil when it was not computed.
func (r *SearchResult) Score(name string) *metric.Score {
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

// ScoreValue returns the named score value and whether it was computed.
func (r *SearchResult) ScoreValue(name string) (float64, bool) {
	s := r.Score(name)
	if s == nil {
		return 0, false
	}
	return s.Value, true
}

// crossModalSearchTypes lists the modes where cross-modal accuracy applies.
var crossModalSearchTypes = map[string]bool{
	SearchTypeCrossModal: true,
	SearchTypeMultimodal: true,
	SearchTypeHybrid:     true,
}

// EvaluateSearch scores a ranked retrieval run: ranked precision and recall,
// MAP, NDCG, MRR, diversity, ranking quality and, for cross-modal search
// modes, cross-modal accuracy.
func (e *Evaluator) EvaluateSearch(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}
	if req.Query == "" {
		return nil, fmt.Errorf("%w: query is empty", ErrInvalidRequest)
	}
	result := &SearchResult{
		Query:      req.Query,
		SearchType: req.SearchType,
	}

	ranked := metric.PrecisionRecallAtK(req.Results, req.RelevantIDs)
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricMAPScore,
		Value:      ranked.MAPScore,
		Details: map[string]any{
			"precision_at_k": ranked.PrecisionAtK,
			"recall_at_k":    ranked.RecallAtK,
		},
	})
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricNDCGScore,
		Value:      metric.NDCG(req.Results, req.RelevantIDs),
	})
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricMRRScore,
		Value:      metric.MRR(req.Results, req.RelevantIDs),
	})
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricResultDiversity,
		Value:      metric.ResultDiversity(req.Results),
	})
	result.Scores = append(result.Scores, &metric.Score{
		MetricName: metric.MetricRankingQuality,
		Value:      metric.RankingQuality(req.Results),
	})
	if crossModalSearchTypes[req.SearchType] {
		result.Scores = append(result.Scores, &metric.Score{
			MetricName: metric.MetricCrossModalAccuracy,
			Value:      metric.CrossModalAccuracy(req.Results),
		})
	}
	result.Suggestions = buildSearchSuggestions(result)
	return result, nil
}

// Search suggestion cutoffs, fixed rule constants like the answer-side
// recommendation rules.
const (
	mapScoreCutoff        = 0.5
	resultDiversityCutoff = 0.5
	rankingQualityCutoff  = 0.6
)

// buildSearchSuggestions applies the search rule table in order.
func buildSearchSuggestions(result *SearchResult) []string {
	var suggestions []string
	if v, ok := result.ScoreValue(metric.MetricMAPScore); ok && v < mapScoreCutoff {
		suggestions = append(suggestions,
			"Relevant documents rank low - consider tuning the embedding model or reranking")
	}
	if v, ok := result.ScoreValue(metric.MetricResultDiversity); ok && v < resultDiversityCutoff {
		suggestions = append(suggestions,
			"Results cluster on few documents - widen retrieval across documents and content types")
	}
	if v, ok := result.ScoreValue(metric.MetricRankingQuality); ok && v < rankingQualityCutoff {
		suggestions = append(suggestions,
			"Similarity scores are flat or unordered - verify score normalization in the index")
	}
	return suggestions
}
