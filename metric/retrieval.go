//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"math"

	"github.com/ragscore/ragscore/search"
)

// PrecisionKs enumerates the cutoffs computed by PrecisionRecallAtK.
var PrecisionKs = []int{1, 3, 5, 10}

// mapApproximationK selects which precision cutoff approximates MAP.
const mapApproximationK = 5

// Normalization constants for result diversity. The index holds three
// content types (text, image, table); five distinct pages is treated as a
// fully spread result list.
const (
	contentTypeFanout = 3
	pageSpread        = 5
)

// RetrievalScores bundles the rank-based retrieval metrics for one query.
type RetrievalScores struct {
	// PrecisionAtK maps cutoff k to precision, for k not exceeding the
	// result list length.
	PrecisionAtK map[int]float64 `json:"precision_at_k"`
	// RecallAtK maps cutoff k to recall against the relevant ID set.
	RecallAtK map[int]float64 `json:"recall_at_k"`
	// MAPScore approximates mean average precision as precision@5.
	MAPScore float64 `json:"map_score"`
}

// PrecisionRecallAtK computes precision and recall at the standard cutoffs
// using retrieved result IDs against a relevant ID set. Cutoffs longer than
// the result list are skipped. Empty relevant sets yield empty maps.
func PrecisionRecallAtK(results []search.Result, relevantIDs []string) RetrievalScores {
	scores := RetrievalScores{
		PrecisionAtK: make(map[int]float64),
		RecallAtK:    make(map[int]float64),
	}
	if len(relevantIDs) == 0 {
		return scores
	}
	relevant := make(map[string]struct{}, len(relevantIDs))
	for _, id := range relevantIDs {
		relevant[id] = struct{}{}
	}
	for _, k := range PrecisionKs {
		if k > len(results) {
			continue
		}
		hits := 0
		seen := make(map[string]struct{}, k)
		for _, result := range results[:k] {
			if _, dup := seen[result.ID]; dup {
				continue
			}
			seen[result.ID] = struct{}{}
			if _, ok := relevant[result.ID]; ok {
				hits++
			}
		}
		scores.PrecisionAtK[k] = float64(hits) / float64(k)
		scores.RecallAtK[k] = float64(hits) / float64(len(relevant))
	}
	scores.MAPScore = scores.PrecisionAtK[mapApproximationK]
	return scores
}

// MRR computes the mean reciprocal rank of the first relevant result.
func MRR(results []search.Result, relevantIDs []string) float64 {
	if len(results) == 0 || len(relevantIDs) == 0 {
		return 0
	}
	relevant := make(map[string]struct{}, len(relevantIDs))
	for _, id := range relevantIDs {
		relevant[id] = struct{}{}
	}
	for idx, result := range results {
		if _, ok := relevant[result.ID]; ok {
			return 1.0 / float64(idx+1)
		}
	}
	return 0
}

// NDCG computes normalized discounted cumulative gain for binary relevance.
func NDCG(results []search.Result, relevantIDs []string) float64 {
	if len(results) == 0 || len(relevantIDs) == 0 {
		return 0
	}
	relevant := make(map[string]struct{}, len(relevantIDs))
	for _, id := range relevantIDs {
		relevant[id] = struct{}{}
	}
	dcg := 0.0
	for idx, result := range results {
		if _, ok := relevant[result.ID]; ok {
			dcg += 1.0 / math.Log2(float64(idx+2))
		}
	}
	n := len(relevant)
	if len(results) < n {
		n = len(results)
	}
	idcg := 0.0
	for i := 0; i < n; i++ {
		idcg += 1.0 / math.Log2(float64(i+2))
	}
	if idcg == 0 {
		return 0
	}
	return Clamp01(dcg / idcg)
}

// ResultDiversity averages three normalized diversity signals: unique
// documents, unique content types and unique pages. Fewer than two results
// are trivially diverse and score 1.0.
func ResultDiversity(results []search.Result) float64 {
	if len(results) < 2 {
		return 1
	}
	docs := make(map[string]struct{})
	types := make(map[string]struct{})
	pages := make(map[int]struct{})
	for _, result := range results {
		docs[result.DocumentID()] = struct{}{}
		types[result.ContentType()] = struct{}{}
		pages[result.PageNumber()] = struct{}{}
	}
	docDiversity := float64(len(docs)) / float64(len(results))
	typeDiversity := math.Min(float64(len(types))/contentTypeFanout, 1)
	pageDiversity := math.Min(float64(len(pages))/pageSpread, 1)
	return (docDiversity + typeDiversity + pageDiversity) / 3
}

// RankingQuality averages an order signal (1.0 for non-increasing scores,
// 0.5 otherwise) with a variance signal that rewards discriminative score
// distributions. Empty result lists score 0.
func RankingQuality(results []search.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	sorted := true
	for i := 0; i+1 < len(results); i++ {
		if results[i].Score < results[i+1].Score {
			sorted = false
			break
		}
	}
	orderSignal := 0.5
	if sorted {
		orderSignal = 1.0
	}
	varianceSignal := 0.5
	if len(results) > 1 {
		varianceSignal = math.Min(scoreVariance(results)*2, 1)
	}
	return (orderSignal + varianceSignal) / 2
}

// CrossModalAccuracy scores cross-modal search result quality from content
// type diversity and mean result confidence. Empty result lists score 0.
func CrossModalAccuracy(results []search.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	types := make(map[string]struct{})
	scoreSum := 0.0
	for _, result := range results {
		types[result.ContentType()] = struct{}{}
		scoreSum += result.Score
	}
	typeDiversity := float64(len(types)) / float64(len(results))
	avgScore := scoreSum / float64(len(results))
	return Clamp01((typeDiversity + avgScore) / 2)
}

// scoreVariance computes the population variance of the result scores.
func scoreVariance(results []search.Result) float64 {
	mean := 0.0
	for _, result := range results {
		mean += result.Score
	}
	mean /= float64(len(results))
	variance := 0.0
	for _, result := range results {
		d := result.Score - mean
		variance += d * d
	}
	return variance / float64(len(results))
}
