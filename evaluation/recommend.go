//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package evaluation

import "github.com/ragscore/ragscore/metric"

// Recommendation rule cutoffs. These are fixed rule constants, independent
// of any configured quality-gate thresholds.
const (
	imageRelevanceCutoff        = 0.7
	crossModalConsistencyCutoff = 0.6
	visualGroundingCutoff       = 0.5
	basicRelevanceCutoff        = 0.7
)

// recommendationRule maps a metric below a cutoff to a remediation message.
type recommendationRule struct {
	metricName string
	cutoff     float64
	message    string
}

// recommendationRules fire in declaration order so that recommendations come
// out deterministic for identical inputs.
var recommendationRules = []recommendationRule{
	{
		metricName: metric.MetricImageRelevance,
		cutoff:     imageRelevanceCutoff,
		message:    "Consider improving image retrieval relevance - retrieved images may not match the query intent",
	},
	{
		metricName: metric.MetricCrossModalConsistency,
		cutoff:     crossModalConsistencyCutoff,
		message:    "Text-image relationships need improvement - verify cross-modal pair extraction quality",
	},
	{
		metricName: metric.MetricVisualGrounding,
		cutoff:     visualGroundingCutoff,
		message:    "Generated answers should better reference visual content from retrieved images",
	},
	{
		metricName: metric.MetricBasicRelevance,
		cutoff:     basicRelevanceCutoff,
		message:    "Text retrieval quality could be improved - contexts show weak overlap with the query",
	},
}

// buildRecommendations applies the rule table to the computed scores. A rule
// only fires when its metric was actually computed.
func buildRecommendations(result *Result) []string {
	var recommendations []string
	for _, rule := range recommendationRules {
		if v, ok := result.ScoreValue(rule.metricName); ok && v < rule.cutoff {
			recommendations = append(recommendations, rule.message)
		}
	}
	return recommendations
}
