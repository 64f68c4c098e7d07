//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package metric

// Preset metric name constants shared across packages.
const (
	MetricBasicRelevance         = "basic_relevance"
	MetricContextUtilization     = "context_utilization"
	MetricAnswerCompleteness     = "answer_completeness"
	MetricFaithfulness           = "faithfulness"
	MetricAnswerSimilarity       = "answer_similarity"
	MetricImageRelevance         = "image_relevance"
	MetricCrossModalConsistency  = "cross_modal_consistency"
	MetricMultimodalFaithfulness = "multimodal_faithfulness"
	MetricVisualGrounding        = "visual_grounding"
	MetricContentCoverage        = "content_coverage"
	MetricMAPScore               = "map_score"
	MetricNDCGScore              = "ndcg_score"
	MetricMRRScore               = "mrr_score"
	MetricResultDiversity        = "result_diversity"
	MetricRankingQuality         = "ranking_quality"
	MetricCrossModalAccuracy     = "cross_modal_accuracy"
)

// Evaluation type group names accepted in evaluation requests.
const (
	EvalTypeTextQuality            = "text_quality"
	EvalTypeImageRelevance         = "image_relevance"
	EvalTypeCrossModalConsistency  = "cross_modal_consistency"
	EvalTypeMultimodalFaithfulness = "multimodal_faithfulness"
)

// CoreMetrics is the fixed subset aggregated into the overall score.
// Optional cross-modal metrics are excluded so the aggregate stays stable
// when no multimodal data accompanies a request.
var CoreMetrics = []string{
	MetricBasicRelevance,
	MetricContextUtilization,
	MetricAnswerCompleteness,
	MetricFaithfulness,
}

// IsCoreMetric reports whether name belongs to the core metric subset.
func IsCoreMetric(name string) bool {
	for _, m := range CoreMetrics {
		if m == name {
			return true
		}
	}
	return false
}
