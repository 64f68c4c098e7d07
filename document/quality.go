//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package document

import (
	"strings"

	"github.com/ragscore/ragscore/metric"
)

// Quality heuristics. A 500-character chunk is treated as well sized, two
// images per page as complete image extraction, ten chunks and five images
// as full extraction volume.
const (
	goodChunkSize      = 500.0
	goodImagesPerPage  = 2.0
	fullChunkCount     = 10.0
	fullImageCount     = 5.0
	chunkVarianceScale = 100000.0
	defaultOverlap     = 0.8
)

// QualityReport scores one processing result.
type QualityReport struct {
	// ExtractionCompleteness scores text, image and metadata extraction.
	ExtractionCompleteness float64 `json:"extraction_completeness"`
	// ChunkingQuality scores chunk sizing and sentence integrity.
	ChunkingQuality float64 `json:"chunking_quality"`
	// RelationshipAccuracy scores the confidence of text-image links.
	RelationshipAccuracy float64 `json:"relationship_accuracy"`
	// TextExtractionScore scores extracted chunk volume.
	TextExtractionScore float64 `json:"text_extraction_score"`
	// ImageExtractionScore scores extracted image volume.
	ImageExtractionScore float64 `json:"image_extraction_score"`
	// MetadataCompleteness scores title, authors and page count presence.
	MetadataCompleteness float64 `json:"metadata_completeness"`
	// OverallQualityScore is the mean of the scores above.
	OverallQualityScore float64 `json:"overall_quality_score"`
	// Suggestions lists deterministic processing improvements.
	Suggestions []string `json:"improvement_suggestions,omitempty"`
}

// EvaluateQuality scores a processing result on extraction completeness,
// chunking quality, relationship accuracy and metadata presence.
func EvaluateQuality(p *Processed) *QualityReport {
	if p == nil {
		return &QualityReport{}
	}
	report := &QualityReport{
		ExtractionCompleteness: extractionCompleteness(p),
		ChunkingQuality:        chunkingQuality(p.TextChunks),
		RelationshipAccuracy:   relationshipAccuracy(p.Relationships),
		TextExtractionScore:    metric.Clamp01(float64(len(p.TextChunks)) / fullChunkCount),
		ImageExtractionScore:   metric.Clamp01(float64(len(p.Images)) / fullImageCount),
		MetadataCompleteness:   metadataCompleteness(p.Metadata),
	}
	report.OverallQualityScore = (report.ExtractionCompleteness +
		report.ChunkingQuality +
		report.RelationshipAccuracy +
		report.TextExtractionScore +
		report.ImageExtractionScore +
		report.MetadataCompleteness) / 6
	report.Suggestions = qualitySuggestions(report)
	return report
}

// extractionCompleteness averages chunk sizing, image density and metadata
// presence. Missing aspects simply drop out of the average.
func extractionCompleteness(p *Processed) float64 {
	var scores []float64
	if len(p.TextChunks) > 0 {
		total := 0
		for _, c := range p.TextChunks {
			total += len(c.Content)
		}
		avgSize := float64(total) / float64(len(p.TextChunks))
		scores = append(scores, metric.Clamp01(avgSize/goodChunkSize))
	}
	if len(p.Images) > 0 {
		pages := p.Metadata.TotalPages
		if pages < 1 {
			pages = 1
		}
		perPage := float64(len(p.Images)) / float64(pages)
		scores = append(scores, metric.Clamp01(perPage/goodImagesPerPage))
	}
	present := 0
	if p.Metadata.Title != "" {
		present++
	}
	if len(p.Metadata.Authors) > 0 {
		present++
	}
	if p.Metadata.TotalPages > 0 {
		present++
	}
	if p.Metadata.WordCount > 0 {
		present++
	}
	scores = append(scores, float64(present)/4)

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// chunkingQuality scores chunk size consistency, sentence integrity and a
// fixed overlap heuristic. No chunks means processing extracted nothing.
func chunkingQuality(chunks []Chunk) float64 {
	if len(chunks) == 0 {
		return 0.0
	}
	mean := 0.0
	for _, c := range chunks {
		mean += float64(len(c.Content))
	}
	mean /= float64(len(chunks))
	variance := 0.0
	for _, c := range chunks {
		d := float64(len(c.Content)) - mean
		variance += d * d
	}
	variance /= float64(len(chunks))
	sizeScore := metric.Clamp01(1 - variance/chunkVarianceScale)

	integral := 0
	for _, c := range chunks {
		if endsOnSentence(c.Content) {
			integral++
		}
	}
	integrityScore := float64(integral) / float64(len(chunks))

	return (sizeScore + integrityScore + defaultOverlap) / 3
}

// endsOnSentence reports whether a chunk ends at a sentence or line break.
func endsOnSentence(content string) bool {
	if content == "" {
		return false
	}
	return strings.HasSuffix(content, ".") ||
		strings.HasSuffix(content, "!") ||
		strings.HasSuffix(content, "?") ||
		strings.HasSuffix(content, "\n")
}

// relationshipAccuracy averages relationship confidences. No relationships
// to judge scores 1.0.
func relationshipAccuracy(relationships []metric.CrossModalPair) float64 {
	if len(relationships) == 0 {
		return 1.0
	}
	sum := 0.0
	for _, rel := range relationships {
		sum += metric.Clamp01(rel.Confidence)
	}
	return sum / float64(len(relationships))
}

// metadataCompleteness checks title, authors and page count.
func metadataCompleteness(m Metadata) float64 {
	present := 0
	if m.Title != "" {
		present++
	}
	if len(m.Authors) > 0 {
		present++
	}
	if m.TotalPages > 0 {
		present++
	}
	return float64(present) / 3
}

// Suggestion cutoffs for processing quality.
const (
	chunkingSuggestionCutoff   = 0.6
	extractionSuggestionCutoff = 0.5
	metadataSuggestionCutoff   = 0.5
)

// qualitySuggestions applies the processing rule table in order.
func qualitySuggestions(report *QualityReport) []string {
	var suggestions []string
	if report.ChunkingQuality < chunkingSuggestionCutoff {
		suggestions = append(suggestions,
			"Chunk sizes vary widely or break mid-sentence - revisit the chunking configuration")
	}
	if report.ExtractionCompleteness < extractionSuggestionCutoff {
		suggestions = append(suggestions,
			"Content extraction looks incomplete - verify the processor handles this document format")
	}
	if report.MetadataCompleteness < metadataSuggestionCutoff {
		suggestions = append(suggestions,
			"Document metadata is sparse - enable title and author detection in the processor")
	}
	return suggestions
}
