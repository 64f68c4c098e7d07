//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package document defines the document-processor contract and scores the
// quality of processing output. Parsing itself happens in an external
// service; this package only consumes its results.
package document

import (
	"context"

	"github.com/ragscore/ragscore/metric"
)

// Chunk is one extracted text chunk.
type Chunk struct {
	// Content is the chunk text.
	Content string `json:"content"`
	// PageNumber is the 1-based source page.
	PageNumber int `json:"page_number,omitempty"`
}

// ImageExtract is one image extracted from a document.
type ImageExtract struct {
	// Ref locates the extracted image.
	Ref string `json:"ref"`
	// PageNumber is the 1-based source page.
	PageNumber int `json:"page_number,omitempty"`
	// Caption is the detected caption, when one exists.
	Caption string `json:"caption,omitempty"`
	// ExtractedText is OCR text found inside the image.
	ExtractedText string `json:"extracted_text,omitempty"`
}

// Metadata holds document-level metadata reported by the processor.
type Metadata struct {
	// Title of the document.
	Title string `json:"title,omitempty"`
	// Authors of the document.
	Authors []string `json:"authors,omitempty"`
	// TotalPages in the source document.
	TotalPages int `json:"total_pages,omitempty"`
	// WordCount across all extracted text.
	WordCount int `json:"word_count,omitempty"`
}

// Processed is the complete output of processing one document.
type Processed struct {
	// TextChunks holds the extracted text chunks in document order.
	TextChunks []Chunk `json:"text_chunks"`
	// Images holds the extracted images in document order.
	Images []ImageExtract `json:"images,omitempty"`
	// Relationships links text spans to extracted images.
	Relationships []metric.CrossModalPair `json:"relationships,omitempty"`
	// Metadata holds document-level metadata.
	Metadata Metadata `json:"metadata"`
	// ProcessingTimeMillis is how long processing took.
	ProcessingTimeMillis int64 `json:"processing_time,omitempty"`
}

// Processor is the contract for the external document-processing service.
type Processor interface {
	// Process parses the document at ref and returns its extracted content.
	Process(ctx context.Context, ref string) (*Processed, error)
}
