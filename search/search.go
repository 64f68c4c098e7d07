//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package search defines the entities produced by the vector index
// collaborator and consumed read-only by the retrieval metrics.
package search

import "context"

// Payload keys the retrieval metrics understand.
const (
	PayloadContentType = "content_type"
	PayloadDocumentID  = "document_id"
	PayloadPageNumber  = "page_number"
)

// Result is a single nearest-neighbor hit from the vector index.
type Result struct {
	// ID uniquely identifies the indexed point.
	ID string `json:"id"`
	// Score is the similarity score. Unbounded in general, typically in
	// [-1, 1] for cosine distance.
	Score float64 `json:"score"`
	// Payload carries index metadata such as content_type, document_id and
	// page_number.
	Payload map[string]any `json:"payload,omitempty"`
}

// DocumentID returns the document_id payload entry, or "" when absent.
func (r Result) DocumentID() string {
	return r.payloadString(PayloadDocumentID)
}

// ContentType returns the content_type payload entry, defaulting to "text".
func (r Result) ContentType() string {
	if v := r.payloadString(PayloadContentType); v != "" {
		return v
	}
	return "text"
}

// PageNumber returns the page_number payload entry, defaulting to 1.
func (r Result) PageNumber() int {
	switch v := r.Payload[PayloadPageNumber].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 1
	}
}

func (r Result) payloadString(key string) string {
	if v, ok := r.Payload[key].(string); ok {
		return v
	}
	return ""
}

// Index is the narrow contract consumed from the vector index collaborator.
type Index interface {
	// Query returns up to limit nearest neighbors of the given vector.
	Query(ctx context.Context, vector []float64, limit int) ([]Result, error)
}
