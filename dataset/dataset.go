//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package dataset provides ground-truth datasets for evaluation runs.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ragscore/ragscore/evaluation"
)

// SourceManual marks entries curated by hand, the default provenance.
const SourceManual = "manual"

// Entry is one ground-truth example: a question, the contexts a correct
// answer draws on, a reference answer, and a short canonical ground truth.
type Entry struct {
	// Question is the query to evaluate against. It also keys the entry
	// within its dataset.
	Question string `json:"question"`
	// Contexts holds the reference contexts for the question.
	Contexts []string `json:"contexts"`
	// Answer is the reference answer.
	Answer string `json:"answer"`
	// GroundTruth is the short canonical answer.
	GroundTruth string `json:"ground_truth"`
	// Source records the entry provenance, SourceManual when unset.
	Source string `json:"source,omitempty"`
}

// Request converts the entry into an evaluation request that scores the
// reference answer against the reference contexts.
func (e *Entry) Request() *evaluation.Request {
	return &evaluation.Request{
		Query:             e.Question,
		RetrievedContexts: e.Contexts,
		GeneratedAnswer:   e.Answer,
		GroundTruth:       e.GroundTruth,
	}
}

// Dataset is a named collection of ground-truth entries.
type Dataset struct {
	// Name uniquely identifies the dataset.
	Name string `json:"name"`
	// Description of the dataset.
	Description string `json:"description,omitempty"`
	// Entries contains the ground-truth examples.
	Entries []*Entry `json:"entries"`
	// CreationTimestamp when this dataset was created.
	CreationTimestamp time.Time `json:"creation_timestamp"`
}

// Entry returns the entry keyed by question, or nil when absent.
func (d *Dataset) Entry(question string) *Entry {
	if d == nil {
		return nil
	}
	for _, e := range d.Entries {
		if e != nil && e.Question == question {
			return e
		}
	}
	return nil
}

// Manager defines the interface for managing ground-truth datasets.
// Implementations return deep clones so callers can mutate results freely.
type Manager interface {
	// Get returns the Dataset identified by name.
	Get(ctx context.Context, name string) (*Dataset, error)
	// Create creates and returns an empty Dataset with the given name.
	Create(ctx context.Context, name string) (*Dataset, error)
	// Delete deletes the Dataset identified by name.
	Delete(ctx context.Context, name string) error
	// List lists all dataset names.
	List(ctx context.Context) ([]string, error)
	// AddEntry adds the given Entry to an existing Dataset.
	AddEntry(ctx context.Context, name string, entry *Entry) error
}

// Clone deep-copies a dataset through its JSON form.
func Clone(d *Dataset) (*Dataset, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal dataset: %w", err)
	}
	var out Dataset
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal dataset: %w", err)
	}
	return &out, nil
}

// CloneEntry deep-copies an entry through its JSON form.
func CloneEntry(e *Entry) (*Entry, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal entry: %w", err)
	}
	var out Entry
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal entry: %w", err)
	}
	return &out, nil
}
