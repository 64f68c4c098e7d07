//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for
// ground-truth datasets.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/ragscore/ragscore/dataset"
)

// manager implements the dataset.Manager interface using in-memory storage.
//
// Each API returns deep-cloned objects to avoid accidental mutation by
// callers.
type manager struct {
	mu       sync.RWMutex
	datasets map[string]*dataset.Dataset
}

// New creates a new in-memory dataset manager seeded with the built-in
// default dataset.
func New() dataset.Manager {
	return &manager{
		datasets: map[string]*dataset.Dataset{
			dataset.DefaultName: dataset.Default(),
		},
	}
}

// Get returns the Dataset identified by name. If the dataset does not
// exist, os.ErrNotExist is returned.
func (m *manager) Get(ctx context.Context, name string) (*dataset.Dataset, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.datasets[name]
	if !ok {
		return nil, fmt.Errorf("%w: dataset %s", os.ErrNotExist, name)
	}
	cloned, err := dataset.Clone(d)
	if err != nil {
		return nil, fmt.Errorf("clone dataset %s: %w", name, err)
	}
	return cloned, nil
}

// Create creates and returns an empty Dataset with the given name. If the
// dataset already exists, an error is returned.
func (m *manager) Create(ctx context.Context, name string) (*dataset.Dataset, error) {
	_ = ctx
	if name == "" {
		return nil, errors.New("dataset name is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.datasets[name]; ok {
		return nil, fmt.Errorf("dataset %s already exists", name)
	}
	d := &dataset.Dataset{
		Name:              name,
		Entries:           []*dataset.Entry{},
		CreationTimestamp: time.Now().UTC(),
	}
	m.datasets[name] = d
	cloned, err := dataset.Clone(d)
	if err != nil {
		return nil, fmt.Errorf("clone dataset %s: %w", name, err)
	}
	return cloned, nil
}

// Delete deletes the Dataset identified by name.
func (m *manager) Delete(ctx context.Context, name string) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.datasets[name]; !ok {
		return fmt.Errorf("%w: dataset %s", os.ErrNotExist, name)
	}
	delete(m.datasets, name)
	return nil
}

// List lists all dataset names in lexical order.
func (m *manager) List(ctx context.Context) ([]string, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.datasets))
	for name := range m.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// AddEntry adds the given Entry to an existing Dataset. Entries are keyed
// by question; adding a duplicate question is an error.
func (m *manager) AddEntry(ctx context.Context, name string, entry *dataset.Entry) error {
	_ = ctx
	if entry == nil {
		return errors.New("entry is nil")
	}
	if entry.Question == "" {
		return errors.New("entry question is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.datasets[name]
	if !ok {
		return fmt.Errorf("%w: dataset %s", os.ErrNotExist, name)
	}
	if d.Entry(entry.Question) != nil {
		return fmt.Errorf("entry %q already exists in dataset %s", entry.Question, name)
	}
	cloned, err := dataset.CloneEntry(entry)
	if err != nil {
		return fmt.Errorf("clone entry %q: %w", entry.Question, err)
	}
	if cloned.Source == "" {
		cloned.Source = dataset.SourceManual
	}
	d.Entries = append(d.Entries, cloned)
	return nil
}
