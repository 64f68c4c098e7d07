//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file storage implementation for
// ground-truth datasets. Each dataset lives in its own JSON file and writes
// go through a temp file plus rename.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ragscore/ragscore/dataset"
)

const (
	defaultTempFileSuffix = ".tmp"
	defaultDirPermission  = 0o755
	defaultFilePermission = 0o644
)

// manager implements dataset.Manager backed by the local filesystem.
type manager struct {
	mu      sync.RWMutex
	baseDir string
	locator dataset.Locator
}

// New creates a local file dataset manager.
func New(opt ...dataset.Option) dataset.Manager {
	opts := dataset.NewOptions(opt...)
	return &manager{
		baseDir: opts.BaseDir,
		locator: opts.Locator,
	}
}

// Get returns the Dataset identified by name.
// Returns an error wrapping os.ErrNotExist if the dataset does not exist.
func (m *manager) Get(_ context.Context, name string) (*dataset.Dataset, error) {
	if name == "" {
		return nil, errors.New("dataset name is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, err := m.load(name)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", name, err)
	}
	return d, nil
}

// Create creates an empty Dataset.
// Returns an error if the dataset already exists.
func (m *manager) Create(_ context.Context, name string) (*dataset.Dataset, error) {
	if name == "" {
		return nil, errors.New("dataset name is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.load(name); err == nil {
		return nil, fmt.Errorf("dataset %s already exists", name)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load dataset %s: %w", name, err)
	}
	d := &dataset.Dataset{
		Name:              name,
		Entries:           []*dataset.Entry{},
		CreationTimestamp: time.Now().UTC(),
	}
	if err := m.store(d); err != nil {
		return nil, fmt.Errorf("store dataset %s: %w", name, err)
	}
	return d, nil
}

// Delete deletes the Dataset identified by name.
func (m *manager) Delete(_ context.Context, name string) error {
	if name == "" {
		return errors.New("dataset name is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.load(name); err != nil {
		return fmt.Errorf("load dataset %s: %w", name, err)
	}
	path := m.locator.Build(m.baseDir, name)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove file %s: %w", path, err)
	}
	return nil
}

// List lists all dataset names under the base directory.
func (m *manager) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names, err := m.locator.List(m.baseDir)
	if err != nil {
		return nil, fmt.Errorf("list datasets in %s: %w", m.baseDir, err)
	}
	return names, nil
}

// AddEntry adds the given Entry to an existing Dataset. Entries are keyed
// by question; adding a duplicate question is an error.
func (m *manager) AddEntry(_ context.Context, name string, entry *dataset.Entry) error {
	if name == "" {
		return errors.New("dataset name is empty")
	}
	if entry == nil {
		return errors.New("entry is nil")
	}
	if entry.Question == "" {
		return errors.New("entry question is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.load(name)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", name, err)
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
	if err := m.store(d); err != nil {
		return fmt.Errorf("store dataset %s: %w", name, err)
	}
	return nil
}

// load loads the Dataset from the file system.
func (m *manager) load(name string) (*dataset.Dataset, error) {
	path := m.locator.Build(m.baseDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	var d dataset.Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal file %s: %w", path, err)
	}
	if d.Entries == nil {
		d.Entries = []*dataset.Entry{}
	}
	return &d, nil
}

// store writes the Dataset to the file system atomically.
func (m *manager) store(d *dataset.Dataset) error {
	if d == nil {
		return errors.New("dataset is nil")
	}
	path := m.locator.Build(m.baseDir, d.Name)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirPermission); err != nil {
		return fmt.Errorf("mkdir all %s: %w", dir, err)
	}
	tmp := path + defaultTempFileSuffix
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, defaultFilePermission)
	if err != nil {
		return fmt.Errorf("open file %s: %w", tmp, err)
	}
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode file %s: %w", tmp, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename file %s to %s: %w", tmp, path, err)
	}
	return nil
}
