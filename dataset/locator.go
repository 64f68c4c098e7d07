//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// defaultDatasetFileSuffix is the default suffix for dataset files.
const defaultDatasetFileSuffix = ".dataset.json"

// Locator provides Build and List methods for locating dataset files.
type Locator interface {
	// Build builds the path of the dataset file for the given name.
	Build(baseDir, name string) string
	// List lists all dataset names under the base directory.
	List(baseDir string) ([]string, error)
}

// locator is the default Locator implementation.
type locator struct {
}

// Build builds the path of a dataset file.
func (l *locator) Build(baseDir, name string) string {
	return filepath.Join(baseDir, name+defaultDatasetFileSuffix)
}

// List lists all dataset names under the base directory.
func (l *locator) List(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	var results []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), defaultDatasetFileSuffix) {
			results = append(results, strings.TrimSuffix(entry.Name(), defaultDatasetFileSuffix))
		}
	}
	return results, nil
}
