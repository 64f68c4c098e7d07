//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragscore/ragscore/dataset"
)

func newTestManager(t *testing.T) dataset.Manager {
	t.Helper()
	return New(dataset.WithBaseDir(t.TempDir()))
}

func TestCreateGetRoundTrip(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	created, err := m.Create(ctx, "physics")
	require.NoError(t, err)
	assert.Equal(t, "physics", created.Name)

	got, err := m.Get(ctx, "physics")
	require.NoError(t, err)
	assert.Equal(t, "physics", got.Name)
	assert.Empty(t, got.Entries)
}

func TestGetMissingDataset(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateDuplicate(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()
	_, err := m.Create(ctx, "physics")
	require.NoError(t, err)
	_, err = m.Create(ctx, "physics")
	assert.Error(t, err)
}

func TestAddEntryPersists(t *testing.T) {
	baseDir := t.TempDir()
	ctx := context.Background()

	m := New(dataset.WithBaseDir(baseDir))
	_, err := m.Create(ctx, "physics")
	require.NoError(t, err)
	entry := &dataset.Entry{
		Question:    "What is inertia?",
		Contexts:    []string{"Inertia is the resistance of an object to changes in its motion."},
		Answer:      "Inertia is an object's resistance to changes in motion.",
		GroundTruth: "Resistance to change in motion.",
	}
	require.NoError(t, m.AddEntry(ctx, "physics", entry))

	// A fresh manager over the same directory sees the stored entry.
	reopened := New(dataset.WithBaseDir(baseDir))
	d, err := reopened.Get(ctx, "physics")
	require.NoError(t, err)
	require.Len(t, d.Entries, 1)
	assert.Equal(t, "What is inertia?", d.Entries[0].Question)
	assert.Equal(t, dataset.SourceManual, d.Entries[0].Source)
}

func TestAddEntryMissingDataset(t *testing.T) {
	m := newTestManager(t)
	entry := &dataset.Entry{Question: "q", Contexts: []string{"c"}, Answer: "a", GroundTruth: "g"}
	assert.ErrorIs(t, m.AddEntry(context.Background(), "nope", entry), os.ErrNotExist)
}

func TestListFindsDatasetFiles(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()
	for _, name := range []string{"alpha", "beta"} {
		_, err := m.Create(ctx, name)
		require.NoError(t, err)
	}
	names, err := m.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func TestListEmptyBaseDir(t *testing.T) {
	m := New(dataset.WithBaseDir(filepath.Join(t.TempDir(), "missing")))
	names, err := m.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDeleteRemovesFile(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()
	_, err := m.Create(ctx, "physics")
	require.NoError(t, err)
	require.NoError(t, m.Delete(ctx, "physics"))
	_, err = m.Get(ctx, "physics")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNoTempFileLeftBehind(t *testing.T) {
	baseDir := t.TempDir()
	m := New(dataset.WithBaseDir(baseDir))
	_, err := m.Create(context.Background(), "physics")
	require.NoError(t, err)
	entries, err := os.ReadDir(baseDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}
