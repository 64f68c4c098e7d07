//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package dataset

// DefaultBaseDir is the default directory for dataset file storage.
const DefaultBaseDir = "ground_truth"

// Options holds configuration for file-backed dataset managers.
type Options struct {
	// BaseDir is the directory holding dataset files.
	BaseDir string
	// Locator maps dataset names to file paths.
	Locator Locator
}

// Option represents a functional option for configuring dataset managers.
type Option func(*Options)

// WithBaseDir sets the base directory for dataset files.
func WithBaseDir(baseDir string) Option {
	return func(o *Options) {
		o.BaseDir = baseDir
	}
}

// WithLocator sets a custom dataset file locator.
func WithLocator(l Locator) Option {
	return func(o *Options) {
		o.Locator = l
	}
}

// NewOptions applies the given options over the defaults.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		BaseDir: DefaultBaseDir,
		Locator: &locator{},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}
