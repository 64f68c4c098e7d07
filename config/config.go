//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package config loads evaluation service configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ragscore/ragscore/batch"
	"github.com/ragscore/ragscore/dataset"
	"github.com/ragscore/ragscore/gate"
	"github.com/ragscore/ragscore/similarity/clip"
)

// Config is the top-level service configuration.
type Config struct {
	// Gate configures the quality gate thresholds.
	Gate GateConfig `yaml:"gate"`
	// Similarity configures the embedding provider.
	Similarity SimilarityConfig `yaml:"similarity"`
	// Batch configures batch evaluation.
	Batch BatchConfig `yaml:"batch"`
	// Dataset configures ground-truth dataset storage.
	Dataset DatasetConfig `yaml:"dataset"`
}

// GateConfig holds the per-metric pass thresholds.
type GateConfig struct {
	// Thresholds maps metric names to minimum passing values. Metrics not
	// listed gate at gate.DefaultThreshold.
	Thresholds map[string]float64 `yaml:"thresholds"`
}

// SimilarityConfig selects and configures the embedding provider.
type SimilarityConfig struct {
	// Provider is "clip" or "openai". Empty disables semantic metrics.
	Provider string `yaml:"provider"`
	// BaseURL overrides the provider endpoint.
	BaseURL string `yaml:"base_url"`
	// Model names the embedding model for providers that support it.
	Model string `yaml:"model"`
	// MaxRetries bounds retry attempts on provider errors.
	MaxRetries *int `yaml:"max_retries"`
}

// BatchConfig holds batch evaluation settings.
type BatchConfig struct {
	// Parallelism is the number of concurrent evaluations.
	Parallelism int `yaml:"parallelism"`
}

// DatasetConfig holds ground-truth dataset storage settings.
type DatasetConfig struct {
	// BaseDir is the directory for dataset files.
	BaseDir string `yaml:"base_dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Similarity: SimilarityConfig{
			Provider: "clip",
			BaseURL:  clip.DefaultBaseURL,
		},
		Batch:   BatchConfig{Parallelism: batch.DefaultParallelism},
		Dataset: DatasetConfig{BaseDir: dataset.DefaultBaseDir},
	}
}

// Load reads a YAML configuration file, applying defaults for absent
// fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// GateThresholds converts the configured thresholds for the gate engine.
func (c *Config) GateThresholds() gate.Thresholds {
	if len(c.Gate.Thresholds) == 0 {
		return nil
	}
	thresholds := make(gate.Thresholds, len(c.Gate.Thresholds))
	for name, value := range c.Gate.Thresholds {
		thresholds[name] = value
	}
	return thresholds
}

func (c *Config) validate() error {
	for name, value := range c.Gate.Thresholds {
		if value < 0 || value > 1 {
			return fmt.Errorf("threshold for %s must be in [0, 1], got %v", name, value)
		}
	}
	switch c.Similarity.Provider {
	case "", "clip", "openai":
	default:
		return fmt.Errorf("unknown similarity provider %q", c.Similarity.Provider)
	}
	if c.Batch.Parallelism < 1 {
		return fmt.Errorf("batch parallelism must be at least 1, got %d", c.Batch.Parallelism)
	}
	return nil
}
