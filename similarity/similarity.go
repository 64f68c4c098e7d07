//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

// Package similarity defines the gateway to the external embedding provider.
//
// The gateway isolates all network fallibility from the metric library:
// metrics stay pure, and callers of gateway-backed metrics substitute
// NeutralScore when the provider is unreachable instead of failing the
// whole evaluation.
package similarity

import (
	"context"
	"errors"
	"math"
)

// ErrProviderUnavailable reports that the embedding provider errored or
// timed out. Callers substitute NeutralScore and continue.
var ErrProviderUnavailable = errors.New("similarity: embedding provider unavailable")

// NeutralScore is substituted for gateway-backed metrics when the provider
// cannot be reached.
const NeutralScore = 0.5

// Gateway is the narrow contract consumed from the embedding provider.
type Gateway interface {
	// EmbedText returns a fixed-length normalized vector for the text.
	EmbedText(ctx context.Context, text string) ([]float64, error)
	// EmbedImage returns a fixed-length normalized vector for the image
	// identified by ref (path or URL).
	EmbedImage(ctx context.Context, ref string) ([]float64, error)
	// Name identifies the provider for result metadata.
	Name() string
}

// Cosine computes the cosine similarity of two vectors, in [-1, 1].
// Mismatched lengths and zero vectors yield 0.
func Cosine(v1, v2 []float64) float64 {
	if len(v1) != len(v2) || len(v1) == 0 {
		return 0
	}
	dot, norm1, norm2 := 0.0, 0.0, 0.0
	for i := range v1 {
		dot += v1[i] * v2[i]
		norm1 += v1[i] * v1[i]
		norm2 += v2[i] * v2[i]
	}
	if norm1 == 0 || norm2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(norm1) * math.Sqrt(norm2))
}
