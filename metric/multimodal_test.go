//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRelationship(t *testing.T) {
	tests := []struct {
		input      string
		expected   Relationship
		recognized bool
	}{
		{"caption", RelationshipCaption, true},
		{"Caption", RelationshipCaption, true},
		{" reference ", RelationshipReference, true},
		{"illustration", RelationshipIllustration, true},
		{"other", RelationshipOther, true},
		{"screenshot", RelationshipOther, false},
		{"", RelationshipOther, false},
	}
	for _, tt := range tests {
		got, ok := NormalizeRelationship(tt.input)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
		assert.Equal(t, tt.recognized, ok, "input %q", tt.input)
	}
}

func TestCrossModalConsistency(t *testing.T) {
	t.Run("no pairs is perfect", func(t *testing.T) {
		assert.InDelta(t, 1.0, CrossModalConsistency(nil), 1e-9)
	})
	t.Run("caption weight caps at one", func(t *testing.T) {
		pairs := []CrossModalPair{{Relationship: RelationshipCaption, Confidence: 0.9}}
		// 0.9 * 1.2 = 1.08, capped to 1.0.
		assert.InDelta(t, 1.0, CrossModalConsistency(pairs), 1e-9)
	})
	t.Run("mixed relationships", func(t *testing.T) {
		pairs := []CrossModalPair{
			{Relationship: RelationshipCaption, Confidence: 0.5},   // 0.6
			{Relationship: RelationshipReference, Confidence: 0.5}, // 0.5
			{Relationship: RelationshipOther, Confidence: 0.5},     // 0.4
		}
		assert.InDelta(t, 0.5, CrossModalConsistency(pairs), 1e-9)
	})
	t.Run("illustration uses the low weight", func(t *testing.T) {
		pairs := []CrossModalPair{{Relationship: RelationshipIllustration, Confidence: 1.0}}
		assert.InDelta(t, 0.8, CrossModalConsistency(pairs), 1e-9)
	})
}

func TestVisualGrounding(t *testing.T) {
	t.Run("no images is perfect", func(t *testing.T) {
		assert.InDelta(t, 1.0, VisualGrounding("any answer", nil), 1e-9)
	})
	t.Run("keyword reference grounds the image", func(t *testing.T) {
		images := []Image{{Ref: "p1.png"}}
		got := VisualGrounding("as shown in the figure, throughput doubles", images)
		assert.InDelta(t, 1.0, got, 1e-9)
	})
	t.Run("extracted text overlap grounds half", func(t *testing.T) {
		images := []Image{{Ref: "p1.png", ExtractedText: "throughput doubles at scale"}}
		got := VisualGrounding("throughput doubles", images)
		assert.InDelta(t, 0.5, got, 1e-9)
	})
	t.Run("keyword and overlap cap at one per image", func(t *testing.T) {
		images := []Image{{Ref: "p1.png", ExtractedText: "throughput doubles at scale"}}
		got := VisualGrounding("the chart shows throughput doubles", images)
		assert.InDelta(t, 1.0, got, 1e-9)
	})
	t.Run("ungrounded images score zero", func(t *testing.T) {
		images := []Image{{Ref: "p1.png"}, {Ref: "p2.png"}}
		assert.Zero(t, VisualGrounding("plain text answer", images))
	})
}

func TestContentCoverage(t *testing.T) {
	t.Run("nothing to cover is perfect", func(t *testing.T) {
		assert.InDelta(t, 1.0, ContentCoverage("answer", nil, nil), 1e-9)
	})
	t.Run("covered context", func(t *testing.T) {
		contexts := []string{"machine learning is powerful today"}
		// four shared tokens exceed the three token threshold.
		got := ContentCoverage("machine learning is powerful", contexts, nil)
		assert.InDelta(t, 1.0, got, 1e-9)
	})
	t.Run("thin overlap does not count", func(t *testing.T) {
		contexts := []string{"machine learning is powerful"}
		got := ContentCoverage("machine", contexts, nil)
		assert.Zero(t, got)
	})
	t.Run("image counts half", func(t *testing.T) {
		images := []Image{{Ref: "p1.png", ExtractedText: "revenue growth chart"}}
		got := ContentCoverage("revenue growth was strong", nil, images)
		assert.InDelta(t, 0.5, got, 1e-9)
	})
	t.Run("mixed elements", func(t *testing.T) {
		contexts := []string{"machine learning is powerful today"}
		images := []Image{{Ref: "p1.png", ExtractedText: "machine learning pipeline"}}
		got := ContentCoverage("machine learning is powerful", contexts, images)
		// context covered (1.0) + image covered (0.5) over 2 elements.
		assert.InDelta(t, 0.75, got, 1e-9)
	})
}
