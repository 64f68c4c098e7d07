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

func TestBasicRelevance(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contexts []string
		expected float64
	}{
		{
			name:     "identical query and context",
			query:    "machine learning",
			contexts: []string{"machine learning"},
			expected: 1.0,
		},
		{
			name:     "no contexts",
			query:    "machine learning",
			contexts: nil,
			expected: 0.0,
		},
		{
			name:     "empty query",
			query:    "   ",
			contexts: []string{"machine learning"},
			expected: 0.0,
		},
		{
			name:     "disjoint vocabulary",
			query:    "quantum entanglement",
			contexts: []string{"the stock market rose today"},
			expected: 0.0,
		},
		{
			name:     "case insensitive",
			query:    "Machine Learning",
			contexts: []string{"MACHINE LEARNING"},
			expected: 1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BasicRelevance(tt.query, tt.contexts), 1e-9)
		})
	}
}

func TestBasicRelevancePartialOverlap(t *testing.T) {
	// query tokens {machine, learning}, context tokens
	// {machine, learning, is, powerful}: jaccard = 2/4.
	got := BasicRelevance("machine learning", []string{"machine learning is powerful"})
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestContextUtilization(t *testing.T) {
	t.Run("answer reuses full context vocabulary", func(t *testing.T) {
		got := ContextUtilization([]string{"machine learning is powerful"}, "machine learning is powerful")
		assert.InDelta(t, 1.0, got, 1e-9)
	})
	t.Run("empty contexts", func(t *testing.T) {
		assert.Zero(t, ContextUtilization(nil, "an answer"))
	})
	t.Run("empty answer", func(t *testing.T) {
		assert.Zero(t, ContextUtilization([]string{"context"}, ""))
	})
	t.Run("partial reuse", func(t *testing.T) {
		got := ContextUtilization([]string{"cats are mammals and mammals are animals"}, "cats are animals")
		// context vocabulary {cats, are, mammals, and, animals}: 3 of 5 reused.
		assert.InDelta(t, 0.6, got, 1e-9)
	})
}

func TestAnswerCompleteness(t *testing.T) {
	t.Run("empty inputs", func(t *testing.T) {
		assert.Zero(t, AnswerCompleteness("", "answer"))
		assert.Zero(t, AnswerCompleteness("query", ""))
	})
	t.Run("full coverage short answer", func(t *testing.T) {
		// coverage 1.0, length factor 2/20.
		got := AnswerCompleteness("machine learning", "machine learning")
		assert.InDelta(t, (1.0+0.1)/2, got, 1e-9)
	})
	t.Run("length factor saturates", func(t *testing.T) {
		long := "machine learning one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen"
		got := AnswerCompleteness("machine learning", long)
		assert.InDelta(t, 1.0, got, 1e-9)
	})
	t.Run("bounded", func(t *testing.T) {
		got := AnswerCompleteness("a b c", "a")
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	})
}

func TestFaithfulness(t *testing.T) {
	t.Run("verbatim answer from context vocabulary", func(t *testing.T) {
		got := Faithfulness([]string{"machine learning is powerful"}, "machine learning is powerful")
		assert.InDelta(t, 1.0, got, 1e-9)
	})
	t.Run("unsupported answer scores low", func(t *testing.T) {
		got := Faithfulness([]string{"cats are mammals"}, "the stock market rose today")
		assert.Less(t, got, 0.2)
	})
	t.Run("empty answer", func(t *testing.T) {
		assert.Zero(t, Faithfulness([]string{"context"}, ""))
	})
	t.Run("empty contexts", func(t *testing.T) {
		assert.Zero(t, Faithfulness(nil, "answer"))
	})
}

func TestAnswerSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, AnswerSimilarity("paris is the capital", "Paris is the capital"), 1e-9)
	assert.Zero(t, AnswerSimilarity("", ""))
	assert.Zero(t, AnswerSimilarity("alpha", "beta"))
	// {a, b} vs {b, c}: 1/3.
	assert.InDelta(t, 1.0/3.0, AnswerSimilarity("a b", "b c"), 1e-9)
}

func TestTextMetricsStayInUnitInterval(t *testing.T) {
	queries := []string{"", "q", "machine learning models"}
	contexts := [][]string{nil, {}, {""}, {"machine learning"}, {"a b c", "d e f"}}
	answers := []string{"", "machine", "completely unrelated words here"}
	for _, q := range queries {
		for _, cs := range contexts {
			for _, a := range answers {
				for _, v := range []float64{
					BasicRelevance(q, cs),
					ContextUtilization(cs, a),
					AnswerCompleteness(q, a),
					Faithfulness(cs, a),
					AnswerSimilarity(a, q),
				} {
					assert.GreaterOrEqual(t, v, 0.0)
					assert.LessOrEqual(t, v, 1.0)
				}
			}
		}
	}
}

func TestSentenceCount(t *testing.T) {
	count, err := SentenceCount("The model answered. It cited two figures. All claims were grounded.")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = SentenceCount("   ")
	assert.NoError(t, err)
	assert.Zero(t, count)
}
