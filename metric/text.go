//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package metric

// CompleteAnswerTokens is the token count treated as a "complete" answer by
// AnswerCompleteness. Tunable heuristic, not derived from any threshold table.
const CompleteAnswerTokens = 20

// BasicRelevance scores keyword overlap between the query and each retrieved
// context as the mean Jaccard similarity. Returns 0 when the query has no
// tokens or no contexts were retrieved.
func BasicRelevance(query string, contexts []string) float64 {
	queryTokens := tokenSet(query)
	if len(queryTokens) == 0 || len(contexts) == 0 {
		return 0
	}
	total := 0.0
	for _, context := range contexts {
		total += jaccard(queryTokens, tokenSet(context))
	}
	return total / float64(len(contexts))
}

// ContextUtilization scores how much of the retrieved context vocabulary the
// answer reuses: |answer ∩ contexts| / |contexts|, capped at 1.
func ContextUtilization(contexts []string, answer string) float64 {
	if len(contexts) == 0 || answer == "" {
		return 0
	}
	contextTokens := make(map[string]struct{})
	for _, context := range contexts {
		for _, tok := range tokenize(context) {
			contextTokens[tok] = struct{}{}
		}
	}
	if len(contextTokens) == 0 {
		return 0
	}
	answerTokens := tokenSet(answer)
	utilization := float64(intersectionSize(answerTokens, contextTokens)) / float64(len(contextTokens))
	return Clamp01(utilization)
}

// AnswerCompleteness averages query-token coverage with a length factor that
// saturates at CompleteAnswerTokens answer tokens.
func AnswerCompleteness(query, answer string) float64 {
	if query == "" || answer == "" {
		return 0
	}
	queryTokens := tokenSet(query)
	if len(queryTokens) == 0 {
		return 0
	}
	answerTokens := tokenSet(answer)
	coverage := float64(intersectionSize(queryTokens, answerTokens)) / float64(len(queryTokens))
	lengthFactor := float64(len(tokenize(answer))) / CompleteAnswerTokens
	if lengthFactor > 1 {
		lengthFactor = 1
	}
	return (coverage + lengthFactor) / 2
}

// Faithfulness scores the fraction of answer tokens that occur somewhere in
// the retrieved contexts. A low value signals claims the contexts do not
// support (hallucination risk).
func Faithfulness(contexts []string, answer string) float64 {
	answerTokens := tokenize(answer)
	if len(answerTokens) == 0 || len(contexts) == 0 {
		return 0
	}
	contextTokens := make(map[string]struct{})
	for _, context := range contexts {
		for _, tok := range tokenize(context) {
			contextTokens[tok] = struct{}{}
		}
	}
	grounded := 0
	for _, tok := range answerTokens {
		if _, ok := contextTokens[tok]; ok {
			grounded++
		}
	}
	return Clamp01(float64(grounded) / float64(len(answerTokens)))
}

// AnswerSimilarity scores the Jaccard similarity between the answer and the
// ground truth token sets. Only meaningful when a ground truth is supplied.
func AnswerSimilarity(answer, groundTruth string) float64 {
	return jaccard(tokenSet(answer), tokenSet(groundTruth))
}
