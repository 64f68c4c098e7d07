//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package metric

import "strings"

// Relationship classifies how a text span relates to an image.
type Relationship string

// Recognized cross-modal relationship types.
const (
	RelationshipCaption      Relationship = "caption"
	RelationshipReference    Relationship = "reference"
	RelationshipIllustration Relationship = "illustration"
	RelationshipOther        Relationship = "other"
)

// NormalizeRelationship maps arbitrary input to a recognized relationship.
// Unknown values become RelationshipOther; the second return reports whether
// the input was recognized.
func NormalizeRelationship(raw string) (Relationship, bool) {
	switch Relationship(strings.ToLower(strings.TrimSpace(raw))) {
	case RelationshipCaption:
		return RelationshipCaption, true
	case RelationshipReference:
		return RelationshipReference, true
	case RelationshipIllustration:
		return RelationshipIllustration, true
	case RelationshipOther:
		return RelationshipOther, true
	default:
		return RelationshipOther, false
	}
}

// Image describes a retrieved image as far as scoring is concerned.
type Image struct {
	// Ref is the image path or URL.
	Ref string `json:"ref"`
	// ExtractedText is OCR or embedded text pulled from the image, if any.
	ExtractedText string `json:"extracted_text,omitempty"`
	// Caption is the image caption, if any.
	Caption string `json:"caption,omitempty"`
}

// CrossModalPair links a text span to an image with a typed relationship.
type CrossModalPair struct {
	// TextContent is the text side of the pair.
	TextContent string `json:"text_content"`
	// ImageRef identifies the image side of the pair.
	ImageRef string `json:"image_ref"`
	// Relationship classifies the pair.
	Relationship Relationship `json:"relationship_type"`
	// Confidence in [0, 1] of the pairing.
	Confidence float64 `json:"confidence"`
}

// Relationship weights for cross-modal consistency. Captions carry the
// strongest signal, loose relationships the weakest.
const (
	captionWeight   = 1.2
	referenceWeight = 1.0
	otherWeight     = 0.8
)

// CrossModalConsistency scores the confidence-weighted consistency of
// text-image pairs. An empty pair list scores 1.0: absence of cross-modal
// claims is not a defect.
func CrossModalConsistency(pairs []CrossModalPair) float64 {
	if len(pairs) == 0 {
		return 1
	}
	total := 0.0
	for _, pair := range pairs {
		weight := otherWeight
		switch pair.Relationship {
		case RelationshipCaption:
			weight = captionWeight
		case RelationshipReference:
			weight = referenceWeight
		}
		total += Clamp01(pair.Confidence * weight)
	}
	return total / float64(len(pairs))
}

// visualKeywords are answer tokens that indicate a reference to visual content.
var visualKeywords = []string{
	"figure", "image", "chart", "graph", "diagram", "illustration", "shown", "depicted",
}

// visualGroundingTextTokens is how many leading extracted-text tokens are
// matched against the answer when checking content-level grounding.
const visualGroundingTextTokens = 10

// VisualGrounding scores how well the answer acknowledges retrieved images.
// Each image contributes at most 1.0: a visual-reference keyword in the
// answer counts fully, lexical overlap with the image's extracted text counts
// half. 1.0 when no images were retrieved.
func VisualGrounding(answer string, images []Image) float64 {
	if len(images) == 0 {
		return 1
	}
	lowered := strings.ToLower(answer)
	answerTokens := tokenSet(answer)
	grounded := 0.0
	for _, image := range images {
		contribution := 0.0
		for _, keyword := range visualKeywords {
			if strings.Contains(lowered, keyword) {
				contribution += 1
				break
			}
		}
		if image.ExtractedText != "" {
			head := tokenize(image.ExtractedText)
			if len(head) > visualGroundingTextTokens {
				head = head[:visualGroundingTextTokens]
			}
			for _, tok := range head {
				if _, ok := answerTokens[tok]; ok {
					contribution += 0.5
					break
				}
			}
		}
		grounded += Clamp01(contribution)
	}
	return Clamp01(grounded / float64(len(images)))
}

// Overlap thresholds for counting a content element as covered.
const (
	contextCoverageTokens = 3
	imageCoverageTokens   = 1
)

// ContentCoverage scores the fraction of available content elements the
// answer draws on. Contexts count fully past a three shared token overlap,
// images count half past a single shared token with their extracted text.
// 1.0 when there is nothing to cover.
func ContentCoverage(answer string, contexts []string, images []Image) float64 {
	totalElements := len(contexts) + len(images)
	if totalElements == 0 {
		return 1
	}
	answerTokens := tokenSet(answer)
	covered := 0.0
	for _, context := range contexts {
		if intersectionSize(answerTokens, tokenSet(context)) > contextCoverageTokens {
			covered++
		}
	}
	for _, image := range images {
		if image.ExtractedText == "" {
			continue
		}
		if intersectionSize(answerTokens, tokenSet(image.ExtractedText)) > imageCoverageTokens {
			covered += 0.5
		}
	}
	return Clamp01(covered / float64(totalElements))
}
