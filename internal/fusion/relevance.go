package fusion

import (
	"strings"
)

// financialKeywords is the fixed keyword set used for relevance
// classification. Deliberately small; it gates the model blend ratio,
// not the sentiment value itself.
var financialKeywords = []string{
	"earnings", "revenue", "profit", "quarterly", "dividend", "stock", "share",
	"market", "trading", "investment", "financial", "economy", "price",
	"analyst", "forecast", "guidance", "sec", "ipo", "merger", "acquisition",
}

// Relevance is the outcome of financial-relevance classification
type Relevance struct {
	IsFinancial    bool    `json:"is_financial"`
	Confidence     float64 `json:"confidence"`
	KeywordMatches int     `json:"keyword_matches"`
}

// RelevanceClassifier estimates whether a text discusses financial topics.
// Pure keyword matching with no model dependency.
type RelevanceClassifier struct {
	keywords      []string
	densityFactor float64
	threshold     float64
}

// NewRelevanceClassifier creates new relevance classifier
func NewRelevanceClassifier(densityFactor, threshold float64) *RelevanceClassifier {
	if densityFactor <= 0 {
		densityFactor = 0.1
	}
	if threshold <= 0 {
		threshold = 0.2
	}

	return &RelevanceClassifier{
		keywords:      financialKeywords,
		densityFactor: densityFactor,
		threshold:     threshold,
	}
}

// Classify returns the financial-relevance verdict for a text
func (rc *RelevanceClassifier) Classify(text string) Relevance {
	if text == "" {
		return Relevance{}
	}

	lower := strings.ToLower(text)

	matches := 0
	for _, keyword := range rc.keywords {
		if strings.Contains(lower, keyword) {
			matches++
		}
	}

	wordCount := float64(len(strings.Fields(text)))
	denominator := wordCount * rc.densityFactor
	if denominator < 1 {
		denominator = 1
	}

	confidence := float64(matches) / denominator
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Relevance{
		IsFinancial:    matches >= 2 || confidence > rc.threshold,
		Confidence:     confidence,
		KeywordMatches: matches,
	}
}
