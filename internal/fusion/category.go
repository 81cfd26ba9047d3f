package fusion

import (
	"github.com/ksatyam/marketpulse/pkg/models"
)

// confidenceCapCount is the evidence count at which category confidence
// saturates at 1.0.
const confidenceCapCount = 10.0

// CategoryAggregator reduces a list of scored, weighted items into one
// category score with evidence-based confidence.
type CategoryAggregator struct {
	labelThreshold float64
}

// NewCategoryAggregator creates new category aggregator
func NewCategoryAggregator(labelThreshold float64) *CategoryAggregator {
	if labelThreshold <= 0 {
		labelThreshold = 0.1
	}

	return &CategoryAggregator{labelThreshold: labelThreshold}
}

// Aggregate computes the time-weighted mean score for one category.
// Empty input yields a neutral score with zero confidence, not an error.
func (ca *CategoryAggregator) Aggregate(category models.Category, items []models.WeightedItem) models.CategoryScore {
	if len(items) == 0 {
		return models.CategoryScore{
			Category: category,
			Label:    models.LabelNeutral,
		}
	}

	var weightedSum, totalWeight, totalTimeWeight, totalClassConf float64
	financialCount := 0

	for _, item := range items {
		weightedSum += item.BlendedScore * item.TimeWeight
		totalWeight += item.TimeWeight
		totalTimeWeight += item.TimeWeight
		totalClassConf += item.ClassificationConfidence

		if item.IsFinancial {
			financialCount++
		}
	}

	// Denominators are floored at 1 to guard division
	denom := totalWeight
	if denom < 1 {
		denom = 1
	}

	score := weightedSum / denom

	count := float64(len(items))
	confidence := count / confidenceCapCount
	if confidence > 1.0 {
		confidence = 1.0
	}

	return models.CategoryScore{
		Category:           category,
		Score:              score,
		Label:              ca.label(score),
		Confidence:         confidence,
		ItemCount:          len(items),
		FinancialItemCount: financialCount,
		AvgTimeWeight:      totalTimeWeight / count,
		AvgClassConfidence: totalClassConf / count,
	}
}

// label classifies a score against the category threshold
func (ca *CategoryAggregator) label(score float64) models.SentimentLabel {
	switch {
	case score > ca.labelThreshold:
		return models.LabelPositive
	case score < -ca.labelThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}
