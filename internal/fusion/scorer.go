package fusion

import (
	"context"

	"go.uber.org/zap"

	"github.com/ksatyam/marketpulse/pkg/logger"
	"github.com/ksatyam/marketpulse/pkg/models"
)

// ItemScorer runs the full per-item scoring chain: relevance
// classification, recency weighting, dual-model inference and blending.
type ItemScorer struct {
	provider   SentimentProvider
	classifier *RelevanceClassifier
	recency    *RecencyWeighter
	blender    *Blender
}

// NewItemScorer creates new item scorer
func NewItemScorer(provider SentimentProvider, classifier *RelevanceClassifier, recency *RecencyWeighter, blender *Blender) *ItemScorer {
	return &ItemScorer{
		provider:   provider,
		classifier: classifier,
		recency:    recency,
		blender:    blender,
	}
}

// Score produces a WeightedItem from a raw item. Inference failure is
// non-fatal: a failed model resolves to neutral, and if both models
// fail the item is neutralized with zero classification confidence so
// it cannot influence the weighted mean.
func (s *ItemScorer) Score(ctx context.Context, item models.Item) models.WeightedItem {
	rel := s.classifier.Classify(item.Text)
	item.IsFinancial = rel.IsFinancial
	item.ClassificationConfidence = rel.Confidence

	finance, financeErr := s.provider.Classify(ctx, item.Text, models.ModelFinance)
	if financeErr != nil {
		logger.Warn("finance sentiment inference failed",
			zap.String("source", item.Source),
			zap.Error(financeErr),
		)
		finance = models.ModelScore{Label: models.LabelNeutral}
	}

	general, generalErr := s.provider.Classify(ctx, item.Text, models.ModelGeneral)
	if generalErr != nil {
		logger.Warn("general sentiment inference failed",
			zap.String("source", item.Source),
			zap.Error(generalErr),
		)
		general = models.ModelScore{Label: models.LabelNeutral}
	}

	if financeErr != nil && generalErr != nil {
		item.ClassificationConfidence = 0
	}

	item.Finance = finance
	item.General = general

	return models.WeightedItem{
		Item:         item,
		TimeWeight:   s.recency.Weight(item.PublishedAt),
		BlendedScore: s.blender.Blend(finance, general, rel.IsFinancial) * item.ClassificationConfidence,
	}
}

// ScoreAll scores a batch of raw items in order. Item order does not
// affect downstream results; aggregation is a commutative weighted sum.
func (s *ItemScorer) ScoreAll(ctx context.Context, items []models.Item) []models.WeightedItem {
	weighted := make([]models.WeightedItem, 0, len(items))
	for _, item := range items {
		weighted = append(weighted, s.Score(ctx, item))
	}
	return weighted
}
