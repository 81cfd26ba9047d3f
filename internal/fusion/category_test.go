package fusion

import (
	"math"
	"testing"

	"github.com/ksatyam/marketpulse/pkg/models"
)

func weightedItem(score, timeWeight float64) models.WeightedItem {
	return models.WeightedItem{
		Item: models.Item{
			IsFinancial:              true,
			ClassificationConfidence: 1.0,
		},
		TimeWeight:   timeWeight,
		BlendedScore: score,
	}
}

func TestAggregateSameDayPositiveItems(t *testing.T) {
	ca := NewCategoryAggregator(0.1)

	items := []models.WeightedItem{
		weightedItem(0.9, 1.0),
		weightedItem(0.9, 1.0),
		weightedItem(0.9, 1.0),
	}

	got := ca.Aggregate(models.CategoryStockSpecific, items)

	if math.Abs(got.Score-0.9) > 1e-9 {
		t.Errorf("Score = %v, want 0.9", got.Score)
	}
	if got.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3", got.Confidence)
	}
	if got.Label != models.LabelPositive {
		t.Errorf("Label = %s, want %s", got.Label, models.LabelPositive)
	}
	if got.ItemCount != 3 || got.FinancialItemCount != 3 {
		t.Errorf("counts = %d/%d, want 3/3", got.ItemCount, got.FinancialItemCount)
	}
}

func TestAggregateEmpty(t *testing.T) {
	ca := NewCategoryAggregator(0.1)

	got := ca.Aggregate(models.CategoryGeneralMarket, nil)
	if got.Score != 0 {
		t.Errorf("Score = %v, want 0", got.Score)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
	if got.Label != models.LabelNeutral {
		t.Errorf("Label = %s, want %s", got.Label, models.LabelNeutral)
	}
	if got.ItemCount != 0 {
		t.Errorf("ItemCount = %d, want 0", got.ItemCount)
	}
}

func TestAggregateRecencyDiscountsOldItems(t *testing.T) {
	ca := NewCategoryAggregator(0.1)

	fresh := ca.Aggregate(models.CategoryStockSpecific, []models.WeightedItem{
		weightedItem(0.8, 1.0),
		weightedItem(-0.4, 1.0),
	})
	// Same two items, but the negative one is stale.
	discounted := ca.Aggregate(models.CategoryStockSpecific, []models.WeightedItem{
		weightedItem(0.8, 1.0),
		weightedItem(-0.4, 0.1),
	})

	if discounted.Score <= fresh.Score {
		t.Errorf("discounting the negative item should raise the mean: %v <= %v",
			discounted.Score, fresh.Score)
	}
}

func TestAggregateConfidenceSaturates(t *testing.T) {
	ca := NewCategoryAggregator(0.1)

	items := make([]models.WeightedItem, 15)
	for i := range items {
		items[i] = weightedItem(0.5, 1.0)
	}

	got := ca.Aggregate(models.CategoryStockSpecific, items)
	if got.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want saturated at 1.0", got.Confidence)
	}
}

func TestAggregateLabelThresholds(t *testing.T) {
	ca := NewCategoryAggregator(0.1)

	tests := []struct {
		name  string
		score float64
		want  models.SentimentLabel
	}{
		{name: "clearly positive", score: 0.5, want: models.LabelPositive},
		{name: "clearly negative", score: -0.5, want: models.LabelNegative},
		{name: "at threshold", score: 0.1, want: models.LabelNeutral},
		{name: "inside band", score: -0.05, want: models.LabelNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []models.WeightedItem{weightedItem(tt.score, 1.0)}
			got := ca.Aggregate(models.CategoryStockSpecific, items)
			if got.Label != tt.want {
				t.Errorf("Label = %s, want %s", got.Label, tt.want)
			}
		})
	}
}

func TestAggregateLowTotalWeightFloorsDenominator(t *testing.T) {
	ca := NewCategoryAggregator(0.1)

	// One stale item: total weight 0.1 is floored to 1, shrinking the
	// mean instead of amplifying a weak signal.
	got := ca.Aggregate(models.CategoryStockSpecific, []models.WeightedItem{
		weightedItem(0.8, 0.1),
	})
	if math.Abs(got.Score-0.08) > 1e-9 {
		t.Errorf("Score = %v, want 0.08", got.Score)
	}
}

func TestAggregateAverages(t *testing.T) {
	ca := NewCategoryAggregator(0.1)

	items := []models.WeightedItem{
		{
			Item:         models.Item{IsFinancial: true, ClassificationConfidence: 1.0},
			TimeWeight:   1.0,
			BlendedScore: 0.5,
		},
		{
			Item:         models.Item{IsFinancial: false, ClassificationConfidence: 0.2},
			TimeWeight:   0.5,
			BlendedScore: 0.1,
		},
	}

	got := ca.Aggregate(models.CategoryStockSpecific, items)
	if math.Abs(got.AvgTimeWeight-0.75) > 1e-9 {
		t.Errorf("AvgTimeWeight = %v, want 0.75", got.AvgTimeWeight)
	}
	if math.Abs(got.AvgClassConfidence-0.6) > 1e-9 {
		t.Errorf("AvgClassConfidence = %v, want 0.6", got.AvgClassConfidence)
	}
	if got.FinancialItemCount != 1 {
		t.Errorf("FinancialItemCount = %d, want 1", got.FinancialItemCount)
	}
}
