package fusion

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ksatyam/marketpulse/pkg/models"
)

type fakeProvider struct {
	finance    models.ModelScore
	general    models.ModelScore
	financeErr error
	generalErr error
}

func (p *fakeProvider) Classify(ctx context.Context, text string, kind models.ModelKind) (models.ModelScore, error) {
	if kind == models.ModelFinance {
		return p.finance, p.financeErr
	}
	return p.general, p.generalErr
}

func newScorer(provider SentimentProvider) *ItemScorer {
	return NewItemScorer(
		provider,
		NewRelevanceClassifier(0.1, 0.2),
		NewRecencyWeighter(24, 0.1),
		NewBlender(0.8, 0.4),
	)
}

func TestScoreFinancialItem(t *testing.T) {
	s := newScorer(&fakeProvider{
		finance: models.ModelScore{Label: models.LabelPositive, Score: 0.9},
		general: models.ModelScore{Label: models.LabelPositive, Score: 0.9},
	})

	got := s.Score(context.Background(), models.Item{
		Text:   "Earnings beat revenue forecast",
		Source: "test",
	})

	if !got.IsFinancial {
		t.Error("IsFinancial = false, want true")
	}
	if got.ClassificationConfidence != 1.0 {
		t.Errorf("ClassificationConfidence = %v, want 1.0", got.ClassificationConfidence)
	}
	// No timestamp: full time weight.
	if got.TimeWeight != 1.0 {
		t.Errorf("TimeWeight = %v, want 1.0", got.TimeWeight)
	}
	if math.Abs(got.BlendedScore-0.9) > 1e-9 {
		t.Errorf("BlendedScore = %v, want 0.9", got.BlendedScore)
	}
}

func TestScoreScalesByClassificationConfidence(t *testing.T) {
	provider := &fakeProvider{
		finance: models.ModelScore{Label: models.LabelPositive, Score: 1.0},
		general: models.ModelScore{Label: models.LabelPositive, Score: 1.0},
	}
	s := newScorer(provider)

	// One keyword in a long text gives partial relevance confidence,
	// which shrinks the item's contribution.
	long := "the quick brown fox jumps over the lazy dog again and again " +
		"while the crowd watches from a nearby hill under a clear sky " +
		"as someone mentions the stock in passing today"

	got := s.Score(context.Background(), models.Item{Text: long})
	if got.BlendedScore >= 1.0 {
		t.Errorf("BlendedScore = %v, want scaled below 1.0", got.BlendedScore)
	}
	if got.BlendedScore != got.ClassificationConfidence*1.0 {
		t.Errorf("BlendedScore = %v, want %v", got.BlendedScore, got.ClassificationConfidence)
	}
}

func TestScoreSingleModelFailureFallsBackToNeutral(t *testing.T) {
	s := newScorer(&fakeProvider{
		financeErr: errors.New("model offline"),
		general:    models.ModelScore{Label: models.LabelPositive, Score: 1.0},
	})

	got := s.Score(context.Background(), models.Item{Text: "Earnings beat revenue forecast"})

	// Finance resolves to neutral, so only the general share remains.
	if math.Abs(got.BlendedScore-0.2) > 1e-9 {
		t.Errorf("BlendedScore = %v, want 0.2", got.BlendedScore)
	}
	if got.ClassificationConfidence != 1.0 {
		t.Errorf("ClassificationConfidence = %v, want 1.0", got.ClassificationConfidence)
	}
}

func TestScoreBothModelsFailedNeutralizesItem(t *testing.T) {
	s := newScorer(&fakeProvider{
		financeErr: errors.New("model offline"),
		generalErr: errors.New("model offline"),
	})

	got := s.Score(context.Background(), models.Item{Text: "Earnings beat revenue forecast"})
	if got.BlendedScore != 0 {
		t.Errorf("BlendedScore = %v, want 0", got.BlendedScore)
	}
	if got.ClassificationConfidence != 0 {
		t.Errorf("ClassificationConfidence = %v, want 0", got.ClassificationConfidence)
	}
}

func TestScoreAllPreservesOrder(t *testing.T) {
	s := newScorer(&fakeProvider{
		finance: models.ModelScore{Label: models.LabelPositive, Score: 0.5},
		general: models.ModelScore{Label: models.LabelPositive, Score: 0.5},
	})

	items := []models.Item{
		{Text: "first earnings report", Source: "a"},
		{Text: "second earnings report", Source: "b"},
	}

	got := s.ScoreAll(context.Background(), items)
	if len(got) != 2 {
		t.Fatalf("ScoreAll() returned %d items, want 2", len(got))
	}
	if got[0].Source != "a" || got[1].Source != "b" {
		t.Errorf("order = [%s %s], want [a b]", got[0].Source, got[1].Source)
	}
}
