package fusion

import (
	"math"
	"testing"

	"github.com/ksatyam/marketpulse/pkg/models"
)

func TestSignedScore(t *testing.T) {
	tests := []struct {
		name string
		ms   models.ModelScore
		want float64
	}{
		{name: "positive", ms: models.ModelScore{Label: models.LabelPositive, Score: 0.9}, want: 0.9},
		{name: "negative", ms: models.ModelScore{Label: models.LabelNegative, Score: 0.7}, want: -0.7},
		{name: "neutral", ms: models.ModelScore{Label: models.LabelNeutral, Score: 0.8}, want: 0},
		{name: "zero value", ms: models.ModelScore{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedScore(tt.ms); got != tt.want {
				t.Errorf("SignedScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendWeightsByRelevance(t *testing.T) {
	b := NewBlender(0.8, 0.4)

	finance := models.ModelScore{Label: models.LabelPositive, Score: 1.0}
	general := models.ModelScore{Label: models.LabelNegative, Score: 1.0}

	// On financial text the finance model dominates.
	onTopic := b.Blend(finance, general, true)
	if math.Abs(onTopic-0.6) > 1e-9 {
		t.Errorf("on-topic blend = %v, want 0.6", onTopic)
	}

	// Off topic the general model dominates.
	offTopic := b.Blend(finance, general, false)
	if math.Abs(offTopic-(-0.2)) > 1e-9 {
		t.Errorf("off-topic blend = %v, want -0.2", offTopic)
	}
}

func TestBlendIsDeterministic(t *testing.T) {
	b := NewBlender(0.8, 0.4)

	finance := models.ModelScore{Label: models.LabelPositive, Score: 0.73}
	general := models.ModelScore{Label: models.LabelNegative, Score: 0.21}

	first := b.Blend(finance, general, true)
	for i := 0; i < 10; i++ {
		if got := b.Blend(finance, general, true); got != first {
			t.Fatalf("Blend() = %v, want %v on repeat call", got, first)
		}
	}
}

func TestBlendAgreementPreservesSign(t *testing.T) {
	b := NewBlender(0.8, 0.4)

	finance := models.ModelScore{Label: models.LabelPositive, Score: 0.9}
	general := models.ModelScore{Label: models.LabelPositive, Score: 0.9}

	for _, isFinancial := range []bool{true, false} {
		got := b.Blend(finance, general, isFinancial)
		if math.Abs(got-0.9) > 1e-9 {
			t.Errorf("agreeing models blend = %v, want 0.9", got)
		}
	}
}

func TestContributionScalesByConfidence(t *testing.T) {
	b := NewBlender(0.8, 0.4)

	finance := models.ModelScore{Label: models.LabelPositive, Score: 1.0}
	general := models.ModelScore{Label: models.LabelPositive, Score: 1.0}

	full := b.Contribution(finance, general, Relevance{IsFinancial: true, Confidence: 1.0})
	half := b.Contribution(finance, general, Relevance{IsFinancial: true, Confidence: 0.5})
	zero := b.Contribution(finance, general, Relevance{IsFinancial: true, Confidence: 0})

	if math.Abs(full-1.0) > 1e-9 {
		t.Errorf("full confidence contribution = %v, want 1.0", full)
	}
	if math.Abs(half-0.5) > 1e-9 {
		t.Errorf("half confidence contribution = %v, want 0.5", half)
	}
	if zero != 0 {
		t.Errorf("zero confidence contribution = %v, want 0", zero)
	}
}

func TestNewBlenderDefaults(t *testing.T) {
	b := NewBlender(0, 2)
	if b.financeOnTopic != 0.8 {
		t.Errorf("financeOnTopic = %v, want default 0.8", b.financeOnTopic)
	}
	if b.financeOffTopic != 0.4 {
		t.Errorf("financeOffTopic = %v, want default 0.4", b.financeOffTopic)
	}
}
