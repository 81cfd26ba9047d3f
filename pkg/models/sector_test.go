package models

import "testing"

func TestRecommendationFor(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		confidence float64
		want       Recommendation
	}{
		{name: "strong buy", score: 0.5, confidence: 0.8, want: RecStrongBuy},
		{name: "buy", score: 0.1, confidence: 0.8, want: RecBuy},
		{name: "hold", score: 0.0, confidence: 0.8, want: RecHold},
		{name: "sell", score: -0.1, confidence: 0.8, want: RecSell},
		{name: "strong sell", score: -0.5, confidence: 0.8, want: RecStrongSell},
		{name: "low confidence overrides score", score: 0.9, confidence: 0.2, want: RecHoldLowConfidence},
		{name: "boundary buy threshold", score: 0.05, confidence: 0.8, want: RecHold},
		{name: "boundary sell threshold", score: -0.05, confidence: 0.8, want: RecHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecommendationFor(tt.score, tt.confidence); got != tt.want {
				t.Errorf("RecommendationFor(%v, %v) = %s, want %s", tt.score, tt.confidence, got, tt.want)
			}
		})
	}
}
