package workers

import (
	"testing"
)

func TestBuildTrendClassification(t *testing.T) {
	tests := []struct {
		name          string
		lastHour      float64
		last6Hours    float64
		wantTrend     string
		wantDirection string
	}{
		{
			name:          "improving and bullish",
			lastHour:      0.5,
			last6Hours:    0.3,
			wantTrend:     "improving",
			wantDirection: "bullish",
		},
		{
			name:          "declining and bearish",
			lastHour:      -0.5,
			last6Hours:    -0.3,
			wantTrend:     "declining",
			wantDirection: "bearish",
		},
		{
			name:          "stable and neutral",
			lastHour:      0.05,
			last6Hours:    0.0,
			wantTrend:     "stable",
			wantDirection: "neutral",
		},
		{
			name:          "momentum at threshold stays stable",
			lastHour:      0.1,
			last6Hours:    0.0,
			wantTrend:     "stable",
			wantDirection: "neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildTrend("AAPL", tt.lastHour, tt.lastHour, tt.last6Hours, 0)
			if got.Trend != tt.wantTrend {
				t.Errorf("Trend = %s, want %s", got.Trend, tt.wantTrend)
			}
			if got.Direction != tt.wantDirection {
				t.Errorf("Direction = %s, want %s", got.Direction, tt.wantDirection)
			}
			if got.Momentum != tt.lastHour-tt.last6Hours {
				t.Errorf("Momentum = %v, want %v", got.Momentum, tt.lastHour-tt.last6Hours)
			}
		})
	}
}
