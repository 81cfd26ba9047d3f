package models

// SectorProfile is static reference data describing one market sector.
// Loaded once at startup and immutable afterwards.
type SectorProfile struct {
	ID       string   `json:"id" yaml:"id"`
	ETF      string   `json:"etf" yaml:"etf"`
	Tickers  []string `json:"tickers" yaml:"tickers"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// RecommendationTier is a portfolio-tilt recommendation relative to an
// equal-weight benchmark.
type RecommendationTier string

const (
	TierOverweight  RecommendationTier = "overweight"
	TierNeutral     RecommendationTier = "neutral"
	TierUnderweight RecommendationTier = "underweight"
)

// SectorRank is one entry of a sector ranking
type SectorRank struct {
	Rank           int                `json:"rank"`
	SectorID       string             `json:"sector_id"`
	ETF            string             `json:"etf"`
	Score          float64            `json:"score"`
	Confidence     float64            `json:"confidence"`
	ItemCount      int                `json:"item_count"`
	Tier           RecommendationTier `json:"tier"`
	Recommendation Recommendation     `json:"recommendation"`
}

// SectorRanking is an ordered sector ranking, sorted descending by
// score*confidence. Only sectors with at least two evidence items appear.
type SectorRanking struct {
	Ranks       []SectorRank `json:"ranks"`
	Overweight  []string     `json:"overweight"`
	Neutral     []string     `json:"neutral"`
	Underweight []string     `json:"underweight"`
}

// Recommendation is an advisory action label derived from score and
// confidence thresholds. It is a heuristic, not financial advice.
type Recommendation string

const (
	RecStrongBuy         Recommendation = "strong_buy"
	RecBuy               Recommendation = "buy"
	RecHold              Recommendation = "hold"
	RecSell              Recommendation = "sell"
	RecStrongSell        Recommendation = "strong_sell"
	RecHoldLowConfidence Recommendation = "hold_low_confidence"
)

// RecommendationFor derives an advisory label from a sentiment score and
// its confidence. Low confidence always resolves to a hold.
func RecommendationFor(score, confidence float64) Recommendation {
	if confidence < 0.3 {
		return RecHoldLowConfidence
	}

	switch {
	case score > 0.2:
		return RecStrongBuy
	case score > 0.05:
		return RecBuy
	case score < -0.2:
		return RecStrongSell
	case score < -0.05:
		return RecSell
	default:
		return RecHold
	}
}
