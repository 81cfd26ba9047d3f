package models

import (
	"github.com/shopspring/decimal"
)

// RiskTolerance represents an investor risk profile
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// RiskProfile controls how much allocation is driven by even distribution
// versus sentiment-performance skew. Weights sum to 1.
type RiskProfile struct {
	EqualWeight       float64 `json:"equal_weight"`
	PerformanceWeight float64 `json:"performance_weight"`
}

// StockAllocation is one stock position within a sector allocation
type StockAllocation struct {
	Ticker         string          `json:"ticker"`
	Amount         decimal.Decimal `json:"amount"`
	Pct            float64         `json:"pct"`
	Score          float64         `json:"score"`
	Confidence     float64         `json:"confidence"`
	Recommendation Recommendation  `json:"recommendation"`
}

// SectorAllocation is the dollar allocation for one sector and its stocks.
// Stock amounts sum to Amount; across sectors, Amounts sum to the
// portfolio size.
type SectorAllocation struct {
	SectorID    string            `json:"sector_id"`
	Amount      decimal.Decimal   `json:"amount"`
	Pct         float64           `json:"pct"`
	SectorScore float64           `json:"sector_score"`
	Stocks      []StockAllocation `json:"stocks"`
}

// PortfolioRiskAssessment summarizes concentration, diversification and
// sentiment-consistency risk over a computed allocation.
type PortfolioRiskAssessment struct {
	RiskTier               string   `json:"risk_tier"` // Low, Medium, High
	DiversificationScore   float64  `json:"diversification_score"`
	SectorConcentrationPct float64  `json:"sector_concentration_pct"`
	SentimentStdDev        float64  `json:"sentiment_std_dev"`
	AvgSentiment           float64  `json:"avg_sentiment"`
	TotalPositions         int      `json:"total_positions"`
	Recommendations        []string `json:"recommendations"`
}

// AllocationPlan is a complete portfolio allocation with risk assessment
type AllocationPlan struct {
	PortfolioSize decimal.Decimal         `json:"portfolio_size"`
	RiskTolerance RiskTolerance           `json:"risk_tolerance"`
	Sectors       []SectorAllocation      `json:"sectors"`
	Risk          PortfolioRiskAssessment `json:"risk"`
}

// TotalAllocated returns the sum of all sector allocations
func (p *AllocationPlan) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, s := range p.Sectors {
		total = total.Add(s.Amount)
	}
	return total
}

// Positions returns the total number of stock positions in the plan
func (p *AllocationPlan) Positions() int {
	n := 0
	for _, s := range p.Sectors {
		n += len(s.Stocks)
	}
	return n
}
