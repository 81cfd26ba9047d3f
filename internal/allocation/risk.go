package allocation

import (
	"github.com/montanaflynn/stats"

	"github.com/ksatyam/marketpulse/pkg/models"
)

const (
	highConcentrationPct    = 40.0
	mediumConcentrationPct  = 25.0
	minComfortablePositions = 5
	highSentimentStdDev     = 0.3
	fullDiversification     = 15.0
)

// Assessor grades a built allocation for concentration and
// sentiment-diversity risk.
type Assessor struct{}

// NewAssessor creates a portfolio risk assessor
func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess computes risk metrics over the allocated sectors. High risk
// means a dominant sector or too few positions, medium means elevated
// concentration or widely divergent stock sentiment.
func (a *Assessor) Assess(sectors []models.SectorAllocation) models.PortfolioRiskAssessment {
	if len(sectors) == 0 {
		return models.PortfolioRiskAssessment{RiskTier: "Low"}
	}

	var (
		positions     int
		concentration float64
		scores        []float64
	)
	for _, s := range sectors {
		positions += len(s.Stocks)
		if s.Pct > concentration {
			concentration = s.Pct
		}
		for _, stock := range s.Stocks {
			scores = append(scores, stock.Score)
		}
	}

	var stdDev, avg float64
	if len(scores) > 0 {
		stdDev, _ = stats.StandardDeviation(scores)
		avg, _ = stats.Mean(scores)
	}

	tier := "Low"
	switch {
	case concentration > highConcentrationPct || positions < minComfortablePositions:
		tier = "High"
	case concentration > mediumConcentrationPct || stdDev > highSentimentStdDev:
		tier = "Medium"
	}

	diversification := float64(positions) / fullDiversification * 100
	if diversification > 100 {
		diversification = 100
	}

	return models.PortfolioRiskAssessment{
		RiskTier:               tier,
		DiversificationScore:   diversification,
		SectorConcentrationPct: concentration,
		SentimentStdDev:        stdDev,
		AvgSentiment:           avg,
		TotalPositions:         positions,
		Recommendations:        riskRecommendations(tier, concentration, positions),
	}
}

func riskRecommendations(tier string, concentration float64, positions int) []string {
	var recs []string

	if tier == "High" {
		recs = append(recs, "Consider increasing diversification")
		if concentration > highConcentrationPct {
			recs = append(recs, "Reduce sector concentration below 30%")
		}
		if positions < minComfortablePositions {
			recs = append(recs, "Consider adding more positions to reduce single-stock risk")
		}
	}

	if concentration > 30 {
		recs = append(recs, "Monitor sector concentration risk")
	}

	recs = append(recs, "Set stop-loss orders at 5-10% below entry points")
	recs = append(recs, "Review and rebalance portfolio monthly")

	return recs
}
