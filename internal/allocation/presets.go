package allocation

import "github.com/ksatyam/marketpulse/pkg/models"

// riskProfiles maps tolerance to the equal/performance weight split
// used when sizing sectors and stocks.
var riskProfiles = map[models.RiskTolerance]models.RiskProfile{
	models.RiskConservative: {EqualWeight: 0.8, PerformanceWeight: 0.2},
	models.RiskModerate:     {EqualWeight: 0.6, PerformanceWeight: 0.4},
	models.RiskAggressive:   {EqualWeight: 0.4, PerformanceWeight: 0.6},
}

// ProfileFor returns the weight split for a tolerance, defaulting to
// moderate for unknown values.
func ProfileFor(tolerance models.RiskTolerance) models.RiskProfile {
	if p, ok := riskProfiles[tolerance]; ok {
		return p
	}
	return riskProfiles[models.RiskModerate]
}

// sectorPasses applies the per-tolerance eligibility filter to a
// ranked sector. Conservative demands both conviction and a
// non-negative score, aggressive only a minimal confidence floor.
func sectorPasses(tolerance models.RiskTolerance, rank models.SectorRank) bool {
	switch tolerance {
	case models.RiskConservative:
		return rank.Confidence >= 0.5 && rank.Score >= 0
	case models.RiskAggressive:
		return rank.Confidence >= 0.2
	default:
		return rank.Confidence >= 0.3 && rank.Score >= -0.1
	}
}
