package fusion

import (
	"github.com/ksatyam/marketpulse/pkg/models"
)

// weightsUsed map keys for the two news categories
const (
	sourceGeneral  = "general_market"
	sourceSpecific = "stock_specific"
)

// CombinedFuserConfig holds the tunables of the two-category fuser
type CombinedFuserConfig struct {
	GeneralWeight           float64 // base weight for general-market news
	SpecificWeight          float64 // base weight for stock-specific news
	ConfidenceFactor        float64 // how strongly avg classification confidence bends a weight
	FinancialRatioThreshold float64 // financial ratio above which a category gets boosted
	FinancialRatioBoost     float64 // relative boost applied past the threshold
	LabelThreshold          float64 // label cut, tighter than the per-category one
}

// DefaultCombinedFuserConfig returns the standard fusion parameters
func DefaultCombinedFuserConfig() CombinedFuserConfig {
	return CombinedFuserConfig{
		GeneralWeight:           0.4,
		SpecificWeight:          0.6,
		ConfidenceFactor:        0.2,
		FinancialRatioThreshold: 0.7,
		FinancialRatioBoost:     0.1,
		LabelThreshold:          0.12,
	}
}

// CombinedFuser merges the general-market and stock-specific category
// scores into one sentiment result using confidence- and financial-ratio
// adjusted dynamic weights, renormalized to sum to 1.
type CombinedFuser struct {
	cfg CombinedFuserConfig
}

// NewCombinedFuser creates new combined sentiment fuser
func NewCombinedFuser(cfg CombinedFuserConfig) *CombinedFuser {
	def := DefaultCombinedFuserConfig()
	if cfg.GeneralWeight <= 0 {
		cfg.GeneralWeight = def.GeneralWeight
	}
	if cfg.SpecificWeight <= 0 {
		cfg.SpecificWeight = def.SpecificWeight
	}
	if cfg.ConfidenceFactor <= 0 {
		cfg.ConfidenceFactor = def.ConfidenceFactor
	}
	if cfg.FinancialRatioThreshold <= 0 {
		cfg.FinancialRatioThreshold = def.FinancialRatioThreshold
	}
	if cfg.FinancialRatioBoost <= 0 {
		cfg.FinancialRatioBoost = def.FinancialRatioBoost
	}
	if cfg.LabelThreshold <= 0 {
		cfg.LabelThreshold = def.LabelThreshold
	}

	return &CombinedFuser{cfg: cfg}
}

// Fuse merges two category scores for one ticker or sector. A category
// with no items is excluded and the remaining weight renormalizes to 1;
// an empty category is never treated as a zero score.
func (cf *CombinedFuser) Fuse(key string, general, specific models.CategoryScore) models.CombinedSentiment {
	generalWeight := cf.adjustedWeight(cf.cfg.GeneralWeight, general)
	specificWeight := cf.adjustedWeight(cf.cfg.SpecificWeight, specific)

	if general.ItemCount == 0 {
		generalWeight = 0
	}
	if specific.ItemCount == 0 {
		specificWeight = 0
	}

	total := generalWeight + specificWeight
	if total == 0 {
		return models.CombinedSentiment{
			Key:          key,
			Label:        models.LabelNeutral,
			WeightsUsed:  map[string]float64{},
			Status:       models.StatusUnavailable,
			StatusReason: "no items in any category",
		}
	}

	generalWeight /= total
	specificWeight /= total

	score := generalWeight*general.Score + specificWeight*specific.Score
	confidence := generalWeight*general.Confidence + specificWeight*specific.Confidence

	result := models.CombinedSentiment{
		Key:        key,
		Score:      score,
		Label:      cf.label(score),
		Confidence: confidence,
		WeightsUsed: map[string]float64{
			sourceGeneral:  generalWeight,
			sourceSpecific: specificWeight,
		},
		Status: models.StatusOK,
	}

	if general.ItemCount == 0 || specific.ItemCount == 0 {
		result.Status = models.StatusDegraded
		result.StatusReason = "one category produced no items"
	}

	return result
}

// adjustedWeight bends a base weight by the category's average
// classification confidence, then boosts categories dominated by
// financial content.
func (cf *CombinedFuser) adjustedWeight(base float64, cs models.CategoryScore) float64 {
	weight := base * (1 + (cs.AvgClassConfidence-0.5)*cf.cfg.ConfidenceFactor)

	if cs.FinancialRatio() > cf.cfg.FinancialRatioThreshold {
		weight *= 1 + cf.cfg.FinancialRatioBoost
	}

	if weight < 0 {
		weight = 0
	}

	return weight
}

// label classifies a fused score. The cut is tighter than the
// per-category threshold, reflecting higher trust in the fused signal.
func (cf *CombinedFuser) label(score float64) models.SentimentLabel {
	switch {
	case score > cf.cfg.LabelThreshold:
		return models.LabelPositive
	case score < -cf.cfg.LabelThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}
