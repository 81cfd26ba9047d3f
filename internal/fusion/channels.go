package fusion

import (
	"github.com/ksatyam/marketpulse/pkg/models"
)

// ChannelFuserConfig holds base channel weights and the 5-tier label
// thresholds. Base weights need not sum to 1; they are renormalized
// before use.
type ChannelFuserConfig struct {
	NewsWeight        float64
	SocialForumWeight float64
	MicroblogWeight   float64
	StrongThreshold   float64
	WeakThreshold     float64
}

// DefaultChannelFuserConfig returns the standard channel weights
func DefaultChannelFuserConfig() ChannelFuserConfig {
	return ChannelFuserConfig{
		NewsWeight:        0.4,
		SocialForumWeight: 0.3,
		MicroblogWeight:   0.3,
		StrongThreshold:   0.2,
		WeakThreshold:     0.05,
	}
}

// ChannelFuser merges independently produced channel results (news,
// social forum, microblog) with configurable base weights, renormalized
// over whichever channels actually produced data. Its 5-tier label
// scheme is independent from the 3-tier scheme of the combined fuser.
type ChannelFuser struct {
	cfg         ChannelFuserConfig
	baseWeights map[models.Channel]float64
}

// NewChannelFuser creates new multi-channel fuser
func NewChannelFuser(cfg ChannelFuserConfig) *ChannelFuser {
	def := DefaultChannelFuserConfig()
	if cfg.NewsWeight <= 0 {
		cfg.NewsWeight = def.NewsWeight
	}
	if cfg.SocialForumWeight <= 0 {
		cfg.SocialForumWeight = def.SocialForumWeight
	}
	if cfg.MicroblogWeight <= 0 {
		cfg.MicroblogWeight = def.MicroblogWeight
	}
	if cfg.StrongThreshold <= 0 {
		cfg.StrongThreshold = def.StrongThreshold
	}
	if cfg.WeakThreshold <= 0 {
		cfg.WeakThreshold = def.WeakThreshold
	}

	// Normalize base weights to sum to 1 up front
	total := cfg.NewsWeight + cfg.SocialForumWeight + cfg.MicroblogWeight

	return &ChannelFuser{
		cfg: cfg,
		baseWeights: map[models.Channel]float64{
			models.ChannelNews:        cfg.NewsWeight / total,
			models.ChannelSocialForum: cfg.SocialForumWeight / total,
			models.ChannelMicroblog:   cfg.MicroblogWeight / total,
		},
	}
}

// Fuse merges channel results for one key. Channels that produced no
// items are excluded entirely; missing data is not a zero score. The
// remaining base weights renormalize to sum to 1.
func (chf *ChannelFuser) Fuse(key string, results []models.ChannelResult) models.CombinedSentiment {
	active := make([]models.ChannelResult, 0, len(results))
	totalWeight := 0.0

	for _, r := range results {
		if r.Missing() {
			continue
		}
		if _, known := chf.baseWeights[r.Channel]; !known {
			continue
		}
		active = append(active, r)
		totalWeight += chf.baseWeights[r.Channel]
	}

	if len(active) == 0 || totalWeight == 0 {
		return models.CombinedSentiment{
			Key:          key,
			Label:        models.LabelNeutral,
			WeightsUsed:  map[string]float64{},
			Status:       models.StatusUnavailable,
			StatusReason: "no channel produced data",
		}
	}

	weightsUsed := make(map[string]float64, len(active))
	var score, confidence float64

	for _, r := range active {
		weight := chf.baseWeights[r.Channel] / totalWeight
		weightsUsed[string(r.Channel)] = weight
		score += weight * r.Score
		confidence += weight * r.Confidence
	}

	result := models.CombinedSentiment{
		Key:         key,
		Score:       score,
		Label:       chf.tier(score),
		Confidence:  confidence,
		WeightsUsed: weightsUsed,
		Status:      models.StatusOK,
	}

	if len(active) < len(chf.baseWeights) {
		result.Status = models.StatusDegraded
		result.StatusReason = "one or more channels produced no data"
	}

	return result
}

// tier classifies a fused score into the 5-tier channel scheme
func (chf *ChannelFuser) tier(score float64) models.SentimentLabel {
	switch {
	case score > chf.cfg.StrongThreshold:
		return models.LabelBullish
	case score > chf.cfg.WeakThreshold:
		return models.LabelSlightlyPositive
	case score < -chf.cfg.StrongThreshold:
		return models.LabelBearish
	case score < -chf.cfg.WeakThreshold:
		return models.LabelSlightlyNegative
	default:
		return models.LabelNeutral
	}
}
