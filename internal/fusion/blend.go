package fusion

import (
	"context"

	"github.com/ksatyam/marketpulse/pkg/models"
)

// SentimentProvider is the injected inference capability. Implementations
// may call a local model, a remote service, or a lexicon fallback; the
// fusion pipeline treats all of them as synchronous and side-effect-free.
type SentimentProvider interface {
	// Classify returns a sentiment label and probability for the text
	// using the requested model kind.
	Classify(ctx context.Context, text string, kind models.ModelKind) (models.ModelScore, error)
}

// SignedScore converts a label+probability pair into a signed scalar
// in [-1, 1]: +p for positive, -p for negative, 0 for neutral.
func SignedScore(ms models.ModelScore) float64 {
	switch ms.Label {
	case models.LabelPositive:
		return ms.Score
	case models.LabelNegative:
		return -ms.Score
	default:
		return 0
	}
}

// Blender mixes the finance-specialized and general-purpose model outputs
// per item. The finance model is trusted more on financial text; off
// topic the general model dominates, since the finance model may be
// miscalibrated outside its domain.
type Blender struct {
	financeOnTopic  float64
	financeOffTopic float64
}

// NewBlender creates new adaptive blender
func NewBlender(financeOnTopic, financeOffTopic float64) *Blender {
	if financeOnTopic <= 0 || financeOnTopic > 1 {
		financeOnTopic = 0.8
	}
	if financeOffTopic <= 0 || financeOffTopic > 1 {
		financeOffTopic = 0.4
	}

	return &Blender{
		financeOnTopic:  financeOnTopic,
		financeOffTopic: financeOffTopic,
	}
}

// Blend returns the mixed signed score for one item. Pure and
// deterministic: same inputs always produce the same output.
func (b *Blender) Blend(finance, general models.ModelScore, isFinancial bool) float64 {
	financeWeight := b.financeOffTopic
	if isFinancial {
		financeWeight = b.financeOnTopic
	}

	return financeWeight*SignedScore(finance) + (1-financeWeight)*SignedScore(general)
}

// Contribution returns the item's full contribution to a category mean:
// the blended score scaled by the relevance-classification confidence.
func (b *Blender) Contribution(finance, general models.ModelScore, rel Relevance) float64 {
	return b.Blend(finance, general, rel.IsFinancial) * rel.Confidence
}
