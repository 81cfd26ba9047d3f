// Package lexicon provides a keyword based sentiment backend. It is
// the built-in fallback when no external model is configured, tuned
// separately for finance-register and general-register text.
package lexicon

import (
	"context"
	"strings"

	"github.com/ksatyam/marketpulse/pkg/models"
)

// Provider scores text against weighted word lists
type Provider struct {
	finance lexicon
	general lexicon
}

type lexicon struct {
	positive map[string]float64
	negative map[string]float64
}

// NewProvider creates a lexicon backed sentiment provider
func NewProvider() *Provider {
	return &Provider{
		finance: lexicon{
			positive: buildFinancePositive(),
			negative: buildFinanceNegative(),
		},
		general: lexicon{
			positive: buildGeneralPositive(),
			negative: buildGeneralNegative(),
		},
	}
}

// Classify scores text with the lexicon matching the requested model
// kind. The returned score is the match strength in [0, 1] and the
// label carries the polarity.
func (p *Provider) Classify(ctx context.Context, text string, kind models.ModelKind) (models.ModelScore, error) {
	if err := ctx.Err(); err != nil {
		return models.ModelScore{}, err
	}

	lex := p.general
	if kind == models.ModelFinance {
		lex = p.finance
	}

	raw := lex.score(text)
	switch {
	case raw > 0:
		return models.ModelScore{Label: models.LabelPositive, Score: clamp(raw)}, nil
	case raw < 0:
		return models.ModelScore{Label: models.LabelNegative, Score: clamp(-raw)}, nil
	default:
		return models.ModelScore{Label: models.LabelNeutral, Score: 0}, nil
	}
}

// score sums word weights over the text, normalized by word count
func (l lexicon) score(text string) float64 {
	if text == "" {
		return 0
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	var score float64
	matches := 0

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:()\"'")

		if weight, ok := l.positive[word]; ok {
			score += weight
			matches++
		}
		if weight, ok := l.negative[word]; ok {
			score -= weight
			matches++
		}
	}

	if matches == 0 {
		return 0
	}

	// Dampen by text length so a single keyword in a long passage
	// does not dominate.
	return score / float64(len(words)) * 4
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func buildFinancePositive() map[string]float64 {
	return map[string]float64{
		"beat":        0.8,
		"beats":       0.8,
		"outperform":  0.8,
		"upgrade":     0.7,
		"upgraded":    0.7,
		"buyback":     0.6,
		"dividend":    0.4,
		"profit":      0.6,
		"profitable":  0.6,
		"growth":      0.5,
		"record":      0.5,
		"strong":      0.5,
		"exceeded":    0.7,
		"raise":       0.5,
		"raised":      0.5,
		"guidance":    0.3,
		"bullish":     1.0,
		"rally":       0.9,
		"surge":       0.8,
		"gain":        0.6,
		"gains":       0.6,
		"expansion":   0.5,
		"acquisition": 0.4,
		"breakout":    0.7,
		"overweight":  0.6,
		"undervalued": 0.6,
	}
}

func buildFinanceNegative() map[string]float64 {
	return map[string]float64{
		"miss":        0.8,
		"missed":      0.8,
		"misses":      0.8,
		"downgrade":   0.7,
		"downgraded":  0.7,
		"loss":        0.7,
		"losses":      0.7,
		"lawsuit":     0.6,
		"probe":       0.5,
		"bankruptcy":  1.0,
		"default":     0.8,
		"recession":   0.8,
		"inflation":   0.4,
		"layoffs":     0.6,
		"bearish":     1.0,
		"crash":       1.0,
		"plunge":      0.8,
		"selloff":     0.8,
		"decline":     0.6,
		"weak":        0.5,
		"warning":     0.6,
		"cut":         0.5,
		"underweight": 0.6,
		"overvalued":  0.6,
		"fraud":       0.9,
		"delisting":   0.8,
	}
}

func buildGeneralPositive() map[string]float64 {
	return map[string]float64{
		"good":         0.5,
		"great":        0.6,
		"excellent":    0.8,
		"amazing":      0.7,
		"love":         0.6,
		"win":          0.6,
		"winning":      0.6,
		"success":      0.6,
		"successful":   0.6,
		"positive":     0.5,
		"optimistic":   0.5,
		"happy":        0.5,
		"best":         0.6,
		"impressive":   0.6,
		"innovative":   0.5,
		"promising":    0.5,
		"breakthrough": 0.6,
		"up":           0.4,
		"rise":         0.5,
		"soar":         0.8,
	}
}

func buildGeneralNegative() map[string]float64 {
	return map[string]float64{
		"bad":      0.5,
		"terrible": 0.8,
		"awful":    0.7,
		"hate":     0.6,
		"fail":     0.7,
		"failure":  0.7,
		"failed":   0.7,
		"negative": 0.5,
		"worried":  0.5,
		"worry":    0.5,
		"fear":     0.6,
		"panic":    0.8,
		"worst":    0.7,
		"disaster": 0.8,
		"problem":  0.4,
		"problems": 0.4,
		"down":     0.4,
		"fall":     0.5,
		"drop":     0.5,
		"collapse": 0.9,
	}
}
