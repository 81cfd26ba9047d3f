package sectors

import (
	"sort"

	"github.com/ksatyam/marketpulse/pkg/models"
)

// Ranker orders sectors by conviction and splits them into
// overweight, neutral and underweight tiers.
type Ranker struct {
	table     *Table
	minItems  int
	threshold float64
}

// NewRanker creates a sector ranker. minItems is the minimum item count
// for a sector to be ranked at all; threshold is the absolute score a
// top or bottom sector needs to earn an overweight or underweight call.
func NewRanker(table *Table, minItems int, threshold float64) *Ranker {
	if minItems < 1 {
		minItems = 1
	}
	return &Ranker{table: table, minItems: minItems, threshold: threshold}
}

// Rank orders sector scores by score times confidence, descending.
// Sectors below the item floor and the general market bucket are
// dropped. Ties break on sector id so the output is deterministic.
func (r *Ranker) Rank(scores map[string]models.CategoryScore) models.SectorRanking {
	type scored struct {
		id         string
		score      models.CategoryScore
		conviction float64
	}

	eligible := make([]scored, 0, len(scores))
	for id, cs := range scores {
		if id == GeneralMarket || cs.ItemCount < r.minItems {
			continue
		}
		eligible = append(eligible, scored{
			id:         id,
			score:      cs,
			conviction: cs.Score * cs.Confidence,
		})
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].conviction != eligible[j].conviction {
			return eligible[i].conviction > eligible[j].conviction
		}
		return eligible[i].id < eligible[j].id
	})

	ranking := models.SectorRanking{
		Ranks: make([]models.SectorRank, 0, len(eligible)),
	}
	if len(eligible) == 0 {
		return ranking
	}

	tierSize := len(eligible) / 3
	if tierSize < 1 {
		tierSize = 1
	}

	for i, s := range eligible {
		tier := models.TierNeutral
		switch {
		case i < tierSize && s.score.Score > r.threshold:
			tier = models.TierOverweight
		case i >= len(eligible)-tierSize && s.score.Score < -r.threshold:
			tier = models.TierUnderweight
		}

		rank := models.SectorRank{
			Rank:           i + 1,
			SectorID:       s.id,
			ETF:            r.table.ETF(s.id),
			Score:          s.score.Score,
			Confidence:     s.score.Confidence,
			ItemCount:      s.score.ItemCount,
			Tier:           tier,
			Recommendation: models.RecommendationFor(s.score.Score, s.score.Confidence),
		}
		ranking.Ranks = append(ranking.Ranks, rank)

		switch tier {
		case models.TierOverweight:
			ranking.Overweight = append(ranking.Overweight, s.id)
		case models.TierUnderweight:
			ranking.Underweight = append(ranking.Underweight, s.id)
		default:
			ranking.Neutral = append(ranking.Neutral, s.id)
		}
	}

	return ranking
}
