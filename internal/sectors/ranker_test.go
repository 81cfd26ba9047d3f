package sectors

import (
	"testing"

	"github.com/ksatyam/marketpulse/pkg/models"
)

func TestRankerOrdersByConviction(t *testing.T) {
	r := NewRanker(testTable(t), 2, 0.1)

	scores := map[string]models.CategoryScore{
		"technology":       {Category: models.CategorySector, Score: 0.4, Confidence: 0.5, ItemCount: 5},
		"energy":           {Category: models.CategorySector, Score: 0.8, Confidence: 0.2, ItemCount: 4},
		"consumer_staples": {Category: models.CategorySector, Score: -0.3, Confidence: 0.9, ItemCount: 6},
	}

	ranking := r.Rank(scores)
	if len(ranking.Ranks) != 3 {
		t.Fatalf("Rank() returned %d entries, want 3", len(ranking.Ranks))
	}

	// Convictions: technology 0.20, energy 0.16, staples -0.27
	wantOrder := []string{"technology", "energy", "consumer_staples"}
	for i, want := range wantOrder {
		if got := ranking.Ranks[i].SectorID; got != want {
			t.Errorf("rank %d = %s, want %s", i+1, got, want)
		}
		if ranking.Ranks[i].Rank != i+1 {
			t.Errorf("Rank field = %d, want %d", ranking.Ranks[i].Rank, i+1)
		}
	}

	for i := 1; i < len(ranking.Ranks); i++ {
		prev := ranking.Ranks[i-1].Score * ranking.Ranks[i-1].Confidence
		curr := ranking.Ranks[i].Score * ranking.Ranks[i].Confidence
		if curr > prev {
			t.Errorf("ranking not sorted: %v before %v", prev, curr)
		}
	}
}

func TestRankerExcludesThinAndFallbackBuckets(t *testing.T) {
	r := NewRanker(testTable(t), 2, 0.1)

	scores := map[string]models.CategoryScore{
		"technology":       {Score: 0.5, Confidence: 0.5, ItemCount: 4},
		"energy":           {Score: 0.4, Confidence: 0.5, ItemCount: 3},
		"consumer_staples": {Score: 0.3, Confidence: 0.5, ItemCount: 5},
		"financial":        {Score: 0.9, Confidence: 0.9, ItemCount: 1},
		"materials":        {Score: -0.9, Confidence: 0.9, ItemCount: 1},
		GeneralMarket:      {Score: 0.2, Confidence: 0.8, ItemCount: 40},
	}

	ranking := r.Rank(scores)
	if len(ranking.Ranks) != 3 {
		t.Fatalf("Rank() returned %d entries, want 3", len(ranking.Ranks))
	}
	for _, rank := range ranking.Ranks {
		if rank.SectorID == "financial" || rank.SectorID == "materials" || rank.SectorID == GeneralMarket {
			t.Errorf("sector %s should be excluded", rank.SectorID)
		}
	}
}

func TestRankerTiers(t *testing.T) {
	r := NewRanker(testTable(t), 2, 0.1)

	scores := map[string]models.CategoryScore{
		"technology":       {Score: 0.6, Confidence: 0.8, ItemCount: 5},
		"energy":           {Score: 0.3, Confidence: 0.5, ItemCount: 5},
		"financial":        {Score: 0.05, Confidence: 0.5, ItemCount: 5},
		"consumer_staples": {Score: -0.05, Confidence: 0.5, ItemCount: 5},
		"utilities":        {Score: -0.2, Confidence: 0.5, ItemCount: 5},
		"materials":        {Score: -0.5, Confidence: 0.8, ItemCount: 5},
	}

	ranking := r.Rank(scores)
	if len(ranking.Ranks) != 6 {
		t.Fatalf("Rank() returned %d entries, want 6", len(ranking.Ranks))
	}

	// Tier size is 6/3 = 2 on each side.
	wantOverweight := []string{"technology", "energy"}
	if len(ranking.Overweight) != len(wantOverweight) {
		t.Fatalf("Overweight = %v, want %v", ranking.Overweight, wantOverweight)
	}
	for i, id := range wantOverweight {
		if ranking.Overweight[i] != id {
			t.Errorf("Overweight[%d] = %s, want %s", i, ranking.Overweight[i], id)
		}
	}

	wantUnderweight := []string{"utilities", "materials"}
	if len(ranking.Underweight) != len(wantUnderweight) {
		t.Fatalf("Underweight = %v, want %v", ranking.Underweight, wantUnderweight)
	}
	for i, id := range wantUnderweight {
		if ranking.Underweight[i] != id {
			t.Errorf("Underweight[%d] = %s, want %s", i, ranking.Underweight[i], id)
		}
	}

	if len(ranking.Neutral) != 2 {
		t.Errorf("Neutral = %v, want 2 entries", ranking.Neutral)
	}
}

func TestRankerTierNeedsScoreBeyondThreshold(t *testing.T) {
	r := NewRanker(testTable(t), 2, 0.1)

	// Top sector score below the threshold stays neutral even at rank 1.
	scores := map[string]models.CategoryScore{
		"technology": {Score: 0.08, Confidence: 0.9, ItemCount: 5},
		"energy":     {Score: 0.02, Confidence: 0.9, ItemCount: 5},
		"financial":  {Score: -0.05, Confidence: 0.9, ItemCount: 5},
	}

	ranking := r.Rank(scores)
	if len(ranking.Overweight) != 0 {
		t.Errorf("Overweight = %v, want empty", ranking.Overweight)
	}
	if len(ranking.Underweight) != 0 {
		t.Errorf("Underweight = %v, want empty", ranking.Underweight)
	}
	if len(ranking.Neutral) != 3 {
		t.Errorf("Neutral = %v, want 3 entries", ranking.Neutral)
	}
}

func TestRankerSingleSectorPrefersOverweight(t *testing.T) {
	r := NewRanker(testTable(t), 2, 0.1)

	ranking := r.Rank(map[string]models.CategoryScore{
		"technology": {Score: 0.5, Confidence: 0.8, ItemCount: 5},
	})
	if len(ranking.Ranks) != 1 {
		t.Fatalf("Rank() returned %d entries, want 1", len(ranking.Ranks))
	}
	if ranking.Ranks[0].Tier != models.TierOverweight {
		t.Errorf("Tier = %s, want %s", ranking.Ranks[0].Tier, models.TierOverweight)
	}
}

func TestRankerEmptyInput(t *testing.T) {
	r := NewRanker(testTable(t), 2, 0.1)

	ranking := r.Rank(nil)
	if len(ranking.Ranks) != 0 {
		t.Errorf("Rank(nil) returned %d entries, want 0", len(ranking.Ranks))
	}
}

func TestRankerDeterministicTieBreak(t *testing.T) {
	r := NewRanker(testTable(t), 2, 0.1)

	scores := map[string]models.CategoryScore{
		"technology": {Score: 0.4, Confidence: 0.5, ItemCount: 5},
		"energy":     {Score: 0.4, Confidence: 0.5, ItemCount: 5},
	}

	first := r.Rank(scores)
	for i := 0; i < 10; i++ {
		again := r.Rank(scores)
		for j := range first.Ranks {
			if again.Ranks[j].SectorID != first.Ranks[j].SectorID {
				t.Fatalf("ranking order not deterministic on tied conviction")
			}
		}
	}
	if first.Ranks[0].SectorID != "energy" {
		t.Errorf("tied conviction should break on sector id, got %s first", first.Ranks[0].SectorID)
	}
}

func TestRankerRecommendations(t *testing.T) {
	r := NewRanker(testTable(t), 2, 0.1)

	ranking := r.Rank(map[string]models.CategoryScore{
		"technology": {Score: 0.5, Confidence: 0.8, ItemCount: 5},
		"energy":     {Score: 0.1, Confidence: 0.6, ItemCount: 5},
		"materials":  {Score: -0.5, Confidence: 0.2, ItemCount: 5},
	})

	byID := make(map[string]models.SectorRank)
	for _, rank := range ranking.Ranks {
		byID[rank.SectorID] = rank
	}

	if got := byID["technology"].Recommendation; got != models.RecStrongBuy {
		t.Errorf("technology recommendation = %s, want %s", got, models.RecStrongBuy)
	}
	if got := byID["energy"].Recommendation; got != models.RecBuy {
		t.Errorf("energy recommendation = %s, want %s", got, models.RecBuy)
	}
	// Low confidence overrides the bearish score.
	if got := byID["materials"].Recommendation; got != models.RecHoldLowConfidence {
		t.Errorf("materials recommendation = %s, want %s", got, models.RecHoldLowConfidence)
	}

	if byID["technology"].ETF != "XLK" {
		t.Errorf("technology ETF = %s, want XLK", byID["technology"].ETF)
	}
}
