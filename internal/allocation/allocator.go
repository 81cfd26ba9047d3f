package allocation

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ksatyam/marketpulse/pkg/logger"
	"github.com/ksatyam/marketpulse/pkg/models"
)

// StockSignal is the per-ticker sentiment input to the allocator
type StockSignal struct {
	Ticker     string
	Score      float64
	Confidence float64
}

// Params configure a single allocation run
type Params struct {
	PortfolioSize   decimal.Decimal
	RiskTolerance   models.RiskTolerance
	MaxSectors      int
	StocksPerSector int
}

// Allocator turns a sector ranking and per-stock signals into a
// dollar allocation plan. Weights combine an equal-weight base with a
// sentiment performance tilt, then a final renormalization guarantees
// sector amounts sum exactly to the portfolio size.
type Allocator struct {
	assessor *Assessor
}

// NewAllocator creates a portfolio allocator
func NewAllocator() *Allocator {
	return &Allocator{assessor: NewAssessor()}
}

// Allocate builds an allocation plan. Sectors failing the tolerance
// filter, ranked below MaxSectors, or lacking any stock signal are
// skipped. An empty selection yields an empty plan, not an error.
func (a *Allocator) Allocate(ranking models.SectorRanking, stocksBySector map[string][]StockSignal, params Params) *models.AllocationPlan {
	profile := ProfileFor(params.RiskTolerance)

	plan := &models.AllocationPlan{
		PortfolioSize: params.PortfolioSize,
		RiskTolerance: params.RiskTolerance,
	}

	type candidate struct {
		rank   models.SectorRank
		stocks []StockSignal
	}

	selected := make([]candidate, 0, params.MaxSectors)
	for _, rank := range ranking.Ranks {
		if len(selected) >= params.MaxSectors {
			break
		}
		if !sectorPasses(params.RiskTolerance, rank) {
			continue
		}

		stocks := topStocks(stocksBySector[rank.SectorID], params.StocksPerSector)
		if len(stocks) == 0 {
			logger.Debug("sector skipped, no stock signals",
				zap.String("sector", rank.SectorID),
			)
			continue
		}

		selected = append(selected, candidate{rank: rank, stocks: stocks})
	}

	if len(selected) == 0 {
		logger.Info("no sectors passed allocation filters",
			zap.String("risk_tolerance", string(params.RiskTolerance)),
		)
		return plan
	}

	n := float64(len(selected))
	base := 1.0 / n

	sectorWeights := make([]float64, len(selected))
	for i, c := range selected {
		perf := c.rank.Score * c.rank.Confidence
		w := base*profile.EqualWeight + perf*profile.PerformanceWeight/n
		if w < 0 {
			w = 0
		}
		sectorWeights[i] = w
	}

	sectorAmounts := distribute(params.PortfolioSize, sectorWeights)
	if sectorAmounts == nil {
		return plan
	}

	plan.Sectors = make([]models.SectorAllocation, 0, len(selected))
	for i, c := range selected {
		sa := models.SectorAllocation{
			SectorID:    c.rank.SectorID,
			Amount:      sectorAmounts[i],
			Pct:         pctOf(sectorAmounts[i], params.PortfolioSize),
			SectorScore: c.rank.Score,
		}

		m := float64(len(c.stocks))
		stockBase := 1.0 / m
		stockWeights := make([]float64, len(c.stocks))
		for j, s := range c.stocks {
			w := stockBase*profile.EqualWeight + s.Score*s.Confidence*profile.PerformanceWeight/m
			if w < 0 {
				w = 0
			}
			stockWeights[j] = w
		}

		stockAmounts := distribute(sectorAmounts[i], stockWeights)
		if stockAmounts == nil {
			// All tilted weights floored to zero, fall back to an
			// equal split so the sector amount stays fully assigned.
			equal := make([]float64, len(c.stocks))
			for j := range equal {
				equal[j] = stockBase
			}
			stockAmounts = distribute(sectorAmounts[i], equal)
		}
		for j, s := range c.stocks {
			amount := stockAmounts[j]
			sa.Stocks = append(sa.Stocks, models.StockAllocation{
				Ticker:         s.Ticker,
				Amount:         amount,
				Pct:            pctOf(amount, params.PortfolioSize),
				Score:          s.Score,
				Confidence:     s.Confidence,
				Recommendation: models.RecommendationFor(s.Score, s.Confidence),
			})
		}

		plan.Sectors = append(plan.Sectors, sa)
	}

	plan.Risk = a.assessor.Assess(plan.Sectors)

	logger.Info("allocation plan built",
		zap.String("risk_tolerance", string(params.RiskTolerance)),
		zap.Int("sectors", len(plan.Sectors)),
		zap.Int("positions", plan.Positions()),
		zap.String("total", plan.TotalAllocated().StringFixed(2)),
	)

	return plan
}

// topStocks sorts signals by score times confidence and keeps the
// strongest limit entries. Ticker breaks ties for stable output.
func topStocks(signals []StockSignal, limit int) []StockSignal {
	if len(signals) == 0 || limit <= 0 {
		return nil
	}

	sorted := make([]StockSignal, len(signals))
	copy(sorted, signals)
	sort.Slice(sorted, func(i, j int) bool {
		ci := sorted[i].Score * sorted[i].Confidence
		cj := sorted[j].Score * sorted[j].Confidence
		if ci != cj {
			return ci > cj
		}
		return sorted[i].Ticker < sorted[j].Ticker
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// distribute splits total across weights proportionally, rounding each
// share to cents. The last positive-weight share absorbs the rounding
// remainder so the parts always sum exactly to total. A zero weight sum
// returns nil.
func distribute(total decimal.Decimal, weights []float64) []decimal.Decimal {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return nil
	}

	amounts := make([]decimal.Decimal, len(weights))
	allocated := decimal.Zero
	last := -1
	for i, w := range weights {
		if w > 0 {
			last = i
		}
		share := total.Mul(decimal.NewFromFloat(w / sum)).Round(2)
		amounts[i] = share
		allocated = allocated.Add(share)
	}

	if last >= 0 {
		amounts[last] = amounts[last].Add(total.Sub(allocated))
	}
	return amounts
}

func pctOf(amount, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
