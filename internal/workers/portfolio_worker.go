package workers

import (
	"context"

	"go.uber.org/zap"

	"github.com/ksatyam/marketpulse/internal/analysis"
	"github.com/ksatyam/marketpulse/pkg/logger"
)

// PortfolioWorker periodically rebuilds the allocation plan from the
// latest sector ranking.
type PortfolioWorker struct {
	service *analysis.Service
}

// NewPortfolioWorker creates new portfolio worker
func NewPortfolioWorker(service *analysis.Service) *PortfolioWorker {
	return &PortfolioWorker{service: service}
}

// Name returns worker name
func (pw *PortfolioWorker) Name() string {
	return "portfolio"
}

// Run builds one allocation plan
func (pw *PortfolioWorker) Run(ctx context.Context) error {
	plan, err := pw.service.BuildPortfolio(ctx)
	if err != nil {
		return err
	}

	if len(plan.Sectors) == 0 {
		logger.Info("no allocation this cycle, no sectors passed filters")
		return nil
	}

	for _, sector := range plan.Sectors {
		logger.Info("sector allocation",
			zap.String("sector", sector.SectorID),
			zap.String("amount", sector.Amount.StringFixed(2)),
			zap.Float64("pct", sector.Pct),
			zap.Int("stocks", len(sector.Stocks)),
		)
	}

	logger.Info("portfolio plan built",
		zap.String("total", plan.TotalAllocated().StringFixed(2)),
		zap.Int("positions", plan.Positions()),
		zap.String("risk_tier", plan.Risk.RiskTier),
	)

	return nil
}
