package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ksatyam/marketpulse/internal/analysis"
	"github.com/ksatyam/marketpulse/internal/store"
	"github.com/ksatyam/marketpulse/pkg/logger"
	"github.com/ksatyam/marketpulse/pkg/models"
)

// SentimentWorker periodically analyzes the configured tickers,
// persists the results and derives rolling trend metrics.
type SentimentWorker struct {
	service *analysis.Service
	repo    *store.Repository
	tickers []string
}

// NewSentimentWorker creates new sentiment worker. repo may be nil,
// in which case results are not persisted and trends are skipped.
func NewSentimentWorker(service *analysis.Service, repo *store.Repository, tickers []string) *SentimentWorker {
	return &SentimentWorker{
		service: service,
		repo:    repo,
		tickers: tickers,
	}
}

// Name returns worker name
func (sw *SentimentWorker) Name() string {
	return "sentiment"
}

// Run performs one analysis cycle over all configured tickers
func (sw *SentimentWorker) Run(ctx context.Context) error {
	for _, ticker := range sw.tickers {
		if err := ctx.Err(); err != nil {
			return err
		}

		result := sw.service.AnalyzeTicker(ctx, ticker)
		if result.Status == models.StatusUnavailable {
			logger.Warn("no signal for ticker",
				zap.String("ticker", ticker),
				zap.String("reason", result.StatusReason),
			)
			continue
		}

		if sw.repo == nil {
			continue
		}

		if _, err := sw.repo.SaveRun(ctx, result); err != nil {
			logger.Error("failed to persist analysis run",
				zap.String("ticker", ticker),
				zap.Error(err),
			)
			continue
		}

		trend, err := sw.computeTrend(ctx, ticker, result.Score)
		if err != nil {
			logger.Error("failed to compute sentiment trend",
				zap.String("ticker", ticker),
				zap.Error(err),
			)
			continue
		}

		logger.Info("sentiment trend updated",
			zap.String("ticker", ticker),
			zap.Float64("current", trend.Current),
			zap.Float64("1h_avg", trend.LastHourAvg),
			zap.Float64("6h_avg", trend.Last6HoursAvg),
			zap.Float64("24h_avg", trend.Last24HoursAvg),
			zap.Float64("momentum", trend.Momentum),
			zap.String("trend", trend.Trend),
			zap.String("direction", trend.Direction),
		)
	}

	return nil
}

// computeTrend derives momentum and direction from the stored history
func (sw *SentimentWorker) computeTrend(ctx context.Context, ticker string, current float64) (*models.SentimentTrend, error) {
	lastHour, _, err := sw.repo.AverageScore(ctx, ticker, time.Hour)
	if err != nil {
		return nil, err
	}
	last6Hours, _, err := sw.repo.AverageScore(ctx, ticker, 6*time.Hour)
	if err != nil {
		return nil, err
	}
	last24Hours, _, err := sw.repo.AverageScore(ctx, ticker, 24*time.Hour)
	if err != nil {
		return nil, err
	}

	return buildTrend(ticker, current, lastHour, last6Hours, last24Hours), nil
}

// buildTrend classifies momentum and direction from window averages
func buildTrend(ticker string, current, lastHour, last6Hours, last24Hours float64) *models.SentimentTrend {
	momentum := lastHour - last6Hours

	trend := "stable"
	if momentum > 0.1 {
		trend = "improving"
	} else if momentum < -0.1 {
		trend = "declining"
	}

	direction := "neutral"
	if last6Hours > 0.2 {
		direction = "bullish"
	} else if last6Hours < -0.2 {
		direction = "bearish"
	}

	return &models.SentimentTrend{
		Key:            ticker,
		Current:        current,
		LastHourAvg:    lastHour,
		Last6HoursAvg:  last6Hours,
		Last24HoursAvg: last24Hours,
		Momentum:       momentum,
		Trend:          trend,
		Direction:      direction,
		UpdatedAt:      time.Now().UTC(),
	}
}
