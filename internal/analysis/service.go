package analysis

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ksatyam/marketpulse/internal/adapters/config"
	"github.com/ksatyam/marketpulse/internal/adapters/news"
	"github.com/ksatyam/marketpulse/internal/allocation"
	"github.com/ksatyam/marketpulse/internal/fusion"
	"github.com/ksatyam/marketpulse/internal/sectors"
	"github.com/ksatyam/marketpulse/pkg/logger"
	"github.com/ksatyam/marketpulse/pkg/models"
)

// marketQuery is the query used for the general market category
const marketQuery = "stock market"

// Service wires fetching, scoring, fusion, ranking and allocation
// into the full analysis pipeline.
type Service struct {
	cfg        *config.Config
	aggregator *news.Aggregator
	scorer     *fusion.ItemScorer
	categories *fusion.CategoryAggregator
	combined   *fusion.CombinedFuser
	channels   *fusion.ChannelFuser
	table      *sectors.Table
	classifier *sectors.Classifier
	ranker     *sectors.Ranker
	allocator  *allocation.Allocator
}

// NewService builds the analysis pipeline from configuration. The
// sentiment provider is injected so tests can use deterministic stubs.
func NewService(cfg *config.Config, provider fusion.SentimentProvider, aggregator *news.Aggregator, table *sectors.Table) *Service {
	scorer := fusion.NewItemScorer(
		provider,
		fusion.NewRelevanceClassifier(cfg.Fusion.RelevanceDensityFactor, cfg.Fusion.RelevanceThreshold),
		fusion.NewRecencyWeighter(cfg.Fusion.DecayHours, cfg.Fusion.MinTimeWeight),
		fusion.NewBlender(cfg.Fusion.BlendFinanceOnTopic, cfg.Fusion.BlendFinanceOffTopic),
	)

	return &Service{
		cfg:        cfg,
		aggregator: aggregator,
		scorer:     scorer,
		categories: fusion.NewCategoryAggregator(cfg.Fusion.CategoryLabelThreshold),
		combined: fusion.NewCombinedFuser(fusion.CombinedFuserConfig{
			GeneralWeight:           cfg.Fusion.GeneralWeight,
			SpecificWeight:          cfg.Fusion.SpecificWeight,
			ConfidenceFactor:        cfg.Fusion.ConfidenceFactor,
			FinancialRatioThreshold: cfg.Fusion.FinancialRatioThreshold,
			FinancialRatioBoost:     cfg.Fusion.FinancialRatioBoost,
			LabelThreshold:          cfg.Fusion.CombinedLabelThreshold,
		}),
		channels: fusion.NewChannelFuser(fusion.ChannelFuserConfig{
			NewsWeight:        cfg.Channels.NewsWeight,
			SocialForumWeight: cfg.Channels.SocialForumWeight,
			MicroblogWeight:   cfg.Channels.MicroblogWeight,
			StrongThreshold:   cfg.Channels.StrongThreshold,
			WeakThreshold:     cfg.Channels.WeakThreshold,
		}),
		table:      table,
		classifier: sectors.NewClassifier(table),
		ranker:     sectors.NewRanker(table, cfg.Sectors.MinItems, cfg.Sectors.RankThreshold),
		allocator:  allocation.NewAllocator(),
	}
}

// FuseSentiment combines pre-fetched general market and stock specific
// items into one combined sentiment for the key.
func (s *Service) FuseSentiment(ctx context.Context, key string, general, specific []models.Item) models.CombinedSentiment {
	generalScore := s.categories.Aggregate(models.CategoryGeneralMarket, s.scorer.ScoreAll(ctx, general))
	specificScore := s.categories.Aggregate(models.CategoryStockSpecific, s.scorer.ScoreAll(ctx, specific))
	return s.combined.Fuse(key, generalScore, specificScore)
}

// FuseChannels merges independently produced channel results for a key
func (s *Service) FuseChannels(key string, results []models.ChannelResult) models.CombinedSentiment {
	return s.channels.Fuse(key, results)
}

// AnalyzeTicker fetches general market and ticker specific items and
// fuses them into one sentiment signal.
func (s *Service) AnalyzeTicker(ctx context.Context, ticker string) models.CombinedSentiment {
	general := flatten(s.aggregator.FetchByChannel(ctx, marketQuery))
	specific := flatten(s.aggregator.FetchByChannel(ctx, ticker))

	result := s.FuseSentiment(ctx, ticker, general, specific)

	logger.Info("ticker analyzed",
		zap.String("ticker", ticker),
		zap.Float64("score", result.Score),
		zap.Float64("confidence", result.Confidence),
		zap.String("label", string(result.Label)),
		zap.String("status", string(result.Status)),
	)

	return result
}

// AnalyzeChannels fetches per-channel items for a key and fuses the
// channel scores. Channels that returned nothing stay missing rather
// than contributing a neutral zero.
func (s *Service) AnalyzeChannels(ctx context.Context, key string) models.CombinedSentiment {
	byChannel := s.aggregator.FetchByChannel(ctx, key)

	results := make([]models.ChannelResult, 0, len(byChannel))
	for channel, items := range byChannel {
		agg := s.categories.Aggregate(models.CategoryStockSpecific, s.scorer.ScoreAll(ctx, items))
		results = append(results, models.ChannelResult{
			Channel:    channel,
			Score:      agg.Score,
			Confidence: agg.Confidence,
			ItemCount:  agg.ItemCount,
		})
	}

	return s.channels.Fuse(key, results)
}

// AnalyzeSectors fetches broad market items, attributes each to
// sectors and ranks the sectors by conviction.
func (s *Service) AnalyzeSectors(ctx context.Context) models.SectorRanking {
	items := flatten(s.aggregator.FetchByChannel(ctx, marketQuery))
	scored := s.scorer.ScoreAll(ctx, items)

	bySector := make(map[string][]models.WeightedItem)
	for _, item := range scored {
		for _, match := range s.classifier.Classify(item.Text, "", item.Ticker) {
			weighted := item
			weighted.BlendedScore *= match.Confidence
			bySector[match.SectorID] = append(bySector[match.SectorID], weighted)
		}
	}

	scores := make(map[string]models.CategoryScore, len(bySector))
	for sectorID, sectorItems := range bySector {
		scores[sectorID] = s.categories.Aggregate(models.CategorySector, sectorItems)
	}

	ranking := s.ranker.Rank(scores)

	logger.Info("sectors ranked",
		zap.Int("ranked", len(ranking.Ranks)),
		zap.Strings("overweight", ranking.Overweight),
		zap.Strings("underweight", ranking.Underweight),
	)

	return ranking
}

// BuildPortfolio runs the full pipeline: rank sectors, analyze the
// member stocks of selected sectors, and size positions.
func (s *Service) BuildPortfolio(ctx context.Context) (*models.AllocationPlan, error) {
	ranking := s.AnalyzeSectors(ctx)

	stocksBySector := make(map[string][]allocation.StockSignal)
	for _, rank := range ranking.Ranks {
		profile, ok := s.table.Profile(rank.SectorID)
		if !ok {
			continue
		}

		// Analyze extra candidates so selection has choices
		candidates := profile.Tickers
		maxCandidates := s.cfg.Allocation.StocksPerSector * 2
		if len(candidates) > maxCandidates {
			candidates = candidates[:maxCandidates]
		}

		for _, ticker := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("portfolio build cancelled: %w", err)
			}

			sentiment := s.AnalyzeTicker(ctx, ticker)
			if sentiment.Status == models.StatusUnavailable {
				continue
			}

			stocksBySector[rank.SectorID] = append(stocksBySector[rank.SectorID], allocation.StockSignal{
				Ticker:     ticker,
				Score:      sentiment.Score,
				Confidence: sentiment.Confidence,
			})
		}
	}

	plan := s.allocator.Allocate(ranking, stocksBySector, allocation.Params{
		PortfolioSize:   decimal.NewFromFloat(s.cfg.Allocation.PortfolioSize),
		RiskTolerance:   models.RiskTolerance(s.cfg.Allocation.RiskTolerance),
		MaxSectors:      s.cfg.Allocation.MaxSectors,
		StocksPerSector: s.cfg.Allocation.StocksPerSector,
	})

	return plan, nil
}

// flatten merges the per-channel item map into one slice
func flatten(byChannel map[models.Channel][]models.Item) []models.Item {
	var items []models.Item
	for _, channelItems := range byChannel {
		items = append(items, channelItems...)
	}
	return items
}
