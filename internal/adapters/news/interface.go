package news

import (
	"context"

	"go.uber.org/zap"

	"github.com/ksatyam/marketpulse/pkg/logger"
	"github.com/ksatyam/marketpulse/pkg/models"
)

// Fetcher represents a single signal source feeding one channel
type Fetcher interface {
	// GetName returns fetcher name
	GetName() string

	// GetChannel returns the channel this fetcher feeds
	GetChannel() models.Channel

	// FetchItems fetches the latest items matching the query
	FetchItems(ctx context.Context, query string, limit int) ([]models.Item, error)

	// IsEnabled returns whether fetcher is enabled
	IsEnabled() bool
}

// Aggregator fans a query out to all enabled fetchers and groups
// results by channel. A channel whose fetchers all fail or return
// nothing is absent from the result, which downstream fusers read as
// a missing source rather than a neutral one.
type Aggregator struct {
	fetchers []Fetcher
	limit    int
}

// NewAggregator creates new signal aggregator
func NewAggregator(fetchers []Fetcher, limit int) *Aggregator {
	if limit <= 0 {
		limit = 20
	}
	return &Aggregator{fetchers: fetchers, limit: limit}
}

// FetchByChannel queries all enabled fetchers in parallel and groups
// items by channel.
func (a *Aggregator) FetchByChannel(ctx context.Context, query string) map[models.Channel][]models.Item {
	type result struct {
		channel models.Channel
		items   []models.Item
		name    string
		err     error
	}

	results := make(chan result, len(a.fetchers))
	enabled := 0

	for _, fetcher := range a.fetchers {
		if !fetcher.IsEnabled() {
			continue
		}
		enabled++

		go func(f Fetcher) {
			items, err := f.FetchItems(ctx, query, a.limit)
			results <- result{channel: f.GetChannel(), items: items, name: f.GetName(), err: err}
		}(fetcher)
	}

	byChannel := make(map[models.Channel][]models.Item)
	for i := 0; i < enabled; i++ {
		res := <-results
		if res.err != nil {
			logger.Warn("fetcher failed",
				zap.String("fetcher", res.name),
				zap.String("query", query),
				zap.Error(res.err),
			)
			continue
		}
		if len(res.items) == 0 {
			continue
		}
		byChannel[res.channel] = append(byChannel[res.channel], res.items...)
	}

	return byChannel
}
