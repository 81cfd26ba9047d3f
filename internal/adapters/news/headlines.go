package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/ksatyam/marketpulse/pkg/logger"
	"github.com/ksatyam/marketpulse/pkg/models"
)

const yahooSearchURL = "https://query1.finance.yahoo.com/v1/finance/search?q=%s&newsCount=%d&quotesCount=0"

// HeadlinesFetcher fetches financial headlines from Yahoo Finance
type HeadlinesFetcher struct {
	enabled bool
	client  *http.Client
}

// NewHeadlinesFetcher creates new headlines fetcher
func NewHeadlinesFetcher(enabled bool) *HeadlinesFetcher {
	return &HeadlinesFetcher{
		enabled: enabled,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *HeadlinesFetcher) GetName() string {
	return "yahoo_headlines"
}

func (h *HeadlinesFetcher) GetChannel() models.Channel {
	return models.ChannelNews
}

func (h *HeadlinesFetcher) IsEnabled() bool {
	return h.enabled
}

func (h *HeadlinesFetcher) FetchItems(ctx context.Context, query string, limit int) ([]models.Item, error) {
	if !h.enabled {
		return nil, nil
	}

	endpoint := fmt.Sprintf(yahooSearchURL, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "MarketPulse/1.0")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		News []struct {
			Title       string `json:"title"`
			Publisher   string `json:"publisher"`
			PublishTime int64  `json:"providerPublishTime"`
		} `json:"news"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	items := make([]models.Item, 0, len(result.News))
	for _, article := range result.News {
		if article.Title == "" {
			continue
		}

		publishedAt := ""
		if article.PublishTime > 0 {
			publishedAt = time.Unix(article.PublishTime, 0).UTC().Format(time.RFC3339)
		}

		items = append(items, models.Item{
			Text:        article.Title,
			Source:      article.Publisher,
			PublishedAt: publishedAt,
			Ticker:      query,
		})
	}

	logger.Debug("fetched headlines",
		zap.String("query", query),
		zap.Int("count", len(items)),
	)

	return items, nil
}
