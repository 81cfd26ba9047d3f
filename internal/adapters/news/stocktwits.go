package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ksatyam/marketpulse/pkg/logger"
	"github.com/ksatyam/marketpulse/pkg/models"
)

const stocktwitsStreamURL = "https://api.stocktwits.com/api/2/streams/symbol/%s.json?limit=%d"

// StocktwitsFetcher fetches short posts from the StockTwits symbol stream
type StocktwitsFetcher struct {
	enabled bool
	client  *http.Client
}

// NewStocktwitsFetcher creates new StockTwits fetcher
func NewStocktwitsFetcher(enabled bool) *StocktwitsFetcher {
	return &StocktwitsFetcher{
		enabled: enabled,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *StocktwitsFetcher) GetName() string {
	return "stocktwits"
}

func (s *StocktwitsFetcher) GetChannel() models.Channel {
	return models.ChannelMicroblog
}

func (s *StocktwitsFetcher) IsEnabled() bool {
	return s.enabled
}

func (s *StocktwitsFetcher) FetchItems(ctx context.Context, query string, limit int) ([]models.Item, error) {
	if !s.enabled {
		return nil, nil
	}

	symbol := strings.ToUpper(strings.TrimSpace(query))
	endpoint := fmt.Sprintf(stocktwitsStreamURL, symbol, limit)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "MarketPulse/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Messages []struct {
			Body      string `json:"body"`
			CreatedAt string `json:"created_at"`
			User      struct {
				Username string `json:"username"`
			} `json:"user"`
		} `json:"messages"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	items := make([]models.Item, 0, len(result.Messages))
	for _, msg := range result.Messages {
		if msg.Body == "" {
			continue
		}

		items = append(items, models.Item{
			Text:        msg.Body,
			Source:      fmt.Sprintf("stocktwits/%s", msg.User.Username),
			PublishedAt: msg.CreatedAt,
			Ticker:      symbol,
		})
	}

	logger.Debug("fetched stocktwits messages",
		zap.String("symbol", symbol),
		zap.Int("count", len(items)),
	)

	return items, nil
}
