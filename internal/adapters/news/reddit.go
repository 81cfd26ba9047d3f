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

const redditSearchURL = "https://www.reddit.com/r/%s/search.json?q=%s&restrict_sr=1&sort=new&limit=%d"

// RedditFetcher fetches discussion posts from finance subreddits
type RedditFetcher struct {
	enabled    bool
	subreddits []string
	client     *http.Client
}

// NewRedditFetcher creates new Reddit fetcher
func NewRedditFetcher(enabled bool, subreddits []string) *RedditFetcher {
	if len(subreddits) == 0 {
		subreddits = []string{"stocks", "investing", "wallstreetbets"}
	}

	return &RedditFetcher{
		enabled:    enabled,
		subreddits: subreddits,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *RedditFetcher) GetName() string {
	return "reddit"
}

func (r *RedditFetcher) GetChannel() models.Channel {
	return models.ChannelSocialForum
}

func (r *RedditFetcher) IsEnabled() bool {
	return r.enabled
}

func (r *RedditFetcher) FetchItems(ctx context.Context, query string, limit int) ([]models.Item, error) {
	if !r.enabled {
		return nil, nil
	}

	perSubreddit := limit / len(r.subreddits)
	if perSubreddit < 1 {
		perSubreddit = 1
	}

	items := make([]models.Item, 0, limit)
	for _, subreddit := range r.subreddits {
		posts, err := r.fetchSubreddit(ctx, subreddit, query, perSubreddit)
		if err != nil {
			logger.Warn("failed to fetch reddit posts",
				zap.String("subreddit", subreddit),
				zap.Error(err),
			)
			continue
		}
		items = append(items, posts...)
	}

	logger.Debug("fetched reddit posts",
		zap.String("query", query),
		zap.Int("count", len(items)),
	)

	return items, nil
}

func (r *RedditFetcher) fetchSubreddit(ctx context.Context, subreddit, query string, limit int) ([]models.Item, error) {
	endpoint := fmt.Sprintf(redditSearchURL, subreddit, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Reddit rejects requests without a User-Agent
	req.Header.Set("User-Agent", "MarketPulse/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Data struct {
			Children []struct {
				Data struct {
					Title      string  `json:"title"`
					Selftext   string  `json:"selftext"`
					Author     string  `json:"author"`
					CreatedUTC float64 `json:"created_utc"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	items := make([]models.Item, 0, len(result.Data.Children))
	for _, child := range result.Data.Children {
		post := child.Data

		text := post.Title
		if post.Selftext != "" {
			text += " " + post.Selftext
		}

		items = append(items, models.Item{
			Text:        text,
			Source:      fmt.Sprintf("reddit/r/%s", subreddit),
			PublishedAt: time.Unix(int64(post.CreatedUTC), 0).UTC().Format(time.RFC3339),
			Ticker:      query,
		})
	}

	return items, nil
}
