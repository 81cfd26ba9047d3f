package models

// Channel identifies an independent signal channel
type Channel string

const (
	ChannelNews        Channel = "news"
	ChannelSocialForum Channel = "social_forum"
	ChannelMicroblog   Channel = "microblog"
)

// SentimentLabel represents a classified sentiment direction
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "positive"
	LabelNegative SentimentLabel = "negative"
	LabelNeutral  SentimentLabel = "neutral"

	// Five-tier labels used by the multi-channel fuser
	LabelBullish          SentimentLabel = "bullish"
	LabelSlightlyPositive SentimentLabel = "slightly_positive"
	LabelSlightlyNegative SentimentLabel = "slightly_negative"
	LabelBearish          SentimentLabel = "bearish"
)

// ModelKind selects which sentiment inference capability to use
type ModelKind string

const (
	ModelFinance ModelKind = "finance"
	ModelGeneral ModelKind = "general"
)

// ModelScore is the raw output of a sentiment inference capability:
// a label plus the probability the model assigns to it.
type ModelScore struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}

// Item represents a single raw signal item (news article, forum post,
// microblog post). Fetchers fill Text/Source/PublishedAt; the scoring
// pipeline fills the rest. Items live for one analysis run only.
type Item struct {
	Text                     string     `json:"text"`
	Source                   string     `json:"source"`
	PublishedAt              string     `json:"published_at"`
	Ticker                   string     `json:"ticker,omitempty"`
	Finance                  ModelScore `json:"finance_sentiment"`
	General                  ModelScore `json:"general_sentiment"`
	IsFinancial              bool       `json:"is_financial"`
	ClassificationConfidence float64    `json:"classification_confidence"`
}

// WeightedItem is an Item after recency weighting and model blending.
// BlendedScore already includes the classification-confidence factor,
// so it is the item's full contribution to the weighted mean.
type WeightedItem struct {
	Item
	TimeWeight   float64 `json:"time_weight"`
	BlendedScore float64 `json:"blended_score"`
}
