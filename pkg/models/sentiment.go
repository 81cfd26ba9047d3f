package models

import "time"

// Category identifies a news category bucket
type Category string

const (
	CategoryGeneralMarket Category = "general_market"
	CategoryStockSpecific Category = "stock_specific"
	CategorySector        Category = "sector"
)

// SignalStatus distinguishes a score computed from real signal from one
// that was defaulted because data was missing or degraded.
type SignalStatus string

const (
	StatusOK          SignalStatus = "ok"
	StatusDegraded    SignalStatus = "degraded"
	StatusUnavailable SignalStatus = "unavailable"
)

// CategoryScore aggregates one category of weighted items into a single
// score with evidence-based confidence. Derived per call, never cached.
type CategoryScore struct {
	Category           Category       `json:"category"`
	Score              float64        `json:"score"`
	Label              SentimentLabel `json:"label"`
	Confidence         float64        `json:"confidence"`
	ItemCount          int            `json:"item_count"`
	FinancialItemCount int            `json:"financial_item_count"`
	AvgTimeWeight      float64        `json:"avg_time_weight"`
	AvgClassConfidence float64        `json:"avg_class_confidence"`
}

// FinancialRatio returns the share of items classified as financial
func (cs *CategoryScore) FinancialRatio() float64 {
	if cs.ItemCount == 0 {
		return 0
	}
	return float64(cs.FinancialItemCount) / float64(cs.ItemCount)
}

// ChannelResult is the sentiment produced by one independent channel.
// ItemCount == 0 means the channel produced no data; it is excluded
// from fusion rather than treated as a zero score.
type ChannelResult struct {
	Channel    Channel `json:"channel"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	ItemCount  int     `json:"item_count"`
}

// Missing reports whether the channel produced no items
func (cr *ChannelResult) Missing() bool {
	return cr.ItemCount == 0
}

// CombinedSentiment is a fused sentiment result for one ticker or sector.
// WeightsUsed records the renormalized weights applied to each source;
// they sum to 1.0 whenever at least one source was active.
type CombinedSentiment struct {
	Key          string             `json:"key"`
	Score        float64            `json:"score"`
	Label        SentimentLabel     `json:"label"`
	Confidence   float64            `json:"confidence"`
	WeightsUsed  map[string]float64 `json:"weights_used"`
	Status       SignalStatus       `json:"status"`
	StatusReason string             `json:"status_reason,omitempty"`
}

// SentimentTrend represents rolling sentiment metrics over stored runs
type SentimentTrend struct {
	Key            string    `json:"key"`
	Current        float64   `json:"current"`
	LastHourAvg    float64   `json:"last_hour_avg"`
	Last6HoursAvg  float64   `json:"last_6hours_avg"`
	Last24HoursAvg float64   `json:"last_24hours_avg"`
	Momentum       float64   `json:"momentum"`  // rate of change
	Trend          string    `json:"trend"`     // improving, declining, stable
	Direction      string    `json:"direction"` // bullish, bearish, neutral
	UpdatedAt      time.Time `json:"updated_at"`
}
