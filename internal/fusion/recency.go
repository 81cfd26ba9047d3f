package fusion

import (
	"math"
	"time"
)

// timeLayouts are the timestamp formats accepted from upstream providers
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RecencyWeighter converts a publish timestamp into an exponential decay
// weight in [minWeight, 1.0]. Older items count less, down to the floor.
type RecencyWeighter struct {
	decayHours float64
	minWeight  float64
}

// NewRecencyWeighter creates new recency weighter
func NewRecencyWeighter(decayHours, minWeight float64) *RecencyWeighter {
	if decayHours <= 0 {
		decayHours = 24
	}
	if minWeight < 0 || minWeight > 1 {
		minWeight = 0.1
	}

	return &RecencyWeighter{
		decayHours: decayHours,
		minWeight:  minWeight,
	}
}

// Weight returns the decay weight for a raw timestamp string.
// Unparsable timestamps and future timestamps get full weight: unknown
// age is the least-informative case and must not be penalized.
func (rw *RecencyWeighter) Weight(publishedAt string) float64 {
	published, ok := parseTimestamp(publishedAt)
	if !ok {
		return 1.0
	}

	hours := time.Since(published).Hours()
	if hours <= 0 {
		return 1.0
	}

	weight := rw.minWeight + (1-rw.minWeight)*math.Exp(-hours/rw.decayHours)

	if weight < rw.minWeight {
		return rw.minWeight
	}
	if weight > 1.0 {
		return 1.0
	}

	return weight
}

// parseTimestamp tries each accepted layout in order
func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
