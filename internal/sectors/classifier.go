package sectors

import (
	"regexp"
	"sort"
	"strings"
)

// Match is a single sector attribution for a piece of text
type Match struct {
	SectorID   string
	Confidence float64
	Method     string
}

// Classification methods, strongest first
const (
	MethodTicker   = "ticker"
	MethodKeyword  = "keyword"
	MethodPattern  = "pattern"
	MethodFallback = "fallback"
)

const (
	keywordDensityScale = 10.0
	keywordKeepFloor    = 0.1
	patternMatchWeight  = 0.3
	patternNewFloor     = 0.2
	patternBoostFactor  = 0.5
	fallbackConfidence  = 0.5
)

// sectorPatterns refine the four sectors that dominate market news and
// whose vocabulary the keyword lists undercount.
var sectorPatterns = map[string]*regexp.Regexp{
	"technology": regexp.MustCompile(`(?i)\b(tech|software|app|platform|cloud|AI|chip|semiconductor)\b`),
	"healthcare": regexp.MustCompile(`(?i)\b(health|medical|pharma|drug|vaccine|clinical|FDA)\b`),
	"financial":  regexp.MustCompile(`(?i)\b(bank|finance|credit|trading|investment|fintech)\b`),
	"energy":     regexp.MustCompile(`(?i)\b(oil|gas|energy|solar|wind|nuclear|battery)\b`),
}

// Classifier attributes text to sectors using ticker membership,
// keyword density and regex pattern boosts, in that order of strength.
type Classifier struct {
	table *Table
}

// NewClassifier creates a sector classifier over the given table
func NewClassifier(table *Table) *Classifier {
	return &Classifier{table: table}
}

// Classify attributes a headline and summary to sectors. A known ticker
// short-circuits with full confidence. Otherwise keyword and pattern
// evidence is combined, and with no evidence at all the item lands in
// the general market bucket.
func (c *Classifier) Classify(headline, summary, ticker string) []Match {
	if ticker != "" {
		if sectorID, ok := c.table.SectorForTicker(ticker); ok {
			return []Match{{SectorID: sectorID, Confidence: 1.0, Method: MethodTicker}}
		}
	}

	text := strings.ToLower(headline + " " + summary)

	confidence := make(map[string]float64)
	method := make(map[string]string)

	for _, profile := range c.table.Profiles() {
		matches := 0
		for _, kw := range profile.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		conf := float64(matches) / float64(len(profile.Keywords)) * keywordDensityScale
		if conf > 1.0 {
			conf = 1.0
		}
		if conf > keywordKeepFloor {
			confidence[profile.ID] = conf
			method[profile.ID] = MethodKeyword
		}
	}

	for sectorID, pattern := range sectorPatterns {
		hits := pattern.FindAllString(text, -1)
		if len(hits) == 0 {
			continue
		}

		enhanced := float64(len(hits)) * patternMatchWeight
		if enhanced > 1.0 {
			enhanced = 1.0
		}

		if existing, ok := confidence[sectorID]; ok {
			boosted := existing + enhanced*patternBoostFactor
			if boosted > 1.0 {
				boosted = 1.0
			}
			confidence[sectorID] = boosted
		} else if enhanced > patternNewFloor {
			confidence[sectorID] = enhanced
			method[sectorID] = MethodPattern
		}
	}

	if len(confidence) == 0 {
		return []Match{{SectorID: GeneralMarket, Confidence: fallbackConfidence, Method: MethodFallback}}
	}

	out := make([]Match, 0, len(confidence))
	for sectorID, conf := range confidence {
		out = append(out, Match{SectorID: sectorID, Confidence: conf, Method: method[sectorID]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].SectorID < out[j].SectorID
	})

	return out
}
