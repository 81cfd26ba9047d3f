package sectors

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ksatyam/marketpulse/pkg/logger"
	"github.com/ksatyam/marketpulse/pkg/models"
)

// GeneralMarket is the synthetic fallback bucket for items that match no
// specific sector. It is never ranked or allocated.
const GeneralMarket = "general_market"

// Table is the immutable sector reference table: profiles plus a
// ticker-to-sector index. Safe for concurrent reads after construction.
type Table struct {
	profiles []models.SectorProfile
	byID     map[string]models.SectorProfile
	byTicker map[string]string
}

// NewTable builds a table from profiles, validating as it goes
func NewTable(profiles []models.SectorProfile) (*Table, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("sector table is empty")
	}

	byID := make(map[string]models.SectorProfile, len(profiles))
	byTicker := make(map[string]string)

	for _, p := range profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("sector profile without id")
		}
		if p.ID == GeneralMarket {
			return nil, fmt.Errorf("%s is reserved for the fallback bucket", GeneralMarket)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate sector id: %s", p.ID)
		}
		if len(p.Keywords) == 0 {
			return nil, fmt.Errorf("sector %s has no keywords", p.ID)
		}

		byID[p.ID] = p

		for _, ticker := range p.Tickers {
			// First profile listing a ticker wins
			upper := strings.ToUpper(ticker)
			if _, taken := byTicker[upper]; !taken {
				byTicker[upper] = p.ID
			}
		}
	}

	return &Table{
		profiles: profiles,
		byID:     byID,
		byTicker: byTicker,
	}, nil
}

// Load reads the sector reference table from a YAML file
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sector profiles: %w", err)
	}

	var doc struct {
		Sectors []models.SectorProfile `yaml:"sectors"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sector profiles: %w", err)
	}

	table, err := NewTable(doc.Sectors)
	if err != nil {
		return nil, err
	}

	logger.Info("sector profiles loaded",
		zap.String("path", path),
		zap.Int("sectors", len(doc.Sectors)),
	)

	return table, nil
}

// Profiles returns all sector profiles
func (t *Table) Profiles() []models.SectorProfile {
	return t.profiles
}

// Profile returns the profile for a sector id
func (t *Table) Profile(id string) (models.SectorProfile, bool) {
	p, ok := t.byID[id]
	return p, ok
}

// SectorForTicker resolves a ticker to its sector by exact membership
func (t *Table) SectorForTicker(ticker string) (string, bool) {
	id, ok := t.byTicker[strings.ToUpper(ticker)]
	return id, ok
}

// ETF returns the sector's ETF ticker, or empty for unknown sectors
func (t *Table) ETF(id string) string {
	if p, ok := t.byID[id]; ok {
		return p.ETF
	}
	return ""
}
