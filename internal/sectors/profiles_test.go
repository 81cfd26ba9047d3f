package sectors

import (
	"os"
	"path/filepath"
	"testing"
)

const profilesFixture = `sectors:
  - id: technology
    etf: XLK
    tickers: [AAPL, MSFT]
    keywords:
      - tech
      - software
  - id: energy
    etf: XLE
    tickers: [XOM]
    keywords:
      - oil
      - gas
`

func TestLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sectors.yaml")
	if err := os.WriteFile(path, []byte(profilesFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(table.Profiles()) != 2 {
		t.Fatalf("Profiles() = %d, want 2", len(table.Profiles()))
	}

	profile, ok := table.Profile("technology")
	if !ok {
		t.Fatal("technology profile missing")
	}
	if profile.ETF != "XLK" {
		t.Errorf("ETF = %s, want XLK", profile.ETF)
	}
	if len(profile.Tickers) != 2 || len(profile.Keywords) != 2 {
		t.Errorf("profile lists = %d tickers, %d keywords; want 2, 2",
			len(profile.Tickers), len(profile.Keywords))
	}

	if id, ok := table.SectorForTicker("xom"); !ok || id != "energy" {
		t.Errorf("SectorForTicker(xom) = %q, %v; want energy, true", id, ok)
	}
	if table.ETF("energy") != "XLE" {
		t.Errorf("ETF(energy) = %s, want XLE", table.ETF("energy"))
	}
}

func TestLoadProfilesMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() error = nil, want error")
	}
}

func TestLoadProfilesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sectors: [not: valid"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want error")
	}
}
