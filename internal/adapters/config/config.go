package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	Fusion     FusionConfig     `envconfig:"FUSION"`
	Channels   ChannelsConfig   `envconfig:"CHANNELS"`
	Sectors    SectorsConfig    `envconfig:"SECTORS"`
	Allocation AllocationConfig `envconfig:"ALLOCATION"`
	Analysis   AnalysisConfig   `envconfig:"ANALYSIS"`
	Database   DatabaseConfig   `envconfig:"DATABASE"`
	Logging    LoggingConfig    `envconfig:"LOGGING"`
}

// FusionConfig represents signal weighting and fusion parameters.
// Label thresholds are deliberately separate per fuser; the category and
// combined fusers classify at different sensitivities.
type FusionConfig struct {
	DecayHours              float64 `envconfig:"FUSION_DECAY_HOURS" default:"24"`
	MinTimeWeight           float64 `envconfig:"FUSION_MIN_TIME_WEIGHT" default:"0.1"`
	CategoryLabelThreshold  float64 `envconfig:"FUSION_CATEGORY_LABEL_THRESHOLD" default:"0.1"`
	CombinedLabelThreshold  float64 `envconfig:"FUSION_COMBINED_LABEL_THRESHOLD" default:"0.12"`
	GeneralWeight           float64 `envconfig:"FUSION_GENERAL_WEIGHT" default:"0.4"`
	SpecificWeight          float64 `envconfig:"FUSION_SPECIFIC_WEIGHT" default:"0.6"`
	ConfidenceFactor        float64 `envconfig:"FUSION_CONFIDENCE_FACTOR" default:"0.2"`
	FinancialRatioThreshold float64 `envconfig:"FUSION_FINANCIAL_RATIO_THRESHOLD" default:"0.7"`
	FinancialRatioBoost     float64 `envconfig:"FUSION_FINANCIAL_RATIO_BOOST" default:"0.1"`
	RelevanceDensityFactor  float64 `envconfig:"FUSION_RELEVANCE_DENSITY_FACTOR" default:"0.1"`
	RelevanceThreshold      float64 `envconfig:"FUSION_RELEVANCE_THRESHOLD" default:"0.2"`
	BlendFinanceOnTopic     float64 `envconfig:"FUSION_BLEND_FINANCE_ON_TOPIC" default:"0.8"`
	BlendFinanceOffTopic    float64 `envconfig:"FUSION_BLEND_FINANCE_OFF_TOPIC" default:"0.4"`
}

// ChannelsConfig represents multi-channel fusion parameters
type ChannelsConfig struct {
	NewsWeight        float64 `envconfig:"CHANNELS_NEWS_WEIGHT" default:"0.4"`
	SocialForumWeight float64 `envconfig:"CHANNELS_SOCIAL_FORUM_WEIGHT" default:"0.3"`
	MicroblogWeight   float64 `envconfig:"CHANNELS_MICROBLOG_WEIGHT" default:"0.3"`
	StrongThreshold   float64 `envconfig:"CHANNELS_STRONG_THRESHOLD" default:"0.2"`
	WeakThreshold     float64 `envconfig:"CHANNELS_WEAK_THRESHOLD" default:"0.05"`
}

// SectorsConfig represents sector classification and ranking parameters
type SectorsConfig struct {
	ProfilesPath  string  `envconfig:"SECTORS_PROFILES_PATH" default:"./config/sectors.yaml"`
	MinItems      int     `envconfig:"SECTORS_MIN_ITEMS" default:"2"`
	RankThreshold float64 `envconfig:"SECTORS_RANK_THRESHOLD" default:"0.1"`
}

// AllocationConfig represents portfolio allocation defaults
type AllocationConfig struct {
	PortfolioSize   float64 `envconfig:"ALLOCATION_PORTFOLIO_SIZE" default:"100000"`
	RiskTolerance   string  `envconfig:"ALLOCATION_RISK_TOLERANCE" default:"moderate"`
	MaxSectors      int     `envconfig:"ALLOCATION_MAX_SECTORS" default:"5"`
	StocksPerSector int     `envconfig:"ALLOCATION_STOCKS_PER_SECTOR" default:"3"`
}

// AnalysisConfig represents the periodic analysis worker settings
type AnalysisConfig struct {
	Tickers   []string      `envconfig:"ANALYSIS_TICKERS" default:"AAPL,MSFT,GOOGL"`
	Interval  time.Duration `envconfig:"ANALYSIS_INTERVAL" default:"30m"`
	ItemLimit int           `envconfig:"ANALYSIS_ITEM_LIMIT" default:"20"`
}

// DatabaseConfig represents database connection parameters. Persistence
// is optional; with Enabled=false the pipeline runs fully in memory.
type DatabaseConfig struct {
	Enabled  bool   `envconfig:"DB_ENABLED" default:"false"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"marketpulse"`
	User     string `envconfig:"DB_USER" required:"false"`
	Password string `envconfig:"DB_PASSWORD" required:"false"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Fusion.DecayHours <= 0 {
		return fmt.Errorf("decay_hours must be positive")
	}
	if c.Fusion.MinTimeWeight < 0 || c.Fusion.MinTimeWeight > 1 {
		return fmt.Errorf("min_time_weight must be between 0 and 1")
	}
	if c.Fusion.GeneralWeight <= 0 || c.Fusion.SpecificWeight <= 0 {
		return fmt.Errorf("category base weights must be positive")
	}
	if c.Channels.NewsWeight <= 0 || c.Channels.SocialForumWeight <= 0 || c.Channels.MicroblogWeight <= 0 {
		return fmt.Errorf("channel base weights must be positive")
	}
	if c.Sectors.MinItems < 1 {
		return fmt.Errorf("sectors min_items must be at least 1")
	}
	if c.Allocation.PortfolioSize <= 0 {
		return fmt.Errorf("portfolio_size must be positive")
	}
	if c.Allocation.MaxSectors < 1 || c.Allocation.StocksPerSector < 1 {
		return fmt.Errorf("max_sectors and stocks_per_sector must be at least 1")
	}

	switch c.Allocation.RiskTolerance {
	case "conservative", "moderate", "aggressive":
	default:
		return fmt.Errorf("unknown risk_tolerance: %s", c.Allocation.RiskTolerance)
	}

	if c.Database.Enabled && c.Database.User == "" {
		return fmt.Errorf("db_user is required when database is enabled")
	}

	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}
