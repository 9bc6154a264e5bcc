package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shopspring/decimal"
)

// Config is the static session configuration. Everything here is fixed
// before any computation runs; a bad value is fatal at startup, never
// discovered mid-aggregation.
type Config struct {
	Data struct {
		SentimentFile string `yaml:"sentiment_file"`
		TradesFile    string `yaml:"trades_file"`
	} `yaml:"data"`

	// Timezone governs every day/hour/weekday derivation. The source
	// dataset's timestamps are IST, so the default is Asia/Kolkata; it is
	// a constant per session, never inferred from the host.
	Timezone string `yaml:"timezone"`

	// BucketThresholds are the ascending notional (USD) lower bounds of
	// Small, Medium, Large and XLarge. Anything below the first threshold
	// is Micro. A notional exactly on a threshold lands in the upper
	// bucket.
	BucketThresholds []float64 `yaml:"bucket_thresholds"`

	// MinCoinTrades hides thin coins from per-coin leaderboards.
	MinCoinTrades int `yaml:"min_coin_trades"`

	API struct {
		Port int `yaml:"port"`
	} `yaml:"api"`

	loc *time.Location
}

func defaults() Config {
	cfg := Config{}
	cfg.Data.SentimentFile = "data/fear_greed_index.csv"
	cfg.Data.TradesFile = "data/historical_data.csv"
	cfg.Timezone = "Asia/Kolkata"
	cfg.BucketThresholds = []float64{100, 1000, 10000, 100000}
	cfg.MinCoinTrades = 10
	cfg.API.Port = 3009
	return cfg
}

// Load reads the YAML config at path, falling back to defaults for
// anything unset, and validates the result.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		f, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not open config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(f, &cfg); err != nil {
			return nil, fmt.Errorf("could not parse config %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Data.SentimentFile == "" || c.Data.TradesFile == "" {
		return fmt.Errorf("config: both data.sentiment_file and data.trades_file are required")
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: invalid timezone %q: %w", c.Timezone, err)
	}
	c.loc = loc

	// one threshold fewer than there are buckets
	if len(c.BucketThresholds) != 4 {
		return fmt.Errorf("config: expected 4 bucket_thresholds (Small/Medium/Large/XLarge lower bounds), got %d", len(c.BucketThresholds))
	}
	if !sort.Float64sAreSorted(c.BucketThresholds) {
		return fmt.Errorf("config: bucket_thresholds must be ascending, got %v", c.BucketThresholds)
	}
	for i, t := range c.BucketThresholds {
		if t <= 0 {
			return fmt.Errorf("config: bucket threshold %d must be positive, got %v", i, t)
		}
		if i > 0 && t == c.BucketThresholds[i-1] {
			return fmt.Errorf("config: duplicate bucket threshold %v", t)
		}
	}

	if c.MinCoinTrades < 0 {
		return fmt.Errorf("config: min_coin_trades must not be negative")
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("config: invalid api.port %d", c.API.Port)
	}
	return nil
}

// Location returns the parsed session timezone. Only valid after Load.
func (c *Config) Location() *time.Location {
	return c.loc
}

// Thresholds returns the bucket thresholds as decimals for exact
// comparison against notionals.
func (c *Config) Thresholds() []decimal.Decimal {
	out := make([]decimal.Decimal, len(c.BucketThresholds))
	for i, t := range c.BucketThresholds {
		out[i] = decimal.NewFromFloat(t)
	}
	return out
}
