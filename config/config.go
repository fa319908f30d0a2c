// Package config loads simulation parameters from the environment, with an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/CodeStranger-Fred/inventory/mdp"
	"github.com/CodeStranger-Fred/inventory/store"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const Prefix = "INVENTORY"

type Config struct {
	Steps    int    `envconfig:"STEPS" default:"50"`
	Seed     uint64 `envconfig:"SEED" default:"1"`
	ChartDir string `envconfig:"CHART_DIR" default:"charts"`

	Store StoreConfig `envconfig:"STORE"`
	Agent AgentConfig `envconfig:"AGENT"`
}

type StoreConfig struct {
	InitialStock float64           `envconfig:"INITIAL_STOCK" default:"50"`
	InitialPrice float64           `envconfig:"INITIAL_PRICE" default:"600"`
	PriceDelta   []float64         `envconfig:"PRICE_DELTA" default:"10,-20,5,-15,0,25,-30,20,-5,0"`
	NoiseStdDev  float64           `envconfig:"NOISE_STDDEV" default:"5"`
	DailySales   SalesDistribution `envconfig:"DAILY_SALES" default:"3:0.2,5:0.3,7:0.3,10:0.2"`
}

type AgentConfig struct {
	InitialAveragePrice float64 `envconfig:"INITIAL_AVERAGE_PRICE" default:"600"`
	Smoothing           float64 `envconfig:"SMOOTHING" default:"0.1"`
	DiscountRatio       float64 `envconfig:"DISCOUNT_RATIO" default:"0.8"`
	DiscountStockFloor  float64 `envconfig:"DISCOUNT_STOCK_FLOOR" default:"10"`
	ReorderPoint        float64 `envconfig:"REORDER_POINT" default:"10"`
	BulkOrder           int     `envconfig:"BULK_ORDER" default:"15"`
	RestockOrder        int     `envconfig:"RESTOCK_ORDER" default:"10"`
}

// SalesDistribution decodes "units:prob,units:prob,..." keeping the order
// the pairs were written in.
type SalesDistribution struct {
	mdp.DiscretePdf[int]
}

func (d *SalesDistribution) Decode(value string) error {
	var outcomes []mdp.Outcome[int]
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		units, prob, ok := strings.Cut(pair, ":")
		if !ok {
			return fmt.Errorf("sales pair %q: want units:probability", pair)
		}
		u, err := strconv.Atoi(strings.TrimSpace(units))
		if err != nil {
			return fmt.Errorf("sales pair %q: %w", pair, err)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(prob), 64)
		if err != nil {
			return fmt.Errorf("sales pair %q: %w", pair, err)
		}
		outcomes = append(outcomes, mdp.Outcome[int]{Value: u, Prob: mdp.Probability(p)})
	}
	d.DiscretePdf = mdp.NewDiscretePdf(outcomes...)
	return nil
}

// Load reads .env if present, then INVENTORY_* variables.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must be >= 0, got %d", c.Steps))
	}
	if len(c.Store.PriceDelta) == 0 {
		errs = append(errs, errors.New("store price delta is empty"))
	}
	if c.Store.NoiseStdDev < 0 {
		errs = append(errs, fmt.Errorf("store noise stddev must be >= 0, got %v", c.Store.NoiseStdDev))
	}
	if c.Store.InitialStock < 0 {
		errs = append(errs, fmt.Errorf("store initial stock must be >= 0, got %v", c.Store.InitialStock))
	}
	if err := c.Store.DailySales.Check(); err != nil {
		errs = append(errs, fmt.Errorf("store daily sales: %w", err))
	}
	if c.Agent.Smoothing <= 0 || c.Agent.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("agent smoothing must be in (0,1], got %v", c.Agent.Smoothing))
	}
	if c.Agent.BulkOrder < 0 || c.Agent.RestockOrder < 0 {
		errs = append(errs, fmt.Errorf("agent order quantities must be >= 0, got %d/%d", c.Agent.BulkOrder, c.Agent.RestockOrder))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) EnvironmentParams() store.EnvironmentParams {
	return store.EnvironmentParams{
		InitialStock: c.Store.InitialStock,
		InitialPrice: c.Store.InitialPrice,
		PriceDelta:   append([]float64(nil), c.Store.PriceDelta...),
		NoiseStdDev:  c.Store.NoiseStdDev,
		DailySales:   c.Store.DailySales.DiscretePdf,
	}
}

func (c *Config) AgentParams() store.AgentParams {
	return store.AgentParams{
		InitialAveragePrice: c.Agent.InitialAveragePrice,
		Smoothing:           c.Agent.Smoothing,
		DiscountRatio:       c.Agent.DiscountRatio,
		DiscountStockFloor:  c.Agent.DiscountStockFloor,
		ReorderPoint:        c.Agent.ReorderPoint,
		BulkOrder:           c.Agent.BulkOrder,
		RestockOrder:        c.Agent.RestockOrder,
	}
}
