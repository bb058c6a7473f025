package config

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

var App *AppConfig

type appConfigFile struct {
	Tier1Rate          string `yaml:"tier1_rate"`
	Tier2Rate          string `yaml:"tier2_rate"`
	MinimumWithdrawal  string `yaml:"minimum_withdrawal"`
	HoldDays           int    `yaml:"hold_days"`
	AtomicUpdates      bool   `yaml:"atomic_updates"`
	RecentTransactions int    `yaml:"recent_transactions"`
}

// AppConfig holds the business settings of the balance engine. Rates and
// limits live in config/engine.yml so they can change without a deploy.
type AppConfig struct {
	Tier1Rate          decimal.Decimal
	Tier2Rate          decimal.Decimal
	MinimumWithdrawal  decimal.Decimal
	HoldDays           int
	AtomicUpdates      bool
	RecentTransactions int
}

func (c *AppConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldDays) * 24 * time.Hour
}

func LoadAppConfig() error {
	path := os.Getenv("ENGINE_CONFIG")
	if path == "" {
		path = "config/engine.yml"
	}

	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	file := &appConfigFile{}
	if err := yaml.Unmarshal(buf, file); err != nil {
		return err
	}

	tier1_rate, err := decimal.NewFromString(file.Tier1Rate)
	if err != nil {
		return err
	}
	tier2_rate, err := decimal.NewFromString(file.Tier2Rate)
	if err != nil {
		return err
	}
	minimum_withdrawal, err := decimal.NewFromString(file.MinimumWithdrawal)
	if err != nil {
		return err
	}

	c := &AppConfig{
		Tier1Rate:          tier1_rate,
		Tier2Rate:          tier2_rate,
		MinimumWithdrawal:  minimum_withdrawal,
		HoldDays:           file.HoldDays,
		AtomicUpdates:      file.AtomicUpdates,
		RecentTransactions: file.RecentTransactions,
	}

	if c.RecentTransactions == 0 {
		c.RecentTransactions = 10
	}

	App = c

	return nil
}
