// Package config loads application configuration from an optional TOML
// file plus environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Log       LogConfig
	Table     TableConfig
	Dashboard DashboardConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// TableConfig holds table view defaults
type TableConfig struct {
	PageSize int
}

// DashboardConfig holds the fixed chart dimensions of the overview page
type DashboardConfig struct {
	CashflowDays int
	TopCustomers int
	RecentSales  int
}

// Load loads configuration from a TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with ERP_ prefix (e.g. ERP_LOG_LEVEL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("ERP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Table: TableConfig{
			PageSize: v.GetInt("table.page_size"),
		},
		Dashboard: DashboardConfig{
			CashflowDays: v.GetInt("dashboard.cashflow_days"),
			TopCustomers: v.GetInt("dashboard.top_customers"),
			RecentSales:  v.GetInt("dashboard.recent_sales"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "optibiz")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("table.page_size", 10)
	v.SetDefault("dashboard.cashflow_days", 7)
	v.SetDefault("dashboard.top_customers", 5)
	v.SetDefault("dashboard.recent_sales", 5)
}

func (c *Config) validate() error {
	if c.Table.PageSize <= 0 {
		return fmt.Errorf("table.page_size must be positive, got %d", c.Table.PageSize)
	}
	if c.Dashboard.CashflowDays <= 0 {
		return fmt.Errorf("dashboard.cashflow_days must be positive, got %d", c.Dashboard.CashflowDays)
	}
	return nil
}
