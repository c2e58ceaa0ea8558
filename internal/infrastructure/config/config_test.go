package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "optibiz", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.Equal(t, 10, cfg.Table.PageSize)
	assert.Equal(t, 7, cfg.Dashboard.CashflowDays)
	assert.Equal(t, 5, cfg.Dashboard.TopCustomers)
	assert.Equal(t, 5, cfg.Dashboard.RecentSales)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ERP_LOG_LEVEL", "debug")
	t.Setenv("ERP_TABLE_PAGE_SIZE", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 25, cfg.Table.PageSize)
}

func TestValidate(t *testing.T) {
	t.Run("rejects a non-positive page size", func(t *testing.T) {
		t.Setenv("ERP_TABLE_PAGE_SIZE", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects a non-positive cashflow window", func(t *testing.T) {
		t.Setenv("ERP_DASHBOARD_CASHFLOW_DAYS", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
}
