package config

import (
	"path/filepath"
	"testing"
	"time"

	"mini-foerderportal/internal/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment does
// not leak into a test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_MODE", "PORT", "DB_DRIVER", "DB_DSN", "FIXTURES_PATH", "RESET_SCHEDULE",
		"RATE_LIMIT_PER_MINUTE", "SIM_DELAY_MS", "API_DELAY_MS", "API_LATENCY_MS", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppMode)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, InMemoryDSN, cfg.Database.DSN)
	assert.Zero(t, cfg.Simulation.DefaultDelay)
	assert.Empty(t, cfg.FixturesPath)
	assert.Empty(t, cfg.ResetSchedule)
	assert.Zero(t, cfg.RateLimitPerMinute)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_MODE", " prod ")
	t.Setenv("PORT", "8080")
	t.Setenv("API_DELAY_MS", "250")
	t.Setenv("RESET_SCHEDULE", "@hourly")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Simulation.DefaultDelay)
	assert.Equal(t, "@hourly", cfg.ResetSchedule)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, "http://localhost:5173", cfg.GetAllowedOrigins())
}

func TestLoad_SimDelayPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_DELAY_MS", "100")
	t.Setenv("API_LATENCY_MS", "900")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.Simulation.DefaultDelay)

	t.Setenv("SIM_DELAY_MS", "-5")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Simulation.DefaultDelay)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_MODE", "staging")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("DB_DRIVER", "oracle")
	_, err = Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	_, err = Load()
	assert.ErrorContains(t, err, "DB_DSN")
}

func TestLoadFixtures(t *testing.T) {
	d, err := LoadFixtures(&Config{})
	require.NoError(t, err)
	assert.Equal(t, fixtures.Default(), d)

	path := filepath.Join(t.TempDir(), "db.json")
	custom := fixtures.Default()
	custom.Applications = nil
	require.NoError(t, fixtures.Write(path, custom))

	d, err = LoadFixtures(&Config{FixturesPath: path})
	require.NoError(t, err)
	assert.Empty(t, d.Applications)

	_, err = LoadFixtures(&Config{FixturesPath: filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}

func TestOpenInMemory_IsPrivate(t *testing.T) {
	a, err := OpenInMemory()
	require.NoError(t, err)
	defer CloseDatabase(a)

	b, err := OpenInMemory()
	require.NoError(t, err)
	defer CloseDatabase(b)

	require.NoError(t, a.Exec("CREATE TABLE probe (id INTEGER)").Error)
	assert.True(t, a.Migrator().HasTable("probe"))
	assert.False(t, b.Migrator().HasTable("probe"))
}

func TestCloseDatabase_Nil(t *testing.T) {
	assert.NoError(t, CloseDatabase(nil))
}
