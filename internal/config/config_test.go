package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.GetSheet())
	assert.Equal(t, DefaultTopRuns, cfg.GetTopRuns())
	assert.Equal(t, DefaultBusinessDays, cfg.GetBusinessDays())
	assert.Equal(t, DefaultCurrency, cfg.GetCurrency())
	assert.Equal(t, DefaultLogLevel, cfg.GetLogLevel())
	assert.Equal(t, DefaultDateLayouts, cfg.GetDateLayouts())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
sheet: 2
top_runs: 3
business_days: 250
date_layouts: ["01/02/2006"]
display:
  currency: "€"
  no_color: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.GetSheet())
	assert.Equal(t, 3, cfg.GetTopRuns())
	assert.Equal(t, 250, cfg.GetBusinessDays())
	assert.Equal(t, []string{"01/02/2006"}, cfg.GetDateLayouts())
	assert.Equal(t, "€", cfg.GetCurrency())
	assert.True(t, cfg.Display.NoColor)
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_runs: 3\n"), 0600))

	t.Setenv("FREELANCESTATS_TOP_RUNS", "8")
	t.Setenv("FREELANCESTATS_DISPLAY_CURRENCY", "$")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.GetTopRuns())
	assert.Equal(t, "$", cfg.GetCurrency())
	assert.Equal(t, DefaultBusinessDays, cfg.GetBusinessDays())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_runs: [oops"), 0600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Config{TopRuns: 7, Display: DisplayConfig{Currency: "€"}}

	require.NoError(t, Save(path, want))

	got, err := loadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// unsetAfter removes variables that godotenv.Load wrote into the process
// environment once the test finishes.
func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		_, set := os.LookupEnv(key)
		require.False(t, set, "%s must not be set before the test", key)
	}
	t.Cleanup(func() {
		for _, key := range keys {
			os.Unsetenv(key)
		}
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("FREELANCESTATS_BUSINESS_DAYS=250\nFREELANCESTATS_LOGGING_LEVEL=debug\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("top_runs: 3\n"), 0600))
	unsetAfter(t, "FREELANCESTATS_BUSINESS_DAYS", "FREELANCESTATS_LOGGING_LEVEL")
	t.Chdir(dir)

	cfg, err := Load("config.yaml")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.GetTopRuns())
	assert.Equal(t, 250, cfg.GetBusinessDays())
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestLoadEnvironmentWinsOverDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("FREELANCESTATS_TOP_RUNS=9\nFREELANCESTATS_SHEET=2\n"), 0600))
	unsetAfter(t, "FREELANCESTATS_SHEET")
	t.Setenv("FREELANCESTATS_TOP_RUNS", "4")
	t.Chdir(dir)

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.GetTopRuns())
	assert.Equal(t, 2, cfg.GetSheet())
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 1, cfg.Sheet)
	assert.Equal(t, DefaultTopRuns, cfg.TopRuns)
	assert.Equal(t, DefaultBusinessDays, cfg.BusinessDays)
	assert.Equal(t, DefaultCurrency, cfg.Display.Currency)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultDateLayouts, cfg.DateLayouts)

	cfg.DateLayouts[0] = "changed"
	assert.Equal(t, "2006-01-02", DefaultDateLayouts[0])
}
