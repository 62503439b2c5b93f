package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vqgo"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("VQGO_TEST_DEFAULTS")
	require.NoError(t, err)

	assert.Equal(t, 1e-5, cfg.Threshold)
	assert.Equal(t, 1000, cfg.MaxIterations)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("VQGO_TEST_ENV_THRESHOLD", "0.01")
	t.Setenv("VQGO_TEST_ENV_MAX_ITERATIONS", "50")
	t.Setenv("VQGO_TEST_ENV_WORKERS", "4")
	t.Setenv("VQGO_TEST_ENV_SEED", "42")
	t.Setenv("VQGO_TEST_ENV_LOG_FORMAT", "json")
	t.Setenv("VQGO_TEST_ENV_LOG_LEVEL", "debug")

	cfg, err := Load("VQGO_TEST_ENV")
	require.NoError(t, err)

	assert.Equal(t, 0.01, cfg.Threshold)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "VQGO_TEST_FILE_WORKERS=3\nVQGO_TEST_FILE_SEED=7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("VQGO_TEST_FILE_SEED", "9")
	t.Cleanup(func() { _ = os.Unsetenv("VQGO_TEST_FILE_WORKERS") })

	cfg, err := Load("VQGO_TEST_FILE", path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Workers)
	// the process environment wins over the file
	assert.Equal(t, int64(9), cfg.Seed)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("VQGO_TEST_MISSING", filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.Error(t, err)

	t.Setenv("VQGO_TEST_BAD_WORKERS", "many")
	_, err = Load("VQGO_TEST_BAD")
	assert.Error(t, err)

	t.Setenv("VQGO_TEST_INVALID_LOG_LEVEL", "trace")
	_, err = Load("VQGO_TEST_INVALID")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Threshold: 1e-5, MaxIterations: 1000, Workers: 1, LogFormat: "text", LogLevel: "info"}
	}

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{name: "Valid", modify: func(*Config) {}, want: nil},
		{name: "UncappedIterations", modify: func(c *Config) { c.MaxIterations = 0 }, want: nil},
		{name: "NegativeThreshold", modify: func(c *Config) { c.Threshold = -1 }, want: ErrInvalidThreshold},
		{name: "NegativeIterations", modify: func(c *Config) { c.MaxIterations = -1 }, want: ErrInvalidMaxIterations},
		{name: "ZeroWorkers", modify: func(c *Config) { c.Workers = 0 }, want: ErrInvalidWorkers},
		{name: "LogFormat", modify: func(c *Config) { c.LogFormat = "console" }, want: ErrInvalidLogFormat},
		{name: "LogLevel", modify: func(c *Config) { c.LogLevel = "verbose" }, want: ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Config{Threshold: 1e-5, MaxIterations: 1000, Workers: 2, Seed: 11, LogFormat: "json", LogLevel: "error"}

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 5)

	obs := vqgo.Rows(
		[]float64{0, 0}, []float64{0, 1}, []float64{10, 10},
		[]float64{10, 11}, []float64{-10, 10}, []float64{-10, 11},
	)

	first, err := vqgo.KMeansK(context.Background(), obs, 3, opts...)
	require.NoError(t, err)

	opts, err = cfg.Options()
	require.NoError(t, err)

	second, err := vqgo.KMeansK(context.Background(), obs, 3, opts...)
	require.NoError(t, err)

	assert.Equal(t, first.Codebook, second.Codebook)

	cfg.Seed = 0
	opts, err = cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	cfg.Workers = 0
	_, err = cfg.Options()
	assert.ErrorIs(t, err, ErrInvalidWorkers)
}
