package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func clearedEnv(overrides map[string]string) map[string]string {
	env := map[string]string{
		"APP_ENV":                    "",
		"OBS_LOG_FORMAT":             "",
		"OBS_LOG_LEVEL":              "",
		"OBS_METRICS_NAMESPACE":      "",
		"OBS_METRICS_DUMP":           "",
		"OBS_ENABLE_TRACING":         "",
		"OBS_TRACING_ENDPOINT":       "",
		"OBS_TRACING_SAMPLING_RATIO": "",
	}
	for k, v := range overrides {
		env[k] = v
	}
	return env
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(clearedEnv(nil))
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "toko", cfg.MetricsNamespace)
	require.False(t, cfg.MetricsDump)
	require.False(t, cfg.TracingEnabled)
	require.Equal(t, 1.0, cfg.TracingSampling)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadForTests(clearedEnv(map[string]string{
		"APP_ENV":                    "staging",
		"OBS_LOG_FORMAT":             "json",
		"OBS_LOG_LEVEL":              "debug",
		"OBS_METRICS_DUMP":           "yes",
		"OBS_ENABLE_TRACING":         "true",
		"OBS_TRACING_ENDPOINT":       " http://collector:4318 ",
		"OBS_TRACING_SAMPLING_RATIO": "0.25",
	}))
	require.NoError(t, err)
	require.Equal(t, "staging", cfg.AppEnv)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.MetricsDump)
	require.True(t, cfg.TracingEnabled)
	require.Equal(t, "http://collector:4318", cfg.TracingEndpoint)
	require.Equal(t, 0.25, cfg.TracingSampling)
}

func TestLoadRejectsBadSamplingRatio(t *testing.T) {
	_, err := LoadForTests(clearedEnv(map[string]string{"OBS_TRACING_SAMPLING_RATIO": "lots"}))
	require.Error(t, err)

	_, err = LoadForTests(clearedEnv(map[string]string{"OBS_TRACING_SAMPLING_RATIO": "1.5"}))
	require.Error(t, err)
}
