package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func setCleanEnv(t *testing.T, overrides map[string]string) {
	t.Helper()
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
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestRunConfigError(t *testing.T) {
	setCleanEnv(t, map[string]string{"OBS_TRACING_SAMPLING_RATIO": "lots"})

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), strings.NewReader("5\n"), &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, err.Error(), "OBS_TRACING_SAMPLING_RATIO")
	require.Empty(t, stdout.String())
}

func TestRunSession(t *testing.T) {
	setCleanEnv(t, nil)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), strings.NewReader("1\nProducto 2\n2\n2\n5\n"), &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	require.True(t, strings.HasPrefix(out, "El producto 2 hace un descuento del 10% con strategy\n"))
	require.Contains(t, out, "Hola Usuario2, ¡Nuevo producto agregado! Nombre del producto: Producto 2\n")
	require.Contains(t, out, "- Producto 2 (Cantidad: 2) - Precio: 36.0\n")
	require.Empty(t, stderr.String())
}

func TestRunEndOfInputExitsCleanly(t *testing.T) {
	setCleanEnv(t, nil)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), strings.NewReader(""), &stdout, &stderr))
}

type brokenStdin struct{}

func (brokenStdin) Read([]byte) (int, error) { return 0, errors.New("stdin closed") }

func TestRunStdinFailure(t *testing.T) {
	setCleanEnv(t, nil)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), brokenStdin{}, &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, err.Error(), "stdin closed")
}

func TestRunDumpsMetricsAtDefaultLevel(t *testing.T) {
	setCleanEnv(t, map[string]string{"OBS_METRICS_DUMP": "true", "OBS_LOG_FORMAT": "json"})

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), strings.NewReader("4\nCalle 1\n555\n5\n"), &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stderr.String(), `"metric":"toko_orders_total"`)
	require.Contains(t, stderr.String(), `"result":"rejected"`)
}
