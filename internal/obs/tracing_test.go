package obs

import (
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSamplerFor(t *testing.T) {
	require.Equal(t, sdktrace.NeverSample().Description(), samplerFor(0).Description())
	require.Equal(t, sdktrace.NeverSample().Description(), samplerFor(-1).Description())
	require.Equal(t, sdktrace.AlwaysSample().Description(), samplerFor(1).Description())
	require.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), samplerFor(0.25).Description())
}
