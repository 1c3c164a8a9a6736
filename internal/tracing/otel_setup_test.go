package tracing_test

import (
	"context"
	"testing"
	"time"

	"studyplanner/internal/tracing"

	"github.com/stretchr/testify/require"
)

func TestInitTracerProvider_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := tracing.InitTracerProvider(context.Background(), "studyplanner", "")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitTracerProvider_WithEndpoint(t *testing.T) {
	// grpc.NewClient connects lazily, so no collector is needed here.
	shutdown, err := tracing.InitTracerProvider(context.Background(), "studyplanner", "localhost:4317")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
