package tracing_test

import (
	"context"
	"testing"

	"github.com/ZenRepublic/Clubhouse/pkg/config"
	"github.com/ZenRepublic/Clubhouse/pkg/tracing"
)

func TestSetup_NoopWhenDisabled(t *testing.T) {
	shutdown, err := tracing.Setup(context.Background(), &config.TracingConfig{Enabled: false, Endpoint: "localhost:4318"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenNil(t *testing.T) {
	shutdown, err := tracing.Setup(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEnabled(t *testing.T) {
	// Non-routable address so no export happens.
	cfg := &config.TracingConfig{
		Enabled:     true,
		Endpoint:    "192.0.2.1:4318",
		Insecure:    true,
		ServiceName: "clubhouse-test",
		SampleRatio: 1,
	}
	shutdown, err := tracing.Setup(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Shutdown with a cancelled context returns promptly; the error is irrelevant.
	_ = shutdown(ctx)
}
