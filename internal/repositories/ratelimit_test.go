package repositories

import (
	"context"
	"testing"
	"time"
)

type countingProvider struct {
	calls int
}

func (c *countingProvider) Name() string { return "counting" }

func (c *countingProvider) CurrentByCity(ctx context.Context, city string) (*CurrentPayload, error) {
	c.calls++
	return &CurrentPayload{}, nil
}

func (c *countingProvider) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*CurrentPayload, error) {
	c.calls++
	return &CurrentPayload{}, nil
}

func (c *countingProvider) Forecast(ctx context.Context, city string) (*ForecastPayload, error) {
	c.calls++
	return &ForecastPayload{}, nil
}

func TestRateLimitedProvider_Delegates(t *testing.T) {
	inner := &countingProvider{}
	limited := NewRateLimitedProvider(inner, 100, 10)
	ctx := context.Background()

	if _, err := limited.CurrentByCity(ctx, "Moscow"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := limited.Forecast(ctx, "Moscow"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("Expected 2 delegated calls, got %d", inner.calls)
	}
	if limited.Name() != "counting" {
		t.Errorf("Expected wrapped name, got %q", limited.Name())
	}
}

func TestRateLimitedProvider_ContextCancellation(t *testing.T) {
	inner := &countingProvider{}
	// Burst of 1: the second call has to wait a full second.
	limited := NewRateLimitedProvider(inner, 1, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := limited.CurrentByCity(ctx, "Moscow"); err != nil {
		t.Fatalf("Expected first call to pass, got %v", err)
	}
	if _, err := limited.CurrentByCity(ctx, "Moscow"); err == nil {
		t.Error("Expected error when context deadline is shorter than the limiter wait, got nil")
	}
	if inner.calls != 1 {
		t.Errorf("Expected only the first call to reach the provider, got %d", inner.calls)
	}
}
