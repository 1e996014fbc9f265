package repositories

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a WeatherProvider with an outbound rate
// limiter so the free-tier quota is not exceeded under bursts. Each call
// still reaches the provider exactly once; the limiter only delays it.
type RateLimitedProvider struct {
	provider WeatherProvider
	limiter  *rate.Limiter
}

func NewRateLimitedProvider(provider WeatherProvider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *RateLimitedProvider) CurrentByCity(ctx context.Context, city string) (*CurrentPayload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.CurrentByCity(ctx, city)
}

func (r *RateLimitedProvider) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*CurrentPayload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.CurrentByCoordinates(ctx, lat, lon)
}

func (r *RateLimitedProvider) Forecast(ctx context.Context, city string) (*ForecastPayload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.Forecast(ctx, city)
}
