package weather

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Unti1/AlsocodeTestTask/internal/models"
	"github.com/Unti1/AlsocodeTestTask/internal/repositories"
	"github.com/Unti1/AlsocodeTestTask/pkg/logger"
)

// Strategy selects how the 3-hour forecast points collapse into days.
type Strategy string

const (
	// StrategyAverage averages every point of a date.
	StrategyAverage Strategy = "avg"
	// StrategySampleFirst keeps only the first point of each date.
	StrategySampleFirst Strategy = "first"
)

type Service struct {
	provider repositories.WeatherProvider
	l        *logger.Logger
}

func NewService(provider repositories.WeatherProvider, l *logger.Logger) *Service {
	return &Service{provider: provider, l: l}
}

// Current fetches and normalizes current conditions for a city name.
func (s *Service) Current(ctx context.Context, city string) (models.CurrentWeather, error) {
	payload, err := s.provider.CurrentByCity(ctx, city)
	if err != nil {
		s.l.Error(err, map[string]any{"provider": s.provider.Name(), "city": city})
		return models.CurrentWeather{}, errors.Wrap(err, "fetch current weather")
	}

	return NormalizeCurrent(payload), nil
}

// CurrentByCoordinates fetches and normalizes current conditions for a
// latitude/longitude pair.
func (s *Service) CurrentByCoordinates(ctx context.Context, lat, lon float64) (models.CurrentWeather, error) {
	payload, err := s.provider.CurrentByCoordinates(ctx, lat, lon)
	if err != nil {
		s.l.Error(err, map[string]any{"provider": s.provider.Name(), "lat": lat, "lon": lon})
		return models.CurrentWeather{}, errors.Wrap(err, "fetch current weather")
	}

	return NormalizeCurrent(payload), nil
}

// Forecast fetches the 5-day forecast and collapses it into daily entries
// using the requested strategy. Unknown strategies fall back to averaging.
func (s *Service) Forecast(ctx context.Context, city string, strategy Strategy) (models.Forecast, error) {
	payload, err := s.provider.Forecast(ctx, city)
	if err != nil {
		s.l.Error(err, map[string]any{"provider": s.provider.Name(), "city": city})
		return models.Forecast{}, errors.Wrap(err, "fetch forecast")
	}

	if strategy == StrategySampleFirst {
		return SampleFirstDaily(payload), nil
	}
	return AggregateDaily(payload), nil
}
