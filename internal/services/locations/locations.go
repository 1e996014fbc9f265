package locations

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Unti1/AlsocodeTestTask/internal/models"
	"github.com/Unti1/AlsocodeTestTask/internal/services/weather"
	"github.com/Unti1/AlsocodeTestTask/pkg/logger"
)

// LocationStore is the persistence contract of the service. Every lookup
// is scoped to the owning user.
type LocationStore interface {
	Create(ctx context.Context, loc models.Location) (models.Location, error)
	ByID(ctx context.Context, userID, id int64) (models.Location, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Location, error)
	Default(ctx context.Context, userID int64) (models.Location, error)
	Update(ctx context.Context, loc models.Location) (models.Location, error)
	Delete(ctx context.Context, userID, id int64) error
	SetDefault(ctx context.Context, userID, id int64) error
}

// ReadingStore persists historical weather readings per location.
type ReadingStore interface {
	Append(ctx context.Context, reading models.WeatherReading) (models.WeatherReading, error)
	ListByLocation(ctx context.Context, locationID int64) ([]models.WeatherReading, error)
}

// WeatherFetcher is the slice of the weather service this package needs.
type WeatherFetcher interface {
	CurrentByCoordinates(ctx context.Context, lat, lon float64) (models.CurrentWeather, error)
	Forecast(ctx context.Context, city string, strategy weather.Strategy) (models.Forecast, error)
}

// Overview bundles the default location with its current conditions and
// forecast.
type Overview struct {
	Location models.Location       `json:"location"`
	Current  models.CurrentWeather `json:"current"`
	Forecast models.Forecast       `json:"forecast"`
}

type Service struct {
	store    LocationStore
	readings ReadingStore
	weather  WeatherFetcher
	l        *logger.Logger
}

func NewService(store LocationStore, readings ReadingStore, weather WeatherFetcher, l *logger.Logger) *Service {
	return &Service{store: store, readings: readings, weather: weather, l: l}
}

// Create saves a location for the user. The first location of a user
// becomes the default automatically.
func (s *Service) Create(ctx context.Context, loc models.Location) (models.Location, error) {
	existing, err := s.store.ListByUser(ctx, loc.UserID)
	if err != nil {
		return models.Location{}, errors.Wrap(err, "list locations")
	}
	loc.IsDefault = len(existing) == 0

	created, err := s.store.Create(ctx, loc)
	if err != nil {
		return models.Location{}, err
	}

	s.l.Info("location created", map[string]any{
		"user_id": created.UserID,
		"city":    created.City,
	})
	return created, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]models.Location, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id int64) (models.Location, error) {
	return s.store.ByID(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, loc models.Location) (models.Location, error) {
	return s.store.Update(ctx, loc)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.store.Delete(ctx, userID, id)
}

// SetDefault makes the location the user's only default.
func (s *Service) SetDefault(ctx context.Context, userID, id int64) error {
	return s.store.SetDefault(ctx, userID, id)
}

// History returns the stored readings of the location, newest first. The
// location must belong to the user.
func (s *Service) History(ctx context.Context, userID, id int64) ([]models.WeatherReading, error) {
	loc, err := s.store.ByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return s.readings.ListByLocation(ctx, loc.ID)
}

// WeatherFor fetches current conditions at the location's coordinates and
// appends the result to its reading history.
func (s *Service) WeatherFor(ctx context.Context, userID, id int64) (models.CurrentWeather, error) {
	loc, err := s.store.ByID(ctx, userID, id)
	if err != nil {
		return models.CurrentWeather{}, err
	}

	current, err := s.weather.CurrentByCoordinates(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return models.CurrentWeather{}, err
	}

	if _, err := s.readings.Append(ctx, models.WeatherReading{
		LocationID:  loc.ID,
		Temperature: float64(current.Temperature),
		FeelsLike:   float64(current.FeelsLike),
		Humidity:    current.Humidity,
		Pressure:    current.Pressure,
		WindSpeed:   current.WindSpeed,
		Description: current.Description,
		Icon:        current.Icon,
	}); err != nil {
		// The fetched conditions are still good; losing one history row
		// should not fail the request.
		s.l.Error(err, map[string]any{"location_id": loc.ID})
	}

	return current, nil
}

// DefaultOverview returns current conditions and the forecast for the
// user's default location.
func (s *Service) DefaultOverview(ctx context.Context, userID int64) (Overview, error) {
	loc, err := s.store.Default(ctx, userID)
	if err != nil {
		return Overview{}, err
	}

	current, err := s.weather.CurrentByCoordinates(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return Overview{}, err
	}

	forecast, err := s.weather.Forecast(ctx, loc.City, weather.StrategyAverage)
	if err != nil {
		return Overview{}, err
	}

	return Overview{Location: loc, Current: current, Forecast: forecast}, nil
}
