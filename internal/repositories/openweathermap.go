package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Unti1/AlsocodeTestTask/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

	// Fixed response policy, not user-configurable.
	providerUnits = "metric"
	providerLang  = "en"

	// 5 days at 3-hour resolution.
	forecastPointCount = 40
)

// HTTPClient abstracts the outbound transport so tests can stub it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherProvider is the outbound contract of the upstream weather API.
type WeatherProvider interface {
	Name() string
	CurrentByCity(ctx context.Context, city string) (*CurrentPayload, error)
	CurrentByCoordinates(ctx context.Context, lat, lon float64) (*CurrentPayload, error)
	Forecast(ctx context.Context, city string) (*ForecastPayload, error)
}

// CurrentPayload is the typed schema of the provider's current-conditions
// response. Visibility is optional in the upstream payload.
type CurrentPayload struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Visibility *int `json:"visibility"`
	Coord      struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

// ForecastPayload is the typed schema of the provider's 5-day/3-hour
// forecast response.
type ForecastPayload struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []ForecastPoint `json:"list"`
}

type ForecastPoint struct {
	Dt    int64  `json:"dt"`
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
}

type OpenWeatherMapRepository struct {
	APIKey     string
	BaseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

// NewOpenWeatherMapRepository fails before any network call when the API
// key is absent.
func NewOpenWeatherMapRepository(apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("OpenWeatherMap API key is not set")
	}

	return &OpenWeatherMapRepository{
		APIKey:     apiKey,
		BaseURL:    OpenWeatherMapBaseURL,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (o *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

func (o *OpenWeatherMapRepository) CurrentByCity(ctx context.Context, city string) (*CurrentPayload, error) {
	values := o.baseValues()
	values.Set("q", city)

	var payload CurrentPayload
	if err := o.get(ctx, "/weather", values, &payload); err != nil {
		return nil, err
	}
	if len(payload.Weather) == 0 {
		return nil, errors.New("malformed provider response: empty weather block")
	}

	return &payload, nil
}

func (o *OpenWeatherMapRepository) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*CurrentPayload, error) {
	values := o.baseValues()
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var payload CurrentPayload
	if err := o.get(ctx, "/weather", values, &payload); err != nil {
		return nil, err
	}
	if len(payload.Weather) == 0 {
		return nil, errors.New("malformed provider response: empty weather block")
	}

	return &payload, nil
}

func (o *OpenWeatherMapRepository) Forecast(ctx context.Context, city string) (*ForecastPayload, error) {
	values := o.baseValues()
	values.Set("q", city)
	values.Set("cnt", strconv.Itoa(forecastPointCount))

	var payload ForecastPayload
	if err := o.get(ctx, "/forecast", values, &payload); err != nil {
		return nil, err
	}
	if len(payload.List) == 0 {
		return nil, errors.New("no forecast data available")
	}

	return &payload, nil
}

func (o *OpenWeatherMapRepository) baseValues() url.Values {
	values := url.Values{}
	values.Set("appid", o.APIKey)
	values.Set("units", providerUnits)
	values.Set("lang", providerLang)
	return values
}

// get performs a single request; no retries, no caching.
func (o *OpenWeatherMapRepository) get(ctx context.Context, path string, values url.Values, out any) error {
	u := fmt.Sprintf("%s%s?%s", o.BaseURL, path, values.Encode())

	o.l.Info("making openweathermap API request", map[string]any{
		"path": path,
	})

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received openweathermap API response", map[string]any{
		"path":       path,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Check for HTTP error status codes
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}
