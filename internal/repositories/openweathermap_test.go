package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Unti1/AlsocodeTestTask/pkg/logger"
)

func TestNewOpenWeatherMapRepository_RequiresAPIKey(t *testing.T) {
	l := logger.NewZapLogger("test-app")

	_, err := NewOpenWeatherMapRepository("", l, http.DefaultClient)
	if err == nil {
		t.Error("Expected error when API key is empty, got nil")
	}

	_, err = NewOpenWeatherMapRepository("   ", l, http.DefaultClient)
	if err == nil {
		t.Error("Expected error when API key is blank, got nil")
	}
}

func TestOpenWeatherMapRepository_CurrentByCity(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Moscow" {
			t.Errorf("Expected q=Moscow, got %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("Expected units=metric, got %q", got)
		}
		if got := r.URL.Query().Get("appid"); got != "test-key" {
			t.Errorf("Expected appid=test-key, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Moscow",
			"sys": {"country": "RU", "sunrise": 1719453600, "sunset": 1719513000},
			"main": {"temp": 20.3, "feels_like": 19.6, "humidity": 65, "pressure": 1013},
			"weather": [{"description": "clear sky", "icon": "01d"}],
			"wind": {"speed": 5.0, "deg": 180},
			"clouds": {"all": 10},
			"visibility": 10000,
			"coord": {"lat": 55.7558, "lon": 37.6173}
		}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	payload, err := repo.CurrentByCity(context.Background(), "Moscow")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if payload.Name != "Moscow" {
		t.Errorf("Expected city Moscow, got %q", payload.Name)
	}
	if payload.Main.Temp != 20.3 {
		t.Errorf("Expected temp 20.3, got %v", payload.Main.Temp)
	}
	if payload.Visibility == nil || *payload.Visibility != 10000 {
		t.Errorf("Expected visibility 10000, got %v", payload.Visibility)
	}
}

func TestOpenWeatherMapRepository_CurrentByCity_EmptyWeatherBlock(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "Moscow", "weather": []}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.CurrentByCity(context.Background(), "Moscow")
	if err == nil {
		t.Error("Expected error for empty weather block, got nil")
	}
}

func TestOpenWeatherMapRepository_CurrentByCity_HTTPError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.CurrentByCity(context.Background(), "Nowhere")
	if err == nil {
		t.Error("Expected error on 404 response, got nil")
	}
}

func TestOpenWeatherMapRepository_CurrentByCity_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("invalid json"))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.CurrentByCity(context.Background(), "Moscow")
	if err == nil {
		t.Error("Expected error when receiving invalid JSON, got nil")
	}
}

func TestOpenWeatherMapRepository_Forecast(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cnt"); got != "40" {
			t.Errorf("Expected cnt=40, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"city": {"name": "Moscow", "country": "RU"},
			"list": [
				{"dt": 1750406400, "dt_txt": "2025-06-20 09:00:00",
				 "main": {"temp": 18.0, "feels_like": 17.0, "humidity": 60, "pressure": 1013},
				 "weather": [{"description": "light rain", "icon": "10d"}],
				 "wind": {"speed": 3.0}, "clouds": {"all": 75}}
			]
		}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	payload, err := repo.Forecast(context.Background(), "Moscow")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if payload.City.Name != "Moscow" {
		t.Errorf("Expected city Moscow, got %q", payload.City.Name)
	}
	if len(payload.List) != 1 {
		t.Fatalf("Expected 1 forecast point, got %d", len(payload.List))
	}
	if payload.List[0].DtTxt != "2025-06-20 09:00:00" {
		t.Errorf("Unexpected dt_txt %q", payload.List[0].DtTxt)
	}
}

func TestOpenWeatherMapRepository_Forecast_EmptyList(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"city": {"name": "Moscow"}, "list": []}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.Forecast(context.Background(), "Moscow")
	if err == nil {
		t.Error("Expected error for empty forecast list, got nil")
	}
}

func TestOpenWeatherMapRepository_ContextCancellation(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond) // Simulate slow response
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := repo.CurrentByCity(ctx, "Moscow")
	if err == nil {
		t.Error("Expected error when context is cancelled, got nil")
	}
}

func newTestRepository(t *testing.T, baseURL string) *OpenWeatherMapRepository {
	t.Helper()

	repo, err := NewOpenWeatherMapRepository("test-key", logger.NewZapLogger("test-app"), http.DefaultClient)
	if err != nil {
		t.Fatalf("Failed to construct repository: %v", err)
	}
	repo.BaseURL = baseURL
	return repo
}
