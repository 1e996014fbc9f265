package weather_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Unti1/AlsocodeTestTask/internal/models"
	"github.com/Unti1/AlsocodeTestTask/internal/repositories"
	"github.com/Unti1/AlsocodeTestTask/internal/services/weather"
)

func currentPayload() *repositories.CurrentPayload {
	p := &repositories.CurrentPayload{}
	p.Name = "Moscow"
	p.Sys.Country = "RU"
	p.Sys.Sunrise = 1719453600
	p.Sys.Sunset = 1719513000
	p.Main.Temp = 20.3
	p.Main.FeelsLike = 19.6
	p.Main.Humidity = 65
	p.Main.Pressure = 1013
	p.Weather = append(p.Weather, struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{Description: "clear sky", Icon: "01d"})
	p.Wind.Speed = 5.0
	p.Wind.Deg = 0
	p.Clouds.All = 10
	p.Coord.Lat = 55.7558
	p.Coord.Lon = 37.6173
	return p
}

func TestNormalizeCurrent(t *testing.T) {
	p := currentPayload()
	visibility := 10000
	p.Visibility = &visibility

	got := weather.NormalizeCurrent(p)

	assert.Equal(t, "Moscow", got.City)
	assert.Equal(t, "RU", got.Country)
	assert.Equal(t, 20, got.Temperature)
	assert.Equal(t, 20, got.FeelsLike)
	assert.Equal(t, "clear sky", got.Description)
	assert.Equal(t, "01d", got.Icon)
	assert.Equal(t, 65, got.Humidity)
	assert.Equal(t, 1013, got.Pressure)
	assert.Equal(t, 5.0, got.WindSpeed)
	assert.Equal(t, "N", got.WindDirection)
	assert.Equal(t, "10000", got.Visibility)
	assert.Equal(t, 10, got.Clouds)
	assert.Equal(t, 55.7558, got.Coordinates.Lat)
	assert.Equal(t, 37.6173, got.Coordinates.Lon)

	// Sunrise/sunset are local clock strings of the unix timestamps.
	assert.Equal(t, time.Unix(p.Sys.Sunrise, 0).Format("15:04"), got.Sunrise)
	assert.Equal(t, time.Unix(p.Sys.Sunset, 0).Format("15:04"), got.Sunset)
}

func TestNormalizeCurrent_MissingVisibility(t *testing.T) {
	p := currentPayload()
	p.Visibility = nil

	got := weather.NormalizeCurrent(p)

	assert.Equal(t, models.VisibilityNoData, got.Visibility)
}

func TestNormalizeCurrent_WindDirection(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{22, "N"},
		{46, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{359, "N"},
		{360, "N"},
	}

	for _, tc := range cases {
		p := currentPayload()
		p.Wind.Deg = tc.degrees

		got := weather.NormalizeCurrent(p)
		assert.Equal(t, tc.want, got.WindDirection, "degrees=%v", tc.degrees)
	}
}

func forecastPoint(dtTxt string, temp float64, humidity int, windSpeed float64, description string) repositories.ForecastPoint {
	var p repositories.ForecastPoint
	p.DtTxt = dtTxt
	p.Main.Temp = temp
	p.Main.FeelsLike = temp - 1
	p.Main.Humidity = humidity
	p.Main.Pressure = 1013
	p.Wind.Speed = windSpeed
	p.Clouds.All = 50
	p.Weather = append(p.Weather, struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{Description: description, Icon: "10d"})
	return p
}

func TestAggregateDaily_AveragesPerDate(t *testing.T) {
	payload := &repositories.ForecastPayload{}
	payload.City.Name = "Moscow"
	payload.City.Country = "RU"
	payload.List = []repositories.ForecastPoint{
		forecastPoint("2025-06-20 09:00:00", 18, 60, 3.0, "light rain"),
		forecastPoint("2025-06-20 12:00:00", 22, 70, 4.0, "light rain"),
		forecastPoint("2025-06-21 09:00:00", 25, 50, 5.0, "clear sky"),
	}

	got := weather.AggregateDaily(payload)

	assert.Equal(t, "Moscow", got.City)
	assert.Equal(t, "RU", got.Country)

	forecasts, ok := got.Forecasts.([]models.DailyForecast)
	require.True(t, ok)
	require.Len(t, forecasts, 2)

	first := forecasts[0]
	assert.Equal(t, "2025-06-20", first.Date)
	assert.Equal(t, 20, first.AvgTemperature)
	assert.Equal(t, 65, first.AvgHumidity)
	assert.Equal(t, 1013, first.AvgPressure)
	assert.Equal(t, 3.5, first.AvgWindSpeed)
	assert.Equal(t, 50, first.AvgClouds)
	assert.Equal(t, "light rain", first.Description)
	assert.Equal(t, "10d", first.Icon)

	second := forecasts[1]
	assert.Equal(t, "2025-06-21", second.Date)
	assert.Equal(t, 25, second.AvgTemperature)
}

func TestAggregateDaily_ChronologicalOrder(t *testing.T) {
	payload := &repositories.ForecastPayload{}
	payload.List = []repositories.ForecastPoint{
		forecastPoint("2025-06-20 21:00:00", 18, 60, 3.0, "clear sky"),
		forecastPoint("2025-06-21 00:00:00", 15, 60, 3.0, "clear sky"),
		forecastPoint("2025-06-21 03:00:00", 14, 60, 3.0, "clear sky"),
		forecastPoint("2025-06-22 00:00:00", 16, 60, 3.0, "clear sky"),
	}

	got := weather.AggregateDaily(payload)
	forecasts := got.Forecasts.([]models.DailyForecast)

	require.Len(t, forecasts, 3)
	assert.Equal(t, "2025-06-20", forecasts[0].Date)
	assert.Equal(t, "2025-06-21", forecasts[1].Date)
	assert.Equal(t, "2025-06-22", forecasts[2].Date)
}

func TestAggregateDaily_ModalDescription(t *testing.T) {
	payload := &repositories.ForecastPayload{}
	payload.List = []repositories.ForecastPoint{
		forecastPoint("2025-06-20 09:00:00", 20, 60, 3.0, "light rain"),
		forecastPoint("2025-06-20 12:00:00", 20, 60, 3.0, "clear sky"),
		forecastPoint("2025-06-20 15:00:00", 20, 60, 3.0, "light rain"),
	}

	got := weather.AggregateDaily(payload)
	forecasts := got.Forecasts.([]models.DailyForecast)

	require.Len(t, forecasts, 1)
	assert.Equal(t, "light rain", forecasts[0].Description)
}

func TestAggregateDaily_ModalTieKeepsFirstEncountered(t *testing.T) {
	payload := &repositories.ForecastPayload{}
	payload.List = []repositories.ForecastPoint{
		forecastPoint("2025-06-20 09:00:00", 20, 60, 3.0, "clear sky"),
		forecastPoint("2025-06-20 12:00:00", 20, 60, 3.0, "light rain"),
	}

	got := weather.AggregateDaily(payload)
	forecasts := got.Forecasts.([]models.DailyForecast)

	require.Len(t, forecasts, 1)
	assert.Equal(t, "clear sky", forecasts[0].Description)
}

func TestSampleFirstDaily_KeepsFirstPointPerDate(t *testing.T) {
	payload := &repositories.ForecastPayload{}
	payload.City.Name = "Moscow"
	payload.List = []repositories.ForecastPoint{
		forecastPoint("2025-06-20 09:00:00", 18.4, 60, 3.0, "light rain"),
		forecastPoint("2025-06-20 12:00:00", 25.0, 40, 8.0, "clear sky"),
		forecastPoint("2025-06-21 00:00:00", 14.1, 70, 2.0, "overcast clouds"),
	}

	got := weather.SampleFirstDaily(payload)
	samples, ok := got.Forecasts.([]models.DailySample)
	require.True(t, ok)
	require.Len(t, samples, 2)

	assert.Equal(t, "2025-06-20", samples[0].Date)
	assert.Equal(t, 18.4, samples[0].Temperature)
	assert.Equal(t, "light rain", samples[0].Description)
	assert.Equal(t, "2025-06-21", samples[1].Date)
	assert.Equal(t, 14.1, samples[1].Temperature)
}

func TestSampleFirstDaily_TruncatesToSevenDays(t *testing.T) {
	payload := &repositories.ForecastPayload{}
	for day := 10; day < 19; day++ {
		dtTxt := time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05")
		payload.List = append(payload.List, forecastPoint(dtTxt, 20, 60, 3.0, "clear sky"))
	}

	got := weather.SampleFirstDaily(payload)
	samples := got.Forecasts.([]models.DailySample)

	require.Len(t, samples, 7)
	assert.Equal(t, "2025-06-10", samples[0].Date)
	assert.Equal(t, "2025-06-16", samples[6].Date)
}
