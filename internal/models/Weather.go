package models

// VisibilityNoData is the placeholder used when the provider payload
// carries no visibility field.
const VisibilityNoData = "no data"

type Coordinates struct {
	Lat float64 `json:"lat" example:"55.7558"`
	Lon float64 `json:"lon" example:"37.6173"`
}

// CurrentWeather is the flattened display view of one provider response.
// Temperature and feels-like are rounded to whole degrees for display.
type CurrentWeather struct {
	City          string      `json:"city" example:"Moscow"`
	Country       string      `json:"country" example:"RU"`
	Temperature   int         `json:"temperature" example:"20"`
	FeelsLike     int         `json:"feels_like" example:"19"`
	Description   string      `json:"description" example:"clear sky"`
	Icon          string      `json:"icon" example:"01d"`
	Humidity      int         `json:"humidity" example:"65"`
	Pressure      int         `json:"pressure" example:"1013"`
	WindSpeed     float64     `json:"wind_speed" example:"5.0"`
	WindDirection string      `json:"wind_direction" example:"N"`
	Sunrise       string      `json:"sunrise" example:"06:00"`
	Sunset        string      `json:"sunset" example:"18:00"`
	Clouds        int         `json:"clouds" example:"0"`
	Visibility    string      `json:"visibility" example:"10000"`
	Coordinates   Coordinates `json:"coordinates"`
}

// DailyForecast aggregates every 3-hour point of one calendar date.
type DailyForecast struct {
	Date           string  `json:"date" example:"2025-06-20"`
	City           string  `json:"city" example:"Moscow"`
	Country        string  `json:"country" example:"RU"`
	AvgTemperature int     `json:"avg_temperature" example:"20"`
	AvgHumidity    int     `json:"avg_humidity" example:"65"`
	AvgPressure    int     `json:"avg_pressure" example:"1013"`
	AvgWindSpeed   float64 `json:"avg_wind_speed" example:"5.0"`
	AvgClouds      int     `json:"avg_clouds" example:"0"`
	Description    string  `json:"description" example:"clear sky"`
	Icon           string  `json:"icon" example:"01d"`
}

// DailySample is the alternate forecast shape: the chronologically first
// 3-hour point of a date, kept as-is.
type DailySample struct {
	Date        string  `json:"date" example:"2025-06-20"`
	Temperature float64 `json:"temperature" example:"20.3"`
	FeelsLike   float64 `json:"feels_like" example:"19.1"`
	Humidity    int     `json:"humidity" example:"65"`
	Pressure    int     `json:"pressure" example:"1013"`
	WindSpeed   float64 `json:"wind_speed" example:"5.0"`
	Description string  `json:"description" example:"clear sky"`
	Icon        string  `json:"icon" example:"01d"`
}

// Forecast is the response envelope of the forecast endpoint. Forecasts
// holds either []DailyForecast or []DailySample depending on the
// aggregation strategy the caller selected.
type Forecast struct {
	City      string `json:"city" example:"Moscow"`
	Country   string `json:"country" example:"RU"`
	Forecasts any    `json:"forecasts"`
}
