package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Unti1/AlsocodeTestTask/internal/repositories"
	"github.com/Unti1/AlsocodeTestTask/internal/services/weather"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"city not found or weather service error"`
}

// providerFailureMessage is intentionally generic: upstream lookups fail
// the same way for unknown cities and provider outages.
const providerFailureMessage = "city not found or weather service error"

// GetCurrentWeather godoc
// @Summary Get current weather by city name
// @Description Retrieves current weather conditions for a city from the upstream provider
// @Tags Weather
// @Produce json
// @Param city query string true "City name" example(Moscow)
// @Success 200 {object} models.CurrentWeather "Successful response"
// @Failure 400 {object} ErrorResponse "Missing city or provider lookup failed"
// @Router /api/weather/current/ [get]
func (r *routes) handleCurrentWeather(c *fiber.Ctx) error {
	city := c.Query("city")
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: city",
		})
	}

	current, err := r.weather.Current(c.Context(), city)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: providerFailureMessage,
		})
	}

	return c.JSON(current)
}

// SearchWeather godoc
// @Summary Search current weather by city name
// @Description Same as the current endpoint, but rejects non-alphabetic city names before any outbound call
// @Tags Weather
// @Produce json
// @Param q query string true "City name" example(London)
// @Success 200 {object} models.CurrentWeather "Successful response"
// @Failure 400 {object} ErrorResponse "Invalid city name or provider lookup failed"
// @Router /api/weather/search/ [get]
func (r *routes) handleSearchWeather(c *fiber.Ctx) error {
	q := c.Query("q")
	if !isCityName(q) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid city name",
		})
	}

	current, err := r.weather.Current(c.Context(), q)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: providerFailureMessage,
		})
	}

	return c.JSON(current)
}

// GetForecast godoc
// @Summary Get daily forecast by city name
// @Description Collapses the provider's 5-day/3-hour forecast into one entry per calendar date. Pass sample=first to keep only the first point of each date (at most 7 days) instead of averaging.
// @Tags Weather
// @Produce json
// @Param city query string true "City name" example(Moscow)
// @Param sample query string false "Aggregation strategy" Enums(first)
// @Success 200 {object} models.Forecast "Successful response"
// @Failure 400 {object} ErrorResponse "Invalid city name or provider lookup failed"
// @Router /api/weather/forecast/ [get]
func (r *routes) handleForecast(c *fiber.Ctx) error {
	city := c.Query("city")
	if !isCityName(city) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid city name",
		})
	}

	strategy := weather.StrategyAverage
	if c.Query("sample") == "first" {
		strategy = weather.StrategySampleFirst
	}

	forecast, err := r.weather.Forecast(c.Context(), city, strategy)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: providerFailureMessage,
		})
	}

	return c.JSON(forecast)
}

// GetWeatherByCoordinates godoc
// @Summary Get current weather by coordinates
// @Tags Weather
// @Produce json
// @Param lat query number true "Latitude (-90 to 90)" example(55.7558)
// @Param lon query number true "Longitude (-180 to 180)" example(37.6173)
// @Success 200 {object} models.CurrentWeather "Successful response"
// @Failure 400 {object} ErrorResponse "Missing or invalid coordinates, or provider lookup failed"
// @Router /api/weather/by_coordinates/ [get]
func (r *routes) handleWeatherByCoordinates(c *fiber.Ctx) error {
	lat := c.Query("lat")
	if lat == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lat",
		})
	}

	lon := c.Query("lon")
	if lon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lon",
		})
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil || latFloat < -90 || latFloat > 90 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Latitude must be a number between -90 and 90",
		})
	}

	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil || lonFloat < -180 || lonFloat > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Longitude must be a number between -180 and 180",
		})
	}

	current, err := r.weather.CurrentByCoordinates(c.Context(), latFloat, lonFloat)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: providerFailureMessage,
		})
	}

	return c.JSON(current)
}

// GetWeatherOverview godoc
// @Summary Get current weather and forecast for the default location
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Success 200 {object} locations.Overview "Successful response"
// @Failure 404 {object} ErrorResponse "No default location set"
// @Router /api/weather/overview/ [get]
func (r *routes) handleOverview(c *fiber.Ctx) error {
	overview, err := r.locations.DefaultOverview(c.Context(), currentUserID(c))
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "No default location set",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: providerFailureMessage,
		})
	}

	return c.JSON(overview)
}
