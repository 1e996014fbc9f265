package weather

import (
	"math"
	"strconv"
	"time"

	"github.com/Unti1/AlsocodeTestTask/internal/models"
	"github.com/Unti1/AlsocodeTestTask/internal/repositories"
)

// compassPoints in bearing order; 0 degrees is north and 360 wraps back
// to index 0 through the modulo.
var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func windDirection(degrees float64) string {
	index := int(math.Round(degrees/45)) % 8
	return compassPoints[index]
}

// formatClock renders a unix timestamp as a local 24-hour clock string.
func formatClock(unix int64) string {
	return time.Unix(unix, 0).Format("15:04")
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// NormalizeCurrent flattens a current-conditions payload into the display
// shape. Temperature and feels-like are rounded to whole degrees.
func NormalizeCurrent(p *repositories.CurrentPayload) models.CurrentWeather {
	visibility := models.VisibilityNoData
	if p.Visibility != nil {
		visibility = strconv.Itoa(*p.Visibility)
	}

	return models.CurrentWeather{
		City:          p.Name,
		Country:       p.Sys.Country,
		Temperature:   roundInt(p.Main.Temp),
		FeelsLike:     roundInt(p.Main.FeelsLike),
		Description:   p.Weather[0].Description,
		Icon:          p.Weather[0].Icon,
		Humidity:      p.Main.Humidity,
		Pressure:      p.Main.Pressure,
		WindSpeed:     p.Wind.Speed,
		WindDirection: windDirection(p.Wind.Deg),
		Sunrise:       formatClock(p.Sys.Sunrise),
		Sunset:        formatClock(p.Sys.Sunset),
		Clouds:        p.Clouds.All,
		Visibility:    visibility,
		Coordinates: models.Coordinates{
			Lat: p.Coord.Lat,
			Lon: p.Coord.Lon,
		},
	}
}

// dailyAccum collects every 3-hour point of one calendar date.
type dailyAccum struct {
	date         string
	temperatures []float64
	humidity     []float64
	pressure     []float64
	windSpeed    []float64
	clouds       []float64
	descriptions []string
	icons        []string
}

// AggregateDaily is the primary forecast strategy: every 3-hour point of a
// date contributes to that date's averages. One entry per distinct date,
// in the order dates first appear in the input (the input is chronological,
// so the output is too).
func AggregateDaily(p *repositories.ForecastPayload) models.Forecast {
	var days []*dailyAccum
	index := make(map[string]*dailyAccum)

	for _, point := range p.List {
		date := pointDate(point)

		day, ok := index[date]
		if !ok {
			day = &dailyAccum{date: date}
			index[date] = day
			days = append(days, day)
		}

		day.temperatures = append(day.temperatures, point.Main.Temp)
		day.humidity = append(day.humidity, float64(point.Main.Humidity))
		day.pressure = append(day.pressure, float64(point.Main.Pressure))
		day.windSpeed = append(day.windSpeed, point.Wind.Speed)
		day.clouds = append(day.clouds, float64(point.Clouds.All))
		if len(point.Weather) > 0 {
			day.descriptions = append(day.descriptions, point.Weather[0].Description)
			day.icons = append(day.icons, point.Weather[0].Icon)
		}
	}

	forecasts := make([]models.DailyForecast, 0, len(days))
	for _, day := range days {
		forecasts = append(forecasts, models.DailyForecast{
			Date:           day.date,
			City:           p.City.Name,
			Country:        p.City.Country,
			AvgTemperature: roundInt(mean(day.temperatures)),
			AvgHumidity:    roundInt(mean(day.humidity)),
			AvgPressure:    roundInt(mean(day.pressure)),
			AvgWindSpeed:   round1(mean(day.windSpeed)),
			AvgClouds:      roundInt(mean(day.clouds)),
			Description:    modalDescription(day.descriptions),
			Icon:           firstOrEmpty(day.icons),
		})
	}

	return models.Forecast{
		City:      p.City.Name,
		Country:   p.City.Country,
		Forecasts: forecasts,
	}
}

// sampleDayLimit caps the single-point-per-day strategy.
const sampleDayLimit = 7

// SampleFirstDaily is the alternate strategy: only the chronologically
// first point of each date is kept, truncated to the first seven days.
func SampleFirstDaily(p *repositories.ForecastPayload) models.Forecast {
	samples := []models.DailySample{}
	seen := make(map[string]bool)

	for _, point := range p.List {
		date := pointDate(point)
		if seen[date] {
			continue
		}
		seen[date] = true

		if len(samples) == sampleDayLimit {
			break
		}

		sample := models.DailySample{
			Date:        date,
			Temperature: point.Main.Temp,
			FeelsLike:   point.Main.FeelsLike,
			Humidity:    point.Main.Humidity,
			Pressure:    point.Main.Pressure,
			WindSpeed:   point.Wind.Speed,
		}
		if len(point.Weather) > 0 {
			sample.Description = point.Weather[0].Description
			sample.Icon = point.Weather[0].Icon
		}

		samples = append(samples, sample)
	}

	return models.Forecast{
		City:      p.City.Name,
		Country:   p.City.Country,
		Forecasts: samples,
	}
}

// pointDate extracts the grouping key: the date portion of dt_txt, with
// the unix timestamp as a fallback for malformed entries.
func pointDate(point repositories.ForecastPoint) string {
	if len(point.DtTxt) >= 10 {
		return point.DtTxt[:10]
	}
	return time.Unix(point.Dt, 0).UTC().Format("2006-01-02")
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// modalDescription picks the most frequent description; a stable scan in
// encounter order breaks ties in favor of the earliest one.
func modalDescription(descriptions []string) string {
	counts := make(map[string]int, len(descriptions))
	for _, d := range descriptions {
		counts[d]++
	}

	best := ""
	bestCount := 0
	for _, d := range descriptions {
		if counts[d] > bestCount {
			bestCount = counts[d]
			best = d
		}
	}

	return best
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
