package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/Unti1/AlsocodeTestTask/internal/services/auth"
	"github.com/Unti1/AlsocodeTestTask/internal/services/locations"
	"github.com/Unti1/AlsocodeTestTask/internal/services/weather"
	"github.com/Unti1/AlsocodeTestTask/pkg/logger"
)

type routes struct {
	weather   *weather.Service
	locations *locations.Service
	auth      *auth.Service
	l         *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.Service,
	locationService *locations.Service,
	authService *auth.Service,
	l *logger.Logger,
) {
	r := &routes{
		weather:   weatherService,
		locations: locationService,
		auth:      authService,
		l:         l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile("docs/swagger.json")
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	api := app.Group("/api")

	weatherGroup := api.Group("/weather")
	weatherGroup.Get("/current/", r.handleCurrentWeather)
	weatherGroup.Get("/search/", r.handleSearchWeather)
	weatherGroup.Get("/forecast/", r.handleForecast)
	weatherGroup.Get("/by_coordinates/", r.handleWeatherByCoordinates)
	weatherGroup.Get("/overview/", r.requireAuth, r.handleOverview)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", r.handleRegister)
	authGroup.Post("/login", r.handleLogin)
	authGroup.Post("/logout", r.requireAuth, r.handleLogout)

	locationsGroup := api.Group("/locations", r.requireAuth)
	locationsGroup.Get("/", r.handleListLocations)
	locationsGroup.Post("/", r.handleCreateLocation)
	locationsGroup.Get("/:id/", r.handleGetLocation)
	locationsGroup.Put("/:id/", r.handleUpdateLocation)
	locationsGroup.Delete("/:id/", r.handleDeleteLocation)
	locationsGroup.Post("/:id/set_default/", r.handleSetDefault)
	locationsGroup.Get("/:id/history/", r.handleLocationHistory)
	locationsGroup.Get("/:id/weather/", r.handleLocationWeather)
}
