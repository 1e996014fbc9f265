package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Unti1/AlsocodeTestTask/config"
	v1 "github.com/Unti1/AlsocodeTestTask/internal/controllers/http/v1"
	"github.com/Unti1/AlsocodeTestTask/internal/repositories"
	"github.com/Unti1/AlsocodeTestTask/internal/services/auth"
	"github.com/Unti1/AlsocodeTestTask/internal/services/locations"
	"github.com/Unti1/AlsocodeTestTask/internal/services/weather"
	"github.com/Unti1/AlsocodeTestTask/pkg/httpserver"
	"github.com/Unti1/AlsocodeTestTask/pkg/logger"
	"github.com/Unti1/AlsocodeTestTask/pkg/observe"

	_ "github.com/Unti1/AlsocodeTestTask/docs"
)

// @title Weather Locations API
// @version 1.0.0
// @description Saved weather locations with current conditions and daily forecasts from OpenWeatherMap.
// @termsOfService http://swagger.io/terms/

// @contact.name Weather Locations API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name Weather
// @tag.description Current conditions and forecasts
// @tag.name Locations
// @tag.description Saved locations of the authenticated user
// @tag.name Auth
// @tag.description Registration and session tokens
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load configuration:", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	if cnf.SentryDSN != "" {
		writers = append(writers, observe.NewSentryHook("production", cnf.AppName, cnf.SentryDSN, false))
	}
	l := logger.NewZapLogger(cnf.AppName, writers...)

	app := httpserver.InitFiberServer(cnf.AppName)

	db, err := repositories.OpenSQLite(cnf.DatabasePath)
	if err != nil {
		l.Fatal("cannot open database", map[string]any{"err": err, "path": cnf.DatabasePath})
	}

	redisClient, err := repositories.NewRedisClient(ctx, cnf.RedisURL)
	if err != nil {
		l.Fatal("cannot connect to redis", map[string]any{"err": err})
	}

	// Weather routes cannot function without the credential; refuse to
	// start rather than fail per-request.
	owmRepo, err := repositories.NewOpenWeatherMapRepository(cnf.OpenWeatherAPIKey, l, &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		l.Fatal("cannot construct weather provider", map[string]any{"err": err})
	}

	var provider repositories.WeatherProvider = owmRepo
	if cnf.Provider.RequestsPerSecond > 0 {
		provider = repositories.NewRateLimitedProvider(provider, cnf.Provider.RequestsPerSecond, cnf.Provider.Burst)
	}

	userRepo := repositories.NewUserRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	readingRepo := repositories.NewReadingRepository(db)
	tokenStore := repositories.NewRedisTokenStore(redisClient)

	weatherService := weather.NewService(provider, l)
	authService := auth.NewService(userRepo, tokenStore, cnf.TokenTTL, l)
	locationService := locations.NewService(locationRepo, readingRepo, weatherService, l)

	v1.NewRouter(
		app,
		weatherService,
		locationService,
		authService,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = redisClient.Close()
		_ = db.Close()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
