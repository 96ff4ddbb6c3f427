package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-card/config"
	_ "weather-card/docs"
	"weather-card/internal/clock"
	v1 "weather-card/internal/controllers/http/v1"
	"weather-card/internal/repositories"
	"weather-card/internal/services/theme"
	"weather-card/internal/services/weather"
	"weather-card/internal/timefmt"
	"weather-card/pkg/httpserver"
	"weather-card/pkg/logger"
	"weather-card/pkg/observe"
)

// @title Weather Card API
// @version 1.0.0
// @description Current conditions and a daily forecast from OpenWeatherMap, converted and formatted for display.

// @contact.name Weather Card Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Current conditions and daily forecast
// @tag.name Display
// @tag.description Display helpers
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	hook, err := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.Sentry.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot init sentry:", err)
		os.Exit(1)
	}

	l := logger.NewZapLogger(cnf.App.Name, os.Stdout, hook).WithEnv(cnf.App.Env)
	if err := l.SetLevel(cnf.Log.Level); err != nil {
		l.Warning("unknown log level, keeping debug", map[string]any{"level": cnf.Log.Level})
	}

	loc, err := cnf.DisplayLocation()
	if err != nil {
		l.Fatal("cannot load display timezone", map[string]any{"timezone": cnf.Display.Timezone, "err": err})
	}

	dates, err := timefmt.NewFormatter(cnf.Display.Locale)
	if err != nil {
		l.Fatal("cannot init date formatter", map[string]any{"locale": cnf.Display.Locale, "err": err})
	}

	themes := theme.NewRefresher(clock.System{}, loc, cnf.Display.ThemeInterval, l)
	if err := themes.Start(); err != nil {
		l.Fatal("cannot schedule theme refresh", map[string]any{"err": err})
	}

	repo, err := repositories.InitWeatherRepository(cnf, l)
	if err != nil {
		l.Fatal("cannot init weather repository", map[string]any{"err": err})
	}

	service := weather.NewWeatherService(repo, themes, weather.Display{
		Clock:    clock.System{},
		Location: loc,
		Dates:    dates,
	}, l)

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
	})

	v1.NewRouter(
		app,
		service,
		themes,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Error(err, map[string]any{"msg": "cannot run the server"})
			cancel()
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"provider": repo.Name(),
		"timezone": loc.String(),
		"locale":   dates.Locale(),
		"sentry":   hook.Enabled(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		themes.Stop()
		hook.Flush()
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
