package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/cmd"
	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	appLog := logger.New(logger.Options{
		ServiceName: "orderdesk",
		Level:       logger.ParseLevel(configs.LogLevel),
		Format:      configs.LogFormat,
		Output:      os.Stdout,
	})

	location, err := configs.Location()
	if err != nil {
		log.Fatalf("Error loading timezone %q: %v", configs.Timezone, err)
	}

	db, err := gormdb.Open(gormdb.Options{
		Driver: configs.DBDriver,
		DSN:    configs.DBDSN,
		Logger: logger.Component(appLog, "gorm"),
	})
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := cmd.NewCompositionRoot(configs, db, kernel.NewSystemClock(location), location, registry, appLog)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startWebServer(ctx, app, registry, configs.HTTPPort)
	appLog.Info().Msg("orderdesk stopped")
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, registry *prometheus.Registry, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = httpin.NewRequestValidator()
	e.Use(middleware.Recover())

	apiDoc, err := httpin.LoadAPIDoc()
	if err != nil {
		log.Fatalf("Error loading API document: %v", err)
	}
	httpin.RegisterHandlers(e, app.CreateServer())
	httpin.RegisterDocs(e, apiDoc)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down web server: %v", err)
	}
}
