package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"fulfillment/cmd"
	adapterhttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, logger)

	switch configs.Mode {
	case "watch":
		runWatch(&app, configs)
	default:
		runOnce(&app, logger)
	}
}

// runOnce executes a single batch run and exits. An empty drop directory
// is not an error for the operator; there is simply nothing to do.
func runOnce(app *cmd.CompositionRoot, logger *slog.Logger) {
	handler := app.CreateProcessBatchCommandHandler()

	err := handler.Handle(context.Background(), commands.NewProcessBatchCommand())
	if errors.Is(err, ports.ErrNoInputFound) {
		logger.Info("No input file in drop directory")
		return
	}
	if err != nil {
		log.Fatalf("Batch processing failed: %v", err)
	}
}

// runWatch starts the polling job and serves the read-side HTTP API until
// the process is stopped.
func runWatch(app *cmd.CompositionRoot, configs cmd.Config) {
	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file")
	}

	config := cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		Mode:            envOrDefault("APP_MODE", "once"),
		WatchSchedule:   envOrDefault("WATCH_SCHEDULE", "0 * * * * *"),
		DropDir:         envOrDefault("DROP_DIR", "."),
		ArchiveDir:      envOrDefault("ARCHIVE_DIR", "archive"),
		LabelTempDir:    envOrDefault("LABEL_TEMP_DIR", "pdfs-temp"),
		RunLogPath:      envOrDefault("RUN_LOG_PATH", "fulfillment.log"),
		PdftkPath:       envOrDefault("PDFTK_PATH", "/usr/local/bin/pdftk"),
		GoogleAPIKey:    requireEnv("GOOGLE_API_KEY"),
		LasershipAPIID:  requireEnv("LASERSHIP_API_ID"),
		LasershipAPIKey: requireEnv("LASERSHIP_API_KEY"),
		LasershipTest:   envOrDefault("LASERSHIP_TEST", "true") != "false",
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapterhttp.NewServer(app.CreateGetArchivedRunsQueryHandler())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
