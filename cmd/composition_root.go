package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/csvdrop"
	"fulfillment/internal/adapters/out/googlemaps"
	"fulfillment/internal/adapters/out/labelstore"
	"fulfillment/internal/adapters/out/lasership"
	"fulfillment/internal/adapters/out/manifest"
	"fulfillment/internal/adapters/out/runlog"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"
)

type CompositionRoot struct {
	configs Config
	logger  *slog.Logger
}

func NewCompositionRoot(configs Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs: configs,
		logger:  logger,
	}
}

func (c *CompositionRoot) CreateProcessBatchCommandHandler() commands.ProcessBatchCommandHandler {
	source := csvdrop.NewSource(c.configs.DropDir, c.configs.ArchiveDir, c.logger)

	resolver := googlemaps.NewResolver("", c.configs.GoogleAPIKey, nil)

	gateway := lasership.NewGateway(
		"",
		lasership.Credentials{
			APIID:  c.configs.LasershipAPIID,
			APIKey: c.configs.LasershipAPIKey,
			Test:   c.configs.LasershipTest,
		},
		lasership.DefaultShipperIdentity(),
		nil,
	)

	labels := labelstore.NewStore(c.configs.LabelTempDir, c.configs.ArchiveDir, c.configs.PdftkPath)
	manifests := manifest.NewWriter(c.configs.ArchiveDir)
	runLog := runlog.NewLog(c.configs.RunLogPath)

	return commands.NewProcessBatchCommandHandler(
		source, resolver, gateway, labels, manifests, runLog, c.logger,
	)
}

func (c *CompositionRoot) CreateGetArchivedRunsQueryHandler() queries.GetArchivedRunsQueryHandler {
	return queries.NewGetArchivedRunsQueryHandler(c.configs.ArchiveDir)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateProcessBatchCommandHandler(),
		c.configs.WatchSchedule,
		c.logger,
	)
}
