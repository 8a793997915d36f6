// Command topica fits LDA topic models over text and spreadsheet files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/topica/internal/adapters/driven/config/file"
	"github.com/custodia-labs/topica/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/topica/internal/adapters/driving/cli"
	"github.com/custodia-labs/topica/internal/cleaners/regex"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/core/services"
	"github.com/custodia-labs/topica/internal/estimators"
	"github.com/custodia-labs/topica/internal/normalisers"
	"github.com/custodia-labs/topica/internal/postprocessors"
	"github.com/custodia-labs/topica/internal/stopwords"
	"github.com/custodia-labs/topica/internal/vectorisers/count"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var configStore driven.ConfigStore = memory.NewConfigStore()
	if fileStore, err := file.NewConfigStore(""); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings will not be saved: %v\n", err)
	} else {
		configStore = fileStore
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	processors := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(processors)
	pipeline, err := postprocessors.FromSettings(processors, settings.Ingest)
	if err != nil {
		return fmt.Errorf("building ingest pipeline: %w", err)
	}

	stopwordSource := stopwords.Source{}

	ingestService := services.NewIngestService(
		normalisers.NewDefaultRegistry(),
		pipeline,
		stopwordSource,
	)

	topicService := services.NewTopicService(
		regex.New(regex.WithAccentFolding(settings.Cleaning.FoldAccents)),
		count.New(),
		estimators.NewDefaultRegistry(),
		stopwordSource,
	).WithDefaultEstimator(settings.Model.Estimator)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Topics:   topicService,
		Ingest:   ingestService,
		Settings: settingsService,
	})

	return cli.Execute(ctx)
}
