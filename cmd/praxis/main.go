package main

import (
	"fmt"

	"github.com/dchas/praxis/internal/adapter"
	"github.com/dchas/praxis/internal/client"
	"github.com/dchas/praxis/internal/config"
	"github.com/dchas/praxis/internal/logger"
	"github.com/dchas/praxis/internal/store"
	"github.com/dchas/praxis/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("praxis")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	accounts := adapter.NewHTTPAccountAdapter(cfg.Account)
	classifier := adapter.NewHTTPGoalClassifier(cfg.Classifier, cfg.Account)

	ui, err := tui.New(accounts, cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(cfg, storages, accounts, classifier, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
