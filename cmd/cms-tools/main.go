package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cms-tools/internal/adapter"
	"github.com/MKhiriev/cms-tools/internal/client"
	"github.com/MKhiriev/cms-tools/internal/config"
	"github.com/MKhiriev/cms-tools/internal/logger"
	"github.com/MKhiriev/cms-tools/internal/service"
	"github.com/MKhiriev/cms-tools/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLoggerWithWriter("cms-tools", os.Stderr)
	cfg, err := config.GetFetchConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !log.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("log_level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	source, err := adapter.NewGitHubConfigSource(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create config source")
	}

	services := service.NewServices(source, log)

	app, err := client.NewApp(services, cfg.Fetch, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	version, date, commit := info.BuildVersion(), info.BuildDate(), info.BuildCommit()
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", version)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", date)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", commit)
}
