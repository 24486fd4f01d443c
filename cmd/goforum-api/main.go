package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/goforum-dev/goforum/internal/config"
	"github.com/goforum-dev/goforum/internal/logger"
	"github.com/goforum-dev/goforum/internal/router"
	"github.com/goforum-dev/goforum/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	logger.Log.Info("server started", "address", cfg.Public.Address)
	if err := http.ListenAndServe(cfg.Public.Address, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
