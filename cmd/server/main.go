package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/portview/internal/config"
	"github.com/nfrund/portview/internal/logging"
	"github.com/nfrund/portview/internal/server"
	"github.com/spf13/afero"
)

func main() {
	cfg := config.MustLoad()
	logging.New(cfg.LogFormat, cfg.LogLevel)

	s, err := server.New(cfg, afero.NewOsFs())
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	s.Start()
}
