package main

import (
	"context"
	"log/slog"
	"os"

	"bookstore/internal/buildinfo"
	"bookstore/internal/cli"
	"bookstore/internal/config"
	"bookstore/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewRunLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "err", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "command loop failed", "err", err)
		os.Exit(1)
	}

}
