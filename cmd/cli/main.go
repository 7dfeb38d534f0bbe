package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/termvault/internal/client/cli"
	"github.com/dmitrijs2005/termvault/internal/client/config"
	"github.com/dmitrijs2005/termvault/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.MustLoadConfig()

	logger, closer, err := logging.OpenFile(cfg.LogFile, slog.LevelInfo)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer closer.Close()

	app, err := cli.NewApp(cfg, logger.With("session", uuid.NewString()))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		closer.Close()
		log.Fatalf("%v", err)
	}
}
