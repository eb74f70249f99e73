package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/frolovpd/shopwindow/internal/client/cli"
	"github.com/frolovpd/shopwindow/internal/client/config"
	"github.com/frolovpd/shopwindow/internal/logging"
)

func main() {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.WarnLevel)
	log := logging.NewZerologLogger(zl)

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to start")
	}

	app.Run(context.Background())
}
