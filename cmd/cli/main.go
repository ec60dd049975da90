package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/uniswap/internal/buildinfo"
	"github.com/dmitrijs2005/uniswap/internal/client/cli"
	"github.com/dmitrijs2005/uniswap/internal/client/config"
	"github.com/dmitrijs2005/uniswap/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

	if err := app.Close(context.Background()); err != nil {
		logger.Error(ctx, "failed to close app", "error", err)
	}
}
