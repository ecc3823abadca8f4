package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridpolicy/gridpolicy/pkg/controller"
	"github.com/gridpolicy/gridpolicy/pkg/log"
	"github.com/gridpolicy/gridpolicy/pkg/server"

	"github.com/levenlabs/go-lflag"
)

func main() {
	// init packages
	c := controller.Configured()

	// init server
	srv := server.Configured(c)

	// parse flags
	lflag.Configure()

	level, err := log.LLogLevel()
	if err != nil {
		panic(err)
	}
	log.SetDefaultLogLevel(level)
	slog.SetDefault(log.Default())
	slog.Debug("logger configured", slog.String("level", level.String()))

	settings := c.Settings()
	slog.Info(
		"policy configured",
		slog.Any("peakHours", settings.PeakHours),
		slog.Any("sunniestHours", settings.SunniestHours),
		slog.Bool("cycloneMode", settings.CycloneMode),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run will block until context is canceled or error happens
	if err := srv.Run(ctx); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "server failed", "error", err)
		os.Exit(1)
	}
	log.Ctx(ctx).InfoContext(ctx, "server exited cleanly")
}
