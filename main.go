package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"pageforge/global"
	"pageforge/initialize"
	"pageforge/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := initialize.Build(ctx, *configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build failed")
	}

	go func() {
		if err := server.StartHTTPServer(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router); err != nil {
			global.Logger.Fatal().Err(err).Msg("http server failed")
		}
	}()
	global.Logger.Info().
		Str("host", app.Cfg.Server.Host).
		Int("port", app.Cfg.Server.Port).
		Str("db", app.Cfg.DB.Driver).
		Msg("pageforge started")

	<-ctx.Done()
	global.Logger.Info().Msg("shutdown signal received")
}
