// Command bemshell serves the BEM admin shell over HTTP: session, navigation
// and the role-gated administration endpoints.
//
//	@title			BEM Admin Shell API
//	@version		1.0
//	@description	Session, navigation and role-gated administration for the BEM organisation app.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bemapp/orgadmin-shell/internal/app"
	"github.com/bemapp/orgadmin-shell/internal/pkg/config"
	"github.com/bemapp/orgadmin-shell/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "bemshell",
	})
	log := logger.Component("app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shell, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("startup failed")
	}
	defer func() {
		if err := shell.Close(); err != nil {
			log.Error().Err(err).Msg("closing store failed")
		}
	}()

	shell.Start(ctx)

	e := shell.Router(nil)
	addr := fmt.Sprintf(":%s", cfg.Port)
	go func() {
		log.Info().Str("addr", addr).Str("backend", cfg.Backend.URL).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
