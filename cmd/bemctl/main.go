// Command bemctl drives the BEM admin shell from a terminal: sign in, inspect
// the resolved menu and read announcements with the persisted session.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/bemapp/orgadmin-shell/internal/cmd/bemctl"
	"github.com/bemapp/orgadmin-shell/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bemctl.ParseConfig(ctx, flag.CommandLine, os.Args[1:], envconfig.OsLookuper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger.Init(logger.Options{Level: "warn", Output: os.Stderr, Service: "bemctl"})

	if err := bemctl.Run(ctx, cfg, os.Stdout, logger.Component("cli")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
