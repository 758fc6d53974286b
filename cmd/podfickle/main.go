// Package main provides podfickle, which posts podfics to the Archive of Our
// Own by driving a browser the way a podficcer would.
//
// describe prints a podcast episode description for the parent work. post
// fills the new work form and leaves it open in the browser for review.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/podfickle/podfickle/pkg/config"
	"github.com/podfickle/podfickle/pkg/logging"
	"github.com/podfickle/podfickle/pkg/secret"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A logger is returned even when the log file cannot be opened
	logger, err := logging.NewLogger("podfickle")
	defer logger.Close()
	if err == nil {
		logger.Debugf("Logging to %s", logger.LogPath())
	}

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Errorf("%v", err)
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run parses args and executes the chosen subcommand.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, logger *logging.Logger) error {
	cli, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if cli.ShowVersion {
		fmt.Fprintf(stdout, "podfickle v%s\n", version)
		return nil
	}

	if err := secret.LoadDotenv(cli.EnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(cli.ConfigFile)
	if err != nil {
		return err
	}
	if cli.Headless {
		cfg.Browser.Headless = true
	}

	switch cli.Command {
	case commandDescribe:
		return runDescribe(ctx, cli, cfg, stdout, stderr, logger)
	case commandPost:
		return runPost(ctx, cli, cfg, stderr, logger)
	default:
		return fmt.Errorf("unknown command %q", cli.Command)
	}
}
