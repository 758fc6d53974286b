package main

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/podfickle/podfickle/pkg/config"
	"github.com/podfickle/podfickle/pkg/logging"
	"github.com/podfickle/podfickle/pkg/podfic"
	"github.com/podfickle/podfickle/pkg/render"
)

// runDescribe prints the podcast episode description for the parent work.
func runDescribe(_ context.Context, cli *CLIConfig, cfg *config.Config, stdout, stderr io.Writer, logger *logging.Logger) error {
	tmpl, err := render.Load(cli.Describe.Template)
	if err != nil {
		return err
	}

	printHeader(stderr, commandDescribe, cfg.Parent.WorkID)

	var parent podfic.ParentWork
	if cli.Describe.WorkHTML != "" {
		printStep(stderr, "Reading saved work page "+cli.Describe.WorkHTML)
		parent, err = loadSavedParent(cli.Describe.WorkHTML, cli.BaseURL, cfg, logger)
	} else {
		parent, err = describeLive(cli, cfg, stderr, logger)
	}
	if err != nil {
		return err
	}

	episode := podfic.PodficEpisode{
		Author:   cfg.AO3Username,
		Tumblr:   cfg.Tumblr,
		Parent:   parent,
		Template: tmpl,
	}
	description, err := episode.Description()
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, description)

	if cli.Describe.Copy {
		if err := clipboard.WriteAll(description); err != nil {
			logger.Warnf("Could not copy description to clipboard: %v", err)
		} else {
			printStep(stderr, "Copied description to clipboard")
		}
	}
	return nil
}

// describeLive scrapes the parent work in a browser that is closed afterwards.
func describeLive(cli *CLIConfig, cfg *config.Config, stderr io.Writer, logger *logging.Logger) (podfic.ParentWork, error) {
	printStep(stderr, "Starting browser")
	live, err := startSession(cli, cfg, cfg.Browser.Headless, logger)
	if err != nil {
		return podfic.ParentWork{}, err
	}
	defer func() {
		if err := live.manager.Shutdown(); err != nil {
			logger.Warnf("Browser shutdown: %v", err)
		}
	}()

	printStep(stderr, "Logging in as "+cfg.AO3Username)
	return loadParent(live.client, cfg)
}
