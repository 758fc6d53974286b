package main

import (
	"context"
	"fmt"
	"io"

	"github.com/podfickle/podfickle/pkg/config"
	"github.com/podfickle/podfickle/pkg/logging"
	"github.com/podfickle/podfickle/pkg/podfic"
	"github.com/podfickle/podfickle/pkg/render"
)

// runPost fills the new work form and waits while the user reviews it.
func runPost(ctx context.Context, cli *CLIConfig, cfg *config.Config, stderr io.Writer, logger *logging.Logger) error {
	postTemplate, err := render.Load(cli.Post.TemplatePost)
	if err != nil {
		return err
	}
	notesTemplate, err := render.Load(cli.Post.TemplateNotes)
	if err != nil {
		return err
	}
	urls, err := cfg.RequireUrls()
	if err != nil {
		return err
	}

	if cfg.Browser.Headless {
		logger.Warnf("Ignoring headless mode: the form is left open for review")
	}

	printHeader(stderr, commandPost, cfg.Parent.WorkID)
	printStep(stderr, "Starting browser")
	live, err := startSession(cli, cfg, false, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := live.manager.Shutdown(); err != nil {
			logger.Warnf("Browser shutdown: %v", err)
		}
	}()

	detach := func() (<-chan struct{}, error) {
		session, err := live.manager.Detach(sessionName)
		if err != nil {
			return nil, err
		}
		return session.Disconnected(), nil
	}
	fill := func() error {
		printStep(stderr, "Logging in as "+cfg.AO3Username)
		parent, err := loadParent(live.client, cfg)
		if err != nil {
			return err
		}

		work := podfic.PodficWork{
			Author:        cfg.AO3Username,
			Tumblr:        cfg.Tumblr,
			Parent:        parent,
			PostTemplate:  postTemplate,
			NotesTemplate: notesTemplate,
			Urls:          urls,
		}

		printStep(stderr, "Filling in the new work form")
		if err := live.client.Home(); err != nil {
			return err
		}
		return live.client.NewPodfic(work)
	}
	return leaveForReview(ctx, detach, fill, stderr, logger)
}

// leaveForReview detaches the browser before fill runs, so the window stays
// open whatever fill returns, then waits until it is closed or ctx ends.
// The driver is stopped by the caller once this returns.
func leaveForReview(ctx context.Context, detach func() (<-chan struct{}, error), fill func() error, stderr io.Writer, logger *logging.Logger) error {
	closed, err := detach()
	if err != nil {
		return err
	}

	fillErr := fill()
	if fillErr != nil {
		logger.Errorf("Filling the form failed: %v", fillErr)
		printNotice(stderr, fmt.Sprintf("Filling the form failed: %v\nFinish it in the browser or close the window.", fillErr))
	} else {
		printNotice(stderr, "Review the form in the browser and post it yourself.\nClose the browser window when you are done.")
	}

	select {
	case <-closed:
		logger.Infof("Browser closed")
	case <-ctx.Done():
		logger.Infof("Interrupted, closing the browser")
	}
	return fillErr
}
