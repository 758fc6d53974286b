package main

import (
	"fmt"
	"os"

	"github.com/podfickle/podfickle/pkg/ao3"
	"github.com/podfickle/podfickle/pkg/browser"
	"github.com/podfickle/podfickle/pkg/config"
	"github.com/podfickle/podfickle/pkg/logging"
	"github.com/podfickle/podfickle/pkg/podfic"
	"github.com/podfickle/podfickle/pkg/secret"
)

const sessionName = "ao3"

// liveSession is a running browser with a client driving it.
type liveSession struct {
	manager *browser.SessionManager
	session *browser.Session
	client  *ao3.Client
}

// startSession launches the browser and returns a client on it. The caller
// owns the returned manager and must shut it down.
func startSession(cli *CLIConfig, cfg *config.Config, headless bool, logger *logging.Logger) (*liveSession, error) {
	manager := browser.NewSessionManager()
	if err := manager.Initialize(); err != nil {
		return nil, err
	}

	session, err := manager.StartSession(sessionName, sessionOptions(cfg, headless))
	if err != nil {
		_ = manager.Shutdown()
		return nil, err
	}

	accessor, err := browser.NewAccessor(session, cli.BaseURL, logger.With("browser"),
		browser.WithLocateTimeout(cfg.Browser.LocateTimeout.Std()))
	if err != nil {
		_ = manager.Shutdown()
		return nil, err
	}

	client := ao3.NewClient(accessor, cfg.AO3Username, secret.Env(secret.PasswordEnv), logger.With("ao3"))
	return &liveSession{manager: manager, session: session, client: client}, nil
}

func sessionOptions(cfg *config.Config, headless bool) browser.SessionOptions {
	return browser.SessionOptions{
		Headless: headless,
		Viewport: &browser.Viewport{
			Width:  cfg.Browser.Viewport.Width,
			Height: cfg.Browser.Viewport.Height,
		},
		ActionTimeout: float64(cfg.Browser.ActionTimeout.Std().Milliseconds()),
	}
}

// loadParent logs in and scrapes the parent work, dropping excluded tags.
func loadParent(client *ao3.Client, cfg *config.Config) (podfic.ParentWork, error) {
	filter, err := cfg.TagFilter()
	if err != nil {
		return podfic.ParentWork{}, err
	}

	if err := client.Establish(); err != nil {
		return podfic.ParentWork{}, err
	}
	if err := client.Home(); err != nil {
		return podfic.ParentWork{}, err
	}

	work, err := client.LoadWork(cfg.Parent.WorkID)
	if err != nil {
		return podfic.ParentWork{}, err
	}
	return podfic.ParentWork{Work: work.WithoutFreeform(filter), Config: cfg.Parent}, nil
}

// loadSavedParent scrapes the parent work from a saved work page without a
// browser.
func loadSavedParent(path, baseURL string, cfg *config.Config, logger *logging.Logger) (podfic.ParentWork, error) {
	filter, err := cfg.TagFilter()
	if err != nil {
		return podfic.ParentWork{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return podfic.ParentWork{}, fmt.Errorf("failed to open saved work page: %w", err)
	}
	defer f.Close()

	doc, err := browser.NewDocument(f, baseURL)
	if err != nil {
		return podfic.ParentWork{}, err
	}
	accessor, err := browser.NewAccessor(doc, baseURL, logger.With("browser"))
	if err != nil {
		return podfic.ParentWork{}, err
	}

	client := ao3.NewClient(accessor, cfg.AO3Username, secret.Env(secret.PasswordEnv), logger.With("ao3"))
	work, err := client.LoadWork(cfg.Parent.WorkID)
	if err != nil {
		return podfic.ParentWork{}, err
	}
	return podfic.ParentWork{Work: work.WithoutFreeform(filter), Config: cfg.Parent}, nil
}
