package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/juju/clock"
	"github.com/juju/gnuflag"

	"github.com/johanforsgren/tokendash/internal/api"
	"github.com/johanforsgren/tokendash/internal/config"
	"github.com/johanforsgren/tokendash/internal/dashboard"
	"github.com/johanforsgren/tokendash/internal/logger"
	"github.com/johanforsgren/tokendash/internal/storage"
	"github.com/johanforsgren/tokendash/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tokendash: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := parseFlags(cfg, args); err != nil {
		return err
	}

	if err := logger.Init(cfg.LogPath); err != nil {
		return err
	}
	defer logger.Close()
	logger.Log("Starting tokendash (api=%s, interval=%s, auto=%v)", cfg.APIURL, cfg.RefreshInterval, cfg.AutoRefresh)

	store, err := storage.NewFileStore(cfg.SessionDir)
	if err != nil {
		return err
	}

	client, err := api.NewClient(cfg.APIURL, api.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return err
	}

	renderer := ui.NewRenderer()
	controller, err := dashboard.New(dashboard.Config{
		Service:            client,
		Store:              store,
		Renderer:           renderer,
		Clock:              clock.WallClock,
		RefreshInterval:    cfg.RefreshInterval,
		AutoRefreshOnLogin: cfg.AutoRefresh,
	})
	if err != nil {
		return err
	}
	defer controller.Close()

	program := tea.NewProgram(ui.NewModel(controller), tea.WithAltScreen())
	renderer.Attach(program)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	logger.Log("tokendash exited")
	return nil
}

// parseFlags applies command-line overrides on top of the environment.
func parseFlags(cfg *config.Config, args []string) error {
	flags := gnuflag.NewFlagSet("tokendash", gnuflag.ContinueOnError)
	flags.StringVar(&cfg.APIURL, "api", cfg.APIURL, "base URL of the token API")
	flags.DurationVar(&cfg.RefreshInterval, "interval", cfg.RefreshInterval, "auto-refresh period")
	flags.StringVar(&cfg.LogPath, "log", cfg.LogPath, "append session log to this file")
	flags.BoolVar(&cfg.AutoRefresh, "auto", cfg.AutoRefresh, "enable auto-refresh after login")

	if err := flags.Parse(true, args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	return cfg.Validate()
}
