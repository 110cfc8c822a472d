package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/sant0-9/quill/internal/clipboard"
	"github.com/sant0-9/quill/internal/compose"
	"github.com/sant0-9/quill/internal/config"
	"github.com/sant0-9/quill/internal/observability"
	"github.com/sant0-9/quill/internal/rng"
	"github.com/sant0-9/quill/internal/server"
	"github.com/sant0-9/quill/internal/templates"
	"github.com/sant0-9/quill/internal/tui"
)

var version = "dev"

func main() {
	// .env is optional
	_ = godotenv.Load()

	serve := flag.Bool("serve", false, "run the HTTP API instead of the terminal UI")
	addr := flag.String("addr", "", "listen address for -serve (default from config, :8080)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("quill", version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	bank := templates.Default()
	if cfg.TemplatesPath != "" {
		bank, err = templates.Load(cfg.TemplatesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	composer := compose.New(bank)

	if *serve {
		err = runServer(cfg, composer)
	} else {
		err = runTUI(cfg, composer)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cfg *config.Config, composer *compose.Composer) error {
	if err := observability.Configure(os.Stdout, cfg.Log.Level, true); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(composer, cfg).ListenAndServe(ctx)
}

func runTUI(cfg *config.Config, composer *compose.Composer) error {
	// stdout belongs to the TUI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "quill")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	if err := observability.Configure(logOut, cfg.Log.Level, false); err != nil {
		return err
	}

	if !config.Exists() {
		if err := config.DefaultConfig().Save(); err != nil {
			observability.Logger().Warn("could not write default config", "error", err)
		}
	}

	source := rng.NewRandom()
	if cfg.Seed != nil {
		source = rng.New(*cfg.Seed)
	}

	var clip clipboard.Writer = clipboard.System{}
	if !clipboard.Available() {
		observability.Logger().Warn("system clipboard unavailable, copies stay in memory")
		clip = &clipboard.Memory{}
	}

	app := tui.NewApp(composer, source, clip)
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
