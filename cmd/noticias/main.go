// Command noticias shows the Springfield news list in the terminal.
//
// Usage:
//
//	noticias [flags]
//
// Flags override ~/.noticias/config.json and NOTICIAS_* environment
// variables (a .env file in the working directory is read too).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/abelbrown/noticias/internal/config"
	"github.com/abelbrown/noticias/internal/logging"
	"github.com/abelbrown/noticias/internal/news"
	"github.com/abelbrown/noticias/internal/normalize"
	"github.com/abelbrown/noticias/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "noticias: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file (default ~/.noticias/config.json)")
	provider := flag.String("provider", "", "news source: fixture, file or rss")
	file := flag.String("file", "", "JSON file for the file provider")
	feed := flag.String("feed", "", "RSS/Atom URL for the rss provider")
	delay := flag.Duration("delay", -1, "simulated latency for fixture/file providers")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *provider != "" {
		cfg.Provider.Kind = *provider
	}
	if *file != "" {
		cfg.Provider.Path = *file
	}
	if *feed != "" {
		cfg.Provider.FeedURL = *feed
	}
	if *delay >= 0 {
		cfg.Provider.DelayMs = int(delay.Milliseconds())
	}

	if err := logging.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Close()

	src, err := news.NewProvider(cfg.Provider)
	if err != nil {
		return err
	}
	logging.Info("provider ready", "kind", cfg.Provider.Kind)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := ui.NewApp(ui.AppConfig{
		Context:        ctx,
		Load:           ui.NewsLoader(src, normalize.New(normalize.WithShortLength(cfg.UI.ShortLength))),
		Title:          cfg.UI.Title,
		ReloadInterval: time.Duration(cfg.UI.ReloadIntervalMs) * time.Millisecond,
	})
	defer app.Close()

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logging.Error("program exited", "err", err)
		return err
	}
	return nil
}
