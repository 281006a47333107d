package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vocabquiz/client"
	"vocabquiz/config"
	"vocabquiz/logger"
	"vocabquiz/tui"
)

// main launches the terminal quiz client.
func main() {
	os.Exit(run())
}

// run executes the client and returns an exit code.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	apiURL := flag.String("api", cfg.APIURL, "base URL of the quiz API")
	shuffle := flag.Bool("shuffle", false, "shuffle question order")
	noColor := flag.Bool("no-color", false, "disable colors")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	// stdout belongs to the terminal UI; logs go to stderr and stay quiet unless something fails
	log := logger.NewNop()
	if cfg.IsDevelopment() && os.Getenv("QUIZTUI_DEBUG") != "" {
		if l, err := logger.New(cfg.Env); err == nil {
			log = l
		}
	}
	defer log.Sync()

	api := client.New(*apiURL, client.WithTimeout(*timeout))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	message, err := api.Health(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot reach quiz API at %s: %v\n", *apiURL, err)
		return 1
	}
	log.Info("connected", "api", *apiURL, "health", message)

	model := tui.NewModel(api, tui.Options{
		Shuffle:        *shuffle,
		PassingScore:   cfg.PassingScore,
		RequestTimeout: *timeout,
		NoColor:        *noColor,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		return 1
	}
	return 0
}
