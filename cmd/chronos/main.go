package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/chronos/internal/cli"
	"github.com/alexanderramin/chronos/internal/config"
	"github.com/alexanderramin/chronos/internal/storage"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var observer storage.Observer = storage.NoopObserver{}
	if cfg.Debug {
		observer = storage.NewLogObserver(os.Stderr)
	}

	store := storage.NewFileStore(cfg.File, observer)
	ledger, err := store.Load()
	if err != nil {
		return err
	}

	app := &cli.App{
		Ledger: ledger,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	rootCmd := cli.NewRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		return err
	}

	// Persist only after a command changed the ledger.
	if app.Dirty() {
		return store.Save(ledger)
	}
	return nil
}
