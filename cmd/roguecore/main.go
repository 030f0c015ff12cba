// Roguecore is a turn-based dungeon crawler for the terminal.
// Usage: roguecore [--version] [--plain] [--script <file>] [--trace]
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/nathoo/roguecore/cli"
	"github.com/nathoo/roguecore/config"
	"github.com/nathoo/roguecore/engine"
	"github.com/nathoo/roguecore/loader"
	"github.com/nathoo/roguecore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	trace := false
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("roguecore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Usage: roguecore [--version] [--plain] [--script <file>] [--trace]\n")
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}
	logger, closer, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg, logger, plain, trace, scriptFile); err != nil {
		logger.WithError(err).Error("Game aborted.")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logrus.Logger, plain, trace bool, scriptFile string) error {
	bestiary, err := loader.Default()
	if err != nil {
		return fmt.Errorf("loading bestiary: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"component": "loader",
		"monsters":  len(bestiary.Monsters),
		"items":     len(bestiary.Items),
	}).Info("Bestiary loaded.")

	eng, err := engine.NewGame(bestiary, cfg.Seed, logrus.NewEntry(logger).WithField("seed", cfg.Seed))
	if err != nil {
		return err
	}

	// Script mode: open file, force plain, echo keys.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		return c.Run()
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(eng)
		c.Trace = trace
		return c.Run()
	}

	return tui.Run(eng)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
