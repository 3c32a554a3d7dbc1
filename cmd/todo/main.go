package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	printer := ui.NewPrinter(os.Stdout, os.Stderr, ui.ThemeByName(config.DefaultTheme))

	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	cfg, args, err := config.Load(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printer.Fail("config: " + err.Error())
		return 2
	}
	theme := ui.ThemeByName(cfg.Theme)
	printer = ui.NewPrinter(os.Stdout, os.Stderr, theme)
	switch strings.ToLower(cfg.Color) {
	case "always":
		printer.SetColor(true)
	case "never":
		printer.SetColor(false)
	}

	// The TUI owns the terminal, so logs only go somewhere if a file is set.
	interactive := len(args) == 0 || args[0] == "tui"
	logger, closeLog, err := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		File:      cfg.LogFile,
		Discard:   interactive,
		Timestamp: cfg.LogFile != "",
	})
	if err != nil {
		printer.Fail(err.Error())
		return 1
	}
	defer closeLog()

	s := store.New(logger)
	r := &cli.Runner{
		Store:   s,
		Printer: printer,
		Log:     logger,
		Opt:     cli.Options{Group: cfg.Group},
		Stdin:   os.Stdin,
		TUI: func() error {
			return tui.Run(s, tui.Options{Theme: theme, CharLimit: cfg.CharLimit, Log: logger})
		},
	}

	code := r.Run(args)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	logger.Debug("exit", "code", code, "pending", s.Incomplete())
	return code
}
