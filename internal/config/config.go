// Package config loads session options for the todo binary.
//
// Values are layered, later sources overriding earlier ones:
//  1. Defaults
//  2. User config file ($XDG_CONFIG_HOME/todo/todo.toml or the OS equivalent)
//  3. Project config file (todo.toml or .todo.toml in the current directory)
//  4. The file named by -config
//  5. Environment variables (TODO_*)
//  6. CLI flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTheme     = "classic"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultCharLimit = 200
	DefaultColor     = "auto"
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// ColorModes lists the accepted color settings.
var ColorModes = []string{"auto", "always", "never"}

// Config holds the options that shape one session.
type Config struct {
	Theme     string `toml:"theme"`
	Group     bool   `toml:"group"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"`
	CharLimit int    `toml:"char_limit"`
	Color     string `toml:"color"`
}

// Default returns a config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Group = false
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogFile = ""
	cfg.CharLimit = DefaultCharLimit
	cfg.Color = DefaultColor
}

// flagValues mirrors Config for the flag package, plus -config.
type flagValues struct {
	configFile string
	theme      string
	group      bool
	logLevel   string
	logFormat  string
	logFile    string
	color      string
}

// Load builds the config and returns the positional args left after flags.
// A nil fs gets a fresh ContinueOnError flag set.
func Load(fs *flag.FlagSet, args []string) (*Config, []string, error) {
	if fs == nil {
		fs = flag.NewFlagSet("todo", flag.ContinueOnError)
	}
	var fv flagValues
	fs.StringVar(&fv.configFile, "config", "", "path to a TOML config file")
	fs.StringVar(&fv.theme, "theme", "", "output theme: classic, neon or mono")
	fs.BoolVar(&fv.group, "group", false, "group output by pending/done")
	fs.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&fv.logFormat, "log-format", "", "log format: text, json or logfmt")
	fs.StringVar(&fv.logFile, "log-file", "", "append logs to this file")
	fs.StringVar(&fv.color, "color", "", "colored output: auto, always or never")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := Default()

	if p := findUserConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}
	if p := findProjectConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, nil, fmt.Errorf("loading project config file %s: %w", p, err)
		}
	}
	if fv.configFile != "" {
		if err := loadConfigFile(cfg, fv.configFile); err != nil {
			return nil, nil, fmt.Errorf("loading config file %s: %w", fv.configFile, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, nil, err
	}

	// Only flags the user actually passed override earlier layers.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = fv.theme
		case "group":
			cfg.Group = fv.group
		case "log-level":
			cfg.LogLevel = fv.logLevel
		case "log-format":
			cfg.LogFormat = fv.logFormat
		case "log-file":
			cfg.LogFile = fv.logFile
		case "color":
			cfg.Color = fv.color
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate checks fields that have a closed set of values.
func (c *Config) Validate() error {
	if !oneOf(c.Theme, Themes) {
		return fmt.Errorf("invalid theme %q (want one of %s)", c.Theme, strings.Join(Themes, ", "))
	}
	if !oneOf(c.Color, ColorModes) {
		return fmt.Errorf("invalid color %q (want one of %s)", c.Color, strings.Join(ColorModes, ", "))
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("invalid char_limit %d: must not be negative", c.CharLimit)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	v = strings.ToLower(v)
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("TODO_THEME"); ok {
		cfg.Theme = v
	}
	if v, ok := os.LookupEnv("TODO_GROUP"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TODO_GROUP: %w", err)
		}
		cfg.Group = b
	}
	if v, ok := os.LookupEnv("TODO_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("TODO_LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv("TODO_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv("TODO_COLOR"); ok {
		cfg.Color = v
	}
	if v, ok := os.LookupEnv("TODO_CHAR_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TODO_CHAR_LIMIT: %w", err)
		}
		cfg.CharLimit = n
	}
	return nil
}

func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return existing(filepath.Join(dir, "todo", "todo.toml"))
}

func findProjectConfigFile() string {
	for _, name := range []string{"todo.toml", ".todo.toml"} {
		if p := existing(name); p != "" {
			return p
		}
	}
	return ""
}

func existing(path string) string {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return path // let the loader report the real error
		}
		return ""
	}
	return path
}
