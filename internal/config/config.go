// Package config loads the wordpot host configuration from an HCL file with
// WORDPOT_* environment overrides.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/wordpot/internal/game"
	"github.com/lox/wordpot/internal/store"
	"github.com/lox/wordpot/words"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDPOT_"

// Config is the complete host configuration.
type Config struct {
	Rules *RulesConfig `hcl:"rules,block"`
	Store *StoreConfig `hcl:"store,block"`
	Log   *LogConfig   `hcl:"log,block"`
}

// RulesConfig holds the table parameters passed to the engine on every call.
type RulesConfig struct {
	MaxPlayers     int    `hcl:"max_players,optional"`
	StartingHP     uint8  `hcl:"starting_hp,optional"`
	Denom          string `hcl:"denom,optional"`
	MinBet         uint64 `hcl:"min_bet,optional"`
	MinChips       uint64 `hcl:"min_chips,optional"`
	MinBuyIn       uint64 `hcl:"min_buy_in,optional"`
	MaxChips       uint64 `hcl:"max_chips,optional"`
	RakePercent    uint64 `hcl:"rake_percent,optional" env:"RAKE_PERCENT"`
	MaxTurns       uint64 `hcl:"max_turns,optional"`
	JackpotAddress string `hcl:"jackpot_address,optional"`
	ResultsAddress string `hcl:"results_address,optional"`
	Dictionary     string `hcl:"dictionary,optional"` // word list path, empty for the built-in list
}

// StoreConfig selects the blob store.
type StoreConfig struct {
	Driver string `hcl:"driver,optional" env:"STORE_DRIVER"`
	Path   string `hcl:"path,optional" env:"STORE_PATH"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `hcl:"level,optional" env:"LOG_LEVEL"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	r := game.DefaultRules()
	return &Config{
		Rules: &RulesConfig{
			MaxPlayers:     r.MaxPlayers,
			StartingHP:     r.StartingHP,
			Denom:          r.Denom,
			MinBet:         r.MinBet,
			MinChips:       r.MinChips,
			MinBuyIn:       r.MinBuyIn,
			MaxChips:       r.MaxChips,
			RakePercent:    r.RakePercent,
			MaxTurns:       r.MaxTurns,
			JackpotAddress: r.JackpotAddress,
			ResultsAddress: r.ResultsAddress,
		},
		Store: &StoreConfig{
			Driver: store.DriverFile,
			Path:   ".wordpot",
		},
		Log: &LogConfig{
			Level: "info",
		},
	}
}

// Load reads filename over the defaults and then applies overrides from environ, a
// map of environment variables. A missing file is not an error.
func Load(filename string, environ map[string]string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			parser := hclparse.NewParser()
			file, diags := parser.ParseHCLFile(filename)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
			}
			if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}

	// Blocks absent from the file keep their defaults.
	def := Default()
	if cfg.Rules == nil {
		cfg.Rules = def.Rules
	}
	if cfg.Store == nil {
		cfg.Store = def.Store
	}
	if cfg.Log == nil {
		cfg.Log = def.Log
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration without touching the filesystem.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case store.DriverMemory:
	case store.DriverFile, store.DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store path is required for driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("invalid store driver: %q", c.Store.Driver)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}
	rules := c.Rules.rules()
	rules.Dictionary = words.Default()
	return rules.Validate()
}

func (r *RulesConfig) rules() game.Rules {
	return game.Rules{
		MaxPlayers:     r.MaxPlayers,
		StartingHP:     r.StartingHP,
		Denom:          r.Denom,
		MinBet:         r.MinBet,
		MinChips:       r.MinChips,
		MinBuyIn:       r.MinBuyIn,
		MaxChips:       r.MaxChips,
		RakePercent:    r.RakePercent,
		MaxTurns:       r.MaxTurns,
		JackpotAddress: r.JackpotAddress,
		ResultsAddress: r.ResultsAddress,
	}
}

// GameRules converts the rules block, loading the configured dictionary.
func (c *Config) GameRules() (game.Rules, error) {
	dict, err := words.LoadDictionary(c.Rules.Dictionary)
	if err != nil {
		return game.Rules{}, fmt.Errorf("load dictionary: %w", err)
	}
	rules := c.Rules.rules()
	rules.Dictionary = dict
	if err := rules.Validate(); err != nil {
		return game.Rules{}, err
	}
	return rules, nil
}

// Logger returns a logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// OpenStore opens the configured blob store.
func (c *Config) OpenStore() (store.Store, error) {
	return store.Open(c.Store.Driver, c.Store.Path)
}
