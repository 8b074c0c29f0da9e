// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package config

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	EnvVarPrefix = "EXPLODE"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var (
	// VERSION gets set during build
	VERSION = "0.0.0"

	validLogFormats = map[string]struct{}{
		"text": {},
		"json": {},
	}
)

type Config struct {
	CLI  *CLI
	TOML *TOML
}

type TOML struct {
	Log    *TOMLLog    `toml:"log"`
	Decode *TOMLDecode `toml:"decode"`
}

type TOMLLog struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type TOMLDecode struct {
	RequireFull bool `toml:"require_full"`
}

type CLI struct {
	Input       string `kong:"arg,help='Compressed sector file',type='existingfile'"`
	Output      string `kong:"help='Output file (default: stdout)',short='o'"`
	Size        int    `kong:"required,help='Decompressed sector size in bytes',short='s'"`
	Offset      int    `kong:"help='Offset of the sector in the input file',default='0'"`
	Masked      bool   `kong:"help='Sector starts with an archive compression mask byte',short='m'"`
	RequireFull bool   `kong:"help='Fail if the stream ends before the output is full',name='require-full'"`
	ConfigFile  string `kong:"help='Path to an optional TOML config file',type='path',short='c'"`

	Debug   bool             `kong:"help='Enable debug output',short='d'"`
	Version kong.VersionFlag `help:"Show version and exit" short:"v" env:"-"`

	// Internal bits
	Ctx *kong.Context `kong:"-"`
}

// NewConfig reads .env, CLI args and the optional TOML file.
func NewConfig() (*Config, error) {
	// Attempt to load .env
	_ = godotenv.Load(".env")

	return newConfig(os.Args[1:])
}

func newConfig(args []string) (*Config, error) {
	cli, err := readCLIArgs(args)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing CLI args")
	}

	tomlConfig, err := readTOML(cli.ConfigFile)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}

	cfg := &Config{
		CLI:  cli,
		TOML: tomlConfig,
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireFull reports whether a short stream must be treated as an error.
func (c *Config) RequireFull() bool {
	return c.CLI.RequireFull || c.TOML.Decode.RequireFull
}

// LogLevel returns the effective log level; --debug wins over the config file.
func (c *Config) LogLevel() logrus.Level {
	if c.CLI.Debug {
		return logrus.DebugLevel
	}

	// Validated already
	level, _ := logrus.ParseLevel(c.TOML.Log.Level)

	return level
}

// Formatter returns the logrus formatter selected by log.format.
func (c *Config) Formatter() logrus.Formatter {
	if c.TOML.Log.Format == "json" {
		return &logrus.JSONFormatter{}
	}

	return &logrus.TextFormatter{FullTimestamp: true}
}

func Validate(c *Config) error {
	if c == nil {
		return errors.New("config cannot be nil")
	}

	if err := validateCLIArgs(c.CLI); err != nil {
		return errors.Wrap(err, "error validating CLI args")
	}

	if err := validateTOML(c.TOML); err != nil {
		return errors.Wrap(err, "error validating toml config")
	}

	return nil
}

func validateCLIArgs(cli *CLI) error {
	if cli == nil {
		return errors.New("cli args cannot be nil")
	}

	if cli.Input == "" {
		return errors.New("input file cannot be empty")
	}

	if cli.Size < 0 {
		return errors.Errorf("size must be non-negative, got %d", cli.Size)
	}

	if cli.Offset < 0 {
		return errors.Errorf("offset must be non-negative, got %d", cli.Offset)
	}

	return nil
}

func validateTOML(t *TOML) error {
	if t == nil {
		return errors.New("toml config cannot be nil")
	}

	if t.Log == nil {
		return errors.New("log cannot be empty")
	}

	if _, err := logrus.ParseLevel(t.Log.Level); err != nil {
		return errors.Wrapf(err, "log.level %s is invalid", t.Log.Level)
	}

	if _, ok := validLogFormats[t.Log.Format]; !ok {
		return errors.Errorf("log.format %s is invalid", t.Log.Format)
	}

	if t.Decode == nil {
		return errors.New("decode cannot be empty")
	}

	return nil
}

func setTOMLDefaults(t *TOML) error {
	if t == nil {
		return errors.New("toml config cannot be nil")
	}

	if t.Log == nil {
		t.Log = &TOMLLog{}
	}

	if t.Decode == nil {
		t.Decode = &TOMLDecode{}
	}

	if t.Log.Level == "" {
		t.Log.Level = DefaultLogLevel
	}

	if t.Log.Format == "" {
		t.Log.Format = DefaultLogFormat
	}

	return nil
}

func readCLIArgs(args []string) (*CLI, error) {
	cli := &CLI{}

	parser, err := kong.New(cli,
		kong.Name("explode"),
		kong.Description("Decompress one PKWARE DCL imploded sector"),
		kong.UsageOnError(),
		kong.DefaultEnvars(EnvVarPrefix),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{
			"version": VERSION,
		})
	if err != nil {
		return nil, errors.Wrap(err, "error building CLI parser")
	}

	cli.Ctx, err = parser.Parse(args)
	if err != nil {
		return nil, err
	}

	if err := validateCLIArgs(cli); err != nil {
		return nil, errors.Wrap(err, "error validating args")
	}

	return cli, nil
}

// readTOML loads the config file; an empty path yields defaults.
func readTOML(file string) (*TOML, error) {
	tomlConfig := &TOML{}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "error reading file")
		}

		if err := toml.Unmarshal(data, tomlConfig); err != nil {
			return nil, errors.Wrap(err, "error parsing TOML config")
		}
	}

	// Set defaults
	if err := setTOMLDefaults(tomlConfig); err != nil {
		return nil, errors.Wrap(err, "error setting TOML defaults")
	}

	// Validate loaded config
	if err := validateTOML(tomlConfig); err != nil {
		return nil, errors.Wrap(err, "error validating TOML config")
	}

	return tomlConfig, nil
}
