// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/explode"
	"github.com/woozymasta/explode/internal/config"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Println("ERROR: ", err)
		os.Exit(1)
	}

	logrus.SetLevel(cfg.LogLevel())
	logrus.SetFormatter(cfg.Formatter())

	if cfg.CLI.Debug {
		logrus.Info("debug mode enabled")
	}

	displayConfig(cfg)

	if err := run(cfg, os.Stdout); err != nil {
		logrus.Errorf("sector decompression failed: %s", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, stdout io.Writer) error {
	llog := logrus.WithFields(logrus.Fields{
		"method": "run",
		"input":  cfg.CLI.Input,
	})

	data, err := os.ReadFile(cfg.CLI.Input)
	if err != nil {
		return errors.Wrap(err, "error reading input file")
	}

	if cfg.CLI.Offset > len(data) {
		return errors.Errorf("offset %d is past the end of %d-byte input", cfg.CLI.Offset, len(data))
	}
	sector := data[cfg.CLI.Offset:]

	opts := &explode.Options{
		Logger:            logrus.WithField("pkg", "explode"),
		RequireFullOutput: cfg.RequireFull(),
	}

	var out []byte
	if cfg.CLI.Masked {
		out, err = explode.DecompressMaskedSector(sector, cfg.CLI.Size, opts)
	} else {
		out, err = explode.ExplodeSector(sector, cfg.CLI.Size, opts)
	}
	if err != nil {
		return errors.Wrap(err, "error exploding sector")
	}

	llog.Debugf("Decoded '%d' of '%d' bytes from '%d' input bytes", len(out), cfg.CLI.Size, len(sector))

	if cfg.CLI.Output == "" {
		if _, err := stdout.Write(out); err != nil {
			return errors.Wrap(err, "error writing to stdout")
		}

		return nil
	}

	if err := os.WriteFile(cfg.CLI.Output, out, 0o644); err != nil {
		return errors.Wrap(err, "error writing output file")
	}

	return nil
}

func displayConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}

	logrus.Debug("explode settings:")
	logrus.Debug("  [CLI]")
	logrus.Debugf("  version: %s", config.VERSION)
	logrus.Debugf("  input: %s", cfg.CLI.Input)
	logrus.Debugf("  output: %s", cfg.CLI.Output)
	logrus.Debugf("  size: %d", cfg.CLI.Size)
	logrus.Debugf("  offset: %d", cfg.CLI.Offset)
	logrus.Debugf("  masked: %v", cfg.CLI.Masked)
	logrus.Debugf("  config file: %s", cfg.CLI.ConfigFile)
	logrus.Debug("  [LOG]")
	logrus.Debugf("  log.level: %s", cfg.TOML.Log.Level)
	logrus.Debugf("  log.format: %s", cfg.TOML.Log.Format)
	logrus.Debug("  [DECODE]")
	logrus.Debugf("  decode.require_full: %v", cfg.RequireFull())
}
