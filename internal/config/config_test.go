package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestNewConfigDefaults(t *testing.T) {
	input := writeFile(t, "sector.bin", "\x00\x04\x82\x02\xfe\x01")

	cfg, err := newConfig([]string{input, "--size", "1"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(input), filepath.Base(cfg.CLI.Input))
	assert.Equal(t, 1, cfg.CLI.Size)
	assert.Zero(t, cfg.CLI.Offset)
	assert.Equal(t, DefaultLogLevel, cfg.TOML.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.TOML.Log.Format)
	assert.False(t, cfg.RequireFull())
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel())
	assert.IsType(t, &logrus.TextFormatter{}, cfg.Formatter())
}

func TestNewConfigFromTOML(t *testing.T) {
	input := writeFile(t, "sector.bin", "\x00\x04\x82\x02\xfe\x01")
	cfgFile := writeFile(t, "explode.toml", `
[log]
level = "warn"
format = "json"

[decode]
require_full = true
`)

	cfg, err := newConfig([]string{input, "-s", "1", "-c", cfgFile, "--offset", "0"})
	require.NoError(t, err)

	assert.True(t, cfg.RequireFull())
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, cfg.Formatter())

	cfg.CLI.Debug = true
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel())
}

func TestNewConfigFromEnv(t *testing.T) {
	input := writeFile(t, "sector.bin", "\x00\x04\x82\x02\xfe\x01")
	t.Setenv("EXPLODE_OFFSET", "2")
	t.Setenv("EXPLODE_MASKED", "true")

	cfg, err := newConfig([]string{input, "--size", "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.CLI.Offset)
	assert.True(t, cfg.CLI.Masked)
}

func TestNewConfigErrors(t *testing.T) {
	input := writeFile(t, "sector.bin", "\x00\x04")

	cases := map[string][]string{
		"missing size":    {input},
		"missing input":   {"--size", "4"},
		"negative size":   {input, "--size", "-1"},
		"negative offset": {input, "--size", "4", "--offset", "-2"},
		"no such file":    {filepath.Join(t.TempDir(), "nope.bin"), "--size", "4"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newConfig(args)
			assert.Error(t, err)
		})
	}
}

func TestReadTOMLInvalid(t *testing.T) {
	cases := map[string]string{
		"bad level":  "[log]\nlevel = \"loud\"\n",
		"bad format": "[log]\nformat = \"xml\"\n",
		"bad syntax": "[log\n",
	}
	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := readTOML(writeFile(t, "explode.toml", contents))
			assert.Error(t, err)
		})
	}

	_, err := readTOML(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate(nil))
	assert.Error(t, Validate(&Config{CLI: &CLI{Input: "x"}}))
	assert.Error(t, setTOMLDefaults(nil))

	tomlConfig := &TOML{}
	require.NoError(t, setTOMLDefaults(tomlConfig))
	assert.NoError(t, Validate(&Config{CLI: &CLI{Input: "x", Size: 1}, TOML: tomlConfig}))
}
