// Package config loads smash's ambient tunables: log level, trace,
// color, and line-length limit. None of it is shell state — no alias,
// job, or command ever comes from here.
package config

import (
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const namespace = "SMASH"

// Env is the environment-variable view of smash's configuration,
// loaded under the SMASH_ prefix (SMASH_LOG_LEVEL, SMASH_TRACE,
// SMASH_COLOR, SMASH_LINE_MAX).
type Env struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Trace    bool   `envconfig:"TRACE" default:"false"`
	Color    bool   `envconfig:"COLOR" default:"true"`
	LineMax  int    `envconfig:"LINE_MAX" default:"512"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(namespace, &env); err != nil {
		return Env{}, err
	}
	return env, nil
}

// SlogLevel maps the configured log level string to a slog.Level,
// defaulting to Info for anything unrecognized.
func (e Env) SlogLevel() slog.Level {
	switch e.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// FileSettings is the optional --config YAML file of the same ambient
// settings as Env. It exists for users who'd rather commit a config
// file than set environment variables; it never carries aliases or
// jobs, matching the Non-goal on scripting-mode sourcing.
type FileSettings struct {
	LogLevel string `yaml:"log_level"`
	Trace    *bool  `yaml:"trace"`
	Color    *bool  `yaml:"color"`
	LineMax  int    `yaml:"line_max"`
}

// LoadFile reads and parses a FileSettings YAML document from path.
func LoadFile(path string) (FileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileSettings{}, err
	}
	var fs FileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return FileSettings{}, err
	}
	return fs, nil
}

// Merge applies non-zero fields from f on top of e, matching the
// flags-override-env precedence of the reference CLI: a caller applies
// Env first, then file settings, then CLI flags last.
func (e Env) Merge(f FileSettings) Env {
	if f.LogLevel != "" {
		e.LogLevel = f.LogLevel
	}
	if f.Trace != nil {
		e.Trace = *f.Trace
	}
	if f.Color != nil {
		e.Color = *f.Color
	}
	if f.LineMax > 0 {
		e.LineMax = f.LineMax
	}
	return e
}
