package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-html2pdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string        // HTML2PDF_CONFIG: config file name or path
	From         string        // HTML2PDF_FROM: pandoc reader
	To           string        // HTML2PDF_TO: pandoc writer
	Output       string        // HTML2PDF_OUTPUT: output file
	ResourcePath []string      // HTML2PDF_RESOURCE_PATH: OS path-list separated directories
	CSS          string        // HTML2PDF_CSS: stylesheet path or style name
	AssetPath    string        // HTML2PDF_ASSET_PATH: custom style directory
	Engine       string        // HTML2PDF_ENGINE: PDF engine
	Pandoc       string        // HTML2PDF_PANDOC: pandoc executable
	Timeout      time.Duration // HTML2PDF_TIMEOUT: conversion timeout
	Filters      []string      // HTML2PDF_FILTERS: comma-separated filter list
	LogLevel     string        // HTML2PDF_LOG_LEVEL: debug, info, warn, error
	LogFormat    string        // HTML2PDF_LOG_FORMAT: text, json
}

// knownEnvVars lists valid HTML2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"HTML2PDF_CONFIG":        true,
	"HTML2PDF_FROM":          true,
	"HTML2PDF_TO":            true,
	"HTML2PDF_OUTPUT":        true,
	"HTML2PDF_RESOURCE_PATH": true,
	"HTML2PDF_CSS":           true,
	"HTML2PDF_ASSET_PATH":    true,
	"HTML2PDF_ENGINE":        true,
	"HTML2PDF_PANDOC":        true,
	"HTML2PDF_TIMEOUT":       true,
	"HTML2PDF_FILTERS":       true,
	"HTML2PDF_LOG_LEVEL":     true,
	"HTML2PDF_LOG_FORMAT":    true,
	"HTML2PDF_CONTAINER":     true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized HTML2PDF_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("HTML2PDF_CONFIG"),
		From:       os.Getenv("HTML2PDF_FROM"),
		To:         os.Getenv("HTML2PDF_TO"),
		Output:     os.Getenv("HTML2PDF_OUTPUT"),
		CSS:        os.Getenv("HTML2PDF_CSS"),
		AssetPath:  os.Getenv("HTML2PDF_ASSET_PATH"),
		Engine:     os.Getenv("HTML2PDF_ENGINE"),
		Pandoc:     os.Getenv("HTML2PDF_PANDOC"),
		LogLevel:   os.Getenv("HTML2PDF_LOG_LEVEL"),
		LogFormat:  os.Getenv("HTML2PDF_LOG_FORMAT"),
	}

	if rp := os.Getenv("HTML2PDF_RESOURCE_PATH"); rp != "" {
		cfg.ResourcePath = splitNonEmpty(rp, string(os.PathListSeparator))
	}
	if filters := os.Getenv("HTML2PDF_FILTERS"); filters != "" {
		cfg.Filters = splitNonEmpty(filters, ",")
	}

	// Invalid durations are ignored, like an unset variable.
	if timeout := os.Getenv("HTML2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized HTML2PDF_* variables.
// Helps catch typos like HTML2PDF_ENGIN instead of HTML2PDF_ENGINE.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "HTML2PDF_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				unknown = append(unknown, name)
			}
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; flags are applied afterwards by
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setString(&cfg.Source.Format, env.From)
	setString(&cfg.Output.Format, env.To)
	setString(&cfg.Output.Path, env.Output)
	setString(&cfg.Render.CSS, env.CSS)
	setString(&cfg.Render.AssetPath, env.AssetPath)
	setString(&cfg.Render.Engine, env.Engine)
	setString(&cfg.Render.Pandoc, env.Pandoc)
	setString(&cfg.Log.Level, env.LogLevel)
	setString(&cfg.Log.Format, env.LogFormat)

	if len(env.ResourcePath) > 0 {
		cfg.Source.ResourcePath = env.ResourcePath
	}
	if len(env.Filters) > 0 {
		cfg.Filters = env.Filters
	}
	if env.Timeout > 0 {
		cfg.Render.Timeout = env.Timeout.String()
	}
}

// setString overwrites *dst when v is set.
func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// splitNonEmpty splits s on sep and drops blank entries.
func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
