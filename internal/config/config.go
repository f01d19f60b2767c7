// Package config resolves the handful of lexer-relevant settings a batch
// tool needs across many files: target language version, JSX/TSX variant,
// and compatibility flags (SPEC_FULL.md §B.3). It is adapted from the
// teacher's internal/program/tsconfig.go, trimmed to the fields
// internal/lexer actually consumes — this package never models the rest of
// the TypeScript compiler's options surface.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tslex-project/tslex/internal/lexer"
	"github.com/tslex-project/tslex/internal/version"
)

// Config is the resolved set of options a lexing pass runs under.
type Config struct {
	// Target is the TypeScript compiler-option-shaped language name, e.g.
	// "ES2020", "ESNext". Parsed via version.Parse.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// JSX selects the source variant the way tsconfig's "jsx" field implies
	// one: any non-empty value activates the JSX sub-lexer (spec.md §4.7);
	// "none"/"" leaves it off.
	JSX string `json:"jsx,omitempty" yaml:"jsx,omitempty"`

	// AllowObsoleteUTF8 opts into the original tokenizer's tolerance of
	// 5- and 6-byte UTF-8 lead bytes (SPEC_FULL.md §E, REDESIGN FLAGS).
	AllowObsoleteUTF8 bool `json:"allowObsoleteUTF8,omitempty" yaml:"allowObsoleteUTF8,omitempty"`

	// path is the absolute path this configuration was loaded from, kept
	// for diagnostics (teacher's TSConfig.path convention).
	path string
}

// tsconfigShape mirrors only the corner of tsconfig.json's compilerOptions
// this package cares about — encoding/json ignores the rest, exactly as the
// teacher's CompilerOptions struct does for fields it models.
type tsconfigShape struct {
	CompilerOptions struct {
		Target string `json:"target,omitempty"`
		JSX    string `json:"jsx,omitempty"`
	} `json:"compilerOptions,omitempty"`
}

// Default returns the conservative baseline: latest language, JSX off,
// strict (RFC-3629-only) UTF-8 — matching Options' own zero-value-safe
// defaults in internal/lexer, but spelled out explicitly for callers that
// construct a Config without loading a file.
func Default() Config {
	return Config{Target: "ESNext", JSX: "none"}
}

// Load reads a configuration file, dispatching on extension: ".json" (and
// ".jsonc" by convention) is parsed as a tsconfig.json-shaped document via
// encoding/json, matching the teacher's ParseTSConfig; anything else is
// parsed as YAML via gopkg.in/yaml.v3, the library most of the retrieval
// pack standardizes on for this (SPEC_FULL.md §B.3).
func Load(path string) (Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve absolute path for %s: %w", path, err)
	}

	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath is caller-supplied and validated as absolute
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", absPath, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".json", ".jsonc":
		var shape tsconfigShape
		if err := json.Unmarshal(data, &shape); err != nil {
			return Config{}, fmt.Errorf("failed to parse tsconfig file %s: %w", absPath, err)
		}
		if shape.CompilerOptions.Target != "" {
			cfg.Target = shape.CompilerOptions.Target
		}
		if shape.CompilerOptions.JSX != "" {
			cfg.JSX = shape.CompilerOptions.JSX
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
		}
	}

	cfg.path = absPath
	return cfg, nil
}

// Path returns the absolute path this Config was loaded from, or "" for a
// Config built in-memory (Default, or a zero value).
func (c Config) Path() string {
	return c.path
}

// LexerOptions translates the resolved configuration into the
// internal/lexer.Options the scanner actually consumes.
func (c Config) LexerOptions() lexer.Options {
	lang, ok := version.Parse(c.Target)
	if !ok {
		lang = version.ESNext
	}
	variant := version.TypeScript
	if jsx := strings.ToLower(c.JSX); jsx != "" && jsx != "none" {
		variant = version.JSX
	}
	return lexer.Options{
		Lang:              lang,
		Variant:           variant,
		AllowObsoleteUTF8: c.AllowObsoleteUTF8,
	}
}

// Merge overlays non-zero-value fields of override onto c, matching the
// teacher's mergeConfigs "child overrides parent" convention — used by
// cmd/tslex to let CLI flags win over a loaded file's settings.
func (c Config) Merge(override Config) Config {
	merged := c
	if override.Target != "" {
		merged.Target = override.Target
	}
	if override.JSX != "" {
		merged.JSX = override.JSX
	}
	if override.AllowObsoleteUTF8 {
		merged.AllowObsoleteUTF8 = override.AllowObsoleteUTF8
	}
	return merged
}
