package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tslex-project/tslex/internal/version"
)

func TestDefaultIsLatestNonJSX(t *testing.T) {
	opts := Default().LexerOptions()
	require.Equal(t, version.ESNext, opts.Lang)
	require.Equal(t, version.TypeScript, opts.Variant)
}

func TestLoadTSConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tsconfig.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"compilerOptions": { "target": "ES2020", "jsx": "react" }
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "ES2020", cfg.Target)
	require.Equal(t, "react", cfg.JSX)

	opts := cfg.LexerOptions()
	require.Equal(t, version.ES2020, opts.Lang)
	require.Equal(t, version.JSX, opts.Variant)
}

func TestLoadYAMLConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".tslexrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: es2017\njsx: none\nallowObsoleteUTF8: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "es2017", cfg.Target)
	require.True(t, cfg.AllowObsoleteUTF8)

	opts := cfg.LexerOptions()
	require.Equal(t, version.ES2017, opts.Lang)
	require.Equal(t, version.TypeScript, opts.Variant)
	require.True(t, opts.AllowObsoleteUTF8)
}

func TestUnknownTargetFallsBackToESNext(t *testing.T) {
	cfg := Config{Target: "not-a-real-version"}
	require.Equal(t, version.ESNext, cfg.LexerOptions().Lang)
}

func TestMergeChildOverridesParent(t *testing.T) {
	base := Config{Target: "ES2015", JSX: "none"}
	override := Config{JSX: "react"}
	merged := base.Merge(override)
	require.Equal(t, "ES2015", merged.Target)
	require.Equal(t, "react", merged.JSX)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
