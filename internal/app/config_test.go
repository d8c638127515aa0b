package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata/internal/core"
	_ "automata/internal/sims/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-sim", "life", "-tps", "30", "-set", "rules=table", "-set", "w=32", "-v"}))

	assert.Equal(t, 30, cfg.TPS)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, map[string]string{"rules": "table", "w": "32"}, cfg.Set)

	assert.Error(t, fs.Parse([]string{"-set", "novalue"}))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim: life\ntps: 5\nset:\n  pattern: random\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.TPS)
	assert.Equal(t, 20, cfg.Scale)
	assert.Equal(t, "random", cfg.Set["pattern"])

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tps: [1, 2"), 0o600))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestNewSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Set["w"] = "10"
	sim, err := cfg.NewSim()
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 10, H: 16}, sim.Size())

	cfg.Sim = "nope"
	_, err = cfg.NewSim()
	assert.Error(t, err)
}
