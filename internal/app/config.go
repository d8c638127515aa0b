package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"automata/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim         string            `yaml:"sim"`
	Scale       int               `yaml:"scale"`
	TPS         int               `yaml:"tps"`
	Seed        int64             `yaml:"seed"`
	Generations int               `yaml:"generations"`
	Verbose     bool              `yaml:"verbose"`
	Set         map[string]string `yaml:"set"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 20, TPS: 2, Seed: 42, Generations: 64, Set: map[string]string{}}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = yaml.Unmarshal(data, config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	if config.Set == nil {
		config.Set = map[string]string{}
	}
	return config, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run: "+strings.Join(core.SimNames(), ", "))
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run headless (0 runs until interrupted)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
	fs.Var((*kvMap)(&c.Set), "set", "simulation option in key=value form (repeatable)")
}

// NewSim builds and seeds the configured simulation.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, errors.Errorf("[NewSim] unknown sim %q", c.Sim)
	}
	sim := factory(c.Set)
	sim.Reset(c.Seed)
	return sim, nil
}

// Logger returns a text logger on stderr honouring Verbose.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

type kvMap map[string]string

func (m *kvMap) String() string {
	if m == nil || *m == nil {
		return ""
	}
	keys := make([]string, 0, len(*m))
	for k := range *m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + (*m)[k]
	}
	return strings.Join(parts, ",")
}

func (m *kvMap) Set(value string) error {
	parts := strings.SplitN(value, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	if *m == nil {
		*m = map[string]string{}
	}
	(*m)[parts[0]] = parts[1]
	return nil
}
