package life

import "strconv"

// Rule set representations accepted by Config.Rules.
const (
	RulesProcedural = "procedural"
	RulesTable      = "table"
)

// Seed patterns accepted by Config.Pattern.
const (
	PatternGlider = "glider"
	PatternRandom = "random"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width   int
	Height  int
	Rules   string
	Pattern string
	// Workers selects the tick strategy: 1 evaluates sequentially, anything
	// else splits rows across that many goroutines (0 means one per CPU).
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 16, Height: 16, Rules: RulesProcedural, Pattern: PatternGlider, Workers: 1}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rules"]; ok && (v == RulesProcedural || v == RulesTable) {
		c.Rules = v
	}
	if v, ok := cfg["pattern"]; ok && (v == PatternGlider || v == PatternRandom) {
		c.Pattern = v
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}
