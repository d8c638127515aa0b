package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"automata/internal/app"
	_ "automata/internal/sims/briansbrain"
	_ "automata/internal/sims/elementary"
	_ "automata/internal/sims/life"
)

// parseConfig applies, in order, defaults, the -config file and the
// remaining flags.
func parseConfig() *app.Config {
	cfg := app.NewConfig()
	if path := configPath(os.Args[1:]); path != "" {
		loaded, err := app.LoadConfig(path)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	flag.String("config", "", "YAML file with default settings")
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	return cfg
}

// configPath finds -config ahead of the full parse so the file can seed the
// defaults that the other flags override.
func configPath(args []string) string {
	for i, arg := range args {
		name := strings.TrimLeft(arg, "-")
		if name != "config" && !strings.HasPrefix(name, "config=") {
			continue
		}
		fs := flag.NewFlagSet("config", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		path := fs.String("config", "", "")
		_ = fs.Parse(args[i:])
		return *path
	}
	return ""
}
