package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config is the outer harness's own settings, loaded from a
// `.phpast.yml` file in the current directory if one exists. None of
// this reaches the core packages — span/token/ast/syntaxerr/lexer/
// parser stay config-free, as spec.md §1 requires of the core.
type config struct {
	// DumpSpans includes each node's source span in the tree dump.
	DumpSpans bool `yaml:"dump_spans"`
	// Prompt overrides the REPL's prompt string.
	Prompt string `yaml:"prompt"`
}

func defaultConfig() config {
	return config{DumpSpans: true, Prompt: "phpast> "}
}

// loadConfig reads .phpast.yml from the working directory. A missing
// file is not an error — the harness just runs with defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
