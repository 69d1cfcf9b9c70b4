package main

import (
	"github.com/xyproto/env/v2"
)

// defaultOutput is the object file name GNU as uses when -o is absent.
const defaultOutput = "a.out"

// Config is everything one assembler run needs. Environment variables give the
// defaults and command-line flags override them.
type Config struct {
	Input   string
	Output  string
	Verbose bool
	Debug   bool
	Watch   bool
}

// configFromEnv reads RAS_OUTPUT, RAS_VERBOSE and RAS_DEBUG.
func configFromEnv() Config {
	return Config{
		Output:  env.Str("RAS_OUTPUT", defaultOutput),
		Verbose: env.Bool("RAS_VERBOSE"),
		Debug:   env.Bool("RAS_DEBUG"),
	}
}

// readsStdin reports whether the source comes from standard input.
func (c Config) readsStdin() bool {
	return c.Input == "" || c.Input == "-"
}

// inputName is the input as it appears in log and error messages.
func (c Config) inputName() string {
	if c.readsStdin() {
		return "{standard input}"
	}
	return c.Input
}
