package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grimdork/climate/arg"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses args, the command line without the program name, and returns
// the exit status.
func run(args []string) int {
	opt := arg.New("ras")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "c", "input", "Source file to assemble (same as INPUT).", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "o", "output", "Object file to write. Defaults to $RAS_OUTPUT or a.out.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log the object layout.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "d", "debug", "Log debug messages.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "w", "watch", "Reassemble whenever the input changes.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "V", "version", "Print the version and exit.", false, false, arg.VarBool, nil)
	opt.SetPositional("INPUT", "Source file. Standard input when absent or \"-\".", "", false, arg.VarString)

	cfg := configFromEnv()
	err := opt.Parse(args)
	if err != nil && !errors.Is(err, arg.ErrNoArgs) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		opt.PrintHelp()
		return exitUsage
	}

	if opt.GetBool("version") {
		if err := printVersion(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitFailure
		}
		return 0
	}

	cfg, err = applyFlags(cfg, opt.GetString("input"), opt.GetPosString("INPUT"), opt.GetString("output"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}
	cfg.Verbose = cfg.Verbose || opt.GetBool("verbose")
	cfg.Debug = cfg.Debug || opt.GetBool("debug")
	cfg.Watch = opt.GetBool("watch")

	log := NewLogger(cfg.Verbose, cfg.Debug)
	if cfg.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := watch(ctx, cfg, log); err != nil {
			log.Error("%v", err)
			return exitFailure
		}
		return 0
	}

	if err := assembleFile(cfg, os.Stdin, log); err != nil {
		log.Error("%v", err)
		return exitFailure
	}
	return 0
}

// applyFlags merges the input selectors and -o into cfg. Giving -c and a
// different positional input at the same time is a usage error.
func applyFlags(cfg Config, flagInput, posInput, output string) (Config, error) {
	switch {
	case flagInput != "" && posInput != "" && flagInput != posInput:
		return cfg, fmt.Errorf("two inputs given: %s and %s", flagInput, posInput)
	case flagInput != "":
		cfg.Input = flagInput
	default:
		cfg.Input = posInput
	}
	if output != "" {
		cfg.Output = output
	}
	return cfg, nil
}
