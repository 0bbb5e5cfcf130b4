// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --version, --verbose, --log, --config and one optional file argument

package main

import (
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	version bool
	verbose bool
	logFile string
	config  string
	file    string
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("kilo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: kilo [flags] [file]\n")
		fs.PrintDefaults()
	}

	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.StringVar(&args.logFile, "log", "", "Write logs to this file")
	fs.StringVar(&args.config, "config", "", "Load settings from this YAML file")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		args.file = fs.Arg(0)
	default:
		fs.Usage()
		return args, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	return args, nil
}
