// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --catalog, --verbose, --no-color, --version

package main

import "flag"

type cliArgs struct {
	config  string
	catalog string
	verbose bool
	noColor bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.config, "config", "", "Path to the mappings file (default ~/.modelmap/mappings.json)")
	flag.StringVar(&args.catalog, "catalog", "", "YAML file overriding role slots, migration rules, prefixes and models")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.noColor, "no-color", false, "Disable styled output")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
