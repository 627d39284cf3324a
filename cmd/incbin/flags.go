package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command line flags.
type cliFlags struct {
	output   string
	config   string
	prefix   string
	assetDir string
	guard    string
	strict   bool
	verbose  bool
}

// parseFlags parses the command line (without the program name) and returns the positional assets.
// The returned FlagSet reports which flags were set explicitly.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("incbin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "file to generate (.s = assembly, .h = header)")
	fs.StringVarP(&f.config, "config", "c", "", "YAML manifest with assets and naming options")
	fs.StringVar(&f.prefix, "prefix", "", "symbol prefix (default \"ion_simulator\")")
	fs.StringVar(&f.assetDir, "asset-dir", "", "directory prepended to assets in .incbin directives (default \"ion/src/simulator/assets/\")")
	fs.StringVar(&f.guard, "guard", "", "include guard of the header (default \"ION_SIMULATOR_LINUX_IMAGES_H\")")
	fs.BoolVar(&f.strict, "strict", false, "reject symbol collisions and unrecognized output extensions")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "report progress on stderr")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: incbin [flags] -o <file.s|file.h> <asset>...")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Generates an assembly file embedding the assets, or a header declaring them.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, fs, err
	}
	return f, fs.Args(), fs, nil
}
