package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maja42/incbin"
	"github.com/maja42/incbin/generator"
	"github.com/maja42/incbin/internal/config"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "incbin: %s\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// run executes a single generator invocation.
func run(args []string, stderr io.Writer) error {
	flags, assets, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, err := buildConfig(flags, fs, assets)
	if err != nil {
		return err
	}

	var logger generator.PrintlnFunc
	if flags.verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	err = generator.Generate(cfg, logger)
	if errors.Is(err, incbin.ErrUnrecognizedOutput) && !cfg.Strict {
		fmt.Fprintf(stderr, "incbin: warning: %s, nothing generated\n", err)
		return nil
	}
	return err
}

// buildConfig merges defaults, the optional manifest and explicitly set flags (in that order).
// Positional assets replace the manifest's asset list.
func buildConfig(f *cliFlags, fs *flag.FlagSet, assets []string) (generator.Config, error) {
	cfg := generator.Config{
		Output:  f.output,
		Options: generator.DefaultOptions(),
	}

	if f.config != "" {
		m, err := config.Load(f.config)
		if err != nil {
			return cfg, err
		}
		if m.Prefix != nil {
			cfg.Prefix = *m.Prefix
		}
		if m.AssetDir != nil {
			cfg.AssetDir = *m.AssetDir
		}
		if m.Guard != nil {
			cfg.Guard = *m.Guard
		}
		if m.Strict != nil {
			cfg.Strict = *m.Strict
		}
		cfg.Assets = m.Assets
	}

	if fs.Changed("prefix") {
		cfg.Prefix = f.prefix
	}
	if fs.Changed("asset-dir") {
		cfg.AssetDir = f.assetDir
	}
	if fs.Changed("guard") {
		cfg.Guard = f.guard
	}
	if fs.Changed("strict") {
		cfg.Strict = f.strict
	}
	if len(assets) > 0 {
		cfg.Assets = assets
	}
	return cfg, nil
}
