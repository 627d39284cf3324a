package generator

import (
	"fmt"
	"io"
	"os"

	"github.com/maja42/incbin"
	"github.com/maja42/incbin/internal"
)

// Defaults reproducing the simulator's asset layout.
const (
	DefaultAssetDir = "ion/src/simulator/assets/"
	DefaultGuard    = "ION_SIMULATOR_LINUX_IMAGES_H"
)

// PrintlnFunc is used for logging the generation progress.
type PrintlnFunc func(format string, args ...interface{})

// Options control how symbols and paths are spelled in the generated files.
type Options struct {
	Prefix   string // Symbols are named _<Prefix>_<base>_start / _end
	AssetDir string // Prepended to every asset path in .incbin directives
	Guard    string // Include guard of the header
	Strict   bool   // Reject assets with colliding symbol names
}

// DefaultOptions returns the options used when nothing else is configured.
func DefaultOptions() Options {
	return Options{
		Prefix:   incbin.DefaultPrefix,
		AssetDir: DefaultAssetDir,
		Guard:    DefaultGuard,
	}
}

// Config describes a single generator run.
type Config struct {
	Output string   // Output path. The suffix selects the artifact.
	Assets []string // Ordered asset paths
	Options
}

// Validate checks the configuration before anything is written.
func (c *Config) Validate() error {
	if c.Output == "" {
		return incbin.ErrNoOutput
	}
	if len(c.Assets) == 0 {
		return incbin.ErrNoAssets
	}
	if !internal.IsValidGuard(c.Guard) {
		return fmt.Errorf("%w: %q", incbin.ErrInvalidGuard, c.Guard)
	}
	if c.Strict {
		if err := incbin.CheckCollisions(c.Assets); err != nil {
			return err
		}
	}
	return nil
}

// Generate writes the artifact selected by the output path's suffix.
// An existing file is overwritten.
//
// Output paths with an unrecognized suffix return ErrUnrecognizedOutput without touching the file system.
//
// logger (optional) is used to report the progress.
//
// Write errors may leave a partially written file behind.
func Generate(cfg Config, logger PrintlnFunc) error {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var emit func(io.Writer, internal.Table, Options) error
	kind := incbin.KindOf(cfg.Output)
	switch kind {
	case incbin.AssemblyOutput:
		emit = writeAssembly
	case incbin.HeaderOutput:
		emit = writeHeader
	default:
		return fmt.Errorf("%w: %q (expected %q or %q)",
			incbin.ErrUnrecognizedOutput, cfg.Output, incbin.AssemblySuffix, incbin.HeaderSuffix)
	}

	table := internal.BuildTable(cfg.Prefix, cfg.Assets)
	logger("Writing %s %q (%d assets)", kind, cfg.Output, len(table))

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("%w: create %q: %w", incbin.ErrWriteOutput, cfg.Output, err)
	}
	if err := emit(out, table, cfg.Options); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: %s %q: %w", incbin.ErrWriteOutput, kind, cfg.Output, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %w", incbin.ErrWriteOutput, cfg.Output, err)
	}
	for _, res := range table {
		logger("\t%s -> %s..%s", res.Identifier, res.Start, res.End)
	}
	return nil
}
