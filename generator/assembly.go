package generator

import (
	"bufio"
	"fmt"
	"io"

	"github.com/maja42/incbin/internal"
)

// WriteAssembly writes an assembly source embedding every asset.
//
// For each asset, the start and end symbols are exported,
// followed by the start label, an .incbin directive and the end label.
// The assembler resolves the file relative to its working directory, using opts.AssetDir + asset.
// The file itself is never opened by the generator.
func WriteAssembly(w io.Writer, assets []string, opts Options) error {
	return writeAssembly(w, internal.BuildTable(opts.Prefix, assets), opts)
}

func writeAssembly(w io.Writer, table internal.Table, opts Options) error {
	bw := bufio.NewWriter(w)
	for _, res := range table {
		// bufio.Writer keeps the first error; it is reported by Flush.
		_, _ = fmt.Fprintf(bw, ".global %s\n", res.Start)
		_, _ = fmt.Fprintf(bw, ".global %s\n", res.End)
		_, _ = fmt.Fprintf(bw, "%s:\n", res.Start)
		_, _ = fmt.Fprintf(bw, "    .incbin \"%s%s\"\n", opts.AssetDir, res.Identifier)
		_, _ = fmt.Fprintf(bw, "%s:\n\n", res.End)
	}
	return bw.Flush()
}
