package generator

import (
	"bufio"
	"fmt"
	"io"

	"github.com/maja42/incbin/internal"
)

const generatedNotice = "// This file is auto-generated by incbin\n\n"

// resourceMapType is the record type of the resource table.
// All members are set by the constexpr constructor and only exposed via const accessors.
const resourceMapType = `class ResourceMap {
public:
  constexpr ResourceMap(const char * identifier, unsigned char * start, unsigned char * end) : m_identifier(identifier), m_start(start), m_end(end) {}
  const char * identifier() const { return m_identifier; }
  unsigned char * start() const { return m_start; }
  unsigned char * end() const { return m_end; }
private:
  const char * m_identifier;
  unsigned char * m_start;
  unsigned char * m_end;
};
`

// WriteHeader writes a C++ header declaring the symbols of every asset
// and a constexpr array "resources_addresses" mapping each asset path to its embedded bytes.
// The array lists the assets in the given order.
func WriteHeader(w io.Writer, assets []string, opts Options) error {
	return writeHeader(w, internal.BuildTable(opts.Prefix, assets), opts)
}

func writeHeader(w io.Writer, table internal.Table, opts Options) error {
	bw := bufio.NewWriter(w)

	// bufio.Writer keeps the first error; it is reported by Flush.
	_ = internal.WriteGuardBegin(bw, opts.Guard)
	_, _ = io.WriteString(bw, generatedNotice)

	for _, res := range table {
		_, _ = fmt.Fprintf(bw, "extern unsigned char %s;\n", res.Start)
		_, _ = fmt.Fprintf(bw, "extern unsigned char %s;\n", res.End)
	}

	_, _ = io.WriteString(bw, "\n"+resourceMapType+"\n")
	_, _ = io.WriteString(bw, "constexpr static ResourceMap resources_addresses[] = {\n")
	for _, res := range table {
		_, _ = fmt.Fprintf(bw, "ResourceMap(\"%s\", &%s, &%s),\n", res.Identifier, res.Start, res.End)
	}
	_, _ = io.WriteString(bw, "};\n\n")

	_ = internal.WriteGuardEnd(bw)
	return bw.Flush()
}
