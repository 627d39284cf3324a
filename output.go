package incbin

import "strings"

// OutputKind selects the artifact that is generated.
type OutputKind int

const (
	// Unrecognized output paths produce no artifact.
	Unrecognized OutputKind = iota
	// AssemblyOutput embeds the assets via .incbin directives.
	AssemblyOutput
	// HeaderOutput declares the symbols and the resource map.
	HeaderOutput
)

// Recognized output suffixes.
const (
	AssemblySuffix = ".s"
	HeaderSuffix   = ".h"
)

func (k OutputKind) String() string {
	switch k {
	case AssemblyOutput:
		return "assembly"
	case HeaderOutput:
		return "header"
	default:
		return "unrecognized"
	}
}

// KindOf classifies an output path by its suffix.
func KindOf(path string) OutputKind {
	switch {
	case strings.HasSuffix(path, AssemblySuffix):
		return AssemblyOutput
	case strings.HasSuffix(path, HeaderSuffix):
		return HeaderOutput
	default:
		return Unrecognized
	}
}
