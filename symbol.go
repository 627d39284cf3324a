package incbin

import "strings"

// DefaultPrefix is inserted between the leading underscore and the symbol base name.
const DefaultPrefix = "ion_simulator"

// SymbolBase returns the symbol base name of an asset.
// The extension (everything after the last '.') is stripped and every '-' is replaced by '_'.
//
// No other characters are sanitized. Assets containing '/', spaces or other characters
// that are not valid in assembler symbols produce output that fails to assemble.
func SymbolBase(asset string) string {
	if i := strings.LastIndexByte(asset, '.'); i >= 0 {
		asset = asset[:i]
	}
	return strings.ReplaceAll(asset, "-", "_")
}

// StartSymbol returns the symbol marking the first byte of an embedded asset.
func StartSymbol(prefix, asset string) string {
	return "_" + prefix + "_" + SymbolBase(asset) + "_start"
}

// EndSymbol returns the symbol marking the byte after the last byte of an embedded asset.
func EndSymbol(prefix, asset string) string {
	return "_" + prefix + "_" + SymbolBase(asset) + "_end"
}
