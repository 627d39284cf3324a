package internal

import "github.com/maja42/incbin"

// Table lists all resources of a generator run.
// The order of resources reflects the order of assets given by the caller.
// Both the assembly and the header are emitted in table order, so the n-th
// resource map entry always refers to the n-th embedded blob.
type Table []Resource

// Resource represents a single embedded asset.
type Resource struct {
	Identifier string // Asset path as given; used as the resource map key
	Start      string // Symbol of the first byte
	End        string // Symbol following the last byte
}

// BuildTable derives the resources for the given assets.
func BuildTable(prefix string, assets []string) Table {
	table := make(Table, 0, len(assets))
	for _, asset := range assets {
		table = append(table, Resource{
			Identifier: asset,
			Start:      incbin.StartSymbol(prefix, asset),
			End:        incbin.EndSymbol(prefix, asset),
		})
	}
	return table
}
