package incbin

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors reported while validating a generator run.
var (
	ErrNoAssets           = errors.New("no assets given")
	ErrNoOutput           = errors.New("no output path given")
	ErrUnrecognizedOutput = errors.New("unrecognized output extension")
	ErrSymbolCollision    = errors.New("symbol collision")
	ErrInvalidGuard       = errors.New("invalid include guard")
	ErrWriteOutput        = errors.New("cannot write output")
)

// CollisionErr reports assets that map to the same symbol base name.
type CollisionErr struct {
	// Symbols maps each colliding base name to the assets producing it, in input order.
	Symbols map[string][]string
}

func (e *CollisionErr) Error() string {
	names := make([]string, 0, len(e.Symbols))
	for name := range e.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%q <- %s", name, strings.Join(quoteAll(e.Symbols[name]), ", "))
	}
	return fmt.Sprintf("%s: %s", ErrSymbolCollision, strings.Join(parts, "; "))
}

// Is makes CollisionErr match ErrSymbolCollision.
func (e *CollisionErr) Is(target error) bool {
	return target == ErrSymbolCollision
}

func quoteAll(s []string) []string {
	q := make([]string, len(s))
	for i, v := range s {
		q[i] = fmt.Sprintf("%q", v)
	}
	return q
}
