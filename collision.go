package incbin

// CheckCollisions returns a *CollisionErr if two assets share a symbol base name.
// Identical asset paths given twice collide as well, since both would define the same symbols.
func CheckCollisions(assets []string) error {
	seen := make(map[string][]string, len(assets))
	for _, asset := range assets {
		base := SymbolBase(asset)
		seen[base] = append(seen[base], asset)
	}

	var err *CollisionErr
	for base, list := range seen {
		if len(list) < 2 {
			continue
		}
		if err == nil {
			err = &CollisionErr{Symbols: make(map[string][]string)}
		}
		err.Symbols[base] = list
	}
	if err == nil {
		return nil
	}
	return err
}
