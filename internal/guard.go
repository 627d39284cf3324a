package internal

import (
	"fmt"
	"io"
)

// WriteGuardBegin opens an include guard.
func WriteGuardBegin(w io.Writer, name string) error {
	if _, err := fmt.Fprintf(w, "#ifndef %s\n#define %s\n\n", name, name); err != nil {
		return err
	}
	return nil
}

// WriteGuardEnd closes the include guard opened by WriteGuardBegin.
func WriteGuardEnd(w io.Writer) error {
	if _, err := io.WriteString(w, "#endif\n"); err != nil {
		return err
	}
	return nil
}

// IsValidGuard checks if name can be used as a preprocessor macro.
// Macros start with a letter or underscore, followed by letters, digits or underscores.
func IsValidGuard(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
