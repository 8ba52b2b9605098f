package assets

import (
	"fmt"
	"strings"
)

// DefaultStyleName is the built-in stylesheet used when none is configured.
const DefaultStyleName = "default"

// StyleLoader loads CSS stylesheets by name (without the .css extension).
type StyleLoader interface {
	// LoadStyle returns ErrStyleNotFound for unknown names and
	// ErrInvalidAssetName for names that are not plain identifiers.
	LoadStyle(name string) (string, error)

	// Styles lists the available style names, sorted.
	Styles() []string
}

// ValidateStyleName rejects empty names and names with path separators or
// dots, so a name always maps to exactly styles/{name}.css.
func ValidateStyleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
