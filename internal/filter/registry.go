package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownFilter indicates a filter name with no built-in implementation.
var ErrUnknownFilter = errors.New("unknown filter")

// Built-in filter names.
const (
	NameStripImageSlash = "strip-image-slash"
	NameLinkNewWindow   = "link-new-window"
	NameHighlightCode   = "highlight-code"
)

var builtins = map[string]Filter{
	NameStripImageSlash: StripImageSlash(),
	NameLinkNewWindow:   LinkNewWindow(),
	NameHighlightCode:   HighlightCode(DefaultHighlightStyle),
}

// Lookup returns the built-in filter registered under name.
func Lookup(name string) (Filter, bool) {
	f, ok := builtins[name]
	return f, ok
}

// Resolve looks up each name in order. Names may also be given as a single
// comma-separated list ("strip-image-slash,link-new-window").
func Resolve(names ...string) ([]Filter, error) {
	var filters []Filter
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			f, ok := Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFilter, name, strings.Join(Names(), ", "))
			}
			filters = append(filters, f)
		}
	}
	return filters, nil
}

// Names returns the built-in filter names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins returns the built-in filters, sorted by name.
func Builtins() []Filter {
	names := Names()
	out := make([]Filter, len(names))
	for i, name := range names {
		out[i] = builtins[name]
	}
	return out
}
