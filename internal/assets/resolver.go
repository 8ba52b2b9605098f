package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-html2pdf/internal/fileutil"
)

// Style is a resolved stylesheet. Path is set when the stylesheet is a file
// on disk that can be handed to pandoc as is; named styles only carry Content.
type Style struct {
	Name    string
	Path    string
	Content string
}

// Resolver looks styles up in an optional custom directory first and falls
// back to the embedded styles.
type Resolver struct {
	custom   *FilesystemLoader // nil without a custom path
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver. An empty customBasePath uses the embedded
// styles only; a non-empty one must be a readable directory.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadStyle loads a named style, custom directory first.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	// Validation and I/O errors do not fall through.
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// Styles lists every style name the resolver can load.
func (r *Resolver) Styles() []string {
	names := r.embedded.Styles()
	if r.custom == nil {
		return names
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range r.custom.Styles() {
		if !seen[n] {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve turns a stylesheet reference into a Style. References that look
// like file paths (a separator or a .css suffix) are read from disk; any
// other reference is a style name. An empty reference resolves to the
// default style.
func (r *Resolver) Resolve(ref string) (Style, error) {
	if ref == "" {
		ref = DefaultStyleName
	}

	if !fileutil.IsFilePath(ref) {
		content, err := r.LoadStyle(ref)
		if err != nil {
			return Style{}, err
		}
		return Style{Name: ref, Content: content}, nil
	}

	content, err := os.ReadFile(ref) // #nosec G304 -- user-provided stylesheet
	if err != nil {
		if os.IsNotExist(err) {
			return Style{}, fmt.Errorf("%w: %s", ErrStyleNotFound, ref)
		}
		return Style{}, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	abs, err := filepath.Abs(ref)
	if err != nil {
		abs = ref
	}
	return Style{Name: filepath.Base(ref), Path: abs, Content: string(content)}, nil
}

var _ StyleLoader = (*Resolver)(nil)
