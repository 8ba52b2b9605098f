package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-html2pdf/internal/fileutil"
)

// RewriteResourcePaths resolves relative img[src] and a[href] references
// against dirs, in order, the way pandoc's --resource-path does: the first
// directory containing the file wins and the reference becomes an absolute
// file:// URL. References found in no directory are left as they are.
// It returns the number of rewritten references.
//
// Not rewritten: URLs with a scheme, protocol-relative and absolute paths,
// fragment-only anchors, srcset, CSS url() references, and script sources.
func (p *Page) RewriteResourcePaths(dirs []string) (int, error) {
	if len(dirs) == 0 {
		return 0, nil
	}

	absDirs := make([]string, 0, len(dirs))
	for _, d := range dirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			return 0, err
		}
		absDirs = append(absDirs, abs)
	}

	count := 0
	walkElements(p.root, func(n *html.Node) {
		switch n.Data {
		case "img":
			count += rewriteAttr(n, "src", absDirs)
		case "a":
			count += rewriteAttr(n, "href", absDirs)
		}
	})
	return count, nil
}

// rewriteAttr rewrites attribute key of n when it names a file under one of
// dirs. Returns 1 when the attribute changed.
func rewriteAttr(n *html.Node, key string, dirs []string) int {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativePath(attr.Val) {
			continue
		}

		ref, suffix := splitSuffix(attr.Val)
		if unescaped, err := url.PathUnescape(ref); err == nil {
			ref = unescaped
		}

		for _, dir := range dirs {
			candidate := filepath.Join(dir, filepath.FromSlash(ref))
			if !isPathUnderDir(candidate, dir) || !fileutil.FileExists(candidate) {
				continue
			}
			n.Attr[i].Val = pathToFileURL(candidate) + suffix
			return 1
		}
	}
	return 0
}

// isRelativePath reports whether ref is a relative file reference.
func isRelativePath(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if filepath.IsAbs(ref) || strings.HasPrefix(ref, "/") {
		return false
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return false
	}
	return true
}

// splitSuffix separates a trailing ?query or #fragment from a reference.
func splitSuffix(ref string) (path, suffix string) {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		return ref[:i], ref[i:]
	}
	return ref, ""
}

// isPathUnderDir reports whether absPath is dir or inside it.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	// Windows drive paths need a leading slash: file:///C:/...
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
