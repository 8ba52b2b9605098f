package filter

import (
	"strings"

	"github.com/alnah/go-html2pdf/internal/ast"
)

// StripImageSlash turns site-absolute image URLs ("/img/x.png") into paths
// relative to the resource search path ("img/x.png").
//
// Exactly one leading slash is removed. URLs without one are left alone, as
// are protocol-relative URLs ("//cdn.example.com/x.png"): stripping those
// would give "/cdn.example.com/x.png" and a second pass would rewrite it
// again. A plain "remove the first slash" rewrite would strip them; this
// filter stays idempotent instead.
func StripImageSlash() Filter {
	return Filter{
		Name:        NameStripImageSlash,
		Kind:        ast.KindImage,
		Description: "remove one leading '/' from image URLs",
		Rewrite:     stripImageSlash,
	}
}

func stripImageSlash(n *ast.Node, _ string) (bool, error) {
	url, _, err := n.Target()
	if err != nil {
		return false, err
	}

	if !strings.HasPrefix(url, "/") || strings.HasPrefix(url, "//") {
		return false, nil
	}

	if err := n.SetTargetURL(url[1:]); err != nil {
		return false, err
	}
	return true, nil
}
