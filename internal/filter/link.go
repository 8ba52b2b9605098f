package filter

import (
	"github.com/alnah/go-html2pdf/internal/ast"
)

// Attribute values set on every link.
const (
	linkTarget = "_blank"
	linkRel    = "noopener noreferrer"
)

// LinkNewWindow marks every link to open in a new browsing context by setting
// target="_blank" (and a matching rel) in the link's attributes. Existing
// target and rel values are replaced.
func LinkNewWindow() Filter {
	return Filter{
		Name:        NameLinkNewWindow,
		Kind:        ast.KindLink,
		Description: "open links in a new window (target=\"_blank\")",
		Rewrite:     linkNewWindow,
	}
}

func linkNewWindow(n *ast.Node, _ string) (bool, error) {
	if _, _, err := n.Target(); err != nil {
		return false, err
	}
	attr, err := n.Attr()
	if err != nil {
		return false, err
	}

	target, _ := attr.Get("target")
	rel, _ := attr.Get("rel")
	if target == linkTarget && rel == linkRel {
		return false, nil
	}

	attr.Set("target", linkTarget)
	attr.Set("rel", linkRel)
	if err := n.SetAttr(attr); err != nil {
		return false, err
	}
	return true, nil
}
