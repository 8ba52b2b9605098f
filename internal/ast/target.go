package ast

// Target returns the [url, title] pair of an Image or Link node. The pair is
// always the last element of the node contents.
func (n *Node) Target() (url, title string, err error) {
	items, err := n.Items()
	if err != nil {
		return "", "", err
	}
	if len(items) == 0 {
		return "", "", shapeErrorf(n.Kind, "empty contents")
	}

	pair, ok := items[len(items)-1].(Array)
	if !ok || len(pair) != 2 {
		return "", "", shapeErrorf(n.Kind, "last element is not a [url, title] pair")
	}
	url, ok = Text(pair[0])
	if !ok {
		return "", "", shapeErrorf(n.Kind, "target url is not a string")
	}
	title, ok = Text(pair[1])
	if !ok {
		return "", "", shapeErrorf(n.Kind, "target title is not a string")
	}
	return url, title, nil
}

// SetTarget replaces the [url, title] pair of an Image or Link node.
func (n *Node) SetTarget(url, title string) error {
	if _, _, err := n.Target(); err != nil {
		return err
	}
	items := n.Contents.(Array)
	items[len(items)-1] = Strings(url, title)
	return nil
}

// SetTargetURL rebuilds the [url, title] pair with a new url. The title
// literal is carried over as is.
func (n *Node) SetTargetURL(url string) error {
	if _, _, err := n.Target(); err != nil {
		return err
	}
	items := n.Contents.(Array)
	pair := items[len(items)-1].(Array)
	items[len(items)-1] = Array{String(url), pair[1]}
	return nil
}
