package ast

// WalkFunc is called once for every node. It may change the node's kind and
// contents; the walk then descends into the new contents.
type WalkFunc func(n *Node) error

// Walk visits every node reachable from v depth-first, parents before
// children, siblings in document order. The first error stops the walk.
func Walk(v Value, fn WalkFunc) error {
	switch x := v.(type) {
	case *Node:
		if err := fn(x); err != nil {
			return err
		}
		if x.Contents != nil {
			return Walk(x.Contents, fn)
		}
	case Array:
		for _, item := range x {
			if err := Walk(item, fn); err != nil {
				return err
			}
		}
	case Object:
		for _, m := range x {
			if err := Walk(m.Value, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
