package ast

// Attr is pandoc's [identifier, [classes], [[key, value], ...]] triple.
type Attr struct {
	ID      string
	Classes []string
	KeyVals [][2]string
}

// Get returns the value of the first attribute named key.
func (a *Attr) Get(key string) (string, bool) {
	for _, kv := range a.KeyVals {
		if kv[0] == key {
			return kv[1], true
		}
	}
	return "", false
}

// Set replaces the first attribute named key, or appends it.
func (a *Attr) Set(key, value string) {
	for i, kv := range a.KeyVals {
		if kv[0] == key {
			a.KeyVals[i][1] = value
			return
		}
	}
	a.KeyVals = append(a.KeyVals, [2]string{key, value})
}

// Value encodes the attribute triple.
func (a Attr) Value() Array {
	kvs := make(Array, len(a.KeyVals))
	for i, kv := range a.KeyVals {
		kvs[i] = Strings(kv[0], kv[1])
	}
	classes := Strings(a.Classes...)
	return Array{String(a.ID), classes, kvs}
}

// attrIndex is the position of the Attr triple in the contents of each kind
// that carries one.
var attrIndex = map[Kind]int{
	KindCode:      0,
	KindCodeBlock: 0,
	KindDiv:       0,
	KindFigure:    0,
	KindHeader:    1,
	KindImage:     0,
	KindLink:      0,
	KindSpan:      0,
	KindTable:     0,
}

// Attr decodes the attribute triple of the node.
func (n *Node) Attr() (Attr, error) {
	idx, ok := attrIndex[n.Kind]
	if !ok {
		return Attr{}, shapeErrorf(n.Kind, "kind carries no attributes")
	}
	items, err := n.Items()
	if err != nil {
		return Attr{}, err
	}
	if len(items) <= idx {
		return Attr{}, shapeErrorf(n.Kind, "contents too short for attributes")
	}
	return parseAttr(n.Kind, items[idx])
}

// SetAttr stores a in the node's attribute slot.
func (n *Node) SetAttr(a Attr) error {
	if _, err := n.Attr(); err != nil {
		return err
	}
	items := n.Contents.(Array)
	items[attrIndex[n.Kind]] = a.Value()
	return nil
}

func parseAttr(kind Kind, v Value) (Attr, error) {
	triple, ok := v.(Array)
	if !ok || len(triple) != 3 {
		return Attr{}, shapeErrorf(kind, "attributes are not an [id, classes, pairs] triple")
	}

	var a Attr
	if a.ID, ok = Text(triple[0]); !ok {
		return Attr{}, shapeErrorf(kind, "attribute id is not a string")
	}

	classes, ok := triple[1].(Array)
	if !ok {
		return Attr{}, shapeErrorf(kind, "attribute classes are not a list")
	}
	for _, c := range classes {
		class, ok := Text(c)
		if !ok {
			return Attr{}, shapeErrorf(kind, "attribute class is not a string")
		}
		a.Classes = append(a.Classes, class)
	}

	pairs, ok := triple[2].(Array)
	if !ok {
		return Attr{}, shapeErrorf(kind, "attribute pairs are not a list")
	}
	for _, p := range pairs {
		pair, ok := p.(Array)
		if !ok || len(pair) != 2 {
			return Attr{}, shapeErrorf(kind, "attribute pair is not a [key, value] list")
		}
		key, okKey := Text(pair[0])
		value, okValue := Text(pair[1])
		if !okKey || !okValue {
			return Attr{}, shapeErrorf(kind, "attribute pair holds a non-string")
		}
		a.KeyVals = append(a.KeyVals, [2]string{key, value})
	}
	return a, nil
}
