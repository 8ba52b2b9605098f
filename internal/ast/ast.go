// Package ast models the pandoc JSON document tree as a generic, ordered
// value tree.
//
// The tree keeps every JSON literal as its original bytes and every object in
// its original member order, so kinds this package knows nothing about
// survive a decode/encode round trip unchanged. Nodes are the JSON objects
// pandoc tags with a "t" member; their "c" member holds the contents whose
// shape is fixed per kind.
package ast

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind is the tag of a pandoc node ("t" member).
type Kind string

// Node kinds used by the filters in this module. Any other tag is valid and
// passes through untouched.
const (
	KindPara      Kind = "Para"
	KindPlain     Kind = "Plain"
	KindStr       Kind = "Str"
	KindSpace     Kind = "Space"
	KindImage     Kind = "Image"
	KindLink      Kind = "Link"
	KindCode      Kind = "Code"
	KindCodeBlock Kind = "CodeBlock"
	KindRawBlock  Kind = "RawBlock"
	KindHeader    Kind = "Header"
	KindDiv       Kind = "Div"
	KindSpan      Kind = "Span"
	KindFigure    Kind = "Figure"
	KindTable     Kind = "Table"
)

func (k Kind) String() string { return string(k) }

// Value is one element of the tree: *Node, Array, Object or Scalar.
type Value interface {
	appendJSON(dst []byte) []byte
}

// Compile-time interface checks.
var (
	_ Value = (*Node)(nil)
	_ Value = Array(nil)
	_ Value = Object(nil)
	_ Value = Scalar{}
)

// Node is a tagged pandoc element. Contents is nil for kinds that carry no
// "c" member (Space, SoftBreak, LineBreak, HorizontalRule).
type Node struct {
	Kind     Kind
	Contents Value
}

// NewNode creates a node of the given kind.
func NewNode(kind Kind, contents Value) *Node {
	return &Node{Kind: kind, Contents: contents}
}

// Items returns the node contents as a list.
func (n *Node) Items() (Array, error) {
	if n.Contents == nil {
		return nil, shapeErrorf(n.Kind, "missing contents")
	}
	items, ok := n.Contents.(Array)
	if !ok {
		return nil, shapeErrorf(n.Kind, "contents is not a list")
	}
	return items, nil
}

func (n *Node) appendJSON(dst []byte) []byte {
	dst = append(dst, `{"t":`...)
	dst = appendString(dst, string(n.Kind))
	if n.Contents != nil {
		dst = append(dst, `,"c":`...)
		dst = n.Contents.appendJSON(dst)
	}
	return append(dst, '}')
}

// Array is an ordered JSON list.
type Array []Value

func (a Array) appendJSON(dst []byte) []byte {
	dst = append(dst, '[')
	for i, v := range a {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = v.appendJSON(dst)
	}
	return append(dst, ']')
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that is not a node. Member order is preserved.
type Object []Member

// Get returns the value of the first member named key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

func (o Object) appendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	for i, m := range o {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendString(dst, m.Key)
		dst = append(dst, ':')
		dst = m.Value.appendJSON(dst)
	}
	return append(dst, '}')
}

// Scalar is a JSON literal (string, number, boolean or null) kept as its
// original bytes.
type Scalar struct {
	raw []byte
}

// String returns a string scalar.
func String(s string) Scalar {
	return Scalar{raw: appendString(nil, s)}
}

// Int returns a number scalar.
func Int(n int) Scalar {
	return Scalar{raw: strconv.AppendInt(nil, int64(n), 10)}
}

// Raw returns the literal bytes of the scalar.
func (s Scalar) Raw() []byte { return s.raw }

// Text decodes a string scalar. ok is false for any other literal.
func (s Scalar) Text() (text string, ok bool) {
	if len(s.raw) == 0 || s.raw[0] != '"' {
		return "", false
	}
	if err := json.Unmarshal(s.raw, &text); err != nil {
		return "", false
	}
	return text, true
}

func (s Scalar) appendJSON(dst []byte) []byte {
	return append(dst, s.raw...)
}

// Strings builds a list of string scalars.
func Strings(values ...string) Array {
	out := make(Array, len(values))
	for i, v := range values {
		out[i] = String(v)
	}
	return out
}

// Text returns the decoded string when v is a string scalar.
func Text(v Value) (string, bool) {
	s, ok := v.(Scalar)
	if !ok {
		return "", false
	}
	return s.Text()
}

// appendString appends s as a JSON string without HTML escaping, matching
// what pandoc itself emits for <, > and &.
func appendString(dst []byte, s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return append(dst, bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})...)
}
