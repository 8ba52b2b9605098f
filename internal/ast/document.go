package ast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MaxInputSize limits the size of a decoded document (64MB).
var MaxInputSize int64 = 64 << 20

// Document is a decoded pandoc JSON document.
type Document struct {
	Root Value
}

// Decode reads a whole document from r.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if int64(len(data)) > MaxInputSize {
		return nil, &ParseError{Err: fmt.Errorf("input exceeds %d bytes", MaxInputSize)}
	}
	return Parse(data)
}

// Parse decodes a document from data.
// The root must be a document object carrying a "blocks" list, or the
// two-element [meta, blocks] array older pandoc releases emit.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Err: ErrEmptyInput}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, &ParseError{Offset: syntaxErr.Offset, Err: err}
		}
		return nil, &ParseError{Err: err}
	}

	root, err := parseValue(raw)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	doc := &Document{Root: root}
	if _, ok := doc.Blocks(); !ok {
		return nil, &ParseError{Err: ErrNotDocument}
	}
	return doc, nil
}

// Blocks returns the top-level block list.
func (d *Document) Blocks() (Array, bool) {
	switch root := d.Root.(type) {
	case Object:
		v, ok := root.Get("blocks")
		if !ok {
			return nil, false
		}
		blocks, ok := v.(Array)
		return blocks, ok
	case Array:
		if len(root) != 2 {
			return nil, false
		}
		if _, ok := root[0].(Object); !ok {
			return nil, false
		}
		blocks, ok := root[1].(Array)
		return blocks, ok
	}
	return nil, false
}

// APIVersion returns the pandoc-api-version triple, or nil for documents
// that do not declare one.
func (d *Document) APIVersion() []int {
	root, ok := d.Root.(Object)
	if !ok {
		return nil
	}
	v, ok := root.Get("pandoc-api-version")
	if !ok {
		return nil
	}
	parts, ok := v.(Array)
	if !ok {
		return nil
	}

	version := make([]int, 0, len(parts))
	for _, p := range parts {
		s, ok := p.(Scalar)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(string(s.raw))
		if err != nil {
			return nil
		}
		version = append(version, n)
	}
	return version
}

// Walk visits every node of the document. See Walk.
func (d *Document) Walk(fn WalkFunc) error {
	return Walk(d.Root, fn)
}

// Marshal returns the compact JSON form of the document.
func (d *Document) Marshal() []byte {
	return d.Root.appendJSON(nil)
}

// Encode writes the compact JSON form of the document followed by a newline.
func (d *Document) Encode(w io.Writer) error {
	out := append(d.Marshal(), '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

func parseValue(raw json.RawMessage) (Value, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty value")
	}
	switch raw[0] {
	case '{':
		return parseObject(raw)
	case '[':
		return parseArray(raw)
	default:
		return Scalar{raw: raw}, nil
	}
}

func parseArray(raw json.RawMessage) (Value, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	arr := make(Array, len(items))
	for i, item := range items {
		v, err := parseValue(item)
		if err != nil {
			return nil, err
		}
		arr[i] = v
	}
	return arr, nil
}

func parseObject(raw json.RawMessage) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var obj Object
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var member json.RawMessage
		if err := dec.Decode(&member); err != nil {
			return nil, err
		}
		v, err := parseValue(member)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: key, Value: v})
	}

	if node, ok := asNode(obj); ok {
		return node, nil
	}
	return obj, nil
}

// asNode reports whether obj is a pandoc node: a string "t" member, an
// optional "c" member and nothing else.
func asNode(obj Object) (*Node, bool) {
	if len(obj) == 0 || len(obj) > 2 {
		return nil, false
	}

	node := &Node{}
	tagged := false
	for _, m := range obj {
		switch m.Key {
		case "t":
			tag, ok := Text(m.Value)
			if !ok || tagged {
				return nil, false
			}
			node.Kind = Kind(tag)
			tagged = true
		case "c":
			if node.Contents != nil {
				return nil, false
			}
			node.Contents = m.Value
		default:
			return nil, false
		}
	}
	return node, tagged
}
