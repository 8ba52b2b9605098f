package ast

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, input string) *Document {
	t.Helper()
	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("failed to parse %s: %v", input, err)
	}
	return doc
}

func firstNode(t *testing.T, doc *Document, kind Kind) *Node {
	t.Helper()
	var found *Node
	_ = doc.Walk(func(n *Node) error {
		if found == nil && n.Kind == kind {
			found = n
		}
		return nil
	})
	if found == nil {
		t.Fatalf("no %s node in document", kind)
	}
	return found
}

// ---------------------------------------------------------------------------
// TestWalk
// ---------------------------------------------------------------------------

func TestWalk_VisitsDepthFirstInOrder(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sampleDoc)

	var kinds []Kind
	err := doc.Walk(func(n *Node) error {
		kinds = append(kinds, n.Kind)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Kind{"MetaInlines", KindStr, KindPara, KindImage, KindStr, KindPara, KindStr, KindSpace, KindStr}
	if len(kinds) != len(want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sampleDoc)
	stop := errors.New("stop")

	visits := 0
	err := doc.Walk(func(n *Node) error {
		visits++
		if n.Kind == KindImage {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) {
		t.Fatalf("expected stop error, got %v", err)
	}
	if visits != 4 {
		t.Errorf("expected walk to stop at visit 4, got %d", visits)
	}
}

func TestWalk_DescendsIntoReplacedContents(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"blocks":[{"t":"Para","c":[]}]}`)

	var seen []Kind
	err := doc.Walk(func(n *Node) error {
		seen = append(seen, n.Kind)
		if n.Kind == KindPara {
			n.Contents = Array{NewNode(KindStr, String("new"))}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 2 || seen[1] != KindStr {
		t.Errorf("expected walk into new contents, got %v", seen)
	}
}

// ---------------------------------------------------------------------------
// TestTarget
// ---------------------------------------------------------------------------

func TestTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		node      string
		wantURL   string
		wantTitle string
		wantShape bool
	}{
		{"image", `{"t":"Image","c":[["",[],[]],[],["/a/b.png","title"]]}`, "/a/b.png", "title", false},
		{"pair only", `{"t":"Image","c":[["a.png",""]]}`, "a.png", "", false},
		{"missing contents", `{"t":"Image"}`, "", "", true},
		{"empty contents", `{"t":"Image","c":[]}`, "", "", true},
		{"contents not a list", `{"t":"Image","c":"x"}`, "", "", true},
		{"last element not a pair", `{"t":"Image","c":[["a","b","c"]]}`, "", "", true},
		{"url not a string", `{"t":"Image","c":[[1,"t"]]}`, "", "", true},
		{"title not a string", `{"t":"Image","c":[["a",null]]}`, "", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := mustParse(t, `{"blocks":[`+tt.node+`]}`)
			node := firstNode(t, doc, KindImage)

			url, title, err := node.Target()

			if tt.wantShape {
				if !errors.Is(err, ErrShape) {
					t.Fatalf("expected ErrShape, got %v", err)
				}
				var shapeErr *ShapeError
				if !errors.As(err, &shapeErr) || shapeErr.Kind != KindImage {
					t.Errorf("expected ShapeError for Image, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if url != tt.wantURL || title != tt.wantTitle {
				t.Errorf("expected (%q, %q), got (%q, %q)", tt.wantURL, tt.wantTitle, url, title)
			}
		})
	}
}

func TestSetTargetURL_KeepsTitleLiteral(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"blocks":[{"t":"Image","c":[["",[],[]],[],["/a.png","café"]]}]}`)
	node := firstNode(t, doc, KindImage)

	if err := node.SetTargetURL("a.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"blocks":[{"t":"Image","c":[["",[],[]],[],["a.png","café"]]}]}`
	if got := string(doc.Marshal()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestSetTarget(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"blocks":[{"t":"Link","c":[["",[],[]],[],["a","b"]]}]}`)
	node := firstNode(t, doc, KindLink)

	if err := node.SetTarget("x<y", "t"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"blocks":[{"t":"Link","c":[["",[],[]],[],["x<y","t"]]}]}`
	if got := string(doc.Marshal()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// ---------------------------------------------------------------------------
// TestAttr
// ---------------------------------------------------------------------------

func TestAttr_ReadAndWrite(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"blocks":[{"t":"Link","c":[["id",["c1"],[["target","_self"]]],[],["u",""]]}]}`)
	node := firstNode(t, doc, KindLink)

	attr, err := node.Attr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attr.ID != "id" || len(attr.Classes) != 1 || attr.Classes[0] != "c1" {
		t.Errorf("unexpected attr %+v", attr)
	}
	if v, ok := attr.Get("target"); !ok || v != "_self" {
		t.Errorf("expected target=_self, got %q (%v)", v, ok)
	}

	attr.Set("target", "_blank")
	attr.Set("rel", "noopener")
	if err := node.SetAttr(attr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"blocks":[{"t":"Link","c":[["id",["c1"],[["target","_blank"],["rel","noopener"]]],[],["u",""]]}]}`
	if got := string(doc.Marshal()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestAttr_HeaderUsesSecondSlot(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"blocks":[{"t":"Header","c":[1,["intro",[],[]],[]]}]}`)
	node := firstNode(t, doc, KindHeader)

	attr, err := node.Attr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attr.ID != "intro" {
		t.Errorf("expected id intro, got %q", attr.ID)
	}
}

func TestAttr_ShapeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node string
		kind Kind
	}{
		{"kind without attributes", `{"t":"Str","c":"x"}`, KindStr},
		{"empty contents", `{"t":"Link","c":[]}`, KindLink},
		{"attr not a triple", `{"t":"Link","c":[["id",[]],[],["u",""]]}`, KindLink},
		{"id not a string", `{"t":"Link","c":[[1,[],[]],[],["u",""]]}`, KindLink},
		{"class not a string", `{"t":"Link","c":[["",[1],[]],[],["u",""]]}`, KindLink},
		{"pair too short", `{"t":"Link","c":[["",[],[["k"]]],[],["u",""]]}`, KindLink},
		{"pair non-string", `{"t":"Link","c":[["",[],[["k",2]]],[],["u",""]]}`, KindLink},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := mustParse(t, `{"blocks":[`+tt.node+`]}`)
			node := firstNode(t, doc, tt.kind)

			if _, err := node.Attr(); !errors.Is(err, ErrShape) {
				t.Errorf("expected ErrShape, got %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestScalar
// ---------------------------------------------------------------------------

func TestScalar_Text(t *testing.T) {
	t.Parallel()

	if got, ok := String("a\"b</c>").Text(); !ok || got != "a\"b</c>" {
		t.Errorf("unexpected round trip %q (%v)", got, ok)
	}
	if string(String("<&>").Raw()) != `"<&>"` {
		t.Errorf("expected no HTML escaping, got %s", String("<&>").Raw())
	}
	if _, ok := Int(3).Text(); ok {
		t.Error("expected number scalar not to decode as text")
	}
	if string(Int(3).Raw()) != "3" {
		t.Errorf("expected 3, got %s", Int(3).Raw())
	}
}
