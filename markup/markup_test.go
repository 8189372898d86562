package markup

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iw2rmb/spanedit/span"
)

var obama = []string{"Barack", "Obama", "was", "president"}

func renderString(t *testing.T, n *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteHTML(&buf, n); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	return buf.String()
}

func tok(i int, text string) string {
	return `<span class="token" id="token` + string(rune('0'+i)) + `">` + text + `</span>`
}

func TestRender_WrapsAnnotatedTokens(t *testing.T) {
	doc, err := span.New(obama, span.Options{}, span.NewAnnotation("person", "0", 0, 2))
	if err != nil {
		t.Fatalf("span.New: %v", err)
	}

	got := renderString(t, Render(doc))
	want := `<div class="annotation-editor">` +
		`<span class="person" id="person0">` + tok(0, "Barack") + tok(1, "Obama") + `</span>` +
		tok(2, "was") + tok(3, "president") +
		`</div>`
	if got != want {
		t.Fatalf("render:\n got: %s\nwant: %s", got, want)
	}
}

func TestRender_TokenCountAndOrder(t *testing.T) {
	doc, _ := span.New(obama, span.Options{},
		span.NewAnnotation("a", "0", 0, 4),
		span.NewAnnotation("b", "0", 1, 3),
	)
	tokens, _, err := Decode(Render(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(obama, tokens); diff != "" {
		t.Fatalf("tokens (-want +got):\n%s", diff)
	}
}

func TestContainer_EqualBoundsNestInside(t *testing.T) {
	root := element(atom.Div, ContainerClass, "")
	c := NewContainer(root, obama)

	if err := c.Wrap(span.NewAnnotation("person", "0", 0, 2)); err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if err := c.Wrap(span.NewAnnotation("name", "0", 0, 2)); err != nil {
		t.Fatalf("Wrap: %v", err)
	}

	outer, _ := c.Lookup("person0")
	inner, _ := c.Lookup("name0")
	if inner.Parent != outer {
		t.Fatalf("expected name0 nested inside person0")
	}
	if outer.FirstChild != inner || outer.LastChild != inner {
		t.Fatalf("expected person0 to hold only name0")
	}
}

func TestContainer_RejectsCrossingWithoutMutation(t *testing.T) {
	root := element(atom.Div, ContainerClass, "")
	c := NewContainer(root, []string{"a", "b", "c", "d", "e"})
	if err := c.Wrap(span.NewAnnotation("a", "0", 0, 3)); err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	before := renderString(t, root)

	err := c.Wrap(span.NewAnnotation("b", "0", 2, 4))
	if !errors.Is(err, span.ErrCrossingAnnotation) {
		t.Fatalf("err: got %v, want %v", err, span.ErrCrossingAnnotation)
	}
	if got := renderString(t, root); got != before {
		t.Fatalf("tree mutated by rejected wrap:\n got: %s\nwant: %s", got, before)
	}
}

func TestContainer_WrapUnwrapRoundTrip(t *testing.T) {
	root := element(atom.Div, ContainerClass, "")
	c := NewContainer(root, []string{"a", "b", "c", "d"})
	_ = c.Wrap(span.NewAnnotation("x", "0", 1, 2))
	before := renderString(t, root)

	if err := c.Wrap(span.NewAnnotation("y", "0", 0, 4)); err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if err := c.Unwrap("y0"); err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if got := renderString(t, root); got != before {
		t.Fatalf("round trip:\n got: %s\nwant: %s", got, before)
	}
	if err := c.Unwrap("y0"); !errors.Is(err, span.ErrNotFound) {
		t.Fatalf("second unwrap: got %v, want %v", err, span.ErrNotFound)
	}
}

func TestContainer_FollowsDocumentChanges(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "f"}
	root := element(atom.Div, ContainerClass, "")

	var c *Container
	var applyErr error
	doc, err := span.New(tokens, span.Options{
		OnChange: func(ch span.Change) {
			if err := c.Apply(ch); err != nil && applyErr == nil {
				applyErr = err
			}
		},
	}, span.NewAnnotation("s", "0", 0, 6))
	if err != nil {
		t.Fatalf("span.New: %v", err)
	}
	c, err = Attach(root, doc)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	steps := []func() error{
		func() error { return doc.Add(span.NewAnnotation("p", "0", 1, 3)) },
		func() error { return doc.Add(span.NewAnnotation("p", "1", 4, 5)) },
		func() error { return doc.Add(span.NewAnnotation("q", "0", 1, 5)) },
		func() error { _, err := doc.Remove("s0"); return err },
		func() error { doc.Undo(); return nil },
		func() error { _, err := doc.Remove("p0"); return err },
		func() error { doc.Undo(); doc.Redo(); return nil },
		func() error { return doc.Add(span.NewAnnotation("e", "0", 4, 5)) },
		func() error { _, err := doc.Remove("p1"); return err },
		func() error { doc.Undo(); return nil },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if applyErr != nil {
			t.Fatalf("step %d apply: %v", i, applyErr)
		}
		want := renderString(t, Render(doc))
		if got := renderString(t, root); got != want {
			t.Fatalf("step %d container diverged:\n got: %s\nwant: %s", i, got, want)
		}
	}
}

func TestDecode_RebuildsDocument(t *testing.T) {
	doc, _ := span.New([]string{"a", "b", "c", "d"}, span.Options{},
		span.NewAnnotation("x", "0", 0, 4),
		span.NewAnnotation("y", "7", 0, 4),
		span.NewAnnotation("z", "1", 2, 3),
	)
	tokens, anns, err := Decode(Render(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rebuilt, err := span.New(tokens, span.Options{}, anns...)
	if err != nil {
		t.Fatalf("span.New: %v", err)
	}
	if got, want := renderString(t, Render(rebuilt)), renderString(t, Render(doc)); got != want {
		t.Fatalf("rebuilt render:\n got: %s\nwant: %s", got, want)
	}

	want := []span.Annotation{
		span.NewAnnotation("x", "0", 0, 4),
		span.NewAnnotation("y", "7", 0, 4),
		span.NewAnnotation("z", "1", 2, 3),
	}
	if diff := cmp.Diff(want, anns); diff != "" {
		t.Fatalf("annotations (-want +got):\n%s", diff)
	}
}

func TestPage_ParseFindsEditor(t *testing.T) {
	doc, _ := span.New(obama, span.Options{}, span.NewAnnotation("person", "0", 0, 2))
	page := Page("demo", Render(doc), map[string]TypeStyle{
		"person": {Foreground: "#0af", Bold: true},
		"empty":  {},
	})
	out := renderString(t, page)

	if !strings.Contains(out, ".person { color: #0af; font-weight: bold; }") {
		t.Fatalf("missing person rule in page:\n%s", out)
	}
	if strings.Contains(out, ".empty") {
		t.Fatalf("empty style should not produce a rule:\n%s", out)
	}

	tokens, anns, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(obama, tokens); diff != "" {
		t.Fatalf("tokens (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]span.Annotation{span.NewAnnotation("person", "0", 0, 2)}, anns); diff != "" {
		t.Fatalf("annotations (-want +got):\n%s", diff)
	}
}

func TestPage_StylesheetStaysInsideStyleElement(t *testing.T) {
	doc, _ := span.New(obama, span.Options{}, span.NewAnnotation("person", "0", 0, 2))
	breakout := "x</style><script>alert(1)</script>"
	page := Page("demo", Render(doc), map[string]TypeStyle{
		"person": {Foreground: "red"},
		breakout: {Bold: true},
		"place":  {Foreground: "blue;}</style><script>", Underline: true},
	})
	out := renderString(t, page)

	if strings.Contains(out, "<script>") {
		t.Fatalf("style text escaped the style element:\n%s", out)
	}
	if got := strings.Count(out, "</style>"); got != 1 {
		t.Fatalf("closing style tags: got %d, want 1\n%s", got, out)
	}
	for _, rule := range []string{
		".person { color: red; }",
		".place { text-decoration: underline; }",
	} {
		if !strings.Contains(out, rule) {
			t.Fatalf("missing rule %q in page:\n%s", rule, out)
		}
	}
}

func TestContainer_UndoRemoveRestoresOuterWrapper(t *testing.T) {
	root := element(atom.Div, ContainerClass, "")
	var c *Container
	doc, err := span.New([]string{"a", "b", "c"}, span.Options{
		OnChange: func(ch span.Change) {
			if err := c.Apply(ch); err != nil {
				t.Fatalf("Apply: %v", err)
			}
		},
	},
		span.NewAnnotation("x", "0", 0, 2),
		span.NewAnnotation("y", "0", 0, 2),
	)
	if err != nil {
		t.Fatalf("span.New: %v", err)
	}
	c, err = Attach(root, doc)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if _, err := doc.Remove("x0"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	doc.Undo()

	outer, _ := c.Lookup("x0")
	inner, _ := c.Lookup("y0")
	if inner.Parent != outer {
		t.Fatalf("y0 wrapper parent: got %v, want x0 wrapper", inner.Parent)
	}
	if got, want := renderString(t, root), renderString(t, Render(doc)); got != want {
		t.Fatalf("container diverged:\n got: %s\nwant: %s", got, want)
	}
}

func TestContainer_WrapUnderUnknownParent(t *testing.T) {
	root := element(atom.Div, ContainerClass, "")
	c := NewContainer(root, []string{"a", "b"})
	err := c.WrapUnder(span.NewAnnotation("x", "0", 0, 1), "missing")
	if !errors.Is(err, span.ErrNotFound) {
		t.Fatalf("WrapUnder error: got %v, want %v", err, span.ErrNotFound)
	}
}
