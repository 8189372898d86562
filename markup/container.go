package markup

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/iw2rmb/spanedit/span"
)

// Container owns an HTML element holding rendered tokens and mutates it in
// place with range wrap and unwrap operations.
//
// Wrappers are found through an owned key map; the container never searches
// the tree by id.
type Container struct {
	root   *html.Node
	tokens []*html.Node
	byKey  map[string]*html.Node
}

// NewContainer appends one element per token to root, in order.
func NewContainer(root *html.Node, tokens []string) *Container {
	c := &Container{
		root:   root,
		tokens: make([]*html.Node, 0, len(tokens)),
		byKey:  make(map[string]*html.Node),
	}
	for i, tok := range tokens {
		n := tokenElement(i, tok)
		root.AppendChild(n)
		c.tokens = append(c.tokens, n)
	}
	return c
}

// Attach builds a container for doc under root and wraps its current spans.
// The returned container can be fed further changes through Apply.
func Attach(root *html.Node, doc *span.Document) (*Container, error) {
	c := NewContainer(root, doc.Tokens())
	var err error
	doc.Walk(func(a span.Annotation, _ int) bool {
		err = c.Wrap(a)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) Root() *html.Node { return c.root }

// Lookup returns the wrapper element for key.
func (c *Container) Lookup(key string) (*html.Node, bool) {
	n, ok := c.byKey[key]
	return n, ok
}

// Token returns the element of the token at index i.
func (c *Container) Token(i int) (*html.Node, bool) {
	if i < 0 || i >= len(c.tokens) {
		return nil, false
	}
	return c.tokens[i], true
}

// Wrap encloses the token elements of a's range in a new wrapper element.
//
// The wrapper is placed at the deepest level that holds the whole range, so a
// span with the same bounds as an existing wrapper goes inside it. A range
// that would split an existing wrapper returns span.ErrCrossingAnnotation and
// leaves the tree untouched.
func (c *Container) Wrap(a span.Annotation) error {
	if err := c.check(a); err != nil {
		return err
	}
	return c.wrap(a, commonParent(c.tokens[a.Begin], c.tokens[a.End-1]))
}

// WrapUnder is Wrap with the wrapper placed directly below the wrapper of
// parentKey, or below the root when parentKey is empty.
func (c *Container) WrapUnder(a span.Annotation, parentKey string) error {
	if err := c.check(a); err != nil {
		return err
	}
	parent := c.root
	if parentKey != "" {
		p, ok := c.byKey[parentKey]
		if !ok {
			return fmt.Errorf("%w: parent %q", span.ErrNotFound, parentKey)
		}
		parent = p
	}
	return c.wrap(a, parent)
}

func (c *Container) check(a span.Annotation) error {
	if a.Begin < 0 || a.End > len(c.tokens) || a.Begin >= a.End {
		return fmt.Errorf("%w: %s with %d tokens", span.ErrInvalidRange, a, len(c.tokens))
	}
	if _, ok := c.byKey[a.Key()]; ok {
		return fmt.Errorf("%w: %q", span.ErrDuplicateIdentifier, a.Key())
	}
	return nil
}

func (c *Container) wrap(a span.Annotation, parent *html.Node) error {
	first, last := c.tokens[a.Begin], c.tokens[a.End-1]
	top := childOnPath(parent, first)
	bottom := childOnPath(parent, last)
	if top == nil || bottom == nil || firstToken(top) != first || lastToken(bottom) != last {
		return fmt.Errorf("%w: %s splits an existing wrapper", span.ErrCrossingAnnotation, a)
	}

	var moved []*html.Node
	for n := top; n != nil; n = n.NextSibling {
		moved = append(moved, n)
		if n == bottom {
			break
		}
	}

	w := wrapperElement(a)
	parent.InsertBefore(w, top)
	for _, n := range moved {
		parent.RemoveChild(n)
		w.AppendChild(n)
	}
	c.byKey[a.Key()] = w
	return nil
}

// Unwrap removes the wrapper for key and lifts its children one level up.
func (c *Container) Unwrap(key string) error {
	w, ok := c.byKey[key]
	if !ok {
		return fmt.Errorf("%w: %q", span.ErrNotFound, key)
	}
	p := w.Parent
	for n := w.FirstChild; n != nil; {
		next := n.NextSibling
		w.RemoveChild(n)
		p.InsertBefore(n, w)
		n = next
	}
	p.RemoveChild(w)
	delete(c.byKey, key)
	return nil
}

// Apply mirrors one document change, placing added spans at the level the
// document reports in ch.Parent. It fits span.Options.OnChange.
func (c *Container) Apply(ch span.Change) error {
	switch ch.Kind {
	case span.ChangeAdd:
		return c.WrapUnder(ch.Annotation, ch.Parent)
	case span.ChangeRemove:
		return c.Unwrap(ch.Annotation.Key())
	default:
		return fmt.Errorf("markup: unknown change kind %v", ch.Kind)
	}
}

// commonParent returns the deepest element that contains both a and b and is
// not itself a token.
func commonParent(a, b *html.Node) *html.Node {
	seen := make(map[*html.Node]struct{})
	for n := a.Parent; n != nil; n = n.Parent {
		seen[n] = struct{}{}
	}
	for n := b.Parent; n != nil; n = n.Parent {
		if _, ok := seen[n]; ok {
			return n
		}
	}
	return nil
}

func childOnPath(ancestor, n *html.Node) *html.Node {
	for n != nil && n.Parent != ancestor {
		n = n.Parent
	}
	return n
}

func firstToken(n *html.Node) *html.Node {
	for n != nil && !isToken(n) {
		n = n.FirstChild
	}
	return n
}

func lastToken(n *html.Node) *html.Node {
	for n != nil && !isToken(n) {
		n = n.LastChild
	}
	return n
}
