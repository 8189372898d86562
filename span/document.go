package span

import "strings"

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo/redo

	// OnChange is called after every effective mutation, including undo/redo.
	OnChange func(Change)
}

// Document owns a fixed token sequence and the nested, non-crossing spans
// laid over it.
type Document struct {
	tokens []string
	root   *node
	byKey  map[string]*node
	// insertion order of surviving spans
	order []string

	version uint64
	opt     Options
	hist    historyState

	lastChange    Change
	hasLastChange bool
}

// New builds a document over tokens and applies annotations in order.
// The first annotation that fails validation aborts construction.
func New(tokens []string, opt Options, annotations ...Annotation) (*Document, error) {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	d := &Document{
		tokens: append([]string(nil), tokens...),
		root:   &node{},
		byKey:  make(map[string]*node),
		opt:    opt,
	}

	// Initial spans are part of the document, not user edits.
	onChange := d.opt.OnChange
	limit := d.opt.HistoryLimit
	d.opt.OnChange = nil
	d.opt.HistoryLimit = -1
	for _, a := range annotations {
		if err := d.Add(a); err != nil {
			return nil, err
		}
	}
	d.opt.OnChange = onChange
	d.opt.HistoryLimit = limit
	d.hasLastChange = false
	return d, nil
}

func (d *Document) Version() uint64 { return d.version }

func (d *Document) TokenCount() int { return len(d.tokens) }

// Tokens returns a copy of the token sequence.
func (d *Document) Tokens() []string { return append([]string(nil), d.tokens...) }

// Token returns the token at i, or "" when i is out of range.
func (d *Document) Token(i int) string {
	if i < 0 || i >= len(d.tokens) {
		return ""
	}
	return d.tokens[i]
}

// Text returns the tokens covered by r joined with single spaces.
func (d *Document) Text(r Range) string {
	begin := clampInt(r.Begin, 0, len(d.tokens))
	end := clampInt(r.End, begin, len(d.tokens))
	return strings.Join(d.tokens[begin:end], " ")
}

// Add validates a and inserts it into the containment tree.
//
// If spans with the same bounds already exist, a is nested inside the
// innermost of them. Spans fully inside a become its children.
func (d *Document) Add(a Annotation) error {
	n, err := d.add(a, nil)
	if err != nil {
		return err
	}
	d.recordUndo(historyOp{kind: ChangeAdd, ann: a})
	d.commitChange(ChangeAdd, SourceLocal, a, parentKey(n))
	return nil
}

// Remove unwraps the span identified by key. Its children move up one level
// and the span is dropped from Annotations().
func (d *Document) Remove(key string) (Annotation, error) {
	a, parent, err := d.remove(key)
	if err != nil {
		return Annotation{}, err
	}
	d.recordUndo(historyOp{kind: ChangeRemove, ann: a, parent: parent})
	d.commitChange(ChangeRemove, SourceLocal, a, parent)
	return a, nil
}

// add inserts a below the innermost span containing it, or directly below at
// when at is set and can hold it.
func (d *Document) add(a Annotation, at *node) (*node, error) {
	if a.Begin < 0 || a.End > len(d.tokens) || a.Begin >= a.End {
		return nil, invalidRangeError(a, len(d.tokens))
	}
	if _, ok := d.byKey[a.Key()]; ok {
		return nil, duplicateError(a)
	}
	parent := descend(d.root, a.Range())
	if at != nil {
		parent = placeUnder(d.root, at, a.Range())
	}
	n, err := insertUnder(parent, a)
	if err != nil {
		return nil, err
	}
	d.byKey[a.Key()] = n
	d.order = append(d.order, a.Key())
	d.version++
	return n, nil
}

// remove unwraps the span with key and returns it with the key of the span
// that enclosed it.
func (d *Document) remove(key string) (Annotation, string, error) {
	n, ok := d.byKey[key]
	if !ok {
		return Annotation{}, "", notFoundError(key)
	}
	a := n.ann
	parent := parentKey(n)
	unwrap(n)
	delete(d.byKey, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	d.version++
	return a, parent, nil
}

// Annotations returns the surviving spans in insertion order.
func (d *Document) Annotations() []Annotation {
	out := make([]Annotation, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.byKey[k].ann)
	}
	return out
}

func (d *Document) Len() int { return len(d.order) }

func (d *Document) Lookup(key string) (Annotation, bool) {
	n, ok := d.byKey[key]
	if !ok {
		return Annotation{}, false
	}
	return n.ann, true
}

// Root returns the containment tree root.
func (d *Document) Root() Node { return Node{n: d.root, tokenCount: len(d.tokens)} }

// NodeOf returns the tree node for key.
func (d *Document) NodeOf(key string) (Node, bool) {
	n, ok := d.byKey[key]
	if !ok {
		return Node{}, false
	}
	return Node{n: n, tokenCount: len(d.tokens)}, true
}

// Walk visits spans outer-before-inner in Begin order. Returning false stops
// the walk. depth is 0 for top-level spans.
func (d *Document) Walk(fn func(a Annotation, depth int) bool) {
	preorder(d.root, func(n *node, depth int) bool {
		return fn(n.ann, depth)
	})
}

// Enclosing returns the spans covering token i, outermost first.
func (d *Document) Enclosing(i int) []Annotation {
	if i < 0 || i >= len(d.tokens) {
		return nil
	}
	var out []Annotation
	cur := d.root
	for {
		var next *node
		for _, c := range cur.children {
			if c.ann.Begin <= i && i < c.ann.End {
				next = c
				break
			}
		}
		if next == nil {
			return out
		}
		out = append(out, next.ann)
		cur = next
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
