package span

import "sort"

// node is one span in the containment tree. Children are sorted by Begin and
// never overlap each other.
type node struct {
	ann      Annotation
	parent   *node
	children []*node
}

func (n *node) isRoot() bool { return n.parent == nil }

// descend returns the innermost node whose range contains r. For equal
// bounds it keeps descending, so the result is the most recently added
// span among equal-bound ones.
func descend(root *node, r Range) *node {
	cur := root
	for {
		next := (*node)(nil)
		for _, c := range cur.children {
			if c.ann.Range().Contains(r) {
				next = c
				break
			}
			if c.ann.Begin >= r.End {
				break
			}
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}

// placeUnder returns at when a span with range r can sit directly below it:
// at covers r and none of its children strictly contains r. Otherwise it
// falls back to descend.
func placeUnder(root, at *node, r Range) *node {
	if !at.isRoot() && !at.ann.Range().Contains(r) {
		return descend(root, r)
	}
	for _, c := range at.children {
		cr := c.ann.Range()
		if cr.Contains(r) && cr != r {
			return descend(c, r)
		}
	}
	return at
}

// insertUnder makes a a child of parent and adopts any of parent's children
// that a fully contains. It fails without mutating the tree when a crosses
// one of them.
func insertUnder(parent *node, a Annotation) (*node, error) {
	r := a.Range()

	first, count := -1, 0
	for i, c := range parent.children {
		cr := c.ann.Range()
		if r.Crosses(cr) {
			return nil, crossingError(a, c.ann)
		}
		if r.Contains(cr) {
			if first < 0 {
				first = i
			}
			count++
		}
	}

	n := &node{ann: a, parent: parent}
	if count > 0 {
		n.children = append([]*node(nil), parent.children[first:first+count]...)
		for _, c := range n.children {
			c.parent = n
		}
		rest := make([]*node, 0, len(parent.children)-count+1)
		rest = append(rest, parent.children[:first]...)
		rest = append(rest, n)
		rest = append(rest, parent.children[first+count:]...)
		parent.children = rest
		return n, nil
	}

	at := sort.Search(len(parent.children), func(i int) bool {
		return parent.children[i].ann.Begin >= a.End
	})
	parent.children = append(parent.children, nil)
	copy(parent.children[at+1:], parent.children[at:])
	parent.children[at] = n
	return n, nil
}

// unwrap removes n from the tree and lifts its children into n's position in
// the parent.
func unwrap(n *node) {
	p := n.parent
	if p == nil {
		return
	}
	idx := -1
	for i, c := range p.children {
		if c == n {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	out := make([]*node, 0, len(p.children)-1+len(n.children))
	out = append(out, p.children[:idx]...)
	for _, c := range n.children {
		c.parent = p
		out = append(out, c)
	}
	out = append(out, p.children[idx+1:]...)
	p.children = out

	n.parent = nil
	n.children = nil
}

// preorder visits nodes outer-before-inner in Begin order, skipping the root.
func preorder(root *node, fn func(n *node, depth int) bool) {
	var walk func(n *node, depth int) bool
	walk = func(n *node, depth int) bool {
		for _, c := range n.children {
			if !fn(c, depth) {
				return false
			}
			if !walk(c, depth+1) {
				return false
			}
		}
		return true
	}
	walk(root, 0)
}

// parentKey returns the key of n's enclosing span, or "" at top level.
func parentKey(n *node) string {
	if n.parent == nil || n.parent.isRoot() {
		return ""
	}
	return n.parent.ann.Key()
}

func depthOf(n *node) int {
	d := 0
	for p := n.parent; p != nil && !p.isRoot(); p = p.parent {
		d++
	}
	return d
}
