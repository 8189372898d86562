package span

// Node is a read-only view of one position in the containment tree.
//
// The root node has no annotation and covers every token of its document.
type Node struct {
	n          *node
	tokenCount int
}

func (v Node) IsRoot() bool { return v.n == nil || v.n.isRoot() }

// Annotation returns the span at this node. ok is false for the root.
func (v Node) Annotation() (Annotation, bool) {
	if v.IsRoot() {
		return Annotation{}, false
	}
	return v.n.ann, true
}

func (v Node) Range() Range {
	if v.IsRoot() {
		return Range{Begin: 0, End: v.tokenCount}
	}
	return v.n.ann.Range()
}

// Depth is 0 for top-level spans and -1 for the root.
func (v Node) Depth() int {
	if v.IsRoot() {
		return -1
	}
	return depthOf(v.n)
}

func (v Node) Children() []Node {
	if v.n == nil || len(v.n.children) == 0 {
		return nil
	}
	out := make([]Node, 0, len(v.n.children))
	for _, c := range v.n.children {
		out = append(out, Node{n: c, tokenCount: v.tokenCount})
	}
	return out
}

// Parent returns the enclosing node. ok is false for the root.
func (v Node) Parent() (Node, bool) {
	if v.IsRoot() {
		return Node{}, false
	}
	return Node{n: v.n.parent, tokenCount: v.tokenCount}, true
}
