package span

// Position anchors span navigation. Key, when set and present in the
// document, takes precedence over Token.
type Position struct {
	Token int
	Key   string
}

// NextSpan returns the first span after (Forward) or before (Backward) pos
// for which match reports true. A nil match accepts every span.
//
// Spans are ordered outer-before-inner by Begin, so nested spans that share
// a start token are visited from the outside in.
func (d *Document) NextSpan(pos Position, dir Direction, match func(Annotation) bool) (Annotation, bool) {
	ordered := make([]Annotation, 0, len(d.order))
	anchor := -1
	preorder(d.root, func(n *node, _ int) bool {
		if pos.Key != "" && n.ann.Key() == pos.Key {
			anchor = len(ordered)
		}
		ordered = append(ordered, n.ann)
		return true
	})

	accept := func(a Annotation) bool { return match == nil || match(a) }

	switch dir {
	case Forward:
		start := 0
		if anchor >= 0 {
			start = anchor + 1
		} else {
			for start < len(ordered) && ordered[start].Begin < pos.Token {
				start++
			}
		}
		for i := start; i < len(ordered); i++ {
			if accept(ordered[i]) {
				return ordered[i], true
			}
		}
	case Backward:
		start := len(ordered) - 1
		if anchor >= 0 {
			start = anchor - 1
		} else {
			for start >= 0 && ordered[start].Begin >= pos.Token {
				start--
			}
		}
		for i := start; i >= 0; i-- {
			if accept(ordered[i]) {
				return ordered[i], true
			}
		}
	}
	return Annotation{}, false
}

// TypeMatcher returns a match func accepting spans of any of the given types.
func TypeMatcher(types ...string) func(Annotation) bool {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return func(a Annotation) bool {
		_, ok := set[a.Type]
		return ok
	}
}
