package span

import "strings"

// shape renders the containment tree as "[key tok tok] tok" for assertions.
func shape(d *Document) string {
	var sb strings.Builder
	var walk func(n Node)
	walk = func(n Node) {
		r := n.Range()
		children := n.Children()
		next := r.Begin
		for _, c := range children {
			for ; next < c.Range().Begin; next++ {
				writeToken(&sb, d.Token(next))
			}
			a, _ := c.Annotation()
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "[") {
				sb.WriteByte(' ')
			}
			sb.WriteString("[" + a.Key())
			walk(c)
			sb.WriteString("]")
			next = c.Range().End
		}
		for ; next < r.End; next++ {
			writeToken(&sb, d.Token(next))
		}
	}
	walk(d.Root())
	return sb.String()
}

func writeToken(sb *strings.Builder, tok string) {
	if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "[") {
		sb.WriteByte(' ')
	}
	sb.WriteString(tok)
}
