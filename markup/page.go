package markup

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TypeStyle is the CSS used for one annotation type on a demo page.
type TypeStyle struct {
	Foreground string
	Background string
	Bold       bool
	Underline  bool
}

// Page wraps body in a standalone HTML document with token spacing and one
// CSS rule per annotation type.
func Page(title string, body *html.Node, styles map[string]TypeStyle) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, "", "")
	head := element(atom.Head, "", "")
	t := element(atom.Title, "", "")
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(t)

	style := element(atom.Style, "", "")
	style.AppendChild(&html.Node{Type: html.TextNode, Data: stylesheet(styles)})
	head.AppendChild(style)

	b := element(atom.Body, "", "")
	b.AppendChild(body)

	root.AppendChild(head)
	root.AppendChild(b)
	doc.AppendChild(root)
	return doc
}

var (
	cssIdent = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)
	cssColor = regexp.MustCompile(`^[#a-zA-Z0-9(),.% ]+$`)
)

// stylesheet skips types that are not CSS identifiers and colors outside a
// plain character set, so no rule can leave the style element.
func stylesheet(styles map[string]TypeStyle) string {
	var sb strings.Builder
	sb.WriteString(".token { margin-right: 0.3em; }\n")

	types := make([]string, 0, len(styles))
	for typ := range styles {
		types = append(types, typ)
	}
	sort.Strings(types)

	for _, typ := range types {
		if !cssIdent.MatchString(typ) {
			continue
		}
		st := styles[typ]
		var decls []string
		if cssColor.MatchString(st.Foreground) {
			decls = append(decls, "color: "+st.Foreground)
		}
		if cssColor.MatchString(st.Background) {
			decls = append(decls, "background: "+st.Background)
		}
		if st.Bold {
			decls = append(decls, "font-weight: bold")
		}
		if st.Underline {
			decls = append(decls, "text-decoration: underline")
		}
		if len(decls) == 0 {
			continue
		}
		fmt.Fprintf(&sb, ".%s { %s; }\n", typ, strings.Join(decls, "; "))
	}
	return sb.String()
}
