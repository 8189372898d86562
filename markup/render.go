package markup

import (
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iw2rmb/spanedit/span"
)

const (
	TokenClass     = "token"
	ContainerClass = "annotation-editor"
)

// TokenID returns the element id of the token at index i.
func TokenID(i int) string { return TokenClass + strconv.Itoa(i) }

// Render builds a fresh <div class="annotation-editor"> tree for doc.
func Render(doc *span.Document) *html.Node {
	root := element(atom.Div, ContainerClass, "")
	renderNode(root, doc, doc.Root())
	return root
}

func renderNode(parent *html.Node, doc *span.Document, n span.Node) {
	r := n.Range()
	next := r.Begin
	for _, c := range n.Children() {
		cr := c.Range()
		for ; next < cr.Begin; next++ {
			parent.AppendChild(tokenElement(next, doc.Token(next)))
		}
		a, _ := c.Annotation()
		w := wrapperElement(a)
		parent.AppendChild(w)
		renderNode(w, doc, c)
		next = cr.End
	}
	for ; next < r.End; next++ {
		parent.AppendChild(tokenElement(next, doc.Token(next)))
	}
}

// WriteHTML writes n and its descendants as HTML.
func WriteHTML(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

func element(a atom.Atom, class, id string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	if id != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: id})
	}
	return n
}

func tokenElement(i int, text string) *html.Node {
	n := element(atom.Span, TokenClass, TokenID(i))
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func wrapperElement(a span.Annotation) *html.Node {
	return element(atom.Span, a.Type, a.Key())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isToken(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == atom.Span && attr(n, "class") == TokenClass
}
