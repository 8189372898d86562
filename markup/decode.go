package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iw2rmb/spanedit/span"
)

// Decode reads tokens and annotations back from a rendered tree. Annotations
// are returned outer-before-inner, which rebuilds the same nesting when
// passed to span.New.
func Decode(root *html.Node) ([]string, []span.Annotation, error) {
	var (
		tokens []string
		anns   []span.Annotation
	)
	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.DataAtom != atom.Span {
				if c.Type == html.ElementNode {
					if err := walk(c); err != nil {
						return err
					}
				}
				continue
			}
			if isToken(c) {
				tokens = append(tokens, textContent(c))
				continue
			}

			class, id := attr(c, "class"), attr(c, "id")
			if class == "" || !strings.HasPrefix(id, class) {
				return fmt.Errorf("markup: wrapper id %q does not start with class %q", id, class)
			}
			idx := len(anns)
			anns = append(anns, span.NewAnnotation(class, strings.TrimPrefix(id, class), len(tokens), 0))
			if err := walk(c); err != nil {
				return err
			}
			anns[idx].End = len(tokens)
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, nil, err
	}
	return tokens, anns, nil
}

// Parse reads an HTML fragment or page and decodes the first
// annotation-editor element in it, or the whole body when there is none.
func Parse(r io.Reader) ([]string, []span.Annotation, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("markup: parse: %w", err)
	}
	root := findClass(doc, ContainerClass)
	if root == nil {
		root = doc
	}
	return Decode(root)
}

func findClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "class") == class {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
