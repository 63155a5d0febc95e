package linkdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ParseDocument parses a markdown fragment into a Document. Inline links
// become annotated spans carrying the destination and, when present, the
// title; everything else flattens to plain text spans.
func ParseDocument(source string) (*Document, error) {
	md := goldmark.New()
	src := []byte(source)
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	var spans []Span
	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Link:
			var linkText strings.Builder
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					linkText.Write(textNode.Segment.Value(src))
				}
			}
			rec := &AnchorRecord{Href: AttrOf(string(n.Destination))}
			if n.Title != nil {
				rec.Title = AttrOf(string(n.Title))
			}
			spans = append(spans, Span{Text: linkText.String(), Anchor: rec})
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			url := string(n.URL(src))
			spans = append(spans, Span{Text: url, Anchor: &AnchorRecord{Href: AttrOf(url)}})
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			spans = append(spans, Span{Text: string(n.Segment.Value(src))})
			if n.SoftLineBreak() || n.HardLineBreak() {
				spans = append(spans, Span{Text: "\n"})
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	return NewDocument(spans...), nil
}

// FormatDocument renders a Document back to markdown. Annotated spans become
// inline links; a set title is emitted even when empty, so set-empty survives
// a round trip distinctly from unset.
func FormatDocument(doc *Document) string {
	var b strings.Builder
	for _, sp := range doc.Spans() {
		if sp.Anchor == nil {
			b.WriteString(sp.Text)
			continue
		}
		href := sp.Anchor.Href.Or("")
		if title, ok := sp.Anchor.Title.Get(); ok {
			fmt.Fprintf(&b, "[%s](%s %q)", sp.Text, href, title)
		} else {
			fmt.Fprintf(&b, "[%s](%s)", sp.Text, href)
		}
	}
	return b.String()
}

// Markdown returns the document formatted as markdown.
func (d *Document) Markdown() string { return FormatDocument(d) }
