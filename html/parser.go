// Package html implements the document tree parser on golang.org/x/net/html.
// The underlying parser is lenient in the way the engine requires: unclosed
// tags are auto-closed, unknown tags are kept as opaque elements with their
// children intact, comments and processing instructions are dropped, and
// character references are decoded.
package html

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jswierad/htmlgrid"
	xhtml "golang.org/x/net/html"
)

// Ensure Parser implements htmlgrid.TreeParser at compile time.
var _ htmlgrid.TreeParser = (*Parser)(nil)

// maxDepth bounds tree conversion so pathological nesting degrades to a
// truncated subtree with a warning instead of unbounded work.
const maxDepth = 512

// blockContainers are elements whose children are block-level; whitespace
// only text nodes between them carry no content and are discarded.
var blockContainers = map[string]struct{}{
	"#root": {}, "html": {}, "head": {}, "body": {},
	"div": {}, "section": {}, "article": {}, "aside": {}, "main": {},
	"header": {}, "footer": {}, "nav": {},
	"table": {}, "thead": {}, "tbody": {}, "tfoot": {}, "tr": {},
	"ul": {}, "ol": {}, "dl": {},
	"blockquote": {}, "figure": {}, "form": {}, "select": {},
}

// Parser converts raw markup into the domain node tree.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse turns raw markup text into a tree rooted at a synthetic element.
// It fails with an EDECODE error only when the input is not decodable as
// text; malformed tag structure degrades to a best-effort tree.
func (p *Parser) Parse(text string) (*htmlgrid.ParseResult, error) {
	if !utf8.ValidString(text) {
		return nil, htmlgrid.Errorf(htmlgrid.EDECODE, "input is not valid UTF-8 text")
	}

	doc, err := xhtml.Parse(strings.NewReader(text))
	if err != nil {
		// The tokenizer never fails on malformed markup; an error here
		// means the input could not be read as a document at all.
		return nil, htmlgrid.Errorf(htmlgrid.EDECODE, "decode document: %v", err)
	}

	root := &htmlgrid.Node{Type: htmlgrid.ElementNode, Tag: "#root"}
	warnings := convertChildren(doc, root, 0)

	return &htmlgrid.ParseResult{Root: root, Warnings: warnings}, nil
}

// convertChildren copies src's children into dst, normalizing text and
// dropping non-content nodes. Depth is bounded by maxDepth.
func convertChildren(src *xhtml.Node, dst *htmlgrid.Node, depth int) []string {
	type frame struct {
		src   *xhtml.Node
		dst   *htmlgrid.Node
		depth int
	}

	var warnings []string
	truncated := false

	stack := []frame{}
	for c := lastChild(src); c != nil; c = c.PrevSibling {
		stack = append(stack, frame{src: c, dst: dst, depth: depth})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.src.Type {
		case xhtml.TextNode:
			if text, ok := normalizeText(f.src.Data, f.dst.Tag); ok {
				f.dst.Children = append(f.dst.Children, &htmlgrid.Node{
					Type: htmlgrid.TextNode,
					Text: text,
				})
			}

		case xhtml.ElementNode:
			if f.depth >= maxDepth {
				if !truncated {
					warnings = append(warnings, "document nesting exceeds depth bound; subtree truncated")
					truncated = true
				}
				continue
			}

			el := &htmlgrid.Node{
				Type: htmlgrid.ElementNode,
				Tag:  strings.ToLower(f.src.Data),
			}
			if len(f.src.Attr) > 0 {
				el.Attr = make(map[string]string, len(f.src.Attr))
				for _, a := range f.src.Attr {
					el.Attr[strings.ToLower(a.Key)] = a.Val
				}
			}
			f.dst.Children = append(f.dst.Children, el)

			for c := lastChild(f.src); c != nil; c = c.PrevSibling {
				stack = append(stack, frame{src: c, dst: el, depth: f.depth + 1})
			}

		default:
			// Comments, doctypes, and processing instructions carry no
			// document content.
		}
	}

	return warnings
}

func lastChild(n *xhtml.Node) *xhtml.Node {
	return n.LastChild
}

// normalizeText collapses whitespace runs to single spaces. It reports
// false for text that is whitespace-only inside a block container, which
// mirrors how such nodes render.
func normalizeText(text, parentTag string) (string, bool) {
	collapsed := CollapseWhitespace(text)
	if strings.TrimSpace(collapsed) == "" {
		if _, block := blockContainers[parentTag]; block {
			return "", false
		}
		if collapsed == "" {
			return "", false
		}
	}
	return collapsed, true
}

// CollapseWhitespace replaces every run of Unicode whitespace with a
// single space.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
