// Package extract walks parsed document trees and produces the two
// extractor outputs: tables resolved into dense grids, and non-table
// block content flattened into ordered records.
//
// Both extractors traverse with explicit stacks bounded by maxDepth, so
// pathological nesting degrades to a truncated subtree with a warning
// instead of unbounded recursion.
package extract

import (
	"strings"
	"unicode"

	"github.com/jswierad/htmlgrid"
)

// maxDepth bounds every tree walk in this package.
const maxDepth = 512

// collapse replaces whitespace runs with single spaces and trims the
// result. Parsed text nodes are already collapsed individually; this
// re-collapses the seams left by concatenation.
func collapse(s string) string {
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
	return strings.TrimSpace(b.String())
}

// flattenText concatenates the text of a subtree in document order,
// skipping any subtree whose tag is in skip.
func flattenText(root *htmlgrid.Node, skip map[string]struct{}) string {
	var parts []string

	stack := []*htmlgrid.Node{}
	for i := len(root.Children) - 1; i >= 0; i-- {
		stack = append(stack, root.Children[i])
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Type == htmlgrid.TextNode {
			parts = append(parts, n.Text)
			continue
		}
		if _, skipped := skip[n.Tag]; skipped {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}

	return collapse(strings.Join(parts, " "))
}
