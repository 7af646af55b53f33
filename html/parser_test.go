package html_test

import (
	"strings"
	"testing"

	"github.com/jswierad/htmlgrid"
	"github.com/jswierad/htmlgrid/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findAll returns every element with the given tag, in document order.
func findAll(root *htmlgrid.Node, tag string) []*htmlgrid.Node {
	var found []*htmlgrid.Node
	stack := []*htmlgrid.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsElement(tag) {
			found = append(found, n)
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return found
}

func textOf(n *htmlgrid.Node) string {
	var parts []string
	stack := []*htmlgrid.Node{n}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.Type == htmlgrid.TextNode {
			parts = append(parts, c.Text)
		}
		for i := len(c.Children) - 1; i >= 0; i-- {
			stack = append(stack, c.Children[i])
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("parses well-formed document", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		result, err := p.Parse("<html><body><p>Hello</p></body></html>")
		require.NoError(t, err)
		require.NotNil(t, result.Root)
		assert.Empty(t, result.Warnings)

		ps := findAll(result.Root, "p")
		require.Len(t, ps, 1)
		assert.Equal(t, "Hello", textOf(ps[0]))
	})

	t.Run("recovers from unclosed tags", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		result, err := p.Parse("<p>first<p>second")
		require.NoError(t, err)

		ps := findAll(result.Root, "p")
		require.Len(t, ps, 2)
		assert.Equal(t, "first", textOf(ps[0]))
		assert.Equal(t, "second", textOf(ps[1]))
	})

	t.Run("decodes character references", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		result, err := p.Parse("<p>a &amp; b &lt;c&gt;</p>")
		require.NoError(t, err)

		ps := findAll(result.Root, "p")
		require.Len(t, ps, 1)
		assert.Equal(t, "a & b <c>", textOf(ps[0]))
	})

	t.Run("collapses whitespace runs in text", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		result, err := p.Parse("<p>a\n\t  b   c</p>")
		require.NoError(t, err)

		ps := findAll(result.Root, "p")
		require.Len(t, ps, 1)
		assert.Equal(t, "a b c", textOf(ps[0]))
	})

	t.Run("drops whitespace-only text between block elements", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		result, err := p.Parse("<div>\n  <p>one</p>\n  <p>two</p>\n</div>")
		require.NoError(t, err)

		divs := findAll(result.Root, "div")
		require.Len(t, divs, 1)
		for _, c := range divs[0].Children {
			assert.Equal(t, htmlgrid.ElementNode, c.Type, "block container should hold only elements")
		}
	})

	t.Run("keeps unknown tags with children intact", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		result, err := p.Parse("<body><custom-widget><p>inside</p></custom-widget></body>")
		require.NoError(t, err)

		widgets := findAll(result.Root, "custom-widget")
		require.Len(t, widgets, 1)
		assert.Len(t, findAll(widgets[0], "p"), 1)
	})

	t.Run("drops comments", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		result, err := p.Parse("<p><!-- not content -->text</p>")
		require.NoError(t, err)

		ps := findAll(result.Root, "p")
		require.Len(t, ps, 1)
		assert.Equal(t, "text", textOf(ps[0]))
	})

	t.Run("lowercases tag and attribute names", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		result, err := p.Parse(`<TABLE><TR><TD COLSPAN="2">x</TD></TR></TABLE>`)
		require.NoError(t, err)

		tds := findAll(result.Root, "td")
		require.Len(t, tds, 1)
		assert.Equal(t, "2", tds[0].AttrOr("colspan", ""))
	})

	t.Run("rejects invalid UTF-8 with decode error", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		_, err := p.Parse("<p>\xff\xfe</p>")
		require.Error(t, err)
		assert.Equal(t, htmlgrid.EDECODE, htmlgrid.ErrorCode(err))
	})

	t.Run("warns and truncates on pathological nesting", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := 0; i < 600; i++ {
			b.WriteString("<span>")
		}
		b.WriteString("deep")

		p := html.NewParser()
		result, err := p.Parse(b.String())
		require.NoError(t, err)
		assert.NotEmpty(t, result.Warnings)
	})

	t.Run("empty input yields empty tree", func(t *testing.T) {
		t.Parallel()

		p := html.NewParser()
		result, err := p.Parse("")
		require.NoError(t, err)
		require.NotNil(t, result.Root)
		assert.Empty(t, findAll(result.Root, "p"))
	})
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", html.CollapseWhitespace("a\n b\t\tc"))
	assert.Equal(t, " ", html.CollapseWhitespace(" \n\t "))
	assert.Equal(t, "", html.CollapseWhitespace(""))
}
