// Package goquery provides document inspection built on
// github.com/PuerkitoBio/goquery: quick pre-flight statistics about what
// a conversion would extract, without running the pipeline.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jswierad/htmlgrid"
)

// Ensure Inspector implements htmlgrid.Inspector at compile time.
var _ htmlgrid.Inspector = (*Inspector)(nil)

// Inspector counts a document's convertible structure.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses the document and returns its structure counts. The
// table count includes nested tables, matching what extraction would
// produce.
func (i *Inspector) Inspect(html string) (*htmlgrid.DocumentStats, error) {
	if strings.TrimSpace(html) == "" {
		return nil, htmlgrid.Errorf(htmlgrid.EINVALID, "empty document")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, htmlgrid.Errorf(htmlgrid.EINVALID, "parse document: %v", err)
	}

	return &htmlgrid.DocumentStats{
		Title:      strings.TrimSpace(doc.Find("title").First().Text()),
		Tables:     doc.Find("table").Length(),
		Headings:   doc.Find("h1, h2, h3, h4, h5, h6").Length(),
		Paragraphs: doc.Find("p").Length(),
		ListItems:  doc.Find("li").Length(),
	}, nil
}
