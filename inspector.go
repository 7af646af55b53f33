package htmlgrid

// DocumentStats summarizes a document's structure without converting it.
type DocumentStats struct {
	Title      string
	Tables     int
	Headings   int
	Paragraphs int
	ListItems  int
}

// Inspector produces pre-flight statistics for a raw document, used to
// preview what a conversion would extract.
type Inspector interface {
	Inspect(html string) (*DocumentStats, error)
}
