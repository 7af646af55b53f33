package htmlgrid

import "unicode/utf8"

// Role identifies the semantic role of a cell or row for styling.
type Role int

// Styling roles. Heading roles are contiguous so HeadingRole can map a
// rank to its role arithmetically.
const (
	RoleBodyCell Role = iota
	RoleHeaderRow
	RoleParagraph
	RoleListItem
	RoleHeading1
	RoleHeading2
	RoleHeading3
	RoleHeading4
	RoleHeading5
	RoleHeading6
)

// HeadingRole returns the styling role for a heading of the given rank.
// Ranks outside 1-6 are clamped.
func HeadingRole(level int) Role {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return RoleHeading1 + Role(level-1)
}

// StyleDescriptor is an immutable styling value shared by reference
// among all cells with the same role.
type StyleDescriptor struct {
	Bold     bool
	FontSize int

	// FontColor and FillColor are RRGGBB hex strings; empty means the
	// format default.
	FontColor string
	FillColor string
}

// Column width constants: hints are clamped to [minColumnWidth,
// maxColumnWidth] after padding.
const (
	minColumnWidth = 4
	maxColumnWidth = 50
	columnPadding  = 2
)

// ContentColumnWidth is the fixed width hint for the single text column
// of the Content sheet.
const ContentColumnWidth = 100

var styles = map[Role]*StyleDescriptor{
	RoleBodyCell:  {FontSize: 11},
	RoleHeaderRow: {Bold: true, FontSize: 11, FontColor: "FFFFFF", FillColor: "366092"},
	RoleParagraph: {FontSize: 11},
	RoleListItem:  {FontSize: 11},
	RoleHeading1:  {Bold: true, FontSize: 15, FontColor: "2F4F4F"},
	RoleHeading2:  {Bold: true, FontSize: 14, FontColor: "2F4F4F"},
	RoleHeading3:  {Bold: true, FontSize: 13, FontColor: "2F4F4F"},
	RoleHeading4:  {Bold: true, FontSize: 12, FontColor: "2F4F4F"},
	RoleHeading5:  {Bold: true, FontSize: 11, FontColor: "2F4F4F"},
	RoleHeading6:  {Bold: true, FontSize: 10, FontColor: "2F4F4F"},
}

// StyleFor returns the fixed style descriptor for a role. The returned
// pointer is shared; callers must not mutate it.
func StyleFor(role Role) *StyleDescriptor {
	if s, ok := styles[role]; ok {
		return s
	}
	return styles[RoleBodyCell]
}

// ColumnWidths computes a width hint for each of a table's columns from
// the widest cell text placed at that column's origin, padded and
// clamped. Spanned-over columns without an origin cell get the minimum.
func ColumnWidths(t *TableModel) []int {
	widths := make([]int, t.ColumnCount)
	for i := range widths {
		widths[i] = minColumnWidth
	}
	for _, row := range t.Rows {
		for _, cell := range row {
			w := utf8.RuneCountInString(cell.Text) + columnPadding
			if w < minColumnWidth {
				w = minColumnWidth
			}
			if w > maxColumnWidth {
				w = maxColumnWidth
			}
			if cell.OriginCol < len(widths) && w > widths[cell.OriginCol] {
				widths[cell.OriginCol] = w
			}
		}
	}
	return widths
}
