package build

import (
	"fmt"
	"strings"
)

// maxSheetName is the length limit the container format imposes on
// worksheet names.
const maxSheetName = 31

// SanitizeSheetName strips the characters the container format disallows
// and truncates the result to the 31-character limit. An empty result
// falls back to "Sheet".
func SanitizeSheetName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			continue
		}
		b.WriteRune(r)
	}

	s := strings.TrimSpace(b.String())
	if s == "" {
		return "Sheet"
	}
	return truncate(s, maxSheetName)
}

// SheetNamer hands out workbook-unique sheet names. Colliding names get
// _2, _3, ... suffixes in order of first occurrence.
type SheetNamer struct {
	used map[string]bool
}

// NewSheetNamer creates an empty SheetNamer.
func NewSheetNamer() *SheetNamer {
	return &SheetNamer{used: map[string]bool{}}
}

// Claim sanitizes name and returns a variant not handed out before.
func (n *SheetNamer) Claim(name string) string {
	base := SanitizeSheetName(name)
	if !n.used[base] {
		n.used[base] = true
		return base
	}

	for i := 2; ; i++ {
		suffix := fmt.Sprintf("_%d", i)
		candidate := truncate(base, maxSheetName-len(suffix)) + suffix
		if !n.used[candidate] {
			n.used[candidate] = true
			return candidate
		}
	}
}

// truncate cuts s to at most n runes without splitting one.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
