// Package search filters page cards by a free-text query.
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Item is a searchable card: program, teacher or FAQ entry.
type Item struct {
	ID      string
	Text    string
	Visible bool
}

var lower = cases.Lower(language.Und)

// Normalize lower-cases, NFC-normalizes and trims s.
func Normalize(s string) string {
	return strings.TrimSpace(lower.String(norm.NFC.String(s)))
}

// Matches reports whether text should stay visible for query. An empty query
// matches everything.
func Matches(query, text string) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	return strings.Contains(lower.String(norm.NFC.String(text)), q)
}

// Filter sets Visible on every item for query and returns the items.
func Filter(query string, items []Item) []Item {
	for i := range items {
		items[i].Visible = Matches(query, items[i].Text)
	}
	return items
}

// VisibleIDs returns the ids of the visible items.
func VisibleIDs(items []Item) []string {
	var ids []string
	for _, it := range items {
		if it.Visible {
			ids = append(ids, it.ID)
		}
	}
	return ids
}
