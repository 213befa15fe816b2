package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_ArabicQuery(t *testing.T) {
	items := []Item{
		{ID: "children", Text: "برنامج حفظ القرآن للأطفال"},
		{ID: "tijani", Text: "المجالس التجانية"},
	}

	Filter("قرآن", items)

	assert.Equal(t, []string{"children"}, VisibleIDs(items))
}

func TestFilter_EmptyQueryShowsAll(t *testing.T) {
	items := []Item{{ID: "a", Text: "x"}, {ID: "b", Text: "y"}}
	Filter("   ", items)
	assert.Equal(t, []string{"a", "b"}, VisibleIDs(items))
}

func TestFilter_CaseInsensitiveAndTrimmed(t *testing.T) {
	items := []Item{{ID: "meet", Text: "Google Meet link"}, {ID: "other", Text: "zoom"}}
	Filter("  MEET ", items)
	assert.Equal(t, []string{"meet"}, VisibleIDs(items))
}
