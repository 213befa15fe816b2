package components

import (
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/ui/search"
)

// SearchPath filters the searchable cards of a page.
const SearchPath = "/ui/search"

const searchStyleID = "search-filter"

// SearchBox sends the query as the visitor types. The response replaces the
// filter stylesheet, which hides the cards that do not match.
func SearchBox(page string) g.Node {
	return Div(Class("search-box"),
		I(Class("fas fa-search")),
		Input(Type("search"), ID("searchInput"), Name("q"), Placeholder("ابحث عن برنامج، معلم أو سؤال..."),
			hx.Get(SearchPath),
			hx.Trigger("input changed delay:200ms, search"),
			hx.Vals(`{"page":"`+page+`"}`),
			hx.Swap("none"),
		),
		SearchFilter(nil),
	)
}

// Searchable marks a card whose visibility follows the search query. id must be
// stable across requests.
func Searchable(id string, children ...g.Node) g.Group {
	return g.Group{ID(id), Data("searchable", ""), g.Group(children)}
}

// SearchFilter renders the stylesheet hiding every item that is not visible.
func SearchFilter(items []search.Item) g.Node {
	return StyleEl(ID(searchStyleID), g.Raw(filterRules(items)))
}

// SearchFilterOOB is SearchFilter as an out-of-band swap.
func SearchFilterOOB(items []search.Item) g.Node {
	return StyleEl(ID(searchStyleID), hx.SwapOOB("true"), g.Raw(filterRules(items)))
}

func filterRules(items []search.Item) string {
	var rules strings.Builder
	for _, it := range items {
		if !it.Visible {
			rules.WriteString("#" + it.ID + "{display:none}")
		}
	}
	return rules.String()
}
