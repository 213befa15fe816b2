package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/ui/accordion"
)

// FAQPath toggles an FAQ item. The request carries the open item and the clicked one.
const FAQPath = "/ui/faq"

// FAQItemID is the element id of item i, also used by the search filter.
func FAQItemID(i int) string { return "faq-" + strconv.Itoa(i) }

// FAQList renders the accordion. Every question posts the currently open item so
// the server needs no state to apply the toggle.
func FAQList(items []domain.FAQ, acc *accordion.Accordion) g.Node {
	return Div(Class("faq-list"), ID("faq-list"),
		g.Map(indexes(len(items)), func(i int) g.Node {
			item := items[i]
			return Div(Searchable(FAQItemID(i)),
				c.Classes{"faq-item": true, "active": acc.IsOpen(i)},
				Button(Type("button"), Class("faq-question"),
					hx.Post(FAQPath),
					hx.Vals(fmt.Sprintf(`{"open":%d,"item":%d}`, acc.Open(), i)),
					hx.Target("#faq-list"),
					hx.Swap("outerHTML"),
					Span(g.Text(item.Question)),
					I(Class("fas fa-chevron-down")),
				),
				Div(Class("faq-answer"), P(g.Text(item.Answer))),
			)
		}),
	)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
