package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/ui/anim"
)

// Counter is a statistic that the page script animates from 0 to target once it
// is half visible. data-final is the text shown when the animation ends.
func Counter(id string, target int, label, icon string) g.Node {
	return Div(Class("stat-item"),
		I(Class(icon)),
		Span(ID(id), Class("stat-number"), Data("target", strconv.Itoa(target)),
			Data("final", anim.FinalText(target)), g.Text("0")),
		P(Class("stat-label"), g.Text(label)),
	)
}
