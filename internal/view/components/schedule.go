package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/ui/lazy"
	"github.com/nfrund/zawiya/internal/ui/schedule"
)

// ScheduleCard renders one class with its QR code. qr is nil when the student has
// no code for the class.
func ScheduleCard(class domain.ClassSession, card schedule.Card, qr *lazy.Image) g.Node {
	var qrNode g.Node
	if qr != nil {
		qrNode = Div(Class("qr-code"), Image(qr, "QR Code "+class.Title, "qr-image"))
	}
	return Div(ID("class-"+strconv.Itoa(class.ID)),
		c.Classes{"schedule-card": true, "today": card.Today},
		Div(Class("schedule-card-header"),
			Span(Class("schedule-day-badge"), g.Text(class.Day)),
			g.If(card.Today, Span(Class("today-badge"), I(Class("fas fa-star")), g.Text(" "+schedule.TodayLabel))),
		),
		H3(g.Text(class.Title)),
		Ul(Class("schedule-meta"),
			Li(I(Class("fas fa-clock")), g.Text(" "+class.Time)),
			Li(I(Class("fas fa-user")), g.Text(" "+class.Teacher)),
			Li(I(Class("fas fa-layer-group")), g.Text(" "+class.Level)),
		),
		P(Class("schedule-description"), g.Text(class.Description)),
		A(Href(class.MeetLink), Target("_blank"), Rel("noopener"), Class("btn btn-primary"),
			I(Class("fas fa-video")), g.Text(" الانضمام للحصة"),
		),
		qrNode,
	)
}
