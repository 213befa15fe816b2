package pages

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/ui/lazy"
	"github.com/nfrund/zawiya/internal/ui/schedule"
	"github.com/nfrund/zawiya/internal/view/components"
)

// ScheduleProps is the content of a student's schedule page.
type ScheduleProps struct {
	Student      domain.Student
	ProgramLabel string
	Classes      []domain.ClassSession
	// QRCodes maps a class id to the QR file name of this student.
	QRCodes    map[int]string
	Now        time.Time
	LazyImages bool
	// PageURL is the absolute address of this page, for sharing.
	PageURL string
}

// QRCodeURL is where a generated QR file is served.
func QRCodeURL(name string) string { return "/qrcodes/" + name }

// Schedule renders the schedule page body. Cards for today's weekday are highlighted.
func Schedule(p ScheduleProps) g.Node {
	cards := make([]schedule.Card, len(p.Classes))
	images := make([]*lazy.Image, 0, len(p.Classes))
	qrByClass := make(map[int]*lazy.Image, len(p.Classes))
	for i, cl := range p.Classes {
		cards[i] = schedule.Card{ClassID: cl.ID, DayBadge: cl.Day}
		if name, ok := p.QRCodes[cl.ID]; ok {
			img := &lazy.Image{ID: "qr-" + name, DataSrc: QRCodeURL(name)}
			images = append(images, img)
			qrByClass[cl.ID] = img
		}
	}
	schedule.Highlight(cards, p.Now)
	components.LazyImages(p.LazyImages, images...)

	st := p.Student
	return Section(Class("schedule-section"),
		Div(Class("container"),
			Div(Class("student-info-card"),
				H2(g.Text("مرحباً "+st.FullName())),
				P(g.Text("معرف الطالب: "), Strong(ID("student-id"), g.Text(st.StudentID))),
				P(g.Text("البرنامج: "+p.ProgramLabel)),
				Div(Class("student-actions"),
					components.CopyButton("نسخ المعرف", st.StudentID),
					components.ShareButton("جدول الحصص", "جدول حصصي في المدرسة الإلكترونية", p.PageURL),
					Button(Type("button"), Class("btn btn-outline"), g.Attr("onclick", "window.print()"),
						I(Class("fas fa-print")), g.Text(" طباعة الجدول")),
				),
			),
			H2(Class("section-title"), g.Text("جدول الحصص الأسبوعي")),
			Div(Class("schedule-grid"),
				g.Map(indexes(len(p.Classes)), func(i int) g.Node {
					cl := p.Classes[i]
					return components.ScheduleCard(cl, cards[i], qrByClass[cl.ID])
				}),
			),
		),
	)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
