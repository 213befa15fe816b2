package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/contact"
	"github.com/nfrund/zawiya/internal/validate"
	"github.com/nfrund/zawiya/internal/view/components"
)

// Contact endpoints.
const (
	ContactSubmitPath = "/contact"
	ContactFormPath   = "/contact/form"
)

// ContactProps is the content of the contact page.
type ContactProps struct {
	Submitter *contact.Submitter
	Subjects  []string
}

// Contact renders the contact page body.
func Contact(p ContactProps) g.Node {
	return Section(Class("contact-section"),
		Div(Class("container"),
			Div(Class("section-header"),
				H2(Class("section-title"), g.Text("اتصل بنا")),
				P(Class("section-subtitle"), g.Text("نسعد بتواصلكم واستفساراتكم")),
			),
			Div(Class("contact-grid"),
				contactInfo(),
				ContactPanel(p),
			),
		),
	)
}

// ContactPanel is the swappable part: the form while editing, the success panel
// after a message was accepted. The success panel fetches a fresh form once
// contact.SuccessDuration has passed.
func ContactPanel(p ContactProps) g.Node {
	s := p.Submitter
	if !s.FormVisible() {
		return Div(ID("contact-panel"), Class("success-message"),
			hx.Get(ContactFormPath),
			hx.Trigger("load delay:"+strconv.Itoa(int(contact.SuccessDuration.Seconds()))+"s"),
			hx.Swap("outerHTML"),
			I(Class("fas fa-check-circle")),
			H3(g.Text("تم إرسال رسالتك بنجاح")),
			P(g.Text("سنتواصل معك في أقرب وقت ممكن")),
		)
	}

	values := s.Values()
	errs := s.Errors()
	return Div(ID("contact-panel"),
		Form(ID("contactForm"), Class("contact-form"),
			hx.Post(ContactSubmitPath),
			hx.Target("#contact-panel"),
			hx.Swap("outerHTML"),
			g.Attr("hx-disabled-elt", "find button[type='submit']"),
			g.Map(contact.Fields(), func(f validate.Field) g.Node {
				props := components.FieldProps{Field: f, Value: values[f.Name], Error: errs[f.Name]}
				if f.Name == contact.FieldSubject {
					props.Choices = components.Choices(p.Subjects)
				}
				return components.FormField(props)
			}),
			Button(Type("submit"), Class("btn btn-primary btn-block"),
				g.If(s.ButtonDisabled(), Disabled()),
				Span(Class("btn-label"), I(Class("fas fa-paper-plane")), g.Text(" "+s.ButtonLabel())),
				Span(Class("btn-sending"), I(Class("fas fa-spinner fa-spin")), g.Text(" "+contact.LabelSending)),
			),
		),
	)
}

func contactInfo() g.Node {
	item := func(icon, title, value string) g.Node {
		return Div(Class("contact-info-item"),
			I(Class("fas "+icon)),
			Div(H4(g.Text(title)), P(g.Text(value))),
		)
	}
	return Div(Class("contact-info"),
		item("fa-map-marker-alt", "العنوان", "الزاوية التجانية، تماسين، ورقلة، الجزائر"),
		item("fa-phone", "الهاتف", "+213 29 00 00 00"),
		item("fa-envelope", "البريد الإلكتروني", "contact@zawiya-tijania.dz"),
		item("fa-clock", "أوقات العمل", "السبت - الخميس: 08:00 - 17:00"),
	)
}
