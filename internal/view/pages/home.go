// Package pages renders the pages of the site and the fragments htmx swaps into them.
package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/ui/accordion"
	"github.com/nfrund/zawiya/internal/ui/search"
	"github.com/nfrund/zawiya/internal/view/components"
)

// HomeSearchPage names the home page in search requests.
const HomeSearchPage = "home"

// NewsletterPath accepts newsletter subscriptions.
const NewsletterPath = "/newsletter"

// HomeProps is the content of the home page.
type HomeProps struct {
	Programs   []domain.Program
	Statistics domain.Statistics
	Teachers   []domain.Member
	FAQ        []domain.FAQ
	Accordion  *accordion.Accordion
	Newsletter NewsletterProps
}

// NewsletterProps is the state of the newsletter form.
type NewsletterProps struct {
	Email string
	Error string
}

// ProgramCardID is the element id of a program card, used by the search filter.
func ProgramCardID(id string) string { return "program-" + id }

func TeacherCardID(i int) string { return "teacher-" + strconv.Itoa(i) }

// HomeSearchItems lists the searchable cards of the home page.
func HomeSearchItems(programs []domain.Program, teachers []domain.Member, faq []domain.FAQ) []search.Item {
	items := make([]search.Item, 0, len(programs)+len(teachers)+len(faq))
	for _, p := range programs {
		items = append(items, search.Item{ID: ProgramCardID(p.ID), Text: p.Name + " " + p.Description + " " + p.AgeRange})
	}
	for i, t := range teachers {
		items = append(items, search.Item{ID: TeacherCardID(i), Text: t.Name + " " + t.Position + " " + t.Specialization})
	}
	for i, f := range faq {
		items = append(items, search.Item{ID: components.FAQItemID(i), Text: f.Question + " " + f.Answer})
	}
	return items
}

// Home renders the body of the home page.
func Home(p HomeProps) g.Node {
	acc := p.Accordion
	if acc == nil {
		acc = accordion.New(len(p.FAQ))
	}
	return g.Group{
		hero(),
		Section(ID("search"), Class("search-section"),
			Div(Class("container"), components.SearchBox(HomeSearchPage)),
		),
		Section(ID("programs"), Class("programs-section"),
			Div(Class("container"),
				sectionHeader("برامجنا التعليمية", "اختر البرنامج المناسب لك"),
				Div(Class("programs-grid"),
					g.Map(p.Programs, programCard),
				),
			),
		),
		Section(ID("statistics"), Class("stats-section"),
			Div(Class("container stats-grid"),
				components.Counter("stat-students", p.Statistics.Students, "طالب وطالبة", "fas fa-user-graduate"),
				components.Counter("stat-graduates", p.Statistics.Graduates, "حافظ وحافظة", "fas fa-award"),
				components.Counter("stat-teachers", p.Statistics.Teachers, "معلم ومعلمة", "fas fa-chalkboard-teacher"),
				components.Counter("stat-programs", p.Statistics.Programs, "برامج تعليمية", "fas fa-book-open"),
				components.Counter("stat-years", p.Statistics.Years, "سنة من العطاء", "fas fa-calendar-alt"),
			),
		),
		g.If(len(p.Teachers) > 0, Section(ID("teachers"), Class("teachers-section"),
			Div(Class("container"),
				sectionHeader("معلمونا", "نخبة من المشايخ والمعلمين"),
				Div(Class("teachers-grid"),
					g.Map(indexed(p.Teachers), func(t indexedMember) g.Node {
						return Div(components.Searchable(TeacherCardID(t.i)), Class("teacher-card"),
							H3(g.Text(t.m.Name)),
							P(Class("teacher-position"), g.Text(t.m.Position)),
							g.If(t.m.Specialization != "", P(Class("teacher-specialization"), g.Text(t.m.Specialization))),
						)
					}),
				),
			),
		)),
		Section(ID("faq"), Class("faq-section"),
			Div(Class("container"),
				sectionHeader("الأسئلة الشائعة", "إجابات على أكثر الأسئلة تداولاً"),
				components.FAQList(p.FAQ, acc),
			),
		),
		Section(ID("newsletter"), Class("newsletter-section"),
			Div(Class("container"),
				sectionHeader("النشرة البريدية", "اشترك ليصلك جديد المدرسة"),
				NewsletterForm(p.Newsletter),
			),
		),
	}
}

// NewsletterForm is replaced in place after every submission.
func NewsletterForm(p NewsletterProps) g.Node {
	return Form(ID("newsletterForm"), Class("newsletter-form"), Method("post"), Action(NewsletterPath),
		hx.Post(NewsletterPath),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		Div(c.Classes{"form-group": true, "has-error": p.Error != ""},
			Input(Type("email"), Name("email"), Placeholder("بريدك الإلكتروني"), Value(p.Email),
				c.Classes{"form-control": true, "error": p.Error != ""}),
			Span(Class("error-message"), g.Text(p.Error)),
		),
		Button(Type("submit"), Class("btn btn-primary"), g.Text("اشتراك")),
	)
}

func hero() g.Node {
	return Section(ID("home"), Class("hero"),
		Div(Class("hero-content"),
			H1(g.Text("المدرسة الإلكترونية للزاوية التجانية")),
			P(g.Text("تحفيظ القرآن الكريم وتعليم العلوم الشرعية عن بعد")),
			Div(Class("hero-buttons"),
				A(Href("/register"), Class("btn btn-primary"), g.Text("سجل الآن")),
				A(Href("#programs"), Class("btn btn-outline"), g.Text("اكتشف برامجنا")),
			),
		),
	)
}

func programCard(p domain.Program) g.Node {
	return Div(components.Searchable(ProgramCardID(p.ID)), Class("program-card"),
		Div(Class("program-icon"), I(Class("fas "+p.Icon))),
		H3(g.Text(p.Name)),
		P(Class("program-description"), g.Text(p.Description)),
		Ul(Class("program-meta"),
			Li(I(Class("fas fa-users")), g.Text(" "+p.AgeRange)),
			Li(I(Class("fas fa-hourglass-half")), g.Text(" "+p.Duration)),
		),
		A(Href("/register"), Class("btn btn-outline"), g.Text("سجل في البرنامج")),
	)
}

func sectionHeader(title, subtitle string) g.Node {
	return Div(Class("section-header"),
		H2(Class("section-title"), g.Text(title)),
		P(Class("section-subtitle"), g.Text(subtitle)),
	)
}

type indexedMember struct {
	i int
	m domain.Member
}

func indexed(members []domain.Member) []indexedMember {
	out := make([]indexedMember, len(members))
	for i, m := range members {
		out[i] = indexedMember{i: i, m: m}
	}
	return out
}
