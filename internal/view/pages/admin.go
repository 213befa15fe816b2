package pages

import (
	"sort"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/service"
)

// Admin endpoints.
const (
	AdminLoginPath          = "/admin/login"
	AdminLogoutPath         = "/admin/logout"
	AdminDashboardPath      = "/admin/dashboard"
	AdminUpdateSchedulePath = "/admin/update-schedule"
	AdminExportPath         = "/admin/export-students"
	AdminEmailsPath         = "/admin/get-emails"
)

// AdminLogin renders the login form. The form posts to the same path; failures
// come back as toasts.
func AdminLogin() g.Node {
	return Section(Class("admin-login-section"),
		Div(Class("container admin-login-card"),
			H2(I(Class("fas fa-user-shield")), g.Text(" لوحة التحكم")),
			Form(ID("adminLoginForm"), Class("admin-login-form"),
				hx.Post(AdminLoginPath),
				hx.Swap("none"),
				Div(Class("form-group"),
					Label(For("username"), g.Text("اسم المستخدم")),
					Input(Type("text"), ID("username"), Name("username"), Class("form-control"), Required(), AutoComplete("username")),
				),
				Div(Class("form-group"),
					Label(For("password"), g.Text("كلمة المرور")),
					Input(Type("password"), ID("password"), Name("password"), Class("form-control"), Required(), AutoComplete("current-password")),
				),
				Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text("تسجيل الدخول")),
			),
		),
	)
}

// DashboardProps is the content of the admin dashboard.
type DashboardProps struct {
	Stats    domain.RegistrationStats
	Students []domain.Student
	Schedule []domain.ClassSession
	Programs []domain.Program
}

// Dashboard renders the admin dashboard body.
func Dashboard(p DashboardProps) g.Node {
	labels := make(map[string]string, len(p.Programs))
	for _, prog := range p.Programs {
		labels[prog.ID] = prog.Name
	}
	label := func(id string) string {
		if l, ok := labels[id]; ok {
			return l
		}
		return id
	}

	return Section(Class("admin-dashboard"),
		Div(Class("container"),
			Div(Class("admin-header"),
				H2(g.Text("لوحة التحكم")),
				Div(Class("admin-actions"),
					A(Href(AdminExportPath), Class("btn btn-primary"), I(Class("fas fa-file-excel")), g.Text(" تصدير الطلاب")),
					A(Href(AdminLogoutPath), Class("btn btn-outline"), I(Class("fas fa-sign-out-alt")), g.Text(" تسجيل الخروج")),
				),
			),
			Div(Class("admin-stats"),
				statCard("fa-users", "إجمالي الطلاب", p.Stats.TotalStudents),
				statCard("fa-user-check", "الطلاب النشطون", p.Stats.ActiveStudents),
				statCard("fa-user-plus", "تسجيلات آخر 7 أيام", p.Stats.RecentRegistrations),
			),
			Div(Class("admin-panel"),
				H3(g.Text("توزيع البرامج")),
				Table(Class("admin-table"),
					THead(Tr(Th(g.Text("البرنامج")), Th(g.Text("عدد الطلاب")))),
					TBody(g.Map(sortedKeys(p.Stats.ProgramsDistribution), func(id string) g.Node {
						return Tr(Td(g.Text(label(id))), Td(g.Text(strconv.Itoa(p.Stats.ProgramsDistribution[id]))))
					})),
				),
			),
			Div(Class("admin-panel"),
				H3(g.Text("روابط الحصص")),
				Table(Class("admin-table"),
					THead(Tr(Th(g.Text("الحصة")), Th(g.Text("اليوم")), Th(g.Text("الرابط")))),
					TBody(g.Map(p.Schedule, scheduleRow)),
				),
			),
			Div(Class("admin-panel"),
				H3(g.Text("البريد الإلكتروني للطلاب")),
				Form(ID("emailsForm"), Class("inline-form"),
					hx.Post(AdminEmailsPath),
					hx.Target("#email-list"),
					hx.Swap("outerHTML"),
					Select(Name("program"), Class("form-control"),
						Option(Value(service.AllPrograms), g.Text("جميع البرامج")),
						g.Map(p.Programs, func(prog domain.Program) g.Node {
							return Option(Value(prog.ID), g.Text(prog.Name))
						}),
					),
					Button(Type("submit"), Class("btn btn-primary"), g.Text("عرض")),
				),
				EmailList(nil),
			),
			Div(Class("admin-panel"),
				H3(g.Text("الطلاب المسجلون")),
				Table(Class("admin-table"),
					THead(Tr(
						Th(g.Text("رقم")), Th(g.Text("المعرف")), Th(g.Text("الاسم")), Th(g.Text("العمر")),
						Th(g.Text("الولاية")), Th(g.Text("الهاتف")), Th(g.Text("البريد")), Th(g.Text("البرنامج")),
						Th(g.Text("تاريخ التسجيل")), Th(g.Text("الحالة")),
					)),
					TBody(g.Map(p.Students, func(s domain.Student) g.Node {
						return Tr(
							Td(g.Text(strconv.Itoa(s.Number))),
							Td(A(Href("/schedule/"+s.StudentID), g.Text(s.StudentID))),
							Td(g.Text(s.FullName())),
							Td(g.Text(s.Age)),
							Td(g.Text(s.State)),
							Td(g.Text(s.Phone)),
							Td(g.Text(s.Email)),
							Td(g.Text(label(s.Program))),
							Td(g.Text(s.RegisteredAt.Format("2006-01-02 15:04"))),
							Td(g.Text(s.Status)),
						)
					})),
				),
			),
		),
	)
}

// ScheduleRowID is the element id of a class row in the dashboard.
func ScheduleRowID(id int) string { return "schedule-row-" + strconv.Itoa(id) }

func scheduleRow(cl domain.ClassSession) g.Node {
	return ScheduleRow(cl, "")
}

// ScheduleRow renders one class with its link form; qrName is the QR code just
// regenerated, if any.
func ScheduleRow(cl domain.ClassSession, qrName string) g.Node {
	return Tr(ID(ScheduleRowID(cl.ID)),
		Td(g.Text(cl.Title)),
		Td(g.Text(cl.Day+" "+cl.Time)),
		Td(
			Form(Class("inline-form"),
				hx.Post(AdminUpdateSchedulePath),
				hx.Target("#"+ScheduleRowID(cl.ID)),
				hx.Swap("outerHTML"),
				Input(Type("hidden"), Name("id"), Value(strconv.Itoa(cl.ID))),
				Input(Type("url"), Name("meet_link"), Value(cl.MeetLink), Class("form-control"), Required()),
				Button(Type("submit"), Class("btn btn-primary"), g.Text("تحديث")),
			),
			g.If(qrName != "", A(Href(QRCodeURL(qrName)), Target("_blank"), Class("qr-link"),
				I(Class("fas fa-qrcode")), g.Text(" "+qrName))),
		),
	)
}

// EmailList renders the addresses returned by the emails form.
func EmailList(emails []string) g.Node {
	return Div(ID("email-list"), Class("email-list"),
		g.If(emails != nil, P(g.Text("عدد العناوين: "+strconv.Itoa(len(emails))))),
		g.If(len(emails) > 0, Textarea(Class("form-control"), Rows("6"), ReadOnly(), g.Text(strings.Join(emails, ", ")))),
	)
}

func statCard(icon, label string, n int) g.Node {
	return Div(Class("admin-stat-card"),
		I(Class("fas "+icon)),
		Span(Class("admin-stat-number"), g.Text(strconv.Itoa(n))),
		P(g.Text(label)),
	)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
