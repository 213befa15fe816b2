package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/zawiya/internal/analytics"
	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/database"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/kvstore"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/qr"
	"github.com/nfrund/zawiya/internal/rendering"
	"github.com/nfrund/zawiya/internal/script"
	"github.com/nfrund/zawiya/internal/service"
	"github.com/nfrund/zawiya/internal/storage"
	"github.com/nfrund/zawiya/internal/validate"
	"github.com/nfrund/zawiya/internal/view/components"
	"github.com/nfrund/zawiya/internal/view/pages"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

type testApp struct {
	e        *echo.Echo
	fs       afero.Fs
	catalog  *catalog.Catalog
	students *database.FileStudentStore
	contacts *database.FileContactStore
	// events holds the log lines of the analytics tracker.
	events *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	fs := afero.NewMemMapFs()
	kv := kvstore.New(fs, "kv")
	rule, err := script.NewScheduleRule("")
	require.NoError(t, err)

	v := validate.New()
	cat := catalog.Default()
	students := database.NewFileStudentStore(kv)
	contacts := database.NewFileContactStore(kv)
	gen := qr.NewGenerator(storage.NewAferoStore(fs))

	regs := service.NewRegistrations(students, cat, rule, gen, nil, v.Engine())
	contactSvc := service.NewContacts(contacts, nil, "", nil, v.Engine())
	studentSvc := service.NewStudents(students)
	classes := service.NewClasses(cat, gen)
	newsletter := service.NewNewsletter(kv, v, nil)
	cfg := &config.Config{AdminUsername: "admin", AdminPassword: "secret"}

	r := rendering.NewUniversalRenderer()
	pageH := NewPageHandler(r, cat, regs, v, "http://zawiya.test")
	wizardH := NewWizardHandler(r, cat, v, RegistrationSubmitter{Registrations: regs})
	contactH := NewContactHandler(r, cat, v, ContactSender{Contacts: contactSvc})
	apiH := NewAPIHandler(cat, regs, contactSvc, studentSvc)
	adminH := NewAdminHandler(r, cfg, cat, studentSvc, classes)
	var events bytes.Buffer
	tracker := analytics.New(nil, slog.New(slog.NewTextHandler(&events, nil)))
	widgetH := NewWidgetHandler(r, cat, newsletter, tracker)

	e := echo.New()
	e.Validator = NewValidator(v.Engine())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.Use(middleware.Visitor)

	e.GET("/", pageH.HomeGet)
	e.GET("/contact", pageH.ContactGet)
	e.GET("/structure", pageH.StructureGet)
	e.GET("/schedule/:student_id", pageH.ScheduleGet)
	e.GET("/register", wizardH.Start)
	e.POST(pages.WizardNextPath, wizardH.Next)
	e.POST(pages.WizardPrevPath, wizardH.Prev)
	e.POST(pages.WizardSelectPath, wizardH.Select)
	e.POST(pages.WizardSubmitPath, wizardH.Submit)
	e.POST(pages.ContactSubmitPath, contactH.Submit)
	e.GET(pages.ContactFormPath, contactH.Form)

	e.POST("/api/register", apiH.Register)
	e.POST("/api/contact", apiH.Contact)
	e.GET("/api/schedules", apiH.Schedules)
	e.GET("/api/programs", apiH.Programs)
	e.GET("/api/statistics", apiH.Statistics)

	e.GET("/admin", adminH.Index)
	e.GET(pages.AdminLoginPath, adminH.LoginGet)
	e.POST(pages.AdminLoginPath, adminH.LoginPost)
	e.GET(pages.AdminLogoutPath, adminH.Logout)
	e.GET(pages.AdminDashboardPath, adminH.Dashboard, middleware.RequireAdmin)
	e.POST(pages.AdminUpdateSchedulePath, adminH.UpdateSchedule, middleware.RequireAdmin)
	e.GET(pages.AdminExportPath, adminH.Export, middleware.RequireAdmin)
	e.POST(pages.AdminEmailsPath, adminH.Emails, middleware.RequireAdmin)

	e.POST(pages.NewsletterPath, widgetH.Newsletter)
	e.GET(components.SearchPath, widgetH.Search)
	e.POST(components.FAQPath, widgetH.FAQ)
	e.POST(components.ModalOpenPath+":id", widgetH.ModalOpen)
	e.POST(components.ModalClosePath+":id", widgetH.ModalClose)
	e.POST(components.ModalOverlayPath+":id", widgetH.ModalOverlay)
	e.POST(components.ModalCloseAllPath, widgetH.ModalCloseAll)
	e.POST(components.CopyPath, widgetH.Copy)
	e.POST(components.CopyResultPath, widgetH.CopyResult)
	e.POST(components.SharePath, widgetH.Share)
	e.POST(components.ShareResultPath, widgetH.ShareResult)

	return &testApp{e: e, fs: fs, catalog: cat, students: students, contacts: contacts, events: &events}
}

// browser replays the latest value of every cookie it was given.
type browser struct {
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) browser() *browser {
	return &browser{app: a, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.app.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// htmx posts form values the way htmx does.
func (b *browser) htmx(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	return b.do(req)
}

func (b *browser) postJSON(path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(raw)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return b.do(req)
}

func decodeJSON(t *testing.T, r io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r).Decode(v))
}

func personalValues() url.Values {
	return url.Values{
		"firstName": {"محمد"},
		"lastName":  {"بن علي"},
		"age":       {"12"},
		"gender":    {"ذكر"},
		"phone":     {"0555123456"},
		"email":     {"m@example.dz"},
		"address":   {"عين ماضي"},
		"state":     {"الأغواط"},
	}
}

func registerStudent(t *testing.T, a *testApp, program string) *domain.Student {
	t.Helper()
	st := &domain.Student{
		StudentID: "STD" + strings.ToUpper(program[:4]) + "0001",
		FirstName: "محمد", LastName: "بن علي", Email: program + "@example.dz",
		Program: program, Status: domain.StudentStatusActive,
	}
	require.NoError(t, a.students.Create(context.Background(), st))
	return st
}
