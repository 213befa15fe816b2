package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/zawiya/internal/service"
	"github.com/nfrund/zawiya/internal/view/pages"
)

func loggedIn(t *testing.T, a *testApp) *browser {
	t.Helper()
	b := a.browser()
	rec := b.postJSON(pages.AdminLoginPath, LoginRequest{Username: "admin", Password: "secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	return b
}

func TestAdminLogin(t *testing.T) {
	a := newTestApp(t)

	t.Run("index redirects to login", func(t *testing.T) {
		rec := a.browser().get("/admin")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, pages.AdminLoginPath, rec.Header().Get("Location"))
	})

	t.Run("dashboard requires login", func(t *testing.T) {
		rec := a.browser().get(pages.AdminDashboardPath)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("JSON login with bad credentials", func(t *testing.T) {
		rec := a.browser().postJSON(pages.AdminLoginPath, LoginRequest{Username: "admin", Password: "nope"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		var res APIResponse
		decodeJSON(t, rec.Body, &res)
		assert.False(t, res.Success)
		assert.Equal(t, MsgBadCredentials, res.Message)
	})

	t.Run("JSON login opens the dashboard", func(t *testing.T) {
		b := loggedIn(t, a)
		rec := b.get(pages.AdminDashboardPath)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("htmx login failure is a toast", func(t *testing.T) {
		rec := a.browser().htmx(pages.AdminLoginPath, url.Values{"username": {"admin"}, "password": {"x"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgBadCredentials)
		assert.Empty(t, rec.Header().Get("HX-Redirect"))
	})

	t.Run("htmx login success redirects", func(t *testing.T) {
		rec := a.browser().htmx(pages.AdminLoginPath, url.Values{"username": {"admin"}, "password": {"secret"}})
		assert.Equal(t, pages.AdminDashboardPath, rec.Header().Get("HX-Redirect"))
	})

	t.Run("logout", func(t *testing.T) {
		b := loggedIn(t, a)
		rec := b.get(pages.AdminLogoutPath)
		assert.Equal(t, http.StatusSeeOther, rec.Code)

		rec = b.get(pages.AdminLoginPath)
		assert.Contains(t, rec.Body.String(), MsgLoggedOut)
		rec = b.get(pages.AdminDashboardPath)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestAdminUpdateSchedule(t *testing.T) {
	a := newTestApp(t)
	b := loggedIn(t, a)

	t.Run("unknown class", func(t *testing.T) {
		rec := b.postJSON(pages.AdminUpdateSchedulePath, UpdateScheduleRequest{ID: 99, MeetLink: "https://meet.google.com/new"})
		require.Equal(t, http.StatusNotFound, rec.Code)
		var res UpdateScheduleResponse
		decodeJSON(t, rec.Body, &res)
		assert.Equal(t, MsgClassNotFound, res.Message)
	})

	t.Run("invalid link", func(t *testing.T) {
		rec := b.postJSON(pages.AdminUpdateSchedulePath, UpdateScheduleRequest{ID: 1, MeetLink: "not a url"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("JSON update regenerates the QR code", func(t *testing.T) {
		rec := b.postJSON(pages.AdminUpdateSchedulePath, UpdateScheduleRequest{ID: 1, MeetLink: "https://meet.google.com/new"})
		require.Equal(t, http.StatusOK, rec.Code)
		var res UpdateScheduleResponse
		decodeJSON(t, rec.Body, &res)
		assert.True(t, res.Success)
		assert.Equal(t, service.MsgLinkUpdated, res.Message)
		assert.Equal(t, "qr_schedule_1_updated.png", res.QRCode)
		assert.Equal(t, "https://meet.google.com/new", a.catalog.Schedule()[0].MeetLink)
	})

	t.Run("htmx update returns the row", func(t *testing.T) {
		rec := b.htmx(pages.AdminUpdateSchedulePath, url.Values{"id": {"2"}, "meet_link": {"https://meet.google.com/two"}})
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="`+pages.ScheduleRowID(2)+`"`)
		assert.Contains(t, body, "qr_schedule_2_updated.png")
		assert.Contains(t, body, service.MsgLinkUpdated)
	})
}

func TestAdminEmailsAndExport(t *testing.T) {
	a := newTestApp(t)
	registerStudent(t, a, "children")
	registerStudent(t, a, "adults")
	b := loggedIn(t, a)

	rec := b.postJSON(pages.AdminEmailsPath, EmailsRequest{Program: "children"})
	require.Equal(t, http.StatusOK, rec.Code)
	var res EmailsResponse
	decodeJSON(t, rec.Body, &res)
	assert.Equal(t, []string{"children@example.dz"}, res.Emails)
	assert.Equal(t, 1, res.Count)

	rec = b.htmx(pages.AdminEmailsPath, url.Values{})
	assert.Contains(t, rec.Body.String(), "children@example.dz, adults@example.dz")

	rec = b.get(pages.AdminExportPath)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), `attachment; filename="students_export_`))
	assert.NotZero(t, rec.Body.Len())
}
