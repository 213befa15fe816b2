package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newSessionEcho() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.Use(Visitor)
	return e
}

// cookiesFrom copies the response cookies onto the next request.
func cookiesFrom(rec *httptest.ResponseRecorder, req *http.Request) {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
}

func TestRequireAdmin(t *testing.T) {
	e := newSessionEcho()
	e.GET("/admin/dashboard", func(c echo.Context) error {
		return c.String(http.StatusOK, "dashboard")
	}, RequireAdmin)
	e.POST("/login", func(c echo.Context) error {
		if err := SetAdmin(c, true); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	e.POST("/logout", func(c echo.Context) error {
		if err := SetAdmin(c, false); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	t.Run("anonymous request is redirected to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, AdminLoginPath, rec.Header().Get("Location"))
	})

	t.Run("htmx request gets HX-Redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, AdminLoginPath, rec.Header().Get("HX-Redirect"))
	})

	t.Run("logged in session passes until logout", func(t *testing.T) {
		loginRec := httptest.NewRecorder()
		e.ServeHTTP(loginRec, httptest.NewRequest(http.MethodPost, "/login", nil))
		require.Equal(t, http.StatusOK, loginRec.Code)

		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		cookiesFrom(loginRec, req)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dashboard", rec.Body.String())

		logoutReq := httptest.NewRequest(http.MethodPost, "/logout", nil)
		cookiesFrom(loginRec, logoutReq)
		logoutRec := httptest.NewRecorder()
		e.ServeHTTP(logoutRec, logoutReq)

		req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		cookiesFrom(logoutRec, req)
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestVisitor_StableAcrossRequests(t *testing.T) {
	e := newSessionEcho()
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, VisitorID(c))
	})

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, first.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	cookiesFrom(first, req)
	second := httptest.NewRecorder()
	e.ServeHTTP(second, req)

	assert.Equal(t, first.Body.String(), second.Body.String())
}
