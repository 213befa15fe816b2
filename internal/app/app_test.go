package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/handlers"
	"github.com/nfrund/zawiya/internal/qr"
	"github.com/nfrund/zawiya/internal/server"
)

func newTestInjector(t *testing.T, fs afero.Fs) *do.RootScope {
	t.Helper()
	cfg := &config.Config{
		SessionSecret: "test-secret-test-secret-test-sec",
		DataDir:       "/data",
		StoreDriver:   "file",
		AdminUsername: "admin",
		AdminPassword: "secret",
		EmailProvider: "log",
	}
	i := NewInjector(cfg, fs, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { i.Shutdown() })
	return i
}

func serve(t *testing.T, i *do.RootScope, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	srv := do.MustInvoke[*server.Server](i)
	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	i := newTestInjector(t, afero.NewMemMapFs())

	tests := []struct {
		name     string
		path     string
		status   int
		contains string
	}{
		{"health", "/health", http.StatusOK, "OK"},
		{"home", "/", http.StatusOK, `lang="ar"`},
		{"static script", "/static/js/app.js", http.StatusOK, "zawiya:copy"},
		{"unknown page", "/no-such-page", http.StatusNotFound, `lang="ar"`},
		{"unknown api", "/api/no-such-endpoint", http.StatusNotFound, `"code":"Not Found"`},
		{"missing qr", "/qrcodes/qr_9_nobody.png", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, i, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestServiceWorkerScope(t *testing.T) {
	i := newTestInjector(t, afero.NewMemMapFs())

	rec := serve(t, i, httptest.NewRequest(http.MethodGet, "/service-worker.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Service-Worker-Allowed"))
}

func TestAdminRequiresLogin(t *testing.T) {
	i := newTestInjector(t, afero.NewMemMapFs())

	rec := serve(t, i, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestQRCodesAreServedFromDataDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	i := newTestInjector(t, fs)

	name, err := do.MustInvoke[*qr.Generator](i).ForUpdatedLink(context.Background(), 1, "https://meet.example/abc")
	require.NoError(t, err)

	ok, err := afero.Exists(fs, "/data/qrcodes/"+name)
	require.NoError(t, err)
	assert.True(t, ok, "images are written under the data directory")

	rec := serve(t, i, httptest.NewRequest(http.MethodGet, "/qrcodes/"+name, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestRegisterThroughInjector(t *testing.T) {
	i := newTestInjector(t, afero.NewMemMapFs())

	body, err := json.Marshal(map[string]any{
		"firstName": "فاطمة", "lastName": "بن علي", "age": 14, "phone": "0555123456",
		"email": "f@example.dz", "address": "عين ماضي", "state": "الأغواط", "program": "children",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(t, i, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var res handlers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.StudentID)
}

func TestLoadScheduleRuleFallsBackToBuiltIn(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rule, err := loadScheduleRule(afero.NewMemMapFs(), "/data/"+ScheduleRuleFile, logger)
	require.NoError(t, err)
	assert.NotNil(t, rule)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/"+ScheduleRuleFile, []byte("this is not tengo ("), 0o644))
	_, err = loadScheduleRule(fs, "/data/"+ScheduleRuleFile, logger)
	assert.Error(t, err)
}
