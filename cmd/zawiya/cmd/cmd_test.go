package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/zawiya/internal/apiclient"
	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/logging"
	"github.com/nfrund/zawiya/internal/registration"
	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/ui/share"
)

// scriptedPrompter answers prompts from per-message queues.
type scriptedPrompter struct {
	answers map[string][]string
	confirm []bool
}

func (p *scriptedPrompter) next(message string) (string, error) {
	q := p.answers[message]
	if len(q) == 0 {
		return "", errors.New("no answer for " + message)
	}
	p.answers[message] = q[1:]
	return q[0], nil
}

func (p *scriptedPrompter) Input(message, _ string) (string, error) { return p.next(message) }

func (p *scriptedPrompter) Select(message string, _ []string) (string, error) {
	return p.next(message)
}

func (p *scriptedPrompter) Confirm(string) (bool, error) {
	if len(p.confirm) == 0 {
		return false, errors.New("no confirmation left")
	}
	v := p.confirm[0]
	p.confirm = p.confirm[1:]
	return v, nil
}

func newRegistrationServer(t *testing.T, received *map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/programs", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(catalog.Default().Programs())
	})
	mux.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(received))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(registration.Result{Success: true, StudentID: "STDA1B2C3D4", Message: "ok"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunRegister(t *testing.T) {
	var received map[string]string
	srv := newRegistrationServer(t, &received)
	program := catalog.Default().Programs()[0]
	state := catalog.Default().States()[0]

	p := &scriptedPrompter{
		answers: map[string][]string{
			"الاسم":             {"محمد", "محمد"},
			"اللقب":             {"بن علي", "بن علي"},
			"العمر":             {"3", "12"},
			"الجنس":             {"ذكر", "ذكر"},
			"رقم الهاتف":        {"0555123456", "0555123456"},
			"البريد الإلكتروني": {"m@example.dz", "m@example.dz"},
			"مكان الإقامة":      {"عين ماضي", "عين ماضي"},
			"الولاية":           {state, state},
			"البرنامج":          {program.Name},
		},
		confirm: []bool{false, true},
	}
	var out bytes.Buffer

	err := runRegister(context.Background(), p, apiclient.New(srv.URL, time.Second), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), registration.MsgStepInvalid, "an age below the minimum repeats the step")
	assert.Contains(t, out.String(), registration.MsgTermsRequired)
	assert.Contains(t, out.String(), srv.URL+"/schedule/STDA1B2C3D4")
	assert.Equal(t, "12", received[registration.FieldAge])
	assert.Equal(t, program.ID, received[registration.FieldProgram])
	assert.Equal(t, state, received[registration.FieldState])
}

func TestRunRegister_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	err := runRegister(context.Background(), &scriptedPrompter{}, apiclient.New(srv.URL, time.Second), &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to load programs")
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteText(text string) error {
	c.text = text
	return c.err
}

func TestPrintSchedule(t *testing.T) {
	sessions := []domain.ClassSession{
		{ID: 1, Title: "تحفيظ", Day: "الأحد", Time: "16:00", Program: "children", MeetLink: "https://meet.example/one"},
		{ID: 2, Title: "فقه", Day: "الاثنين", Time: "18:00", Program: "adults", MeetLink: "https://meet.example/two"},
	}
	sunday := time.Date(2026, 10, 11, 10, 0, 0, 0, time.UTC)

	t.Run("filters by program and marks today", func(t *testing.T) {
		var out bytes.Buffer
		cb := &fakeClipboard{}
		helper := &share.Helper{Primary: cb, Notifier: notify.NewCenter(notify.Writer{W: &out}, notify.RealTimer{})}

		require.NoError(t, printSchedule(context.Background(), &out, sessions, "children", 0, helper, sunday))
		assert.Contains(t, out.String(), "*   1")
		assert.NotContains(t, out.String(), "فقه")
		assert.Empty(t, cb.text)
	})

	t.Run("copies the meeting link", func(t *testing.T) {
		var out bytes.Buffer
		cb := &fakeClipboard{}
		helper := &share.Helper{Primary: cb, Notifier: notify.NewCenter(notify.Writer{W: &out}, notify.RealTimer{})}

		require.NoError(t, printSchedule(context.Background(), &out, sessions, "", 2, helper, sunday))
		assert.Equal(t, "https://meet.example/two", cb.text)
		assert.Contains(t, out.String(), share.MsgCopied)
	})

	t.Run("clipboard failure is reported", func(t *testing.T) {
		var out bytes.Buffer
		cb := &fakeClipboard{err: errors.New("no display")}
		helper := &share.Helper{Primary: cb, Notifier: notify.NewCenter(notify.Writer{W: &out}, notify.RealTimer{})}

		assert.Error(t, printSchedule(context.Background(), &out, sessions, "", 1, helper, sunday))
		assert.Contains(t, out.String(), share.MsgCopyFailed)
	})

	t.Run("unknown session", func(t *testing.T) {
		helper := &share.Helper{Primary: &fakeClipboard{}, Notifier: notify.NewCenter(notify.Writer{W: &bytes.Buffer{}}, notify.RealTimer{})}
		assert.Error(t, printSchedule(context.Background(), &bytes.Buffer{}, sessions, "", 9, helper, sunday))
	})
}

// immediate runs every frame synchronously.
type immediate struct{}

func (immediate) RequestFrame(fn func()) { fn() }

func TestAnimateStats(t *testing.T) {
	var out bytes.Buffer
	animateStats(&out, domain.RegistrationStats{
		TotalStudents:        40,
		ActiveStudents:       35,
		RecentRegistrations:  0,
		ProgramsDistribution: map[string]int{"children": 30, "adults": 10},
	}, immediate{})

	assert.Contains(t, out.String(), "الطلاب: 40+  النشطون: 35+  آخر 30 يوما: 0+")
	assert.Contains(t, out.String(), "  adults: 10\n  children: 30\n")
}

func TestExportStudents(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &config.Config{DataDir: "/data", StoreDriver: "file", EmailProvider: "log"}
	logger := logging.NewWithWriter(&bytes.Buffer{}, "text", "error")
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	name, err := exportStudents(context.Background(), cfg, fs, logger, "", now)
	require.NoError(t, err)
	assert.Equal(t, "students_export_20261014.xlsx", name)

	info, err := fs.Stat(name)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
