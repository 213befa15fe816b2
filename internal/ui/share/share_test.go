package share

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/stretchr/testify/assert"
)

type memClipboard struct {
	text string
	err  error
}

func (m *memClipboard) WriteText(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

type fakeSharer struct{ err error }

func (f fakeSharer) Share(_, _, _ string) error { return f.err }

type recordingNotifier struct{ got []string }

func (r *recordingNotifier) Notify(msg string, _ notify.Severity, _ time.Duration) {
	r.got = append(r.got, msg)
}

type recordingTracker struct{ events []string }

func (r *recordingTracker) TrackEvent(category, action, label string) {
	r.events = append(r.events, category+"/"+action+"/"+label)
}

func TestCopy(t *testing.T) {
	n := &recordingNotifier{}
	cb := &memClipboard{}
	h := &Helper{Primary: cb, Notifier: n}

	assert.True(t, h.Copy("https://meet.google.com/abc"))
	assert.Equal(t, "https://meet.google.com/abc", cb.text)
	assert.Equal(t, []string{MsgCopied}, n.got)
}

func TestCopy_FallbackAndFailure(t *testing.T) {
	n := &recordingNotifier{}
	fallback := &memClipboard{}
	h := &Helper{Fallback: fallback, Notifier: n}
	assert.True(t, h.Copy("x"))
	assert.Equal(t, "x", fallback.text)

	h = &Helper{Primary: &memClipboard{err: errors.New("denied")}, Notifier: n}
	assert.False(t, h.Copy("x"))
	assert.Equal(t, MsgCopyFailed, n.got[len(n.got)-1])
}

func TestShare(t *testing.T) {
	tr := &recordingTracker{}
	n := &recordingNotifier{}

	h := &Helper{Sharer: fakeSharer{}, Notifier: n, Tracker: tr}
	h.Share("الجدول", "جدول الحصص", "https://zawiya.dz/schedule/STD1")
	assert.Equal(t, []string{"Share/Success/الجدول"}, tr.events)

	cb := &memClipboard{}
	h = &Helper{Primary: cb, Notifier: n, Tracker: tr}
	h.Share("t", "x", "https://zawiya.dz")
	assert.Equal(t, "https://zawiya.dz", cb.text, "without a share sheet the link is copied")

	h = &Helper{Sharer: fakeSharer{err: errors.New("cancelled")}, Notifier: n, Tracker: tr}
	h.Share("t", "x", "u")
	assert.Len(t, tr.events, 1)
}

func TestShare_FailureGoesToLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Helper{
		Sharer:   fakeSharer{err: errors.New("AbortError")},
		Notifier: &recordingNotifier{},
		Logger:   slog.New(slog.NewTextHandler(&buf, nil)),
	}
	h.Share("الجدول", "", "u")
	assert.Contains(t, buf.String(), "Error sharing")
	assert.Contains(t, buf.String(), "AbortError")
}
