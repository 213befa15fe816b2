package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/zawiya/internal/contact"
)

func TestSubmitRegistration(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"تم التسجيل بنجاح","student_id":"STD1A2B3C4D"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	res, err := c.SubmitRegistration(context.Background(), map[string]string{"firstName": "محمد"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "STD1A2B3C4D", res.StudentID)
	assert.Equal(t, "محمد", got["firstName"])
}

func TestSubmitRegistration_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"الحقل phone مطلوب"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, 0).SubmitRegistration(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "الحقل phone مطلوب", res.Message)
}

func TestSubmitContact_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("حدث خطأ في الخادم"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0).SubmitContact(context.Background(), contact.Message{Name: "أحمد"})
	assert.Error(t, err)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, 50*time.Millisecond).SubmitContact(context.Background(), contact.Message{})
	assert.Error(t, err)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(srv.URL, time.Minute).SubmitRegistration(ctx, map[string]string{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetStatistics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/statistics", r.URL.Path)
		_, _ = w.Write([]byte(`{"total_students":3,"active_students":2}`))
	}))
	defer srv.Close()

	st, err := New(srv.URL, 0).Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalStudents)
	assert.Equal(t, 2, st.ActiveStudents)
}

func TestGetStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := New(srv.URL, 0).Programs(context.Background())
	assert.ErrorContains(t, err, "404")
}
