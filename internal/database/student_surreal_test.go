package database

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/zawiya/internal/domain"
)

type call struct {
	query  string
	params map[string]any
}

// fakeExecutor answers queries with canned JSON keyed by a query prefix.
type fakeExecutor struct {
	calls   []call
	answers map[string]string
}

func (f *fakeExecutor) Query(_ context.Context, q string, p map[string]any, result any) error {
	f.calls = append(f.calls, call{q, p})
	for prefix, answer := range f.answers {
		if strings.HasPrefix(q, prefix) {
			return json.Unmarshal([]byte(answer), result)
		}
	}
	return nil
}

func (f *fakeExecutor) Execute(_ context.Context, q string, p map[string]any) error {
	f.calls = append(f.calls, call{q, p})
	return nil
}

func TestSurrealStudentStore_Create(t *testing.T) {
	exec := &fakeExecutor{answers: map[string]string{"SELECT count()": `[{"count":4}]`}}
	store := NewSurrealStudentStore(exec)

	at := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	st := &domain.Student{StudentID: "STDAB12CD34", FirstName: "محمد", RegisteredAt: at, Status: domain.StudentStatusActive}
	require.NoError(t, store.Create(context.Background(), st))

	assert.Equal(t, 5, st.Number)
	require.Len(t, exec.calls, 2)
	create := exec.calls[1]
	assert.True(t, strings.HasPrefix(create.query, "CREATE"))
	assert.Equal(t, studentTable, create.params["tb"])
	data := create.params["data"].(map[string]any)
	assert.Equal(t, "STDAB12CD34", data["student_id"])
	assert.Equal(t, "2026-10-14T10:00:00Z", data["registered_at"])
}

func TestSurrealStudentStore_Find(t *testing.T) {
	exec := &fakeExecutor{answers: map[string]string{
		"SELECT * FROM student WHERE": `[{"number":1,"student_id":"STD1","first_name":"محمد","registered_at":"2026-10-01T08:00:00Z"}]`,
	}}
	store := NewSurrealStudentStore(exec)

	got, err := store.FindByStudentID(context.Background(), "STD1")
	require.NoError(t, err)
	assert.Equal(t, "محمد", got.FirstName)
	assert.Equal(t, 2026, got.RegisteredAt.Year())
	assert.Equal(t, "STD1", exec.calls[0].params["id"])
}

func TestSurrealStudentStore_NotFound(t *testing.T) {
	store := NewSurrealStudentStore(&fakeExecutor{})
	_, err := store.FindByStudentID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSurrealContactStore(t *testing.T) {
	exec := &fakeExecutor{answers: map[string]string{
		"SELECT count()":        `[]`,
		"SELECT * FROM contact": `[{"number":1,"name":"أحمد","status":"جديدة"}]`,
	}}
	store := NewSurrealContactStore(exec)

	m := &domain.ContactMessage{Name: "أحمد"}
	require.NoError(t, store.Create(context.Background(), m))
	assert.Equal(t, 1, m.Number)

	all, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.ContactStatusNew, all[0].Status)
}
