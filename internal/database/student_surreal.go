package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nfrund/zawiya/internal/domain"
)

const (
	studentTable = "student"
	contactTable = "contact"
)

var (
	_ domain.StudentRepository = (*SurrealStudentStore)(nil)
	_ domain.ContactRepository = (*SurrealContactStore)(nil)
)

// row mirrors the stored record; timestamps are kept as RFC 3339 strings.
type studentRow struct {
	Number       int    `json:"number"`
	StudentID    string `json:"student_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	Address      string `json:"address"`
	State        string `json:"state"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Program      string `json:"program"`
	RegisteredAt string `json:"registered_at"`
	Status       string `json:"status"`
}

func (r studentRow) toDomain() domain.Student {
	at, _ := time.Parse(time.RFC3339, r.RegisteredAt)
	return domain.Student{
		Number: r.Number, StudentID: r.StudentID, FirstName: r.FirstName, LastName: r.LastName,
		Age: r.Age, Gender: r.Gender, Address: r.Address, State: r.State, Phone: r.Phone,
		Email: r.Email, Program: r.Program, RegisteredAt: at, Status: r.Status,
	}
}

type countRow struct {
	Count int `json:"count"`
}

// SurrealStudentStore persists students in the "student" table.
type SurrealStudentStore struct {
	mu   sync.Mutex
	exec Executor
}

func NewSurrealStudentStore(exec Executor) *SurrealStudentStore {
	return &SurrealStudentStore{exec: exec}
}

func count(ctx context.Context, exec Executor, table string) (int, error) {
	var rows []countRow
	if err := exec.Query(ctx, "SELECT count() FROM type::table($tb) GROUP ALL", map[string]any{"tb": table}, &rows); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Count, nil
}

// Create numbers the student after the existing rows and stores it.
func (s *SurrealStudentStore) Create(ctx context.Context, st *domain.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := count(ctx, s.exec, studentTable)
	if err != nil {
		return err
	}
	st.Number = n + 1

	data := map[string]any{
		"number":        st.Number,
		"student_id":    st.StudentID,
		"first_name":    st.FirstName,
		"last_name":     st.LastName,
		"age":           st.Age,
		"gender":        st.Gender,
		"address":       st.Address,
		"state":         st.State,
		"phone":         st.Phone,
		"email":         st.Email,
		"program":       st.Program,
		"registered_at": st.RegisteredAt.UTC().Format(time.RFC3339),
		"status":        st.Status,
	}
	if err := s.exec.Execute(ctx, "CREATE type::table($tb) CONTENT $data", map[string]any{"tb": studentTable, "data": data}); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (s *SurrealStudentStore) FindByStudentID(ctx context.Context, studentID string) (*domain.Student, error) {
	var rows []studentRow
	err := s.exec.Query(ctx, "SELECT * FROM student WHERE student_id = $id LIMIT 1", map[string]any{"id": studentID}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	st := rows[0].toDomain()
	return &st, nil
}

func (s *SurrealStudentStore) List(ctx context.Context) ([]domain.Student, error) {
	var rows []studentRow
	if err := s.exec.Query(ctx, "SELECT * FROM student ORDER BY number", nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	out := make([]domain.Student, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

type contactRow struct {
	Number    int    `json:"number"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}

// SurrealContactStore persists contact messages in the "contact" table.
type SurrealContactStore struct {
	mu   sync.Mutex
	exec Executor
}

func NewSurrealContactStore(exec Executor) *SurrealContactStore {
	return &SurrealContactStore{exec: exec}
}

func (s *SurrealContactStore) Create(ctx context.Context, m *domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := count(ctx, s.exec, contactTable)
	if err != nil {
		return err
	}
	m.Number = n + 1

	data := map[string]any{
		"number":     m.Number,
		"name":       m.Name,
		"email":      m.Email,
		"phone":      m.Phone,
		"subject":    m.Subject,
		"message":    m.Message,
		"created_at": m.CreatedAt.UTC().Format(time.RFC3339),
		"status":     m.Status,
	}
	if err := s.exec.Execute(ctx, "CREATE type::table($tb) CONTENT $data", map[string]any{"tb": contactTable, "data": data}); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (s *SurrealContactStore) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var rows []contactRow
	if err := s.exec.Query(ctx, "SELECT * FROM contact ORDER BY number", nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	out := make([]domain.ContactMessage, 0, len(rows))
	for _, r := range rows {
		at, _ := time.Parse(time.RFC3339, r.CreatedAt)
		out = append(out, domain.ContactMessage{
			Number: r.Number, Name: r.Name, Email: r.Email, Phone: r.Phone,
			Subject: r.Subject, Message: r.Message, CreatedAt: at, Status: r.Status,
		})
	}
	return out, nil
}
