package domain

import (
	"context"
	"time"
)

const (
	// StudentStatusActive is the status given to every new registration.
	StudentStatusActive = "نشط"
	// GenderUnspecified is stored when the registration omits the gender.
	GenderUnspecified = "غير محدد"
)

// Student is a registered student, as persisted by the registration endpoint.
type Student struct {
	// Number is the sequential registration number (1-based).
	Number int `json:"number"`
	// StudentID is the public identifier used in schedule URLs, e.g. "STD1A2B3C4D".
	StudentID    string    `json:"student_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Age          string    `json:"age"`
	Gender       string    `json:"gender"`
	Address      string    `json:"address"`
	State        string    `json:"state"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Program      string    `json:"program"`
	RegisteredAt time.Time `json:"registered_at"`
	Status       string    `json:"status"`
}

// FullName joins first and last name the way the confirmation step shows it.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// StudentRepository persists registered students.
type StudentRepository interface {
	// Create assigns the registration number and stores the student.
	Create(ctx context.Context, student *Student) error
	// FindByStudentID returns ErrNotFound when no student has the given id.
	FindByStudentID(ctx context.Context, studentID string) (*Student, error)
	List(ctx context.Context) ([]Student, error)
}

// RegistrationStats summarises the stored registrations.
type RegistrationStats struct {
	TotalStudents        int            `json:"total_students"`
	ActiveStudents       int            `json:"active_students"`
	ProgramsDistribution map[string]int `json:"programs_distribution"`
	RecentRegistrations  int            `json:"recent_registrations"`
}
