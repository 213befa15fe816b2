// Package service holds the server-side business logic behind the API and
// the admin pages.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/pubsub"
	"github.com/nfrund/zawiya/internal/qr"
	"github.com/nfrund/zawiya/internal/script"
)

// Messages returned to API clients.
const (
	MsgRegistered = "تم التسجيل بنجاح"
	msgRequired   = "الحقل %s مطلوب"
)

// RegisterInput is the accumulated wizard mapping. Fields are validated in
// declaration order and the first missing one is reported.
type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Age       string `json:"age" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Address   string `json:"address" validate:"required"`
	State     string `json:"state" validate:"required"`
	Program   string `json:"program" validate:"required"`
	Gender    string `json:"gender"`
}

// RegisterInputFromMap reads the mapping posted by the wizard. Non-string values
// such as a numeric age are formatted as text.
func RegisterInputFromMap(m map[string]any) RegisterInput {
	get := func(k string) string {
		switch v := m[k].(type) {
		case nil:
			return ""
		case string:
			return strings.TrimSpace(v)
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return fmt.Sprint(v)
		}
	}
	return RegisterInput{
		FirstName: get("firstName"),
		LastName:  get("lastName"),
		Age:       get("age"),
		Phone:     get("phone"),
		Email:     get("email"),
		Address:   get("address"),
		State:     get("state"),
		Program:   get("program"),
		Gender:    get("gender"),
	}
}

// Registrations stores students and prepares their schedule.
type Registrations struct {
	students  domain.StudentRepository
	catalog   *catalog.Catalog
	rule      *script.ScheduleRule
	qr        *qr.Generator
	publisher pubsub.Publisher
	validate  *validator.Validate
	now       func() time.Time
	newID     func() string
}

// NewRegistrations wires the registration service.
func NewRegistrations(students domain.StudentRepository, cat *catalog.Catalog, rule *script.ScheduleRule, gen *qr.Generator, pub pubsub.Publisher, v *validator.Validate) *Registrations {
	return &Registrations{
		students:  students,
		catalog:   cat,
		rule:      rule,
		qr:        gen,
		publisher: pub,
		validate:  v,
		now:       time.Now,
		newID:     NewStudentID,
	}
}

// NewStudentID returns "STD" followed by eight upper-case hex digits.
func NewStudentID() string {
	return "STD" + strings.ToUpper(uuid.NewString()[:8])
}

// Register validates and stores a new student, then writes the QR codes of
// the classes they may attend.
func (s *Registrations) Register(ctx context.Context, in RegisterInput) (*domain.Student, error) {
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return nil, firstFieldError(err)
	}

	gender := in.Gender
	if gender == "" {
		gender = domain.GenderUnspecified
	}
	st := &domain.Student{
		StudentID:    s.newID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Age:          in.Age,
		Gender:       gender,
		Address:      in.Address,
		State:        in.State,
		Phone:        in.Phone,
		Email:        in.Email,
		Program:      in.Program,
		RegisteredAt: s.now(),
		Status:       domain.StudentStatusActive,
	}
	if err := s.students.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save registration: %w", err)
	}

	log := middleware.FromContext(ctx)
	classes, err := s.eligibleClasses(ctx, st.Program)
	if err != nil {
		log.Error("Failed to evaluate schedule rule", "student_id", st.StudentID, "error", err)
	}
	written := 0
	for _, cl := range classes {
		if _, err := s.qr.ForStudent(ctx, cl.ID, st.StudentID, cl.MeetLink); err != nil {
			log.Error("Failed to create QR code", "student_id", st.StudentID, "class", cl.ID, "error", err)
			continue
		}
		written++
	}

	if s.publisher != nil {
		ev := StudentRegistered{StudentID: st.StudentID, Program: st.Program, QRCodes: written, At: st.RegisteredAt}
		if err := pubsub.Publish(ctx, s.publisher, StudentRegisteredTopic, st.StudentID, ev); err != nil {
			log.Warn("Failed to publish registration event", "error", err)
		}
	}
	return st, nil
}

// StudentSchedule is what the schedule page shows for one student.
type StudentSchedule struct {
	Student *domain.Student
	Classes []domain.ClassSession
	// QRCodes maps a class id to its image file name.
	QRCodes map[int]string
}

// Schedule returns the classes a student may attend.
func (s *Registrations) Schedule(ctx context.Context, studentID string) (*StudentSchedule, error) {
	st, err := s.students.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	classes, err := s.eligibleClasses(ctx, st.Program)
	if err != nil {
		return nil, err
	}
	codes := make(map[int]string, len(classes))
	for _, cl := range classes {
		codes[cl.ID] = qr.StudentFile(cl.ID, st.StudentID)
	}
	return &StudentSchedule{Student: st, Classes: classes, QRCodes: codes}, nil
}

func (s *Registrations) eligibleClasses(ctx context.Context, program string) ([]domain.ClassSession, error) {
	var out []domain.ClassSession
	for _, cl := range s.catalog.Schedule() {
		ok, err := s.rule.Eligible(ctx, program, cl.Program)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, cl)
		}
	}
	return out, nil
}

// firstFieldError maps validator errors onto a domain.FieldError for the
// first failing field.
func firstFieldError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		name := verrs[0].Field()
		msg := fmt.Sprintf(msgRequired, name)
		if verrs[0].Tag() != "required" {
			msg = fmt.Sprintf("الحقل %s غير صالح", name)
		}
		return &domain.FieldError{Field: name, Message: msg}
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
