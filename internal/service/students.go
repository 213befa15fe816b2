package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nfrund/zawiya/internal/domain"
)

// Look-back windows of the "recent registrations" figure.
const (
	DashboardWindow = 7 * 24 * time.Hour
	APIWindow       = 30 * 24 * time.Hour
)

// AllPrograms selects every student in Emails.
const AllPrograms = "all"

// exportColumns are the spreadsheet headers, in column order.
var exportColumns = []any{
	"رقم التسجيل", "معرف فريد", "الاسم", "اللقب", "العمر",
	"الجنس", "مكان الإقامة", "الولاية", "رقم الهاتف",
	"البريد الإلكتروني", "البرنامج المختار", "تاريخ التسجيل", "الحالة",
}

const exportSheet = "Sheet1"

// Students answers the admin and statistics queries over stored students.
type Students struct {
	repo domain.StudentRepository
	now  func() time.Time
}

func NewStudents(repo domain.StudentRepository) *Students {
	return &Students{repo: repo, now: time.Now}
}

func (s *Students) List(ctx context.Context) ([]domain.Student, error) {
	return s.repo.List(ctx)
}

// Stats summarises the registrations; recent counts those within window.
func (s *Students) Stats(ctx context.Context, window time.Duration) (domain.RegistrationStats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return domain.RegistrationStats{}, err
	}
	since := s.now().Add(-window)
	stats := domain.RegistrationStats{
		TotalStudents:        len(all),
		ProgramsDistribution: make(map[string]int),
	}
	for _, st := range all {
		if st.Status == domain.StudentStatusActive {
			stats.ActiveStudents++
		}
		stats.ProgramsDistribution[st.Program]++
		if !st.RegisteredAt.IsZero() && !st.RegisteredAt.Before(since) {
			stats.RecentRegistrations++
		}
	}
	return stats, nil
}

// Emails lists the addresses of a program's students, or of everyone for AllPrograms.
func (s *Students) Emails(ctx context.Context, program string) ([]string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(all))
	for _, st := range all {
		if program == AllPrograms || program == "" || st.Program == program {
			emails = append(emails, st.Email)
		}
	}
	return emails, nil
}

// ExportFileName names the spreadsheet download for the given day.
func ExportFileName(t time.Time) string {
	return "students_export_" + t.Format("20060102") + ".xlsx"
}

// Export writes every student to an xlsx workbook.
func (s *Students) Export(ctx context.Context, w io.Writer) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(exportSheet, "A1", &exportColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, st := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			st.Number, st.StudentID, st.FirstName, st.LastName, st.Age,
			st.Gender, st.Address, st.State, st.Phone,
			st.Email, st.Program, st.RegisteredAt.Format("2006-01-02 15:04:05"), st.Status,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
