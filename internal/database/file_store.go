package database

import (
	"context"
	"slices"
	"sync"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/kvstore"
)

// Keys of the file-backed tables in the key/value store.
const (
	studentsKey = "students"
	contactsKey = "contacts"
)

var (
	_ domain.StudentRepository = (*FileStudentStore)(nil)
	_ domain.ContactRepository = (*FileContactStore)(nil)
)

// FileStudentStore keeps all students in one document of the key/value store.
// It is used when no database is configured.
type FileStudentStore struct {
	mu sync.Mutex
	kv *kvstore.Store
}

func NewFileStudentStore(kv *kvstore.Store) *FileStudentStore {
	return &FileStudentStore{kv: kv}
}

func (s *FileStudentStore) load() []domain.Student {
	var all []domain.Student
	s.kv.Load(studentsKey, &all)
	return all
}

func (s *FileStudentStore) Create(ctx context.Context, st *domain.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load()
	st.Number = len(all) + 1
	all = append(all, *st)
	if !s.kv.Save(studentsKey, all) {
		return errWriteFailed(studentsKey)
	}
	return nil
}

func (s *FileStudentStore) FindByStudentID(ctx context.Context, studentID string) (*domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.load() {
		if st.StudentID == studentID {
			return &st, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *FileStudentStore) List(ctx context.Context) ([]domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.load()), nil
}

// FileContactStore keeps all contact messages in one document.
type FileContactStore struct {
	mu sync.Mutex
	kv *kvstore.Store
}

func NewFileContactStore(kv *kvstore.Store) *FileContactStore {
	return &FileContactStore{kv: kv}
}

func (s *FileContactStore) Create(ctx context.Context, m *domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []domain.ContactMessage
	s.kv.Load(contactsKey, &all)
	m.Number = len(all) + 1
	all = append(all, *m)
	if !s.kv.Save(contactsKey, all) {
		return errWriteFailed(contactsKey)
	}
	return nil
}

func (s *FileContactStore) List(ctx context.Context) ([]domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []domain.ContactMessage
	s.kv.Load(contactsKey, &all)
	return all, nil
}
