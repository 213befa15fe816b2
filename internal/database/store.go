package database

import (
	"context"
	"fmt"

	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/kvstore"
)

// Repositories bundles the persistence of the registration and contact flows.
type Repositories struct {
	Students domain.StudentRepository
	Contacts domain.ContactRepository
}

// NewRepositories selects the backend from STORE_DRIVER: "surreal" for the
// database, anything else for the file store kv. The returned func closes the
// connection.
func NewRepositories(ctx context.Context, cfg config.Provider, kv *kvstore.Store) (Repositories, func(), error) {
	if cfg.GetStoreDriver() != "surreal" {
		return Repositories{
			Students: NewFileStudentStore(kv),
			Contacts: NewFileContactStore(kv),
		}, func() {}, nil
	}

	db, err := NewDB(ctx, cfg)
	if err != nil {
		return Repositories{}, nil, fmt.Errorf("failed to open repositories: %w", err)
	}
	exec := NewExecutor(db)
	return Repositories{
			Students: NewSurrealStudentStore(exec),
			Contacts: NewSurrealContactStore(exec),
		}, func() {
			_ = db.Close(context.Background())
		}, nil
}
