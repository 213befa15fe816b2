package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
)

// Executor runs SurrealQL statements. Repositories depend on it rather than on
// the connection so they can be tested without a database.
type Executor interface {
	// Query decodes the rows of the first statement's result into result.
	Query(ctx context.Context, query string, params map[string]any, result any) error
	// Execute runs a statement whose result is not needed.
	Execute(ctx context.Context, query string, params map[string]any) error
}

// NewExecutor creates an Executor on a SurrealDB connection.
func NewExecutor(db *surrealdb.DB) Executor {
	return &executor{db: db}
}

type executor struct {
	db *surrealdb.DB
}

func (e *executor) Query(ctx context.Context, query string, params map[string]any, result any) error {
	queryResults, err := surrealdb.Query[[]any](ctx, e.db, query, params)
	if err != nil {
		return fmt.Errorf("query execution failed: %w", err)
	}
	if queryResults == nil || len(*queryResults) == 0 {
		return nil
	}
	// Round-trip through JSON to map the generic rows onto the target type.
	data, err := json.Marshal((*queryResults)[0].Result)
	if err != nil {
		return fmt.Errorf("failed to marshal query result: %w", err)
	}
	return json.Unmarshal(data, result)
}

func (e *executor) Execute(ctx context.Context, query string, params map[string]any) error {
	if _, err := surrealdb.Query[any](ctx, e.db, query, params); err != nil {
		return fmt.Errorf("query execution failed: %w", err)
	}
	return nil
}
