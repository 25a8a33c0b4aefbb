package chat

import (
	"context"

	"gorm.io/gorm"
)

// QueryExecutionError wraps a data-store failure while running generated
// SQL. It is caught at the pipeline boundary and turned into an apology.
type QueryExecutionError struct {
	Err error
}

func (e *QueryExecutionError) Error() string { return e.Err.Error() }

func (e *QueryExecutionError) Unwrap() error { return e.Err }

// Executor runs one read-only statement and returns generic rows.
type Executor interface {
	Query(ctx context.Context, query string) ([]map[string]any, error)
}

type gormExecutor struct{ db *gorm.DB }

func NewExecutor(db *gorm.DB) Executor { return &gormExecutor{db: db} }

func (e *gormExecutor) Query(ctx context.Context, query string) ([]map[string]any, error) {
	rows := make([]map[string]any, 0)
	if err := e.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, &QueryExecutionError{Err: err}
	}
	return rows, nil
}
