package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup miss for an entity the caller required.
var ErrNotFound = errors.New("not found")

// conn is the subset of database/sql shared by *sql.DB and *sql.Tx.
type conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Querier carries every query of the matrix store. It runs against either the
// pool or an open transaction.
type Querier struct {
	db conn
}

// Store is the relational matrix store backed by Postgres.
type Store struct {
	Querier
	sqlDB *sql.DB
}

// Tx is a transaction-scoped view of the store.
type Tx struct {
	Querier
}

// New wraps an open database handle.
func New(database *sql.DB) *Store {
	return &Store{Querier: Querier{db: database}, sqlDB: database}
}

// Atomic runs fn inside one transaction. Any error rolls everything back, so
// a failed import leaves no partial state behind.
func (s *Store) Atomic(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(&Tx{Querier: Querier{db: tx}}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
