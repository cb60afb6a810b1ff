package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/fintrack/internal/config"
)

type Storage struct {
	DB     *sql.DB
	exec   bob.DB
	Reader *Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened *sql.DB.
func NewStorageFromDB(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:     db,
		exec:   exec,
		Reader: NewReader(exec),
	}
}

// Write begins a transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: begin: %w", err)
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
