package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-engine/internal/config"
)

type Storage struct {
	DB   *sql.DB
	exec bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}
	return FromDB(db), nil
}

// FromDB wraps an already opened lib/pq handle.
func FromDB(db *sql.DB) *Storage {
	return &Storage{
		DB:   db,
		exec: bob.NewDB(db),
	}
}

// Read returns readers running outside any transaction.
func (s *Storage) Read() *Reader {
	return NewReader(s.exec)
}

// Write opens a transaction. The caller must Commit or Rollback the result.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
