package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// opTimeout bounds a single store call so a stalled database delays one
// response instead of holding a handler forever.
const opTimeout = 5 * time.Second

// PostgresStore keeps user records in a Postgres users table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a Postgres connection for the given DSN, verifies it
// with a ping and creates the users table if needed.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store migrate: %w", err)
	}

	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id         UUID PRIMARY KEY,
			email      TEXT NOT NULL UNIQUE,
			is_premium BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// FindByEmail returns the user for the given email, or nil if absent.
// It returns an error only for database failures, not for missing rows.
func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, is_premium, created_at, updated_at
		FROM users WHERE email = $1
	`, email)

	var u User
	err := row.Scan(&u.ID, &u.Email, &u.IsPremium, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// UpsertPremium creates the record for email with the given premium flag, or
// updates only the flag if the record already exists. The insert-or-update is
// a single statement so concurrent writes to the same email cannot interleave
// into a lost update or a duplicate row.
func (s *PostgresStore) UpsertPremium(ctx context.Context, email string, premium bool) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, is_premium)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
			SET is_premium = EXCLUDED.is_premium, updated_at = now()
		RETURNING id, email, is_premium, created_at, updated_at
	`, uuid.NewString(), email, premium)

	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.IsPremium, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}
