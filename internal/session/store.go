// Package session persists the auth token between invocations. It is
// the only durable state the client keeps; everything else lives
// server-side.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/himalayanmicrofin/hmfin/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Session is the logged-in user's snapshot, written at login and
// cleared at logout.
type Session struct {
	SavedAt time.Time
	Token   string
	Phone   string
	Name    string
	Role    string
	UserID  int64
}

// Store keeps the session in a local SQLite database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if necessary) the session database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: session path is empty", common.ErrInvalidConfig)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping session database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Migrate creates the session table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT '',
			user_id INTEGER NOT NULL DEFAULT 0,
			saved_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create session table: %w", err)
	}
	return nil
}

// Save stores the session, replacing any previous one.
func (s *Store) Save(ctx context.Context, sess Session) error {
	if sess.Token == "" {
		return fmt.Errorf("cannot save session without a token")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, token, phone, name, role, user_id, saved_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			phone = excluded.phone,
			name = excluded.name,
			role = excluded.role,
			user_id = excluded.user_id,
			saved_at = excluded.saved_at`,
		sess.Token, sess.Phone, sess.Name, sess.Role, sess.UserID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the saved session, or common.ErrNotLoggedIn when none
// exists.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	var sess Session
	err := s.db.QueryRowContext(ctx, `
		SELECT token, phone, name, role, user_id, saved_at
		FROM session WHERE id = 1`).
		Scan(&sess.Token, &sess.Phone, &sess.Name, &sess.Role, &sess.UserID, &sess.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &sess, nil
}

// Clear removes the saved session. Clearing an empty store is not an
// error.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
