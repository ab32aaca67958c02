package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lestari-app/lestari-bot/internal/session"
)

// SessionStore persists one backend access token per WhatsApp user.
// Tokens survive restarts and are cleared on logout or when the backend
// rejects them.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) InitTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS sessions (
			user_id TEXT PRIMARY KEY,
			access_token TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

func (s *SessionStore) Token(ctx context.Context, userID string) (string, error) {
	query := `SELECT access_token FROM sessions WHERE user_id = ?`
	var token string
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionStore) Save(ctx context.Context, userID, token string) error {
	query := `
		INSERT INTO sessions (user_id, access_token, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			access_token = excluded.access_token,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query, userID, token, time.Now().Format(time.RFC3339))
	return err
}

func (s *SessionStore) Clear(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

// ForUser binds the store to a single user, yielding the session.Store
// the gateway client expects.
func (s *SessionStore) ForUser(userID string) session.Store {
	return &userSession{store: s, userID: userID}
}

type userSession struct {
	store  *SessionStore
	userID string
}

func (u *userSession) Token(ctx context.Context) (string, error) {
	return u.store.Token(ctx, u.userID)
}

func (u *userSession) Save(ctx context.Context, token string) error {
	return u.store.Save(ctx, u.userID, token)
}

func (u *userSession) Clear(ctx context.Context) error {
	return u.store.Clear(ctx, u.userID)
}
