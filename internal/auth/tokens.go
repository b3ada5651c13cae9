package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNoRefreshToken = errors.New("no refresh token on file")

// TokenStore persists one refresh token per account, so a stolen
// refresh token dies as soon as the owner logs in or refreshes again.
type TokenStore interface {
	Save(ctx context.Context, sub uuid.UUID, token string, ttl time.Duration) error
	Get(ctx context.Context, sub uuid.UUID) (string, error)
	Delete(ctx context.Context, sub uuid.UUID) error
}

type SQLTokenStore struct {
	db *sql.DB
}

func NewSQLTokenStore(db *sql.DB) *SQLTokenStore { return &SQLTokenStore{db: db} }

func (s *SQLTokenStore) Save(ctx context.Context, sub uuid.UUID, token string, ttl time.Duration) error {
	expires := time.Now().Add(ttl).Unix()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (user_uuid, token, expires_at) VALUES ($1,$2,$3)
		 ON CONFLICT (user_uuid) DO UPDATE SET token=EXCLUDED.token, expires_at=EXCLUDED.expires_at`,
		sub.String(), token, expires)
	if err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (s *SQLTokenStore) Get(ctx context.Context, sub uuid.UUID) (string, error) {
	var token string
	var expires int64
	err := s.db.QueryRowContext(ctx,
		`SELECT token, expires_at FROM refresh_tokens WHERE user_uuid=$1`, sub.String()).
		Scan(&token, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoRefreshToken
	}
	if err != nil {
		return "", fmt.Errorf("fetch refresh token: %w", err)
	}
	if time.Now().Unix() > expires {
		return "", ErrNoRefreshToken
	}
	return token, nil
}

func (s *SQLTokenStore) Delete(ctx context.Context, sub uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE user_uuid=$1`, sub.String())
	return err
}
