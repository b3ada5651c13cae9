package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Store interface {
	Create(ctx context.Context, u *User) error
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (*User, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Create(ctx context.Context, u *User) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (uuid, phone_number, name, password_hash, authority, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING user_id`,
		u.UUID.String(), u.PhoneNumber, u.Name, u.PasswordHash, string(u.Authority), time.Now().Unix(),
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *SQLStore) FindByPhone(ctx context.Context, phone string) (*User, error) {
	return s.findBy(ctx, `SELECT user_id, uuid, phone_number, name, password_hash, authority
		FROM users WHERE phone_number=$1`, phone)
}

func (s *SQLStore) FindByUUID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.findBy(ctx, `SELECT user_id, uuid, phone_number, name, password_hash, authority
		FROM users WHERE uuid=$1`, id.String())
}

func (s *SQLStore) findBy(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	var rawUUID, authority string
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &rawUUID, &u.PhoneNumber, &u.Name, &u.PasswordHash, &authority)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	u.UUID, err = uuid.Parse(rawUUID)
	if err != nil {
		return nil, fmt.Errorf("parse user uuid: %w", err)
	}
	u.Authority = Authority(authority)
	return &u, nil
}

func (s *SQLStore) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE phone_number=$1)`, phone).Scan(&exists)
	return exists, err
}

func (s *SQLStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE uuid=$1`, id.String())
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
