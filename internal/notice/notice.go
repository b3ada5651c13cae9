package notice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("notice not found")

type Notice struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	FileNames []string `json:"file_names"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}

// Summary is the list view: no content body, no file list.
type Summary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	UpdatedAt int64  `json:"updated_at"`
}

type Store interface {
	Create(ctx context.Context, title, content string, fileNames []string) (int64, error)
	Update(ctx context.Context, id int64, title, content string, fileNames []string) error
	Get(ctx context.Context, id int64) (*Notice, error)
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, id int64) error
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Create(ctx context.Context, title, content string, fileNames []string) (int64, error) {
	files, err := encodeFiles(fileNames)
	if err != nil {
		return 0, err
	}
	now := time.Now().Unix()
	var id int64
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO notices (title, content, file_names, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		title, content, files, now, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert notice: %w", err)
	}
	return id, nil
}

func (s *SQLStore) Update(ctx context.Context, id int64, title, content string, fileNames []string) error {
	files, err := encodeFiles(fileNames)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE notices SET title=$1, content=$2, file_names=$3, updated_at=$4 WHERE id=$5`,
		title, content, files, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("update notice: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (*Notice, error) {
	var n Notice
	var files string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, file_names, created_at, updated_at FROM notices WHERE id=$1`, id).
		Scan(&n.ID, &n.Title, &n.Content, &files, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch notice: %w", err)
	}
	if err := json.Unmarshal([]byte(files), &n.FileNames); err != nil {
		n.FileNames = nil
	}
	return &n, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, updated_at FROM notices ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan notice: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notices WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeFiles(fileNames []string) (string, error) {
	if fileNames == nil {
		fileNames = []string{}
	}
	buf, err := json.Marshal(fileNames)
	if err != nil {
		return "", fmt.Errorf("encode file names: %w", err)
	}
	return string(buf), nil
}
