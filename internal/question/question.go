package question

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound        = errors.New("question not found")
	ErrInvalidCategory = errors.New("invalid question category")
)

// Category buckets the FAQ entries.
type Category string

const (
	CategoryTopQuestion      Category = "TOP_QUESTION"
	CategoryAdmissionProcess Category = "ADMISSION_PROCESS"
	CategorySchoolLife       Category = "SCHOOL_LIFE"
	CategorySubmitDocument   Category = "SUBMIT_DOCUMENT"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryTopQuestion, CategoryAdmissionProcess, CategorySchoolLife, CategorySubmitDocument:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

type Question struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  Category `json:"category"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}

type Store interface {
	Create(ctx context.Context, title, content string, category Category) (int64, error)
	Update(ctx context.Context, id int64, title, content string, category Category) error
	Get(ctx context.Context, id int64) (*Question, error)
	List(ctx context.Context, category *Category) ([]Question, error)
	Delete(ctx context.Context, id int64) error
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Create(ctx context.Context, title, content string, category Category) (int64, error) {
	now := time.Now().Unix()
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO questions (title, content, category, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		title, content, string(category), now, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

func (s *SQLStore) Update(ctx context.Context, id int64, title, content string, category Category) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE questions SET title=$1, content=$2, category=$3, updated_at=$4 WHERE id=$5`,
		title, content, string(category), time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (*Question, error) {
	var q Question
	var category string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, category, created_at, updated_at FROM questions WHERE id=$1`, id).
		Scan(&q.ID, &q.Title, &q.Content, &category, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch question: %w", err)
	}
	q.Category = Category(category)
	return &q, nil
}

func (s *SQLStore) List(ctx context.Context, category *Category) ([]Question, error) {
	var rows *sql.Rows
	var err error
	if category == nil {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, content, category, created_at, updated_at FROM questions ORDER BY id DESC`)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, content, category, created_at, updated_at FROM questions WHERE category=$1 ORDER BY id DESC`,
			string(*category))
	}
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		var cat string
		if err := rows.Scan(&q.ID, &q.Title, &q.Content, &cat, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Category = Category(cat)
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
