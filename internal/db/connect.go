package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:marugo.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/marugo?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// Single writer; serializes the submission transactions that
		// postgres serializes with row locks.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const formColumns = `
  user_id BIGINT NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE,
  examination_number BIGINT NOT NULL UNIQUE,
  type TEXT NOT NULL,
  original_type TEXT NOT NULL,
  status TEXT NOT NULL,
  changed_to_regular BOOLEAN NOT NULL DEFAULT FALSE,

  name TEXT NOT NULL,
  phone_number TEXT NOT NULL,
  birthday TEXT NOT NULL,
  gender TEXT NOT NULL,

  parent_name TEXT NOT NULL,
  parent_phone_number TEXT NOT NULL,
  parent_relation TEXT NOT NULL,
  zone_code TEXT NOT NULL,
  address TEXT NOT NULL,
  detail_address TEXT NOT NULL,

  graduation_type TEXT NOT NULL,
  graduation_year TEXT NOT NULL,
  school_name TEXT,
  school_location TEXT,
  school_address TEXT,
  school_code TEXT,
  teacher_name TEXT,
  teacher_phone_number TEXT,
  teacher_mobile_phone_number TEXT,

  cover_letter TEXT NOT NULL,
  statement_of_purpose TEXT NOT NULL,

  attendance1_absence_count INTEGER,
  attendance1_lateness_count INTEGER,
  attendance1_early_leave_count INTEGER,
  attendance1_class_absence_count INTEGER,
  attendance2_absence_count INTEGER,
  attendance2_lateness_count INTEGER,
  attendance2_early_leave_count INTEGER,
  attendance2_class_absence_count INTEGER,
  attendance3_absence_count INTEGER,
  attendance3_lateness_count INTEGER,
  attendance3_early_leave_count INTEGER,
  attendance3_class_absence_count INTEGER,
  volunteer_time1 INTEGER,
  volunteer_time2 INTEGER,
  volunteer_time3 INTEGER,

  subject_grade_score DOUBLE PRECISION NOT NULL,
  third_grade_first_semester_subject_grade_score DOUBLE PRECISION,
  attendance_score INTEGER NOT NULL,
  volunteer_score INTEGER NOT NULL,
  bonus_score INTEGER NOT NULL,
  first_round_score DOUBLE PRECISION NOT NULL,

  depth_interview_score DOUBLE PRECISION,
  ncs_score DOUBLE PRECISION,
  coding_test_score DOUBLE PRECISION,
  total_score DOUBLE PRECISION,

  created_at BIGINT NOT NULL,
  updated_at BIGINT NOT NULL
`

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS users (
  user_id INTEGER PRIMARY KEY AUTOINCREMENT,
  uuid TEXT NOT NULL UNIQUE,
  phone_number TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  authority TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS forms (
  form_id INTEGER PRIMARY KEY AUTOINCREMENT,` + formColumns + `);

CREATE TABLE IF NOT EXISTS form_subjects (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  form_id INTEGER NOT NULL REFERENCES forms(form_id) ON DELETE CASCADE,
  grade INTEGER NOT NULL,
  semester INTEGER NOT NULL,
  subject_name TEXT NOT NULL,
  achievement_level TEXT NOT NULL,
  score INTEGER
);

CREATE TABLE IF NOT EXISTS examination_counters (
  band_start INTEGER PRIMARY KEY,
  last_number INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS refresh_tokens (
  user_uuid TEXT PRIMARY KEY,
  token TEXT NOT NULL,
  expires_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS notices (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  file_names TEXT NOT NULL DEFAULT '[]',
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  category TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS users (
  user_id BIGSERIAL PRIMARY KEY,
  uuid TEXT NOT NULL UNIQUE,
  phone_number TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  authority TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS forms (
  form_id BIGSERIAL PRIMARY KEY,` + formColumns + `);

CREATE TABLE IF NOT EXISTS form_subjects (
  id BIGSERIAL PRIMARY KEY,
  form_id BIGINT NOT NULL REFERENCES forms(form_id) ON DELETE CASCADE,
  grade INTEGER NOT NULL,
  semester INTEGER NOT NULL,
  subject_name TEXT NOT NULL,
  achievement_level TEXT NOT NULL,
  score INTEGER
);

CREATE TABLE IF NOT EXISTS examination_counters (
  band_start BIGINT PRIMARY KEY,
  last_number BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS refresh_tokens (
  user_uuid TEXT PRIMARY KEY,
  token TEXT NOT NULL,
  expires_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS notices (
  id BIGSERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  file_names TEXT NOT NULL DEFAULT '[]',
  created_at BIGINT NOT NULL,
  updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
  id BIGSERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  category TEXT NOT NULL,
  created_at BIGINT NOT NULL,
  updated_at BIGINT NOT NULL
);
`
