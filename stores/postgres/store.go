package postgres

import (
	"context"
	"database/sql"
	"log"

	"problemsdb-backend/core"

	_ "github.com/lib/pq"
)

type pgStore struct {
	db *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS problems (
		id SERIAL PRIMARY KEY,
		Name TEXT NOT NULL,
		Link TEXT NOT NULL,
		Type TEXT NOT NULL,
		TopicName TEXT NOT NULL,
		Explanation TEXT NOT NULL DEFAULT '',
		Code TEXT NOT NULL DEFAULT '',
		Video_link TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS concepts (
		id SERIAL PRIMARY KEY,
		topic TEXT NOT NULL,
		explanationEnglish TEXT NOT NULL DEFAULT '',
		explanationBangla TEXT NOT NULL DEFAULT '',
		code TEXT NOT NULL DEFAULT '',
		input TEXT NOT NULL DEFAULT '',
		output TEXT NOT NULL DEFAULT '',
		subTopic TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS resources (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		link TEXT NOT NULL,
		topic TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS courses (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS chapters (
		id SERIAL PRIMARY KEY,
		course_id INTEGER NOT NULL,
		name TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS topics (
		id SERIAL PRIMARY KEY,
		chapter_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		explanation TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS contents (
		id SERIAL PRIMARY KEY,
		image TEXT NOT NULL DEFAULT '',
		exercise TEXT NOT NULL,
		solution TEXT NOT NULL,
		topic_id INTEGER NOT NULL
	);`,
}

// NewStore creates a new Postgres-based store.
func NewStore(dbURL string) *pgStore {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to open postgres database: %v", err)
	}
	db.SetMaxOpenConns(10)

	for _, stmt := range schema {
		if _, err = db.Exec(stmt); err != nil {
			log.Fatalf("failed to initialize schema: %v", err)
		}
	}

	return &pgStore{db}
}

func (s *pgStore) Close() error { return s.db.Close() }

// exec runs a statement and reports how many rows it touched.
func (s *pgStore) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, &core.StorageError{Op: op, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &core.StorageError{Op: op, Err: err}
	}
	return n, nil
}

// insert runs an INSERT ... RETURNING id and returns the generated id.
// lib/pq does not support LastInsertId, so inserts go through QueryRow.
func (s *pgStore) insert(ctx context.Context, op, query string, args ...any) (int64, error) {
	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, &core.StorageError{Op: op, Err: err}
	}
	return id, nil
}
