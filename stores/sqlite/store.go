package sqlite

import (
	"context"
	"database/sql"
	"log"

	"problemsdb-backend/core"

	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	db *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS problems (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT NOT NULL,
		Link TEXT NOT NULL,
		Type TEXT NOT NULL,
		TopicName TEXT NOT NULL,
		Explanation TEXT NOT NULL DEFAULT '',
		Code TEXT NOT NULL DEFAULT '',
		Video_link TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS concepts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		topic TEXT NOT NULL,
		explanationEnglish TEXT NOT NULL DEFAULT '',
		explanationBangla TEXT NOT NULL DEFAULT '',
		code TEXT NOT NULL DEFAULT '',
		input TEXT NOT NULL DEFAULT '',
		output TEXT NOT NULL DEFAULT '',
		subTopic TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS resources (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		link TEXT NOT NULL,
		topic TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS courses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS chapters (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id INTEGER NOT NULL,
		name TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS topics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		chapter_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		explanation TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS contents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		image TEXT NOT NULL DEFAULT '',
		exercise TEXT NOT NULL,
		solution TEXT NOT NULL,
		topic_id INTEGER NOT NULL
	);`,
}

// NewStore creates a new SQLite-based store.
func NewStore(dataSourceName string) *sqliteStore {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}
	// Same connection limit the production MySQL pool ran with.
	db.SetMaxOpenConns(10)

	for _, stmt := range schema {
		if _, err = db.Exec(stmt); err != nil {
			log.Fatalf("failed to initialize schema: %v", err)
		}
	}

	return &sqliteStore{db}
}

func (s *sqliteStore) Close() error { return s.db.Close() }

// exec runs a statement and reports how many rows it touched.
func (s *sqliteStore) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
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

// insert runs an INSERT and returns the generated row id.
func (s *sqliteStore) insert(ctx context.Context, op, query string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, &core.StorageError{Op: op, Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &core.StorageError{Op: op, Err: err}
	}
	return id, nil
}
