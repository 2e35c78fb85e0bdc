package sqlite

import (
	"context"
	"database/sql"

	"problemsdb-backend/core"
)

func (s *sqliteStore) ListContents(ctx context.Context) ([]*core.Content, error) {
	return s.queryContents(ctx, "SELECT id, image, exercise, solution, topic_id FROM contents")
}

func (s *sqliteStore) ListContentsByTopic(ctx context.Context, topicID int64) ([]*core.Content, error) {
	return s.queryContents(ctx, "SELECT id, image, exercise, solution, topic_id FROM contents WHERE topic_id = ?", topicID)
}

func (s *sqliteStore) queryContents(ctx context.Context, query string, args ...any) ([]*core.Content, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &core.StorageError{Op: "list contents", Err: err}
	}
	defer rows.Close()

	contents := []*core.Content{}
	for rows.Next() {
		var c core.Content
		if err := rows.Scan(&c.ID, &c.Image, &c.Exercise, &c.Solution, &c.TopicID); err != nil {
			return nil, &core.StorageError{Op: "scan content", Err: err}
		}
		contents = append(contents, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: "list contents", Err: err}
	}
	return contents, nil
}

func (s *sqliteStore) GetContent(ctx context.Context, id int64) (*core.Content, error) {
	var c core.Content
	err := s.db.QueryRowContext(ctx, "SELECT id, image, exercise, solution, topic_id FROM contents WHERE id = ?", id).
		Scan(&c.ID, &c.Image, &c.Exercise, &c.Solution, &c.TopicID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrNotFound
		}
		return nil, &core.StorageError{Op: "get content", Err: err}
	}
	return &c, nil
}

func (s *sqliteStore) CreateContent(ctx context.Context, content *core.Content) (int64, error) {
	return s.insert(ctx, "create content",
		"INSERT INTO contents (image, exercise, solution, topic_id) VALUES (?, ?, ?, ?)",
		content.Image, content.Exercise, content.Solution, content.TopicID)
}

func (s *sqliteStore) UpdateContent(ctx context.Context, content *core.Content) error {
	var (
		n   int64
		err error
	)
	if content.Image != "" {
		n, err = s.exec(ctx, "update content",
			"UPDATE contents SET exercise = ?, solution = ?, topic_id = ?, image = ? WHERE id = ?",
			content.Exercise, content.Solution, content.TopicID, content.Image, content.ID)
	} else {
		n, err = s.exec(ctx, "update content",
			"UPDATE contents SET exercise = ?, solution = ?, topic_id = ? WHERE id = ?",
			content.Exercise, content.Solution, content.TopicID, content.ID)
	}
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) DeleteContent(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete content", "DELETE FROM contents WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
