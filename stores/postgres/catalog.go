package postgres

import (
	"context"
	"database/sql"

	"problemsdb-backend/core"
)

func (s *pgStore) ListCourses(ctx context.Context) ([]*core.Course, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM courses")
	if err != nil {
		return nil, &core.StorageError{Op: "list courses", Err: err}
	}
	defer rows.Close()

	courses := []*core.Course{}
	for rows.Next() {
		var c core.Course
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, &core.StorageError{Op: "scan course", Err: err}
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: "list courses", Err: err}
	}
	return courses, nil
}

func (s *pgStore) GetCourse(ctx context.Context, id int64) (*core.Course, error) {
	var c core.Course
	err := s.db.QueryRowContext(ctx, "SELECT id, name FROM courses WHERE id = $1", id).Scan(&c.ID, &c.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrNotFound
		}
		return nil, &core.StorageError{Op: "get course", Err: err}
	}
	return &c, nil
}

func (s *pgStore) CreateCourse(ctx context.Context, c *core.Course) (int64, error) {
	return s.insert(ctx, "create course", "INSERT INTO courses (name) VALUES ($1) RETURNING id", c.Name)
}

func (s *pgStore) UpdateCourse(ctx context.Context, c *core.Course) error {
	n, err := s.exec(ctx, "update course", "UPDATE courses SET name = $1 WHERE id = $2", c.Name, c.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteCourse(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete course", "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) ListChapters(ctx context.Context) ([]*core.Chapter, error) {
	return s.queryChapters(ctx, "SELECT id, course_id, name FROM chapters")
}

func (s *pgStore) ListChaptersByCourse(ctx context.Context, courseID int64) ([]*core.Chapter, error) {
	return s.queryChapters(ctx, "SELECT id, course_id, name FROM chapters WHERE course_id = $1", courseID)
}

func (s *pgStore) queryChapters(ctx context.Context, query string, args ...any) ([]*core.Chapter, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &core.StorageError{Op: "list chapters", Err: err}
	}
	defer rows.Close()

	chapters := []*core.Chapter{}
	for rows.Next() {
		var c core.Chapter
		if err := rows.Scan(&c.ID, &c.CourseID, &c.Name); err != nil {
			return nil, &core.StorageError{Op: "scan chapter", Err: err}
		}
		chapters = append(chapters, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: "list chapters", Err: err}
	}
	return chapters, nil
}

func (s *pgStore) CreateChapter(ctx context.Context, c *core.Chapter) (int64, error) {
	return s.insert(ctx, "create chapter",
		"INSERT INTO chapters (course_id, name) VALUES ($1, $2) RETURNING id", c.CourseID, c.Name)
}

func (s *pgStore) UpdateChapter(ctx context.Context, c *core.Chapter) error {
	n, err := s.exec(ctx, "update chapter",
		"UPDATE chapters SET course_id = $1, name = $2 WHERE id = $3", c.CourseID, c.Name, c.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteChapter(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete chapter", "DELETE FROM chapters WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) ListTopics(ctx context.Context) ([]*core.Topic, error) {
	return s.queryTopics(ctx, "SELECT id, chapter_id, name, explanation FROM topics")
}

func (s *pgStore) ListTopicsByChapter(ctx context.Context, chapterID int64) ([]*core.Topic, error) {
	return s.queryTopics(ctx, "SELECT id, chapter_id, name, explanation FROM topics WHERE chapter_id = $1", chapterID)
}

func (s *pgStore) queryTopics(ctx context.Context, query string, args ...any) ([]*core.Topic, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &core.StorageError{Op: "list topics", Err: err}
	}
	defer rows.Close()

	topics := []*core.Topic{}
	for rows.Next() {
		var t core.Topic
		if err := rows.Scan(&t.ID, &t.ChapterID, &t.Name, &t.Explanation); err != nil {
			return nil, &core.StorageError{Op: "scan topic", Err: err}
		}
		topics = append(topics, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: "list topics", Err: err}
	}
	return topics, nil
}

func (s *pgStore) CreateTopic(ctx context.Context, t *core.Topic) (int64, error) {
	return s.insert(ctx, "create topic",
		"INSERT INTO topics (chapter_id, name, explanation) VALUES ($1, $2, $3) RETURNING id",
		t.ChapterID, t.Name, t.Explanation)
}

func (s *pgStore) UpdateTopic(ctx context.Context, t *core.Topic) error {
	n, err := s.exec(ctx, "update topic",
		"UPDATE topics SET chapter_id = $1, name = $2, explanation = $3 WHERE id = $4",
		t.ChapterID, t.Name, t.Explanation, t.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteTopic(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete topic", "DELETE FROM topics WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
