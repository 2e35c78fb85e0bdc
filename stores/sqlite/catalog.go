package sqlite

import (
	"context"
	"database/sql"

	"problemsdb-backend/core"
)

// Courses, chapters and topics form the containment hierarchy above
// contents; their statements are grouped here.

func (s *sqliteStore) ListCourses(ctx context.Context) ([]*core.Course, error) {
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

func (s *sqliteStore) GetCourse(ctx context.Context, id int64) (*core.Course, error) {
	var c core.Course
	err := s.db.QueryRowContext(ctx, "SELECT id, name FROM courses WHERE id = ?", id).Scan(&c.ID, &c.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrNotFound
		}
		return nil, &core.StorageError{Op: "get course", Err: err}
	}
	return &c, nil
}

func (s *sqliteStore) CreateCourse(ctx context.Context, c *core.Course) (int64, error) {
	return s.insert(ctx, "create course", "INSERT INTO courses (name) VALUES (?)", c.Name)
}

func (s *sqliteStore) UpdateCourse(ctx context.Context, c *core.Course) error {
	n, err := s.exec(ctx, "update course", "UPDATE courses SET name = ? WHERE id = ?", c.Name, c.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) DeleteCourse(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete course", "DELETE FROM courses WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) ListChapters(ctx context.Context) ([]*core.Chapter, error) {
	return s.queryChapters(ctx, "SELECT id, course_id, name FROM chapters")
}

func (s *sqliteStore) ListChaptersByCourse(ctx context.Context, courseID int64) ([]*core.Chapter, error) {
	return s.queryChapters(ctx, "SELECT id, course_id, name FROM chapters WHERE course_id = ?", courseID)
}

func (s *sqliteStore) queryChapters(ctx context.Context, query string, args ...any) ([]*core.Chapter, error) {
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

func (s *sqliteStore) CreateChapter(ctx context.Context, c *core.Chapter) (int64, error) {
	return s.insert(ctx, "create chapter",
		"INSERT INTO chapters (course_id, name) VALUES (?, ?)", c.CourseID, c.Name)
}

func (s *sqliteStore) UpdateChapter(ctx context.Context, c *core.Chapter) error {
	n, err := s.exec(ctx, "update chapter",
		"UPDATE chapters SET course_id = ?, name = ? WHERE id = ?", c.CourseID, c.Name, c.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) DeleteChapter(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete chapter", "DELETE FROM chapters WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) ListTopics(ctx context.Context) ([]*core.Topic, error) {
	return s.queryTopics(ctx, "SELECT id, chapter_id, name, explanation FROM topics")
}

func (s *sqliteStore) ListTopicsByChapter(ctx context.Context, chapterID int64) ([]*core.Topic, error) {
	return s.queryTopics(ctx, "SELECT id, chapter_id, name, explanation FROM topics WHERE chapter_id = ?", chapterID)
}

func (s *sqliteStore) queryTopics(ctx context.Context, query string, args ...any) ([]*core.Topic, error) {
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

func (s *sqliteStore) CreateTopic(ctx context.Context, t *core.Topic) (int64, error) {
	return s.insert(ctx, "create topic",
		"INSERT INTO topics (chapter_id, name, explanation) VALUES (?, ?, ?)",
		t.ChapterID, t.Name, t.Explanation)
}

func (s *sqliteStore) UpdateTopic(ctx context.Context, t *core.Topic) error {
	n, err := s.exec(ctx, "update topic",
		"UPDATE topics SET chapter_id = ?, name = ?, explanation = ? WHERE id = ?",
		t.ChapterID, t.Name, t.Explanation, t.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) DeleteTopic(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete topic", "DELETE FROM topics WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
