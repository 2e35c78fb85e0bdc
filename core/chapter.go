package core

import "context"

type (
	// Chapter groups topics inside a course.
	Chapter struct {
		ID       int64  `json:"id"`
		CourseID int64  `json:"course_id"`
		Name     string `json:"name"`
	}

	// ChapterStore defines the persistence layer for chapters.
	ChapterStore interface {
		ListChapters(ctx context.Context) ([]*Chapter, error)
		// ListChaptersByCourse returns the chapters of one course.
		// No matches yields an empty slice, not an error.
		ListChaptersByCourse(ctx context.Context, courseID int64) ([]*Chapter, error)
		CreateChapter(ctx context.Context, chapter *Chapter) (int64, error)
		UpdateChapter(ctx context.Context, chapter *Chapter) error
		DeleteChapter(ctx context.Context, id int64) error
	}
)
