package core

import "context"

type (
	// Course is the top of the containment hierarchy:
	// Course -> Chapter -> Topic -> Content.
	Course struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	// CourseStore defines the persistence layer for courses.
	CourseStore interface {
		ListCourses(ctx context.Context) ([]*Course, error)
		// GetCourse returns a single course, or ErrNotFound.
		GetCourse(ctx context.Context, id int64) (*Course, error)
		CreateCourse(ctx context.Context, course *Course) (int64, error)
		UpdateCourse(ctx context.Context, course *Course) error
		DeleteCourse(ctx context.Context, id int64) error
	}
)
