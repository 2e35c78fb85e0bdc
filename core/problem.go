package core

import "context"

type (
	// Problem is a practice problem referenced by link. The JSON keys
	// are capitalized because the frontend consumes the rows exactly as
	// the database columns are named.
	Problem struct {
		ID          int64  `json:"id"`
		Name        string `json:"Name"`
		Link        string `json:"Link"`
		Type        string `json:"Type"`
		TopicName   string `json:"TopicName"`
		Explanation string `json:"Explanation"`
		Code        string `json:"Code"`
		VideoLink   string `json:"Video_link"`
	}

	// ProblemStore defines the persistence layer for problems.
	ProblemStore interface {
		ListProblems(ctx context.Context) ([]*Problem, error)
		CreateProblem(ctx context.Context, problem *Problem) (int64, error)
		// UpdateProblem overwrites every mutable field and returns
		// ErrNotFound when no row matched.
		UpdateProblem(ctx context.Context, problem *Problem) error
		DeleteProblem(ctx context.Context, id int64) error
	}
)
