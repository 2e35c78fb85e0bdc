package sqlite

import (
	"context"

	"problemsdb-backend/core"
)

func (s *sqliteStore) ListProblems(ctx context.Context) ([]*core.Problem, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, Name, Link, Type, TopicName, Explanation, Code, Video_link FROM problems")
	if err != nil {
		return nil, &core.StorageError{Op: "list problems", Err: err}
	}
	defer rows.Close()

	problems := []*core.Problem{}
	for rows.Next() {
		var p core.Problem
		if err := rows.Scan(&p.ID, &p.Name, &p.Link, &p.Type, &p.TopicName, &p.Explanation, &p.Code, &p.VideoLink); err != nil {
			return nil, &core.StorageError{Op: "scan problem", Err: err}
		}
		problems = append(problems, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: "list problems", Err: err}
	}
	return problems, nil
}

func (s *sqliteStore) CreateProblem(ctx context.Context, p *core.Problem) (int64, error) {
	return s.insert(ctx, "create problem",
		"INSERT INTO problems (Name, Link, Type, TopicName, Explanation, Code, Video_link) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.Name, p.Link, p.Type, p.TopicName, p.Explanation, p.Code, p.VideoLink)
}

func (s *sqliteStore) UpdateProblem(ctx context.Context, p *core.Problem) error {
	n, err := s.exec(ctx, "update problem",
		"UPDATE problems SET Name = ?, Link = ?, Type = ?, TopicName = ?, Explanation = ?, Code = ?, Video_link = ? WHERE id = ?",
		p.Name, p.Link, p.Type, p.TopicName, p.Explanation, p.Code, p.VideoLink, p.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) DeleteProblem(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete problem", "DELETE FROM problems WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
