package postgres

import (
	"context"

	"problemsdb-backend/core"
)

// Problems, concepts and resources are independent flat entities; their
// statements are grouped here.

func (s *pgStore) ListProblems(ctx context.Context) ([]*core.Problem, error) {
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

func (s *pgStore) CreateProblem(ctx context.Context, p *core.Problem) (int64, error) {
	return s.insert(ctx, "create problem",
		"INSERT INTO problems (Name, Link, Type, TopicName, Explanation, Code, Video_link) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		p.Name, p.Link, p.Type, p.TopicName, p.Explanation, p.Code, p.VideoLink)
}

func (s *pgStore) UpdateProblem(ctx context.Context, p *core.Problem) error {
	n, err := s.exec(ctx, "update problem",
		"UPDATE problems SET Name = $1, Link = $2, Type = $3, TopicName = $4, Explanation = $5, Code = $6, Video_link = $7 WHERE id = $8",
		p.Name, p.Link, p.Type, p.TopicName, p.Explanation, p.Code, p.VideoLink, p.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteProblem(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete problem", "DELETE FROM problems WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) ListConcepts(ctx context.Context) ([]*core.Concept, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, topic, explanationEnglish, explanationBangla, code, input, output, subTopic FROM concepts")
	if err != nil {
		return nil, &core.StorageError{Op: "list concepts", Err: err}
	}
	defer rows.Close()

	concepts := []*core.Concept{}
	for rows.Next() {
		var c core.Concept
		if err := rows.Scan(&c.ID, &c.Topic, &c.ExplanationEnglish, &c.ExplanationBangla, &c.Code, &c.Input, &c.Output, &c.SubTopic); err != nil {
			return nil, &core.StorageError{Op: "scan concept", Err: err}
		}
		concepts = append(concepts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: "list concepts", Err: err}
	}
	return concepts, nil
}

func (s *pgStore) CreateConcept(ctx context.Context, c *core.Concept) (int64, error) {
	return s.insert(ctx, "create concept",
		"INSERT INTO concepts (topic, explanationEnglish, explanationBangla, code, input, output, subTopic) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		c.Topic, c.ExplanationEnglish, c.ExplanationBangla, c.Code, c.Input, c.Output, c.SubTopic)
}

func (s *pgStore) UpdateConcept(ctx context.Context, c *core.Concept) error {
	n, err := s.exec(ctx, "update concept",
		"UPDATE concepts SET topic = $1, explanationEnglish = $2, explanationBangla = $3, code = $4, input = $5, output = $6, subTopic = $7 WHERE id = $8",
		c.Topic, c.ExplanationEnglish, c.ExplanationBangla, c.Code, c.Input, c.Output, c.SubTopic, c.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteConcept(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete concept", "DELETE FROM concepts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) ListResources(ctx context.Context) ([]*core.Resource, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title, link, topic FROM resources")
	if err != nil {
		return nil, &core.StorageError{Op: "list resources", Err: err}
	}
	defer rows.Close()

	resources := []*core.Resource{}
	for rows.Next() {
		var res core.Resource
		if err := rows.Scan(&res.ID, &res.Title, &res.Link, &res.Topic); err != nil {
			return nil, &core.StorageError{Op: "scan resource", Err: err}
		}
		resources = append(resources, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: "list resources", Err: err}
	}
	return resources, nil
}

func (s *pgStore) CreateResource(ctx context.Context, res *core.Resource) (int64, error) {
	return s.insert(ctx, "create resource",
		"INSERT INTO resources (title, link, topic) VALUES ($1, $2, $3) RETURNING id",
		res.Title, res.Link, res.Topic)
}

func (s *pgStore) UpdateResource(ctx context.Context, res *core.Resource) error {
	n, err := s.exec(ctx, "update resource",
		"UPDATE resources SET title = $1, link = $2, topic = $3 WHERE id = $4",
		res.Title, res.Link, res.Topic, res.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteResource(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete resource", "DELETE FROM resources WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
