package sqlite

import (
	"context"

	"problemsdb-backend/core"
)

func (s *sqliteStore) ListConcepts(ctx context.Context) ([]*core.Concept, error) {
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

func (s *sqliteStore) CreateConcept(ctx context.Context, c *core.Concept) (int64, error) {
	return s.insert(ctx, "create concept",
		"INSERT INTO concepts (topic, explanationEnglish, explanationBangla, code, input, output, subTopic) VALUES (?, ?, ?, ?, ?, ?, ?)",
		c.Topic, c.ExplanationEnglish, c.ExplanationBangla, c.Code, c.Input, c.Output, c.SubTopic)
}

func (s *sqliteStore) UpdateConcept(ctx context.Context, c *core.Concept) error {
	n, err := s.exec(ctx, "update concept",
		"UPDATE concepts SET topic = ?, explanationEnglish = ?, explanationBangla = ?, code = ?, input = ?, output = ?, subTopic = ? WHERE id = ?",
		c.Topic, c.ExplanationEnglish, c.ExplanationBangla, c.Code, c.Input, c.Output, c.SubTopic, c.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) DeleteConcept(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete concept", "DELETE FROM concepts WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
