package sqlite

import (
	"context"

	"problemsdb-backend/core"
)

func (s *sqliteStore) ListResources(ctx context.Context) ([]*core.Resource, error) {
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

func (s *sqliteStore) CreateResource(ctx context.Context, res *core.Resource) (int64, error) {
	return s.insert(ctx, "create resource",
		"INSERT INTO resources (title, link, topic) VALUES (?, ?, ?)",
		res.Title, res.Link, res.Topic)
}

func (s *sqliteStore) UpdateResource(ctx context.Context, res *core.Resource) error {
	n, err := s.exec(ctx, "update resource",
		"UPDATE resources SET title = ?, link = ?, topic = ? WHERE id = ?",
		res.Title, res.Link, res.Topic, res.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) DeleteResource(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete resource", "DELETE FROM resources WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
