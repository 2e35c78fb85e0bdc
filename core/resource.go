package core

import "context"

type (
	// Resource is an external learning resource: a titled link tagged
	// with the topic it covers.
	Resource struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
		Link  string `json:"link"`
		Topic string `json:"topic"`
	}

	// ResourceStore defines the persistence layer for resources.
	ResourceStore interface {
		ListResources(ctx context.Context) ([]*Resource, error)
		CreateResource(ctx context.Context, resource *Resource) (int64, error)
		UpdateResource(ctx context.Context, resource *Resource) error
		DeleteResource(ctx context.Context, id int64) error
	}
)
