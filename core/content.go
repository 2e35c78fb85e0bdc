package core

import "context"

type (
	// Content is one uploaded teaching artifact: an exercise/solution
	// pair scoped to a topic, with the stored filename of its image.
	// Image holds only the filename, not a path; the image store knows
	// where the bytes live.
	Content struct {
		ID       int64  `json:"id"`
		Image    string `json:"image,omitempty"`
		Exercise string `json:"exercise"`
		Solution string `json:"solution"`
		TopicID  int64  `json:"topic_id"`
	}

	// ContentStore defines the persistence layer for contents.
	ContentStore interface {
		// ListContents returns every content row in natural storage order.
		ListContents(ctx context.Context) ([]*Content, error)

		// ListContentsByTopic returns the contents belonging to one
		// topic. No matches yields an empty slice, not an error.
		ListContentsByTopic(ctx context.Context, topicID int64) ([]*Content, error)

		// GetContent returns a single content row, or ErrNotFound.
		GetContent(ctx context.Context, id int64) (*Content, error)

		// CreateContent inserts a row and returns the assigned id.
		CreateContent(ctx context.Context, content *Content) (int64, error)

		// UpdateContent overwrites exercise, solution and topic_id.
		// The image filename is replaced only when content.Image is
		// non-empty; otherwise the stored one is kept. Returns
		// ErrNotFound when no row matched.
		UpdateContent(ctx context.Context, content *Content) error

		// DeleteContent removes a row, or ErrNotFound.
		DeleteContent(ctx context.Context, id int64) error
	}
)
