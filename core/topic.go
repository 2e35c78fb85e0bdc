package core

import "context"

type (
	// Topic groups contents inside a chapter.
	Topic struct {
		ID          int64  `json:"id"`
		ChapterID   int64  `json:"chapter_id"`
		Name        string `json:"name"`
		Explanation string `json:"explanation"`
	}

	// TopicStore defines the persistence layer for topics.
	TopicStore interface {
		ListTopics(ctx context.Context) ([]*Topic, error)
		// ListTopicsByChapter returns the topics of one chapter.
		// No matches yields an empty slice, not an error.
		ListTopicsByChapter(ctx context.Context, chapterID int64) ([]*Topic, error)
		CreateTopic(ctx context.Context, topic *Topic) (int64, error)
		UpdateTopic(ctx context.Context, topic *Topic) error
		DeleteTopic(ctx context.Context, id int64) error
	}
)
