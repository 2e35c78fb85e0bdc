package memory

import (
	"context"
	"testing"

	"problemsdb-backend/core"

	"github.com/stretchr/testify/require"
)

func TestCopySemantics(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	problem := &core.Problem{Name: "Two Sum", Link: "l", Type: "Easy", TopicName: "Arrays"}
	id, err := store.CreateProblem(ctx, problem)
	require.NoError(t, err)

	// Mutating the caller's struct after Create must not leak into the store.
	problem.Name = "mutated"

	problems, err := store.ListProblems(ctx)
	require.NoError(t, err)
	require.Len(t, problems, 1)
	require.Equal(t, id, problems[0].ID)
	require.Equal(t, "Two Sum", problems[0].Name)
}

func TestNotFound(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.ErrorIs(t, store.UpdateProblem(ctx, &core.Problem{ID: 1}), core.ErrNotFound)
	require.ErrorIs(t, store.DeleteTopic(ctx, 1), core.ErrNotFound)
	_, err := store.GetCourse(ctx, 1)
	require.ErrorIs(t, err, core.ErrNotFound)
	_, err = store.GetContent(ctx, 1)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestListFiltersAreNonNil(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	chapters, err := store.ListChaptersByCourse(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, chapters)
	require.Empty(t, chapters)

	topics, err := store.ListTopicsByChapter(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, topics)
	require.Empty(t, topics)

	contents, err := store.ListContentsByTopic(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, contents)
	require.Empty(t, contents)
}

func TestUpdateContentKeepsImageWhenOmitted(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.CreateContent(ctx, &core.Content{Image: "image_1.png", Exercise: "e", Solution: "s", TopicID: 1})
	require.NoError(t, err)

	require.NoError(t, store.UpdateContent(ctx, &core.Content{ID: id, Exercise: "e2", Solution: "s2", TopicID: 1}))

	got, err := store.GetContent(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "image_1.png", got.Image)
	require.Equal(t, "e2", got.Exercise)

	require.NoError(t, store.UpdateContent(ctx, &core.Content{ID: id, Exercise: "e3", Solution: "s3", TopicID: 1, Image: "image_2.png"}))

	got, err = store.GetContent(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "image_2.png", got.Image)
}
