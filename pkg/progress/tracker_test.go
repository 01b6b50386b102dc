package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndPercent(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(NewMemoryStore())
	chapters := []string{"c1", "c2", "c3", "c4"}

	pct, err := tracker.PercentComplete(ctx, "u1", "premiere-pro", chapters)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)

	require.NoError(t, tracker.MarkComplete(ctx, "u1", "premiere-pro", "c1"))
	require.NoError(t, tracker.MarkComplete(ctx, "u1", "premiere-pro", "c2"))

	pct, err = tracker.PercentComplete(ctx, "u1", "premiere-pro", chapters)
	require.NoError(t, err)
	assert.Equal(t, 50, pct)
}

func TestMarkIncompleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(NewMemoryStore())
	chapters := []string{"c1", "c2", "c3"}

	require.NoError(t, tracker.MarkComplete(ctx, "u1", "course", "c1"))
	before, err := tracker.PercentComplete(ctx, "u1", "course", chapters)
	require.NoError(t, err)

	require.NoError(t, tracker.MarkComplete(ctx, "u1", "course", "c2"))
	require.NoError(t, tracker.MarkIncomplete(ctx, "u1", "course", "c2"))

	after, err := tracker.PercentComplete(ctx, "u1", "course", chapters)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMarkCompleteIdempotent(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(NewMemoryStore())

	require.NoError(t, tracker.MarkComplete(ctx, "u1", "course", "c1"))
	require.NoError(t, tracker.MarkComplete(ctx, "u1", "course", "c1"))

	pct, err := tracker.PercentComplete(ctx, "u1", "course", []string{"c1", "c2"})
	require.NoError(t, err)
	assert.Equal(t, 50, pct)
}

func TestIsCourseCompleted(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(NewMemoryStore())
	chapters := []string{"c1", "c2"}

	done, err := tracker.IsCourseCompleted(ctx, "u1", "course", chapters)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, tracker.MarkComplete(ctx, "u1", "course", "c1"))
	require.NoError(t, tracker.MarkComplete(ctx, "u1", "course", "c2"))
	// Stray extra chapter ids in the set do not block completion.
	require.NoError(t, tracker.MarkComplete(ctx, "u1", "course", "removed-chapter"))

	done, err = tracker.IsCourseCompleted(ctx, "u1", "course", chapters)
	require.NoError(t, err)
	assert.True(t, done)

	t.Run("zero chapter course is never completed", func(t *testing.T) {
		done, err := tracker.IsCourseCompleted(ctx, "u1", "empty", nil)
		require.NoError(t, err)
		assert.False(t, done)
	})
}

func TestUsersAndCoursesAreIsolated(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(NewMemoryStore())

	require.NoError(t, tracker.MarkComplete(ctx, "u1", "a", "c1"))

	pct, err := tracker.PercentComplete(ctx, "u2", "a", []string{"c1"})
	require.NoError(t, err)
	assert.Equal(t, 0, pct)

	pct, err = tracker.PercentComplete(ctx, "u1", "b", []string{"c1"})
	require.NoError(t, err)
	assert.Equal(t, 0, pct)
}
