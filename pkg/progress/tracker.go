package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Tracker maintains per-user, per-course completion sets encoded as JSON
// arrays of chapter ids, one key per course.
type Tracker struct {
	store Store
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// key matches the legacy browser-storage scheme, namespaced per user now
// that the set lives server side.
func key(userId, courseId string) string {
	return fmt.Sprintf("progress:%s:course_progress_%s", userId, courseId)
}

func (t *Tracker) load(ctx context.Context, userId, courseId string) (map[string]struct{}, error) {
	raw, found, err := t.store.Get(ctx, key(userId, courseId))
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{})
	if !found {
		return set, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// A corrupt cache entry resets progress rather than failing the call.
		return set, nil
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (t *Tracker) save(ctx context.Context, userId, courseId string, set map[string]struct{}) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return t.store.Set(ctx, key(userId, courseId), string(raw))
}

func (t *Tracker) MarkComplete(ctx context.Context, userId, courseId, chapterId string) error {
	set, err := t.load(ctx, userId, courseId)
	if err != nil {
		return err
	}
	set[chapterId] = struct{}{}
	return t.save(ctx, userId, courseId, set)
}

func (t *Tracker) MarkIncomplete(ctx context.Context, userId, courseId, chapterId string) error {
	set, err := t.load(ctx, userId, courseId)
	if err != nil {
		return err
	}
	delete(set, chapterId)
	return t.save(ctx, userId, courseId, set)
}

// CompletedChapters returns the stored completion set for the course.
func (t *Tracker) CompletedChapters(ctx context.Context, userId, courseId string) (map[string]struct{}, error) {
	return t.load(ctx, userId, courseId)
}

// PercentComplete computes completion against the full chapter list of the
// course, rounded for display. Chapters marked complete that no longer exist
// in the course do not count.
func (t *Tracker) PercentComplete(ctx context.Context, userId, courseId string, allChapterIds []string) (int, error) {
	if len(allChapterIds) == 0 {
		return 0, nil
	}
	set, err := t.load(ctx, userId, courseId)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, id := range allChapterIds {
		if _, ok := set[id]; ok {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(allChapterIds)) * 100)), nil
}

// IsCourseCompleted reports whether every chapter id is in the stored set.
// A course with zero chapters is never completed.
func (t *Tracker) IsCourseCompleted(ctx context.Context, userId, courseId string, allChapterIds []string) (bool, error) {
	if len(allChapterIds) == 0 {
		return false, nil
	}
	set, err := t.load(ctx, userId, courseId)
	if err != nil {
		return false, err
	}
	for _, id := range allChapterIds {
		if _, ok := set[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// Reset clears the stored set for a course.
func (t *Tracker) Reset(ctx context.Context, userId, courseId string) error {
	return t.store.Delete(ctx, key(userId, courseId))
}
