package service

import (
	"context"
	"errors"
	"sort"

	"skillras-be/internal/catalog"
	"skillras-be/internal/dto"
	"skillras-be/internal/repository/unitofwork"
	"skillras-be/pkg/entitlement"
	"skillras-be/pkg/progress"

	"github.com/google/uuid"
)

type IProgressService interface {
	MarkChapter(ctx context.Context, userId uuid.UUID, email string, req *dto.MarkChapterRequest) (*dto.CourseProgressResponse, error)
	GetCourseProgress(ctx context.Context, userId uuid.UUID, courseId string) (*dto.CourseProgressResponse, error)
	ResetCourseProgress(ctx context.Context, userId uuid.UUID, courseId string) error
}

type progressService struct {
	uowFactory unitofwork.RepositoryFactory
	tracker    *progress.Tracker
}

func NewProgressService(uowFactory unitofwork.RepositoryFactory, tracker *progress.Tracker) IProgressService {
	return &progressService{
		uowFactory: uowFactory,
		tracker:    tracker,
	}
}

func chapterExists(course catalog.Course, chapterId string) bool {
	for _, id := range course.ChapterIds() {
		if id == chapterId {
			return true
		}
	}
	return false
}

func (s *progressService) MarkChapter(ctx context.Context, userId uuid.UUID, email string, req *dto.MarkChapterRequest) (*dto.CourseProgressResponse, error) {
	course, ok := catalog.FindCourse(req.CourseId)
	if !ok {
		return nil, errors.New("course not found")
	}
	if !chapterExists(course, req.ChapterId) {
		return nil, errors.New("chapter not found in course")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	userPackage, err := resolvePackage(ctx, uow, email)
	if err != nil {
		return nil, err
	}
	if !entitlement.CanViewCourse(userPackage, req.CourseId) {
		return nil, ErrCourseLocked
	}

	if req.Completed {
		err = s.tracker.MarkComplete(ctx, userId.String(), req.CourseId, req.ChapterId)
	} else {
		err = s.tracker.MarkIncomplete(ctx, userId.String(), req.CourseId, req.ChapterId)
	}
	if err != nil {
		return nil, err
	}

	return s.GetCourseProgress(ctx, userId, req.CourseId)
}

func (s *progressService) GetCourseProgress(ctx context.Context, userId uuid.UUID, courseId string) (*dto.CourseProgressResponse, error) {
	course, ok := catalog.FindCourse(courseId)
	if !ok {
		return nil, errors.New("course not found")
	}

	chapterIds := course.ChapterIds()

	set, err := s.tracker.CompletedChapters(ctx, userId.String(), courseId)
	if err != nil {
		return nil, err
	}
	completed := make([]string, 0, len(set))
	for id := range set {
		completed = append(completed, id)
	}
	sort.Strings(completed)

	pct, err := s.tracker.PercentComplete(ctx, userId.String(), courseId, chapterIds)
	if err != nil {
		return nil, err
	}

	done, err := s.tracker.IsCourseCompleted(ctx, userId.String(), courseId, chapterIds)
	if err != nil {
		return nil, err
	}

	return &dto.CourseProgressResponse{
		CourseId:          courseId,
		CompletedChapters: completed,
		TotalChapters:     len(chapterIds),
		PercentComplete:   pct,
		Completed:         done,
	}, nil
}

func (s *progressService) ResetCourseProgress(ctx context.Context, userId uuid.UUID, courseId string) error {
	if _, ok := catalog.FindCourse(courseId); !ok {
		return errors.New("course not found")
	}
	return s.tracker.Reset(ctx, userId.String(), courseId)
}
