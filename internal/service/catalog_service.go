package service

import (
	"context"
	"errors"

	"skillras-be/internal/catalog"
	"skillras-be/internal/dto"
	"skillras-be/internal/repository/specification"
	"skillras-be/internal/repository/unitofwork"
	"skillras-be/pkg/entitlement"
	"skillras-be/pkg/pricing"
	"skillras-be/pkg/progress"

	"github.com/google/uuid"
)

var ErrCourseLocked = errors.New("course not included in your package")

type ICatalogService interface {
	GetPackages(ctx context.Context) []dto.PackageDTO
	GetCourse(ctx context.Context, userId uuid.UUID, email, courseId string) (*dto.CourseDTO, error)
	GetDashboard(ctx context.Context, userId uuid.UUID, email string) (*dto.DashboardResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	tracker    *progress.Tracker
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, tracker *progress.Tracker) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		tracker:    tracker,
	}
}

// resolvePackage finds the highest tier the email has actually paid for.
// Pending and failed enrollments grant nothing.
func resolvePackage(ctx context.Context, uow unitofwork.UnitOfWork, email string) (catalog.PackageID, error) {
	enrollments, err := uow.EnrollmentRepository().FindCompletedByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	var best catalog.PackageID
	for _, e := range enrollments {
		if catalog.Rank(e.PackageSelected) > catalog.Rank(best) {
			best = e.PackageSelected
		}
	}
	return best, nil
}

func (s *catalogService) GetPackages(ctx context.Context) []dto.PackageDTO {
	packages := catalog.Packages()
	out := make([]dto.PackageDTO, 0, len(packages))
	for _, p := range packages {
		out = append(out, dto.PackageDTO{
			Id:            string(p.Id),
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			CourseIds:     p.CourseIds,
			PaymentLink:   pricing.PaymentLink(p, nil),
		})
	}
	return out
}

func (s *catalogService) buildCourseDTO(ctx context.Context, userId uuid.UUID, course catalog.Course, locked, withModules bool) (dto.CourseDTO, error) {
	chapterIds := course.ChapterIds()

	out := dto.CourseDTO{
		Id:            course.Id,
		Name:          course.Name,
		Locked:        locked,
		TotalChapters: len(chapterIds),
	}

	var completedSet map[string]struct{}
	if !locked && userId != uuid.Nil {
		set, err := s.tracker.CompletedChapters(ctx, userId.String(), course.Id)
		if err != nil {
			return out, err
		}
		completedSet = set

		pct, err := s.tracker.PercentComplete(ctx, userId.String(), course.Id, chapterIds)
		if err != nil {
			return out, err
		}
		out.PercentComplete = pct

		done, err := s.tracker.IsCourseCompleted(ctx, userId.String(), course.Id, chapterIds)
		if err != nil {
			return out, err
		}
		out.Completed = done
	}

	if withModules {
		for _, m := range course.Modules {
			moduleDTO := dto.ModuleDTO{Id: m.Id, Title: m.Title}
			for _, ch := range m.Chapters {
				chapterDTO := dto.ChapterDTO{
					Id:    ch.Id,
					Title: ch.Title,
				}
				if !locked {
					// Video ids and resources stay hidden behind the paywall.
					chapterDTO.VideoId = ch.VideoId
					chapterDTO.Resources = ch.DownloadableResources
				}
				if completedSet != nil {
					_, chapterDTO.Completed = completedSet[ch.Id]
				}
				moduleDTO.Chapters = append(moduleDTO.Chapters, chapterDTO)
			}
			out.Modules = append(out.Modules, moduleDTO)
		}
	}

	return out, nil
}

func (s *catalogService) GetCourse(ctx context.Context, userId uuid.UUID, email, courseId string) (*dto.CourseDTO, error) {
	course, ok := catalog.FindCourse(courseId)
	if !ok {
		return nil, errors.New("course not found")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	userPackage, err := resolvePackage(ctx, uow, email)
	if err != nil {
		return nil, err
	}

	if !entitlement.CanViewCourse(userPackage, courseId) {
		return nil, ErrCourseLocked
	}

	out, err := s.buildCourseDTO(ctx, userId, course, false, true)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *catalogService) GetDashboard(ctx context.Context, userId uuid.UUID, email string) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}

	userPackage, err := resolvePackage(ctx, uow, email)
	if err != nil {
		return nil, err
	}

	unlockedIds := entitlement.AvailableCourses(userPackage)
	unlocked := make(map[string]struct{}, len(unlockedIds))
	for _, id := range unlockedIds {
		unlocked[id] = struct{}{}
	}

	// Every catalog course appears; locked ones advertise the upgrade.
	var courseDTOs []dto.CourseDTO
	for _, course := range catalog.Courses() {
		_, isUnlocked := unlocked[course.Id]
		courseDTO, err := s.buildCourseDTO(ctx, userId, course, !isUnlocked, false)
		if err != nil {
			return nil, err
		}
		courseDTOs = append(courseDTOs, courseDTO)
	}

	certCount := 0
	if userId != uuid.Nil {
		certs, err := uow.CertificateRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
		if err != nil {
			return nil, err
		}
		certCount = len(certs)
	}

	fullName := ""
	if user != nil {
		fullName = user.FullName
	}

	return &dto.DashboardResponse{
		Email:        email,
		FullName:     fullName,
		Package:      string(userPackage),
		Courses:      courseDTOs,
		Certificates: certCount,
	}, nil
}
