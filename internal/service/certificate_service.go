package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"skillras-be/internal/catalog"
	"skillras-be/internal/dto"
	"skillras-be/internal/entity"
	"skillras-be/internal/pkg/logger"
	"skillras-be/internal/pkg/mailer"
	"skillras-be/internal/repository/specification"
	"skillras-be/internal/repository/unitofwork"
	"skillras-be/pkg/entitlement"
	"skillras-be/pkg/events"
	pkgNats "skillras-be/pkg/nats"
	"skillras-be/pkg/progress"

	"github.com/google/uuid"
)

var ErrCourseNotCompleted = errors.New("course is not fully completed")

type ICertificateService interface {
	Issue(ctx context.Context, userId uuid.UUID, email string, req *dto.IssueCertificateRequest) (*dto.CertificateDTO, error)
	ListOwn(ctx context.Context, userId uuid.UUID) ([]dto.CertificateDTO, error)
}

type certificateService struct {
	uowFactory     unitofwork.RepositoryFactory
	tracker        *progress.Tracker
	emailService   mailer.IEmailService
	eventPublisher *pkgNats.Publisher
	sysLogger      logger.ILogger
}

func NewCertificateService(
	uowFactory unitofwork.RepositoryFactory,
	tracker *progress.Tracker,
	emailService mailer.IEmailService,
	eventPublisher *pkgNats.Publisher,
	sysLogger logger.ILogger,
) ICertificateService {
	return &certificateService{
		uowFactory:     uowFactory,
		tracker:        tracker,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		sysLogger:      sysLogger,
	}
}

func generateCertificateNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SR-%s-%08d", time.Now().Format("2006"), n), nil
}

func (s *certificateService) Issue(ctx context.Context, userId uuid.UUID, email string, req *dto.IssueCertificateRequest) (*dto.CertificateDTO, error) {
	course, ok := catalog.FindCourse(req.CourseId)
	if !ok {
		return nil, errors.New("course not found")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	userPackage, err := resolvePackage(ctx, uow, email)
	if err != nil {
		return nil, err
	}
	if !entitlement.CanViewCourse(userPackage, req.CourseId) {
		return nil, ErrCourseLocked
	}

	// Issuing requires the full chapter set, checked against the catalog at
	// this moment, not whenever the learner last opened the course.
	done, err := s.tracker.IsCourseCompleted(ctx, userId.String(), req.CourseId, course.ChapterIds())
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, ErrCourseNotCompleted
	}

	existing, err := uow.CertificateRepository().FindByUserAndCourse(ctx, userId, req.CourseId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toCertificateDTO(existing), nil
	}

	number, err := generateCertificateNumber()
	if err != nil {
		return nil, err
	}

	cert := &entity.Certificate{
		Id:                uuid.New(),
		UserId:            userId,
		CourseId:          req.CourseId,
		CertificateNumber: number,
		IssuedAt:          time.Now(),
		CreatedAt:         time.Now(),
	}

	if err := uow.CertificateRepository().Create(ctx, cert); err != nil {
		return nil, err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err == nil && user != nil {
		go func() {
			if emailErr := s.emailService.SendCertificate(user.Email, user.FullName, course.Name, cert.CertificateNumber); emailErr != nil {
				s.sysLogger.Error("CERTIFICATE", "Failed to send certificate email", map[string]interface{}{
					"certificate_id": cert.Id,
					"error":          emailErr,
				})
			}
		}()
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeCertificateIssued,
			Data: map[string]interface{}{
				"certificate_id": cert.Id,
				"user_id":        userId,
				"course_id":      req.CourseId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.sysLogger.Warn("CERTIFICATE", "Failed to publish certificate.issued event", map[string]interface{}{
				"certificate_id": cert.Id,
				"error":          err,
			})
		}
	}

	return toCertificateDTO(cert), nil
}

func (s *certificateService) ListOwn(ctx context.Context, userId uuid.UUID) ([]dto.CertificateDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	certs, err := uow.CertificateRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "issued_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CertificateDTO, 0, len(certs))
	for _, c := range certs {
		out = append(out, *toCertificateDTO(c))
	}
	return out, nil
}

func toCertificateDTO(c *entity.Certificate) *dto.CertificateDTO {
	title := c.CourseId
	if course, ok := catalog.FindCourse(c.CourseId); ok {
		title = course.Name
	}
	return &dto.CertificateDTO{
		Id:                c.Id,
		CourseId:          c.CourseId,
		CourseTitle:       title,
		CertificateNumber: c.CertificateNumber,
		IssuedAt:          c.IssuedAt,
	}
}
