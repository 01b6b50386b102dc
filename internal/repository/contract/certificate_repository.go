package contract

import (
	"context"

	"skillras-be/internal/entity"
	"skillras-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CertificateRepository interface {
	Create(ctx context.Context, cert *entity.Certificate) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Certificate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Certificate, error)
	FindByUserAndCourse(ctx context.Context, userId uuid.UUID, courseId string) (*entity.Certificate, error)
}
