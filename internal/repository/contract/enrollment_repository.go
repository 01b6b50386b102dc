package contract

import (
	"context"

	"skillras-be/internal/entity"
	"skillras-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	Update(ctx context.Context, enrollment *entity.Enrollment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Enrollment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Enrollment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindCompletedByEmail returns the completed enrollments for an email,
	// newest first. Pending and failed rows are excluded.
	FindCompletedByEmail(ctx context.Context, email string) ([]*entity.Enrollment, error)

	// UpdatePaymentStatus moves payment_status only when the current value
	// matches fromStatus, so a late webhook cannot clobber a settled row.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string) (bool, error)

	AttachUser(ctx context.Context, id uuid.UUID, userId uuid.UUID) error
}
