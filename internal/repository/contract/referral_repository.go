package contract

import (
	"context"

	"skillras-be/internal/entity"
	"skillras-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReferralRepository interface {
	Create(ctx context.Context, code *entity.ReferralCode) error
	Update(ctx context.Context, code *entity.ReferralCode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReferralCode, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferralCode, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ConsumeUsage increments current_usage by one, but only while the code is
	// active and below its usage cap. Returns false when the guarded update
	// matched no row, meaning the code was exhausted or deactivated
	// concurrently.
	ConsumeUsage(ctx context.Context, code string) (bool, error)

	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// GetEarningsByReferrer aggregates completed enrollments per code owned by
	// the referrer email: usage count, gross sales, and commission earned.
	GetEarningsByReferrer(ctx context.Context, referrerEmail string) ([]entity.AffiliateCodeEarning, error)
}
