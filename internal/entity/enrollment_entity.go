package entity

import (
	"time"

	"github.com/google/uuid"

	"skillras-be/internal/catalog"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// Enrollment is one purchase attempt for a package. The discount fields are
// a snapshot of the pricing computation at submit time; payment_status moves
// pending -> completed/failed via the gateway webhook, never by the client.
type Enrollment struct {
	Id                 uuid.UUID
	UserId             *uuid.UUID
	Email              string
	FullName           string
	Phone              string
	PackageSelected    catalog.PackageID
	PaymentStatus      PaymentStatus
	ReferralCode       *string
	DiscountPercentage int64
	DiscountAmount     int64
	FinalPrice         int64
	PaymentLink        string
	GatewayOrderId     *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Unlocked reports whether this row grants content access. Pending and
// failed rows never unlock anything.
func (e *Enrollment) Unlocked() bool {
	return e.PaymentStatus == PaymentStatusCompleted
}
