package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Enrollment DTOs ---

type CreateEnrollmentRequest struct {
	FullName     string `json:"full_name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,inmobile"`
	Package      string `json:"package" validate:"required,oneof=starter professional enterprise"`
	ReferralCode string `json:"referral_code" validate:"omitempty,min=3,max=50"`
}

type CreateEnrollmentResponse struct {
	Id                 uuid.UUID `json:"id"`
	Package            string    `json:"package"`
	OriginalPrice      int64     `json:"original_price"`
	DiscountPercentage int64     `json:"discount_percentage"`
	DiscountAmount     int64     `json:"discount_amount"`
	FinalPrice         int64     `json:"final_price"`
	PaymentLink        string    `json:"payment_link"`
	PaymentStatus      string    `json:"payment_status"`
}

type EnrollmentDTO struct {
	Id                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	Package            string    `json:"package"`
	PaymentStatus      string    `json:"payment_status"`
	ReferralCode       *string   `json:"referral_code,omitempty"`
	DiscountPercentage int64     `json:"discount_percentage"`
	DiscountAmount     int64     `json:"discount_amount"`
	FinalPrice         int64     `json:"final_price"`
	CreatedAt          time.Time `json:"created_at"`
}

// EnrollmentCompletedMessage rides the in-process queue from the webhook to
// the consumer that sends the receipt.
type EnrollmentCompletedMessage struct {
	EnrollmentId uuid.UUID `json:"enrollment_id"`
}

// PaymentWebhookRequest mirrors the midtrans notification payload fields we
// verify and act on.
type PaymentWebhookRequest struct {
	OrderID           string `json:"order_id" validate:"required"`
	StatusCode        string `json:"status_code" validate:"required"`
	GrossAmount       string `json:"gross_amount" validate:"required"`
	SignatureKey      string `json:"signature_key" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}
