package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Referral DTOs ---

type VerifyReferralRequest struct {
	Code    string `json:"code" validate:"required,min=3,max=50"`
	Package string `json:"package" validate:"required,oneof=starter professional enterprise"`
}

type VerifyReferralResponse struct {
	Valid              bool   `json:"valid"`
	Code               string `json:"code"`
	DiscountPercentage int64  `json:"discount_percentage"`
	OriginalPrice      int64  `json:"original_price"`
	DiscountAmount     int64  `json:"discount_amount"`
	FinalPrice         int64  `json:"final_price"`
	PaymentLink        string `json:"payment_link"`
	Reason             string `json:"reason,omitempty"`
}

type CreateReferralCodeRequest struct {
	Code                 string     `json:"code" validate:"required,min=3,max=50,alphanum"`
	CodeType             string     `json:"code_type" validate:"required,oneof=referral coupon affiliate"`
	ReferrerEmail        string     `json:"referrer_email" validate:"omitempty,email"`
	DiscountPercentage   int64      `json:"discount_percentage" validate:"gte=0,lte=100"`
	CommissionPercentage int64      `json:"commission_percentage" validate:"gte=0,lte=100"`
	MaxUsage             *int       `json:"max_usage" validate:"omitempty,gt=0"`
	PaymentLink          string     `json:"payment_link" validate:"omitempty,url"`
	PaymentLink2         string     `json:"payment_link_2" validate:"omitempty,url"`
	PaymentLink3         string     `json:"payment_link_3" validate:"omitempty,url"`
	ValidUntil           *time.Time `json:"valid_until"`
}

type UpdateReferralCodeRequest struct {
	DiscountPercentage   *int64     `json:"discount_percentage" validate:"omitempty,gte=0,lte=100"`
	CommissionPercentage *int64     `json:"commission_percentage" validate:"omitempty,gte=0,lte=100"`
	MaxUsage             *int       `json:"max_usage" validate:"omitempty,gt=0"`
	PaymentLink          *string    `json:"payment_link" validate:"omitempty,url"`
	PaymentLink2         *string    `json:"payment_link_2" validate:"omitempty,url"`
	PaymentLink3         *string    `json:"payment_link_3" validate:"omitempty,url"`
	ValidUntil           *time.Time `json:"valid_until"`
	IsActive             *bool      `json:"is_active"`
}

type ReferralCodeDTO struct {
	Id                   uuid.UUID  `json:"id"`
	Code                 string     `json:"code"`
	CodeType             string     `json:"code_type"`
	ReferrerEmail        *string    `json:"referrer_email,omitempty"`
	DiscountPercentage   int64      `json:"discount_percentage"`
	CommissionPercentage int64      `json:"commission_percentage"`
	MaxUsage             *int       `json:"max_usage,omitempty"`
	CurrentUsage         int        `json:"current_usage"`
	ValidUntil           *time.Time `json:"valid_until,omitempty"`
	IsActive             bool       `json:"is_active"`
	CreatedAt            time.Time  `json:"created_at"`
}
