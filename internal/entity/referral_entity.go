package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"skillras-be/internal/catalog"
)

type CodeType string

const (
	CodeTypeReferral  CodeType = "referral"
	CodeTypeCoupon    CodeType = "coupon"
	CodeTypeAffiliate CodeType = "affiliate"
)

var (
	ErrCodeNotFound  = errors.New("referral code not found")
	ErrCodeInactive  = errors.New("referral code is no longer active")
	ErrCodeExpired   = errors.New("referral code has expired")
	ErrCodeExhausted = errors.New("referral code usage limit reached")
)

// ReferralCode is a discount token. The three payment link slots correspond
// to the starter/professional/enterprise tiers in that order.
type ReferralCode struct {
	Id                   uuid.UUID
	Code                 string
	CodeType             CodeType
	ReferrerEmail        *string
	DiscountPercentage   int64
	CommissionPercentage int64
	MaxUsage             *int
	CurrentUsage         int
	PaymentLink          string
	PaymentLink2         string
	PaymentLink3         string
	ValidUntil           *time.Time
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ValidateAt checks whether the code is redeemable at the given instant.
// A zero discount percentage is still a valid, verifiable code.
func (c *ReferralCode) ValidateAt(now time.Time) error {
	if !c.IsActive {
		return ErrCodeInactive
	}
	if c.ValidUntil != nil && c.ValidUntil.Before(now) {
		return ErrCodeExpired
	}
	if c.MaxUsage != nil && c.CurrentUsage >= *c.MaxUsage {
		return ErrCodeExhausted
	}
	return nil
}

// LinkForPackage returns the payment link slot matching the tier, or empty
// when the slot is unset.
func (c *ReferralCode) LinkForPackage(id catalog.PackageID) string {
	switch id {
	case catalog.PackageStarter:
		return c.PaymentLink
	case catalog.PackageProfessional:
		return c.PaymentLink2
	case catalog.PackageEnterprise:
		return c.PaymentLink3
	}
	return ""
}
