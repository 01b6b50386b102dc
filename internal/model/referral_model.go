package model

import (
	"time"

	"github.com/google/uuid"
)

type ReferralCode struct {
	Id                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code                 string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	CodeType             string     `gorm:"type:varchar(50);not null;default:'referral'"`
	ReferrerEmail        *string    `gorm:"type:varchar(255);index"`
	DiscountPercentage   int64      `gorm:"not null;default:0"`
	CommissionPercentage int64      `gorm:"not null;default:0"`
	MaxUsage             *int       `gorm:""`
	CurrentUsage         int        `gorm:"not null;default:0"`
	PaymentLink          string     `gorm:"type:text"`
	PaymentLink2         string     `gorm:"type:text"`
	PaymentLink3         string     `gorm:"type:text"`
	ValidUntil           *time.Time `gorm:""`
	IsActive             bool       `gorm:"default:true"`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime"`
}

func (ReferralCode) TableName() string {
	return "referral_codes"
}
