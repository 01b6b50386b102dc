package model

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             *uuid.UUID `gorm:"type:uuid;index"`
	Email              string     `gorm:"type:varchar(255);not null;index"`
	FullName           string     `gorm:"type:varchar(255);not null"`
	Phone              string     `gorm:"type:varchar(20)"`
	PackageSelected    string     `gorm:"type:varchar(50);not null"`
	PaymentStatus      string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	ReferralCode       *string    `gorm:"type:varchar(100);index"`
	DiscountPercentage int64      `gorm:"not null;default:0"`
	DiscountAmount     int64      `gorm:"not null;default:0"`
	FinalPrice         int64      `gorm:"not null"`
	PaymentLink        string     `gorm:"type:text"`
	GatewayOrderId     *string    `gorm:"type:varchar(255);index"`
	CreatedAt          time.Time  `gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
