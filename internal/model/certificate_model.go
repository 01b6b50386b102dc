package model

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_course_cert"`
	CourseId          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_course_cert"`
	CertificateNumber string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	IssuedAt          time.Time `gorm:"not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (Certificate) TableName() string {
	return "certificates"
}
