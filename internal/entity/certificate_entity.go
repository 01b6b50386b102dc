package entity

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is issued once a learner completes every chapter of a course.
type Certificate struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	CourseId          string
	CertificateNumber string
	IssuedAt          time.Time
	CreatedAt         time.Time
}
