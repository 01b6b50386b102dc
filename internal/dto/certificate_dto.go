package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Certificate DTOs ---

type IssueCertificateRequest struct {
	CourseId string `json:"course_id" validate:"required"`
}

type CertificateDTO struct {
	Id                uuid.UUID `json:"id"`
	CourseId          string    `json:"course_id"`
	CourseTitle       string    `json:"course_title"`
	CertificateNumber string    `json:"certificate_number"`
	IssuedAt          time.Time `json:"issued_at"`
}
