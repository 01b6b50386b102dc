package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Lead & Product DTOs ---

type CaptureLeadRequest struct {
	FullName    string                 `json:"full_name" validate:"required,min=2"`
	Email       string                 `json:"email" validate:"required,email"`
	Phone       string                 `json:"phone" validate:"required,inmobile"`
	Pincode     string                 `json:"pincode" validate:"omitempty,pincode"`
	Age         *int                   `json:"age" validate:"omitempty,gte=13,lte=100"`
	ProductSlug string                 `json:"product_slug" validate:"omitempty,min=1"`
	Source      string                 `json:"source" validate:"omitempty,max=100"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type CaptureLeadResponse struct {
	Id      uuid.UUID `json:"id"`
	FileURL string    `json:"file_url,omitempty"`
}

type CreateProductRequest struct {
	Name    string `json:"name" validate:"required,min=3"`
	Slug    string `json:"slug" validate:"required,min=3,max=100"`
	FileURL string `json:"file_url" validate:"required,url"`
}

type ProductDTO struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	FileURL   string    `json:"file_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadCapturedMessage rides the in-process queue to the consumer that emails
// the requested download.
type LeadCapturedMessage struct {
	LeadId      uuid.UUID `json:"lead_id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	ProductName string    `json:"product_name"`
	FileURL     string    `json:"file_url"`
}

type LeadDTO struct {
	Id        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Pincode   string    `json:"pincode,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
