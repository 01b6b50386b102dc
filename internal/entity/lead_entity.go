package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a downloadable resource offered behind a lead-capture form.
type Product struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	FileURL   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Lead is a marketing contact captured from a download or landing form.
// Metadata keeps the free-form form context (source page, campaign tags).
type Lead struct {
	Id        uuid.UUID
	FullName  string
	Email     string
	Phone     string
	Pincode   string
	Age       *int
	ProductId *uuid.UUID
	Source    string
	Metadata  map[string]interface{}
	CreatedAt time.Time
}
