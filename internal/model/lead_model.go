package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Product struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FileURL   string    `gorm:"type:text;not null"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

type Lead struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName  string         `gorm:"type:varchar(255);not null"`
	Email     string         `gorm:"type:varchar(255);not null;index"`
	Phone     string         `gorm:"type:varchar(20)"`
	Pincode   string         `gorm:"type:varchar(10)"`
	Age       *int           `gorm:""`
	ProductId *uuid.UUID     `gorm:"type:uuid;index"`
	Source    string         `gorm:"type:varchar(100)"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
