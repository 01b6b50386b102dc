package specification

import "gorm.io/gorm"

type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", s.Code)
}

type ActiveCodes struct{}

func (s ActiveCodes) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type ByReferrerEmail struct {
	Email string
}

func (s ByReferrerEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("referrer_email = ?", s.Email)
}

type ByCodeType struct {
	CodeType string
}

func (s ByCodeType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code_type = ?", s.CodeType)
}
