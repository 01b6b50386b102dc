package specification

import "gorm.io/gorm"

type ByPaymentStatus struct {
	Status string
}

func (s ByPaymentStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("payment_status = ?", s.Status)
}

type ByPackage struct {
	PackageID string
}

func (s ByPackage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("package_selected = ?", s.PackageID)
}

type ByGatewayOrderID struct {
	OrderID string
}

func (s ByGatewayOrderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("gateway_order_id = ?", s.OrderID)
}

type ByReferralCode struct {
	Code string
}

func (s ByReferralCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("referral_code = ?", s.Code)
}
