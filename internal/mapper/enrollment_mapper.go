package mapper

import (
	"skillras-be/internal/catalog"
	"skillras-be/internal/entity"
	"skillras-be/internal/model"
)

type EnrollmentMapper struct{}

func NewEnrollmentMapper() *EnrollmentMapper {
	return &EnrollmentMapper{}
}

func (m *EnrollmentMapper) ToEntity(e *model.Enrollment) *entity.Enrollment {
	if e == nil {
		return nil
	}
	return &entity.Enrollment{
		Id:                 e.Id,
		UserId:             e.UserId,
		Email:              e.Email,
		FullName:           e.FullName,
		Phone:              e.Phone,
		PackageSelected:    catalog.PackageID(e.PackageSelected),
		PaymentStatus:      entity.PaymentStatus(e.PaymentStatus),
		ReferralCode:       e.ReferralCode,
		DiscountPercentage: e.DiscountPercentage,
		DiscountAmount:     e.DiscountAmount,
		FinalPrice:         e.FinalPrice,
		PaymentLink:        e.PaymentLink,
		GatewayOrderId:     e.GatewayOrderId,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func (m *EnrollmentMapper) ToEntities(enrollments []*model.Enrollment) []*entity.Enrollment {
	entities := make([]*entity.Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		entities = append(entities, m.ToEntity(e))
	}
	return entities
}

func (m *EnrollmentMapper) ToModel(e *entity.Enrollment) *model.Enrollment {
	if e == nil {
		return nil
	}
	return &model.Enrollment{
		Id:                 e.Id,
		UserId:             e.UserId,
		Email:              e.Email,
		FullName:           e.FullName,
		Phone:              e.Phone,
		PackageSelected:    string(e.PackageSelected),
		PaymentStatus:      string(e.PaymentStatus),
		ReferralCode:       e.ReferralCode,
		DiscountPercentage: e.DiscountPercentage,
		DiscountAmount:     e.DiscountAmount,
		FinalPrice:         e.FinalPrice,
		PaymentLink:        e.PaymentLink,
		GatewayOrderId:     e.GatewayOrderId,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
