package mapper

import (
	"skillras-be/internal/entity"
	"skillras-be/internal/model"
)

type ReferralMapper struct{}

func NewReferralMapper() *ReferralMapper {
	return &ReferralMapper{}
}

func (m *ReferralMapper) ToEntity(c *model.ReferralCode) *entity.ReferralCode {
	if c == nil {
		return nil
	}
	return &entity.ReferralCode{
		Id:                   c.Id,
		Code:                 c.Code,
		CodeType:             entity.CodeType(c.CodeType),
		ReferrerEmail:        c.ReferrerEmail,
		DiscountPercentage:   c.DiscountPercentage,
		CommissionPercentage: c.CommissionPercentage,
		MaxUsage:             c.MaxUsage,
		CurrentUsage:         c.CurrentUsage,
		PaymentLink:          c.PaymentLink,
		PaymentLink2:         c.PaymentLink2,
		PaymentLink3:         c.PaymentLink3,
		ValidUntil:           c.ValidUntil,
		IsActive:             c.IsActive,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func (m *ReferralMapper) ToEntities(codes []*model.ReferralCode) []*entity.ReferralCode {
	entities := make([]*entity.ReferralCode, 0, len(codes))
	for _, c := range codes {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}

func (m *ReferralMapper) ToModel(c *entity.ReferralCode) *model.ReferralCode {
	if c == nil {
		return nil
	}
	return &model.ReferralCode{
		Id:                   c.Id,
		Code:                 c.Code,
		CodeType:             string(c.CodeType),
		ReferrerEmail:        c.ReferrerEmail,
		DiscountPercentage:   c.DiscountPercentage,
		CommissionPercentage: c.CommissionPercentage,
		MaxUsage:             c.MaxUsage,
		CurrentUsage:         c.CurrentUsage,
		PaymentLink:          c.PaymentLink,
		PaymentLink2:         c.PaymentLink2,
		PaymentLink3:         c.PaymentLink3,
		ValidUntil:           c.ValidUntil,
		IsActive:             c.IsActive,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
