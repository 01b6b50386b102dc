package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"skillras-be/internal/entity"
	"skillras-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}
	var metadata map[string]interface{}
	if len(l.Metadata) > 0 {
		_ = json.Unmarshal(l.Metadata, &metadata)
	}
	return &entity.Lead{
		Id:        l.Id,
		FullName:  l.FullName,
		Email:     l.Email,
		Phone:     l.Phone,
		Pincode:   l.Pincode,
		Age:       l.Age,
		ProductId: l.ProductId,
		Source:    l.Source,
		Metadata:  metadata,
		CreatedAt: l.CreatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}
	var metadata datatypes.JSON
	if l.Metadata != nil {
		raw, err := json.Marshal(l.Metadata)
		if err == nil {
			metadata = datatypes.JSON(raw)
		}
	}
	return &model.Lead{
		Id:        l.Id,
		FullName:  l.FullName,
		Email:     l.Email,
		Phone:     l.Phone,
		Pincode:   l.Pincode,
		Age:       l.Age,
		ProductId: l.ProductId,
		Source:    l.Source,
		Metadata:  metadata,
		CreatedAt: l.CreatedAt,
	}
}

func (m *LeadMapper) ToEntities(leads []*model.Lead) []*entity.Lead {
	entities := make([]*entity.Lead, 0, len(leads))
	for _, l := range leads {
		entities = append(entities, m.ToEntity(l))
	}
	return entities
}

func (m *LeadMapper) ProductToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:        p.Id,
		Name:      p.Name,
		Slug:      p.Slug,
		FileURL:   p.FileURL,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *LeadMapper) ProductToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		entities = append(entities, m.ProductToEntity(p))
	}
	return entities
}

func (m *LeadMapper) ProductToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:        p.Id,
		Name:      p.Name,
		Slug:      p.Slug,
		FileURL:   p.FileURL,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
