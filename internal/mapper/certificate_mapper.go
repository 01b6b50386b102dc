package mapper

import (
	"skillras-be/internal/entity"
	"skillras-be/internal/model"
)

type CertificateMapper struct{}

func NewCertificateMapper() *CertificateMapper {
	return &CertificateMapper{}
}

func (m *CertificateMapper) ToEntity(c *model.Certificate) *entity.Certificate {
	if c == nil {
		return nil
	}
	return &entity.Certificate{
		Id:                c.Id,
		UserId:            c.UserId,
		CourseId:          c.CourseId,
		CertificateNumber: c.CertificateNumber,
		IssuedAt:          c.IssuedAt,
		CreatedAt:         c.CreatedAt,
	}
}

func (m *CertificateMapper) ToEntities(certs []*model.Certificate) []*entity.Certificate {
	entities := make([]*entity.Certificate, 0, len(certs))
	for _, c := range certs {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}

func (m *CertificateMapper) ToModel(c *entity.Certificate) *model.Certificate {
	if c == nil {
		return nil
	}
	return &model.Certificate{
		Id:                c.Id,
		UserId:            c.UserId,
		CourseId:          c.CourseId,
		CertificateNumber: c.CertificateNumber,
		IssuedAt:          c.IssuedAt,
		CreatedAt:         c.CreatedAt,
	}
}
