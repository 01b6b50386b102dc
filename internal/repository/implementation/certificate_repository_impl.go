package implementation

import (
	"context"
	"errors"

	"skillras-be/internal/entity"
	"skillras-be/internal/mapper"
	"skillras-be/internal/model"
	"skillras-be/internal/repository/contract"
	"skillras-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CertificateMapper
}

func NewCertificateRepository(db *gorm.DB) contract.CertificateRepository {
	return &CertificateRepositoryImpl{
		db:     db,
		mapper: mapper.NewCertificateMapper(),
	}
}

func (r *CertificateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CertificateRepositoryImpl) Create(ctx context.Context, cert *entity.Certificate) error {
	m := r.mapper.ToModel(cert)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*cert = *r.mapper.ToEntity(m)
	return nil
}

func (r *CertificateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Certificate, error) {
	var m model.Certificate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *CertificateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Certificate, error) {
	var models []*model.Certificate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *CertificateRepositoryImpl) FindByUserAndCourse(ctx context.Context, userId uuid.UUID, courseId string) (*entity.Certificate, error) {
	var m model.Certificate
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userId, courseId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
