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

type LeadRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LeadMapper
}

func NewLeadRepository(db *gorm.DB) contract.LeadRepository {
	return &LeadRepositoryImpl{
		db:     db,
		mapper: mapper.NewLeadMapper(),
	}
}

func (r *LeadRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LeadRepositoryImpl) Create(ctx context.Context, lead *entity.Lead) error {
	m := r.mapper.ToModel(lead)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*lead = *r.mapper.ToEntity(m)
	return nil
}

func (r *LeadRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error) {
	var models []*model.Lead
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *LeadRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Lead{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Products

func (r *LeadRepositoryImpl) CreateProduct(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ProductToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ProductToEntity(m)
	return nil
}

func (r *LeadRepositoryImpl) UpdateProduct(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ProductToModel(product)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ProductToEntity(m)
	return nil
}

func (r *LeadRepositoryImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}).Error
}

func (r *LeadRepositoryImpl) FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var m model.Product
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProductToEntity(&m), nil
}

func (r *LeadRepositoryImpl) FindAllProducts(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var models []*model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ProductToEntities(models), nil
}
