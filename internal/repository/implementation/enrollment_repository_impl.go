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

type EnrollmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EnrollmentMapper
}

func NewEnrollmentRepository(db *gorm.DB) contract.EnrollmentRepository {
	return &EnrollmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewEnrollmentMapper(),
	}
}

func (r *EnrollmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EnrollmentRepositoryImpl) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	m := r.mapper.ToModel(enrollment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*enrollment = *r.mapper.ToEntity(m)
	return nil
}

func (r *EnrollmentRepositoryImpl) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	m := r.mapper.ToModel(enrollment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*enrollment = *r.mapper.ToEntity(m)
	return nil
}

func (r *EnrollmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Enrollment, error) {
	var m model.Enrollment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *EnrollmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Enrollment, error) {
	var models []*model.Enrollment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *EnrollmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Enrollment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EnrollmentRepositoryImpl) FindCompletedByEmail(ctx context.Context, email string) ([]*entity.Enrollment, error) {
	var models []*model.Enrollment
	err := r.db.WithContext(ctx).
		Where("email = ? AND payment_status = ?", email, string(entity.PaymentStatusCompleted)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EnrollmentRepositoryImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("id = ? AND payment_status = ?", id, fromStatus).
		Update("payment_status", toStatus)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *EnrollmentRepositoryImpl) AttachUser(ctx context.Context, id uuid.UUID, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("id = ?", id).
		Update("user_id", userId).Error
}
