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

type ReferralRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferralMapper
}

func NewReferralRepository(db *gorm.DB) contract.ReferralRepository {
	return &ReferralRepositoryImpl{
		db:     db,
		mapper: mapper.NewReferralMapper(),
	}
}

func (r *ReferralRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReferralRepositoryImpl) Create(ctx context.Context, code *entity.ReferralCode) error {
	m := r.mapper.ToModel(code)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*code = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReferralRepositoryImpl) Update(ctx context.Context, code *entity.ReferralCode) error {
	m := r.mapper.ToModel(code)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*code = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReferralRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReferralCode{}).Error
}

func (r *ReferralRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReferralCode, error) {
	var m model.ReferralCode
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ReferralRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferralCode, error) {
	var models []*model.ReferralCode
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *ReferralRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ReferralCode{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ConsumeUsage relies on the row-level guard instead of a read-then-write:
// the WHERE clause re-checks the cap inside the statement, so two concurrent
// redemptions of the last slot cannot both succeed.
func (r *ReferralRepositoryImpl) ConsumeUsage(ctx context.Context, code string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.ReferralCode{}).
		Where("code = ? AND is_active = ? AND (max_usage IS NULL OR current_usage < max_usage)", code, true).
		Update("current_usage", gorm.Expr("current_usage + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ReferralRepositoryImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&model.ReferralCode{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *ReferralRepositoryImpl) GetEarningsByReferrer(ctx context.Context, referrerEmail string) ([]entity.AffiliateCodeEarning, error) {
	var results []entity.AffiliateCodeEarning

	err := r.db.WithContext(ctx).Table("referral_codes").
		Select(`
			referral_codes.code,
			referral_codes.code_type,
			referral_codes.commission_percentage,
			COUNT(enrollments.id) as times_used,
			COALESCE(SUM(enrollments.final_price), 0) as total_sales,
			COALESCE(SUM(enrollments.final_price * referral_codes.commission_percentage / 100), 0) as total_earnings
		`).
		Joins("LEFT JOIN enrollments ON enrollments.referral_code = referral_codes.code AND enrollments.payment_status = ?", "completed").
		Where("referral_codes.referrer_email = ?", referrerEmail).
		Group("referral_codes.code, referral_codes.code_type, referral_codes.commission_percentage").
		Order("referral_codes.code ASC").
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}
