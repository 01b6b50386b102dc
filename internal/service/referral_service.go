package service

import (
	"context"
	"errors"
	"time"

	"skillras-be/internal/catalog"
	"skillras-be/internal/dto"
	"skillras-be/internal/entity"
	"skillras-be/internal/repository/specification"
	"skillras-be/internal/repository/unitofwork"
	"skillras-be/pkg/pricing"

	"github.com/google/uuid"
)

type IReferralService interface {
	Verify(ctx context.Context, req *dto.VerifyReferralRequest) (*dto.VerifyReferralResponse, error)
	CreateCode(ctx context.Context, req *dto.CreateReferralCodeRequest) (*dto.ReferralCodeDTO, error)
	UpdateCode(ctx context.Context, id uuid.UUID, req *dto.UpdateReferralCodeRequest) (*dto.ReferralCodeDTO, error)
	DeactivateCode(ctx context.Context, id uuid.UUID) error
	ListCodes(ctx context.Context, codeType string) ([]dto.ReferralCodeDTO, error)
}

type referralService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReferralService(uowFactory unitofwork.RepositoryFactory) IReferralService {
	return &referralService{
		uowFactory: uowFactory,
	}
}

// resolveCode is the shared verify path: fetch and validate, returning the
// code only when it is redeemable right now.
func resolveCode(ctx context.Context, uow unitofwork.UnitOfWork, code string) (*entity.ReferralCode, error) {
	referral, err := uow.ReferralRepository().FindOne(ctx, specification.ByCode{Code: code})
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return nil, entity.ErrCodeNotFound
	}
	if err := referral.ValidateAt(time.Now()); err != nil {
		return nil, err
	}
	return referral, nil
}

func (s *referralService) Verify(ctx context.Context, req *dto.VerifyReferralRequest) (*dto.VerifyReferralResponse, error) {
	pkg, ok := catalog.FindPackage(catalog.PackageID(req.Package))
	if !ok {
		return nil, errors.New("unknown package")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	referral, err := resolveCode(ctx, uow, req.Code)
	if err != nil {
		// Validation failures are a negative verify result, not a 500.
		if errors.Is(err, entity.ErrCodeNotFound) ||
			errors.Is(err, entity.ErrCodeInactive) ||
			errors.Is(err, entity.ErrCodeExpired) ||
			errors.Is(err, entity.ErrCodeExhausted) {
			quote := pricing.Calculate(pkg, nil)
			return &dto.VerifyReferralResponse{
				Valid:         false,
				Code:          req.Code,
				OriginalPrice: quote.Price,
				FinalPrice:    quote.FinalPrice,
				PaymentLink:   pricing.PaymentLink(pkg, nil),
				Reason:        err.Error(),
			}, nil
		}
		return nil, err
	}

	quote := pricing.Calculate(pkg, referral)
	return &dto.VerifyReferralResponse{
		Valid:              true,
		Code:               referral.Code,
		DiscountPercentage: quote.DiscountPercentage,
		OriginalPrice:      quote.Price,
		DiscountAmount:     quote.DiscountAmount,
		FinalPrice:         quote.FinalPrice,
		PaymentLink:        pricing.PaymentLink(pkg, referral),
	}, nil
}

func (s *referralService) CreateCode(ctx context.Context, req *dto.CreateReferralCodeRequest) (*dto.ReferralCodeDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ReferralRepository().FindOne(ctx, specification.ByCode{Code: req.Code})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("code already exists")
	}

	var referrerEmail *string
	if req.ReferrerEmail != "" {
		referrerEmail = &req.ReferrerEmail
	}

	code := &entity.ReferralCode{
		Id:                   uuid.New(),
		Code:                 req.Code,
		CodeType:             entity.CodeType(req.CodeType),
		ReferrerEmail:        referrerEmail,
		DiscountPercentage:   req.DiscountPercentage,
		CommissionPercentage: req.CommissionPercentage,
		MaxUsage:             req.MaxUsage,
		CurrentUsage:         0,
		PaymentLink:          req.PaymentLink,
		PaymentLink2:         req.PaymentLink2,
		PaymentLink3:         req.PaymentLink3,
		ValidUntil:           req.ValidUntil,
		IsActive:             true,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := uow.ReferralRepository().Create(ctx, code); err != nil {
		return nil, err
	}

	res := toReferralCodeDTO(code)
	return &res, nil
}

func (s *referralService) UpdateCode(ctx context.Context, id uuid.UUID, req *dto.UpdateReferralCodeRequest) (*dto.ReferralCodeDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	code, err := uow.ReferralRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, entity.ErrCodeNotFound
	}

	if req.DiscountPercentage != nil {
		code.DiscountPercentage = *req.DiscountPercentage
	}
	if req.CommissionPercentage != nil {
		code.CommissionPercentage = *req.CommissionPercentage
	}
	if req.MaxUsage != nil {
		code.MaxUsage = req.MaxUsage
	}
	if req.PaymentLink != nil {
		code.PaymentLink = *req.PaymentLink
	}
	if req.PaymentLink2 != nil {
		code.PaymentLink2 = *req.PaymentLink2
	}
	if req.PaymentLink3 != nil {
		code.PaymentLink3 = *req.PaymentLink3
	}
	if req.ValidUntil != nil {
		code.ValidUntil = req.ValidUntil
	}
	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}
	code.UpdatedAt = time.Now()

	if err := uow.ReferralRepository().Update(ctx, code); err != nil {
		return nil, err
	}

	res := toReferralCodeDTO(code)
	return &res, nil
}

func (s *referralService) DeactivateCode(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ReferralRepository().SetActive(ctx, id, false)
}

func (s *referralService) ListCodes(ctx context.Context, codeType string) ([]dto.ReferralCodeDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if codeType != "" {
		specs = append(specs, specification.ByCodeType{CodeType: codeType})
	}

	codes, err := uow.ReferralRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReferralCodeDTO, 0, len(codes))
	for _, c := range codes {
		out = append(out, toReferralCodeDTO(c))
	}
	return out, nil
}

func toReferralCodeDTO(c *entity.ReferralCode) dto.ReferralCodeDTO {
	return dto.ReferralCodeDTO{
		Id:                   c.Id,
		Code:                 c.Code,
		CodeType:             string(c.CodeType),
		ReferrerEmail:        c.ReferrerEmail,
		DiscountPercentage:   c.DiscountPercentage,
		CommissionPercentage: c.CommissionPercentage,
		MaxUsage:             c.MaxUsage,
		CurrentUsage:         c.CurrentUsage,
		ValidUntil:           c.ValidUntil,
		IsActive:             c.IsActive,
		CreatedAt:            c.CreatedAt,
	}
}
