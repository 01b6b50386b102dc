package service

import (
	"context"

	"skillras-be/internal/dto"
	"skillras-be/internal/repository/unitofwork"
)

type IAffiliateService interface {
	GetEarnings(ctx context.Context, referrerEmail string) (*dto.AffiliateEarningsResponse, error)
}

type affiliateService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAffiliateService(uowFactory unitofwork.RepositoryFactory) IAffiliateService {
	return &affiliateService{
		uowFactory: uowFactory,
	}
}

func (s *affiliateService) GetEarnings(ctx context.Context, referrerEmail string) (*dto.AffiliateEarningsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	earnings, err := uow.ReferralRepository().GetEarningsByReferrer(ctx, referrerEmail)
	if err != nil {
		return nil, err
	}

	res := &dto.AffiliateEarningsResponse{
		ReferrerEmail: referrerEmail,
		Codes:         make([]dto.AffiliateCodeEarningDTO, 0, len(earnings)),
	}
	for _, e := range earnings {
		res.Codes = append(res.Codes, dto.AffiliateCodeEarningDTO{
			Code:                 e.Code,
			CodeType:             string(e.CodeType),
			CommissionPercentage: e.CommissionPercentage,
			TimesUsed:            e.TimesUsed,
			TotalSales:           e.TotalSales,
			TotalEarnings:        e.TotalEarnings,
		})
		res.TotalSales += e.TotalSales
		res.TotalEarnings += e.TotalEarnings
	}
	return res, nil
}
