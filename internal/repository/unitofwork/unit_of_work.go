package unitofwork

import (
	"context"

	"skillras-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	EnrollmentRepository() contract.EnrollmentRepository
	ReferralRepository() contract.ReferralRepository
	LeadRepository() contract.LeadRepository
	CertificateRepository() contract.CertificateRepository
}
