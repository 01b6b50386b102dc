package contract

import (
	"context"

	"skillras-be/internal/entity"
	"skillras-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateProduct(ctx context.Context, product *entity.Product) error
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	FindAllProducts(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
}
