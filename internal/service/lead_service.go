package service

import (
	"context"
	"errors"
	"time"

	"skillras-be/internal/dto"
	"skillras-be/internal/entity"
	"skillras-be/internal/pkg/logger"
	"skillras-be/internal/repository/specification"
	"skillras-be/internal/repository/unitofwork"
	"skillras-be/pkg/events"
	pkgNats "skillras-be/pkg/nats"

	"github.com/google/uuid"
)

type ILeadService interface {
	Capture(ctx context.Context, req *dto.CaptureLeadRequest) (*dto.CaptureLeadResponse, error)
	ListLeads(ctx context.Context, limit, offset int) ([]dto.LeadDTO, error)
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductDTO, error)
	ListProducts(ctx context.Context) ([]dto.ProductDTO, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type leadService struct {
	uowFactory     unitofwork.RepositoryFactory
	queuePublisher IQueuePublisher
	eventPublisher *pkgNats.Publisher
	sysLogger      logger.ILogger
}

func NewLeadService(uowFactory unitofwork.RepositoryFactory, queuePublisher IQueuePublisher, eventPublisher *pkgNats.Publisher, sysLogger logger.ILogger) ILeadService {
	return &leadService{
		uowFactory:     uowFactory,
		queuePublisher: queuePublisher,
		eventPublisher: eventPublisher,
		sysLogger:      sysLogger,
	}
}

func (s *leadService) Capture(ctx context.Context, req *dto.CaptureLeadRequest) (*dto.CaptureLeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var product *entity.Product
	if req.ProductSlug != "" {
		var err error
		product, err = uow.LeadRepository().FindProductBySlug(ctx, req.ProductSlug)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, errors.New("product not found")
		}
	}

	lead := &entity.Lead{
		Id:        uuid.New(),
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Pincode:   req.Pincode,
		Age:       req.Age,
		Source:    req.Source,
		Metadata:  req.Metadata,
		CreatedAt: time.Now(),
	}
	if product != nil {
		lead.ProductId = &product.Id
	}

	if err := uow.LeadRepository().Create(ctx, lead); err != nil {
		return nil, err
	}

	res := &dto.CaptureLeadResponse{Id: lead.Id}

	if product != nil {
		res.FileURL = product.FileURL

		if s.queuePublisher != nil {
			msg := dto.LeadCapturedMessage{
				LeadId:      lead.Id,
				Email:       lead.Email,
				FullName:    lead.FullName,
				ProductName: product.Name,
				FileURL:     product.FileURL,
			}
			if err := s.queuePublisher.Publish(TopicLeadCaptured, msg); err != nil {
				s.sysLogger.Warn("LEAD", "Failed to queue lead resource email", map[string]interface{}{
					"lead_id": lead.Id,
					"error":   err,
				})
			}
		}
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeLeadCaptured,
			Data: map[string]interface{}{
				"lead_id": lead.Id,
				"source":  lead.Source,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.sysLogger.Warn("LEAD", "Failed to publish lead.captured event", map[string]interface{}{
				"lead_id": lead.Id,
				"error":   err,
			})
		}
	}

	return res, nil
}

func (s *leadService) ListLeads(ctx context.Context, limit, offset int) ([]dto.LeadDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	leads, err := uow.LeadRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LeadDTO, 0, len(leads))
	for _, l := range leads {
		out = append(out, dto.LeadDTO{
			Id:        l.Id,
			FullName:  l.FullName,
			Email:     l.Email,
			Phone:     l.Phone,
			Pincode:   l.Pincode,
			Source:    l.Source,
			CreatedAt: l.CreatedAt,
		})
	}
	return out, nil
}

func (s *leadService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.LeadRepository().FindProductBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("slug already in use")
	}

	product := &entity.Product{
		Id:        uuid.New(),
		Name:      req.Name,
		Slug:      req.Slug,
		FileURL:   req.FileURL,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.LeadRepository().CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	return toProductDTO(product), nil
}

func (s *leadService) ListProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.LeadRepository().FindAllProducts(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductDTO(p))
	}
	return out, nil
}

func (s *leadService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.LeadRepository().DeleteProduct(ctx, id)
}

func toProductDTO(p *entity.Product) *dto.ProductDTO {
	return &dto.ProductDTO{
		Id:        p.Id,
		Name:      p.Name,
		Slug:      p.Slug,
		FileURL:   p.FileURL,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}
