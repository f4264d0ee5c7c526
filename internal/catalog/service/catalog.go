package service

import (
	"context"

	"cardoctor/internal/catalog/repository"
	apperrors "cardoctor/pkg/errors"
	"cardoctor/pkg/logger"
	"cardoctor/pkg/model"
)

type CatalogService interface {
	List(ctx context.Context) ([]model.Service, error)
	GetByID(ctx context.Context, id string) (*model.ServiceSummary, error)
}

type catalogService struct {
	repo repository.ServiceRepository
	log  *logger.Logger
}

func NewCatalogService(repo repository.ServiceRepository, log *logger.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

func (s *catalogService) List(ctx context.Context) ([]model.Service, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list services", "error", err)
		return nil, apperrors.Internal("Failed to retrieve services", err)
	}
	return services, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*model.ServiceSummary, error) {
	summary, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to retrieve service", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve service", err)
	}
	return summary, nil
}
