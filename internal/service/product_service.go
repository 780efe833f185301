package service

import (
	"context"
	"errors"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/model"
	"github.com/ARUNKUMAR016/suganya-metals/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService defines business operations for the product master. Delete
// is guarded: a product referenced by production items cannot be removed.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo     repository.ProductRepository
	prodRepo repository.ProductionRepository
}

func NewProductService(repo repository.ProductRepository, prodRepo repository.ProductionRepository) ProductService {
	return &productService{repo: repo, prodRepo: prodRepo}
}

func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID.String(), Name: p.Name}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.ProductResponse{}, apierror.Internal(err)
	}
	if existing != nil {
		return dto.ProductResponse{}, apierror.Conflictf("product name already exists")
	}

	p := &model.Product{Name: req.Name}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ProductResponse{}, apierror.Conflictf("product name already exists")
		}
		return dto.ProductResponse{}, apierror.Internal(err)
	}
	return mapProduct(*p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, apierror.NotFoundf("product not found")
		}
		return dto.ProductResponse{}, apierror.Internal(err)
	}

	if req.Name != p.Name {
		existing, err := s.repo.FindByName(ctx, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, apierror.Internal(err)
		}
		if existing != nil && existing.ID != id {
			return dto.ProductResponse{}, apierror.Conflictf("product name already exists")
		}
		p.Name = req.Name
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProductResponse{}, apierror.Internal(err)
	}
	return mapProduct(*p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFoundf("product not found")
		}
		return apierror.Internal(err)
	}

	itemCount, err := s.prodRepo.CountItemsByProduct(ctx, id)
	if err != nil {
		return apierror.Internal(err)
	}
	if itemCount > 0 {
		return apierror.Conflictf("cannot delete product: associated with production records")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
