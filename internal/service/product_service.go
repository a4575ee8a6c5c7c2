package service

import (
	"context"
	"strings"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/repository"
	pkgdto "github.com/anandbhardwaj456/E-commerce-webapp/pkg/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	repo repository.ProductRepository
}

func CreateProductService(repo repository.ProductRepository) ProductService {
	return &ProductServiceImpl{repo: repo}
}

func convertProductToResponse(data domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          data.ID.Hex(),
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    data.Category,
		Brand:       data.Brand,
		Images:      data.Images,
		Rating:      data.Rating,
		NumReviews:  data.NumReviews,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter, includeInactive bool) (responsePayload pkgdto.PaginationResponse, err error) {
	if filter.Limit <= 0 {
		filter.Limit = 12
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	data, total, err := s.repo.GetProducts(ctx, filter, !includeInactive)
	if err != nil {
		return
	}

	records := make([]dto.ProductResponse, 0, len(data))
	for _, product := range data {
		records = append(records, convertProductToResponse(product))
	}

	responsePayload.Records = records
	responsePayload.Metadata.TotalCount = uint64(total)
	responsePayload.Metadata.Page = uint64(filter.Page)
	responsePayload.Metadata.Limit = filter.Limit

	return
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product dto.ProductResponse, err error) {
	data, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return convertProductToResponse(data), nil
}

func (s *ProductServiceImpl) GetCategories(ctx context.Context) (categories []string, err error) {
	return s.repo.GetCategories(ctx)
}

// normalizeImages inlines remote image URLs as data URLs. A failed fetch
// keeps the original URL; the storefront can still render it remotely.
func (s *ProductServiceImpl) normalizeImages(ctx context.Context, images []string) []string {
	normalized := make([]string, 0, len(images))
	for _, img := range images {
		if strings.HasPrefix(img, "http://") || strings.HasPrefix(img, "https://") {
			inlined, err := utils.FetchImageAsDataURL(ctx, img)
			if err != nil {
				log.Error().Err(err).Str("component", "normalizeImages").Msg("")
				normalized = append(normalized, img)
				continue
			}
			normalized = append(normalized, inlined)
			continue
		}
		normalized = append(normalized, img)
	}

	return normalized
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (product dto.ProductResponse, err error) {
	if data.Name == "" || data.Price <= 0 {
		return product, errs.ErrMissingRequiredField
	}

	now := time.Now().Unix()

	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	var stock int64
	if data.Stock != nil {
		stock = *data.Stock
	}

	productEnt := domain.Product{
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       stock,
		Category:    data.Category,
		Brand:       data.Brand,
		Images:      s.normalizeImages(ctx, data.Images),
		Rating:      0,
		NumReviews:  0,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	productID, err := s.repo.AddProduct(ctx, productEnt)
	if err != nil {
		return
	}

	productEnt.ID = productID

	return convertProductToResponse(productEnt), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductRequest) (product dto.ProductResponse, err error) {
	existing, err := s.repo.GetProductByID(ctx, data.ID)
	if err != nil {
		return
	}

	if data.Name != "" {
		existing.Name = data.Name
	}
	if data.Description != "" {
		existing.Description = data.Description
	}
	if data.Price > 0 {
		existing.Price = data.Price
	}
	// A zero stock is a real value; only a missing field leaves it alone.
	if data.Stock != nil {
		existing.Stock = *data.Stock
	}
	if data.Category != "" {
		existing.Category = data.Category
	}
	if data.Brand != "" {
		existing.Brand = data.Brand
	}
	if len(data.Images) > 0 {
		existing.Images = s.normalizeImages(ctx, data.Images)
	}
	if data.IsActive != nil {
		existing.IsActive = *data.IsActive
	}
	existing.UpdatedAt = time.Now().Unix()

	err = s.repo.UpdateProduct(ctx, existing)
	if err != nil {
		return
	}

	return convertProductToResponse(existing), nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	if _, err = primitive.ObjectIDFromHex(id); err != nil {
		return err
	}

	return s.repo.DeleteProduct(ctx, id)
}
