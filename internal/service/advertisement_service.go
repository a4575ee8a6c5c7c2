package service

import (
	"context"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/repository"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
)

type AdvertisementServiceImpl struct {
	adRepo repository.AdvertisementRepository
}

func CreateAdvertisementService(adRepo repository.AdvertisementRepository) AdvertisementService {
	return &AdvertisementServiceImpl{adRepo: adRepo}
}

func (s *AdvertisementServiceImpl) GetAdvertisements(ctx context.Context, adType string) (ads []domain.Advertisement, err error) {
	ads, err = s.adRepo.GetAdvertisements(ctx, true, adType)
	if err != nil {
		return
	}

	if ads == nil {
		ads = []domain.Advertisement{}
	}

	return ads, nil
}

func (s *AdvertisementServiceImpl) GetAllAdvertisements(ctx context.Context) (ads []domain.Advertisement, err error) {
	ads, err = s.adRepo.GetAdvertisements(ctx, false, "")
	if err != nil {
		return
	}

	if ads == nil {
		ads = []domain.Advertisement{}
	}

	return ads, nil
}

func (s *AdvertisementServiceImpl) AddAdvertisement(ctx context.Context, data dto.AdvertisementRequest) (ad domain.Advertisement, err error) {
	if data.Title == "" || data.Image == "" {
		return ad, errs.ErrMissingRequiredField
	}

	adType := data.Type
	if adType == "" {
		adType = domain.AdTypeBanner
	}

	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	now := time.Now().Unix()
	ad = domain.Advertisement{
		Title:       data.Title,
		Description: data.Description,
		Image:       data.Image,
		Link:        data.Link,
		Type:        adType,
		IsActive:    isActive,
		Order:       data.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.adRepo.AddAdvertisement(ctx, ad)
	if err != nil {
		return
	}

	ad.ID = id
	return ad, nil
}

func (s *AdvertisementServiceImpl) UpdateAdvertisement(ctx context.Context, data dto.AdvertisementRequest) (ad domain.Advertisement, err error) {
	ad, err = s.adRepo.GetAdvertisementByID(ctx, data.ID)
	if err != nil {
		return
	}

	if data.Title != "" {
		ad.Title = data.Title
	}
	if data.Description != "" {
		ad.Description = data.Description
	}
	if data.Image != "" {
		ad.Image = data.Image
	}
	if data.Link != "" {
		ad.Link = data.Link
	}
	if data.Type != "" {
		ad.Type = data.Type
	}
	if data.IsActive != nil {
		ad.IsActive = *data.IsActive
	}
	if data.Order != 0 {
		ad.Order = data.Order
	}

	ad.UpdatedAt = time.Now().Unix()

	if err = s.adRepo.UpdateAdvertisement(ctx, ad); err != nil {
		return
	}

	return ad, nil
}

func (s *AdvertisementServiceImpl) DeleteAdvertisement(ctx context.Context, id string) (err error) {
	return s.adRepo.DeleteAdvertisement(ctx, id)
}
