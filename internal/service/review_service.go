package service

import (
	"context"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/repository"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewServiceImpl struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func CreateReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo, productRepo: productRepo}
}

func convertReviewToResponse(data domain.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        data.ID.Hex(),
		UserID:    data.UserID.Hex(),
		UserName:  data.UserName,
		ProductID: data.ProductID.Hex(),
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// recomputeProductRating refreshes the product's mean rating and review
// count from the review collection. It runs before the mutating request
// returns, so readers never observe a stale aggregate across requests.
// A product that has since been deleted is tolerated silently.
func (s *ReviewServiceImpl) recomputeProductRating(ctx context.Context, productID primitive.ObjectID) error {
	rating, count, err := s.reviewRepo.GetProductRatingSummary(ctx, productID)
	if err != nil {
		return err
	}

	return s.productRepo.UpdateProductRating(ctx, productID, rating, count)
}

func (s *ReviewServiceImpl) AddReview(ctx context.Context, data dto.ReviewRequest) (review dto.ReviewResponse, err error) {
	if data.Rating < 1 || data.Rating > 5 {
		return review, errs.ErrClient
	}

	_, err = s.productRepo.GetProductByID(ctx, data.ProductID)
	if err != nil {
		return
	}

	userID, err := primitive.ObjectIDFromHex(data.UserID)
	if err != nil {
		return
	}

	productID, err := primitive.ObjectIDFromHex(data.ProductID)
	if err != nil {
		return
	}

	existing, err := s.reviewRepo.GetReviewByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return
	}

	if !existing.ID.IsZero() {
		return review, errs.ErrAlreadyReviewed
	}

	now := time.Now().Unix()
	reviewEnt := domain.Review{
		UserID:    userID,
		UserName:  data.UserName,
		ProductID: productID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	reviewID, err := s.reviewRepo.AddReview(ctx, reviewEnt)
	if err != nil {
		return
	}

	reviewEnt.ID = reviewID

	err = s.recomputeProductRating(ctx, productID)
	if err != nil {
		return
	}

	return convertReviewToResponse(reviewEnt), nil
}

func (s *ReviewServiceImpl) UpdateReview(ctx context.Context, data dto.ReviewRequest) (review dto.ReviewResponse, err error) {
	existing, err := s.reviewRepo.GetReviewByID(ctx, data.ID)
	if err != nil {
		return
	}

	if existing.UserID.Hex() != data.UserID {
		return review, errs.ErrForbidden
	}

	if data.Rating != 0 {
		if data.Rating < 1 || data.Rating > 5 {
			return review, errs.ErrClient
		}
		existing.Rating = data.Rating
	}
	if data.Comment != "" {
		existing.Comment = data.Comment
	}
	existing.UpdatedAt = time.Now().Unix()

	err = s.reviewRepo.UpdateReview(ctx, existing)
	if err != nil {
		return
	}

	err = s.recomputeProductRating(ctx, existing.ProductID)
	if err != nil {
		return
	}

	return convertReviewToResponse(existing), nil
}

func (s *ReviewServiceImpl) DeleteReview(ctx context.Context, reviewID string, userID string) (err error) {
	existing, err := s.reviewRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return
	}

	if existing.UserID.Hex() != userID {
		return errs.ErrForbidden
	}

	err = s.reviewRepo.DeleteReview(ctx, reviewID)
	if err != nil {
		return
	}

	return s.recomputeProductRating(ctx, existing.ProductID)
}

func (s *ReviewServiceImpl) GetProductReviews(ctx context.Context, productID string) (reviews []dto.ReviewResponse, err error) {
	data, err := s.reviewRepo.GetReviewsByProduct(ctx, productID)
	if err != nil {
		return
	}

	reviews = make([]dto.ReviewResponse, 0, len(data))
	for _, r := range data {
		reviews = append(reviews, convertReviewToResponse(r))
	}

	return reviews, nil
}
