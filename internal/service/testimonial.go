package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sea-catering-backend/internal/apperr"
	"sea-catering-backend/internal/dto"
	"sea-catering-backend/internal/model"
	"sea-catering-backend/internal/repository"
)

const (
	minReviewLen = 50
	maxReviewLen = 500
)

type TestimonialService interface {
	// Create stores a visitor testimonial; it stays hidden until an admin
	// approves it.
	Create(ctx context.Context, req *dto.CreateTestimonialRequest) (*model.Testimonial, error)
	ListApproved(ctx context.Context) ([]*model.Testimonial, error)
	ListAll(ctx context.Context) ([]*model.Testimonial, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type testimonialServiceImpl struct {
	testimonialRepo repository.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepository) TestimonialService {
	return &testimonialServiceImpl{
		testimonialRepo: testimonialRepo,
	}
}

func (s *testimonialServiceImpl) Create(ctx context.Context, req *dto.CreateTestimonialRequest) (*model.Testimonial, error) {
	verr := apperr.NewValidation()
	if strings.TrimSpace(req.CustomerName) == "" {
		verr.Add("customerName", "name is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		verr.Add("rating", "must be between 1 and 5")
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(req.ReviewMessage)); n < minReviewLen || n > maxReviewLen {
		verr.Add("reviewMessage", fmt.Sprintf("must be between %d and %d characters", minReviewLen, maxReviewLen))
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	testimonial := &model.Testimonial{
		ID:            uuid.NewString(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Rating:        req.Rating,
		ReviewMessage: strings.TrimSpace(req.ReviewMessage),
		Approved:      false,
	}
	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("store testimonial: %w", err)
	}

	return testimonial, nil
}

func (s *testimonialServiceImpl) ListApproved(ctx context.Context) ([]*model.Testimonial, error) {
	return s.testimonialRepo.List(ctx, true)
}

func (s *testimonialServiceImpl) ListAll(ctx context.Context) ([]*model.Testimonial, error) {
	return s.testimonialRepo.List(ctx, false)
}

func (s *testimonialServiceImpl) Approve(ctx context.Context, id string) error {
	err := s.testimonialRepo.Approve(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("testimonial", id)
	}

	return err
}

func (s *testimonialServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.testimonialRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("testimonial", id)
	}

	return err
}
