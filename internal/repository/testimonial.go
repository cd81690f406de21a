package repository

import (
	"context"

	"gorm.io/gorm"

	"sea-catering-backend/internal/model"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *model.Testimonial) error
	List(ctx context.Context, approvedOnly bool) ([]*model.Testimonial, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type testimonialRepoImpl struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepoImpl{
		db: db,
	}
}

func (r *testimonialRepoImpl) Create(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepoImpl) List(ctx context.Context, approvedOnly bool) ([]*model.Testimonial, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if approvedOnly {
		q = q.Where("approved = ?", true)
	}

	var testimonials []*model.Testimonial
	if err := q.Find(&testimonials).Error; err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (r *testimonialRepoImpl) Approve(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.Testimonial{}).
		Where("id = ?", id).
		Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *testimonialRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Testimonial{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
