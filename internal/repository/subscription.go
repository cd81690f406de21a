package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sea-catering-backend/internal/model"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *model.Subscription) error
	// Get and Save take an explicit tx so the state-machine read-modify-write
	// in the service layer runs inside one transaction.
	Get(ctx context.Context, tx *gorm.DB, id string) (*model.Subscription, error)
	Save(ctx context.Context, tx *gorm.DB, sub *model.Subscription) error

	ListByUser(ctx context.Context, userID string) ([]*model.Subscription, error)
	List(ctx context.Context, status model.SubscriptionStatus) ([]*model.Subscription, error)

	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountReactivatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, status model.SubscriptionStatus) (int64, error)
	SumTotalPriceByStatus(ctx context.Context, status model.SubscriptionStatus) (int64, error)
}

type subscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepoImpl{
		db: db,
	}
}

func (r *subscriptionRepoImpl) Create(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepoImpl) Get(ctx context.Context, tx *gorm.DB, id string) (*model.Subscription, error) {
	var sub model.Subscription
	err := tx.WithContext(ctx).
		Where("id = ?", id).
		First(&sub).Error
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (r *subscriptionRepoImpl) Save(ctx context.Context, tx *gorm.DB, sub *model.Subscription) error {
	return tx.WithContext(ctx).Save(sub).Error
}

func (r *subscriptionRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}

	return subs, nil
}

// List returns all subscriptions, optionally filtered by status when status
// is non-empty.
func (r *subscriptionRepoImpl) List(ctx context.Context, status model.SubscriptionStatus) ([]*model.Subscription, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var subs []*model.Subscription
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *subscriptionRepoImpl) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error

	return count, err
}

func (r *subscriptionRepoImpl) CountReactivatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("reactivated_at BETWEEN ? AND ?", from, to).
		Count(&count).Error

	return count, err
}

func (r *subscriptionRepoImpl) CountByStatus(ctx context.Context, status model.SubscriptionStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("status = ?", status).
		Count(&count).Error

	return count, err
}

func (r *subscriptionRepoImpl) SumTotalPriceByStatus(ctx context.Context, status model.SubscriptionStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error

	return total, err
}
