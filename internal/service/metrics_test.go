package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sea-catering-backend/internal/model"
	"sea-catering-backend/internal/repository"
	"sea-catering-backend/internal/service"
)

func seedSubscription(t *testing.T, repo repository.SubscriptionRepository, status model.SubscriptionStatus, createdAt time.Time, totalPrice int64, reactivatedAt *time.Time) {
	t.Helper()

	require.NoError(t, repo.Create(context.Background(), &model.Subscription{
		ID:            uuid.NewString(),
		UserID:        "user-1",
		PlanID:        "protein",
		Name:          "Budi Santoso",
		Phone:         "0812345678",
		MealTypes:     []string{"lunch"},
		DeliveryDays:  []string{"monday"},
		Address:       "Jl. Sudirman No. 1",
		City:          "Jakarta",
		TotalPrice:    totalPrice,
		Status:        status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		ReactivatedAt: reactivatedAt,
	}))
}

func TestMetricsEmptyStore(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := service.NewMetricsService(repository.NewSubscriptionRepository(db))

	metrics, err := svc.Range(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)

	assert.Zero(t, metrics.NewSubscriptions)
	assert.Zero(t, metrics.ActiveSubscriptions)
	assert.Zero(t, metrics.MonthlyRevenue)
	assert.Zero(t, metrics.Reactivations)
}

func TestMetricsRange(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := repository.NewSubscriptionRepository(db)
	svc := service.NewMetricsService(repo)

	now := time.Now()
	inRange := now.AddDate(0, 0, -3)
	outOfRange := now.AddDate(0, -2, 0)

	seedSubscription(t, repo, model.StatusActive, inRange, 1_720_000, nil)
	seedSubscription(t, repo, model.StatusActive, outOfRange, 516_000, &inRange)
	seedSubscription(t, repo, model.StatusPaused, inRange, 344_000, nil)
	seedSubscription(t, repo, model.StatusCancelled, outOfRange, 129_000, nil)

	metrics, err := svc.Range(context.Background(), now.AddDate(0, 0, -7), now)
	require.NoError(t, err)

	// created in the last week: the two inRange rows
	assert.Equal(t, int64(2), metrics.NewSubscriptions)
	// snapshot, range-independent
	assert.Equal(t, int64(2), metrics.ActiveSubscriptions)
	// revenue counts active rows only, paused and cancelled excluded
	assert.Equal(t, int64(1_720_000+516_000), metrics.MonthlyRevenue)
	assert.Equal(t, int64(1), metrics.Reactivations)
}
