package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sea-catering-backend/internal/apperr"
	"sea-catering-backend/internal/dto"
	"sea-catering-backend/internal/model"
	"sea-catering-backend/internal/pricing"
	"sea-catering-backend/internal/repository"
)

// MinPauseNotice is how far in the future a pause date must be so the
// kitchen can stop the next delivery in time.
const MinPauseNotice = 24 * time.Hour

// Indonesian mobile numbers: leading 08 followed by 8 to 11 digits.
var phoneRe = regexp.MustCompile(`^08\d{8,11}$`)

// Caller identifies the authenticated requester. Admins may operate on any
// subscription; everyone else only on their own.
type Caller struct {
	UserID string
	Role   model.Role
}

func (c Caller) admin() bool { return c.Role == model.RoleAdmin }

type SubscriptionService interface {
	Create(ctx context.Context, caller Caller, req *dto.CreateSubscriptionRequest) (*model.Subscription, error)
	Get(ctx context.Context, caller Caller, id string) (*model.Subscription, error)
	ListByUser(ctx context.Context, caller Caller, userID string) ([]*model.Subscription, error)
	ListAll(ctx context.Context, status model.SubscriptionStatus) ([]*model.Subscription, error)

	Pause(ctx context.Context, caller Caller, id string, pauseUntil time.Time) (*model.Subscription, error)
	Cancel(ctx context.Context, caller Caller, id string) (*model.Subscription, error)
	Reactivate(ctx context.Context, caller Caller, id string) (*model.Subscription, error)

	// PreviewPrice returns the monthly charge for a checkout form in
	// progress. Unknown plan or non-positive counts yield 0, meaning the
	// form is incomplete rather than invalid.
	PreviewPrice(ctx context.Context, planID string, mealTypes, deliveryDays int) (int64, error)
}

type subscriptionServiceImpl struct {
	db               *gorm.DB
	planRepo         repository.PlanRepository
	subscriptionRepo repository.SubscriptionRepository
	locks            *keyLock
	now              func() time.Time
}

func NewSubscriptionService(
	db *gorm.DB,
	planRepo repository.PlanRepository,
	subscriptionRepo repository.SubscriptionRepository,
) SubscriptionService {
	return &subscriptionServiceImpl{
		db:               db,
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		locks:            newKeyLock(),
		now:              time.Now,
	}
}

func (s *subscriptionServiceImpl) Create(ctx context.Context, caller Caller, req *dto.CreateSubscriptionRequest) (*model.Subscription, error) {
	verr := apperr.NewValidation()

	if req.Name == "" {
		verr.Add("name", "name is required")
	}
	if !phoneRe.MatchString(req.Phone) {
		verr.Add("phone", "must start with 08 and contain 10 to 13 digits")
	}
	mealTypes := normalizeChoices(verr, "mealTypes", req.MealTypes, model.MealTypes, "meal type")
	deliveryDays := normalizeChoices(verr, "deliveryDays", req.DeliveryDays, model.DeliveryDays, "delivery day")
	if req.Address == "" {
		verr.Add("address", "address is required")
	}
	if req.City == "" {
		verr.Add("city", "city is required")
	}

	var plan *model.Plan
	if req.Plan == "" {
		verr.Add("plan", "plan is required")
	} else {
		var err error
		plan, err = s.planRepo.Get(ctx, req.Plan)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			verr.Add("plan", fmt.Sprintf("unknown plan %q", req.Plan))
		} else if err != nil {
			return nil, fmt.Errorf("look up plan: %w", err)
		}
	}

	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	now := s.now()
	sub := &model.Subscription{
		ID:           uuid.NewString(),
		UserID:       caller.UserID,
		PlanID:       plan.ID,
		Name:         req.Name,
		Phone:        req.Phone,
		MealTypes:    mealTypes,
		DeliveryDays: deliveryDays,
		Address:      req.Address,
		City:         req.City,
		Allergies:    req.Allergies,
		TotalPrice:   pricing.Monthly(plan.Price, len(mealTypes), len(deliveryDays)),
		Status:       model.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("store subscription: %w", err)
	}

	return sub, nil
}

func (s *subscriptionServiceImpl) Get(ctx context.Context, caller Caller, id string) (*model.Subscription, error) {
	sub, err := s.subscriptionRepo.Get(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("subscription", id)
		}
		return nil, err
	}
	if !caller.admin() && sub.UserID != caller.UserID {
		return nil, apperr.Forbidden("subscription belongs to another account")
	}

	return sub, nil
}

func (s *subscriptionServiceImpl) ListByUser(ctx context.Context, caller Caller, userID string) ([]*model.Subscription, error) {
	if userID == "" {
		userID = caller.UserID
	}
	if !caller.admin() && userID != caller.UserID {
		return nil, apperr.Forbidden("cannot list another account's subscriptions")
	}

	return s.subscriptionRepo.ListByUser(ctx, userID)
}

func (s *subscriptionServiceImpl) ListAll(ctx context.Context, status model.SubscriptionStatus) ([]*model.Subscription, error) {
	if status != "" {
		switch status {
		case model.StatusActive, model.StatusPaused, model.StatusCancelled:
		default:
			verr := apperr.NewValidation()
			verr.Add("status", fmt.Sprintf("unknown status %q", status))
			return nil, verr
		}
	}

	return s.subscriptionRepo.List(ctx, status)
}

func (s *subscriptionServiceImpl) Pause(ctx context.Context, caller Caller, id string, pauseUntil time.Time) (*model.Subscription, error) {
	now := s.now()
	verr := apperr.NewValidation()
	if pauseUntil.IsZero() {
		verr.Add("pauseUntil", "must be a valid date")
	} else if !pauseUntil.After(now) {
		verr.Add("pauseUntil", "must be in the future")
	} else if pauseUntil.Sub(now) < MinPauseNotice {
		verr.Add("pauseUntil", "must be at least 24 hours from now")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, caller, id, func(sub *model.Subscription) error {
		if sub.Status != model.StatusActive {
			return apperr.InvalidState("cannot pause a %s subscription", sub.Status)
		}
		sub.Status = model.StatusPaused
		sub.PausedAt = &now
		sub.PauseUntil = &pauseUntil
		return nil
	})
}

func (s *subscriptionServiceImpl) Cancel(ctx context.Context, caller Caller, id string) (*model.Subscription, error) {
	now := s.now()

	return s.mutate(ctx, caller, id, func(sub *model.Subscription) error {
		if sub.Status == model.StatusCancelled {
			return apperr.InvalidState("subscription is already cancelled")
		}
		sub.Status = model.StatusCancelled
		sub.CancelledAt = &now
		sub.PausedAt = nil
		sub.PauseUntil = nil
		return nil
	})
}

// Reactivate resumes a paused or cancelled subscription on its original
// terms; the frozen TotalPrice is kept even if the plan price changed since.
func (s *subscriptionServiceImpl) Reactivate(ctx context.Context, caller Caller, id string) (*model.Subscription, error) {
	now := s.now()

	return s.mutate(ctx, caller, id, func(sub *model.Subscription) error {
		if sub.Status == model.StatusActive {
			return apperr.InvalidState("subscription is already active")
		}
		sub.Status = model.StatusActive
		sub.PausedAt = nil
		sub.PauseUntil = nil
		sub.CancelledAt = nil
		sub.ReactivatedAt = &now
		return nil
	})
}

func (s *subscriptionServiceImpl) PreviewPrice(ctx context.Context, planID string, mealTypes, deliveryDays int) (int64, error) {
	plan, err := s.planRepo.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("look up plan: %w", err)
	}

	return pricing.Monthly(plan.Price, mealTypes, deliveryDays), nil
}

// mutate runs a state transition as a serialized read-modify-write: the
// per-id lock keeps concurrent requests on the same subscription from
// interleaving, and the transaction keeps the check and the write atomic.
func (s *subscriptionServiceImpl) mutate(ctx context.Context, caller Caller, id string, apply func(*model.Subscription) error) (*model.Subscription, error) {
	s.locks.lock(id)
	defer s.locks.unlock(id)

	var out *model.Subscription
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub, err := s.subscriptionRepo.Get(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("subscription", id)
			}
			return err
		}
		if !caller.admin() && sub.UserID != caller.UserID {
			return apperr.Forbidden("subscription belongs to another account")
		}

		if err := apply(sub); err != nil {
			return err
		}

		sub.UpdatedAt = s.now()
		if err := s.subscriptionRepo.Save(ctx, tx, sub); err != nil {
			return fmt.Errorf("save subscription: %w", err)
		}

		out = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// dayAliases maps common short forms to canonical delivery day names.
var dayAliases = map[string]string{
	"mon": "monday", "tue": "tuesday", "wed": "wednesday", "thu": "thursday",
	"fri": "friday", "sat": "saturday", "sun": "sunday",
}

// normalizeChoices lower-cases, resolves aliases, deduplicates and validates
// a selection against the allowed set, preserving the allowed set's order.
func normalizeChoices(verr apperr.ValidationError, field string, values, allowed []string, label string) []string {
	if len(values) == 0 {
		verr.Add(field, fmt.Sprintf("select at least one %s", label))
		return nil
	}

	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if full, ok := dayAliases[v]; ok {
			v = full
		}
		if !slices.Contains(allowed, v) {
			verr.Add(field, fmt.Sprintf("unknown %s %q", label, v))
			continue
		}
		seen[v] = true
	}

	out := make([]string, 0, len(seen))
	for _, v := range allowed {
		if seen[v] {
			out = append(out, v)
		}
	}
	if len(out) == 0 && !verr.Has(field) {
		verr.Add(field, fmt.Sprintf("select at least one %s", label))
	}

	return out
}
