package service

import (
	"context"
	"fmt"

	"sea-catering-backend/internal/model"
	"sea-catering-backend/internal/repository"
)

type CatalogService interface {
	ListPlans(ctx context.Context) ([]*model.Plan, error)

	// SeedDefaultPlans installs the standard catalog at startup. Upserts, so
	// redeploys refresh descriptions without duplicating rows.
	SeedDefaultPlans(ctx context.Context) error
}

type catalogServiceImpl struct {
	planRepo repository.PlanRepository
}

func NewCatalogService(planRepo repository.PlanRepository) CatalogService {
	return &catalogServiceImpl{
		planRepo: planRepo,
	}
}

func (s *catalogServiceImpl) ListPlans(ctx context.Context) ([]*model.Plan, error) {
	return s.planRepo.List(ctx)
}

func (s *catalogServiceImpl) SeedDefaultPlans(ctx context.Context) error {
	plans := []*model.Plan{
		{
			ID:            "diet",
			Name:          "Diet Plan",
			Price:         30000,
			OriginalPrice: 35000,
			Description:   "Balanced low-calorie meals for weight management",
			Features:      []string{"Calorie-controlled portions", "Fresh vegetables daily", "Nutritionist approved"},
		},
		{
			ID:            "protein",
			Name:          "Protein Plan",
			Price:         40000,
			OriginalPrice: 45000,
			Description:   "High-protein meals for active lifestyles",
			Features:      []string{"Premium protein sources", "Post-workout optimized", "Muscle building support"},
		},
		{
			ID:            "royal",
			Name:          "Royal Plan",
			Price:         60000,
			OriginalPrice: 70000,
			Description:   "Premium gourmet meals with the finest ingredients",
			Features:      []string{"Chef-curated menus", "Premium ingredients", "Priority delivery"},
		},
	}

	for _, plan := range plans {
		if err := s.planRepo.Upsert(ctx, plan); err != nil {
			return fmt.Errorf("seed plan %s: %w", plan.ID, err)
		}
	}

	return nil
}
