package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sea-catering-backend/internal/pricing"
)

func TestMonthly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		pricePerMeal int64
		mealTypes    int
		deliveryDays int
		want         int64
	}{
		{"protein plan two meals five days", 40000, 2, 5, 1_720_000},
		{"diet plan weekend lunches and dinners", 30000, 2, 2, 516_000},
		{"single meal single day", 30000, 1, 1, 129_000},
		{"royal plan full week all meals", 60000, 3, 7, 5_418_000},
		{"zero meal types", 40000, 0, 5, 0},
		{"zero delivery days", 40000, 2, 0, 0},
		{"negative counts", 40000, -1, -1, 0},
		{"zero price", 0, 2, 5, 0},
		{"rounds to nearest rupiah", 33333, 1, 1, 143_332}, // 33333 × 4.3 = 143331.9
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pricing.Monthly(tt.pricePerMeal, tt.mealTypes, tt.deliveryDays))
		})
	}
}

func TestMonthlyDeterministic(t *testing.T) {
	t.Parallel()

	first := pricing.Monthly(40000, 2, 5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, pricing.Monthly(40000, 2, 5))
	}
}
