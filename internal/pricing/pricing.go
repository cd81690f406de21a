// Package pricing computes subscription charges. Kept free of storage and
// transport concerns so the formula can be tested in isolation.
package pricing

import "github.com/shopspring/decimal"

// WeeksPerMonth is the average number of weeks in a month used to project a
// weekly delivery schedule onto a monthly charge.
const WeeksPerMonth = 4.3

var weeksPerMonth = decimal.NewFromFloat(WeeksPerMonth)

// Monthly returns the monthly charge in whole rupiah for a plan priced
// pricePerMeal per meal per delivery day:
//
//	pricePerMeal × mealTypes × deliveryDays × 4.3
//
// rounded to the nearest rupiah. A non-positive meal-type or delivery-day
// count yields 0; callers treat that as an incomplete checkout form, not an
// error.
func Monthly(pricePerMeal int64, mealTypes, deliveryDays int) int64 {
	if pricePerMeal <= 0 || mealTypes <= 0 || deliveryDays <= 0 {
		return 0
	}

	return decimal.NewFromInt(pricePerMeal).
		Mul(decimal.NewFromInt(int64(mealTypes))).
		Mul(decimal.NewFromInt(int64(deliveryDays))).
		Mul(weeksPerMonth).
		Round(0).
		IntPart()
}
