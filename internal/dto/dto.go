package dto

import "sea-catering-backend/internal/model"

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type CreateSubscriptionRequest struct {
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Plan         string   `json:"plan"`
	MealTypes    []string `json:"mealTypes"`
	DeliveryDays []string `json:"deliveryDays"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Allergies    string   `json:"allergies"`
}

type PauseSubscriptionRequest struct {
	PauseUntil string `json:"pauseUntil"` // RFC 3339
}

type PricePreviewResponse struct {
	TotalPrice int64 `json:"totalPrice"`
}

type CreateTestimonialRequest struct {
	CustomerName  string `json:"customerName"`
	Rating        int    `json:"rating"`
	ReviewMessage string `json:"reviewMessage"`
}

// AdminMetrics is derived on demand from the subscription table; it is never
// persisted.
type AdminMetrics struct {
	NewSubscriptions    int64 `json:"newSubscriptions"`
	ActiveSubscriptions int64 `json:"activeSubscriptions"`
	MonthlyRevenue      int64 `json:"monthlyRevenue"`
	Reactivations       int64 `json:"reactivations"`
}
