package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "cancelled"
)

// MealTypes selectable on a subscription, independent of each other.
var MealTypes = []string{"breakfast", "lunch", "dinner"}

// DeliveryDays on which meals can be delivered.
var DeliveryDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type User struct {
	ID           string `gorm:"primaryKey;size:64;not null" json:"id"`
	FullName     string `gorm:"size:128;not null" json:"fullName"`
	Email        string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`
	Role         Role   `gorm:"size:16;not null" json:"role"` // user, admin

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// Plan is an immutable catalog entry. Price is per meal per delivery day in
// whole rupiah; OriginalPrice is the pre-discount price shown struck through.
type Plan struct {
	ID            string   `gorm:"primaryKey;size:64;not null" json:"id"` // plan slug
	Name          string   `gorm:"size:128;not null" json:"name"`
	Price         int64    `gorm:"not null" json:"price"`
	OriginalPrice int64    `json:"originalPrice"`
	Description   string   `gorm:"size:512" json:"description"`
	Features      []string `gorm:"serializer:json" json:"features"`

	CreatedAt time.Time `json:"-"`
}

// Subscription freezes TotalPrice at creation time; later plan price changes
// do not propagate to existing records.
type Subscription struct {
	ID     string `gorm:"primaryKey;size:64;not null" json:"id"`
	UserID string `gorm:"size:64;index;not null" json:"userId"`
	PlanID string `gorm:"size:64;index;not null" json:"planId"`

	Name         string   `gorm:"size:128;not null" json:"name"`
	Phone        string   `gorm:"size:16;not null" json:"phone"`
	MealTypes    []string `gorm:"serializer:json" json:"mealTypes"`
	DeliveryDays []string `gorm:"serializer:json" json:"deliveryDays"`
	Address      string   `gorm:"size:256;not null" json:"address"`
	City         string   `gorm:"size:128;not null" json:"city"`
	Allergies    string   `gorm:"size:256" json:"allergies,omitempty"`

	TotalPrice int64              `gorm:"not null" json:"totalPrice"`
	Status     SubscriptionStatus `gorm:"size:16;index;not null" json:"status"` // active, paused, cancelled

	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	PausedAt      *time.Time `json:"pausedAt,omitempty"`
	PauseUntil    *time.Time `json:"pauseUntil,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	ReactivatedAt *time.Time `json:"reactivatedAt,omitempty"`
}

type Testimonial struct {
	ID            string `gorm:"primaryKey;size:64;not null" json:"id"`
	CustomerName  string `gorm:"size:128;not null" json:"customerName"`
	Rating        int    `gorm:"not null" json:"rating"` // 1..5
	ReviewMessage string `gorm:"size:512;not null" json:"reviewMessage"`
	Approved      bool   `gorm:"index;not null;default:false" json:"approved"`

	CreatedAt time.Time `json:"createdAt"`
}
