package models

import (
	"strings"
	"time"
)

// ProductStatus is monitoring state of tracked product.
type ProductStatus string

const (
	// StatusPending is status of product which wasn't extracted successfully yet.
	StatusPending ProductStatus = "PENDING"
	// StatusActive is status of product which latest extraction succeeded.
	StatusActive ProductStatus = "ACTIVE"
	// StatusError is status of product which latest extraction failed.
	StatusError ProductStatus = "ERROR"
)

// NotificationType is type of in-app notification.
type NotificationType string

const (
	NotificationPriceDrop     NotificationType = "PRICE_DROP"
	NotificationPriceIncrease NotificationType = "PRICE_INCREASE"
	NotificationProductAdded  NotificationType = "PRODUCT_ADDED"
	NotificationSystem        NotificationType = "SYSTEM"
)

// User is product owner model.
type User struct {
	ID            int64
	Email         string
	FullName      string
	EmailVerified bool
	CreatedAt     time.Time
}

// Product is tracked product model.
type Product struct {
	ID                    int64
	OwnerID               int64
	URL                   string
	Name                  string
	ImageURL              string
	CurrentPrice          *float64
	LastPrice             *float64
	OriginalPrice         *float64
	DiscountPercent       *int32
	Status                ProductStatus
	NotifyOnPriceDrop     bool
	NotifyOnPriceIncrease bool
	LastCheckedAt         *time.Time
	CreatedAt             time.Time
}

// ProductRef identifies product to refresh.
type ProductRef struct {
	ID  int64
	URL string
}

// PriceHistory is single price observation of product.
type PriceHistory struct {
	ID         int64
	ProductID  int64
	Price      float64
	RecordedAt time.Time
}

// Notification is in-app notification model.
type Notification struct {
	ID          int64
	UserID      int64
	ProductID   *int64
	ProductName *string
	Type        NotificationType
	Message     string
	OldPrice    *float64
	NewPrice    *float64
	IsRead      bool
	CreatedAt   time.Time
}

// ExtractionResult is product snapshot returned by extraction service.
type ExtractionResult struct {
	Title           string
	Price           *float64
	ImageURL        string
	OriginalPrice   *float64
	DiscountPercent *int32
}

// Valid reports whether result has non-blank title and positive price.
func (r *ExtractionResult) Valid() bool {
	return r != nil &&
		strings.TrimSpace(r.Title) != "" &&
		r.Price != nil &&
		*r.Price > 0
}

// HasDiscount reports whether source reported an active promotion.
func (r *ExtractionResult) HasDiscount() bool {
	return r.DiscountPercent != nil && *r.DiscountPercent > 0
}
