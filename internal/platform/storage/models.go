package storage

import (
	"github.com/MichalMitros/price-monitor/internal/platform/models"

	pgmodels "github.com/MichalMitros/price-monitor/internal/platform/storage/gen/postgres/public/model"
)

//go:generate jet -dsn=${DATABASE_URL} -schema=public -path=./gen

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) *pgmodels.Product {
	return &pgmodels.Product{
		ID:                    product.ID,
		OwnerID:               product.OwnerID,
		URL:                   product.URL,
		Name:                  product.Name,
		ImageURL:              product.ImageURL,
		CurrentPrice:          product.CurrentPrice,
		LastPrice:             product.LastPrice,
		OriginalPrice:         product.OriginalPrice,
		DiscountPercent:       product.DiscountPercent,
		Status:                string(product.Status),
		NotifyOnPriceDrop:     product.NotifyOnPriceDrop,
		NotifyOnPriceIncrease: product.NotifyOnPriceIncrease,
		LastCheckedAt:         product.LastCheckedAt,
		CreatedAt:             product.CreatedAt,
	}
}

// FromDBProduct converts postgres product model into models.Product.
func FromDBProduct(product *pgmodels.Product) *models.Product {
	return &models.Product{
		ID:                    product.ID,
		OwnerID:               product.OwnerID,
		URL:                   product.URL,
		Name:                  product.Name,
		ImageURL:              product.ImageURL,
		CurrentPrice:          product.CurrentPrice,
		LastPrice:             product.LastPrice,
		OriginalPrice:         product.OriginalPrice,
		DiscountPercent:       product.DiscountPercent,
		Status:                models.ProductStatus(product.Status),
		NotifyOnPriceDrop:     product.NotifyOnPriceDrop,
		NotifyOnPriceIncrease: product.NotifyOnPriceIncrease,
		LastCheckedAt:         product.LastCheckedAt,
		CreatedAt:             product.CreatedAt,
	}
}

func fromDBPriceHistory(entry *pgmodels.PriceHistory) models.PriceHistory {
	return models.PriceHistory{
		ID:         entry.ID,
		ProductID:  entry.ProductID,
		Price:      entry.Price,
		RecordedAt: entry.RecordedAt,
	}
}

func fromDBUser(user *pgmodels.AppUser) *models.User {
	return &models.User{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}

// ToDBNotification converts models.Notification into postgres notification model.
func ToDBNotification(notification *models.Notification) *pgmodels.Notification {
	return &pgmodels.Notification{
		ID:          notification.ID,
		UserID:      notification.UserID,
		ProductID:   notification.ProductID,
		ProductName: notification.ProductName,
		Type:        string(notification.Type),
		Message:     notification.Message,
		OldPrice:    notification.OldPrice,
		NewPrice:    notification.NewPrice,
		IsRead:      notification.IsRead,
		CreatedAt:   notification.CreatedAt,
	}
}

func fromDBNotification(notification *pgmodels.Notification) *models.Notification {
	return &models.Notification{
		ID:          notification.ID,
		UserID:      notification.UserID,
		ProductID:   notification.ProductID,
		ProductName: notification.ProductName,
		Type:        models.NotificationType(notification.Type),
		Message:     notification.Message,
		OldPrice:    notification.OldPrice,
		NewPrice:    notification.NewPrice,
		IsRead:      notification.IsRead,
		CreatedAt:   notification.CreatedAt,
	}
}
