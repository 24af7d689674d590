package notification

import (
	"fmt"
	"math"

	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/samber/lo"
)

// ChangePercent returns absolute price change relative to old price, in percents.
func ChangePercent(oldPrice, newPrice float64) float64 {
	if oldPrice == 0 {
		return 0
	}
	return math.Abs(newPrice-oldPrice) / oldPrice * 100
}

// ChangeType returns notification type matching sign of price change.
func ChangeType(oldPrice, newPrice float64) models.NotificationType {
	if newPrice < oldPrice {
		return models.NotificationPriceDrop
	}
	return models.NotificationPriceIncrease
}

// NewPriceChange returns unsaved notification about product price change.
func NewPriceChange(product *models.Product, oldPrice, newPrice float64) models.Notification {
	notificationType := ChangeType(oldPrice, newPrice)

	verb := "rose"
	icon := "📈"
	if notificationType == models.NotificationPriceDrop {
		verb = "dropped"
		icon = "🔻"
	}

	return models.Notification{
		UserID:      product.OwnerID,
		ProductID:   lo.ToPtr(product.ID),
		ProductName: lo.ToPtr(product.Name),
		Type:        notificationType,
		Message: fmt.Sprintf(
			"%s The price of %q %s %.1f%% - from R$ %.2f to R$ %.2f",
			icon, product.Name, verb, ChangePercent(oldPrice, newPrice), oldPrice, newPrice,
		),
		OldPrice: lo.ToPtr(oldPrice),
		NewPrice: lo.ToPtr(newPrice),
	}
}

// NewProductAdded returns unsaved notification about product added to monitoring.
func NewProductAdded(product *models.Product) models.Notification {
	price := lo.FromPtr(product.CurrentPrice)

	return models.Notification{
		UserID:      product.OwnerID,
		ProductID:   lo.ToPtr(product.ID),
		ProductName: lo.ToPtr(product.Name),
		Type:        models.NotificationProductAdded,
		Message:     fmt.Sprintf("✅ Product %q added to monitoring - R$ %.2f", product.Name, price),
		NewPrice:    product.CurrentPrice,
	}
}
