package monitor

import (
	"context"

	"github.com/MichalMitros/price-monitor/internal/notification"
	"github.com/MichalMitros/price-monitor/internal/platform/models"
)

// checkPriceAndNotify records in-app notification about price change and emails owner if they opted in.
// Notification failures are logged and never undo the recorded price.
func (m *Monitor) checkPriceAndNotify(ctx context.Context, product *models.Product, oldPrice *float64, newPrice float64) {
	if oldPrice == nil || *oldPrice == newPrice {
		return
	}

	changeType := notification.ChangeType(*oldPrice, newPrice)

	m.logger.Info().
		Int64("productId", product.ID).
		Str("event", string(changeType)).
		Str("name", product.Name).
		Float64("previous", *oldPrice).
		Float64("current", newPrice).
		Float64("change", newPrice-*oldPrice).
		Float64("percent", notification.ChangePercent(*oldPrice, newPrice)).
		Msg("price changed")

	if _, err := m.notifier.PriceChanged(ctx, product, *oldPrice, newPrice); err != nil {
		m.logger.Error().
			Err(err).
			Int64("productId", product.ID).
			Msg("can't create price change notification")
	}

	owner, err := m.storage.GetUser(ctx, product.OwnerID)
	if err != nil {
		m.logger.Warn().
			Err(err).
			Int64("productId", product.ID).
			Int64("ownerId", product.OwnerID).
			Msg("can't get product owner, email not sent")
		return
	}

	switch {
	case changeType == models.NotificationPriceDrop && product.NotifyOnPriceDrop:
		m.mailer.SendPriceDrop(ctx, owner.Email, product.Name, product.URL, *oldPrice, newPrice)
	case changeType == models.NotificationPriceIncrease && product.NotifyOnPriceIncrease:
		m.mailer.SendPriceIncrease(ctx, owner.Email, product.Name, product.URL, *oldPrice, newPrice)
	}
}
