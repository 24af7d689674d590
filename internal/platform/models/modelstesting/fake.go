package modelstesting

import (
	"math/rand"
	"time"

	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeProduct returns active models.Product with fake data and random price.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:                    rand.Int63n(1_000_000) + 1,
		OwnerID:               rand.Int63n(1_000_000) + 1,
		URL:                   faker.URL(),
		Name:                  faker.Word(),
		ImageURL:              faker.URL(),
		CurrentPrice:          lo.ToPtr(FakePrice()),
		Status:                models.StatusActive,
		NotifyOnPriceDrop:     true,
		NotifyOnPriceIncrease: true,
		LastCheckedAt:         lo.ToPtr(time.Now().UTC().Add(-time.Hour)),
		CreatedAt:             time.Now().UTC().Add(-24 * time.Hour),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeUser returns verified models.User with fake data.
func FakeUser(ops ...func(u *models.User)) models.User {
	user := models.User{
		ID:            rand.Int63n(1_000_000) + 1,
		Email:         faker.Email(),
		FullName:      faker.Name(),
		EmailVerified: true,
	}

	for _, op := range ops {
		op(&user)
	}

	return user
}

// FakeExtractionResult returns valid models.ExtractionResult with fake data.
func FakeExtractionResult(ops ...func(r *models.ExtractionResult)) models.ExtractionResult {
	result := models.ExtractionResult{
		Title:    faker.Sentence(),
		Price:    lo.ToPtr(FakePrice()),
		ImageURL: faker.URL(),
	}

	for _, op := range ops {
		op(&result)
	}

	return result
}

// FakeNotification returns unread models.Notification with fake data.
func FakeNotification(ops ...func(n *models.Notification)) models.Notification {
	notification := models.Notification{
		ID:          rand.Int63n(1_000_000) + 1,
		UserID:      rand.Int63n(1_000_000) + 1,
		ProductID:   lo.ToPtr(rand.Int63n(1_000_000) + 1),
		ProductName: lo.ToPtr(faker.Word()),
		Type:        models.NotificationSystem,
		Message:     faker.Sentence(),
		CreatedAt:   time.Now().UTC(),
	}

	for _, op := range ops {
		op(&notification)
	}

	return notification
}

// FakePrice returns random price with two decimal places in [1; 10000).
func FakePrice() float64 {
	return float64(rand.Intn(999_900)+100) / 100
}
