package decoder

import "github.com/MichalMitros/price-monitor/internal/platform/models"

// Product is model of product payload returned by extraction service.
type Product struct {
	Title           string   `json:"title"`
	Price           *float64 `json:"price"`
	ImageURL        string   `json:"imageUrl"`
	OriginalPrice   *float64 `json:"originalPrice"`
	DiscountPercent *int32   `json:"discountPercent"`
}

func toExtractionResult(product *Product) *models.ExtractionResult {
	return &models.ExtractionResult{
		Title:           product.Title,
		Price:           product.Price,
		ImageURL:        product.ImageURL,
		OriginalPrice:   product.OriginalPrice,
		DiscountPercent: product.DiscountPercent,
	}
}
