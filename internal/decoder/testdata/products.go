package testdata

import (
	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/samber/lo"
)

// Payload is extraction service response with promotion fields.
const Payload = `{
	"title": "  Smartphone Samsung Galaxy A15 128GB &amp; 4GB RAM ",
	"price": 899.9,
	"imageUrl": "https://http2.mlstatic.com/D_NQ_NP_123456-MLA.webp",
	"originalPrice": 1099.0,
	"discountPercent": 18
}`

// Result is extraction result decoded from Payload.
var Result = models.ExtractionResult{
	Title:           "Smartphone Samsung Galaxy A15 128GB & 4GB RAM",
	Price:           lo.ToPtr(899.9),
	ImageURL:        "https://http2.mlstatic.com/D_NQ_NP_123456-MLA.webp",
	OriginalPrice:   lo.ToPtr(1099.0),
	DiscountPercent: lo.ToPtr(int32(18)),
}

// PayloadWithoutPromotion is extraction service response without promotion fields.
const PayloadWithoutPromotion = `{"title":"Cafeteira Expresso","price":349.5,"imageUrl":"https://example.com/img.png","originalPrice":null}`

// ResultWithoutPromotion is extraction result decoded from PayloadWithoutPromotion.
var ResultWithoutPromotion = models.ExtractionResult{
	Title:    "Cafeteira Expresso",
	Price:    lo.ToPtr(349.5),
	ImageURL: "https://example.com/img.png",
}
