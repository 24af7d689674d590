package decoder

import (
	"html"
	"io"
	"strings"

	"github.com/MichalMitros/price-monitor/internal/platform/models"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decoder decodes extraction service responses into extraction results.
type Decoder struct{}

// Decode decodes single product payload from body.
// It returns io.EOF if body is empty. Result is not validated.
func (d Decoder) Decode(body io.Reader) (*models.ExtractionResult, error) {
	var product Product
	if err := json.NewDecoder(body).Decode(&product); err != nil {
		return nil, err
	}

	unescapeProductFields(&product)

	return toExtractionResult(&product), nil
}

// unescapeProductFields unescapes html characters from product title and trims surrounding whitespaces.
func unescapeProductFields(product *Product) {
	product.Title = strings.TrimSpace(html.UnescapeString(product.Title))
	product.ImageURL = strings.TrimSpace(product.ImageURL)
}
