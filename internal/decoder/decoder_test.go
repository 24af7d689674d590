package decoder_test

import (
	"io"
	"strings"
	"testing"

	"github.com/MichalMitros/price-monitor/internal/decoder"
	"github.com/MichalMitros/price-monitor/internal/decoder/testdata"
	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitDecode(t *testing.T) {
	tests := map[string]struct {
		body       string
		wantResult *models.ExtractionResult
		wantValid  bool
	}{
		"payload with promotion": {
			body:       testdata.Payload,
			wantResult: &testdata.Result,
			wantValid:  true,
		},
		"payload without promotion": {
			body:       testdata.PayloadWithoutPromotion,
			wantResult: &testdata.ResultWithoutPromotion,
			wantValid:  true,
		},
		"payload without price": {
			body:       `{"title":"Notebook"}`,
			wantResult: &models.ExtractionResult{Title: "Notebook"},
		},
		"payload with blank title": {
			body:       `{"title":"   ","price":10}`,
			wantResult: &models.ExtractionResult{Price: lo.ToPtr(10.0)},
		},
		"payload with zero price": {
			body:       `{"title":"Notebook","price":0}`,
			wantResult: &models.ExtractionResult{Title: "Notebook", Price: lo.ToPtr(0.0)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := decoder.Decoder{}.Decode(strings.NewReader(tt.body))

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.wantResult, result, "should correctly decode payload")
			assert.Equal(t, tt.wantValid, result.Valid(), "should return correct validity")
		})
	}
}

func TestUnitDecodeEmptyBody(t *testing.T) {
	result, err := decoder.Decoder{}.Decode(strings.NewReader(""))

	require.ErrorIs(t, err, io.EOF, "should return EOF for empty body")
	assert.Nil(t, result, "shouldn't return result")
}

func TestUnitDecodeBadJSONFormat(t *testing.T) {
	result, err := decoder.Decoder{}.Decode(strings.NewReader(`{"title": "Notebook", "price": "abc"}`))

	require.Error(t, err, "should return decoding error")
	assert.Nil(t, result, "shouldn't return result")
}
