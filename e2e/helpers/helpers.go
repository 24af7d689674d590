//go:build e2e

package helpers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/MichalMitros/price-monitor/internal/platform/storage"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
)

// ExtractorState is mutable product snapshot served by mocked extraction service.
type ExtractorState struct {
	mu    sync.Mutex
	title string
	price float64
	calls int
}

// SetPrice changes price returned by mocked extraction service.
func (s *ExtractorState) SetPrice(price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.price = price
}

// Calls returns number of extraction requests.
func (s *ExtractorState) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// PrepareMockedExtractor is helper function for mocking extraction service.
func PrepareMockedExtractor(t *testing.T, title string, price float64) (*httptest.Server, *ExtractorState) {
	t.Helper()

	state := &ExtractorState{title: title, price: price}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodGet {
			wrt.WriteHeader(http.StatusOK)
			return
		}

		state.mu.Lock()
		state.calls++
		body := fmt.Sprintf(`{"title":%q,"price":%.2f,"imageUrl":"https://example.com/img.png"}`, state.title, state.price)
		state.mu.Unlock()

		wrt.Header().Add(contentType, "application/json")
		wrt.WriteHeader(http.StatusOK)
		_, _ = wrt.Write([]byte(body))
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, state
}

// WaitForPrice is blocking helper function, returns product after its current price equals price.
func WaitForPrice(t *testing.T, store storage.Postgres, productID int64, price float64) *models.Product {
	t.Helper()

	deadline := time.After(30 * time.Second)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "product price wasn't updated", "product %d, price %.2f", productID, price)
		case <-time.After(250 * time.Millisecond):
		}

		product, err := store.GetProduct(context.Background(), productID)
		require.NoError(t, err, "can't get product")

		if product.CurrentPrice != nil && *product.CurrentPrice == price {
			return product
		}
	}
}

// WaitForHistory is blocking helper function, returns after product has n price history entries.
func WaitForHistory(t *testing.T, store storage.Postgres, productID int64, n int) []models.PriceHistory {
	t.Helper()

	deadline := time.After(30 * time.Second)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "price history wasn't appended", "product %d, entries %d", productID, n)
		case <-time.After(250 * time.Millisecond):
		}

		history, err := store.RecentPrices(context.Background(), productID, n+1)
		require.NoError(t, err, "can't get price history")

		if len(history) >= n {
			return history
		}
	}
}
