package monitor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MichalMitros/price-monitor/internal/platform"
	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/singleflight"
)

//go:generate mockery --name Extractor --filename extractor.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Notifier --filename notifier.go
//go:generate mockery --name Mailer --filename mailer.go

const (
	// UnverifiedProductsLimit is maximum number of products tracked by user with unverified email.
	UnverifiedProductsLimit = 7

	defaultPoolSize = 16
	pendingName     = "Loading product..."
	errorNamePrefix = "Error loading - "
	fallbackName    = "product"
)

// Extractor fetches current product snapshot from external extraction service.
type Extractor interface {
	Extract(ctx context.Context, sourceURL string) (*models.ExtractionResult, error)
}

// Storage is users, products and price history storage.
type Storage interface {
	// GetUser returns user or platform.ErrNotFound.
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// CountProducts returns number of products tracked by owner.
	CountProducts(ctx context.Context, ownerID int64) (int, error)
	// GetProduct returns product or platform.ErrNotFound.
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	// GetProductByOwnerAndURL returns owner's product with URL or platform.ErrNotFound.
	GetProductByOwnerAndURL(ctx context.Context, ownerID int64, url string) (*models.Product, error)
	// CreateProduct inserts product with its first price history entry.
	// Returns platform.ErrAlreadyExists when owner already tracks URL.
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	// SaveProduct updates product without touching price history.
	SaveProduct(ctx context.Context, product *models.Product) error
	// RecordPrice updates product and appends price history entry atomically.
	RecordPrice(ctx context.Context, product *models.Product, price float64, recordedAt time.Time) error
	// DeleteProduct deletes product with its price history.
	DeleteProduct(ctx context.Context, id int64) error
}

// Notifier records in-app notifications.
type Notifier interface {
	PriceChanged(ctx context.Context, product *models.Product, oldPrice, newPrice float64) (*models.Notification, error)
	ProductAdded(ctx context.Context, product *models.Product) (*models.Notification, error)
}

// Mailer sends price alert emails. It handles its own failures.
type Mailer interface {
	SendPriceDrop(ctx context.Context, email, productName, productURL string, oldPrice, newPrice float64)
	SendPriceIncrease(ctx context.Context, email, productName, productURL string, oldPrice, newPrice float64)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Monitor.
type Option func(m *Monitor)

// Monitor tracks product prices.
// It extracts product snapshots, keeps products and their price history in sync and notifies owners about price changes.
type Monitor struct {
	extractor Extractor
	storage   Storage
	notifier  Notifier
	mailer    Mailer
	logger    *zerolog.Logger
	clock     Clock
	poolSize  int

	pool         *ants.Pool
	refreshes    singleflight.Group
	tasks        sync.WaitGroup
	productLocks *keyLock
	ownerLocks   *keyLock

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewMonitor returns new Monitor with started worker pool.
func NewMonitor(
	extractor Extractor,
	storage Storage,
	notifier Notifier,
	mailer Mailer,
	logger *zerolog.Logger,
	ops ...Option,
) (*Monitor, error) {
	mon := &Monitor{
		extractor:    extractor,
		storage:      storage,
		notifier:     notifier,
		mailer:       mailer,
		logger:       logger,
		clock:        systemClock{},
		poolSize:     defaultPoolSize,
		productLocks: newKeyLock(),
		ownerLocks:   newKeyLock(),
	}

	for _, op := range ops {
		op(mon)
	}

	pool, err := ants.NewPool(
		mon.poolSize,
		ants.WithNonblocking(true),
		ants.WithLogger(logger),
		ants.WithPanicHandler(func(p interface{}) {
			logger.Error().Interface("panic", p).Msg("refresh task panicked")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("can't create worker pool: %w", err)
	}

	mon.pool = pool
	mon.ctx, mon.cancel = context.WithCancel(context.Background())

	return mon, nil
}

// Add starts tracking url for owner and returns tracked product.
// It extracts product synchronously and creates product together with its first price history entry.
// If owner already tracks url, existing product is returned unchanged.
func (m *Monitor) Add(ctx context.Context, url string, ownerID int64) (*models.Product, error) {
	url = strings.TrimSpace(url)

	unlock := m.ownerLocks.Lock(ownerID)
	defer unlock()

	existing, err := m.admit(ctx, url, ownerID)
	if err != nil || existing != nil {
		return existing, err
	}

	result, err := m.extract(ctx, url)
	if err != nil {
		return nil, err
	}

	now := m.clock.Now()
	product := &models.Product{
		OwnerID:               ownerID,
		URL:                   url,
		Status:                models.StatusActive,
		NotifyOnPriceDrop:     true,
		NotifyOnPriceIncrease: true,
	}
	applyResult(product, result, now)

	created, err := m.storage.CreateProduct(ctx, product)
	if errors.Is(err, platform.ErrAlreadyExists) {
		return m.existingProduct(ctx, ownerID, url)
	}
	if err != nil {
		return nil, fmt.Errorf("can't add product: %w", err)
	}

	m.logger.Info().
		Int64("productId", created.ID).
		Int64("ownerId", ownerID).
		Str("url", url).
		Float64("price", *result.Price).
		Msg("product added")

	if _, err = m.notifier.ProductAdded(ctx, created); err != nil {
		m.logger.Error().
			Err(err).
			Int64("productId", created.ID).
			Msg("can't create product added notification")
	}

	return created, nil
}

// AddInBackground starts tracking url for owner without waiting for extraction.
// It saves pending product placeholder and schedules its refresh.
// If owner already tracks url, existing product is returned unchanged.
func (m *Monitor) AddInBackground(ctx context.Context, url string, ownerID int64) (*models.Product, error) {
	url = strings.TrimSpace(url)

	unlock := m.ownerLocks.Lock(ownerID)
	defer unlock()

	existing, err := m.admit(ctx, url, ownerID)
	if err != nil || existing != nil {
		return existing, err
	}

	created, err := m.storage.CreateProduct(ctx, &models.Product{
		OwnerID:               ownerID,
		URL:                   url,
		Name:                  pendingName,
		Status:                models.StatusPending,
		NotifyOnPriceDrop:     true,
		NotifyOnPriceIncrease: true,
	})
	if errors.Is(err, platform.ErrAlreadyExists) {
		return m.existingProduct(ctx, ownerID, url)
	}
	if err != nil {
		return nil, fmt.Errorf("can't add pending product: %w", err)
	}

	m.logger.Info().
		Int64("productId", created.ID).
		Int64("ownerId", ownerID).
		Str("url", url).
		Msg("pending product added")

	m.RefreshInBackground(created.ID, url)

	return created, nil
}

// RefreshInBackground schedules product refresh on worker pool and returns immediately.
// Concurrent triggers for the same product share one refresh.
// When pool is overloaded the trigger is dropped.
func (m *Monitor) RefreshInBackground(productID int64, url string) {
	logger := m.logger.With().Int64("productId", productID).Str("url", url).Logger()

	m.tasks.Add(1)
	results := m.refreshes.DoChan(strconv.FormatInt(productID, 10), func() (interface{}, error) {
		return nil, m.submitRefresh(productID, url)
	})

	go func() {
		defer m.tasks.Done()

		result := <-results
		switch {
		case errors.Is(result.Err, ants.ErrPoolOverload):
			logger.Warn().Msg("worker pool overloaded, refresh dropped")
		case result.Err != nil:
			logger.Error().Err(result.Err).Msg("can't schedule refresh")
		case result.Shared:
			logger.Debug().Msg("refresh shared with concurrent trigger")
		}
	}()
}

func (m *Monitor) submitRefresh(productID int64, url string) error {
	done := make(chan struct{})

	err := m.pool.Submit(func() {
		defer close(done)

		if err := m.Refresh(m.ctx, productID, url); err != nil {
			m.logger.Error().
				Err(err).
				Int64("productId", productID).
				Str("url", url).
				Msg("refresh failed")
		}
	})
	if err != nil {
		return err
	}

	<-done

	return nil
}

// Refresh extracts product snapshot and applies it to stored product.
// Failed or invalid extraction marks product as errored and keeps its prices and history.
// Product deleted in the meantime is skipped. Returned error means product state couldn't be persisted.
func (m *Monitor) Refresh(ctx context.Context, productID int64, url string) error {
	logger := m.logger.With().Int64("productId", productID).Str("url", url).Logger()

	logger.Debug().Msg("refresh started")

	result, extractErr := m.extract(ctx, url)

	unlock := m.productLocks.Lock(productID)
	defer unlock()

	product, err := m.storage.GetProduct(ctx, productID)
	if errors.Is(err, platform.ErrNotFound) {
		logger.Warn().Msg("product was deleted during refresh")
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't get product: %w", err)
	}

	if extractErr != nil {
		return m.markFailed(ctx, product, extractErr, &logger)
	}

	now := m.clock.Now()
	oldPrice := product.CurrentPrice
	newPrice := *result.Price

	product.LastPrice = oldPrice
	applyResult(product, result, now)

	if err = m.storage.RecordPrice(ctx, product, newPrice, now); err != nil {
		return fmt.Errorf("can't record price: %w", err)
	}

	event := logger.Info().
		Str("name", product.Name).
		Float64("price", newPrice)
	if result.HasDiscount() {
		event = event.
			Int32("discountPercent", *result.DiscountPercent).
			Float64("originalPrice", lo.FromPtr(result.OriginalPrice))
	}
	event.Msg("refresh finished")

	m.checkPriceAndNotify(ctx, product, oldPrice, newPrice)

	return nil
}

// Remove stops tracking product and deletes its price history.
// It waits for refresh of the product which is persisting its result.
func (m *Monitor) Remove(ctx context.Context, productID int64) error {
	unlock := m.productLocks.Lock(productID)
	defer unlock()

	if err := m.storage.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("can't remove product: %w", err)
	}

	m.logger.Info().Int64("productId", productID).Msg("product removed")

	return nil
}

// Close waits for scheduled refreshes and releases worker pool.
// Monitor must not be triggered after Close.
func (m *Monitor) Close() {
	m.closeOnce.Do(func() {
		m.tasks.Wait()
		m.cancel()
		m.pool.Release()
	})
}

// admit checks owner's products limit and returns already tracked product with url if there is one.
func (m *Monitor) admit(ctx context.Context, url string, ownerID int64) (*models.Product, error) {
	owner, err := m.storage.GetUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("can't get owner: %w", err)
	}

	if !owner.EmailVerified {
		count, err := m.storage.CountProducts(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("can't count owner's products: %w", err)
		}

		if count >= UnverifiedProductsLimit {
			m.logger.Warn().
				Int64("ownerId", ownerID).
				Int("limit", UnverifiedProductsLimit).
				Msg("unverified owner reached products limit")
			return nil, &platform.LimitExceededError{Limit: UnverifiedProductsLimit}
		}
	}

	existing, err := m.storage.GetProductByOwnerAndURL(ctx, ownerID, url)
	if errors.Is(err, platform.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't check existing product: %w", err)
	}

	m.logger.Info().
		Int64("productId", existing.ID).
		Int64("ownerId", ownerID).
		Msg("product already tracked")

	return existing, nil
}

func (m *Monitor) existingProduct(ctx context.Context, ownerID int64, url string) (*models.Product, error) {
	existing, err := m.storage.GetProductByOwnerAndURL(ctx, ownerID, url)
	if err != nil {
		return nil, fmt.Errorf("can't get existing product: %w", err)
	}

	return existing, nil
}

// extract returns valid extraction result with prices rounded to cents or error matching platform.ErrExtractionFailed or platform.ErrInvalidExtraction.
func (m *Monitor) extract(ctx context.Context, url string) (*models.ExtractionResult, error) {
	result, err := m.extractor.Extract(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", platform.ErrExtractionFailed, err)
	}

	if result != nil {
		result = roundPrices(*result)
	}

	if !result.Valid() {
		return nil, platform.ErrInvalidExtraction
	}

	return result, nil
}

func (m *Monitor) markFailed(ctx context.Context, product *models.Product, cause error, logger *zerolog.Logger) error {
	product.Status = models.StatusError
	product.Name = errorName(product.Name)

	if err := m.storage.SaveProduct(ctx, product); err != nil {
		return fmt.Errorf("can't save failed product: %w (fail reason: %w)", err, cause)
	}

	logger.Error().Err(cause).Msg("refresh failed, product marked as errored")

	return nil
}

// roundPrices rounds prices to cents, the precision they are stored with.
// Comparing unrounded prices would report a change on every refresh.
func roundPrices(result models.ExtractionResult) *models.ExtractionResult {
	if result.Price != nil {
		result.Price = lo.ToPtr(roundPrice(*result.Price))
	}
	if result.OriginalPrice != nil {
		result.OriginalPrice = lo.ToPtr(roundPrice(*result.OriginalPrice))
	}

	return &result
}

func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}

func applyResult(product *models.Product, result *models.ExtractionResult, now time.Time) {
	product.Name = strings.TrimSpace(result.Title)
	if result.ImageURL != "" {
		product.ImageURL = result.ImageURL
	}
	product.CurrentPrice = lo.ToPtr(*result.Price)
	product.OriginalPrice = result.OriginalPrice
	product.DiscountPercent = result.DiscountPercent
	product.LastCheckedAt = lo.ToPtr(now)
	product.Status = models.StatusActive
}

// errorName returns product name annotated as failed. Repeated failures don't stack prefixes.
func errorName(name string) string {
	for strings.HasPrefix(name, errorNamePrefix) {
		name = strings.TrimPrefix(name, errorNamePrefix)
	}
	name = strings.TrimSpace(strings.ReplaceAll(name, pendingName, ""))

	if name == "" {
		name = fallbackName
	}

	return errorNamePrefix + name
}

// WithClock sets Monitor's custom Clock.
func WithClock(c Clock) Option {
	return func(m *Monitor) {
		m.clock = c
	}
}

// WithPoolSize sets number of refresh workers.
func WithPoolSize(size int) Option {
	return func(m *Monitor) {
		if size > 0 {
			m.poolSize = size
		}
	}
}
