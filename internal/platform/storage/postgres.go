package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/price-monitor/internal/platform"
	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/MichalMitros/price-monitor/internal/platform/storage/gen/postgres/public/table"
	"github.com/lib/pq"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/price-monitor/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const uniqueViolationCode = "23505"

// DefaultRecentPrices is number of price history entries returned by RecentPrices for non-positive limit.
const DefaultRecentPrices = 30

// Postgres is storage for users, products, price history and notifications.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// CreateProduct inserts product and, if product has price, its first price history entry.
// Both rows are written in one transaction.
// It returns platform.ErrAlreadyExists if owner already tracks product with the same URL.
func (p Postgres) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	var created pgmodels.Product

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		err := table.Product.INSERT(table.Product.MutableColumns.Except(table.Product.CreatedAt)).
			MODEL(ToDBProduct(product)).
			RETURNING(table.Product.AllColumns).
			QueryContext(ctx, tx, &created)
		if err != nil {
			if isUniqueViolation(err) {
				return platform.ErrAlreadyExists
			}
			return fmt.Errorf("can't insert product into database: %w", err)
		}

		if created.CurrentPrice == nil {
			return nil
		}

		recordedAt := lo.FromPtrOr(product.LastCheckedAt, time.Now().UTC())
		if _, err = appendPrice(ctx, tx, created.ID, *created.CurrentPrice, recordedAt); err != nil {
			return fmt.Errorf("can't insert first price history entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't create product: %w", err)
	}

	return FromDBProduct(&created), nil
}

// SaveProduct updates mutable product fields. Owner and URL are never changed.
func (p Postgres) SaveProduct(ctx context.Context, product *models.Product) error {
	if err := saveProduct(ctx, p.db, product); err != nil {
		return fmt.Errorf("can't save product: %w", err)
	}

	return nil
}

// RecordPrice saves product and appends price history entry in one transaction.
func (p Postgres) RecordPrice(ctx context.Context, product *models.Product, price float64, recordedAt time.Time) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		if err := saveProduct(ctx, tx, product); err != nil {
			return err
		}

		if _, err := appendPrice(ctx, tx, product.ID, price, recordedAt); err != nil {
			return fmt.Errorf("can't insert price history entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't record price: %w", err)
	}

	return nil
}

// GetProduct returns product by ID or platform.ErrNotFound.
func (p Postgres) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.EQ(pg.Int64(id))).
		QueryContext(ctx, p.db, &product)
	if err != nil {
		return nil, fmt.Errorf("can't get product %d: %w", id, notFound(err))
	}

	return FromDBProduct(&product), nil
}

// GetProductByOwnerAndURL returns owner's product with given URL or platform.ErrNotFound.
func (p Postgres) GetProductByOwnerAndURL(ctx context.Context, ownerID int64, url string) (*models.Product, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(
			table.Product.OwnerID.EQ(pg.Int64(ownerID)),
			table.Product.URL.EQ(pg.String(url)),
		)).
		QueryContext(ctx, p.db, &product)
	if err != nil {
		return nil, fmt.Errorf("can't get product by url: %w", notFound(err))
	}

	return FromDBProduct(&product), nil
}

// CountProducts returns number of products tracked by owner.
func (p Postgres) CountProducts(ctx context.Context, ownerID int64) (int, error) {
	query, args := table.Product.SELECT(pg.COUNT(table.Product.ID)).
		WHERE(table.Product.OwnerID.EQ(pg.Int64(ownerID))).
		Sql()

	var count int
	if err := p.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't count products: %w", err)
	}

	return count, nil
}

// ListProducts returns all products tracked by owner ordered by ID.
func (p Postgres) ListProducts(ctx context.Context, ownerID int64) ([]models.Product, error) {
	return p.listProducts(ctx, table.Product.OwnerID.EQ(pg.Int64(ownerID)))
}

// ProductsWithPriceDrop returns owner's products whose current price is lower than the previous one.
func (p Postgres) ProductsWithPriceDrop(ctx context.Context, ownerID int64) ([]models.Product, error) {
	return p.listProducts(ctx, pg.AND(
		table.Product.OwnerID.EQ(pg.Int64(ownerID)),
		table.Product.LastPrice.IS_NOT_NULL(),
		table.Product.CurrentPrice.LT(table.Product.LastPrice),
	))
}

func (p Postgres) listProducts(ctx context.Context, condition pg.BoolExpression) ([]models.Product, error) {
	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(condition).
		ORDER_BY(table.Product.ID.ASC()).
		QueryContext(ctx, p.db, &products)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list products: %w", err)
	}

	return lo.Map(products, func(product pgmodels.Product, _ int) models.Product {
		return *FromDBProduct(&product)
	}), nil
}

// ListProductRefs returns ID and URL of every tracked product.
func (p Postgres) ListProductRefs(ctx context.Context) ([]models.ProductRef, error) {
	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.ID, table.Product.URL).
		ORDER_BY(table.Product.ID.ASC()).
		QueryContext(ctx, p.db, &products)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list products: %w", err)
	}

	return lo.Map(products, func(product pgmodels.Product, _ int) models.ProductRef {
		return models.ProductRef{ID: product.ID, URL: product.URL}
	}), nil
}

// DeleteProduct deletes product together with its price history.
// It returns platform.ErrNotFound if product doesn't exist.
func (p Postgres) DeleteProduct(ctx context.Context, id int64) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.PriceHistory.DELETE().
			WHERE(table.PriceHistory.ProductID.EQ(pg.Int64(id))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete price history: %w", err)
		}

		result, err := table.Product.DELETE().
			WHERE(table.Product.ID.EQ(pg.Int64(id))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete product: %w", err)
		}

		return requireAffected(result)
	})
	if err != nil {
		return fmt.Errorf("can't delete product %d: %w", id, err)
	}

	return nil
}

// AppendPrice appends price history entry.
func (p Postgres) AppendPrice(ctx context.Context, productID int64, price float64, recordedAt time.Time) (*models.PriceHistory, error) {
	entry, err := appendPrice(ctx, p.db, productID, price, recordedAt)
	if err != nil {
		return nil, fmt.Errorf("can't append price: %w", err)
	}

	return entry, nil
}

// RecentPrices returns up to limit latest price history entries of product, newest first.
func (p Postgres) RecentPrices(ctx context.Context, productID int64, limit int) ([]models.PriceHistory, error) {
	if limit <= 0 {
		limit = DefaultRecentPrices
	}

	entries := []pgmodels.PriceHistory{}
	err := table.PriceHistory.SELECT(table.PriceHistory.AllColumns).
		WHERE(table.PriceHistory.ProductID.EQ(pg.Int64(productID))).
		ORDER_BY(table.PriceHistory.RecordedAt.DESC(), table.PriceHistory.ID.DESC()).
		LIMIT(int64(limit)).
		QueryContext(ctx, p.db, &entries)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get recent prices: %w", err)
	}

	return lo.Map(entries, func(entry pgmodels.PriceHistory, _ int) models.PriceHistory {
		return fromDBPriceHistory(&entry)
	}), nil
}

// GetUser returns user by ID or platform.ErrNotFound.
func (p Postgres) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user pgmodels.AppUser
	err := table.AppUser.SELECT(table.AppUser.AllColumns).
		WHERE(table.AppUser.ID.EQ(pg.Int64(id))).
		QueryContext(ctx, p.db, &user)
	if err != nil {
		return nil, fmt.Errorf("can't get user %d: %w", id, notFound(err))
	}

	return fromDBUser(&user), nil
}

// CreateNotification inserts notification and returns it with ID and creation time set.
func (p Postgres) CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	var created pgmodels.Notification
	err := table.Notification.INSERT(table.Notification.MutableColumns.Except(table.Notification.CreatedAt)).
		MODEL(ToDBNotification(notification)).
		RETURNING(table.Notification.AllColumns).
		QueryContext(ctx, p.db, &created)
	if err != nil {
		return nil, fmt.Errorf("can't insert notification into database: %w", err)
	}

	return fromDBNotification(&created), nil
}

// RecentNotifications returns up to limit latest user's notifications, newest first.
func (p Postgres) RecentNotifications(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	notifications := []pgmodels.Notification{}
	err := table.Notification.SELECT(table.Notification.AllColumns).
		WHERE(table.Notification.UserID.EQ(pg.Int64(userID))).
		ORDER_BY(table.Notification.CreatedAt.DESC(), table.Notification.ID.DESC()).
		LIMIT(int64(limit)).
		QueryContext(ctx, p.db, &notifications)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get recent notifications: %w", err)
	}

	return lo.Map(notifications, func(notification pgmodels.Notification, _ int) models.Notification {
		return *fromDBNotification(&notification)
	}), nil
}

// CountUnread returns number of user's unread notifications.
func (p Postgres) CountUnread(ctx context.Context, userID int64) (int, error) {
	query, args := table.Notification.SELECT(pg.COUNT(table.Notification.ID)).
		WHERE(pg.AND(
			table.Notification.UserID.EQ(pg.Int64(userID)),
			table.Notification.IsRead.IS_FALSE(),
		)).
		Sql()

	var count int
	if err := p.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't count unread notifications: %w", err)
	}

	return count, nil
}

// GetNotification returns notification by ID or platform.ErrNotFound.
func (p Postgres) GetNotification(ctx context.Context, id int64) (*models.Notification, error) {
	var notification pgmodels.Notification
	err := table.Notification.SELECT(table.Notification.AllColumns).
		WHERE(table.Notification.ID.EQ(pg.Int64(id))).
		QueryContext(ctx, p.db, &notification)
	if err != nil {
		return nil, fmt.Errorf("can't get notification %d: %w", id, notFound(err))
	}

	return fromDBNotification(&notification), nil
}

// MarkNotificationRead sets notification as read.
func (p Postgres) MarkNotificationRead(ctx context.Context, id int64) error {
	result, err := table.Notification.UPDATE().
		SET(table.Notification.IsRead.SET(pg.Bool(true))).
		WHERE(table.Notification.ID.EQ(pg.Int64(id))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't mark notification as read: %w", err)
	}

	if err = requireAffected(result); err != nil {
		return fmt.Errorf("can't mark notification %d as read: %w", id, err)
	}

	return nil
}

// MarkAllNotificationsRead sets all user's notifications as read.
// Returns number of updated notifications.
func (p Postgres) MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error) {
	result, err := table.Notification.UPDATE().
		SET(table.Notification.IsRead.SET(pg.Bool(true))).
		WHERE(pg.AND(
			table.Notification.UserID.EQ(pg.Int64(userID)),
			table.Notification.IsRead.IS_FALSE(),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return 0, fmt.Errorf("can't mark notifications as read: %w", err)
	}

	return result.RowsAffected()
}

// DeleteNotifications deletes all user's notifications.
// Returns number of deleted notifications.
func (p Postgres) DeleteNotifications(ctx context.Context, userID int64) (int64, error) {
	result, err := table.Notification.DELETE().
		WHERE(table.Notification.UserID.EQ(pg.Int64(userID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return 0, fmt.Errorf("can't delete notifications: %w", err)
	}

	return result.RowsAffected()
}

func saveProduct(ctx context.Context, db qrm.DB, product *models.Product) error {
	columnList := table.Product.MutableColumns.Except(
		table.Product.OwnerID,
		table.Product.URL,
		table.Product.CreatedAt,
	)

	result, err := table.Product.UPDATE(columnList).
		MODEL(ToDBProduct(product)).
		WHERE(table.Product.ID.EQ(pg.Int64(product.ID))).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't update product: %w", err)
	}

	if err = requireAffected(result); err != nil {
		return fmt.Errorf("can't update product %d: %w", product.ID, err)
	}

	return nil
}

func appendPrice(ctx context.Context, db qrm.DB, productID int64, price float64, recordedAt time.Time) (*models.PriceHistory, error) {
	var entry pgmodels.PriceHistory
	err := table.PriceHistory.INSERT(table.PriceHistory.MutableColumns).
		MODEL(pgmodels.PriceHistory{
			ProductID:  productID,
			Price:      price,
			RecordedAt: recordedAt,
		}).
		RETURNING(table.PriceHistory.AllColumns).
		QueryContext(ctx, db, &entry)
	if err != nil {
		return nil, err
	}

	return lo.ToPtr(fromDBPriceHistory(&entry)), nil
}

func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return platform.ErrNotFound
	}

	return nil
}

func notFound(err error) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return platform.ErrNotFound
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
