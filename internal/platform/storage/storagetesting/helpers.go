package storagetesting

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/MichalMitros/price-monitor/internal/platform/storage"
	pgmodels "github.com/MichalMitros/price-monitor/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/price-monitor/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB and applies migrations.
// Test is skipped when DATABASE_URL environment variable is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	if err = storage.Migrate(context.Background(), db); err != nil {
		t.Fatalf("can't migrate database: %s", err)
	}

	return db
}

// InsertUsers is a helper test function to insert users.
func InsertUsers(t *testing.T, exc qrm.Executable, users ...models.User) {
	t.Helper()

	if len(users) == 0 {
		return
	}

	toInsert := make([]pgmodels.AppUser, 0, len(users))
	for ix := range users {
		toInsert = append(toInsert, pgmodels.AppUser{
			ID:            users[ix].ID,
			Email:         users[ix].Email,
			FullName:      users[ix].FullName,
			EmailVerified: users[ix].EmailVerified,
		})
	}

	_, err := table.AppUser.INSERT(table.AppUser.AllColumns.Except(table.AppUser.CreatedAt)).
		MODELS(toInsert).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert users", err)
	}
}

// InsertProducts is a helper test function to insert products with their IDs.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...models.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Product, 0, len(products))
	for ix := range products {
		toInsert = append(toInsert, *storage.ToDBProduct(&products[ix]))
	}

	_, err := table.Product.INSERT(table.Product.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertNotifications is a helper test function to insert notifications with their IDs.
func InsertNotifications(t *testing.T, exc qrm.Executable, notifications ...models.Notification) {
	t.Helper()

	if len(notifications) == 0 {
		return
	}

	toInsert := make([]pgmodels.Notification, 0, len(notifications))
	for ix := range notifications {
		toInsert = append(toInsert, *storage.ToDBNotification(&notifications[ix]))
	}

	_, err := table.Notification.INSERT(table.Notification.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert notifications", err)
	}
}

// GetPriceHistory is a helper test function to get product's price history, oldest first.
func GetPriceHistory(t *testing.T, queryable qrm.Queryable, productID int64) []pgmodels.PriceHistory {
	t.Helper()

	entries := []pgmodels.PriceHistory{}
	err := table.PriceHistory.SELECT(table.PriceHistory.AllColumns).
		WHERE(table.PriceHistory.ProductID.EQ(pg.Int64(productID))).
		ORDER_BY(table.PriceHistory.RecordedAt.ASC(), table.PriceHistory.ID.ASC()).
		Query(queryable, &entries)
	if err != nil {
		t.Fatal("can't get price history", err)
	}

	return entries
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.Notification.DELETE().WHERE(table.Notification.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete notifications data", err)
	}

	_, err = table.PriceHistory.DELETE().WHERE(table.PriceHistory.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete price history data", err)
	}

	_, err = table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}

	_, err = table.AppUser.DELETE().WHERE(table.AppUser.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete users data", err)
	}
}
